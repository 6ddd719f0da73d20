package repository

import (
	"context"
	"errors"
	"time"

	"capi-onboarding-backend/internal/database/models"
	apperrors "capi-onboarding-backend/internal/errors"

	"gorm.io/gorm"
)

// ClientRepository handles database operations for clients
type ClientRepository struct {
	db *gorm.DB
}

// NewClientRepository creates a new client repository
func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

var _ ClientRepositoryInterface = (*ClientRepository)(nil)

// GetAll retrieves every client, oldest first
func (r *ClientRepository) GetAll(ctx context.Context) ([]models.Client, error) {
	var clients []models.Client
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&clients).Error; err != nil {
		return nil, apperrors.NewPersistenceError("list clients", err)
	}
	return clients, nil
}

// GetByID retrieves a client by ID
func (r *ClientRepository) GetByID(ctx context.Context, id string) (*models.Client, error) {
	var client models.Client
	err := r.db.WithContext(ctx).First(&client, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrClientNotFound
		}
		return nil, apperrors.NewPersistenceError("get client", err)
	}
	return &client, nil
}

// Create creates a new client
func (r *ClientRepository) Create(ctx context.Context, client *models.Client) error {
	if err := r.db.WithContext(ctx).Create(client).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrClientExists
		}
		return apperrors.NewPersistenceError("create client", err)
	}
	return nil
}

// Update writes the editable fields of an existing client
func (r *ClientRepository) Update(ctx context.Context, client *models.Client) error {
	client.UpdatedAt = time.Now().UTC()
	result := r.db.WithContext(ctx).Model(&models.Client{}).
		Where("id = ?", client.ID).
		Updates(map[string]interface{}{
			"name":       client.Name,
			"email":      client.Email,
			"notes":      client.Notes,
			"status":     client.Status,
			"updated_at": client.UpdatedAt,
		})
	if result.Error != nil {
		return apperrors.NewPersistenceError("update client", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrClientNotFound
	}
	return nil
}

// UpdateStatus sets the status of a client
func (r *ClientRepository) UpdateStatus(ctx context.Context, id string, status models.Status) error {
	result := r.db.WithContext(ctx).Model(&models.Client{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"status": status, "updated_at": time.Now().UTC()})
	if result.Error != nil {
		return apperrors.NewPersistenceError("update client status", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrClientNotFound
	}
	return nil
}

// AdvanceStatus updates the status only while the row still holds from
func (r *ClientRepository) AdvanceStatus(ctx context.Context, id string, from, to models.Status) (bool, error) {
	result := r.db.WithContext(ctx).Model(&models.Client{}).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]interface{}{"status": to, "updated_at": time.Now().UTC()})
	if result.Error != nil {
		return false, apperrors.NewPersistenceError("advance client status", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// Delete deletes a client; platforms and progress rows are left in place
func (r *ClientRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.Client{}, "id = ?", id)
	if result.Error != nil {
		return apperrors.NewPersistenceError("delete client", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrClientNotFound
	}
	return nil
}
