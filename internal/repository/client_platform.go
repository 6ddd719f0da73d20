package repository

import (
	"context"
	"errors"
	"time"

	"capi-onboarding-backend/internal/database/models"
	apperrors "capi-onboarding-backend/internal/errors"

	"gorm.io/gorm"
)

// PlatformRepository handles database operations for client platforms
type PlatformRepository struct {
	db *gorm.DB
}

// NewPlatformRepository creates a new client platform repository
func NewPlatformRepository(db *gorm.DB) *PlatformRepository {
	return &PlatformRepository{db: db}
}

var _ PlatformRepositoryInterface = (*PlatformRepository)(nil)

// GetByClientID retrieves all platforms attached to a client
func (r *PlatformRepository) GetByClientID(ctx context.Context, clientID string) ([]models.ClientPlatform, error) {
	var platforms []models.ClientPlatform
	err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("started_at ASC").
		Find(&platforms).Error
	if err != nil {
		return nil, apperrors.NewPersistenceError("list client platforms", err)
	}
	return platforms, nil
}

// GetByClientAndPlatform retrieves one platform instance
func (r *PlatformRepository) GetByClientAndPlatform(ctx context.Context, clientID, platform string) (*models.ClientPlatform, error) {
	var cp models.ClientPlatform
	err := r.db.WithContext(ctx).First(&cp, "client_id = ? AND platform = ?", clientID, platform).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPlatformNotFound
		}
		return nil, apperrors.NewPersistenceError("get client platform", err)
	}
	return &cp, nil
}

// Create attaches a platform to a client
func (r *PlatformRepository) Create(ctx context.Context, platform *models.ClientPlatform) error {
	if err := r.db.WithContext(ctx).Create(platform).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrPlatformExists
		}
		return apperrors.NewPersistenceError("create client platform", err)
	}
	return nil
}

// UpdateStatus sets the status of a platform instance, stamping completed_at on completion
func (r *PlatformRepository) UpdateStatus(ctx context.Context, clientID, platform string, status models.Status) error {
	updates := map[string]interface{}{"status": status}
	if status == models.StatusCompleted {
		updates["completed_at"] = time.Now().UTC()
	}
	result := r.db.WithContext(ctx).Model(&models.ClientPlatform{}).
		Where("client_id = ? AND platform = ?", clientID, platform).
		Updates(updates)
	if result.Error != nil {
		return apperrors.NewPersistenceError("update client platform status", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrPlatformNotFound
	}
	return nil
}

// AdvanceStatus updates the status only while the row still holds from
func (r *PlatformRepository) AdvanceStatus(ctx context.Context, clientID, platform string, from, to models.Status) (bool, error) {
	updates := map[string]interface{}{"status": to}
	if to == models.StatusCompleted {
		updates["completed_at"] = time.Now().UTC()
	}
	result := r.db.WithContext(ctx).Model(&models.ClientPlatform{}).
		Where("client_id = ? AND platform = ? AND status = ?", clientID, platform, from).
		Updates(updates)
	if result.Error != nil {
		return false, apperrors.NewPersistenceError("advance client platform status", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// Delete detaches a platform from a client
func (r *PlatformRepository) Delete(ctx context.Context, clientID, platform string) error {
	result := r.db.WithContext(ctx).
		Delete(&models.ClientPlatform{}, "client_id = ? AND platform = ?", clientID, platform)
	if result.Error != nil {
		return apperrors.NewPersistenceError("delete client platform", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrPlatformNotFound
	}
	return nil
}

// CountByClient aggregates platform totals per client in a single query
func (r *PlatformRepository) CountByClient(ctx context.Context) (map[string]models.PlatformCounts, error) {
	var rows []struct {
		ClientID  string
		Total     int
		Completed int
	}
	err := r.db.WithContext(ctx).Model(&models.ClientPlatform{}).
		Select("client_id, COUNT(*) AS total, SUM(CASE WHEN status = ? THEN 1 ELSE 0 END) AS completed", models.StatusCompleted).
		Group("client_id").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.NewPersistenceError("count client platforms", err)
	}

	counts := make(map[string]models.PlatformCounts, len(rows))
	for _, row := range rows {
		counts[row.ClientID] = models.PlatformCounts{Total: row.Total, Completed: row.Completed}
	}
	return counts, nil
}
