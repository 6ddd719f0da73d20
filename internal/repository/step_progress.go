package repository

import (
	"context"
	"errors"

	"capi-onboarding-backend/internal/database/models"
	apperrors "capi-onboarding-backend/internal/errors"

	"gorm.io/gorm"
)

// StepProgressRepository handles database operations for step progress
type StepProgressRepository struct {
	db *gorm.DB
}

// NewStepProgressRepository creates a new step progress repository
func NewStepProgressRepository(db *gorm.DB) *StepProgressRepository {
	return &StepProgressRepository{db: db}
}

var _ StepProgressRepositoryInterface = (*StepProgressRepository)(nil)

// GetByClientID retrieves every completed step of a client across platforms
func (r *StepProgressRepository) GetByClientID(ctx context.Context, clientID string) ([]models.StepProgress, error) {
	var rows []models.StepProgress
	err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("completed_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, apperrors.NewPersistenceError("list step progress", err)
	}
	return rows, nil
}

// GetByPlatform retrieves the completed steps of one platform instance
func (r *StepProgressRepository) GetByPlatform(ctx context.Context, clientID, platform string) ([]models.StepProgress, error) {
	var rows []models.StepProgress
	err := r.db.WithContext(ctx).
		Where("client_id = ? AND platform = ?", clientID, platform).
		Order("completed_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, apperrors.NewPersistenceError("list platform step progress", err)
	}
	return rows, nil
}

// Upsert inserts the step row or refreshes the existing one
func (r *StepProgressRepository) Upsert(ctx context.Context, progress *models.StepProgress) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.StepProgress
		err := tx.Where("client_id = ? AND platform = ? AND step_id = ?",
			progress.ClientID, progress.Platform, progress.StepID).
			First(&existing).Error
		switch {
		case err == nil:
			progress.ID = existing.ID
			return tx.Model(&existing).Updates(map[string]interface{}{
				"status":       progress.Status,
				"completed_at": progress.CompletedAt,
				"completed_by": progress.CompletedBy,
			}).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			return tx.Create(progress).Error
		default:
			return err
		}
	})
	if err != nil {
		return apperrors.NewPersistenceError("upsert step progress", err)
	}
	return nil
}

// Delete removes the step row
func (r *StepProgressRepository) Delete(ctx context.Context, key models.StepKey) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&models.StepProgress{},
		"client_id = ? AND platform = ? AND step_id = ?", key.ClientID, key.Platform, key.StepID)
	if result.Error != nil {
		return false, apperrors.NewPersistenceError("delete step progress", result.Error)
	}
	return result.RowsAffected > 0, nil
}
