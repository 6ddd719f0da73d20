package repository

import (
	"context"
	"errors"

	"capi-onboarding-backend/internal/database/models"
	apperrors "capi-onboarding-backend/internal/errors"

	"gorm.io/gorm"
)

// ChecklistProgressRepository handles database operations for checklist item progress
type ChecklistProgressRepository struct {
	db *gorm.DB
}

// NewChecklistProgressRepository creates a new checklist progress repository
func NewChecklistProgressRepository(db *gorm.DB) *ChecklistProgressRepository {
	return &ChecklistProgressRepository{db: db}
}

var _ ChecklistProgressRepositoryInterface = (*ChecklistProgressRepository)(nil)

// GetByStep retrieves the completed items of one step ordered by item index
func (r *ChecklistProgressRepository) GetByStep(ctx context.Context, key models.StepKey) ([]models.ChecklistProgress, error) {
	var rows []models.ChecklistProgress
	err := r.db.WithContext(ctx).
		Where("client_id = ? AND platform = ? AND step_id = ?", key.ClientID, key.Platform, key.StepID).
		Order("item_index ASC").
		Find(&rows).Error
	if err != nil {
		return nil, apperrors.NewPersistenceError("list checklist progress", err)
	}
	return rows, nil
}

// Upsert inserts the item row or refreshes the existing one
func (r *ChecklistProgressRepository) Upsert(ctx context.Context, progress *models.ChecklistProgress) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.ChecklistProgress
		err := tx.Where("client_id = ? AND platform = ? AND step_id = ? AND item_index = ?",
			progress.ClientID, progress.Platform, progress.StepID, progress.ItemIndex).
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
		return apperrors.NewPersistenceError("upsert checklist progress", err)
	}
	return nil
}

// Delete removes the item row
func (r *ChecklistProgressRepository) Delete(ctx context.Context, key models.ItemKey) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&models.ChecklistProgress{},
		"client_id = ? AND platform = ? AND step_id = ? AND item_index = ?",
		key.ClientID, key.Platform, key.StepID, key.ItemIndex)
	if result.Error != nil {
		return false, apperrors.NewPersistenceError("delete checklist progress", result.Error)
	}
	return result.RowsAffected > 0, nil
}
