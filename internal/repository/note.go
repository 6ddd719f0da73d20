package repository

import (
	"context"
	"errors"

	"capi-onboarding-backend/internal/database/models"
	apperrors "capi-onboarding-backend/internal/errors"

	"gorm.io/gorm"
)

// NoteRepository handles database operations for notes
type NoteRepository struct {
	db *gorm.DB
}

// NewNoteRepository creates a new note repository
func NewNoteRepository(db *gorm.DB) *NoteRepository {
	return &NoteRepository{db: db}
}

var _ NoteRepositoryInterface = (*NoteRepository)(nil)

func (r *NoteRepository) scoped(tx *gorm.DB, key models.NoteKey) *gorm.DB {
	q := tx.Where("client_id = ? AND platform = ? AND step_id = ?", key.ClientID, key.Platform, key.StepID)
	if key.ItemIndex == nil {
		return q.Where("item_index IS NULL")
	}
	return q.Where("item_index = ?", *key.ItemIndex)
}

// Find retrieves the notes addressed by key
func (r *NoteRepository) Find(ctx context.Context, key models.NoteKey) ([]models.Note, error) {
	var notes []models.Note
	if err := r.scoped(r.db.WithContext(ctx), key).Find(&notes).Error; err != nil {
		return nil, apperrors.NewPersistenceError("list notes", err)
	}
	return notes, nil
}

// Upsert inserts the note or overwrites the text of the existing one
func (r *NoteRepository) Upsert(ctx context.Context, note *models.Note) error {
	key := models.NoteKey{
		StepKey:   models.StepKey{ClientID: note.ClientID, Platform: note.Platform, StepID: note.StepID},
		ItemIndex: note.ItemIndex,
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Note
		err := r.scoped(tx, key).First(&existing).Error
		switch {
		case err == nil:
			note.ID = existing.ID
			return tx.Model(&existing).Updates(map[string]interface{}{
				"note":       note.Note,
				"updated_at": note.UpdatedAt,
				"updated_by": note.UpdatedBy,
			}).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			return tx.Create(note).Error
		default:
			return err
		}
	})
	if err != nil {
		return apperrors.NewPersistenceError("upsert note", err)
	}
	return nil
}

// Delete removes the note addressed by key
func (r *NoteRepository) Delete(ctx context.Context, key models.NoteKey) (bool, error) {
	result := r.scoped(r.db.WithContext(ctx), key).Delete(&models.Note{})
	if result.Error != nil {
		return false, apperrors.NewPersistenceError("delete note", result.Error)
	}
	return result.RowsAffected > 0, nil
}
