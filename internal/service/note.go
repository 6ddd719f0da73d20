package service

import (
	"context"
	"time"

	"capi-onboarding-backend/internal/database/models"
	apperrors "capi-onboarding-backend/internal/errors"
	"capi-onboarding-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// NoteService handles freeform notes on steps and checklist items
type NoteService struct {
	notes     repository.NoteRepositoryInterface
	validator *validator.Validate
	now       func() time.Time
}

// NewNoteService creates a new note service
func NewNoteService(notes repository.NoteRepositoryInterface, validator *validator.Validate) *NoteService {
	return &NoteService{
		notes:     notes,
		validator: validator,
		now:       time.Now,
	}
}

// SaveNoteRequest represents the request to save a note. Note is required but
// may be empty, which is how a note is cleared.
type SaveNoteRequest struct {
	ClientID  string  `json:"-" validate:"required"`
	Platform  string  `json:"-" validate:"required"`
	StepID    string  `json:"-" validate:"required"`
	Note      *string `json:"note"`
	ItemIndex *int    `json:"itemIndex,omitempty"`
	UpdatedBy string  `json:"updatedBy,omitempty"`
}

// DeleteNoteRequest addresses the note to clear. Purge removes the row instead
// of saving an empty note.
type DeleteNoteRequest struct {
	ClientID  string `validate:"required"`
	Platform  string `validate:"required"`
	StepID    string `validate:"required"`
	ItemIndex *int
	UpdatedBy string
	Purge     bool
}

func noteKey(clientID, platform, stepID string, itemIndex *int) models.NoteKey {
	return models.NoteKey{
		StepKey:   models.StepKey{ClientID: clientID, Platform: platform, StepID: stepID},
		ItemIndex: itemIndex,
	}
}

func checkItemIndex(itemIndex *int) error {
	if itemIndex != nil && *itemIndex < 0 {
		return apperrors.NewValidationError("itemIndex", "must be a non-negative integer")
	}
	return nil
}

// GetNotes returns the notes of a step, or of one of its items when itemIndex is set
func (s *NoteService) GetNotes(ctx context.Context, clientID, platform, stepID string, itemIndex *int) ([]models.Note, error) {
	if err := validateStruct(s.validator, &stepRef{ClientID: clientID, Platform: platform, StepID: stepID}); err != nil {
		return nil, err
	}
	if err := checkItemIndex(itemIndex); err != nil {
		return nil, err
	}
	notes, err := s.notes.Find(ctx, noteKey(clientID, platform, stepID, itemIndex))
	if err != nil {
		return nil, apperrors.NewPersistenceError("find notes", err)
	}
	return nonNil(notes), nil
}

// SaveNote creates or overwrites the note addressed by the request
func (s *NoteService) SaveNote(ctx context.Context, req *SaveNoteRequest) (*models.Note, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}
	if req.Note == nil {
		return nil, apperrors.NewValidationError("note", "is required")
	}
	if err := checkItemIndex(req.ItemIndex); err != nil {
		return nil, err
	}

	note := &models.Note{
		ClientID:  req.ClientID,
		Platform:  req.Platform,
		StepID:    req.StepID,
		ItemIndex: req.ItemIndex,
		Note:      *req.Note,
		UpdatedAt: s.now().UTC(),
		UpdatedBy: req.UpdatedBy,
	}
	if err := s.notes.Upsert(ctx, note); err != nil {
		return nil, apperrors.NewPersistenceError("save note", err)
	}
	return note, nil
}

// DeleteNote clears a note by saving it empty, or removes the row when
// Purge is set. Clearing always reports true, even when no note existed and
// the empty row is new; a purge reports whether a row was removed.
func (s *NoteService) DeleteNote(ctx context.Context, req *DeleteNoteRequest) (bool, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return false, err
	}
	if err := checkItemIndex(req.ItemIndex); err != nil {
		return false, err
	}

	if req.Purge {
		deleted, err := s.notes.Delete(ctx, noteKey(req.ClientID, req.Platform, req.StepID, req.ItemIndex))
		if err != nil {
			return false, apperrors.NewPersistenceError("delete note", err)
		}
		return deleted, nil
	}

	empty := ""
	_, err := s.SaveNote(ctx, &SaveNoteRequest{
		ClientID:  req.ClientID,
		Platform:  req.Platform,
		StepID:    req.StepID,
		Note:      &empty,
		ItemIndex: req.ItemIndex,
		UpdatedBy: req.UpdatedBy,
	})
	if err != nil {
		return false, err
	}
	return true, nil
}
