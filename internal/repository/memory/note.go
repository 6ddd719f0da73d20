package memory

import (
	"context"

	"capi-onboarding-backend/internal/database/models"
)

// NoteRepository keeps notes in memory
type NoteRepository struct {
	s *state
}

func (r *NoteRepository) indexOf(key models.NoteKey) int {
	for i, n := range r.s.notes {
		if key.Matches(n) {
			return i
		}
	}
	return -1
}

// Find returns the notes addressed by key
func (r *NoteRepository) Find(ctx context.Context, key models.NoteKey) ([]models.Note, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []models.Note{}
	for _, n := range r.s.notes {
		if key.Matches(n) {
			out = append(out, copyNote(n))
		}
	}
	return out, nil
}

// Upsert inserts or overwrites the note with the same key
func (r *NoteRepository) Upsert(ctx context.Context, note *models.Note) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	key := models.NoteKey{
		StepKey:   models.StepKey{ClientID: note.ClientID, Platform: note.Platform, StepID: note.StepID},
		ItemIndex: note.ItemIndex,
	}
	if i := r.indexOf(key); i >= 0 {
		note.ID = r.s.notes[i].ID
		r.s.notes[i] = copyNote(*note)
		return nil
	}
	if note.ID == "" {
		note.ID = models.NewID()
	}
	r.s.notes = append(r.s.notes, copyNote(*note))
	return nil
}

// Delete removes the note addressed by key
func (r *NoteRepository) Delete(ctx context.Context, key models.NoteKey) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := r.indexOf(key)
	if i < 0 {
		return false, nil
	}
	r.s.notes = append(r.s.notes[:i], r.s.notes[i+1:]...)
	return true, nil
}

// copyNote detaches the item index pointer from the caller's value
func copyNote(n models.Note) models.Note {
	if n.ItemIndex != nil {
		idx := *n.ItemIndex
		n.ItemIndex = &idx
	}
	return n
}
