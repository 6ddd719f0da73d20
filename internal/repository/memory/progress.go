package memory

import (
	"context"
	"sort"

	"capi-onboarding-backend/internal/database/models"
)

// StepProgressRepository keeps step progress rows in memory
type StepProgressRepository struct {
	s *state
}

func (r *StepProgressRepository) indexOf(key models.StepKey) int {
	for i, p := range r.s.steps {
		if p.ClientID == key.ClientID && p.Platform == key.Platform && p.StepID == key.StepID {
			return i
		}
	}
	return -1
}

// GetByClientID returns every step row of a client
func (r *StepProgressRepository) GetByClientID(ctx context.Context, clientID string) ([]models.StepProgress, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []models.StepProgress{}
	for _, p := range r.s.steps {
		if p.ClientID == clientID {
			out = append(out, p)
		}
	}
	return out, nil
}

// GetByPlatform returns the step rows of one platform instance
func (r *StepProgressRepository) GetByPlatform(ctx context.Context, clientID, platform string) ([]models.StepProgress, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []models.StepProgress{}
	for _, p := range r.s.steps {
		if p.ClientID == clientID && p.Platform == platform {
			out = append(out, p)
		}
	}
	return out, nil
}

// Upsert inserts or refreshes the step row
func (r *StepProgressRepository) Upsert(ctx context.Context, progress *models.StepProgress) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	key := models.StepKey{ClientID: progress.ClientID, Platform: progress.Platform, StepID: progress.StepID}
	if i := r.indexOf(key); i >= 0 {
		progress.ID = r.s.steps[i].ID
		r.s.steps[i] = *progress
		return nil
	}
	if progress.ID == "" {
		progress.ID = models.NewID()
	}
	r.s.steps = append(r.s.steps, *progress)
	return nil
}

// Delete removes the step row
func (r *StepProgressRepository) Delete(ctx context.Context, key models.StepKey) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := r.indexOf(key)
	if i < 0 {
		return false, nil
	}
	r.s.steps = append(r.s.steps[:i], r.s.steps[i+1:]...)
	return true, nil
}

// ChecklistProgressRepository keeps checklist item rows in memory
type ChecklistProgressRepository struct {
	s *state
}

func (r *ChecklistProgressRepository) indexOf(key models.ItemKey) int {
	for i, p := range r.s.items {
		if p.ClientID == key.ClientID && p.Platform == key.Platform && p.StepID == key.StepID && p.ItemIndex == key.ItemIndex {
			return i
		}
	}
	return -1
}

// GetByStep returns the completed items of a step ordered by index
func (r *ChecklistProgressRepository) GetByStep(ctx context.Context, key models.StepKey) ([]models.ChecklistProgress, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []models.ChecklistProgress{}
	for _, p := range r.s.items {
		if p.ClientID == key.ClientID && p.Platform == key.Platform && p.StepID == key.StepID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ItemIndex < out[j].ItemIndex })
	return out, nil
}

// Upsert inserts or refreshes the item row
func (r *ChecklistProgressRepository) Upsert(ctx context.Context, progress *models.ChecklistProgress) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	key := models.ItemKey{
		StepKey:   models.StepKey{ClientID: progress.ClientID, Platform: progress.Platform, StepID: progress.StepID},
		ItemIndex: progress.ItemIndex,
	}
	if i := r.indexOf(key); i >= 0 {
		progress.ID = r.s.items[i].ID
		r.s.items[i] = *progress
		return nil
	}
	if progress.ID == "" {
		progress.ID = models.NewID()
	}
	r.s.items = append(r.s.items, *progress)
	return nil
}

// Delete removes the item row
func (r *ChecklistProgressRepository) Delete(ctx context.Context, key models.ItemKey) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := r.indexOf(key)
	if i < 0 {
		return false, nil
	}
	r.s.items = append(r.s.items[:i], r.s.items[i+1:]...)
	return true, nil
}
