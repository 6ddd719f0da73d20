package memory

import (
	"context"
	"time"

	"capi-onboarding-backend/internal/database/models"
	apperrors "capi-onboarding-backend/internal/errors"
)

// PlatformRepository keeps client platforms in memory
type PlatformRepository struct {
	s *state
}

func (r *PlatformRepository) indexOf(clientID, platform string) int {
	for i := range r.s.platforms {
		if r.s.platforms[i].ClientID == clientID && r.s.platforms[i].Platform == platform {
			return i
		}
	}
	return -1
}

// GetByClientID returns the platforms attached to a client
func (r *PlatformRepository) GetByClientID(ctx context.Context, clientID string) ([]models.ClientPlatform, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []models.ClientPlatform{}
	for _, p := range r.s.platforms {
		if p.ClientID == clientID {
			out = append(out, p)
		}
	}
	return out, nil
}

// GetByClientAndPlatform retrieves one platform instance
func (r *PlatformRepository) GetByClientAndPlatform(ctx context.Context, clientID, platform string) (*models.ClientPlatform, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	i := r.indexOf(clientID, platform)
	if i < 0 {
		return nil, apperrors.ErrPlatformNotFound
	}
	p := r.s.platforms[i]
	return &p, nil
}

// Create attaches a platform to a client
func (r *PlatformRepository) Create(ctx context.Context, platform *models.ClientPlatform) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.indexOf(platform.ClientID, platform.Platform) >= 0 {
		return apperrors.ErrPlatformExists
	}
	if platform.ID == "" {
		platform.ID = models.NewID()
	}
	r.s.platforms = append(r.s.platforms, *platform)
	return nil
}

// UpdateStatus sets the status of a platform instance
func (r *PlatformRepository) UpdateStatus(ctx context.Context, clientID, platform string, status models.Status) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := r.indexOf(clientID, platform)
	if i < 0 {
		return apperrors.ErrPlatformNotFound
	}
	r.s.platforms[i].Status = status
	if status == models.StatusCompleted {
		now := time.Now().UTC()
		r.s.platforms[i].CompletedAt = &now
	}
	return nil
}

// AdvanceStatus sets the status only if the instance currently holds from
func (r *PlatformRepository) AdvanceStatus(ctx context.Context, clientID, platform string, from, to models.Status) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := r.indexOf(clientID, platform)
	if i < 0 || r.s.platforms[i].Status != from {
		return false, nil
	}
	r.s.platforms[i].Status = to
	if to == models.StatusCompleted {
		now := time.Now().UTC()
		r.s.platforms[i].CompletedAt = &now
	}
	return true, nil
}

// Delete detaches a platform from a client
func (r *PlatformRepository) Delete(ctx context.Context, clientID, platform string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := r.indexOf(clientID, platform)
	if i < 0 {
		return apperrors.ErrPlatformNotFound
	}
	r.s.platforms = append(r.s.platforms[:i], r.s.platforms[i+1:]...)
	return nil
}

// CountByClient aggregates platform totals per client
func (r *PlatformRepository) CountByClient(ctx context.Context) (map[string]models.PlatformCounts, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	counts := map[string]models.PlatformCounts{}
	for _, p := range r.s.platforms {
		c := counts[p.ClientID]
		c.Total++
		if p.Status == models.StatusCompleted {
			c.Completed++
		}
		counts[p.ClientID] = c
	}
	return counts, nil
}
