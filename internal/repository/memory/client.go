package memory

import (
	"context"
	"time"

	"capi-onboarding-backend/internal/database/models"
	apperrors "capi-onboarding-backend/internal/errors"
)

// ClientRepository keeps clients in memory
type ClientRepository struct {
	s *state
}

func (r *ClientRepository) indexOf(id string) int {
	for i := range r.s.clients {
		if r.s.clients[i].ID == id {
			return i
		}
	}
	return -1
}

// GetAll returns a copy of every client in insertion order
func (r *ClientRepository) GetAll(ctx context.Context) ([]models.Client, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return append([]models.Client{}, r.s.clients...), nil
}

// GetByID retrieves a client by ID
func (r *ClientRepository) GetByID(ctx context.Context, id string) (*models.Client, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	i := r.indexOf(id)
	if i < 0 {
		return nil, apperrors.ErrClientNotFound
	}
	client := r.s.clients[i]
	return &client, nil
}

// Create stores a new client
func (r *ClientRepository) Create(ctx context.Context, client *models.Client) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if client.ID == "" {
		client.ID = models.NewID()
	}
	if r.indexOf(client.ID) >= 0 {
		return apperrors.ErrClientExists
	}
	now := time.Now().UTC()
	if client.CreatedAt.IsZero() {
		client.CreatedAt = now
	}
	client.UpdatedAt = now
	r.s.clients = append(r.s.clients, *client)
	return nil
}

// Update overwrites an existing client
func (r *ClientRepository) Update(ctx context.Context, client *models.Client) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := r.indexOf(client.ID)
	if i < 0 {
		return apperrors.ErrClientNotFound
	}
	client.CreatedAt = r.s.clients[i].CreatedAt
	client.UpdatedAt = time.Now().UTC()
	r.s.clients[i] = *client
	return nil
}

// UpdateStatus sets the status of a client
func (r *ClientRepository) UpdateStatus(ctx context.Context, id string, status models.Status) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return apperrors.ErrClientNotFound
	}
	r.s.clients[i].Status = status
	r.s.clients[i].UpdatedAt = time.Now().UTC()
	return nil
}

// AdvanceStatus sets the status only if the client currently holds from
func (r *ClientRepository) AdvanceStatus(ctx context.Context, id string, from, to models.Status) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 || r.s.clients[i].Status != from {
		return false, nil
	}
	r.s.clients[i].Status = to
	r.s.clients[i].UpdatedAt = time.Now().UTC()
	return true, nil
}

// Delete removes a client without touching its platforms or progress
func (r *ClientRepository) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return apperrors.ErrClientNotFound
	}
	r.s.clients = append(r.s.clients[:i], r.s.clients[i+1:]...)
	return nil
}
