package service

import (
	"context"
	"strings"
	"time"

	"capi-onboarding-backend/internal/catalog"
	"capi-onboarding-backend/internal/database/models"
	apperrors "capi-onboarding-backend/internal/errors"
	"capi-onboarding-backend/internal/logger"
	"capi-onboarding-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"
)

// ClientService handles business logic for clients and their platforms
type ClientService struct {
	store     *repository.Store
	catalog   *catalog.Catalog
	validator *validator.Validate
	now       func() time.Time
}

// NewClientService creates a new client service
func NewClientService(store *repository.Store, cat *catalog.Catalog, validator *validator.Validate) *ClientService {
	return &ClientService{
		store:     store,
		catalog:   cat,
		validator: validator,
		now:       time.Now,
	}
}

// CreateClientRequest represents the request to create a client
type CreateClientRequest struct {
	Name  string `json:"name" validate:"required,min=2,max=100" example:"Acme Corp"`
	Email string `json:"email" validate:"required,email" example:"marketing@acme.com"`
	Notes string `json:"notes,omitempty" validate:"max=1000"`
}

// UpdateClientRequest represents a partial update of a client
type UpdateClientRequest struct {
	Name   *string        `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Email  *string        `json:"email,omitempty" validate:"omitempty,email"`
	Notes  *string        `json:"notes,omitempty" validate:"omitempty,max=1000"`
	Status *models.Status `json:"status,omitempty"`
}

// AddPlatformRequest represents the request to attach a platform to a client
type AddPlatformRequest struct {
	Platform string `json:"platform" validate:"required" example:"snowflake"`
}

// ClientSummary is a client with its platform completion counts
type ClientSummary struct {
	models.Client
	PlatformCount      int `json:"platformCount"`
	CompletedPlatforms int `json:"completedPlatforms"`
}

// ClientDetail is a client with its platforms and completed steps
type ClientDetail struct {
	models.Client
	Platforms []models.ClientPlatform `json:"platforms"`
	Progress  []models.StepProgress   `json:"progress"`
}

// ListClients returns every client enriched with platform counts. Clients and
// counts are read concurrently, the counts in a single bulk read.
func (s *ClientService) ListClients(ctx context.Context) ([]ClientSummary, error) {
	var (
		clients []models.Client
		counts  map[string]models.PlatformCounts
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		clients, err = s.store.Clients.GetAll(gctx)
		return apperrors.NewPersistenceError("list clients", err)
	})
	g.Go(func() error {
		var err error
		counts, err = s.store.Platforms.CountByClient(gctx)
		return apperrors.NewPersistenceError("count platforms", err)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summaries := make([]ClientSummary, 0, len(clients))
	for _, c := range clients {
		count := counts[c.ID]
		summaries = append(summaries, ClientSummary{
			Client:             c,
			PlatformCount:      count.Total,
			CompletedPlatforms: count.Completed,
		})
	}
	return summaries, nil
}

// GetClient returns a client with its platforms and step progress
func (s *ClientService) GetClient(ctx context.Context, id string) (*ClientDetail, error) {
	if id == "" {
		return nil, apperrors.NewValidationError("id", "is required")
	}
	client, err := s.store.Clients.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &ClientDetail{Client: *client}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		platforms, err := s.store.Platforms.GetByClientID(gctx, id)
		detail.Platforms = nonNil(platforms)
		return apperrors.NewPersistenceError("list platforms", err)
	})
	g.Go(func() error {
		progress, err := s.store.StepProgress.GetByClientID(gctx, id)
		detail.Progress = nonNil(progress)
		return apperrors.NewPersistenceError("list step progress", err)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return detail, nil
}

// CreateClient creates a client in status not_started
func (s *ClientService) CreateClient(ctx context.Context, req *CreateClientRequest) (*models.Client, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Notes = strings.TrimSpace(req.Notes)
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	client := &models.Client{
		ID:        models.NewID(),
		Name:      req.Name,
		Email:     req.Email,
		Notes:     req.Notes,
		Status:    models.StatusNotStarted,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.Clients.Create(ctx, client); err != nil {
		return nil, apperrors.NewPersistenceError("create client", err)
	}

	logger.WithContext(ctx).WithField("client_id", client.ID).Info("Client created")
	return client, nil
}

// UpdateClient applies the provided fields to a client
func (s *ClientService) UpdateClient(ctx context.Context, id string, req *UpdateClientRequest) (*models.Client, error) {
	if id == "" {
		return nil, apperrors.NewValidationError("id", "is required")
	}
	for _, field := range []*string{req.Name, req.Email, req.Notes} {
		if field != nil {
			*field = strings.TrimSpace(*field)
		}
	}
	if req.Name != nil && *req.Name == "" {
		return nil, apperrors.NewValidationError("name", "must be at least 2 characters")
	}
	if req.Email != nil && *req.Email == "" {
		return nil, apperrors.NewValidationError("email", "must be a valid email address")
	}
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}
	if req.Status != nil && !req.Status.IsValid() {
		return nil, apperrors.NewValidationError("status", "unknown status '"+string(*req.Status)+"'")
	}

	client, err := s.store.Clients.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		client.Name = *req.Name
	}
	if req.Email != nil {
		client.Email = *req.Email
	}
	if req.Notes != nil {
		client.Notes = *req.Notes
	}
	if req.Status != nil {
		client.Status = *req.Status
	}
	if err := s.store.Clients.Update(ctx, client); err != nil {
		if apperrors.IsNotFound(err) {
			return nil, err
		}
		return nil, apperrors.NewPersistenceError("update client", err)
	}
	return client, nil
}

// DeleteClient removes a client. Platforms, progress and notes are left in place.
func (s *ClientService) DeleteClient(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.NewValidationError("id", "is required")
	}
	if err := s.store.Clients.Delete(ctx, id); err != nil {
		return err
	}
	logger.WithContext(ctx).WithField("client_id", id).Info("Client deleted")
	return nil
}

// AddPlatform attaches a catalog platform to a client as not_started
func (s *ClientService) AddPlatform(ctx context.Context, clientID, platform string) (*models.ClientPlatform, error) {
	req := &AddPlatformRequest{Platform: strings.TrimSpace(platform)}
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}
	if _, ok := s.catalog.Platform(req.Platform); !ok {
		return nil, apperrors.NewValidationError("platform", "unknown platform '"+req.Platform+"'")
	}
	if _, err := s.store.Clients.GetByID(ctx, clientID); err != nil {
		return nil, err
	}

	instance := &models.ClientPlatform{
		ID:        models.NewID(),
		ClientID:  clientID,
		Platform:  req.Platform,
		Status:    models.StatusNotStarted,
		StartedAt: s.now().UTC(),
	}
	if err := s.store.Platforms.Create(ctx, instance); err != nil {
		if apperrors.IsAlreadyExists(err) {
			return nil, err
		}
		return nil, apperrors.NewPersistenceError("create platform", err)
	}
	return instance, nil
}

// RemovePlatform detaches a platform from a client
func (s *ClientService) RemovePlatform(ctx context.Context, clientID, platform string) error {
	if clientID == "" || platform == "" {
		return apperrors.NewValidationError("", "clientId and platform are required")
	}
	return s.store.Platforms.Delete(ctx, clientID, platform)
}
