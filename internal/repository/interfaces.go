package repository

import (
	"context"

	"capi-onboarding-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// ClientRepositoryInterface defines the interface for client repository operations
type ClientRepositoryInterface interface {
	GetAll(ctx context.Context) ([]models.Client, error)
	GetByID(ctx context.Context, id string) (*models.Client, error)
	Create(ctx context.Context, client *models.Client) error
	Update(ctx context.Context, client *models.Client) error
	UpdateStatus(ctx context.Context, id string, status models.Status) error
	// AdvanceStatus moves the client from one status to another and reports
	// whether it moved; a client holding any other status is left alone
	AdvanceStatus(ctx context.Context, id string, from, to models.Status) (bool, error)
	Delete(ctx context.Context, id string) error
}

// PlatformRepositoryInterface defines the interface for client platform repository operations
type PlatformRepositoryInterface interface {
	GetByClientID(ctx context.Context, clientID string) ([]models.ClientPlatform, error)
	GetByClientAndPlatform(ctx context.Context, clientID, platform string) (*models.ClientPlatform, error)
	Create(ctx context.Context, platform *models.ClientPlatform) error
	UpdateStatus(ctx context.Context, clientID, platform string, status models.Status) error
	// AdvanceStatus is the conditional form of UpdateStatus
	AdvanceStatus(ctx context.Context, clientID, platform string, from, to models.Status) (bool, error)
	Delete(ctx context.Context, clientID, platform string) error
	// CountByClient returns total and completed platform counts per client in one read
	CountByClient(ctx context.Context) (map[string]models.PlatformCounts, error)
}

// StepProgressRepositoryInterface defines the interface for step progress repository operations
type StepProgressRepositoryInterface interface {
	GetByClientID(ctx context.Context, clientID string) ([]models.StepProgress, error)
	GetByPlatform(ctx context.Context, clientID, platform string) ([]models.StepProgress, error)
	// Upsert inserts the row or overwrites the existing row with the same key
	Upsert(ctx context.Context, progress *models.StepProgress) error
	// Delete removes the row and reports whether it existed
	Delete(ctx context.Context, key models.StepKey) (bool, error)
}

// ChecklistProgressRepositoryInterface defines the interface for checklist item progress operations
type ChecklistProgressRepositoryInterface interface {
	GetByStep(ctx context.Context, key models.StepKey) ([]models.ChecklistProgress, error)
	Upsert(ctx context.Context, progress *models.ChecklistProgress) error
	Delete(ctx context.Context, key models.ItemKey) (bool, error)
}

// NoteRepositoryInterface defines the interface for note repository operations
type NoteRepositoryInterface interface {
	// Find returns the notes addressed by key; a nil item index selects step-level notes
	Find(ctx context.Context, key models.NoteKey) ([]models.Note, error)
	Upsert(ctx context.Context, note *models.Note) error
	Delete(ctx context.Context, key models.NoteKey) (bool, error)
}

// HealthChecker reports whether the backing store is reachable
type HealthChecker interface {
	Ping(ctx context.Context) error
}
