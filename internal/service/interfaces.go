package service

import (
	"context"

	"capi-onboarding-backend/internal/catalog"
	"capi-onboarding-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// ProgressServiceInterface defines the interface for the progress tracker
type ProgressServiceInterface interface {
	MarkStepComplete(ctx context.Context, clientID, platform, stepID, completedBy string) (*models.StepProgress, error)
	UnmarkStep(ctx context.Context, clientID, platform, stepID string) (bool, error)
	MarkChecklistItemComplete(ctx context.Context, clientID, platform, stepID string, itemIndex int, completedBy string) (*models.ChecklistProgress, error)
	UnmarkChecklistItem(ctx context.Context, clientID, platform, stepID string, itemIndex int) (bool, error)
	GetClientProgress(ctx context.Context, clientID string) ([]models.StepProgress, error)
	GetPlatformProgress(ctx context.Context, clientID, platform string) ([]models.StepProgress, error)
	GetChecklistProgress(ctx context.Context, clientID, platform, stepID string) ([]models.ChecklistProgress, error)
	CountPlatformCompletion(ctx context.Context, clientID string) (models.PlatformCounts, error)
	CountAllPlatformCompletion(ctx context.Context) (map[string]models.PlatformCounts, error)
}

// ClientServiceInterface defines the interface for client and platform management
type ClientServiceInterface interface {
	ListClients(ctx context.Context) ([]ClientSummary, error)
	GetClient(ctx context.Context, id string) (*ClientDetail, error)
	CreateClient(ctx context.Context, req *CreateClientRequest) (*models.Client, error)
	UpdateClient(ctx context.Context, id string, req *UpdateClientRequest) (*models.Client, error)
	DeleteClient(ctx context.Context, id string) error
	AddPlatform(ctx context.Context, clientID, platform string) (*models.ClientPlatform, error)
	RemovePlatform(ctx context.Context, clientID, platform string) error
}

// NoteServiceInterface defines the interface for step and checklist item notes
type NoteServiceInterface interface {
	GetNotes(ctx context.Context, clientID, platform, stepID string, itemIndex *int) ([]models.Note, error)
	SaveNote(ctx context.Context, req *SaveNoteRequest) (*models.Note, error)
	DeleteNote(ctx context.Context, req *DeleteNoteRequest) (bool, error)
}

// TipServiceInterface defines the interface for the assistant tip selector
type TipServiceInterface interface {
	SelectTip(ctx context.Context, req *TipContext) (*catalog.Tip, error)
}
