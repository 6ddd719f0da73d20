// Package memory is an in-process persistence backend. It is the fallback
// when no durable store is configured and optionally starts with demo data.
package memory

import (
	"context"
	"sync"

	"capi-onboarding-backend/internal/database/models"
	"capi-onboarding-backend/internal/repository"
)

type state struct {
	mu        sync.RWMutex
	clients   []models.Client
	platforms []models.ClientPlatform
	steps     []models.StepProgress
	items     []models.ChecklistProgress
	notes     []models.Note
}

// NewStore returns an empty in-memory Store, seeded with demo data when seed is true
func NewStore(seed bool) *repository.Store {
	s := &state{}
	if seed {
		s.seed()
	}
	return &repository.Store{
		Driver:            "memory",
		Clients:           &ClientRepository{s: s},
		Platforms:         &PlatformRepository{s: s},
		StepProgress:      &StepProgressRepository{s: s},
		ChecklistProgress: &ChecklistProgressRepository{s: s},
		Notes:             &NoteRepository{s: s},
		Health:            healthy{},
	}
}

type healthy struct{}

func (healthy) Ping(context.Context) error { return nil }
