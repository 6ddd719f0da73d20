package repository

import (
	"context"

	"gorm.io/gorm"
)

// Store bundles the repositories of one persistence backend
type Store struct {
	Driver            string
	Clients           ClientRepositoryInterface
	Platforms         PlatformRepositoryInterface
	StepProgress      StepProgressRepositoryInterface
	ChecklistProgress ChecklistProgressRepositoryInterface
	Notes             NoteRepositoryInterface
	Health            HealthChecker
}

// Ping checks the backing store, treating a store without a health checker as healthy
func (s *Store) Ping(ctx context.Context) error {
	if s == nil || s.Health == nil {
		return nil
	}
	return s.Health.Ping(ctx)
}

// NewGormStore builds a Store backed by Postgres through gorm
func NewGormStore(db *gorm.DB) *Store {
	return &Store{
		Driver:            "postgres",
		Clients:           NewClientRepository(db),
		Platforms:         NewPlatformRepository(db),
		StepProgress:      NewStepProgressRepository(db),
		ChecklistProgress: NewChecklistProgressRepository(db),
		Notes:             NewNoteRepository(db),
		Health:            NewHealthRepository(db),
	}
}
