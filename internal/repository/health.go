package repository

import (
	"context"

	apperrors "capi-onboarding-backend/internal/errors"

	"gorm.io/gorm"
)

// HealthRepository pings the database
type HealthRepository struct {
	db *gorm.DB
}

// NewHealthRepository creates a new health repository
func NewHealthRepository(db *gorm.DB) *HealthRepository {
	return &HealthRepository{db: db}
}

// Ping checks that the database accepts connections
func (r *HealthRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return apperrors.NewPersistenceError("ping", err)
	}
	return apperrors.NewPersistenceError("ping", sqlDB.PingContext(ctx))
}
