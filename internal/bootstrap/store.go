// Package bootstrap assembles the runtime collaborators shared by the server
// and the onboardctl command.
package bootstrap

import (
	"context"
	"fmt"
	"time"

	"capi-onboarding-backend/internal/catalog"
	"capi-onboarding-backend/internal/config"
	"capi-onboarding-backend/internal/database"
	apperrors "capi-onboarding-backend/internal/errors"
	"capi-onboarding-backend/internal/logger"
	"capi-onboarding-backend/internal/repository"
	"capi-onboarding-backend/internal/repository/memory"
	"capi-onboarding-backend/internal/repository/sheets"
)

// StoreOptions tunes how a store is opened
type StoreOptions struct {
	// Database is passed to database.Initialize for the postgres driver
	Database *database.Options
	// ConnectAttempts retries the postgres connection, one second apart. Zero means one attempt.
	ConnectAttempts int
}

// LoadCatalog reads the step catalog from CATALOG_FILE, or the embedded one
func LoadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	if cfg.CatalogFile != "" {
		return catalog.LoadFile(cfg.CatalogFile)
	}
	return catalog.Load()
}

// OpenStore opens the persistence backend selected by STORE_DRIVER
func OpenStore(ctx context.Context, cfg *config.Config, opts *StoreOptions) (*repository.Store, error) {
	if opts == nil {
		opts = &StoreOptions{}
	}

	driver := cfg.ResolvedStoreDriver()
	log := logger.New().WithField("store", driver)

	switch driver {
	case config.StoreDriverMemory:
		log.WithField("seed", cfg.MockSeed).Info("Using in-memory store")
		return memory.NewStore(cfg.MockSeed), nil

	case config.StoreDriverPostgres:
		attempts := opts.ConnectAttempts
		if attempts < 1 {
			attempts = 1
		}
		var lastErr error
		for attempt := 1; attempt <= attempts; attempt++ {
			db, err := database.Initialize(cfg.DatabaseURL, opts.Database)
			if err == nil {
				log.Info("Connected to postgres")
				return repository.NewGormStore(db), nil
			}
			lastErr = err
			if attempt%10 == 0 || attempt == attempts {
				log.WithError(err).Warnf("Database not ready (%d/%d)", attempt, attempts)
			}
			if attempt < attempts {
				select {
				case <-ctx.Done():
					return nil, ctx.Err()
				case <-time.After(time.Second):
				}
			}
		}
		return nil, fmt.Errorf("failed to initialize database: %w", lastErr)

	case config.StoreDriverSheets:
		client, err := OpenSheetsClient(ctx, cfg)
		if err != nil {
			return nil, err
		}
		initialised, err := sheets.EnsureHeaders(ctx, client)
		if err != nil {
			return nil, fmt.Errorf("failed to prepare spreadsheet: %w", err)
		}
		if len(initialised) > 0 {
			log.WithField("tabs", initialised).Info("Initialised spreadsheet tabs")
		}
		log.Info("Using Google Sheets store")
		return sheets.NewStore(client), nil
	}

	return nil, fmt.Errorf("unknown store driver %q", driver)
}

// OpenSheetsClient authenticates against the configured spreadsheet
func OpenSheetsClient(ctx context.Context, cfg *config.Config) (*sheets.APIClient, error) {
	if !cfg.HasSheetsCredentials() {
		return nil, apperrors.ErrSheetsCredentialsMissing
	}
	return sheets.NewAPIClient(ctx, cfg.GoogleServiceAccountEmail, cfg.GooglePrivateKey, cfg.GoogleSheetID)
}
