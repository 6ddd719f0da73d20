package bootstrap

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"capi-onboarding-backend/internal/config"
	apperrors "capi-onboarding-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenStore_Memory(t *testing.T) {
	cfg := &config.Config{StoreDriver: config.StoreDriverAuto, MockSeed: true}

	store, err := OpenStore(context.Background(), cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, "memory", store.Driver)
	assert.NoError(t, store.Ping(context.Background()))

	clients, err := store.Clients.GetAll(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, clients)
}

func TestOpenStore_MemoryWithoutSeed(t *testing.T) {
	cfg := &config.Config{StoreDriver: config.StoreDriverMemory}

	store, err := OpenStore(context.Background(), cfg, nil)
	require.NoError(t, err)

	clients, err := store.Clients.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, clients)
}

func TestOpenStore_Errors(t *testing.T) {
	_, err := OpenStore(context.Background(), &config.Config{StoreDriver: "cassandra"}, nil)
	assert.ErrorContains(t, err, "unknown store driver")

	_, err = OpenSheetsClient(context.Background(), &config.Config{GoogleSheetID: "sheet"})
	assert.ErrorIs(t, err, apperrors.ErrSheetsCredentialsMissing)
}

func TestLoadCatalog(t *testing.T) {
	cat, err := LoadCatalog(&config.Config{})
	require.NoError(t, err)
	assert.NotEmpty(t, cat.Steps())

	_, err = LoadCatalog(&config.Config{CatalogFile: filepath.Join(t.TempDir(), "missing.yaml")})
	assert.Error(t, err)

	broken := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("phases: ["), 0o600))
	_, err = LoadCatalog(&config.Config{CatalogFile: broken})
	assert.Error(t, err)
}
