package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"capi-onboarding-backend/internal/catalog"
	"capi-onboarding-backend/internal/database/models"
	"capi-onboarding-backend/internal/repository"
	"capi-onboarding-backend/internal/repository/memory"
	"capi-onboarding-backend/internal/service"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeedServices(t *testing.T) (seedServices, *repository.Store) {
	t.Helper()
	store := memory.NewStore(false)
	cat := catalog.MustLoad()
	validator := service.NewValidator()
	return seedServices{
		catalog:  cat,
		clients:  service.NewClientService(store, cat, validator),
		progress: service.NewProgressService(store, cat, validator),
	}, store
}

func TestSeed_SampleFile(t *testing.T) {
	color.NoColor = true
	ctx := context.Background()
	svc, store := newSeedServices(t)

	data, err := loadSeedFile(filepath.Join("..", "..", "scripts", "data", "clients.yaml"))
	require.NoError(t, err)

	var out bytes.Buffer
	result, err := seed(ctx, svc, data, &out)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Created)
	assert.Equal(t, 3, result.Steps)
	assert.Equal(t, 2, result.Items)
	assert.Contains(t, out.String(), "CREATE Northwind Outfitters")

	clients, err := svc.clients.ListClients(ctx)
	require.NoError(t, err)
	require.Len(t, clients, 3)

	var northwind service.ClientSummary
	for _, c := range clients {
		if c.Email == "growth@northwind.example" {
			northwind = c
		}
	}
	assert.Equal(t, models.StatusInProgress, northwind.Status)
	assert.Equal(t, 2, northwind.PlatformCount)

	core, err := store.StepProgress.GetByPlatform(ctx, northwind.ID, catalog.CorePlatform)
	require.NoError(t, err)
	assert.Len(t, core, 2)
	for _, p := range core {
		assert.Equal(t, seedActor, p.CompletedBy)
	}

	items, err := store.ChecklistProgress.GetByStep(ctx, models.StepKey{ClientID: northwind.ID, Platform: catalog.CorePlatform, StepID: "core.access_token"})
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestSeed_SkipsExistingEmails(t *testing.T) {
	color.NoColor = true
	ctx := context.Background()
	svc, _ := newSeedServices(t)
	data := &SeedFile{Clients: []ClientData{{Name: "Acme Corp", Email: "ops@acme.example"}}}

	_, err := seed(ctx, svc, data, &bytes.Buffer{})
	require.NoError(t, err)

	var out bytes.Buffer
	data.Clients[0].Email = "OPS@acme.example"
	result, err := seed(ctx, svc, data, &out)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Created)
	assert.Equal(t, 1, result.Skipped)
	assert.Contains(t, out.String(), "SKIP")
}

func TestSeed_Errors(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name    string
		client  ClientData
		message string
	}{
		{"invalid email", ClientData{Name: "Acme Corp", Email: "not-an-email"}, "create client"},
		{"unknown platform", ClientData{Name: "Acme Corp", Email: "a@acme.example", Platforms: []string{"myspace"}}, "add platform myspace"},
		{"unknown step", ClientData{Name: "Acme Corp", Email: "b@acme.example", Completed: []CompletedStep{{Step: "core.nope"}}}, "unknown step core.nope"},
		{"item out of range", ClientData{Name: "Acme Corp", Email: "c@acme.example", Completed: []CompletedStep{{Step: "core.access_token", Items: []int{99}}}}, "item 99"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, _ := newSeedServices(t)
			_, err := seed(ctx, svc, &SeedFile{Clients: []ClientData{tc.client}}, &bytes.Buffer{})
			assert.ErrorContains(t, err, tc.message)
		})
	}
}

func TestLoadSeedFile(t *testing.T) {
	_, err := loadSeedFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "read seed file")

	broken := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("clients: {"), 0o600))
	_, err = loadSeedFile(broken)
	assert.ErrorContains(t, err, "parse seed file")
}
