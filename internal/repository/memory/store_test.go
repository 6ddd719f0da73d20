package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"capi-onboarding-backend/internal/database/models"
	apperrors "capi-onboarding-backend/internal/errors"
	"capi-onboarding-backend/internal/repository"

	"github.com/stretchr/testify/suite"
)

type MemoryStoreTestSuite struct {
	suite.Suite
	ctx   context.Context
	store *repository.Store
}

func (s *MemoryStoreTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = NewStore(false)
}

func (s *MemoryStoreTestSuite) TestSeed() {
	seeded := NewStore(true)

	clients, err := seeded.Clients.GetAll(s.ctx)
	s.Require().NoError(err)
	s.Len(clients, 3)
	s.Equal("Acme Corporation", clients[0].Name)

	platforms, err := seeded.Platforms.GetByClientID(s.ctx, "mock-client-1")
	s.Require().NoError(err)
	s.Len(platforms, 2)

	counts, err := seeded.Platforms.CountByClient(s.ctx)
	s.Require().NoError(err)
	s.Equal(models.PlatformCounts{Total: 2, Completed: 0}, counts["mock-client-1"])
	s.Equal(models.PlatformCounts{Total: 1, Completed: 1}, counts["mock-client-2"])
	_, hasThird := counts["mock-client-3"]
	s.False(hasThird)

	progress, err := seeded.StepProgress.GetByClientID(s.ctx, "mock-client-1")
	s.Require().NoError(err)
	s.Len(progress, 3)
	s.Equal("memory", seeded.Driver)
	s.NoError(seeded.Ping(s.ctx))
}

func (s *MemoryStoreTestSuite) TestClientLifecycle() {
	client := &models.Client{Name: "Acme", Email: "a@acme.com", Status: models.StatusNotStarted}
	s.Require().NoError(s.store.Clients.Create(s.ctx, client))
	s.NotEmpty(client.ID)
	s.False(client.CreatedAt.IsZero())

	got, err := s.store.Clients.GetByID(s.ctx, client.ID)
	s.Require().NoError(err)
	s.Equal("Acme", got.Name)

	got.Name = "Acme Corp"
	s.Require().NoError(s.store.Clients.Update(s.ctx, got))
	s.Require().NoError(s.store.Clients.UpdateStatus(s.ctx, client.ID, models.StatusInProgress))

	got, err = s.store.Clients.GetByID(s.ctx, client.ID)
	s.Require().NoError(err)
	s.Equal("Acme Corp", got.Name)
	s.Equal(models.StatusInProgress, got.Status)

	s.Require().NoError(s.store.Clients.Delete(s.ctx, client.ID))
	_, err = s.store.Clients.GetByID(s.ctx, client.ID)
	s.ErrorIs(err, apperrors.ErrClientNotFound)
	s.ErrorIs(s.store.Clients.Delete(s.ctx, client.ID), apperrors.ErrClientNotFound)
	s.ErrorIs(s.store.Clients.UpdateStatus(s.ctx, client.ID, models.StatusCompleted), apperrors.ErrClientNotFound)
}

func (s *MemoryStoreTestSuite) TestReturnedValuesAreCopies() {
	client := &models.Client{ID: "c1", Name: "Acme", Email: "a@acme.com", Status: models.StatusNotStarted}
	s.Require().NoError(s.store.Clients.Create(s.ctx, client))

	got, err := s.store.Clients.GetByID(s.ctx, "c1")
	s.Require().NoError(err)
	got.Status = models.StatusCompleted

	again, err := s.store.Clients.GetByID(s.ctx, "c1")
	s.Require().NoError(err)
	s.Equal(models.StatusNotStarted, again.Status)
}

func (s *MemoryStoreTestSuite) TestPlatformDuplicateAndStatus() {
	p := &models.ClientPlatform{ClientID: "c1", Platform: "snowflake", Status: models.StatusNotStarted, StartedAt: time.Now().UTC()}
	s.Require().NoError(s.store.Platforms.Create(s.ctx, p))
	dup := &models.ClientPlatform{ClientID: "c1", Platform: "snowflake"}
	s.ErrorIs(s.store.Platforms.Create(s.ctx, dup), apperrors.ErrPlatformExists)

	s.Require().NoError(s.store.Platforms.UpdateStatus(s.ctx, "c1", "snowflake", models.StatusCompleted))
	got, err := s.store.Platforms.GetByClientAndPlatform(s.ctx, "c1", "snowflake")
	s.Require().NoError(err)
	s.Equal(models.StatusCompleted, got.Status)
	s.NotNil(got.CompletedAt)

	s.ErrorIs(s.store.Platforms.UpdateStatus(s.ctx, "c1", "salesforce", models.StatusInProgress), apperrors.ErrPlatformNotFound)
	s.Require().NoError(s.store.Platforms.Delete(s.ctx, "c1", "snowflake"))
	s.ErrorIs(s.store.Platforms.Delete(s.ctx, "c1", "snowflake"), apperrors.ErrPlatformNotFound)
}

func (s *MemoryStoreTestSuite) TestAdvanceStatusIsConditional() {
	s.Require().NoError(s.store.Clients.Create(s.ctx, &models.Client{ID: "c1", Name: "Acme", Email: "a@acme.com", Status: models.StatusNotStarted}))
	s.Require().NoError(s.store.Platforms.Create(s.ctx, &models.ClientPlatform{ClientID: "c1", Platform: "snowflake", Status: models.StatusNotStarted}))

	moved, err := s.store.Clients.AdvanceStatus(s.ctx, "c1", models.StatusNotStarted, models.StatusInProgress)
	s.Require().NoError(err)
	s.True(moved)
	moved, err = s.store.Platforms.AdvanceStatus(s.ctx, "c1", "snowflake", models.StatusNotStarted, models.StatusInProgress)
	s.Require().NoError(err)
	s.True(moved)

	s.Require().NoError(s.store.Clients.UpdateStatus(s.ctx, "c1", models.StatusCompleted))
	moved, err = s.store.Clients.AdvanceStatus(s.ctx, "c1", models.StatusNotStarted, models.StatusInProgress)
	s.Require().NoError(err)
	s.False(moved)
	got, err := s.store.Clients.GetByID(s.ctx, "c1")
	s.Require().NoError(err)
	s.Equal(models.StatusCompleted, got.Status)

	moved, err = s.store.Platforms.AdvanceStatus(s.ctx, "c1", "snowflake", models.StatusNotStarted, models.StatusInProgress)
	s.Require().NoError(err)
	s.False(moved)
	moved, err = s.store.Clients.AdvanceStatus(s.ctx, "ghost", models.StatusNotStarted, models.StatusInProgress)
	s.Require().NoError(err)
	s.False(moved)
}

func (s *MemoryStoreTestSuite) TestStepUpsertIsIdempotent() {
	first := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	row := &models.StepProgress{ClientID: "c1", Platform: "core", StepID: "core.prerequisites", Status: models.StatusCompleted, CompletedAt: first}
	s.Require().NoError(s.store.StepProgress.Upsert(s.ctx, row))
	firstID := row.ID

	again := &models.StepProgress{ClientID: "c1", Platform: "core", StepID: "core.prerequisites", Status: models.StatusCompleted, CompletedAt: first.Add(time.Hour)}
	s.Require().NoError(s.store.StepProgress.Upsert(s.ctx, again))
	s.Equal(firstID, again.ID)

	rows, err := s.store.StepProgress.GetByPlatform(s.ctx, "c1", "core")
	s.Require().NoError(err)
	s.Require().Len(rows, 1)
	s.Equal(first.Add(time.Hour), rows[0].CompletedAt)

	key := models.StepKey{ClientID: "c1", Platform: "core", StepID: "core.prerequisites"}
	deleted, err := s.store.StepProgress.Delete(s.ctx, key)
	s.Require().NoError(err)
	s.True(deleted)
	deleted, err = s.store.StepProgress.Delete(s.ctx, key)
	s.Require().NoError(err)
	s.False(deleted)
}

func (s *MemoryStoreTestSuite) TestChecklistItemsOrdered() {
	for _, idx := range []int{2, 0, 1} {
		row := &models.ChecklistProgress{ClientID: "c1", Platform: "snowflake", StepID: "snowflake.connection", ItemIndex: idx, Status: models.StatusCompleted}
		s.Require().NoError(s.store.ChecklistProgress.Upsert(s.ctx, row))
	}
	key := models.StepKey{ClientID: "c1", Platform: "snowflake", StepID: "snowflake.connection"}
	items, err := s.store.ChecklistProgress.GetByStep(s.ctx, key)
	s.Require().NoError(err)
	s.Require().Len(items, 3)
	for i, item := range items {
		s.Equal(i, item.ItemIndex)
	}

	deleted, err := s.store.ChecklistProgress.Delete(s.ctx, models.ItemKey{StepKey: key, ItemIndex: 1})
	s.Require().NoError(err)
	s.True(deleted)
	items, err = s.store.ChecklistProgress.GetByStep(s.ctx, key)
	s.Require().NoError(err)
	s.Len(items, 2)
}

func (s *MemoryStoreTestSuite) TestNotesStepAndItemLevel() {
	zero := 0
	step := models.StepKey{ClientID: "c1", Platform: "core", StepID: "core.access_token"}
	s.Require().NoError(s.store.Notes.Upsert(s.ctx, &models.Note{ClientID: "c1", Platform: "core", StepID: "core.access_token", Note: "step note"}))
	s.Require().NoError(s.store.Notes.Upsert(s.ctx, &models.Note{ClientID: "c1", Platform: "core", StepID: "core.access_token", ItemIndex: &zero, Note: "item note"}))
	s.Require().NoError(s.store.Notes.Upsert(s.ctx, &models.Note{ClientID: "c1", Platform: "core", StepID: "core.access_token", Note: "step note v2"}))

	stepNotes, err := s.store.Notes.Find(s.ctx, models.NoteKey{StepKey: step})
	s.Require().NoError(err)
	s.Require().Len(stepNotes, 1)
	s.Equal("step note v2", stepNotes[0].Note)
	s.Nil(stepNotes[0].ItemIndex)

	itemNotes, err := s.store.Notes.Find(s.ctx, models.NoteKey{StepKey: step, ItemIndex: &zero})
	s.Require().NoError(err)
	s.Require().Len(itemNotes, 1)
	s.Equal("item note", itemNotes[0].Note)

	deleted, err := s.store.Notes.Delete(s.ctx, models.NoteKey{StepKey: step, ItemIndex: &zero})
	s.Require().NoError(err)
	s.True(deleted)
}

func (s *MemoryStoreTestSuite) TestConcurrentUpserts() {
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			row := &models.StepProgress{ClientID: "c1", Platform: "core", StepID: "core.pixel_setup", Status: models.StatusCompleted, CompletedAt: time.Now().UTC()}
			s.NoError(s.store.StepProgress.Upsert(s.ctx, row))
		}()
	}
	wg.Wait()

	rows, err := s.store.StepProgress.GetByClientID(s.ctx, "c1")
	s.Require().NoError(err)
	s.Len(rows, 1)
}

func TestMemoryStoreTestSuite(t *testing.T) {
	suite.Run(t, new(MemoryStoreTestSuite))
}
