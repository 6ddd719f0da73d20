package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"capi-onboarding-backend/internal/catalog"
	"capi-onboarding-backend/internal/database/models"
	apperrors "capi-onboarding-backend/internal/errors"
	"capi-onboarding-backend/internal/mocks"
	"capi-onboarding-backend/internal/repository"
	"capi-onboarding-backend/internal/repository/memory"
	"capi-onboarding-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// fakeClock hands out strictly increasing times
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Minute)
	return c.now
}

// ProgressServiceTestSuite runs the progress engine against the in-memory store
type ProgressServiceTestSuite struct {
	suite.Suite
	ctx      context.Context
	store    *repository.Store
	catalog  *catalog.Catalog
	clock    *fakeClock
	progress *service.ProgressService
	clients  *service.ClientService
}

func (suite *ProgressServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.store = memory.NewStore(false)
	suite.catalog = catalog.MustLoad()
	suite.clock = newFakeClock()
	v := service.NewValidator()
	suite.progress = service.NewProgressService(suite.store, suite.catalog, v).WithClock(suite.clock.Now)
	suite.clients = service.NewClientService(suite.store, suite.catalog, v)
}

// newClient creates a client with the given platforms attached
func (suite *ProgressServiceTestSuite) newClient(platforms ...string) string {
	client, err := suite.clients.CreateClient(suite.ctx, &service.CreateClientRequest{Name: "Acme Corp", Email: "ops@acme.test"})
	suite.Require().NoError(err)
	for _, p := range platforms {
		_, err := suite.clients.AddPlatform(suite.ctx, client.ID, p)
		suite.Require().NoError(err)
	}
	return client.ID
}

func (suite *ProgressServiceTestSuite) clientStatus(id string) models.Status {
	client, err := suite.store.Clients.GetByID(suite.ctx, id)
	suite.Require().NoError(err)
	return client.Status
}

func (suite *ProgressServiceTestSuite) platformStatus(clientID, platform string) models.Status {
	p, err := suite.store.Platforms.GetByClientAndPlatform(suite.ctx, clientID, platform)
	suite.Require().NoError(err)
	return p.Status
}

func (suite *ProgressServiceTestSuite) TestMarkStepComplete_Idempotent() {
	id := suite.newClient("snowflake")

	first, err := suite.progress.MarkStepComplete(suite.ctx, id, "core", "core.prerequisites", "a@acme.test")
	suite.Require().NoError(err)
	second, err := suite.progress.MarkStepComplete(suite.ctx, id, "core", "core.prerequisites", "b@acme.test")
	suite.Require().NoError(err)

	rows, err := suite.progress.GetClientProgress(suite.ctx, id)
	suite.Require().NoError(err)
	suite.Require().Len(rows, 1)
	suite.Equal(models.StatusCompleted, rows[0].Status)
	suite.Equal("b@acme.test", rows[0].CompletedBy)
	suite.True(second.CompletedAt.After(first.CompletedAt))
	suite.Equal(time.UTC, rows[0].CompletedAt.Location())
}

// A core step moves every attached platform and the client to in_progress
func (suite *ProgressServiceTestSuite) TestCoreStepFansOut() {
	id := suite.newClient("snowflake", "salesforce")

	_, err := suite.progress.MarkStepComplete(suite.ctx, id, "core", "core.prerequisites", "")
	suite.Require().NoError(err)

	suite.Equal(models.StatusInProgress, suite.platformStatus(id, "snowflake"))
	suite.Equal(models.StatusInProgress, suite.platformStatus(id, "salesforce"))
	suite.Equal(models.StatusInProgress, suite.clientStatus(id))
}

// A platform step only touches its own platform instance
func (suite *ProgressServiceTestSuite) TestPlatformStepPropagatesToOwnPlatformOnly() {
	id := suite.newClient("snowflake", "salesforce")

	_, err := suite.progress.MarkStepComplete(suite.ctx, id, "snowflake", "snowflake.connection", "")
	suite.Require().NoError(err)

	suite.Equal(models.StatusInProgress, suite.platformStatus(id, "snowflake"))
	suite.Equal(models.StatusNotStarted, suite.platformStatus(id, "salesforce"))
	suite.Equal(models.StatusInProgress, suite.clientStatus(id))
}

func (suite *ProgressServiceTestSuite) TestSharedStepRecordedPerPlatform() {
	id := suite.newClient("snowflake", "salesforce")

	_, err := suite.progress.MarkStepComplete(suite.ctx, id, "salesforce", "testing.validation", "")
	suite.Require().NoError(err)

	sf, err := suite.progress.GetPlatformProgress(suite.ctx, id, "salesforce")
	suite.Require().NoError(err)
	suite.Len(sf, 1)
	snow, err := suite.progress.GetPlatformProgress(suite.ctx, id, "snowflake")
	suite.Require().NoError(err)
	suite.Empty(snow)
	suite.Equal(models.StatusNotStarted, suite.platformStatus(id, "snowflake"))
}

func (suite *ProgressServiceTestSuite) TestPropagationNeverDowngrades() {
	id := suite.newClient("snowflake", "salesforce")
	suite.Require().NoError(suite.store.Platforms.UpdateStatus(suite.ctx, id, "snowflake", models.StatusCompleted))
	suite.Require().NoError(suite.store.Clients.UpdateStatus(suite.ctx, id, models.StatusNeedsAttention))

	_, err := suite.progress.MarkStepComplete(suite.ctx, id, "core", "core.pixel_setup", "")
	suite.Require().NoError(err)

	suite.Equal(models.StatusCompleted, suite.platformStatus(id, "snowflake"))
	suite.Equal(models.StatusInProgress, suite.platformStatus(id, "salesforce"))
	suite.Equal(models.StatusNeedsAttention, suite.clientStatus(id))
}

// Completing every wizard step never marks the platform or client completed
func (suite *ProgressServiceTestSuite) TestNoPrematureCompletion() {
	id := suite.newClient("snowflake")

	for _, step := range suite.catalog.WizardSteps("snowflake") {
		_, err := suite.progress.MarkStepComplete(suite.ctx, id, catalog.RecordingPlatform(step, "snowflake"), step.ID, "")
		suite.Require().NoError(err, step.ID)
	}

	suite.Equal(models.StatusInProgress, suite.platformStatus(id, "snowflake"))
	suite.Equal(models.StatusInProgress, suite.clientStatus(id))
}

// Mark then unmark removes the row but leaves ancestors in_progress
func (suite *ProgressServiceTestSuite) TestUnmarkKeepsAncestorStatus() {
	id := suite.newClient("snowflake")

	_, err := suite.progress.MarkStepComplete(suite.ctx, id, "snowflake", "snowflake.connection", "")
	suite.Require().NoError(err)

	deleted, err := suite.progress.UnmarkStep(suite.ctx, id, "snowflake", "snowflake.connection")
	suite.Require().NoError(err)
	suite.True(deleted)

	rows, err := suite.progress.GetPlatformProgress(suite.ctx, id, "snowflake")
	suite.Require().NoError(err)
	suite.Empty(rows)
	suite.Equal(models.StatusInProgress, suite.platformStatus(id, "snowflake"))
	suite.Equal(models.StatusInProgress, suite.clientStatus(id))

	deleted, err = suite.progress.UnmarkStep(suite.ctx, id, "snowflake", "snowflake.connection")
	suite.Require().NoError(err)
	suite.False(deleted)
}

// statusRacer completes the client right after it is read, the way a
// concurrent PUT /clients/:id would
type statusRacer struct {
	repository.ClientRepositoryInterface
	status models.Status
}

func (r *statusRacer) GetByID(ctx context.Context, id string) (*models.Client, error) {
	client, err := r.ClientRepositoryInterface.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.ClientRepositoryInterface.UpdateStatus(ctx, id, r.status); err != nil {
		return nil, err
	}
	return client, nil
}

func (suite *ProgressServiceTestSuite) TestPropagationKeepsConcurrentStatus() {
	id := suite.newClient("snowflake")
	suite.store.Clients = &statusRacer{ClientRepositoryInterface: suite.store.Clients, status: models.StatusCompleted}

	_, err := suite.progress.MarkStepComplete(suite.ctx, id, "snowflake", "snowflake.connection", "")
	suite.Require().NoError(err)

	suite.Equal(models.StatusCompleted, suite.clientStatus(id))
	suite.Equal(models.StatusInProgress, suite.platformStatus(id, "snowflake"))
}

func (suite *ProgressServiceTestSuite) TestMarkStepOnUnattachedPlatform() {
	id := suite.newClient()

	_, err := suite.progress.MarkStepComplete(suite.ctx, id, "bigquery", "bigquery.connection", "")
	suite.Require().NoError(err)

	_, err = suite.store.Platforms.GetByClientAndPlatform(suite.ctx, id, "bigquery")
	suite.ErrorIs(err, apperrors.ErrPlatformNotFound)
	suite.Equal(models.StatusInProgress, suite.clientStatus(id))
}

func (suite *ProgressServiceTestSuite) TestMarkStepValidation() {
	id := suite.newClient("snowflake")

	testCases := []struct {
		name     string
		clientID string
		platform string
		stepID   string
		check    func(error) bool
	}{
		{"missing client id", "", "core", "core.prerequisites", apperrors.IsValidation},
		{"missing platform", id, "", "core.prerequisites", apperrors.IsValidation},
		{"unknown step", id, "core", "core.nope", apperrors.IsNotFound},
		{"core step under platform", id, "snowflake", "core.prerequisites", apperrors.IsValidation},
		{"platform step under other platform", id, "salesforce", "snowflake.connection", apperrors.IsValidation},
		{"shared step under core", id, "core", "testing.validation", apperrors.IsValidation},
		{"shared step under unknown platform", id, "not-a-platform", "testing.validation", apperrors.IsValidation},
		{"unknown client", "ghost", "core", "core.prerequisites", apperrors.IsNotFound},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			_, err := suite.progress.MarkStepComplete(suite.ctx, tc.clientID, tc.platform, tc.stepID, "")
			suite.Require().Error(err)
			suite.True(tc.check(err), err.Error())
		})
	}

	rows, err := suite.progress.GetClientProgress(suite.ctx, id)
	suite.Require().NoError(err)
	suite.Empty(rows)
}

func (suite *ProgressServiceTestSuite) TestChecklistItems() {
	id := suite.newClient("snowflake")

	for _, idx := range []int{2, 0} {
		_, err := suite.progress.MarkChecklistItemComplete(suite.ctx, id, "core", "core.prerequisites", idx, "a@acme.test")
		suite.Require().NoError(err)
	}
	_, err := suite.progress.MarkChecklistItemComplete(suite.ctx, id, "core", "core.prerequisites", 2, "b@acme.test")
	suite.Require().NoError(err)

	items, err := suite.progress.GetChecklistProgress(suite.ctx, id, "core", "core.prerequisites")
	suite.Require().NoError(err)
	suite.Require().Len(items, 2)
	suite.Equal(0, items[0].ItemIndex)
	suite.Equal(2, items[1].ItemIndex)
	suite.Equal("b@acme.test", items[1].CompletedBy)

	// items neither complete the step nor propagate
	steps, err := suite.progress.GetClientProgress(suite.ctx, id)
	suite.Require().NoError(err)
	suite.Empty(steps)
	suite.Equal(models.StatusNotStarted, suite.platformStatus(id, "snowflake"))
	suite.Equal(models.StatusNotStarted, suite.clientStatus(id))

	_, err = suite.progress.MarkChecklistItemComplete(suite.ctx, id, "core", "core.prerequisites", -1, "")
	suite.True(apperrors.IsValidation(err))
	_, err = suite.progress.MarkChecklistItemComplete(suite.ctx, id, "core", "core.prerequisites", 3, "")
	suite.ErrorIs(err, apperrors.ErrChecklistItemNotFound)

	deleted, err := suite.progress.UnmarkChecklistItem(suite.ctx, id, "core", "core.prerequisites", 0)
	suite.Require().NoError(err)
	suite.True(deleted)
	deleted, err = suite.progress.UnmarkChecklistItem(suite.ctx, id, "core", "core.prerequisites", 0)
	suite.Require().NoError(err)
	suite.False(deleted)
	_, err = suite.progress.UnmarkChecklistItem(suite.ctx, id, "core", "core.prerequisites", -1)
	suite.True(apperrors.IsValidation(err))
}

func (suite *ProgressServiceTestSuite) TestCountPlatformCompletion() {
	a := suite.newClient("snowflake", "salesforce")
	b := suite.newClient("segment")
	suite.Require().NoError(suite.store.Platforms.UpdateStatus(suite.ctx, a, "salesforce", models.StatusCompleted))

	counts, err := suite.progress.CountAllPlatformCompletion(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal(models.PlatformCounts{Total: 2, Completed: 1}, counts[a])
	suite.Equal(models.PlatformCounts{Total: 1, Completed: 0}, counts[b])

	one, err := suite.progress.CountPlatformCompletion(suite.ctx, "nobody")
	suite.Require().NoError(err)
	suite.Equal(models.PlatformCounts{}, one)
}

func TestProgressServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProgressServiceTestSuite))
}

// ProgressServiceMockTestSuite covers store failures with gomock repositories
type ProgressServiceMockTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockClients   *mocks.MockClientRepositoryInterface
	mockPlatforms *mocks.MockPlatformRepositoryInterface
	mockSteps     *mocks.MockStepProgressRepositoryInterface
	progress      *service.ProgressService
}

func (suite *ProgressServiceMockTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockClients = mocks.NewMockClientRepositoryInterface(suite.ctrl)
	suite.mockPlatforms = mocks.NewMockPlatformRepositoryInterface(suite.ctrl)
	suite.mockSteps = mocks.NewMockStepProgressRepositoryInterface(suite.ctrl)
	store := &repository.Store{
		Clients:      suite.mockClients,
		Platforms:    suite.mockPlatforms,
		StepProgress: suite.mockSteps,
	}
	suite.progress = service.NewProgressService(store, catalog.MustLoad(), service.NewValidator())
}

func (suite *ProgressServiceMockTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestPropagationFailuresAreSwallowed checks a failing ancestor update does not fail the mark
func (suite *ProgressServiceMockTestSuite) TestPropagationFailuresAreSwallowed() {
	ctx := context.Background()
	client := &models.Client{ID: "c1", Status: models.StatusNotStarted}

	suite.mockClients.EXPECT().GetByID(gomock.Any(), "c1").Return(client, nil).Times(1)
	suite.mockSteps.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	suite.mockPlatforms.EXPECT().GetByClientID(gomock.Any(), "c1").Return([]models.ClientPlatform{
		{ClientID: "c1", Platform: "snowflake", Status: models.StatusNotStarted},
		{ClientID: "c1", Platform: "segment", Status: models.StatusNotStarted},
		{ClientID: "c1", Platform: "hubspot", Status: models.StatusCompleted},
	}, nil).Times(1)
	suite.mockPlatforms.EXPECT().AdvanceStatus(gomock.Any(), "c1", "snowflake", models.StatusNotStarted, models.StatusInProgress).
		Return(false, apperrors.NewPersistenceError("update", errors.New("boom"))).Times(1)
	suite.mockPlatforms.EXPECT().AdvanceStatus(gomock.Any(), "c1", "segment", models.StatusNotStarted, models.StatusInProgress).
		Return(true, nil).Times(1)
	suite.mockClients.EXPECT().AdvanceStatus(gomock.Any(), "c1", models.StatusNotStarted, models.StatusInProgress).
		Return(false, errors.New("sheet quota exceeded")).Times(1)

	progress, err := suite.progress.MarkStepComplete(ctx, "c1", "core", "core.prerequisites", "")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.StatusCompleted, progress.Status)
}

// TestUpsertFailureIsPersistenceError checks a failed write is reported and skips propagation
func (suite *ProgressServiceMockTestSuite) TestUpsertFailureIsPersistenceError() {
	ctx := context.Background()

	suite.mockClients.EXPECT().GetByID(gomock.Any(), "c1").Return(&models.Client{ID: "c1"}, nil).Times(1)
	suite.mockSteps.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(errors.New("connection reset")).Times(1)

	progress, err := suite.progress.MarkStepComplete(ctx, "c1", "snowflake", "snowflake.connection", "")

	assert.Nil(suite.T(), progress)
	assert.True(suite.T(), apperrors.IsPersistence(err))
}

// TestAdvanceFailureOnPlatformStep checks a failed platform write is swallowed
func (suite *ProgressServiceMockTestSuite) TestAdvanceFailureOnPlatformStep() {
	ctx := context.Background()

	suite.mockClients.EXPECT().GetByID(gomock.Any(), "c1").Return(&models.Client{ID: "c1", Status: models.StatusInProgress}, nil).Times(1)
	suite.mockSteps.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	suite.mockPlatforms.EXPECT().AdvanceStatus(gomock.Any(), "c1", "snowflake", models.StatusNotStarted, models.StatusInProgress).
		Return(false, errors.New("timeout")).Times(1)

	_, err := suite.progress.MarkStepComplete(ctx, "c1", "snowflake", "snowflake.connection", "")

	assert.NoError(suite.T(), err)
}

// TestStaleClientIsNotOverwritten checks a client that left not_started after
// it was read keeps its status
func (suite *ProgressServiceMockTestSuite) TestStaleClientIsNotOverwritten() {
	ctx := context.Background()
	client := &models.Client{ID: "c1", Status: models.StatusNotStarted}

	suite.mockClients.EXPECT().GetByID(gomock.Any(), "c1").Return(client, nil).Times(1)
	suite.mockSteps.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	suite.mockPlatforms.EXPECT().AdvanceStatus(gomock.Any(), "c1", "segment", models.StatusNotStarted, models.StatusInProgress).
		Return(false, nil).Times(1)
	suite.mockClients.EXPECT().AdvanceStatus(gomock.Any(), "c1", models.StatusNotStarted, models.StatusInProgress).
		Return(false, nil).Times(1)

	_, err := suite.progress.MarkStepComplete(ctx, "c1", "segment", "segment.connection", "")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.StatusNotStarted, client.Status)
}

// TestValidationPrecedesPersistence checks rejected input never reaches a
// repository; none of the mocks expect a call
func (suite *ProgressServiceMockTestSuite) TestValidationPrecedesPersistence() {
	ctx := context.Background()

	testCases := []struct {
		name     string
		clientID string
		platform string
		stepID   string
	}{
		{"empty client id", "", "core", "core.prerequisites"},
		{"core step under platform", "c1", "snowflake", "core.prerequisites"},
		{"shared step under unknown platform", "c1", "not-a-platform", "testing.validation"},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			_, err := suite.progress.MarkStepComplete(ctx, tc.clientID, tc.platform, tc.stepID, "")
			assert.True(suite.T(), apperrors.IsValidation(err))

			_, err = suite.progress.MarkChecklistItemComplete(ctx, tc.clientID, tc.platform, tc.stepID, 0, "")
			assert.True(suite.T(), apperrors.IsValidation(err))
		})
	}
}

func TestProgressServiceMockTestSuite(t *testing.T) {
	suite.Run(t, new(ProgressServiceMockTestSuite))
}
