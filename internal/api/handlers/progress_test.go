package handlers

import (
	"net/http"
	"testing"
	"time"

	"capi-onboarding-backend/internal/auth"
	"capi-onboarding-backend/internal/database/models"
	apperrors "capi-onboarding-backend/internal/errors"
	"capi-onboarding-backend/internal/mocks"
	"capi-onboarding-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ProgressHandlerTestSuite defines the test suite for ProgressHandler
type ProgressHandlerTestSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	mockProgressService *mocks.MockProgressServiceInterface
	handler             *ProgressHandler
	authService         *auth.AuthService
	httpSuite           *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *ProgressHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockProgressService = mocks.NewMockProgressServiceInterface(suite.ctrl)
	suite.handler = NewProgressHandler(suite.mockProgressService)
	suite.httpSuite = testutils.SetupHTTPTest()

	authService, err := auth.NewAuthService("handler-test-secret")
	suite.Require().NoError(err)
	suite.authService = authService

	progress := suite.httpSuite.Router.Group("/api/progress")
	progress.Use(auth.NewAuthMiddleware(authService).OptionalAuth())
	{
		progress.GET("/:clientId", suite.handler.GetClientProgress)
		progress.GET("/:clientId/:platform", suite.handler.GetPlatformProgress)
		progress.POST("/:clientId/:platform/:stepId", suite.handler.MarkStepComplete)
		progress.DELETE("/:clientId/:platform/:stepId", suite.handler.UnmarkStep)
		progress.GET("/:clientId/:platform/:stepId/items", suite.handler.GetChecklistProgress)
		progress.POST("/:clientId/:platform/:stepId/items/:itemIndex", suite.handler.MarkChecklistItemComplete)
		progress.DELETE("/:clientId/:platform/:stepId/items/:itemIndex", suite.handler.UnmarkChecklistItem)
	}
}

// TearDownTest cleans up after each test
func (suite *ProgressHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func stepRow(platform, stepID, by string) *models.StepProgress {
	return &models.StepProgress{
		ID:          "sp-1",
		ClientID:    "c-1",
		Platform:    platform,
		StepID:      stepID,
		Status:      models.StatusCompleted,
		CompletedAt: time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC),
		CompletedBy: by,
	}
}

func (suite *ProgressHandlerTestSuite) TestGetClientProgress() {
	suite.mockProgressService.EXPECT().
		GetClientProgress(gomock.Any(), "c-1").
		Return([]models.StepProgress{*stepRow("core", "core.prerequisites", "")}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/progress/c-1", nil)

	var response struct {
		Progress []models.StepProgress `json:"progress"`
	}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Require().Len(response.Progress, 1)
	assert.Equal(suite.T(), "core.prerequisites", response.Progress[0].StepID)
}

func (suite *ProgressHandlerTestSuite) TestGetPlatformProgressEmpty() {
	suite.mockProgressService.EXPECT().
		GetPlatformProgress(gomock.Any(), "c-1", "snowflake").
		Return([]models.StepProgress{}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/progress/c-1/snowflake", nil)

	testutils.AssertSuccessResponse(suite.T(), recorder, http.StatusOK)
	assert.JSONEq(suite.T(), `{"progress":[]}`, recorder.Body.String())
}

func (suite *ProgressHandlerTestSuite) TestMarkStepCompleteUsesBodyCompletedBy() {
	suite.mockProgressService.EXPECT().
		MarkStepComplete(gomock.Any(), "c-1", "core", "core.prerequisites", "jane@capi.example").
		Return(stepRow("core", "core.prerequisites", "jane@capi.example"), nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/progress/c-1/core/core.prerequisites",
		map[string]interface{}{"completedBy": "jane@capi.example"})

	var response struct {
		Step models.StepProgress `json:"step"`
	}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), "jane@capi.example", response.Step.CompletedBy)
}

func (suite *ProgressHandlerTestSuite) TestMarkStepCompleteFallsBackToTokenEmail() {
	token, err := suite.authService.GenerateJWT("ops@capi.example", "Ops", time.Hour)
	suite.Require().NoError(err)

	suite.mockProgressService.EXPECT().
		MarkStepComplete(gomock.Any(), "c-1", "core", "core.prerequisites", "ops@capi.example").
		Return(stepRow("core", "core.prerequisites", "ops@capi.example"), nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequestWithHeaders("POST", "/api/progress/c-1/core/core.prerequisites", nil,
		testutils.BearerHeader(token))

	testutils.AssertSuccessResponse(suite.T(), recorder, http.StatusOK)
}

func (suite *ProgressHandlerTestSuite) TestMarkStepCompleteAnonymousWithoutBody() {
	suite.mockProgressService.EXPECT().
		MarkStepComplete(gomock.Any(), "c-1", "snowflake", "snowflake.connection", "").
		Return(stepRow("snowflake", "snowflake.connection", ""), nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/progress/c-1/snowflake/snowflake.connection", nil)

	testutils.AssertSuccessResponse(suite.T(), recorder, http.StatusOK)
}

func (suite *ProgressHandlerTestSuite) TestMarkStepCompleteErrors() {
	testCases := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"unknown step", apperrors.ErrStepNotFound, http.StatusNotFound, "step not found"},
		{"wrong scope", apperrors.NewValidationError("platform", "core steps are recorded under platform 'core'"), http.StatusBadRequest, "platform"},
		{"store down", apperrors.NewPersistenceError("upsert step progress", assert.AnError), http.StatusInternalServerError, "upsert step progress"},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.mockProgressService.EXPECT().
				MarkStepComplete(gomock.Any(), "c-1", "snowflake", "x", "").
				Return(nil, tc.err).
				Times(1)

			recorder := suite.httpSuite.MakeRequest("POST", "/api/progress/c-1/snowflake/x", nil)

			testutils.AssertErrorResponse(suite.T(), recorder, tc.status, tc.message)
		})
	}
}

func (suite *ProgressHandlerTestSuite) TestUnmarkStep() {
	suite.mockProgressService.EXPECT().
		UnmarkStep(gomock.Any(), "c-1", "core", "core.prerequisites").
		Return(true, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("DELETE", "/api/progress/c-1/core/core.prerequisites", nil)

	testutils.AssertSuccessResponse(suite.T(), recorder, http.StatusOK)
	assert.JSONEq(suite.T(), `{"success":true}`, recorder.Body.String())
}

func (suite *ProgressHandlerTestSuite) TestUnmarkStepNotCompleted() {
	suite.mockProgressService.EXPECT().
		UnmarkStep(gomock.Any(), "c-1", "core", "core.prerequisites").
		Return(false, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("DELETE", "/api/progress/c-1/core/core.prerequisites", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "step progress not found")
}

func (suite *ProgressHandlerTestSuite) TestGetChecklistProgress() {
	suite.mockProgressService.EXPECT().
		GetChecklistProgress(gomock.Any(), "c-1", "core", "core.prerequisites").
		Return([]models.ChecklistProgress{{ClientID: "c-1", Platform: "core", StepID: "core.prerequisites", ItemIndex: 0}}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/progress/c-1/core/core.prerequisites/items", nil)

	var response struct {
		Items []models.ChecklistProgress `json:"items"`
	}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Require().Len(response.Items, 1)
	assert.Equal(suite.T(), 0, response.Items[0].ItemIndex)
}

func (suite *ProgressHandlerTestSuite) TestMarkChecklistItemComplete() {
	suite.mockProgressService.EXPECT().
		MarkChecklistItemComplete(gomock.Any(), "c-1", "core", "core.prerequisites", 2, "").
		Return(&models.ChecklistProgress{ClientID: "c-1", Platform: "core", StepID: "core.prerequisites", ItemIndex: 2, Status: models.StatusCompleted}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/progress/c-1/core/core.prerequisites/items/2", nil)

	var response struct {
		Item models.ChecklistProgress `json:"item"`
	}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), 2, response.Item.ItemIndex)
}

func (suite *ProgressHandlerTestSuite) TestItemIndexMustBeNonNegativeInteger() {
	for _, raw := range []string{"-1", "abc", "1.5"} {
		recorder := suite.httpSuite.MakeRequest("POST", "/api/progress/c-1/core/core.prerequisites/items/"+raw, nil)
		testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "itemIndex")

		recorder = suite.httpSuite.MakeRequest("DELETE", "/api/progress/c-1/core/core.prerequisites/items/"+raw, nil)
		testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "itemIndex")
	}
}

func (suite *ProgressHandlerTestSuite) TestUnmarkChecklistItemNotCompleted() {
	suite.mockProgressService.EXPECT().
		UnmarkChecklistItem(gomock.Any(), "c-1", "core", "core.prerequisites", 1).
		Return(false, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("DELETE", "/api/progress/c-1/core/core.prerequisites/items/1", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "checklist item progress not found")
}

// TestProgressHandlerTestSuite runs the test suite
func TestProgressHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ProgressHandlerTestSuite))
}
