package memory

import (
	"time"

	"capi-onboarding-backend/internal/database/models"
)

func ts(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}

// seed loads the demo data shown when the service runs without a real store
func (s *state) seed() {
	s.clients = []models.Client{
		{ID: "mock-client-1", Name: "Acme Corporation", Email: "contact@acme.com", Status: models.StatusInProgress,
			Notes: "Large enterprise client", CreatedAt: ts("2024-01-15T10:00:00Z"), UpdatedAt: ts("2024-01-21T10:00:00Z")},
		{ID: "mock-client-2", Name: "TechStart Inc", Email: "hello@techstart.io", Status: models.StatusCompleted,
			Notes: "Completed Snowflake integration", CreatedAt: ts("2024-02-01T14:30:00Z"), UpdatedAt: ts("2024-02-15T10:00:00Z")},
		{ID: "mock-client-3", Name: "Global Retail", Email: "digital@globalretail.com", Status: models.StatusNotStarted,
			CreatedAt: ts("2024-02-20T09:15:00Z"), UpdatedAt: ts("2024-02-20T09:15:00Z")},
	}

	completed := ts("2024-02-15T10:00:00Z")
	s.platforms = []models.ClientPlatform{
		{ID: "mp-1", ClientID: "mock-client-1", Platform: "snowflake", Status: models.StatusInProgress, StartedAt: ts("2024-01-20T10:00:00Z")},
		{ID: "mp-2", ClientID: "mock-client-1", Platform: "salesforce", Status: models.StatusNotStarted, StartedAt: ts("2024-01-25T10:00:00Z")},
		{ID: "mp-3", ClientID: "mock-client-2", Platform: "snowflake", Status: models.StatusCompleted, StartedAt: ts("2024-02-01T10:00:00Z"), CompletedAt: &completed},
	}

	s.steps = []models.StepProgress{
		{ID: "prog-1", ClientID: "mock-client-1", Platform: "core", StepID: "core.prerequisites", Status: models.StatusCompleted, CompletedAt: ts("2024-01-20T11:00:00Z")},
		{ID: "prog-2", ClientID: "mock-client-1", Platform: "core", StepID: "core.pixel_setup", Status: models.StatusCompleted, CompletedAt: ts("2024-01-20T12:00:00Z")},
		{ID: "prog-3", ClientID: "mock-client-1", Platform: "snowflake", StepID: "snowflake.connection", Status: models.StatusCompleted, CompletedAt: ts("2024-01-21T10:00:00Z")},
	}
}
