package testutils

import (
	"fmt"
	"sync/atomic"
	"time"

	"capi-onboarding-backend/internal/database/models"
)

var factorySeq atomic.Int64

func nextSeq() int64 {
	return factorySeq.Add(1)
}

// ClientFactory provides methods to create test Client data
type ClientFactory struct{}

// NewClientFactory creates a new ClientFactory
func NewClientFactory() *ClientFactory {
	return &ClientFactory{}
}

// Create creates a test Client with default values
func (f *ClientFactory) Create() *models.Client {
	n := nextSeq()
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &models.Client{
		ID:        models.NewID(),
		Name:      fmt.Sprintf("Test Client %d", n),
		Email:     fmt.Sprintf("client%d@example.com", n),
		Notes:     "A test client",
		Status:    models.StatusNotStarted,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// WithStatus creates a test Client in the given status
func (f *ClientFactory) WithStatus(status models.Status) *models.Client {
	c := f.Create()
	c.Status = status
	return c
}

// ClientPlatformFactory provides methods to create test ClientPlatform data
type ClientPlatformFactory struct{}

// NewClientPlatformFactory creates a new ClientPlatformFactory
func NewClientPlatformFactory() *ClientPlatformFactory {
	return &ClientPlatformFactory{}
}

// Create creates a not_started platform instance for clientID
func (f *ClientPlatformFactory) Create(clientID, platform string) *models.ClientPlatform {
	return &models.ClientPlatform{
		ID:        models.NewID(),
		ClientID:  clientID,
		Platform:  platform,
		Status:    models.StatusNotStarted,
		StartedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
}

// ProgressFactory provides methods to create test step and checklist progress
type ProgressFactory struct{}

// NewProgressFactory creates a new ProgressFactory
func NewProgressFactory() *ProgressFactory {
	return &ProgressFactory{}
}

// Step creates a completed step row
func (f *ProgressFactory) Step(clientID, platform, stepID string) *models.StepProgress {
	return &models.StepProgress{
		ClientID:    clientID,
		Platform:    platform,
		StepID:      stepID,
		Status:      models.StatusCompleted,
		CompletedAt: time.Now().UTC().Truncate(time.Microsecond),
		CompletedBy: "tester@example.com",
	}
}

// Item creates a completed checklist item row
func (f *ProgressFactory) Item(clientID, platform, stepID string, itemIndex int) *models.ChecklistProgress {
	return &models.ChecklistProgress{
		ClientID:    clientID,
		Platform:    platform,
		StepID:      stepID,
		ItemIndex:   itemIndex,
		Status:      models.StatusCompleted,
		CompletedAt: time.Now().UTC().Truncate(time.Microsecond),
		CompletedBy: "tester@example.com",
	}
}

// NoteFactory provides methods to create test Note data
type NoteFactory struct{}

// NewNoteFactory creates a new NoteFactory
func NewNoteFactory() *NoteFactory {
	return &NoteFactory{}
}

// Create creates a note; a nil itemIndex makes it a step-level note
func (f *NoteFactory) Create(clientID, platform, stepID string, itemIndex *int, text string) *models.Note {
	return &models.Note{
		ClientID:  clientID,
		Platform:  platform,
		StepID:    stepID,
		ItemIndex: itemIndex,
		Note:      text,
		UpdatedAt: time.Now().UTC().Truncate(time.Microsecond),
		UpdatedBy: "tester@example.com",
	}
}
