package models

import (
	"time"

	"gorm.io/gorm"
)

// StepProgress records that a step is completed for a (client, platform).
// A missing row means the step is not started.
type StepProgress struct {
	ID          string    `json:"id" gorm:"type:varchar(64);primaryKey"`
	ClientID    string    `json:"clientId" gorm:"type:varchar(64);not null;uniqueIndex:idx_step_progress_key"`
	Platform    string    `json:"platform" gorm:"size:64;not null;uniqueIndex:idx_step_progress_key"`
	StepID      string    `json:"stepId" gorm:"size:128;not null;uniqueIndex:idx_step_progress_key"`
	Status      Status    `json:"status" gorm:"size:32;not null"`
	CompletedAt time.Time `json:"completedAt"`
	CompletedBy string    `json:"completedBy" gorm:"size:254"`
}

// TableName returns the table name for StepProgress
func (StepProgress) TableName() string {
	return "step_progress"
}

// BeforeCreate sets the id if not already set
func (s *StepProgress) BeforeCreate(tx *gorm.DB) error {
	ensureID(&s.ID)
	return nil
}

// ChecklistProgress records that one checklist item of a step is completed
type ChecklistProgress struct {
	ID          string    `json:"id" gorm:"type:varchar(64);primaryKey"`
	ClientID    string    `json:"clientId" gorm:"type:varchar(64);not null;uniqueIndex:idx_checklist_progress_key"`
	Platform    string    `json:"platform" gorm:"size:64;not null;uniqueIndex:idx_checklist_progress_key"`
	StepID      string    `json:"stepId" gorm:"size:128;not null;uniqueIndex:idx_checklist_progress_key"`
	ItemIndex   int       `json:"itemIndex" gorm:"not null;uniqueIndex:idx_checklist_progress_key"`
	Status      Status    `json:"status" gorm:"size:32;not null"`
	CompletedAt time.Time `json:"completedAt"`
	CompletedBy string    `json:"completedBy" gorm:"size:254"`
}

// TableName returns the table name for ChecklistProgress
func (ChecklistProgress) TableName() string {
	return "checklist_progress"
}

// BeforeCreate sets the id if not already set
func (c *ChecklistProgress) BeforeCreate(tx *gorm.DB) error {
	ensureID(&c.ID)
	return nil
}

// StepKey addresses one step of one platform instance
type StepKey struct {
	ClientID string
	Platform string
	StepID   string
}

// ItemKey addresses one checklist item
type ItemKey struct {
	StepKey
	ItemIndex int
}
