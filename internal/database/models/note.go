package models

import (
	"time"

	"gorm.io/gorm"
)

// Note is freeform text attached to a step, or to one checklist item when
// ItemIndex is set. An empty Note is how a note is cleared.
type Note struct {
	ID        string    `json:"id" gorm:"type:varchar(64);primaryKey"`
	ClientID  string    `json:"clientId" gorm:"type:varchar(64);not null;index:idx_note_key"`
	Platform  string    `json:"platform" gorm:"size:64;not null;index:idx_note_key"`
	StepID    string    `json:"stepId" gorm:"size:128;not null;index:idx_note_key"`
	ItemIndex *int      `json:"itemIndex"`
	Note      string    `json:"note" gorm:"type:text"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"autoUpdateTime:false"`
	UpdatedBy string    `json:"updatedBy" gorm:"size:254"`
}

// TableName returns the table name for Note
func (Note) TableName() string {
	return "notes"
}

// BeforeCreate sets the id if not already set
func (n *Note) BeforeCreate(tx *gorm.DB) error {
	ensureID(&n.ID)
	return nil
}

// NoteKey addresses a note; a nil ItemIndex is the step-level note
type NoteKey struct {
	StepKey
	ItemIndex *int
}

// Matches reports whether n is the note addressed by k
func (k NoteKey) Matches(n Note) bool {
	if n.ClientID != k.ClientID || n.Platform != k.Platform || n.StepID != k.StepID {
		return false
	}
	if k.ItemIndex == nil || n.ItemIndex == nil {
		return k.ItemIndex == nil && n.ItemIndex == nil
	}
	return *k.ItemIndex == *n.ItemIndex
}
