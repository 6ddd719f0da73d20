package models

import (
	"github.com/google/uuid"
)

// NewID returns a fresh random identifier for any record
func NewID() string {
	return uuid.NewString()
}

// ensureID assigns a new id when none was set by the caller
func ensureID(id *string) {
	if *id == "" {
		*id = NewID()
	}
}
