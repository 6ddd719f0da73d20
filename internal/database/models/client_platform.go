package models

import (
	"time"

	"gorm.io/gorm"
)

// ClientPlatform is one data platform attached to a client (a platform instance)
type ClientPlatform struct {
	ID          string     `json:"id" gorm:"type:varchar(64);primaryKey"`
	ClientID    string     `json:"clientId" gorm:"type:varchar(64);not null;uniqueIndex:idx_client_platform"`
	Platform    string     `json:"platform" gorm:"size:64;not null;uniqueIndex:idx_client_platform"`
	Status      Status     `json:"status" gorm:"size:32;not null;default:not_started"`
	StartedAt   time.Time  `json:"startedAt"`
	CompletedAt *time.Time `json:"completedAt"`
}

// TableName returns the table name for ClientPlatform
func (ClientPlatform) TableName() string {
	return "client_platforms"
}

// BeforeCreate sets the id if not already set
func (p *ClientPlatform) BeforeCreate(tx *gorm.DB) error {
	ensureID(&p.ID)
	return nil
}

// PlatformCounts summarises a client's platform instances
type PlatformCounts struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
}
