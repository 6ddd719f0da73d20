package models

import (
	"time"

	"gorm.io/gorm"
)

// Client is an advertiser being onboarded onto the Conversions API
type Client struct {
	ID        string    `json:"id" gorm:"type:varchar(64);primaryKey"`
	Name      string    `json:"name" gorm:"size:100;not null" validate:"required,min=2,max=100"`
	Email     string    `json:"email" gorm:"size:254;not null" validate:"required,email"`
	Notes     string    `json:"notes" gorm:"size:1000" validate:"max=1000"`
	Status    Status    `json:"status" gorm:"size:32;not null;default:not_started;index"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the table name for Client
func (Client) TableName() string {
	return "clients"
}

// BeforeCreate sets the id if not already set
func (c *Client) BeforeCreate(tx *gorm.DB) error {
	ensureID(&c.ID)
	return nil
}
