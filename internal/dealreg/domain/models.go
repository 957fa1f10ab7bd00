package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

type Status string

const (
	StatusSubmitted Status = "submitted"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusClosed    Status = "closed"
)

// DealRegistration protects a partner's claim on a prospect while the
// deal is being worked.
type DealRegistration struct {
	ID                snowflake.ID `gorm:"primaryKey" json:"id"`
	Subject           string       `gorm:"type:text;not null;index" json:"-"`
	CustomerName      string       `gorm:"type:text;not null" json:"customer_name"`
	CustomerEmail     string       `gorm:"type:text" json:"customer_email,omitempty"`
	ExpectedCameras   int          `gorm:"not null;default:0" json:"expected_cameras"`
	ExpectedCloseDate *time.Time   `json:"expected_close_date,omitempty"`
	Status            Status       `gorm:"type:text;not null;default:'submitted'" json:"status"`
	Notes             string       `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt         time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt         time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (DealRegistration) TableName() string { return "deal_registrations" }
