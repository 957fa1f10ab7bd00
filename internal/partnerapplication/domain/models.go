package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// PartnerApplication is a request to join the partner program, submitted from
// the public site and reviewed by an admin.
type PartnerApplication struct {
	ID          snowflake.ID `gorm:"primaryKey" json:"id"`
	CompanyName string       `gorm:"type:text;not null" json:"company_name"`
	ContactName string       `gorm:"type:text;not null" json:"contact_name"`
	Email       string       `gorm:"type:text;not null" json:"email"`
	Phone       string       `gorm:"type:text" json:"phone,omitempty"`
	Country     string       `gorm:"type:text" json:"country,omitempty"`
	Website     string       `gorm:"type:text" json:"website,omitempty"`
	Status      Status       `gorm:"type:text;not null;default:pending" json:"status"`
	Notes       string       `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt   time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (PartnerApplication) TableName() string { return "partner_applications" }
