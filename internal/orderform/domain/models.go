package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// OrderForm derives from a saved quote plus the legal boilerplate a signed
// order carries. It is persisted separately from the quote and never mutates
// the quote's snapshot.
type OrderForm struct {
	ID      snowflake.ID `gorm:"primaryKey" json:"id"`
	QuoteID snowflake.ID `gorm:"not null;index" json:"quote_id"`
	Subject string       `gorm:"type:text;not null;index" json:"-"`

	PONumber            string `gorm:"type:text" json:"po_number,omitempty"`
	BillingContactName  string `gorm:"type:text" json:"billing_contact_name,omitempty"`
	BillingContactEmail string `gorm:"type:text" json:"billing_contact_email,omitempty"`

	SuccessCriteria string `gorm:"type:text;not null" json:"success_criteria"`
	Terms           string `gorm:"type:text;not null" json:"terms"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (OrderForm) TableName() string { return "order_forms" }
