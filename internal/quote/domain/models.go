package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	pricingdomain "github.com/smallbiznis/partnerportal/internal/pricing/domain"
	"gorm.io/datatypes"
)

// FeeMode distinguishes an auto-computed implementation fee from a user
// override. Unset means the fee is not part of the quote.
type FeeMode string

const (
	FeeModeUnset  FeeMode = "unset"
	FeeModeAuto   FeeMode = "auto"
	FeeModeCustom FeeMode = "custom"
)

// Quote is a saved pricing snapshot plus the selections and client info that
// produced it. The computed columns are immutable once saved; editing a quote
// means recomputing and saving a new row.
type Quote struct {
	ID      snowflake.ID `gorm:"primaryKey" json:"id"`
	Subject string       `gorm:"type:text;not null;index" json:"-"`

	ProductLine      string                         `gorm:"type:text;not null" json:"product_line"`
	Variant          pricingdomain.Variant          `gorm:"type:text;not null" json:"variant"`
	Scenarios        datatypes.JSONSlice[string]    `gorm:"type:jsonb" json:"scenarios,omitempty"`
	CameraCount      int                            `gorm:"not null" json:"camera_count"`
	SubscriptionType pricingdomain.SubscriptionCode `gorm:"type:text;not null" json:"subscription_type"`
	StarterPackage   string                         `gorm:"type:text" json:"starter_package,omitempty"`
	DiscountPercent  int                            `gorm:"not null" json:"discount_percent"`

	IncludeServer          bool    `gorm:"not null" json:"include_server"`
	ServerCount            int     `gorm:"not null" json:"server_count"`
	ImplementationFeeMode  FeeMode `gorm:"type:text;not null;default:unset" json:"implementation_fee_mode"`
	ImplementationFeeCents int64   `gorm:"not null" json:"implementation_fee_cents"`
	IncludeSpeakers        bool    `gorm:"not null" json:"include_speakers"`
	SpeakerCount           int     `gorm:"not null" json:"speaker_count"`
	IncludeTravel          bool    `gorm:"not null" json:"include_travel"`
	TravelCents            int64   `gorm:"not null" json:"travel_cents"`

	ClientName    string `gorm:"type:text;not null" json:"client_name"`
	ClientCompany string `gorm:"type:text;not null" json:"client_company"`
	ClientEmail   string `gorm:"type:text;not null" json:"client_email"`
	ClientAddress string `gorm:"type:text" json:"client_address,omitempty"`
	ClientCity    string `gorm:"type:text" json:"client_city,omitempty"`
	ClientState   string `gorm:"type:text" json:"client_state,omitempty"`
	ClientZip     string `gorm:"type:text" json:"client_zip,omitempty"`
	CustomerRef   string `gorm:"type:text" json:"customer_ref,omitempty"`

	PerCameraMonthlyCents  int64          `gorm:"not null" json:"per_camera_monthly_cents"`
	TierBreakdown          datatypes.JSON `gorm:"type:jsonb" json:"tier_breakdown"`
	MonthlyRecurringCents  int64          `gorm:"not null" json:"monthly_recurring_cents"`
	AnnualRecurringCents   int64          `gorm:"not null" json:"annual_recurring_cents"`
	AdjustedMonthlyCents   int64          `gorm:"not null" json:"adjusted_monthly_cents"`
	AdjustedAnnualCents    int64          `gorm:"not null" json:"adjusted_annual_cents"`
	DiscountedMonthlyCents int64          `gorm:"not null" json:"discounted_monthly_cents"`
	DiscountedAnnualCents  int64          `gorm:"not null" json:"discounted_annual_cents"`
	DiscountAmountCents    int64          `gorm:"not null" json:"discount_amount_cents"`
	TotalOneTimeCents      int64          `gorm:"not null" json:"total_one_time_cents"`
	LicenseCents           int64          `gorm:"not null" json:"license_cents"`
	AMCAnnualCents         int64          `gorm:"not null" json:"amc_annual_cents"`
	ContractMonths         int            `gorm:"not null" json:"contract_months"`
	TotalContractCents     int64          `gorm:"not null" json:"total_contract_cents"`

	SecondaryCurrency string  `gorm:"type:text" json:"secondary_currency,omitempty"`
	ExchangeRate      float64 `gorm:"not null;default:0" json:"exchange_rate,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Quote) TableName() string { return "quotes" }
