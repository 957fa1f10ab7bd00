package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Variant selects which tier-price table applies to a quote.
type Variant string

const (
	VariantCore       Variant = "core"
	VariantEverything Variant = "everything"
)

// SubscriptionCode identifies a billing cadence/commitment.
type SubscriptionCode string

const (
	SubscriptionMonthly    SubscriptionCode = "monthly"
	SubscriptionYearly     SubscriptionCode = "yearly"
	SubscriptionThreeYear  SubscriptionCode = "three_year"
	SubscriptionThreeMonth SubscriptionCode = "three_month"
	SubscriptionPerpetual  SubscriptionCode = "perpetual"
)

// ProductLine is a camera product family with its own tier tables and limits.
type ProductLine struct {
	ID                 snowflake.ID `gorm:"primaryKey" json:"id"`
	Code               string       `gorm:"type:text;not null;uniqueIndex" json:"code"`
	Name               string       `gorm:"type:text;not null" json:"name"`
	MinCameras         int          `gorm:"not null" json:"min_cameras"`
	MaxCameras         int          `gorm:"not null" json:"max_cameras"`
	MaxDiscountPercent int          `gorm:"not null" json:"max_discount_percent"`
	// ScenarioLimit is how many scenarios fit the Core variant; selecting
	// more switches the quote to Everything.
	ScenarioLimit int       `gorm:"not null" json:"scenario_limit"`
	CreatedAt     time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt     time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (ProductLine) TableName() string { return "product_lines" }

// PriceTier is one camera-count range of a product line's price table.
// UpToCameras is nil on the last tier, which is unbounded above.
type PriceTier struct {
	ID            snowflake.ID `gorm:"primaryKey" json:"id"`
	ProductLineID snowflake.ID `gorm:"not null;index" json:"product_line_id"`
	Variant       Variant      `gorm:"type:text;not null" json:"variant"`
	Position      int          `gorm:"not null" json:"position"`
	UpToCameras   *int         `gorm:"" json:"up_to_cameras,omitempty"`
	UnitCents     int64        `gorm:"not null" json:"unit_cents"`
	Label         string       `gorm:"type:text;not null" json:"label"`
	CreatedAt     time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt     time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (PriceTier) TableName() string { return "price_tiers" }

// SubscriptionType is a billing commitment with its discount or fixed-cost rule.
type SubscriptionType struct {
	ID               snowflake.ID     `gorm:"primaryKey" json:"id"`
	Code             SubscriptionCode `gorm:"type:text;not null;uniqueIndex" json:"code"`
	Name             string           `gorm:"type:text;not null" json:"name"`
	DiscountFraction float64          `gorm:"not null" json:"discount_fraction"`
	ContractMonths   int              `gorm:"not null" json:"contract_months"`
	// FixedTotalCents overrides the total contract value for the pilot type.
	FixedTotalCents *int64    `gorm:"" json:"fixed_total_cents,omitempty"`
	SortOrder       int       `gorm:"not null" json:"sort_order"`
	CreatedAt       time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt       time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (SubscriptionType) TableName() string { return "subscription_types" }

// StarterPackage bundles a base monthly cost with a number of included cameras.
type StarterPackage struct {
	ID               snowflake.ID `gorm:"primaryKey" json:"id"`
	Code             string       `gorm:"type:text;not null;uniqueIndex" json:"code"`
	Name             string       `gorm:"type:text;not null" json:"name"`
	BaseMonthlyCents int64        `gorm:"not null" json:"base_monthly_cents"`
	IncludedCameras  int          `gorm:"not null" json:"included_cameras"`
	CreatedAt        time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt        time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (StarterPackage) TableName() string { return "starter_packages" }

// AdditionalCosts holds the one-time cost constants. Single row.
type AdditionalCosts struct {
	ID                     snowflake.ID `gorm:"primaryKey" json:"id"`
	ServerUnitCents        int64        `gorm:"not null" json:"server_unit_cents"`
	ImplementationFeeCents int64        `gorm:"not null" json:"implementation_fee_cents"`
	SpeakerUnitCents       int64        `gorm:"not null" json:"speaker_unit_cents"`
	TravelDefaultCents     int64        `gorm:"not null" json:"travel_default_cents"`
	CreatedAt              time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt              time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (AdditionalCosts) TableName() string { return "additional_costs" }
