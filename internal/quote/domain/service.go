package domain

import (
	"context"
	"errors"

	pricingdomain "github.com/smallbiznis/partnerportal/internal/pricing/domain"
	"github.com/smallbiznis/partnerportal/internal/pricing/engine"
	"github.com/smallbiznis/partnerportal/pkg/db/pagination"
)

// OneTimeSelections are the one-time-cost toggles and amounts on a quote input.
type OneTimeSelections struct {
	IncludeServer bool `json:"include_server"`
	ServerCount   int  `json:"server_count"`

	ImplementationFeeMode  FeeMode `json:"implementation_fee_mode"`
	ImplementationFeeCents int64   `json:"implementation_fee_cents"`

	IncludeSpeakers bool `json:"include_speakers"`
	SpeakerCount    int  `json:"speaker_count"`

	IncludeTravel bool  `json:"include_travel"`
	TravelCents   int64 `json:"travel_cents"`
}

// ComputeRequest is the ephemeral quote input, rebuilt by the UI on every
// change. Camera count and discount percent are clamped to the product line's
// bounds rather than rejected.
type ComputeRequest struct {
	ProductLine      string            `json:"product_line"`
	Variant          string            `json:"variant"`
	Scenarios        []string          `json:"scenarios"`
	CameraCount      int               `json:"camera_count"`
	SubscriptionType string            `json:"subscription_type"`
	StarterPackage   string            `json:"starter_package"`
	DiscountPercent  int               `json:"discount_percent"`
	OneTime          OneTimeSelections `json:"one_time"`

	SecondaryCurrency string  `json:"secondary_currency"`
	ExchangeRate      float64 `json:"exchange_rate"`
}

// ClientInfo is the contact block required before a quote may be saved.
type ClientInfo struct {
	Name        string `json:"name"`
	Company     string `json:"company"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	Zip         string `json:"zip"`
	CustomerRef string `json:"customer_ref"`
}

// ComputeResponse is the preview result handed back to the form.
type ComputeResponse struct {
	ProductLine      string                         `json:"product_line"`
	Variant          pricingdomain.Variant          `json:"variant"`
	SubscriptionType pricingdomain.SubscriptionCode `json:"subscription_type"`
	CameraCount      int                            `json:"camera_count"`
	DiscountPercent  int                            `json:"discount_percent"`
	Result           engine.Result                  `json:"result"`

	SecondaryCurrency   string `json:"secondary_currency,omitempty"`
	SecondaryTotalCents int64  `json:"secondary_total_cents,omitempty"`
}

type CreateQuoteRequest struct {
	ComputeRequest
	Client ClientInfo `json:"client"`
}

type ListQuoteRequest struct {
	PageToken string
	PageSize  int32
}

type ListQuoteResponse struct {
	pagination.PageInfo
	Quotes []Quote `json:"quotes"`
}

type GetQuoteRequest struct {
	ID string
}

type Service interface {
	Preview(context.Context, ComputeRequest) (*ComputeResponse, error)
	Create(context.Context, CreateQuoteRequest) (*Quote, error)
	List(context.Context, ListQuoteRequest) (ListQuoteResponse, error)
	GetByID(context.Context, GetQuoteRequest) (*Quote, error)
}

var (
	ErrInvalidSubject       = errors.New("invalid_subject")
	ErrInvalidProductLine   = errors.New("invalid_product_line")
	ErrInvalidSubscription  = errors.New("invalid_subscription_type")
	ErrInvalidCameraCount   = errors.New("invalid_camera_count")
	ErrInvalidStarterPack   = errors.New("invalid_starter_package")
	ErrInvalidExchangeRate  = errors.New("invalid_exchange_rate")
	ErrMissingClientName    = errors.New("missing_client_name")
	ErrMissingClientCompany = errors.New("missing_client_company")
	ErrMissingClientEmail   = errors.New("missing_client_email")
	ErrInvalidID            = errors.New("invalid_id")
	ErrNotFound             = errors.New("not_found")
)
