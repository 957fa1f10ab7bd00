package domain

import (
	"context"
	"errors"

	"github.com/smallbiznis/partnerportal/pkg/db/pagination"
)

type CreateOrderFormRequest struct {
	QuoteID             string `json:"quote_id"`
	PONumber            string `json:"po_number"`
	BillingContactName  string `json:"billing_contact_name"`
	BillingContactEmail string `json:"billing_contact_email"`
	SuccessCriteria     string `json:"success_criteria"`
	Terms               string `json:"terms"`
}

type ListOrderFormRequest struct {
	PageToken string
	PageSize  int32
}

type ListOrderFormResponse struct {
	pagination.PageInfo
	OrderForms []OrderForm `json:"order_forms"`
}

type GetOrderFormRequest struct {
	ID string
}

type Service interface {
	Create(context.Context, CreateOrderFormRequest) (*OrderForm, error)
	List(context.Context, ListOrderFormRequest) (ListOrderFormResponse, error)
	GetByID(context.Context, GetOrderFormRequest) (*OrderForm, error)
}

var (
	ErrInvalidSubject = errors.New("invalid_subject")
	ErrInvalidQuote   = errors.New("invalid_quote")
	ErrInvalidID      = errors.New("invalid_id")
	ErrNotFound       = errors.New("not_found")
)
