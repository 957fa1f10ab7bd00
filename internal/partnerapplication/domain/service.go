package domain

import (
	"context"
	"errors"

	"github.com/smallbiznis/partnerportal/pkg/db/pagination"
)

type CreateRequest struct {
	CompanyName string `json:"company_name"`
	ContactName string `json:"contact_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Country     string `json:"country"`
	Website     string `json:"website"`
}

type ListRequest struct {
	PageToken string
	PageSize  int32
	Status    string
}

type ListResponse struct {
	pagination.PageInfo
	Applications []PartnerApplication `json:"applications"`
}

type GetRequest struct {
	ID string
}

type UpdateStatusRequest struct {
	ID     string `json:"-"`
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

type Service interface {
	Create(context.Context, CreateRequest) (*PartnerApplication, error)
	List(context.Context, ListRequest) (ListResponse, error)
	GetByID(context.Context, GetRequest) (*PartnerApplication, error)
	UpdateStatus(context.Context, UpdateStatusRequest) (*PartnerApplication, error)
}

var (
	ErrInvalidCompany = errors.New("invalid_company_name")
	ErrInvalidContact = errors.New("invalid_contact_name")
	ErrInvalidEmail   = errors.New("invalid_email")
	ErrInvalidStatus  = errors.New("invalid_status")
	ErrInvalidID      = errors.New("invalid_id")
	ErrNotFound       = errors.New("not_found")
)
