package domain

import (
	"context"
	"errors"
	"time"

	"github.com/smallbiznis/partnerportal/pkg/db/pagination"
)

type CreateRequest struct {
	Subject           string     `json:"-"`
	CustomerName      string     `json:"customer_name"`
	CustomerEmail     string     `json:"customer_email"`
	ExpectedCameras   int        `json:"expected_cameras"`
	ExpectedCloseDate *time.Time `json:"expected_close_date"`
	Notes             string     `json:"notes"`
}

type ListRequest struct {
	Subject   string
	PageToken string
	PageSize  int32
	Status    string
}

type ListResponse struct {
	pagination.PageInfo
	Registrations []DealRegistration `json:"registrations"`
}

type GetRequest struct {
	Subject string
	ID      string
}

// UpdateStatusRequest is an admin operation and is not subject-scoped.
type UpdateStatusRequest struct {
	ID     string `json:"-"`
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

type Service interface {
	Create(context.Context, CreateRequest) (*DealRegistration, error)
	List(context.Context, ListRequest) (ListResponse, error)
	GetByID(context.Context, GetRequest) (*DealRegistration, error)
	UpdateStatus(context.Context, UpdateStatusRequest) (*DealRegistration, error)
}

var (
	ErrInvalidSubject  = errors.New("invalid_subject")
	ErrInvalidCustomer = errors.New("invalid_customer_name")
	ErrInvalidCameras  = errors.New("invalid_expected_cameras")
	ErrInvalidStatus   = errors.New("invalid_status")
	ErrInvalidID       = errors.New("invalid_id")
	ErrNotFound        = errors.New("not_found")
)
