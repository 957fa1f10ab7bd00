package domain

import (
	"context"
	"errors"

	"github.com/smallbiznis/partnerportal/pkg/db/pagination"
)

type CreateRequest struct {
	Title       string `json:"title"`
	Category    string `json:"category"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Published   bool   `json:"published"`
}

type UpdateRequest struct {
	ID          string  `json:"-"`
	Title       *string `json:"title"`
	Category    *string `json:"category"`
	URL         *string `json:"url"`
	Description *string `json:"description"`
	Published   *bool   `json:"published"`
}

type ListRequest struct {
	PageToken string
	PageSize  int32
	Category  string

	// PublishedOnly hides drafts from the partner-facing listing.
	PublishedOnly bool
}

type ListResponse struct {
	pagination.PageInfo
	Materials []LearningMaterial `json:"materials"`
}

type GetRequest struct {
	ID string
}

type DeleteRequest struct {
	ID string
}

type Service interface {
	Create(context.Context, CreateRequest) (*LearningMaterial, error)
	Update(context.Context, UpdateRequest) (*LearningMaterial, error)
	List(context.Context, ListRequest) (ListResponse, error)
	GetByID(context.Context, GetRequest) (*LearningMaterial, error)
	Delete(context.Context, DeleteRequest) error
}

var (
	ErrInvalidTitle    = errors.New("invalid_title")
	ErrInvalidCategory = errors.New("invalid_category")
	ErrInvalidURL      = errors.New("invalid_url")
	ErrInvalidID       = errors.New("invalid_id")
	ErrNotFound        = errors.New("not_found")
)
