package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/partnerportal/pkg/db/pagination"
	"gorm.io/gorm"
)

type ListFilter struct {
	// Subject scopes the listing to one partner. Empty means all
	// partners, which only admin callers may request.
	Subject string
	Status  Status
}

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, registration *DealRegistration) error
	Update(ctx context.Context, db *gorm.DB, registration *DealRegistration) error
	FindByID(ctx context.Context, db *gorm.DB, subject string, id snowflake.ID) (*DealRegistration, error)
	List(ctx context.Context, db *gorm.DB, filter ListFilter, page pagination.Pagination) ([]*DealRegistration, error)
}
