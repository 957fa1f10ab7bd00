package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/partnerportal/pkg/db/pagination"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, form *OrderForm) error
	FindByID(ctx context.Context, db *gorm.DB, subject string, id snowflake.ID) (*OrderForm, error)
	List(ctx context.Context, db *gorm.DB, subject string, page pagination.Pagination) ([]*OrderForm, error)
}
