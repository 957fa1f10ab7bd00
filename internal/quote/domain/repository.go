package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/partnerportal/pkg/db/pagination"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, quote *Quote) error
	FindByID(ctx context.Context, db *gorm.DB, subject string, id snowflake.ID) (*Quote, error)
	List(ctx context.Context, db *gorm.DB, subject string, page pagination.Pagination) ([]*Quote, error)
}
