package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/partnerportal/pkg/db/pagination"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, application *PartnerApplication) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*PartnerApplication, error)
	List(ctx context.Context, db *gorm.DB, status Status, page pagination.Pagination) ([]*PartnerApplication, error)
	Update(ctx context.Context, db *gorm.DB, application *PartnerApplication) error
}
