package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/partnerportal/pkg/db/pagination"
	"gorm.io/gorm"
)

type ListFilter struct {
	Category      string
	PublishedOnly bool
}

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, material *LearningMaterial) error
	Update(ctx context.Context, db *gorm.DB, material *LearningMaterial) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*LearningMaterial, error)
	List(ctx context.Context, db *gorm.DB, filter ListFilter, page pagination.Pagination) ([]*LearningMaterial, error)
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
}
