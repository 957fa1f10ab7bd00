package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	LoadCatalog(ctx context.Context, db *gorm.DB) (*Catalog, error)
}
