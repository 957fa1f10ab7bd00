package repository

import (
	"context"

	"github.com/smallbiznis/partnerportal/internal/pricing/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) LoadCatalog(ctx context.Context, db *gorm.DB) (*domain.Catalog, error) {
	var catalog domain.Catalog

	if err := db.WithContext(ctx).
		Order("code asc").
		Find(&catalog.ProductLines).Error; err != nil {
		return nil, err
	}

	if err := db.WithContext(ctx).
		Order("product_line_id asc, variant asc, position asc").
		Find(&catalog.Tiers).Error; err != nil {
		return nil, err
	}

	if err := db.WithContext(ctx).
		Order("sort_order asc").
		Find(&catalog.SubscriptionTypes).Error; err != nil {
		return nil, err
	}

	if err := db.WithContext(ctx).
		Order("code asc").
		Find(&catalog.StarterPackages).Error; err != nil {
		return nil, err
	}

	var costs []domain.AdditionalCosts
	if err := db.WithContext(ctx).Limit(1).Find(&costs).Error; err != nil {
		return nil, err
	}
	if len(costs) > 0 {
		catalog.AdditionalCosts = costs[0]
	}

	return &catalog, nil
}
