package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/partnerportal/internal/partnerapplication/domain"
	"github.com/smallbiznis/partnerportal/pkg/db/option"
	"github.com/smallbiznis/partnerportal/pkg/db/pagination"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, application *domain.PartnerApplication) error {
	return db.WithContext(ctx).Create(application).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.PartnerApplication, error) {
	var application domain.PartnerApplication
	err := db.WithContext(ctx).
		Where("id = ?", id).
		Limit(1).
		Find(&application).Error
	if err != nil {
		return nil, err
	}
	if application.ID == 0 {
		return nil, nil
	}
	return &application, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, status domain.Status, page pagination.Pagination) ([]*domain.PartnerApplication, error) {
	var applications []*domain.PartnerApplication
	stmt := db.WithContext(ctx).Model(&domain.PartnerApplication{})
	if status != "" {
		stmt = stmt.Where("status = ?", status)
	}
	stmt = option.ApplyPagination(page).Apply(stmt)
	err := stmt.
		Order("created_at desc, id desc").
		Find(&applications).Error
	if err != nil {
		return nil, err
	}
	return applications, nil
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, application *domain.PartnerApplication) error {
	return db.WithContext(ctx).
		Model(&domain.PartnerApplication{}).
		Where("id = ?", application.ID).
		Updates(map[string]any{
			"status":     application.Status,
			"notes":      application.Notes,
			"updated_at": application.UpdatedAt,
		}).Error
}
