package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/partnerportal/internal/dealreg/domain"
	"github.com/smallbiznis/partnerportal/pkg/db/option"
	"github.com/smallbiznis/partnerportal/pkg/db/pagination"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, registration *domain.DealRegistration) error {
	return db.WithContext(ctx).Create(registration).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, registration *domain.DealRegistration) error {
	return db.WithContext(ctx).
		Model(&domain.DealRegistration{}).
		Where("id = ?", registration.ID).
		Updates(map[string]any{
			"status":     registration.Status,
			"notes":      registration.Notes,
			"updated_at": registration.UpdatedAt,
		}).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, subject string, id snowflake.ID) (*domain.DealRegistration, error) {
	var registration domain.DealRegistration
	stmt := db.WithContext(ctx).Where("id = ?", id)
	if subject != "" {
		stmt = stmt.Where("subject = ?", subject)
	}
	err := stmt.
		Limit(1).
		Find(&registration).Error
	if err != nil {
		return nil, err
	}
	if registration.ID == 0 {
		return nil, nil
	}
	return &registration, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, filter domain.ListFilter, page pagination.Pagination) ([]*domain.DealRegistration, error) {
	var registrations []*domain.DealRegistration
	stmt := db.WithContext(ctx).Model(&domain.DealRegistration{})
	if filter.Subject != "" {
		stmt = stmt.Where("subject = ?", filter.Subject)
	}
	if filter.Status != "" {
		stmt = stmt.Where("status = ?", filter.Status)
	}
	stmt = option.ApplyPagination(page).Apply(stmt)
	err := stmt.
		Order("created_at desc, id desc").
		Find(&registrations).Error
	if err != nil {
		return nil, err
	}
	return registrations, nil
}
