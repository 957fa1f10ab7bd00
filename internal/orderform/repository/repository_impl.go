package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/partnerportal/internal/orderform/domain"
	"github.com/smallbiznis/partnerportal/pkg/db/option"
	"github.com/smallbiznis/partnerportal/pkg/db/pagination"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, form *domain.OrderForm) error {
	return db.WithContext(ctx).Create(form).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, subject string, id snowflake.ID) (*domain.OrderForm, error) {
	var form domain.OrderForm
	err := db.WithContext(ctx).
		Where("subject = ? AND id = ?", subject, id).
		Limit(1).
		Find(&form).Error
	if err != nil {
		return nil, err
	}
	if form.ID == 0 {
		return nil, nil
	}
	return &form, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, subject string, page pagination.Pagination) ([]*domain.OrderForm, error) {
	var forms []*domain.OrderForm
	stmt := db.WithContext(ctx).
		Model(&domain.OrderForm{}).
		Where("subject = ?", subject)
	stmt = option.ApplyPagination(page).Apply(stmt)
	err := stmt.
		Order("created_at desc, id desc").
		Find(&forms).Error
	if err != nil {
		return nil, err
	}
	return forms, nil
}
