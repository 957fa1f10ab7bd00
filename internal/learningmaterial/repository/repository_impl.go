package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/partnerportal/internal/learningmaterial/domain"
	"github.com/smallbiznis/partnerportal/pkg/db/option"
	"github.com/smallbiznis/partnerportal/pkg/db/pagination"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, material *domain.LearningMaterial) error {
	return db.WithContext(ctx).Create(material).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, material *domain.LearningMaterial) error {
	return db.WithContext(ctx).
		Model(&domain.LearningMaterial{}).
		Where("id = ?", material.ID).
		Updates(map[string]any{
			"title":       material.Title,
			"category":    material.Category,
			"url":         material.URL,
			"description": material.Description,
			"published":   material.Published,
			"updated_at":  material.UpdatedAt,
		}).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.LearningMaterial, error) {
	var material domain.LearningMaterial
	err := db.WithContext(ctx).
		Where("id = ?", id).
		Limit(1).
		Find(&material).Error
	if err != nil {
		return nil, err
	}
	if material.ID == 0 {
		return nil, nil
	}
	return &material, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, filter domain.ListFilter, page pagination.Pagination) ([]*domain.LearningMaterial, error) {
	var materials []*domain.LearningMaterial
	stmt := db.WithContext(ctx).Model(&domain.LearningMaterial{})
	if filter.Category != "" {
		stmt = stmt.Where("category = ?", filter.Category)
	}
	if filter.PublishedOnly {
		stmt = stmt.Where("published = ?", true)
	}
	stmt = option.ApplyPagination(page).Apply(stmt)
	err := stmt.
		Order("created_at desc, id desc").
		Find(&materials).Error
	if err != nil {
		return nil, err
	}
	return materials, nil
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error {
	return db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&domain.LearningMaterial{}).Error
}
