package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/partnerportal/internal/learningmaterial/domain"
	"github.com/smallbiznis/partnerportal/pkg/db/pagination"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("learningmaterial.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.LearningMaterial, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, domain.ErrInvalidTitle
	}

	category := strings.TrimSpace(req.Category)
	if category == "" {
		return nil, domain.ErrInvalidCategory
	}

	url := strings.TrimSpace(req.URL)
	if url == "" {
		return nil, domain.ErrInvalidURL
	}

	now := time.Now().UTC()
	material := &domain.LearningMaterial{
		ID:          s.genID.Generate(),
		Title:       title,
		Category:    category,
		URL:         url,
		Description: strings.TrimSpace(req.Description),
		Published:   req.Published,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Insert(ctx, s.db, material); err != nil {
		return nil, err
	}

	s.log.Info("learning material created",
		zap.String("material_id", material.ID.String()),
		zap.String("category", material.Category),
	)

	return material, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateRequest) (*domain.LearningMaterial, error) {
	id, err := parseID(req.ID)
	if err != nil {
		return nil, err
	}

	material, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, domain.ErrNotFound
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, domain.ErrInvalidTitle
		}
		material.Title = title
	}
	if req.Category != nil {
		category := strings.TrimSpace(*req.Category)
		if category == "" {
			return nil, domain.ErrInvalidCategory
		}
		material.Category = category
	}
	if req.URL != nil {
		url := strings.TrimSpace(*req.URL)
		if url == "" {
			return nil, domain.ErrInvalidURL
		}
		material.URL = url
	}
	if req.Description != nil {
		material.Description = strings.TrimSpace(*req.Description)
	}
	if req.Published != nil {
		material.Published = *req.Published
	}
	material.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, s.db, material); err != nil {
		return nil, err
	}

	return material, nil
}

func (s *Service) List(ctx context.Context, req domain.ListRequest) (domain.ListResponse, error) {
	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = 50
	}

	items, err := s.repo.List(ctx, s.db, domain.ListFilter{
		Category:      strings.TrimSpace(req.Category),
		PublishedOnly: req.PublishedOnly,
	}, pagination.Pagination{
		PageToken: req.PageToken,
		PageSize:  int(pageSize),
	})
	if err != nil {
		return domain.ListResponse{}, err
	}

	pageInfo := pagination.BuildCursorPageInfo(items, pageSize, func(material *domain.LearningMaterial) string {
		token, err := pagination.EncodeCursor(pagination.Cursor{
			ID:        material.ID.String(),
			CreatedAt: material.CreatedAt.Format(time.RFC3339Nano),
		})
		if err != nil {
			return ""
		}
		return token
	})
	if pageInfo != nil && pageInfo.HasMore && len(items) > int(pageSize) {
		items = items[:pageSize]
	}

	materials := make([]domain.LearningMaterial, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		materials = append(materials, *item)
	}

	resp := domain.ListResponse{Materials: materials}
	if pageInfo != nil {
		resp.PageInfo = *pageInfo
	}

	return resp, nil
}

func (s *Service) GetByID(ctx context.Context, req domain.GetRequest) (*domain.LearningMaterial, error) {
	id, err := parseID(req.ID)
	if err != nil {
		return nil, err
	}

	material, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, domain.ErrNotFound
	}

	return material, nil
}

func (s *Service) Delete(ctx context.Context, req domain.DeleteRequest) error {
	id, err := parseID(req.ID)
	if err != nil {
		return err
	}

	material, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return err
	}
	if material == nil {
		return domain.ErrNotFound
	}

	return s.repo.Delete(ctx, s.db, id)
}

func parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
