package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/partnerportal/internal/partnerapplication/domain"
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
		log:   p.Log.Named("partnerapplication.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.PartnerApplication, error) {
	companyName := strings.TrimSpace(req.CompanyName)
	if companyName == "" {
		return nil, domain.ErrInvalidCompany
	}

	contactName := strings.TrimSpace(req.ContactName)
	if contactName == "" {
		return nil, domain.ErrInvalidContact
	}

	email := strings.TrimSpace(req.Email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, domain.ErrInvalidEmail
	}

	now := time.Now().UTC()
	application := &domain.PartnerApplication{
		ID:          s.genID.Generate(),
		CompanyName: companyName,
		ContactName: contactName,
		Email:       email,
		Phone:       strings.TrimSpace(req.Phone),
		Country:     strings.TrimSpace(req.Country),
		Website:     strings.TrimSpace(req.Website),
		Status:      domain.StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Insert(ctx, s.db, application); err != nil {
		return nil, err
	}

	s.log.Info("partner application received",
		zap.String("application_id", application.ID.String()),
		zap.String("company", application.CompanyName),
	)

	return application, nil
}

func (s *Service) List(ctx context.Context, req domain.ListRequest) (domain.ListResponse, error) {
	status, err := parseStatusFilter(req.Status)
	if err != nil {
		return domain.ListResponse{}, err
	}

	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = 50
	}

	items, err := s.repo.List(ctx, s.db, status, pagination.Pagination{
		PageToken: req.PageToken,
		PageSize:  int(pageSize),
	})
	if err != nil {
		return domain.ListResponse{}, err
	}

	pageInfo := pagination.BuildCursorPageInfo(items, pageSize, func(application *domain.PartnerApplication) string {
		token, err := pagination.EncodeCursor(pagination.Cursor{
			ID:        application.ID.String(),
			CreatedAt: application.CreatedAt.Format(time.RFC3339Nano),
		})
		if err != nil {
			return ""
		}
		return token
	})
	if pageInfo != nil && pageInfo.HasMore && len(items) > int(pageSize) {
		items = items[:pageSize]
	}

	applications := make([]domain.PartnerApplication, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		applications = append(applications, *item)
	}

	resp := domain.ListResponse{Applications: applications}
	if pageInfo != nil {
		resp.PageInfo = *pageInfo
	}

	return resp, nil
}

func (s *Service) GetByID(ctx context.Context, req domain.GetRequest) (*domain.PartnerApplication, error) {
	id, err := parseID(req.ID)
	if err != nil {
		return nil, err
	}

	item, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	return item, nil
}

func (s *Service) UpdateStatus(ctx context.Context, req domain.UpdateStatusRequest) (*domain.PartnerApplication, error) {
	id, err := parseID(req.ID)
	if err != nil {
		return nil, err
	}

	status := domain.Status(strings.TrimSpace(req.Status))
	switch status {
	case domain.StatusPending, domain.StatusApproved, domain.StatusRejected:
	default:
		return nil, domain.ErrInvalidStatus
	}

	item, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	item.Status = status
	if notes := strings.TrimSpace(req.Notes); notes != "" {
		item.Notes = notes
	}
	item.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, s.db, item); err != nil {
		return nil, err
	}

	return item, nil
}

func parseStatusFilter(raw string) (domain.Status, error) {
	status := domain.Status(strings.TrimSpace(raw))
	switch status {
	case "", domain.StatusPending, domain.StatusApproved, domain.StatusRejected:
		return status, nil
	default:
		return "", domain.ErrInvalidStatus
	}
}

func parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
