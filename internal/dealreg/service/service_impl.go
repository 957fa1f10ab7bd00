package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/partnerportal/internal/dealreg/domain"
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
		log:   p.Log.Named("dealreg.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.DealRegistration, error) {
	subject := strings.TrimSpace(req.Subject)
	if subject == "" {
		return nil, domain.ErrInvalidSubject
	}

	customerName := strings.TrimSpace(req.CustomerName)
	if customerName == "" {
		return nil, domain.ErrInvalidCustomer
	}

	if req.ExpectedCameras < 0 {
		return nil, domain.ErrInvalidCameras
	}

	now := time.Now().UTC()
	registration := &domain.DealRegistration{
		ID:                s.genID.Generate(),
		Subject:           subject,
		CustomerName:      customerName,
		CustomerEmail:     strings.TrimSpace(req.CustomerEmail),
		ExpectedCameras:   req.ExpectedCameras,
		ExpectedCloseDate: req.ExpectedCloseDate,
		Status:            domain.StatusSubmitted,
		Notes:             strings.TrimSpace(req.Notes),
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := s.repo.Insert(ctx, s.db, registration); err != nil {
		return nil, err
	}

	s.log.Info("deal registered",
		zap.String("registration_id", registration.ID.String()),
		zap.String("customer", registration.CustomerName),
	)

	return registration, nil
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

	items, err := s.repo.List(ctx, s.db, domain.ListFilter{
		Subject: strings.TrimSpace(req.Subject),
		Status:  status,
	}, pagination.Pagination{
		PageToken: req.PageToken,
		PageSize:  int(pageSize),
	})
	if err != nil {
		return domain.ListResponse{}, err
	}

	pageInfo := pagination.BuildCursorPageInfo(items, pageSize, func(registration *domain.DealRegistration) string {
		token, err := pagination.EncodeCursor(pagination.Cursor{
			ID:        registration.ID.String(),
			CreatedAt: registration.CreatedAt.Format(time.RFC3339Nano),
		})
		if err != nil {
			return ""
		}
		return token
	})
	if pageInfo != nil && pageInfo.HasMore && len(items) > int(pageSize) {
		items = items[:pageSize]
	}

	registrations := make([]domain.DealRegistration, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		registrations = append(registrations, *item)
	}

	resp := domain.ListResponse{Registrations: registrations}
	if pageInfo != nil {
		resp.PageInfo = *pageInfo
	}

	return resp, nil
}

func (s *Service) GetByID(ctx context.Context, req domain.GetRequest) (*domain.DealRegistration, error) {
	id, err := parseID(req.ID)
	if err != nil {
		return nil, err
	}

	registration, err := s.repo.FindByID(ctx, s.db, strings.TrimSpace(req.Subject), id)
	if err != nil {
		return nil, err
	}
	if registration == nil {
		return nil, domain.ErrNotFound
	}

	return registration, nil
}

func (s *Service) UpdateStatus(ctx context.Context, req domain.UpdateStatusRequest) (*domain.DealRegistration, error) {
	id, err := parseID(req.ID)
	if err != nil {
		return nil, err
	}

	status := domain.Status(strings.TrimSpace(req.Status))
	switch status {
	case domain.StatusSubmitted, domain.StatusApproved, domain.StatusRejected, domain.StatusClosed:
	default:
		return nil, domain.ErrInvalidStatus
	}

	registration, err := s.repo.FindByID(ctx, s.db, "", id)
	if err != nil {
		return nil, err
	}
	if registration == nil {
		return nil, domain.ErrNotFound
	}

	registration.Status = status
	if notes := strings.TrimSpace(req.Notes); notes != "" {
		registration.Notes = notes
	}
	registration.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, s.db, registration); err != nil {
		return nil, err
	}

	return registration, nil
}

func parseStatusFilter(raw string) (domain.Status, error) {
	status := domain.Status(strings.TrimSpace(raw))
	switch status {
	case "", domain.StatusSubmitted, domain.StatusApproved, domain.StatusRejected, domain.StatusClosed:
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
