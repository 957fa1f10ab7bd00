package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/partnerportal/internal/identity"
	"github.com/smallbiznis/partnerportal/internal/orderform/domain"
	quotedomain "github.com/smallbiznis/partnerportal/internal/quote/domain"
	"github.com/smallbiznis/partnerportal/pkg/db/pagination"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB       *gorm.DB
	Log      *zap.Logger
	GenID    *snowflake.Node
	Repo     domain.Repository
	QuoteSvc quotedomain.Service
}

type Service struct {
	db       *gorm.DB
	log      *zap.Logger
	genID    *snowflake.Node
	repo     domain.Repository
	quoteSvc quotedomain.Service
}

func New(p Params) domain.Service {
	return &Service{
		db:       p.DB,
		log:      p.Log.Named("orderform.service"),
		genID:    p.GenID,
		repo:     p.Repo,
		quoteSvc: p.QuoteSvc,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateOrderFormRequest) (*domain.OrderForm, error) {
	subject, ok := identity.SubjectFromContext(ctx)
	if !ok {
		return nil, domain.ErrInvalidSubject
	}

	// The quote must exist and belong to the caller; the quote service
	// enforces both.
	quote, err := s.quoteSvc.GetByID(ctx, quotedomain.GetQuoteRequest{ID: req.QuoteID})
	if err != nil {
		if err == quotedomain.ErrNotFound || err == quotedomain.ErrInvalidID {
			return nil, domain.ErrInvalidQuote
		}
		return nil, err
	}

	successCriteria := strings.TrimSpace(req.SuccessCriteria)
	if successCriteria == "" {
		successCriteria = domain.DefaultSuccessCriteria
	}
	terms := strings.TrimSpace(req.Terms)
	if terms == "" {
		terms = domain.DefaultTerms
	}

	now := time.Now().UTC()
	form := &domain.OrderForm{
		ID:      s.genID.Generate(),
		QuoteID: quote.ID,
		Subject: subject,

		PONumber:            strings.TrimSpace(req.PONumber),
		BillingContactName:  strings.TrimSpace(req.BillingContactName),
		BillingContactEmail: strings.TrimSpace(req.BillingContactEmail),

		SuccessCriteria: successCriteria,
		Terms:           terms,

		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Insert(ctx, s.db, form); err != nil {
		return nil, err
	}

	s.log.Info("order form created",
		zap.String("order_form_id", form.ID.String()),
		zap.String("quote_id", quote.ID.String()),
	)

	return form, nil
}

func (s *Service) List(ctx context.Context, req domain.ListOrderFormRequest) (domain.ListOrderFormResponse, error) {
	subject, ok := identity.SubjectFromContext(ctx)
	if !ok {
		return domain.ListOrderFormResponse{}, domain.ErrInvalidSubject
	}

	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = 50
	}

	items, err := s.repo.List(ctx, s.db, subject, pagination.Pagination{
		PageToken: req.PageToken,
		PageSize:  int(pageSize),
	})
	if err != nil {
		return domain.ListOrderFormResponse{}, err
	}

	pageInfo := pagination.BuildCursorPageInfo(items, pageSize, func(form *domain.OrderForm) string {
		token, err := pagination.EncodeCursor(pagination.Cursor{
			ID:        form.ID.String(),
			CreatedAt: form.CreatedAt.Format(time.RFC3339Nano),
		})
		if err != nil {
			return ""
		}
		return token
	})
	if pageInfo != nil && pageInfo.HasMore && len(items) > int(pageSize) {
		items = items[:pageSize]
	}

	forms := make([]domain.OrderForm, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		forms = append(forms, *item)
	}

	resp := domain.ListOrderFormResponse{OrderForms: forms}
	if pageInfo != nil {
		resp.PageInfo = *pageInfo
	}

	return resp, nil
}

func (s *Service) GetByID(ctx context.Context, req domain.GetOrderFormRequest) (*domain.OrderForm, error) {
	subject, ok := identity.SubjectFromContext(ctx)
	if !ok {
		return nil, domain.ErrInvalidSubject
	}

	id, err := snowflake.ParseString(strings.TrimSpace(req.ID))
	if err != nil || id == 0 {
		return nil, domain.ErrInvalidID
	}

	item, err := s.repo.FindByID(ctx, s.db, subject, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	return item, nil
}
