package service

import (
	"context"
	"sync"

	"github.com/smallbiznis/partnerportal/internal/pricing/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB   *gorm.DB
	Log  *zap.Logger
	Repo domain.Repository
}

// Service loads the pricing catalog once and serves it read-only. Catalog
// edits require a restart; the tables only change by migration or seed.
type Service struct {
	db   *gorm.DB
	log  *zap.Logger
	repo domain.Repository

	mu      sync.RWMutex
	catalog *domain.Catalog
}

func New(p Params) domain.Service {
	return &Service{
		db:   p.DB,
		log:  p.Log.Named("pricing.service"),
		repo: p.Repo,
	}
}

func (s *Service) Catalog(ctx context.Context) (*domain.Catalog, error) {
	s.mu.RLock()
	catalog := s.catalog
	s.mu.RUnlock()
	if catalog != nil {
		return catalog, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.catalog != nil {
		return s.catalog, nil
	}

	catalog, err := s.repo.LoadCatalog(ctx, s.db)
	if err != nil {
		return nil, err
	}
	if len(catalog.ProductLines) == 0 {
		return nil, domain.ErrCatalogEmpty
	}
	if err := catalog.Validate(); err != nil {
		return nil, err
	}

	s.catalog = catalog
	s.log.Info("pricing catalog loaded",
		zap.Int("product_lines", len(catalog.ProductLines)),
		zap.Int("tiers", len(catalog.Tiers)),
		zap.Int("subscription_types", len(catalog.SubscriptionTypes)),
	)

	return catalog, nil
}
