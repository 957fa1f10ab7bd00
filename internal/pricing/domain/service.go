package domain

import (
	"context"
	"errors"
)

type Service interface {
	Catalog(ctx context.Context) (*Catalog, error)
}

var (
	ErrCatalogEmpty        = errors.New("catalog_empty")
	ErrInvalidProductLine  = errors.New("invalid_product_line")
	ErrInvalidVariant      = errors.New("invalid_variant")
	ErrInvalidSubscription = errors.New("invalid_subscription_type")
)
