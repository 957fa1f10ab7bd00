package pdf

import (
	"context"
	"io"

	"go.uber.org/fx"
)

type Provider interface {
	GenerateQuote(ctx context.Context, data QuoteData) (io.Reader, error)
	GenerateOrderForm(ctx context.Context, data OrderFormData) (io.Reader, error)
}

type PDFProvider struct{}

func New() Provider {
	return &PDFProvider{}
}

var Module = fx.Module("provider.pdf",
	fx.Provide(New),
)
