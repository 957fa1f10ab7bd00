package docx

import (
	"context"
	"io"

	"go.uber.org/fx"
)

type Provider interface {
	GenerateOrderForm(ctx context.Context, data OrderFormData) (io.Reader, error)
}

type DocxProvider struct{}

func New() Provider {
	return &DocxProvider{}
}

var Module = fx.Module("provider.docx",
	fx.Provide(New),
)
