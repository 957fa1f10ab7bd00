package service

import (
	"context"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/smallbiznis/partnerportal/internal/identity"
	"github.com/smallbiznis/partnerportal/internal/orderform/domain"
	"github.com/smallbiznis/partnerportal/internal/orderform/repository"
	quotedomain "github.com/smallbiznis/partnerportal/internal/quote/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type quoteStub struct {
	quotes map[string]*quotedomain.Quote
}

func (s *quoteStub) Preview(ctx context.Context, req quotedomain.ComputeRequest) (*quotedomain.ComputeResponse, error) {
	return nil, nil
}

func (s *quoteStub) Create(ctx context.Context, req quotedomain.CreateQuoteRequest) (*quotedomain.Quote, error) {
	return nil, nil
}

func (s *quoteStub) List(ctx context.Context, req quotedomain.ListQuoteRequest) (quotedomain.ListQuoteResponse, error) {
	return quotedomain.ListQuoteResponse{}, nil
}

func (s *quoteStub) GetByID(ctx context.Context, req quotedomain.GetQuoteRequest) (*quotedomain.Quote, error) {
	subject, _ := identity.SubjectFromContext(ctx)
	quote, ok := s.quotes[subject+"/"+req.ID]
	if !ok {
		return nil, quotedomain.ErrNotFound
	}
	return quote, nil
}

func newTestService(t *testing.T) (domain.Service, *quoteStub) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.OrderForm{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	quotes := &quoteStub{quotes: map[string]*quotedomain.Quote{}}
	svc := New(Params{
		DB:       db,
		Log:      zap.NewNop(),
		GenID:    node,
		Repo:     repository.Provide(),
		QuoteSvc: quotes,
	})

	return svc, quotes
}

func authedCtx(subject string) context.Context {
	return identity.WithSubject(context.Background(), subject)
}

func TestCreate_DefaultsBoilerplate(t *testing.T) {
	svc, quotes := newTestService(t)

	node, _ := snowflake.NewNode(2)
	quoteID := node.Generate()
	quotes.quotes["user-1/"+quoteID.String()] = &quotedomain.Quote{ID: quoteID, Subject: "user-1"}

	form, err := svc.Create(authedCtx("user-1"), domain.CreateOrderFormRequest{
		QuoteID:  quoteID.String(),
		PONumber: "PO-1042",
	})
	require.NoError(t, err)

	assert.Equal(t, quoteID, form.QuoteID)
	assert.Equal(t, "PO-1042", form.PONumber)
	assert.Equal(t, domain.DefaultSuccessCriteria, form.SuccessCriteria)
	assert.Equal(t, domain.DefaultTerms, form.Terms)
}

func TestCreate_KeepsOverrides(t *testing.T) {
	svc, quotes := newTestService(t)

	node, _ := snowflake.NewNode(2)
	quoteID := node.Generate()
	quotes.quotes["user-1/"+quoteID.String()] = &quotedomain.Quote{ID: quoteID, Subject: "user-1"}

	form, err := svc.Create(authedCtx("user-1"), domain.CreateOrderFormRequest{
		QuoteID:         quoteID.String(),
		SuccessCriteria: "All 40 docks covered.",
		Terms:           "Net 45.",
	})
	require.NoError(t, err)

	assert.Equal(t, "All 40 docks covered.", form.SuccessCriteria)
	assert.Equal(t, "Net 45.", form.Terms)
}

func TestCreate_RejectsForeignQuote(t *testing.T) {
	svc, quotes := newTestService(t)

	node, _ := snowflake.NewNode(2)
	quoteID := node.Generate()
	quotes.quotes["user-1/"+quoteID.String()] = &quotedomain.Quote{ID: quoteID, Subject: "user-1"}

	_, err := svc.Create(authedCtx("user-2"), domain.CreateOrderFormRequest{
		QuoteID: quoteID.String(),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidQuote)
}

func TestListGet_ScopedBySubject(t *testing.T) {
	svc, quotes := newTestService(t)

	node, _ := snowflake.NewNode(2)
	quoteID := node.Generate()
	quotes.quotes["user-1/"+quoteID.String()] = &quotedomain.Quote{ID: quoteID, Subject: "user-1"}

	saved, err := svc.Create(authedCtx("user-1"), domain.CreateOrderFormRequest{QuoteID: quoteID.String()})
	require.NoError(t, err)

	mine, err := svc.List(authedCtx("user-1"), domain.ListOrderFormRequest{})
	require.NoError(t, err)
	assert.Len(t, mine.OrderForms, 1)

	_, err = svc.GetByID(authedCtx("user-2"), domain.GetOrderFormRequest{ID: saved.ID.String()})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
