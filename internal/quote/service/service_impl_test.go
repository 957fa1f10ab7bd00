package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/smallbiznis/partnerportal/internal/identity"
	pricingdomain "github.com/smallbiznis/partnerportal/internal/pricing/domain"
	"github.com/smallbiznis/partnerportal/internal/quote/domain"
	"github.com/smallbiznis/partnerportal/internal/quote/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type catalogStub struct {
	catalog *pricingdomain.Catalog
}

func (s *catalogStub) Catalog(ctx context.Context) (*pricingdomain.Catalog, error) {
	return s.catalog, nil
}

func intPtr(v int) *int       { return &v }
func int64Ptr(v int64) *int64 { return &v }

func testCatalog(node *snowflake.Node) *pricingdomain.Catalog {
	lineID := node.Generate()
	return &pricingdomain.Catalog{
		ProductLines: []pricingdomain.ProductLine{
			{ID: lineID, Code: "safety", Name: "Safety Scenarios", MinCameras: 5, MaxCameras: 10000, MaxDiscountPercent: 30, ScenarioLimit: 3},
		},
		Tiers: []pricingdomain.PriceTier{
			{ID: node.Generate(), ProductLineID: lineID, Variant: pricingdomain.VariantCore, Position: 0, UpToCameras: intPtr(20), UnitCents: 5000, Label: "1-20"},
			{ID: node.Generate(), ProductLineID: lineID, Variant: pricingdomain.VariantCore, Position: 1, UnitCents: 4000, Label: "21+"},
			{ID: node.Generate(), ProductLineID: lineID, Variant: pricingdomain.VariantEverything, Position: 0, UpToCameras: intPtr(20), UnitCents: 6500, Label: "1-20"},
			{ID: node.Generate(), ProductLineID: lineID, Variant: pricingdomain.VariantEverything, Position: 1, UnitCents: 5500, Label: "21+"},
		},
		SubscriptionTypes: []pricingdomain.SubscriptionType{
			{ID: node.Generate(), Code: pricingdomain.SubscriptionMonthly, Name: "Monthly", DiscountFraction: 0, ContractMonths: 1},
			{ID: node.Generate(), Code: pricingdomain.SubscriptionYearly, Name: "Yearly", DiscountFraction: 0.20, ContractMonths: 12},
			{ID: node.Generate(), Code: pricingdomain.SubscriptionThreeYear, Name: "3 Year", DiscountFraction: 0.30, ContractMonths: 36},
			{ID: node.Generate(), Code: pricingdomain.SubscriptionThreeMonth, Name: "Pilot", DiscountFraction: 0, ContractMonths: 3, FixedTotalCents: int64Ptr(600000)},
			{ID: node.Generate(), Code: pricingdomain.SubscriptionPerpetual, Name: "Perpetual", DiscountFraction: 0, ContractMonths: 0},
		},
		StarterPackages: []pricingdomain.StarterPackage{
			{ID: node.Generate(), Code: "starter", Name: "Starter Package", BaseMonthlyCents: 50000, IncludedCameras: 5},
		},
		AdditionalCosts: pricingdomain.AdditionalCosts{
			ID:                     node.Generate(),
			ServerUnitCents:        250000,
			ImplementationFeeCents: 150000,
			SpeakerUnitCents:       15000,
			TravelDefaultCents:     50000,
		},
	}
}

func newTestService(t *testing.T) (domain.Service, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Quote{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	svc := New(Params{
		DB:         db,
		Log:        zap.NewNop(),
		GenID:      node,
		Repo:       repository.Provide(),
		PricingSvc: &catalogStub{catalog: testCatalog(node)},
	})

	return svc, db
}

func authedCtx(subject string) context.Context {
	return identity.WithSubject(context.Background(), subject)
}

func yearlyRequest() domain.ComputeRequest {
	return domain.ComputeRequest{
		ProductLine:      "safety",
		CameraCount:      20,
		SubscriptionType: "yearly",
	}
}

func validClient() domain.ClientInfo {
	return domain.ClientInfo{
		Name:    "Jordan Reyes",
		Company: "Acme Logistics",
		Email:   "jordan@acme.example",
	}
}

func TestPreview_YearlyRoundTrip(t *testing.T) {
	svc, _ := newTestService(t)

	resp, err := svc.Preview(context.Background(), yearlyRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(100000), resp.Result.MonthlyRecurringCents)
	assert.Equal(t, int64(1200000), resp.Result.AnnualRecurringCents)
	assert.Equal(t, int64(960000), resp.Result.DiscountedAnnualCents)
	assert.Equal(t, int64(960000), resp.Result.TotalContractCents)
	assert.Equal(t, pricingdomain.VariantCore, resp.Variant)
}

func TestPreview_ScenarioCountForcesEverything(t *testing.T) {
	svc, _ := newTestService(t)

	req := yearlyRequest()
	req.Scenarios = []string{"ppe", "forklift", "zone", "fall"}

	resp, err := svc.Preview(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, pricingdomain.VariantEverything, resp.Variant)
	assert.Equal(t, int64(130000), resp.Result.MonthlyRecurringCents)
}

func TestPreview_ZeroCamerasZeroCost(t *testing.T) {
	svc, _ := newTestService(t)

	req := yearlyRequest()
	req.CameraCount = 0

	resp, err := svc.Preview(context.Background(), req)
	require.NoError(t, err)

	assert.Empty(t, resp.Result.TierBreakdown)
	assert.Equal(t, int64(0), resp.Result.TotalContractCents)
}

func TestPreview_ClampsToLineBounds(t *testing.T) {
	svc, _ := newTestService(t)

	req := yearlyRequest()
	req.CameraCount = 2
	req.DiscountPercent = 90

	resp, err := svc.Preview(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 5, resp.CameraCount)
	assert.Equal(t, 30, resp.DiscountPercent)
}

func TestPreview_StarterPackageBundlesCameras(t *testing.T) {
	svc, _ := newTestService(t)

	req := yearlyRequest()
	req.CameraCount = 8
	req.StarterPackage = "starter"

	resp, err := svc.Preview(context.Background(), req)
	require.NoError(t, err)

	// 5 bundled cameras at the package base, 3 billed on tier one.
	require.Len(t, resp.Result.TierBreakdown, 2)
	assert.Equal(t, int64(50000), resp.Result.TierBreakdown[0].SubtotalCents)
	assert.Equal(t, 3, resp.Result.TierBreakdown[1].Cameras)
	assert.Equal(t, int64(65000), resp.Result.MonthlyRecurringCents)
}

func TestPreview_SecondaryCurrency(t *testing.T) {
	svc, _ := newTestService(t)

	req := yearlyRequest()
	req.SecondaryCurrency = "inr"
	req.ExchangeRate = 83

	resp, err := svc.Preview(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "INR", resp.SecondaryCurrency)
	assert.Equal(t, int64(960000*83), resp.SecondaryTotalCents)

	req.ExchangeRate = 0
	_, err = svc.Preview(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrInvalidExchangeRate)
}

func TestPreview_UnknownSelections(t *testing.T) {
	svc, _ := newTestService(t)

	req := yearlyRequest()
	req.ProductLine = "retail"
	_, err := svc.Preview(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrInvalidProductLine)

	req = yearlyRequest()
	req.SubscriptionType = "weekly"
	_, err = svc.Preview(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrInvalidSubscription)
}

func TestCreate_PersistsSnapshot(t *testing.T) {
	svc, db := newTestService(t)

	quote, err := svc.Create(authedCtx("user-1"), domain.CreateQuoteRequest{
		ComputeRequest: yearlyRequest(),
		Client:         validClient(),
	})
	require.NoError(t, err)
	assert.NotZero(t, quote.ID)
	assert.Equal(t, int64(960000), quote.TotalContractCents)

	var count int64
	require.NoError(t, db.Model(&domain.Quote{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCreate_CompletenessGate(t *testing.T) {
	svc, _ := newTestService(t)

	tests := []struct {
		name    string
		mutate  func(*domain.ClientInfo)
		wantErr error
	}{
		{"missing name", func(c *domain.ClientInfo) { c.Name = " " }, domain.ErrMissingClientName},
		{"missing company", func(c *domain.ClientInfo) { c.Company = "" }, domain.ErrMissingClientCompany},
		{"missing email", func(c *domain.ClientInfo) { c.Email = "" }, domain.ErrMissingClientEmail},
		{"malformed email", func(c *domain.ClientInfo) { c.Email = "not-an-email" }, domain.ErrMissingClientEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := validClient()
			tt.mutate(&client)

			_, err := svc.Create(authedCtx("user-1"), domain.CreateQuoteRequest{
				ComputeRequest: yearlyRequest(),
				Client:         client,
			})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreate_RequiresMinimumCameras(t *testing.T) {
	svc, _ := newTestService(t)

	req := yearlyRequest()
	req.CameraCount = 2

	_, err := svc.Create(authedCtx("user-1"), domain.CreateQuoteRequest{
		ComputeRequest: req,
		Client:         validClient(),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCameraCount)
}

func TestCreate_RequiresSubject(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Create(context.Background(), domain.CreateQuoteRequest{
		ComputeRequest: yearlyRequest(),
		Client:         validClient(),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidSubject)
}

func TestListGet_ScopedBySubject(t *testing.T) {
	svc, _ := newTestService(t)

	saved, err := svc.Create(authedCtx("user-1"), domain.CreateQuoteRequest{
		ComputeRequest: yearlyRequest(),
		Client:         validClient(),
	})
	require.NoError(t, err)

	mine, err := svc.List(authedCtx("user-1"), domain.ListQuoteRequest{})
	require.NoError(t, err)
	assert.Len(t, mine.Quotes, 1)

	theirs, err := svc.List(authedCtx("user-2"), domain.ListQuoteRequest{})
	require.NoError(t, err)
	assert.Empty(t, theirs.Quotes)

	_, err = svc.GetByID(authedCtx("user-2"), domain.GetQuoteRequest{ID: saved.ID.String()})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	got, err := svc.GetByID(authedCtx("user-1"), domain.GetQuoteRequest{ID: saved.ID.String()})
	require.NoError(t, err)
	assert.Equal(t, saved.ID, got.ID)
}

func TestCreate_PilotFixedTotal(t *testing.T) {
	svc, _ := newTestService(t)

	req := yearlyRequest()
	req.SubscriptionType = "three_month"
	req.OneTime = domain.OneTimeSelections{IncludeServer: true, ServerCount: 2}

	quote, err := svc.Create(authedCtx("user-1"), domain.CreateQuoteRequest{
		ComputeRequest: req,
		Client:         validClient(),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(600000), quote.TotalContractCents)
	assert.Equal(t, int64(600000), quote.TotalOneTimeCents)
}

func TestCreate_PersistsAdjustedFigures(t *testing.T) {
	svc, db := newTestService(t)

	quote, err := svc.Create(authedCtx("user-1"), domain.CreateQuoteRequest{
		ComputeRequest: yearlyRequest(),
		Client:         validClient(),
	})
	require.NoError(t, err)

	// Yearly takes 20% off the 100000 monthly subtotal.
	var stored domain.Quote
	require.NoError(t, db.First(&stored, "id = ?", quote.ID).Error)
	assert.Equal(t, int64(100000), stored.MonthlyRecurringCents)
	assert.Equal(t, int64(80000), stored.AdjustedMonthlyCents)
	assert.Equal(t, int64(960000), stored.AdjustedAnnualCents)
}

func TestList_PagesThroughTimestampTies(t *testing.T) {
	svc, db := newTestService(t)

	node, err := snowflake.NewNode(2)
	require.NoError(t, err)

	createdAt := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	want := make(map[string]bool, 3)
	for i := 0; i < 3; i++ {
		quote := &domain.Quote{
			ID:               node.Generate(),
			Subject:          "user-1",
			ProductLine:      "safety",
			Variant:          pricingdomain.VariantCore,
			CameraCount:      20,
			SubscriptionType: pricingdomain.SubscriptionYearly,
			ClientName:       "Jordan Reyes",
			ClientCompany:    "Acme Logistics",
			ClientEmail:      "jordan@acme.example",
			CreatedAt:        createdAt,
			UpdatedAt:        createdAt,
		}
		require.NoError(t, db.Create(quote).Error)
		want[quote.ID.String()] = true
	}

	page1, err := svc.List(authedCtx("user-1"), domain.ListQuoteRequest{PageSize: 2})
	require.NoError(t, err)
	require.Len(t, page1.Quotes, 2)
	assert.True(t, page1.HasMore)
	require.NotEmpty(t, page1.NextPageToken)

	page2, err := svc.List(authedCtx("user-1"), domain.ListQuoteRequest{
		PageSize:  2,
		PageToken: page1.NextPageToken,
	})
	require.NoError(t, err)
	require.Len(t, page2.Quotes, 1)
	assert.False(t, page2.HasMore)

	seen := make(map[string]bool, 3)
	for _, q := range append(page1.Quotes, page2.Quotes...) {
		seen[q.ID.String()] = true
	}
	assert.Equal(t, want, seen)
}
