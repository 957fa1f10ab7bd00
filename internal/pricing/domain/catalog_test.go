package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int       { return &v }
func int64Ptr(v int64) *int64 { return &v }

func validCatalog() *Catalog {
	return &Catalog{
		ProductLines: []ProductLine{
			{ID: 1, Code: "safety", MinCameras: 5, MaxCameras: 10000, MaxDiscountPercent: 30, ScenarioLimit: 3},
		},
		Tiers: []PriceTier{
			{ID: 11, ProductLineID: 1, Variant: VariantCore, Position: 1, UpToCameras: intPtr(20), UnitCents: 5000},
			{ID: 12, ProductLineID: 1, Variant: VariantCore, Position: 2, UpToCameras: intPtr(100), UnitCents: 4000},
			{ID: 13, ProductLineID: 1, Variant: VariantCore, Position: 3, UnitCents: 3500},
		},
		SubscriptionTypes: []SubscriptionType{
			{ID: 21, Code: SubscriptionMonthly, ContractMonths: 1},
			{ID: 22, Code: SubscriptionYearly, DiscountFraction: 0.20, ContractMonths: 12},
			{ID: 23, Code: SubscriptionThreeMonth, DiscountFraction: 0.20, ContractMonths: 3, FixedTotalCents: int64Ptr(600000)},
		},
	}
}

func TestValidate_AcceptsWellFormedCatalog(t *testing.T) {
	require.NoError(t, validCatalog().Validate())
}

func TestValidate_RejectsEmptyCatalog(t *testing.T) {
	catalog := &Catalog{}
	assert.Error(t, catalog.Validate())
}

func TestValidate_RejectsBoundedLastTier(t *testing.T) {
	catalog := validCatalog()
	catalog.Tiers[2].UpToCameras = intPtr(500)
	assert.Error(t, catalog.Validate())
}

func TestValidate_RejectsNonIncreasingTierBounds(t *testing.T) {
	catalog := validCatalog()
	catalog.Tiers[1].UpToCameras = intPtr(20)
	assert.Error(t, catalog.Validate())
}

func TestValidate_RejectsDiscountFractionOutOfRange(t *testing.T) {
	catalog := validCatalog()
	catalog.SubscriptionTypes[1].DiscountFraction = 1.0
	assert.Error(t, catalog.Validate())
}

func TestValidate_RequiresPilotFixedTotal(t *testing.T) {
	catalog := validCatalog()
	catalog.SubscriptionTypes[2].FixedTotalCents = nil
	assert.Error(t, catalog.Validate())
}

func TestValidate_RejectsZeroMinCameras(t *testing.T) {
	catalog := validCatalog()
	catalog.ProductLines[0].MinCameras = 0
	assert.Error(t, catalog.Validate())
}

func TestTiersFor_SortsByPosition(t *testing.T) {
	catalog := validCatalog()
	catalog.Tiers[0], catalog.Tiers[2] = catalog.Tiers[2], catalog.Tiers[0]

	tiers := catalog.TiersFor(1, VariantCore)
	require.Len(t, tiers, 3)
	assert.Equal(t, 1, tiers[0].Position)
	assert.Nil(t, tiers[2].UpToCameras)
}
