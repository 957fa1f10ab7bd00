package engine

import (
	"testing"

	"github.com/smallbiznis/partnerportal/internal/pricing/domain"
	"github.com/stretchr/testify/assert"
)

func int64Ptr(v int64) *int64 { return &v }

func testSubscriptionTypes() []domain.SubscriptionType {
	return []domain.SubscriptionType{
		{Code: domain.SubscriptionMonthly, DiscountFraction: 0, ContractMonths: 1},
		{Code: domain.SubscriptionYearly, DiscountFraction: 0.20, ContractMonths: 12},
		{Code: domain.SubscriptionThreeYear, DiscountFraction: 0.30, ContractMonths: 36},
		{Code: domain.SubscriptionThreeMonth, DiscountFraction: 0, ContractMonths: 3, FixedTotalCents: int64Ptr(600000)},
		{Code: domain.SubscriptionPerpetual, DiscountFraction: 0, ContractMonths: 0},
	}
}

func subType(t *testing.T, code domain.SubscriptionCode) domain.SubscriptionType {
	t.Helper()
	for _, s := range testSubscriptionTypes() {
		if s.Code == code {
			return s
		}
	}
	t.Fatalf("unknown subscription type %s", code)
	return domain.SubscriptionType{}
}

func TestAdjust_StandardDiscounts(t *testing.T) {
	types := testSubscriptionTypes()

	monthly := Adjust(100000, subType(t, domain.SubscriptionMonthly), types)
	assert.Equal(t, int64(100000), monthly.AdjustedMonthlyCents)
	assert.Equal(t, 1, monthly.ContractMonths)

	yearly := Adjust(100000, subType(t, domain.SubscriptionYearly), types)
	assert.Equal(t, int64(80000), yearly.AdjustedMonthlyCents)
	assert.Equal(t, 12, yearly.ContractMonths)

	threeYear := Adjust(100000, subType(t, domain.SubscriptionThreeYear), types)
	assert.Equal(t, int64(70000), threeYear.AdjustedMonthlyCents)
	assert.Equal(t, 36, threeYear.ContractMonths)
}

func TestAdjust_DiscountMonotonicity(t *testing.T) {
	types := testSubscriptionTypes()
	for _, base := range []int64{1, 999, 100000, 123456789} {
		monthly := Adjust(base, subType(t, domain.SubscriptionMonthly), types)
		yearly := Adjust(base, subType(t, domain.SubscriptionYearly), types)
		assert.LessOrEqual(t, yearly.AdjustedMonthlyCents, monthly.AdjustedMonthlyCents, "base %d", base)
	}
}

func TestAdjust_PilotUsesYearlyFraction(t *testing.T) {
	types := testSubscriptionTypes()
	pilot := Adjust(100000, subType(t, domain.SubscriptionThreeMonth), types)

	// Recurring cost is priced with the yearly fraction, not the pilot's own.
	assert.Equal(t, int64(80000), pilot.AdjustedMonthlyCents)
	assert.NotNil(t, pilot.FixedTotalCents)
	assert.Equal(t, int64(600000), *pilot.FixedTotalCents)
}

func TestAdjust_PerpetualLicenseFormula(t *testing.T) {
	types := testSubscriptionTypes()
	perpetual := Adjust(100000, subType(t, domain.SubscriptionPerpetual), types)

	// (100000 x 12) x 0.8 x 3 = 2,880,000
	assert.Equal(t, int64(2880000), perpetual.LicenseCents)
	assert.Equal(t, int64(288000), perpetual.AMCAnnualCents)
	assert.Equal(t, 0, perpetual.ContractMonths)
	assert.Equal(t, int64(100000), perpetual.AdjustedMonthlyCents)
}
