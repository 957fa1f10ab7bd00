package engine

import "github.com/smallbiznis/partnerportal/internal/pricing/domain"

// perpetualDiscount and perpetualYears define the perpetual license formula:
// license = annual recurring x (1 - 0.2) x 3.
const (
	perpetualDiscount = 0.2
	perpetualYears    = 3
	amcFraction       = 0.1
)

// Adjustment is the subscription-type outcome applied to a recurring base.
type Adjustment struct {
	Code                 domain.SubscriptionCode
	AdjustedMonthlyCents int64
	ContractMonths       int
	// FixedTotalCents, when set, overrides the whole contract value (pilot).
	FixedTotalCents *int64
	// LicenseCents is the one-time perpetual license price; zero otherwise.
	LicenseCents int64
	// AMCAnnualCents is the optional annual maintenance line offered with a
	// perpetual license. It is not part of the contract value by default.
	AMCAnnualCents int64
}

// Adjust applies the subscription type's discount or fixed-cost rule to the
// tier-allocated monthly recurring cost. The pilot (three month) type prices
// its recurring figure with the yearly fraction and fixes the contract total;
// the perpetual type converts the recurring cost into a one-time license.
func Adjust(monthlyCents int64, sub domain.SubscriptionType, types []domain.SubscriptionType) Adjustment {
	adj := Adjustment{
		Code:           sub.Code,
		ContractMonths: sub.ContractMonths,
	}

	switch sub.Code {
	case domain.SubscriptionThreeMonth:
		fraction := sub.DiscountFraction
		if yearly, ok := findType(types, domain.SubscriptionYearly); ok {
			fraction = yearly.DiscountFraction
		}
		adj.AdjustedMonthlyCents = applyFraction(monthlyCents, 1-fraction)
		if sub.FixedTotalCents != nil {
			fixed := *sub.FixedTotalCents
			adj.FixedTotalCents = &fixed
		}
	case domain.SubscriptionPerpetual:
		adj.AdjustedMonthlyCents = monthlyCents
		adj.ContractMonths = 0
		adj.LicenseCents = applyFraction(monthlyCents*12, 1-perpetualDiscount) * perpetualYears
		adj.AMCAnnualCents = applyFraction(adj.LicenseCents, amcFraction)
	default:
		adj.AdjustedMonthlyCents = applyFraction(monthlyCents, 1-sub.DiscountFraction)
	}

	return adj
}

func findType(types []domain.SubscriptionType, code domain.SubscriptionCode) (domain.SubscriptionType, bool) {
	for _, t := range types {
		if t.Code == code {
			return t, true
		}
	}
	return domain.SubscriptionType{}, false
}
