package engine

import "math"

// OneTimeCosts are the non-recurring charges included in a quote. Each field
// is already multiplied by its count; excluded charges are zero.
type OneTimeCosts struct {
	ServerCents         int64
	ImplementationCents int64
	SpeakerCents        int64
	TravelCents         int64
}

// Total sums the one-time charges.
func (o OneTimeCosts) Total() int64 {
	return o.ServerCents + o.ImplementationCents + o.SpeakerCents + o.TravelCents
}

// Result is the computed pricing snapshot for one quote input.
type Result struct {
	CameraCount           int        `json:"camera_count"`
	TierBreakdown         []TierLine `json:"tier_breakdown"`
	PerCameraMonthlyCents int64      `json:"per_camera_monthly_cents"`

	MonthlyRecurringCents  int64 `json:"monthly_recurring_cents"`
	AnnualRecurringCents   int64 `json:"annual_recurring_cents"`
	AdjustedMonthlyCents   int64 `json:"adjusted_monthly_cents"`
	AdjustedAnnualCents    int64 `json:"adjusted_annual_cents"`
	DiscountedMonthlyCents int64 `json:"discounted_monthly_cents"`
	DiscountedAnnualCents  int64 `json:"discounted_annual_cents"`
	DiscountAmountCents    int64 `json:"discount_amount_cents"`

	TotalOneTimeCents int64 `json:"total_one_time_cents"`
	LicenseCents      int64 `json:"license_cents,omitempty"`
	AMCAnnualCents    int64 `json:"amc_annual_cents,omitempty"`

	ContractMonths     int   `json:"contract_months"`
	TotalContractCents int64 `json:"total_contract_cents"`
}

// Aggregate combines the tier allocation, the subscription adjustment, the
// one-time costs, and the flat discount percentage into a full pricing
// snapshot. The flat discount composes multiplicatively on top of the
// subscription discount and never touches one-time charges or the perpetual
// license. The pilot fixed total replaces both the one-time figure and the
// contract value.
func Aggregate(lines []TierLine, adj Adjustment, oneTime OneTimeCosts, discountPercent int) Result {
	monthly := MonthlyTotal(lines)

	cameras := 0
	for _, line := range lines {
		cameras += line.Cameras
	}

	var perCamera int64
	if cameras > 0 {
		perCamera = int64(math.Round(float64(monthly) / float64(cameras)))
	}

	if discountPercent < 0 {
		discountPercent = 0
	}

	discountedMonthly := applyFraction(adj.AdjustedMonthlyCents, 1-float64(discountPercent)/100)

	result := Result{
		CameraCount:           cameras,
		TierBreakdown:         lines,
		PerCameraMonthlyCents: perCamera,

		MonthlyRecurringCents:  monthly,
		AnnualRecurringCents:   monthly * 12,
		AdjustedMonthlyCents:   adj.AdjustedMonthlyCents,
		AdjustedAnnualCents:    adj.AdjustedMonthlyCents * 12,
		DiscountedMonthlyCents: discountedMonthly,
		DiscountedAnnualCents:  discountedMonthly * 12,

		TotalOneTimeCents: oneTime.Total(),
		LicenseCents:      adj.LicenseCents,
		AMCAnnualCents:    adj.AMCAnnualCents,

		ContractMonths: adj.ContractMonths,
	}
	result.DiscountAmountCents = result.AdjustedAnnualCents - result.DiscountedAnnualCents

	switch {
	case adj.FixedTotalCents != nil:
		result.TotalOneTimeCents = *adj.FixedTotalCents
		result.TotalContractCents = *adj.FixedTotalCents
	case adj.LicenseCents > 0:
		result.TotalContractCents = result.TotalOneTimeCents + adj.LicenseCents
	default:
		months := adj.ContractMonths
		if months < 1 {
			months = 1
		}
		result.TotalContractCents = result.TotalOneTimeCents + discountedMonthly*int64(months)
	}

	return result
}
