// Package engine implements the quote pricing pipeline as pure functions:
// tier allocation, subscription adjustment, and cost aggregation. All money
// amounts are int64 cents; fractions are rounded half up.
package engine

import (
	"math"

	"github.com/smallbiznis/partnerportal/internal/pricing/domain"
)

// TierLine is one tier's share of an allocation.
type TierLine struct {
	Label         string `json:"label"`
	Cameras       int    `json:"cameras"`
	UnitCents     int64  `json:"unit_cents"`
	SubtotalCents int64  `json:"subtotal_cents"`
}

// Allocate splits cameraCount across the ordered tier table. Each tier absorbs
// up to its capacity; the last tier is unbounded and takes the remainder.
// A camera count of zero yields an empty allocation.
func Allocate(cameraCount int, tiers []domain.PriceTier) []TierLine {
	if cameraCount <= 0 || len(tiers) == 0 {
		return nil
	}

	lines := make([]TierLine, 0, len(tiers))
	remaining := cameraCount
	prevUpTo := 0

	for _, tier := range tiers {
		if remaining == 0 {
			break
		}

		take := remaining
		if tier.UpToCameras != nil {
			capacity := *tier.UpToCameras - prevUpTo
			if capacity < take {
				take = capacity
			}
			prevUpTo = *tier.UpToCameras
		}
		if take <= 0 {
			continue
		}

		lines = append(lines, TierLine{
			Label:         tier.Label,
			Cameras:       take,
			UnitCents:     tier.UnitCents,
			SubtotalCents: int64(take) * tier.UnitCents,
		})
		remaining -= take
	}

	return lines
}

// MonthlyTotal sums the allocation's subtotals.
func MonthlyTotal(lines []TierLine) int64 {
	var total int64
	for _, line := range lines {
		total += line.SubtotalCents
	}
	return total
}

// applyFraction multiplies cents by a fraction, rounding half up.
func applyFraction(cents int64, fraction float64) int64 {
	return int64(math.Round(float64(cents) * fraction))
}
