package engine

import (
	"testing"

	"github.com/smallbiznis/partnerportal/internal/pricing/domain"
	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func testTiers() []domain.PriceTier {
	return []domain.PriceTier{
		{Label: "1-20", Position: 0, UpToCameras: intPtr(20), UnitCents: 5000},
		{Label: "21-100", Position: 1, UpToCameras: intPtr(100), UnitCents: 4000},
		{Label: "101+", Position: 2, UnitCents: 3500},
	}
}

func TestAllocate_SpansTiers(t *testing.T) {
	lines := Allocate(120, testTiers())

	assert.Len(t, lines, 3)
	assert.Equal(t, TierLine{Label: "1-20", Cameras: 20, UnitCents: 5000, SubtotalCents: 100000}, lines[0])
	assert.Equal(t, TierLine{Label: "21-100", Cameras: 80, UnitCents: 4000, SubtotalCents: 320000}, lines[1])
	assert.Equal(t, TierLine{Label: "101+", Cameras: 20, UnitCents: 3500, SubtotalCents: 70000}, lines[2])
	assert.Equal(t, int64(490000), MonthlyTotal(lines))
}

func TestAllocate_CameraCountConserved(t *testing.T) {
	tiers := testTiers()
	for _, count := range []int{0, 1, 5, 20, 21, 99, 100, 101, 1000} {
		lines := Allocate(count, tiers)

		total := 0
		for _, line := range lines {
			total += line.Cameras
		}
		assert.Equal(t, count, total, "camera count %d", count)
	}
}

func TestAllocate_TierCapacityNotExceeded(t *testing.T) {
	lines := Allocate(5000, testTiers())

	assert.Equal(t, 20, lines[0].Cameras)
	assert.Equal(t, 80, lines[1].Cameras)
	assert.Equal(t, 4900, lines[2].Cameras)
}

func TestAllocate_ZeroCameras(t *testing.T) {
	assert.Nil(t, Allocate(0, testTiers()))
	assert.Equal(t, int64(0), MonthlyTotal(nil))
}

func TestAllocate_StopsInsideFirstTier(t *testing.T) {
	lines := Allocate(8, testTiers())

	assert.Len(t, lines, 1)
	assert.Equal(t, 8, lines[0].Cameras)
	assert.Equal(t, int64(40000), lines[0].SubtotalCents)
}
