package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCents(t *testing.T) {
	tests := []struct {
		currency string
		cents    int64
		want     string
	}{
		{"USD", 0, "$0.00"},
		{"USD", 5000, "$50.00"},
		{"USD", 123456789, "$1,234,567.89"},
		{"USD", -960000, "-$9,600.00"},
		{"EUR", 100000, "€1,000.00"},
		{"JPY", 100000, "JPY 1,000.00"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCents(tt.currency, tt.cents))
	}
}

func TestConvertCents(t *testing.T) {
	assert.Equal(t, int64(8300000), ConvertCents(100000, 83))
	assert.Equal(t, int64(92000), ConvertCents(100000, 0.92))
	assert.Equal(t, int64(0), ConvertCents(0, 83))
}
