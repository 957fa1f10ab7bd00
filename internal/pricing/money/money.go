// Package money formats integer cents for display and export. Formatting is
// presentation only; it never feeds back into pricing arithmetic.
package money

import (
	"fmt"
	"math"
	"strings"
)

var symbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"INR": "₹",
	"AED": "AED ",
	"SGD": "S$",
}

// FormatCents renders cents as a currency string with thousands separators,
// e.g. 123456789 -> "$1,234,567.89".
func FormatCents(currency string, cents int64) string {
	symbol, ok := symbols[strings.ToUpper(currency)]
	if !ok {
		symbol = strings.ToUpper(currency) + " "
	}

	negative := cents < 0
	if negative {
		cents = -cents
	}

	whole := cents / 100
	frac := cents % 100

	out := symbol + groupThousands(whole) + fmt.Sprintf(".%02d", frac)
	if negative {
		return "-" + out
	}
	return out
}

// ConvertCents applies a display-only exchange rate, rounding half up.
func ConvertCents(cents int64, rate float64) int64 {
	return int64(math.Round(float64(cents) * rate))
}

func groupThousands(v int64) string {
	digits := fmt.Sprintf("%d", v)
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
