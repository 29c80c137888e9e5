package respond

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatINR renders an amount in Indian-Rupee convention: two fixed
// decimal places with en-IN digit grouping (last three digits, then
// groups of two): 1234567.5 -> ₹12,34,567.50.
func FormatINR(amount float64) string {
	d := decimal.NewFromFloat(amount).Round(2)

	negative := d.IsNegative()
	if negative {
		d = d.Neg()
	}

	fixed := d.StringFixed(2)
	whole, frac, _ := strings.Cut(fixed, ".")

	grouped := groupIndian(whole)
	out := "₹" + grouped + "." + frac
	if negative {
		out = "-" + out
	}
	return out
}

// groupIndian inserts en-IN style separators into a digit string.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var parts []string
	for len(head) > 2 {
		parts = append([]string{head[len(head)-2:]}, parts...)
		head = head[:len(head)-2]
	}
	if head != "" {
		parts = append([]string{head}, parts...)
	}
	parts = append(parts, tail)

	return strings.Join(parts, ",")
}

// sumAmounts totals a float series with decimal arithmetic to avoid
// accumulation drift in the rendered figures.
func sumAmounts(values []float64) float64 {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(decimal.NewFromFloat(v))
	}
	f, _ := total.Float64()
	return f
}
