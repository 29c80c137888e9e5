package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/arthasage/arthasage/internal/model"
)

// Amount pattern families, applied in fixed order. Duplicate matches across
// families are intentional; callers take the first plausible one.
var (
	rupeeAmountRegex  = regexp.MustCompile(`(?i)(?:₹|\brs\.?)\s*([\d,]+(?:\.\d+)?)`)
	dollarAmountRegex = regexp.MustCompile(`(?i)(?:\$|\busd)\s*([\d,]+(?:\.\d+)?)`)
	bareAmountRegex   = regexp.MustCompile(`\b(\d+(?:\.\d+)?)\b`)
)

const (
	minBareAmount = 1
	maxBareAmount = 1_000_000
)

// Amounts scans text for monetary values. Bare numbers are tagged with the
// supplied default currency; currency-prefixed notation overrides it.
func Amounts(text, defaultCurrency string) []model.AmountEntity {
	if defaultCurrency == "" {
		defaultCurrency = "INR"
	}

	entities := make([]model.AmountEntity, 0, 2)

	for _, m := range rupeeAmountRegex.FindAllStringSubmatchIndex(text, -1) {
		if v, ok := parseAmount(text[m[2]:m[3]]); ok {
			entities = append(entities, model.AmountEntity{Value: v, Position: m[0], Currency: "INR"})
		}
	}

	for _, m := range dollarAmountRegex.FindAllStringSubmatchIndex(text, -1) {
		if v, ok := parseAmount(text[m[2]:m[3]]); ok {
			entities = append(entities, model.AmountEntity{Value: v, Position: m[0], Currency: "USD"})
		}
	}

	for _, m := range bareAmountRegex.FindAllStringSubmatchIndex(text, -1) {
		v, ok := parseAmount(text[m[2]:m[3]])
		if !ok || v < minBareAmount || v > maxBareAmount {
			continue
		}
		entities = append(entities, model.AmountEntity{Value: v, Position: m[0], Currency: defaultCurrency})
	}

	return entities
}

func parseAmount(raw string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
