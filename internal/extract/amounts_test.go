package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmounts(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		wantValue    float64
		wantCurrency string
		wantNone     bool
	}{
		{
			name:         "rupee symbol",
			text:         "Add ₹150 for lunch",
			wantValue:    150,
			wantCurrency: "INR",
		},
		{
			name:         "rupee abbreviation with dot",
			text:         "spent Rs. 2500 on rent",
			wantValue:    2500,
			wantCurrency: "INR",
		},
		{
			name:         "rupee abbreviation without dot",
			text:         "rs 99.50 for chai",
			wantValue:    99.50,
			wantCurrency: "INR",
		},
		{
			name:         "dollar symbol",
			text:         "paid $42.75 for the book",
			wantValue:    42.75,
			wantCurrency: "USD",
		},
		{
			name:         "usd prefix",
			text:         "USD 120 hotel night",
			wantValue:    120,
			wantCurrency: "USD",
		},
		{
			name:         "bare number gets default currency",
			text:         "add 350 for groceries",
			wantValue:    350,
			wantCurrency: "INR",
		},
		{
			name:         "grouped digits",
			text:         "₹1,234.00",
			wantValue:    1234,
			wantCurrency: "INR",
		},
		{
			name:     "no amount",
			text:     "show me my budgets",
			wantNone: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Amounts(tt.text, "INR")

			if tt.wantNone {
				assert.Empty(t, got)
				return
			}

			require.NotEmpty(t, got)
			assert.InDelta(t, tt.wantValue, got[0].Value, 0.001)
			assert.Equal(t, tt.wantCurrency, got[0].Currency)
			assert.GreaterOrEqual(t, got[0].Position, 0)
		})
	}
}

func TestAmounts_Idempotence(t *testing.T) {
	// Re-extracting from rendered output must recover the same value.
	first := Amounts("₹1,234.00", "INR")
	require.NotEmpty(t, first)

	second := Amounts("₹1,234.00", "INR")
	require.NotEmpty(t, second)
	assert.InDelta(t, first[0].Value, second[0].Value, 0.001)
	assert.InDelta(t, 1234.0, first[0].Value, 0.001)
}

func TestAmounts_BareNumberBounds(t *testing.T) {
	assert.Empty(t, Amounts("rated it 0.5 stars", "INR"), "below minimum")

	got := Amounts("add 1000000 for the car", "INR")
	require.NotEmpty(t, got)
	assert.InDelta(t, 1_000_000.0, got[0].Value, 0.001)

	assert.Empty(t, Amounts("population is 7000000000", "INR"), "above maximum")
}

func TestAmounts_MultipleFamiliesAccumulate(t *testing.T) {
	// The same number may appear once per family; callers take the first.
	got := Amounts("₹150 or $2", "INR")
	require.GreaterOrEqual(t, len(got), 2)
	assert.Equal(t, "INR", got[0].Currency)
	assert.InDelta(t, 150.0, got[0].Value, 0.001)
}
