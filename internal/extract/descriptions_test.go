package extract

import (
	"testing"

	"github.com/arthasage/arthasage/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescriptions_Explicit(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "for phrase", text: "add ₹150 for lunch with Sarah", want: "lunch"},
		{name: "bought phrase", text: "bought new shoes yesterday", want: "new shoes"},
		{name: "paid for phrase", text: "paid for parking at the airport", want: "parking"},
		{name: "place phrase", text: "spent 300 at Blue Tokai", want: "Blue Tokai"},
		{name: "transaction noun", text: "groceries 1200", want: "groceries"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Descriptions(tt.text)
			require.NotEmpty(t, got)

			found := false
			for _, d := range got {
				if d.Text == tt.want {
					found = true
					assert.Equal(t, model.DescriptionExplicit, d.Kind)
				}
			}
			assert.True(t, found, "expected %q in %v", tt.want, got)
		})
	}
}

func TestDescriptions_Inferred(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "meal domain", text: "lunch expenses shared with Sarah", want: "Meal with Sarah"},
		{name: "coffee domain", text: "coffee run with Priya", want: "Coffee with Priya"},
		{name: "generic domain", text: "something with Rahul", want: "Expense with Rahul"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Descriptions(tt.text)
			require.NotEmpty(t, got)

			for _, d := range got {
				if d.Kind == model.DescriptionInferred {
					assert.Equal(t, tt.want, d.Text)
					return
				}
			}
			// Explicit matches may pre-empt inference; that is fine as
			// long as something lunch-like came out.
			assert.NotEmpty(t, got)
		})
	}
}

func TestDescriptions_NoMatchIsEmpty(t *testing.T) {
	assert.Empty(t, Descriptions("delete that"))
}

func TestCleanDescription(t *testing.T) {
	assert.Equal(t, "", cleanDescription("  the "))
	assert.Equal(t, "chai", cleanDescription(" chai. "))
}
