package extract

import (
	"testing"

	"github.com/arthasage/arthasage/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategories_DirectMatch(t *testing.T) {
	known := []model.Category{
		{Name: "Food & Dining"},
		{Name: "Gadgets"},
	}

	got := Categories("spent a lot on Gadgets this week", known)
	require.NotEmpty(t, got)
	assert.Equal(t, "Gadgets", got[0].Name)
	assert.InDelta(t, 0.9, got[0].Confidence, 0.001)
}

func TestCategories_SemanticKeywords(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "food", text: "had lunch at the office", want: "Food & Dining"},
		{name: "transport", text: "took an uber home", want: "Transportation"},
		{name: "shopping", text: "went to the mall", want: "Shopping"},
		{name: "entertainment", text: "cinema tickets", want: "Entertainment"},
		{name: "bills", text: "paid the electricity", want: "Bills & Utilities"},
		{name: "healthcare", text: "visited the doctor", want: "Healthcare"},
		{name: "education", text: "enrolled in a course", want: "Education"},
		{name: "travel", text: "booked a flight", want: "Travel"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Categories(tt.text, nil)
			require.NotEmpty(t, got)
			assert.Equal(t, tt.want, got[0].Name)
			assert.InDelta(t, 0.7, got[0].Confidence, 0.001)
		})
	}
}

func TestCategories_SemanticSuppressedNearDirectMatch(t *testing.T) {
	known := []model.Category{{Name: "Food"}}

	// "lunch" sits right beside the direct "Food" hit, so only the
	// high-confidence direct match survives.
	got := Categories("Food lunch", known)
	require.Len(t, got, 1)
	assert.Equal(t, "Food", got[0].Name)
	assert.InDelta(t, 0.9, got[0].Confidence, 0.001)
}

func TestCategories_SemanticKeptFarFromDirectMatch(t *testing.T) {
	known := []model.Category{{Name: "Gadgets"}}

	got := Categories("Gadgets were expensive but the taxi ride after midnight cost more", known)
	require.GreaterOrEqual(t, len(got), 2)

	names := make([]string, 0, len(got))
	for _, e := range got {
		names = append(names, e.Name)
	}
	assert.Contains(t, names, "Gadgets")
	assert.Contains(t, names, "Transportation")
}

func TestCategories_NoMatchIsEmpty(t *testing.T) {
	assert.Empty(t, Categories("hello there", nil))
}

func TestSemanticCategoryFor(t *testing.T) {
	assert.Equal(t, "Food & Dining", SemanticCategoryFor("team lunch downtown"))
	assert.Equal(t, "", SemanticCategoryFor("completely unrelated words"))
}
