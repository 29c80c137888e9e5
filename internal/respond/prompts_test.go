package respond

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthasage/arthasage/internal/model"
)

func TestBuildAnalysisPrompt(t *testing.T) {
	pb, err := NewPromptBuilder()
	require.NoError(t, err)

	pi := model.ParsedIntent{
		Message: "how much did I spend this month",
		Query:   model.QueryIntent{Subtype: "spending_analysis"},
		Parameters: model.Parameters{
			Filters: model.Filters{DateFrom: "2025-06-01", DateTo: "2025-06-15"},
		},
	}

	prompt, err := pb.BuildAnalysisPrompt(pi, testExpenses())
	require.NoError(t, err)

	assert.Contains(t, prompt, "how much did I spend this month")
	assert.Contains(t, prompt, "spending_analysis")
	assert.Contains(t, prompt, "Expenses in range: 3")
	assert.Contains(t, prompt, "Total spent: ₹600.00")
	assert.Contains(t, prompt, "Average per expense: ₹200.00")
	assert.Contains(t, prompt, "Period: 2025-06-01 to 2025-06-15")
	assert.Contains(t, prompt, "Food & Dining: ₹500.00 (83.3%)")
	// "spend" keys a principle into the prompt.
	assert.Contains(t, prompt, "Measured Expenditure")
}

func TestBuildAnalysisPromptEmptyData(t *testing.T) {
	pb, err := NewPromptBuilder()
	require.NoError(t, err)

	prompt, err := pb.BuildAnalysisPrompt(model.ParsedIntent{Message: "hello"}, nil)
	require.NoError(t, err)
	assert.Contains(t, prompt, "Expenses in range: 0")
	assert.Contains(t, prompt, "Total spent: ₹0.00")
}

func TestBuildConversationPrompt(t *testing.T) {
	pb, err := NewPromptBuilder()
	require.NoError(t, err)

	history := []model.Turn{
		{Role: model.RoleUser, Content: "first"},
		{Role: model.RoleAssistant, Content: "second"},
		{Role: model.RoleUser, Content: "third"},
		{Role: model.RoleAssistant, Content: "fourth"},
		{Role: model.RoleUser, Content: "fifth"},
	}

	prompt, err := pb.BuildConversationPrompt("what can you do?", history)
	require.NoError(t, err)

	assert.Contains(t, prompt, "user: what can you do?")
	assert.Contains(t, prompt, "fifth")
	// Only the trailing window of turns is carried.
	assert.NotContains(t, prompt, "first")
}

func TestBuildConversationPromptNoHistory(t *testing.T) {
	pb, err := NewPromptBuilder()
	require.NoError(t, err)

	prompt, err := pb.BuildConversationPrompt("hi", nil)
	require.NoError(t, err)
	assert.Contains(t, prompt, "user: hi")
	assert.NotContains(t, prompt, "Recent conversation:")
}
