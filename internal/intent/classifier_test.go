package intent

import (
	"testing"
	"time"

	"github.com/arthasage/arthasage/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func testClassifier() *Classifier {
	return NewClassifierAt(func() time.Time { return fixedNow })
}

func TestClassify_CRUD(t *testing.T) {
	tests := []struct {
		name       string
		message    string
		wantAction model.Action
		wantEntity string
	}{
		{name: "add expense", message: "Add ₹150 for lunch with Sarah", wantAction: model.ActionAdd, wantEntity: "expense"},
		{name: "spent phrasing", message: "spent 200 on coffee", wantAction: model.ActionAdd, wantEntity: "expense"},
		{name: "update budget", message: "update my food budget to 5000", wantAction: model.ActionUpdate, wantEntity: "budget"},
		{name: "delete expense", message: "delete my coffee expense", wantAction: model.ActionDelete, wantEntity: "expense"},
		{name: "remove category", message: "remove the snacks category", wantAction: model.ActionDelete, wantEntity: "category"},
	}

	c := testClassifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.message)
			assert.Equal(t, model.IntentCRUD, got.Type)
			assert.Equal(t, tt.wantAction, got.Action)
			assert.Equal(t, tt.wantEntity, got.Subtype)
			assert.GreaterOrEqual(t, got.Confidence, crudThreshold)
		})
	}
}

func TestClassify_PriorityOrdering(t *testing.T) {
	// A message matching both CRUD and retrieval patterns must classify
	// as CRUD, never as retrieval.
	got := testClassifier().Classify("delete all my expenses")
	assert.Equal(t, model.IntentCRUD, got.Type)
	assert.Equal(t, model.ActionDelete, got.Action)
}

func TestClassify_DataRetrieval(t *testing.T) {
	tests := []struct {
		name        string
		message     string
		wantSubtype string
		wantFormat  model.ResponseFormat
	}{
		{name: "budgets", message: "show me my budgets", wantSubtype: "budgets", wantFormat: model.FormatRawData},
		{name: "expenses table", message: "show expenses as a table", wantSubtype: "expenses", wantFormat: model.FormatRawData},
		{name: "categories list", message: "list my categories", wantSubtype: "categories", wantFormat: model.FormatRawData},
		{name: "summary only", message: "give me a brief overview of my expenses", wantSubtype: "expenses", wantFormat: model.FormatSummary},
		{name: "summary beats nothing but raw wins", message: "detailed summary of expenses", wantSubtype: "expenses", wantFormat: model.FormatRawData},
	}

	c := testClassifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.message)
			require.Equal(t, model.IntentDataRetrieval, got.Type, "confidence %v", got.Confidence)
			assert.Equal(t, tt.wantSubtype, got.Subtype)
			assert.Equal(t, tt.wantFormat, got.ResponseFormat)
			assert.GreaterOrEqual(t, got.Confidence, retrievalThreshold)
		})
	}
}

func TestClassify_FilterOnlyRetrieval(t *testing.T) {
	tests := []struct {
		name    string
		message string
		check   func(t *testing.T, got model.QueryIntent)
	}{
		{
			name:    "amount range",
			message: "expenses between 100 and 500",
			check: func(t *testing.T, got model.QueryIntent) {
				require.NotNil(t, got.Filters.AmountMin)
				require.NotNil(t, got.Filters.AmountMax)
				assert.InDelta(t, 100.0, *got.Filters.AmountMin, 0.001)
				assert.InDelta(t, 500.0, *got.Filters.AmountMax, 0.001)
			},
		},
		{
			name:    "amount floor",
			message: "expenses over 500",
			check: func(t *testing.T, got model.QueryIntent) {
				require.NotNil(t, got.Filters.AmountMin)
				assert.InDelta(t, 500.0, *got.Filters.AmountMin, 0.001)
				assert.Nil(t, got.Filters.AmountMax)
			},
		},
		{
			name:    "period only",
			message: "my expenses this month",
			check: func(t *testing.T, got model.QueryIntent) {
				assert.Equal(t, "2025-06-01", got.Filters.DateFrom)
				assert.Equal(t, "2025-06-15", got.Filters.DateTo)
			},
		},
	}

	c := testClassifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.message)
			require.Equal(t, model.IntentDataRetrieval, got.Type, "confidence %v", got.Confidence)
			assert.Equal(t, "expenses", got.Subtype)
			assert.GreaterOrEqual(t, got.Confidence, retrievalThreshold)
			tt.check(t, got)
		})
	}

	// A period filter without a record noun is a question, not a listing.
	got := c.Classify("how much did I spend this month")
	assert.Equal(t, model.IntentAnalysis, got.Type)
}

func TestClassify_Analysis(t *testing.T) {
	tests := []struct {
		name        string
		message     string
		wantSubtype string
	}{
		{name: "spending question", message: "how much did I spend this month", wantSubtype: "spending_analysis"},
		{name: "trend", message: "what are the trends in my spending over time", wantSubtype: "trend_analysis"},
		{name: "comparison", message: "compare my spending against last month", wantSubtype: "comparison_analysis"},
		{name: "generic", message: "any insights for me", wantSubtype: "general_analysis"},
	}

	c := testClassifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.message)
			require.Equal(t, model.IntentAnalysis, got.Type)
			assert.Equal(t, tt.wantSubtype, got.Subtype)
			assert.Equal(t, model.FormatAnalysis, got.ResponseFormat)
			assert.GreaterOrEqual(t, got.Confidence, analysisThreshold)
		})
	}
}

func TestClassify_Fallback(t *testing.T) {
	tests := []string{
		"hello there",
		"what is a mutual fund",
		"",
	}

	c := testClassifier()
	for _, msg := range tests {
		got := c.Classify(msg)
		assert.Equal(t, model.IntentGeneralChat, got.Type, "message %q", msg)
		assert.InDelta(t, fallbackConfidence, got.Confidence, 0.001)
		assert.Equal(t, model.FormatConversation, got.ResponseFormat)
	}
}

func TestClassify_ConfidenceBounds(t *testing.T) {
	messages := []string{
		"show list all raw detailed table expenses",
		"delete remove cancel everything",
		"x",
		"add add add add",
	}

	c := testClassifier()
	for _, msg := range messages {
		got := c.Classify(msg)
		assert.GreaterOrEqual(t, got.Confidence, 0.0, "message %q", msg)
		assert.LessOrEqual(t, got.Confidence, 1.0, "message %q", msg)
	}
}

func TestExtractFilters(t *testing.T) {
	c := testClassifier()

	t.Run("amount min", func(t *testing.T) {
		f := c.extractFilters("show expenses over 500")
		require.NotNil(t, f.AmountMin)
		assert.InDelta(t, 500.0, *f.AmountMin, 0.001)
		assert.Nil(t, f.AmountMax)
	})

	t.Run("amount range", func(t *testing.T) {
		f := c.extractFilters("expenses between 100 and 500")
		require.NotNil(t, f.AmountMin)
		require.NotNil(t, f.AmountMax)
		assert.InDelta(t, 100.0, *f.AmountMin, 0.001)
		assert.InDelta(t, 500.0, *f.AmountMax, 0.001)
	})

	t.Run("this month range", func(t *testing.T) {
		f := c.extractFilters("show expenses this month")
		assert.Equal(t, "2025-06-01", f.DateFrom)
		assert.Equal(t, "2025-06-15", f.DateTo)
	})

	t.Run("last month range", func(t *testing.T) {
		f := c.extractFilters("expenses last month")
		assert.Equal(t, "2025-05-01", f.DateFrom)
		assert.Equal(t, "2025-05-31", f.DateTo)
	})

	t.Run("named month", func(t *testing.T) {
		f := c.extractFilters("show expenses in january")
		assert.Equal(t, "2025-01-01", f.DateFrom)
		assert.Equal(t, "2025-01-31", f.DateTo)
	})

	t.Run("future named month refers to last year", func(t *testing.T) {
		f := c.extractFilters("show expenses in december")
		assert.Equal(t, "2024-12-01", f.DateFrom)
		assert.Equal(t, "2024-12-31", f.DateTo)
	})

	t.Run("category and limit", func(t *testing.T) {
		f := c.extractFilters("show last 5 food expenses")
		assert.Equal(t, "Food & Dining", f.Category)
		assert.Equal(t, 5, f.Limit)
	})
}
