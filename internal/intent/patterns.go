package intent

// Keyword tables for the three classification families. These are fixed,
// read-only lookup data; the classifier itself is stateless.

var (
	createKeywords = []string{"add", "create", "new", "record", "spent", "bought", "paid", "purchased"}
	updateKeywords = []string{"update", "modify", "change", "edit", "increase", "decrease", "adjust"}
	deleteKeywords = []string{"delete", "remove", "cancel"}

	retrievalKeywords = []string{"list", "show", "display", "get", "find", "give me", "what are my"}
	rawDataKeywords   = []string{"export", "table", "csv", "detailed", "itemized", "raw"}
	summaryKeywords   = []string{"summary", "overview", "brief"}

	analysisKeywords = []string{
		"analyze", "analyse", "summarize", "insight", "insights",
		"trend", "trends", "pattern", "patterns", "recommend",
		"recommendation", "compare", "how much", "spend", "spending",
	}
)

// recordNouns gate filter-only retrieval: "expenses over 500" names records
// to list, while "how much did I spend this month" carries the same kind of
// period filter but asks an analysis question.
var recordNouns = []string{
	"expense", "expenses", "budget", "budgets", "category", "categories",
	"person", "people", "template", "templates", "transaction", "transactions",
}

// periodPhrases are the calendar-snapped ranges extractDateRange resolves.
var periodPhrases = []string{"this month", "last month", "this year"}

// High-signal keywords that add a fixed confidence boost on top of the
// base + coverage score.
var confidenceBoosts = []struct {
	Keyword string
	Boost   float64
}{
	{"list", 0.2},
	{"show", 0.2},
	{"table", 0.2},
	{"raw", 0.2},
	{"all", 0.15},
	{"detailed", 0.15},
	{"expenses", 0.1},
	{"expense", 0.1},
}

// crudVerbBoost rewards an imperative mutation verb; without it short
// messages like "add 150 for chai" would never clear the CRUD threshold.
const crudVerbBoost = 0.15

// Family thresholds, evaluated in strict priority order.
const (
	crudThreshold      = 0.6
	retrievalThreshold = 0.5
	analysisThreshold  = 0.4
	fallbackConfidence = 0.3
)

// Analysis subtypes chosen by secondary keyword match.
var analysisSubtypes = []struct {
	Subtype  string
	Keywords []string
}{
	{Subtype: "trend_analysis", Keywords: []string{"trend", "over time", "monthly", "weekly"}},
	{Subtype: "comparison_analysis", Keywords: []string{"compare", "vs", "versus", "against"}},
	{Subtype: "budget_analysis", Keywords: []string{"budget"}},
	{Subtype: "category_analysis", Keywords: []string{"category", "categories"}},
	{Subtype: "spending_analysis", Keywords: []string{"how much", "spend", "spending", "spent"}},
}
