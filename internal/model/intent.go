package model

// Action is what the user wants done.
type Action string

const (
	// ActionAdd creates a new record.
	ActionAdd Action = "add"
	// ActionUpdate modifies an existing record.
	ActionUpdate Action = "update"
	// ActionDelete removes an existing record.
	ActionDelete Action = "delete"
	// ActionQuery retrieves data.
	ActionQuery Action = "query"
	// ActionAnalyze asks for insight over the data.
	ActionAnalyze Action = "analyze"
	// ActionHelp is the conversational fallback.
	ActionHelp Action = "help"
)

// EntityKind is the record type an action targets.
type EntityKind string

const (
	// EntityExpense targets expenses.
	EntityExpense EntityKind = "expense"
	// EntityBudget targets budgets.
	EntityBudget EntityKind = "budget"
	// EntityCategory targets categories.
	EntityCategory EntityKind = "category"
	// EntityPerson targets people.
	EntityPerson EntityKind = "person"
	// EntityTemplate targets templates.
	EntityTemplate EntityKind = "template"
)

// IntentType is the coarse classification family a message fell into.
type IntentType string

const (
	// IntentCRUD covers add/update/delete instructions.
	IntentCRUD IntentType = "CRUD_OPERATION"
	// IntentDataRetrieval covers list/show/find requests.
	IntentDataRetrieval IntentType = "DATA_RETRIEVAL"
	// IntentAnalysis covers analytical questions.
	IntentAnalysis IntentType = "ANALYSIS"
	// IntentGeneralChat is the conversational fallback.
	IntentGeneralChat IntentType = "GENERAL_CHAT"
)

// ResponseFormat selects the rendering strategy for a classified intent.
type ResponseFormat string

const (
	// FormatRawData renders an itemized listing.
	FormatRawData ResponseFormat = "RAW_DATA"
	// FormatSummary renders aggregate statistics only.
	FormatSummary ResponseFormat = "SUMMARY"
	// FormatAnalysis delegates to the generative text service.
	FormatAnalysis ResponseFormat = "ANALYSIS"
	// FormatConversation delegates with a conversational prompt.
	FormatConversation ResponseFormat = "CONVERSATION"
)

// Filters narrows a data-retrieval or analysis query.
type Filters struct {
	DateFrom  string
	DateTo    string
	Category  string
	AmountMin *float64
	AmountMax *float64
	People    []string
	Limit     int
}

// Parameters is the structured argument bag for a resolved intent.
// ID is populated only for update/delete, and only after the resolver has
// run its full resolution chain.
type Parameters struct {
	Amount      *float64
	Category    string
	Date        string
	Description string
	ID          string
	People      []string
	PeopleIDs   []string
	Filters     Filters
	Limit       int
}

// QueryIntent is the classifier's raw verdict before contextual resolution.
// Action is set only for the CRUD family.
type QueryIntent struct {
	Type           IntentType
	Subtype        string
	Action         Action
	ResponseFormat ResponseFormat
	Confidence     float64
	Filters        Filters
}

// ParsedIntent is the final resolved intent handed to the orchestrator.
type ParsedIntent struct {
	Action      Action
	Entity      EntityKind
	Confidence  float64
	Parameters  Parameters
	Query       QueryIntent
	Entities    Recognition
	Message     string
	Suggestions []string
}

// ClampConfidence bounds a confidence score to [0, 1].
func ClampConfidence(c float64) float64 {
	if c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}
