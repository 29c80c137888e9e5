package model

// DateKind distinguishes how a date mention was phrased.
type DateKind string

const (
	// DateRelative marks dates anchored to today ("yesterday", "3 days ago").
	DateRelative DateKind = "relative"
	// DateAbsolute marks explicit calendar dates ("12/03/2025").
	DateAbsolute DateKind = "absolute"
)

// DescriptionKind distinguishes extracted from synthesized descriptions.
type DescriptionKind string

const (
	// DescriptionExplicit marks text lifted directly from the message.
	DescriptionExplicit DescriptionKind = "explicit"
	// DescriptionInferred marks text synthesized from surrounding context.
	DescriptionInferred DescriptionKind = "inferred"
)

// AmountEntity is a monetary value found in free text. Position is the
// character offset in the normalized message.
type AmountEntity struct {
	Currency string
	Value    float64
	Position int
}

// DateEntity is a date mention normalized to YYYY-MM-DD.
type DateEntity struct {
	Value    string
	Kind     DateKind
	Position int
}

// CategoryEntity is a category mention with a match confidence.
type CategoryEntity struct {
	Name       string
	Position   int
	Confidence float64
}

// PersonEntity is a person or relationship mention with a match confidence.
type PersonEntity struct {
	Name       string
	Position   int
	Confidence float64
}

// DescriptionEntity is a candidate expense description.
type DescriptionEntity struct {
	Text     string
	Kind     DescriptionKind
	Position int
}

// Recognition is the full output of entity extraction for one message.
// Each slice is ordered by discovery; absence of a match is an empty slice,
// never an error.
type Recognition struct {
	Amounts      []AmountEntity
	Dates        []DateEntity
	Categories   []CategoryEntity
	People       []PersonEntity
	Descriptions []DescriptionEntity
}
