// Package extract pulls structured entities (amounts, dates, categories,
// people, descriptions) out of free-text messages. Every extractor is a
// pure function over the message text: no entity found means an empty
// slice, never an error. Positions are byte offsets into the trimmed
// message so downstream proximity heuristics are reproducible.
package extract

import (
	"strings"
	"time"

	"github.com/arthasage/arthasage/internal/model"
)

// Recognizer produces the full entity recognition for a message.
// Implementations must be safe for concurrent use.
type Recognizer interface {
	Recognize(message string, uc *model.UserContext) model.Recognition
}

// RuleRecognizer is the heuristic, regex-backed Recognizer. The clock is
// injectable so relative-date resolution is testable.
type RuleRecognizer struct {
	now func() time.Time
}

// NewRuleRecognizer creates a RuleRecognizer using the wall clock.
func NewRuleRecognizer() *RuleRecognizer {
	return &RuleRecognizer{now: time.Now}
}

// NewRuleRecognizerAt creates a RuleRecognizer with a fixed clock.
func NewRuleRecognizerAt(now func() time.Time) *RuleRecognizer {
	return &RuleRecognizer{now: now}
}

// Recognize runs every extractor family against the message. Extraction
// always completes fully before classification consumes the result.
func (r *RuleRecognizer) Recognize(message string, uc *model.UserContext) model.Recognition {
	text := strings.TrimSpace(message)

	var categories []model.Category
	var people []model.Person
	currency := ""
	if uc != nil {
		categories = uc.Categories()
		people = uc.People()
		currency = uc.Preferences.Currency
	}

	return model.Recognition{
		Amounts:      Amounts(text, currency),
		Dates:        Dates(text, r.now()),
		Categories:   Categories(text, categories),
		People:       People(text, people),
		Descriptions: Descriptions(text),
	}
}
