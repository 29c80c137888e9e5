// Package intent classifies a user message into a typed query intent with
// a confidence score. Three pattern families are evaluated in strict
// priority order (CRUD, then data retrieval, then analysis), short-circuiting
// on the first family whose best score clears its threshold. An imperative
// instruction always wins over a similar-looking retrieval phrase, which
// wins over a vague analytical question. Nothing matching falls through to
// a fixed-confidence conversational intent.
package intent

import (
	"strings"
	"time"

	"github.com/arthasage/arthasage/internal/common"
	"github.com/arthasage/arthasage/internal/model"
)

// Classifier turns normalized messages into QueryIntents. It is stateless
// aside from the fixed keyword tables and safe for concurrent use.
type Classifier struct {
	now func() time.Time
}

// NewClassifier creates a Classifier using the wall clock.
func NewClassifier() *Classifier {
	return &Classifier{now: time.Now}
}

// NewClassifierAt creates a Classifier with a fixed clock for tests.
func NewClassifierAt(now func() time.Time) *Classifier {
	return &Classifier{now: now}
}

// Classify evaluates the pattern families against the message.
func (c *Classifier) Classify(message string) model.QueryIntent {
	msg := strings.ToLower(strings.TrimSpace(message))
	if msg == "" {
		return fallbackIntent()
	}

	if qi, ok := c.classifyCRUD(msg); ok {
		common.LogDebug("classified message", common.Fields{"family": "crud", "confidence": qi.Confidence})
		return qi
	}
	if qi, ok := c.classifyRetrieval(msg); ok {
		common.LogDebug("classified message", common.Fields{"family": "retrieval", "confidence": qi.Confidence})
		return qi
	}
	if qi, ok := c.classifyAnalysis(msg); ok {
		common.LogDebug("classified message", common.Fields{"family": "analysis", "confidence": qi.Confidence})
		return qi
	}

	common.LogDebug("classified message", common.Fields{"family": "fallback"})
	return fallbackIntent()
}

func fallbackIntent() model.QueryIntent {
	return model.QueryIntent{
		Type:           model.IntentGeneralChat,
		Subtype:        "financial_advice",
		ResponseFormat: model.FormatConversation,
		Confidence:     fallbackConfidence,
	}
}

func (c *Classifier) classifyCRUD(msg string) (model.QueryIntent, bool) {
	best := 0.0
	var action model.Action

	families := []struct {
		action   model.Action
		keywords []string
	}{
		{model.ActionAdd, createKeywords},
		{model.ActionUpdate, updateKeywords},
		{model.ActionDelete, deleteKeywords},
	}

	for _, fam := range families {
		for _, kw := range fam.keywords {
			if !containsWord(msg, kw) {
				continue
			}
			score := patternScore(msg, kw) + crudVerbBoost + boostsFor(msg)
			score = model.ClampConfidence(score)
			if score > best {
				best = score
				action = fam.action
			}
		}
	}

	if best < crudThreshold {
		return model.QueryIntent{}, false
	}

	return model.QueryIntent{
		Type:           model.IntentCRUD,
		Subtype:        string(guessEntity(msg)),
		Action:         action,
		ResponseFormat: model.FormatConversation,
		Confidence:     best,
	}, true
}

func (c *Classifier) classifyRetrieval(msg string) (model.QueryIntent, bool) {
	best := 0.0
	for _, kw := range retrievalKeywords {
		if !containsWord(msg, kw) {
			continue
		}
		if score := model.ClampConfidence(patternScore(msg, kw) + boostsFor(msg)); score > best {
			best = score
		}
	}
	for _, kw := range rawDataKeywords {
		if !containsWord(msg, kw) {
			continue
		}
		if score := model.ClampConfidence(patternScore(msg, kw) + boostsFor(msg)); score > best {
			best = score
		}
	}
	for _, match := range filterMatches(msg) {
		if score := model.ClampConfidence(patternScore(msg, match) + boostsFor(msg)); score > best {
			best = score
		}
	}

	if best < retrievalThreshold {
		return model.QueryIntent{}, false
	}

	format := model.FormatRawData
	if anyWord(msg, summaryKeywords) && !anyWord(msg, rawDataKeywords) {
		format = model.FormatSummary
	}

	return model.QueryIntent{
		Type:           model.IntentDataRetrieval,
		Subtype:        pluralEntity(guessEntity(msg)),
		ResponseFormat: format,
		Confidence:     best,
		Filters:        c.extractFilters(msg),
	}, true
}

func (c *Classifier) classifyAnalysis(msg string) (model.QueryIntent, bool) {
	best := 0.0
	for _, kw := range analysisKeywords {
		if !containsWord(msg, kw) {
			continue
		}
		if score := model.ClampConfidence(patternScore(msg, kw) + boostsFor(msg)); score > best {
			best = score
		}
	}

	if best < analysisThreshold {
		return model.QueryIntent{}, false
	}

	subtype := "general_analysis"
	for _, s := range analysisSubtypes {
		if anyContains(msg, s.Keywords) {
			subtype = s.Subtype
			break
		}
	}

	return model.QueryIntent{
		Type:           model.IntentAnalysis,
		Subtype:        subtype,
		ResponseFormat: model.FormatAnalysis,
		Confidence:     best,
		Filters:        c.extractFilters(msg),
	}, true
}

// filterMatches returns the amount and period filter phrases present in the
// message. "expenses over 500" is a listing request even without a retrieval
// verb. A filter counts only when the message also names a record type; a
// bare "last month" in an analytical question belongs to the analysis family.
func filterMatches(msg string) []string {
	if !anyWord(msg, recordNouns) {
		return nil
	}

	var matches []string
	if m := amountBetweenRegex.FindString(msg); m != "" {
		matches = append(matches, m)
	} else {
		if m := amountOverRegex.FindString(msg); m != "" {
			matches = append(matches, m)
		}
		if m := amountUnderRegex.FindString(msg); m != "" {
			matches = append(matches, m)
		}
	}
	for _, phrase := range periodPhrases {
		if containsWord(msg, phrase) {
			matches = append(matches, phrase)
		}
	}
	for _, p := range relativePeriods {
		if containsWord(msg, p.Phrase) {
			matches = append(matches, p.Phrase)
		}
	}
	for _, name := range monthNames {
		if containsWord(msg, name) {
			matches = append(matches, name)
		}
	}
	return matches
}

// patternScore is base 0.5 plus a coverage bonus proportional to how much
// of the message the matched keyword spans.
func patternScore(msg, match string) float64 {
	return 0.5 + float64(len(match))/float64(len(msg))*0.3
}

// boostsFor sums the fixed additive boosts for high-signal keywords.
func boostsFor(msg string) float64 {
	total := 0.0
	for _, b := range confidenceBoosts {
		if containsWord(msg, b.Keyword) {
			total += b.Boost
		}
	}
	return total
}

// guessEntity picks the target record type from keyword presence,
// defaulting to expense.
func guessEntity(msg string) model.EntityKind {
	switch {
	case containsWord(msg, "budget") || containsWord(msg, "budgets"):
		return model.EntityBudget
	case containsWord(msg, "category") || containsWord(msg, "categories"):
		return model.EntityCategory
	case containsWord(msg, "person") || containsWord(msg, "people"):
		return model.EntityPerson
	case containsWord(msg, "template") || containsWord(msg, "templates"):
		return model.EntityTemplate
	default:
		return model.EntityExpense
	}
}

func pluralEntity(kind model.EntityKind) string {
	switch kind {
	case model.EntityBudget:
		return "budgets"
	case model.EntityCategory:
		return "categories"
	case model.EntityPerson:
		return "people"
	case model.EntityTemplate:
		return "templates"
	case model.EntityExpense:
		return "expenses"
	default:
		return "expenses"
	}
}

func anyWord(msg string, keywords []string) bool {
	for _, kw := range keywords {
		if containsWord(msg, kw) {
			return true
		}
	}
	return false
}

func anyContains(msg string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(msg, kw) {
			return true
		}
	}
	return false
}

// containsWord reports whether kw occurs in msg on word boundaries.
// Multi-word keywords match as contiguous phrases.
func containsWord(msg, kw string) bool {
	for start := 0; start < len(msg); {
		idx := strings.Index(msg[start:], kw)
		if idx < 0 {
			return false
		}
		idx += start
		end := idx + len(kw)
		beforeOK := idx == 0 || !isWordByte(msg[idx-1])
		afterOK := end == len(msg) || !isWordByte(msg[end])
		if beforeOK && afterOK {
			return true
		}
		start = idx + 1
	}
	return false
}

func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}
