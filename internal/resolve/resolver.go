// Package resolve turns a raw classification into a final parsed intent by
// filling defaults from the user's context and resolving references
// ("it", "the last one") against conversation history. Resolution runs
// strictly after extraction and classification; it never mutates the
// user context.
package resolve

import (
	"strings"
	"time"

	"github.com/arthasage/arthasage/internal/common"
	"github.com/arthasage/arthasage/internal/extract"
	"github.com/arthasage/arthasage/internal/model"
)

const (
	referenceConfidenceBoost = 0.2
	referenceConfidenceCap   = 0.95
	suggestionThreshold      = 0.5

	// fallbackCategory is used when neither the semantic table nor the
	// user's history yields a category.
	fallbackCategory = "Other"
)

var referencePhrases = []string{"the last one", "recent", "it", "that", "this"}

// Resolver produces the final ParsedIntent. Stateless aside from the
// injectable clock; safe for concurrent use.
type Resolver struct {
	now func() time.Time
}

// NewResolver creates a Resolver using the wall clock.
func NewResolver() *Resolver {
	return &Resolver{now: time.Now}
}

// NewResolverAt creates a Resolver with a fixed clock for tests.
func NewResolverAt(now func() time.Time) *Resolver {
	return &Resolver{now: now}
}

// Resolve combines the classifier verdict, the extracted entities, the
// user context, and the conversation history into a ParsedIntent.
func (r *Resolver) Resolve(message string, qi model.QueryIntent, rec model.Recognition, uc *model.UserContext, history []model.Turn) model.ParsedIntent {
	pi := model.ParsedIntent{
		Action:     actionFor(qi),
		Entity:     entityFor(qi),
		Confidence: model.ClampConfidence(qi.Confidence),
		Query:      qi,
		Entities:   rec,
		Message:    message,
	}

	r.fillParameters(&pi, rec, uc)
	pi.Parameters.Filters = qi.Filters
	if qi.Filters.Limit > 0 {
		pi.Parameters.Limit = qi.Filters.Limit
	}

	if pi.Action == model.ActionAdd && pi.Entity == model.EntityExpense {
		r.applyTemplate(&pi, uc)
		r.applyExpenseDefaults(&pi, message, uc)
	}

	if pi.Action == model.ActionUpdate || pi.Action == model.ActionDelete {
		r.resolveReference(&pi, message, history)
		if pi.Parameters.ID == "" && uc != nil {
			pi.Parameters.ID = resolveID(message, pi.Entity, uc.Expenses)
		}
	}

	if pi.Confidence < suggestionThreshold {
		pi.Suggestions = suggestionsFor(pi.Entity)
	}

	return pi
}

func actionFor(qi model.QueryIntent) model.Action {
	switch qi.Type {
	case model.IntentCRUD:
		return qi.Action
	case model.IntentDataRetrieval:
		return model.ActionQuery
	case model.IntentAnalysis:
		return model.ActionAnalyze
	case model.IntentGeneralChat:
		return model.ActionHelp
	default:
		return model.ActionHelp
	}
}

func entityFor(qi model.QueryIntent) model.EntityKind {
	switch qi.Subtype {
	case "expense", "expenses":
		return model.EntityExpense
	case "budget", "budgets":
		return model.EntityBudget
	case "category", "categories":
		return model.EntityCategory
	case "person", "people":
		return model.EntityPerson
	case "template", "templates":
		return model.EntityTemplate
	default:
		return model.EntityExpense
	}
}

// fillParameters copies the strongest extracted entity of each family into
// the parameter bag.
func (r *Resolver) fillParameters(pi *model.ParsedIntent, rec model.Recognition, uc *model.UserContext) {
	if len(rec.Amounts) > 0 {
		v := rec.Amounts[0].Value
		pi.Parameters.Amount = &v
	}
	if len(rec.Dates) > 0 {
		pi.Parameters.Date = rec.Dates[0].Value
	}

	best := -1.0
	for _, cat := range rec.Categories {
		if cat.Confidence > best {
			best = cat.Confidence
			pi.Parameters.Category = cat.Name
		}
	}

	for _, d := range rec.Descriptions {
		if d.Kind == model.DescriptionExplicit {
			pi.Parameters.Description = d.Text
			break
		}
	}
	if pi.Parameters.Description == "" && len(rec.Descriptions) > 0 {
		pi.Parameters.Description = rec.Descriptions[0].Text
	}

	for _, p := range rec.People {
		pi.Parameters.People = append(pi.Parameters.People, p.Name)
	}
	if uc != nil {
		for _, known := range uc.People() {
			for _, name := range pi.Parameters.People {
				if strings.EqualFold(known.Name, name) {
					pi.Parameters.PeopleIDs = append(pi.Parameters.PeopleIDs, known.ID)
				}
			}
		}
	}
}

// applyTemplate fills missing add-expense parameters from a saved template
// named in the message ("log my usual chai").
func (r *Resolver) applyTemplate(pi *model.ParsedIntent, uc *model.UserContext) {
	if uc == nil {
		return
	}
	lower := strings.ToLower(pi.Message)
	for _, tpl := range uc.Templates {
		if tpl.Name == "" || !strings.Contains(lower, strings.ToLower(tpl.Name)) {
			continue
		}
		if pi.Parameters.Amount == nil && tpl.Amount > 0 {
			amount := tpl.Amount
			pi.Parameters.Amount = &amount
		}
		if pi.Parameters.Category == "" {
			pi.Parameters.Category = tpl.Category
		}
		if pi.Parameters.Description == "" {
			pi.Parameters.Description = tpl.Description
		}
		return
	}
}

// applyExpenseDefaults infers category and date for a new expense when the
// message left them out. Category falls through the semantic table, then
// the user's most common category, then "Other".
func (r *Resolver) applyExpenseDefaults(pi *model.ParsedIntent, message string, uc *model.UserContext) {
	if pi.Parameters.Category == "" {
		text := pi.Parameters.Description + " " + message
		pi.Parameters.Category = extract.SemanticCategoryFor(text)
	}
	if pi.Parameters.Category == "" && uc != nil {
		pi.Parameters.Category = uc.MostCommonCategory()
	}
	if pi.Parameters.Category == "" {
		pi.Parameters.Category = fallbackCategory
	}

	if pi.Parameters.Date == "" {
		pi.Parameters.Date = r.now().Format("2006-01-02")
	}
}

// resolveReference resolves "delete it" style anaphora against the most
// recently executed action in history.
func (r *Resolver) resolveReference(pi *model.ParsedIntent, message string, history []model.Turn) {
	if pi.Parameters.ID != "" {
		return
	}
	lower := strings.ToLower(message)
	if !containsReference(lower) {
		return
	}

	id := model.LastExecutedID(history)
	if id == "" {
		return
	}

	pi.Parameters.ID = id
	boosted := pi.Confidence + referenceConfidenceBoost
	if boosted > referenceConfidenceCap {
		boosted = referenceConfidenceCap
	}
	pi.Confidence = boosted
	common.LogDebug("resolved reference from history", common.Fields{"id": id})
}

func containsReference(lower string) bool {
	for _, phrase := range referencePhrases {
		if strings.Contains(phrase, " ") {
			if strings.Contains(lower, phrase) {
				return true
			}
			continue
		}
		if containsWord(lower, phrase) {
			return true
		}
	}
	return false
}

func suggestionsFor(entity model.EntityKind) []string {
	switch entity {
	case model.EntityBudget:
		return []string{
			"Try: set a budget of ₹5000 for Food & Dining",
			"Try: show me my budgets",
		}
	case model.EntityCategory, model.EntityPerson, model.EntityTemplate:
		return []string{
			"Try: list my categories",
			"Try: add ₹200 for coffee",
		}
	case model.EntityExpense:
		return []string{
			"Try: add ₹200 for coffee",
			"Try: show my expenses this month",
			"Try: how much did I spend last week",
		}
	default:
		return []string{
			"Try: add ₹200 for coffee",
			"Try: show my expenses this month",
		}
	}
}
