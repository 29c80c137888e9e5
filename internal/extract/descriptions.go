package extract

import (
	"regexp"
	"strings"

	"github.com/arthasage/arthasage/internal/model"
)

// Description pattern families, applied in order. All direct captures are
// tagged explicit; only the trailing "with <Name>" synthesis is inferred.
var (
	forDescRegex = regexp.MustCompile(
		`(?i)\bfor\s+([a-zA-Z][a-zA-Z\s]{0,40}?)(?:\s+(?:with|at|on|from|and|yesterday|today|tomorrow)\b|[.,!?]|$)`)
	verbDescRegex = regexp.MustCompile(
		`(?i)\b(?:bought|paid\s+for|purchased)\s+([a-zA-Z][a-zA-Z\s]{0,40}?)(?:\s+(?:for|with|at|on|from|yesterday|today|tomorrow)\b|[.,!?]|$)`)
	placeDescRegex = regexp.MustCompile(
		`(?i)\b(?:at|from|in)\s+([a-zA-Z][a-zA-Z\s]{0,40}?)(?:\s+(?:with|for|on|yesterday|today|tomorrow)\b|[.,!?]|$)`)
	withNameRegex = regexp.MustCompile(`\bwith\s+([A-Z][a-z]+)`)
)

var activityDomains = []struct {
	Label    string
	Keywords []string
}{
	{Label: "Meal", Keywords: []string{"lunch", "dinner", "breakfast", "meal", "food"}},
	{Label: "Coffee", Keywords: []string{"coffee", "chai", "tea"}},
	{Label: "Entertainment", Keywords: []string{"movie", "game", "show", "concert"}},
}

// Descriptions scans text for candidate expense descriptions. When no
// pattern family matches, a description is inferred from "with <Name>"
// plus the detected activity domain.
func Descriptions(text string) []model.DescriptionEntity {
	entities := make([]model.DescriptionEntity, 0, 1)

	for _, re := range []*regexp.Regexp{forDescRegex, verbDescRegex, placeDescRegex} {
		for _, m := range re.FindAllStringSubmatchIndex(text, -1) {
			desc := cleanDescription(text[m[2]:m[3]])
			if desc == "" {
				continue
			}
			entities = append(entities, model.DescriptionEntity{
				Text:     desc,
				Kind:     model.DescriptionExplicit,
				Position: m[2],
			})
		}
	}

	for _, noun := range transactionNouns {
		if loc := wordRegex(noun).FindStringIndex(text); loc != nil {
			entities = append(entities, model.DescriptionEntity{
				Text:     noun,
				Kind:     model.DescriptionExplicit,
				Position: loc[0],
			})
		}
	}

	if len(entities) == 0 {
		if inferred, pos, ok := inferDescription(text); ok {
			entities = append(entities, model.DescriptionEntity{
				Text:     inferred,
				Kind:     model.DescriptionInferred,
				Position: pos,
			})
		}
	}

	return entities
}

// inferDescription synthesizes a description from a "with <Name>" mention
// and the activity domain of the surrounding message.
func inferDescription(text string) (string, int, bool) {
	m := withNameRegex.FindStringSubmatchIndex(text)
	if m == nil {
		return "", 0, false
	}
	name := text[m[2]:m[3]]

	lower := strings.ToLower(text)
	label := "Expense"
	for _, domain := range activityDomains {
		for _, kw := range domain.Keywords {
			if strings.Contains(lower, kw) {
				label = domain.Label
				break
			}
		}
		if label != "Expense" {
			break
		}
	}

	return label + " with " + name, m[0], true
}

func cleanDescription(raw string) string {
	desc := strings.TrimSpace(raw)
	desc = strings.Trim(desc, ".,!?")
	// A lone determiner or connective is not a description.
	switch strings.ToLower(desc) {
	case "", "a", "an", "the", "my", "me", "it", "that", "this":
		return ""
	}
	return desc
}
