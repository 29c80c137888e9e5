package respond

import "strings"

// Principle is a short piece of financial wisdom in the Arthashastra
// tradition, attached to analysis prompts when its keywords score against
// the message and data context.
type Principle struct {
	Title    string
	Text     string
	Keywords []string
}

var principles = []Principle{
	{
		Title:    "Kosha Mulo Dandah",
		Text:     "The treasury is the root of all endeavors; guard your savings before expanding your spending.",
		Keywords: []string{"save", "saving", "savings", "budget", "treasury"},
	},
	{
		Title:    "Measured Expenditure",
		Text:     "Spend on what sustains and grows; question what merely pleases for a moment.",
		Keywords: []string{"spend", "spending", "spent", "expense", "expenses"},
	},
	{
		Title:    "Balance of Flows",
		Text:     "Income and expense are two oxen pulling one cart; let neither outpace the other for long.",
		Keywords: []string{"income", "balance", "overspend", "trend", "compare"},
	},
	{
		Title:    "Small Leaks",
		Text:     "As a small leak empties a great reservoir, recurring small expenses drain wealth unnoticed.",
		Keywords: []string{"subscription", "recurring", "daily", "coffee", "snack", "small"},
	},
	{
		Title:    "Planning the Season",
		Text:     "Provision in the season of plenty for the season of need; monthly limits are the modern granary.",
		Keywords: []string{"month", "monthly", "plan", "planning", "limit", "goal"},
	},
}

// selectPrinciples scores each principle by keyword occurrence in the
// combined message and context text, returning up to limit principles
// with at least one hit, best first.
func selectPrinciples(text string, limit int) []Principle {
	lower := strings.ToLower(text)

	type scored struct {
		p     Principle
		score int
	}
	var hits []scored
	for _, p := range principles {
		score := 0
		for _, kw := range p.Keywords {
			if strings.Contains(lower, kw) {
				score++
			}
		}
		if score > 0 {
			hits = append(hits, scored{p: p, score: score})
		}
	}

	// Insertion sort by score descending; the table is tiny.
	for i := 1; i < len(hits); i++ {
		for j := i; j > 0 && hits[j].score > hits[j-1].score; j-- {
			hits[j], hits[j-1] = hits[j-1], hits[j]
		}
	}

	if limit > 0 && len(hits) > limit {
		hits = hits[:limit]
	}
	out := make([]Principle, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.p)
	}
	return out
}
