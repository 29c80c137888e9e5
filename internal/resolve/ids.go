package resolve

import (
	"regexp"
	"strings"

	"github.com/arthasage/arthasage/internal/model"
)

var (
	directIDRegex = regexp.MustCompile(`(?i)(?:\bid:\s*|#)([\w-]+)`)

	// Words carrying no descriptive signal, stripped before the
	// description-similarity scan.
	resolutionStopWords = map[string]bool{
		"delete": true, "remove": true, "cancel": true, "update": true,
		"modify": true, "change": true, "edit": true, "expense": true,
		"expenses": true, "transaction": true, "budget": true,
		"category": true, "person": true, "template": true,
		"the": true, "a": true, "an": true, "my": true, "this": true,
		"that": true, "it": true, "please": true, "one": true,
	}
)

// resolveID determines which record an update/delete targets. Strategies
// apply in fixed priority order, stopping at the first success:
//
//  1. explicit "id: X" or "#X"
//  2. "last"/"recent"/"latest" -> newest expense
//  3. "first"/"oldest" -> oldest expense
//  4. description/category token match
//  5. newest expense
//
// The final fallback means a non-empty expense list always resolves to
// something; deleting on a bad guess is a known usability tradeoff, so
// callers surface what was matched rather than deleting silently.
func resolveID(message string, entity model.EntityKind, expenses []model.Expense) string {
	if m := directIDRegex.FindStringSubmatch(message); m != nil {
		return m[1]
	}

	if entity != model.EntityExpense || len(expenses) == 0 {
		return ""
	}

	lower := strings.ToLower(message)
	newest := expenses[0].ID
	oldest := expenses[len(expenses)-1].ID

	switch {
	case containsWord(lower, "last") || containsWord(lower, "recent") || containsWord(lower, "latest"):
		return newest
	case containsWord(lower, "first") || containsWord(lower, "oldest"):
		return oldest
	}

	tokens := descriptiveTokens(lower)
	if len(tokens) == 0 {
		// A bare "delete expense" short-circuits to the most recent.
		return newest
	}

	for _, e := range expenses {
		desc := strings.ToLower(e.Description)
		cat := strings.ToLower(e.Category)
		for _, tok := range tokens {
			if strings.Contains(desc, tok) || strings.Contains(cat, tok) {
				return e.ID
			}
		}
	}

	return newest
}

// descriptiveTokens strips action/entity/determiner words and returns the
// remaining tokens of three or more characters.
func descriptiveTokens(lower string) []string {
	fields := strings.FieldsFunc(lower, func(r rune) bool {
		return !('a' <= r && r <= 'z' || '0' <= r && r <= '9')
	})

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) < 3 || resolutionStopWords[f] {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

// containsWord reports whether kw occurs in msg on word boundaries.
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
