package extract

import (
	"regexp"
	"strings"

	"github.com/arthasage/arthasage/internal/model"
)

const (
	directPersonConfidence      = 0.9
	relationshipConfidence      = 0.8
	positionalPatternConfidence = 0.6
)

// Positional grammar patterns for expense attribution. Each captures a
// capitalized word as a provisional person name.
var attributionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bsplit\s+with\s+([A-Z][a-z]+)`),
	regexp.MustCompile(`\bwith\s+([A-Z][a-z]+)`),
	regexp.MustCompile(`\bfor\s+([A-Z][a-z]+)`),
	regexp.MustCompile(`\b([A-Z][a-z]+)\s+and\s+me\b`),
	regexp.MustCompile(`\bme\s+and\s+([A-Z][a-z]+)`),
}

// People scans text for person mentions: known names directly at 0.9,
// relationship keywords ("mom", "colleagues") at 0.8, and attribution
// grammar ("with Sarah", "split with Dev") as provisional candidates.
func People(text string, known []model.Person) []model.PersonEntity {
	entities := make([]model.PersonEntity, 0, 2)
	seen := make(map[string]bool)

	add := func(name string, pos int, confidence float64) {
		key := strings.ToLower(name)
		if seen[key] {
			return
		}
		seen[key] = true
		entities = append(entities, model.PersonEntity{
			Name:       name,
			Position:   pos,
			Confidence: confidence,
		})
	}

	for _, p := range known {
		if p.Name == "" {
			continue
		}
		if loc := wordRegex(p.Name).FindStringIndex(text); loc != nil {
			add(p.Name, loc[0], directPersonConfidence)
		}
	}

	for _, group := range relationshipGroups {
		for _, kw := range group.Keywords {
			if loc := wordRegex(kw).FindStringIndex(text); loc != nil {
				add(group.Group, loc[0], relationshipConfidence)
				break
			}
		}
	}

	for _, re := range attributionPatterns {
		for _, m := range re.FindAllStringSubmatchIndex(text, -1) {
			add(text[m[2]:m[3]], m[2], positionalPatternConfidence)
		}
	}

	return entities
}
