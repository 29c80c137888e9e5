package extract

import (
	"github.com/arthasage/arthasage/internal/model"
)

const (
	directCategoryConfidence   = 0.9
	semanticCategoryConfidence = 0.7

	// Minimum distance between a semantic hit and an existing direct hit
	// before the semantic hit is kept. Avoids low-confidence noise right
	// beside a high-confidence match.
	semanticProximityLimit = 20
)

// Categories scans text for category mentions. Known category names match
// directly at 0.9; semantic activity keywords contribute 0.7 matches when
// they are not adjacent to a direct match.
func Categories(text string, known []model.Category) []model.CategoryEntity {
	entities := make([]model.CategoryEntity, 0, 2)

	for _, cat := range known {
		if cat.Name == "" {
			continue
		}
		for _, loc := range wordRegex(cat.Name).FindAllStringIndex(text, -1) {
			entities = append(entities, model.CategoryEntity{
				Name:       cat.Name,
				Position:   loc[0],
				Confidence: directCategoryConfidence,
			})
		}
	}

	directCount := len(entities)

	for _, group := range semanticCategories {
		for _, kw := range group.Keywords {
			for _, loc := range wordRegex(kw).FindAllStringIndex(text, -1) {
				if nearDirectMatch(entities[:directCount], loc[0]) {
					continue
				}
				entities = append(entities, model.CategoryEntity{
					Name:       group.Category,
					Position:   loc[0],
					Confidence: semanticCategoryConfidence,
				})
			}
		}
	}

	return entities
}

func nearDirectMatch(direct []model.CategoryEntity, pos int) bool {
	for _, e := range direct {
		d := pos - e.Position
		if d < 0 {
			d = -d
		}
		if d <= semanticProximityLimit {
			return true
		}
	}
	return false
}
