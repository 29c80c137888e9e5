package extract

// semanticCategories maps activity keywords to well-known category names.
// The table is read-only lookup data; confidence for these matches is
// fixed at 0.7, below direct category-name matches at 0.9.
var semanticCategories = []struct {
	Category string
	Keywords []string
}{
	{
		Category: "Food & Dining",
		Keywords: []string{"lunch", "dinner", "breakfast", "food", "restaurant", "meal", "eating", "snack", "groceries"},
	},
	{
		Category: "Transportation",
		Keywords: []string{"taxi", "uber", "bus", "metro", "train", "transport", "travel", "petrol", "gas", "fuel"},
	},
	{
		Category: "Shopping",
		Keywords: []string{"shopping", "clothes", "buy", "purchase", "store", "mall"},
	},
	{
		Category: "Entertainment",
		Keywords: []string{"movie", "cinema", "game", "entertainment", "show", "concert", "fun"},
	},
	{
		Category: "Bills & Utilities",
		Keywords: []string{"rent", "electricity", "water", "bill", "utility", "internet", "phone"},
	},
	{
		Category: "Healthcare",
		Keywords: []string{"doctor", "hospital", "medicine", "health", "medical", "pharmacy", "clinic"},
	},
	{
		Category: "Education",
		Keywords: []string{"education", "course", "learning", "book", "school", "college", "study"},
	},
	{
		Category: "Travel",
		Keywords: []string{"flight", "hotel", "vacation", "trip", "holiday", "travel"},
	},
}

// relationshipGroups maps relationship keywords to person-group names.
var relationshipGroups = []struct {
	Group    string
	Keywords []string
}{
	{Group: "Family", Keywords: []string{"family", "parents", "mom", "dad", "mother", "father"}},
	{Group: "Spouse-Partner", Keywords: []string{"spouse", "wife", "husband", "partner"}},
	{Group: "Friends", Keywords: []string{"friends", "friend", "buddy"}},
	{Group: "Colleagues", Keywords: []string{"colleagues", "colleague", "coworker", "team"}},
	{Group: "Kids", Keywords: []string{"kids", "children", "son", "daughter"}},
}

// transactionNouns is the closed vocabulary of common purchase words used
// as a last explicit-description family.
var transactionNouns = []string{
	"lunch", "dinner", "breakfast", "coffee", "groceries",
	"gas", "taxi", "movie", "shopping",
}

// SemanticCategoryFor returns the category mapped to the first semantic
// keyword found in text, or empty when none matches. Matching is
// whole-word and case-insensitive.
func SemanticCategoryFor(text string) string {
	for _, group := range semanticCategories {
		for _, kw := range group.Keywords {
			if wordRegex(kw).MatchString(text) {
				return group.Category
			}
		}
	}
	return ""
}
