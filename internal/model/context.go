package model

// Preferences captures per-user habits the resolver uses when the message
// leaves something unsaid.
type Preferences struct {
	Currency         string
	DateFormat       string
	LanguageStyle    string
	CommonCategories []string
	FrequentAmounts  []float64
	UsualPeople      []string
}

// UserContext is a read-only snapshot of one user's financial data,
// assembled fresh for each request. Expenses are sorted newest-first;
// nothing in the snapshot is mutated by the assistant.
type UserContext struct {
	UserID           string
	Expenses         []Expense
	Budgets          []Budget
	CustomCategories []Category
	PublicCategories []Category
	CustomPeople     []Person
	PublicPeople     []Person
	Templates        []Template
	Preferences      Preferences
}

// Categories returns the union of custom and public categories.
func (c *UserContext) Categories() []Category {
	out := make([]Category, 0, len(c.CustomCategories)+len(c.PublicCategories))
	out = append(out, c.CustomCategories...)
	out = append(out, c.PublicCategories...)
	return out
}

// People returns the union of custom and public people.
func (c *UserContext) People() []Person {
	out := make([]Person, 0, len(c.CustomPeople)+len(c.PublicPeople))
	out = append(out, c.CustomPeople...)
	out = append(out, c.PublicPeople...)
	return out
}

// MostCommonCategory returns the user's most frequent historical category,
// or empty when no preference data exists.
func (c *UserContext) MostCommonCategory() string {
	if len(c.Preferences.CommonCategories) > 0 {
		return c.Preferences.CommonCategories[0]
	}
	counts := make(map[string]int)
	best := ""
	for _, e := range c.Expenses {
		if e.Category == "" {
			continue
		}
		counts[e.Category]++
		if best == "" || counts[e.Category] > counts[best] {
			best = e.Category
		}
	}
	return best
}
