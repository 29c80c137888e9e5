package respond

import (
	"fmt"
	"sort"
	"strings"

	"github.com/arthasage/arthasage/internal/model"
)

// Budget status tiers.
const (
	budgetOverThreshold       = 1.0
	budgetNearlyFullThreshold = 0.8
)

// renderExpenses produces the itemized expense listing: a header noting
// the applied filters, per-item lines, running total and average, and a
// category percentage breakdown sorted descending.
func renderExpenses(expenses []model.Expense, filters model.Filters) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Here are your expenses (%d items)", len(expenses))
	if desc := describeFilters(filters); desc != "" {
		fmt.Fprintf(&b, " — %s", desc)
	}
	b.WriteString(":\n\n")

	if len(expenses) == 0 {
		b.WriteString("No expenses matched.\n")
		return b.String()
	}

	amounts := make([]float64, 0, len(expenses))
	byCategory := make(map[string]float64)
	for i, e := range expenses {
		fmt.Fprintf(&b, "%d. %s  %s  %s", i+1, e.Date.Format("2006-01-02"), FormatINR(e.Amount), e.Category)
		if e.Description != "" {
			fmt.Fprintf(&b, " — %s", e.Description)
		}
		b.WriteString("\n")
		amounts = append(amounts, e.Amount)
		byCategory[e.Category] += e.Amount
	}

	total := sumAmounts(amounts)
	fmt.Fprintf(&b, "\nTotal: %s  ·  Average: %s\n", FormatINR(total), FormatINR(total/float64(len(expenses))))

	b.WriteString("\nBy category:\n")
	for _, cs := range sortedCategoryShares(byCategory, total) {
		fmt.Fprintf(&b, "- %s: %s (%.1f%%)\n", cs.Name, FormatINR(cs.Amount), cs.Share*100)
	}

	return b.String()
}

type categoryShare struct {
	Name   string
	Amount float64
	Share  float64
}

func sortedCategoryShares(byCategory map[string]float64, total float64) []categoryShare {
	shares := make([]categoryShare, 0, len(byCategory))
	for name, amount := range byCategory {
		share := 0.0
		if total > 0 {
			share = amount / total
		}
		shares = append(shares, categoryShare{Name: name, Amount: amount, Share: share})
	}
	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Amount != shares[j].Amount {
			return shares[i].Amount > shares[j].Amount
		}
		return shares[i].Name < shares[j].Name
	})
	return shares
}

func describeFilters(f model.Filters) string {
	var parts []string
	if f.DateFrom != "" || f.DateTo != "" {
		parts = append(parts, fmt.Sprintf("from %s to %s", orAny(f.DateFrom), orAny(f.DateTo)))
	}
	if f.Category != "" {
		parts = append(parts, "category "+f.Category)
	}
	if f.AmountMin != nil {
		parts = append(parts, "over "+FormatINR(*f.AmountMin))
	}
	if f.AmountMax != nil {
		parts = append(parts, "under "+FormatINR(*f.AmountMax))
	}
	if f.Limit > 0 {
		parts = append(parts, fmt.Sprintf("limit %d", f.Limit))
	}
	return strings.Join(parts, ", ")
}

func orAny(s string) string {
	if s == "" {
		return "any"
	}
	return s
}

// renderBudgets lists per-category budget utilization with a three-tier
// status: over, nearly full, on track.
func renderBudgets(budgets []model.Budget) string {
	if len(budgets) == 0 {
		return "You have no budgets set up yet. Try: set a budget of ₹5000 for Food & Dining.\n"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Here are your budgets (%d):\n\n", len(budgets))
	for i, budget := range budgets {
		util := budget.Utilization()
		status := "on track"
		switch {
		case util >= budgetOverThreshold:
			status = "over budget"
		case util >= budgetNearlyFullThreshold:
			status = "nearly full"
		}
		fmt.Fprintf(&b, "%d. %s: %s of %s (%.0f%%) — %s\n",
			i+1, budget.Category, FormatINR(budget.Spent), FormatINR(budget.Limit), util*100, status)
	}
	return b.String()
}

func renderCategories(categories []model.Category) string {
	if len(categories) == 0 {
		return "No categories found.\n"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Your categories (%d):\n\n", len(categories))
	for i, c := range categories {
		label := c.Name
		if c.Custom {
			label += " (custom)"
		}
		fmt.Fprintf(&b, "%d. %s\n", i+1, label)
	}
	return b.String()
}

func renderPeople(people []model.Person) string {
	if len(people) == 0 {
		return "No people found.\n"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "People on your expenses (%d):\n\n", len(people))
	for i, p := range people {
		label := p.Name
		if p.Relationship != "" {
			label += " — " + p.Relationship
		}
		fmt.Fprintf(&b, "%d. %s\n", i+1, label)
	}
	return b.String()
}

func renderTemplates(templates []model.Template) string {
	if len(templates) == 0 {
		return "No templates saved yet.\n"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Your templates (%d):\n\n", len(templates))
	for i, t := range templates {
		fmt.Fprintf(&b, "%d. %s: %s %s — %s\n", i+1, t.Name, FormatINR(t.Amount), t.Category, t.Description)
	}
	return b.String()
}
