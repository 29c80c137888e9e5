package respond

import (
	"fmt"
	"strings"

	"github.com/arthasage/arthasage/internal/model"
)

// renderSummary produces aggregate statistics only: count, total, average,
// distinct categories, and the top category by amount.
func renderSummary(expenses []model.Expense) string {
	if len(expenses) == 0 {
		return "No expenses to summarize yet.\n"
	}

	amounts := make([]float64, 0, len(expenses))
	byCategory := make(map[string]float64)
	for _, e := range expenses {
		amounts = append(amounts, e.Amount)
		byCategory[e.Category] += e.Amount
	}
	total := sumAmounts(amounts)

	top := ""
	topAmount := 0.0
	for name, amount := range byCategory {
		if amount > topAmount || (amount == topAmount && name < top) {
			top = name
			topAmount = amount
		}
	}

	var b strings.Builder
	b.WriteString("Spending summary:\n\n")
	fmt.Fprintf(&b, "- Expenses: %d\n", len(expenses))
	fmt.Fprintf(&b, "- Total: %s\n", FormatINR(total))
	fmt.Fprintf(&b, "- Average: %s\n", FormatINR(total/float64(len(expenses))))
	fmt.Fprintf(&b, "- Categories: %d\n", len(byCategory))
	fmt.Fprintf(&b, "- Top category: %s (%s)\n", top, FormatINR(topAmount))
	return b.String()
}
