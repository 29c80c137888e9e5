// Package model defines the core domain types shared across the assistant.
package model

import "time"

// Expense represents a single recorded expense.
type Expense struct {
	Date        time.Time
	ID          string
	Category    string
	Description string
	Currency    string
	PeopleIDs   []string
	Amount      float64
}

// Budget represents a per-category spending limit and its current usage.
type Budget struct {
	ID       string
	Category string
	Limit    float64
	Spent    float64
}

// Utilization returns spent as a fraction of the budget limit.
// A zero limit reports full utilization to avoid division by zero.
func (b Budget) Utilization() float64 {
	if b.Limit <= 0 {
		return 1.0
	}
	return b.Spent / b.Limit
}

// Template is a saved expense shortcut ("my usual chai") that pre-fills
// amount, category, and description for a new expense.
type Template struct {
	ID          string
	Name        string
	Category    string
	Description string
	Amount      float64
}
