package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/arthasage/arthasage/internal/model"
)

// ListBudgets returns a user's budgets with spent amounts computed over
// the current calendar month.
func (s *SQLiteStorage) ListBudgets(ctx context.Context, userID string) ([]model.Budget, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(userID, "userID"); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0)

	rows, err := s.db.QueryContext(ctx, `
		SELECT b.id, b.category, b.limit_amount,
		       COALESCE((
		           SELECT SUM(e.amount) FROM expenses e
		           WHERE e.user_id = b.user_id
		             AND e.category = b.category
		             AND e.expense_date >= ? AND e.expense_date < ?
		       ), 0) AS spent
		FROM budgets b
		WHERE b.user_id = ?
		ORDER BY b.category`,
		monthStart, monthEnd, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var budgets []model.Budget
	for rows.Next() {
		var b model.Budget
		if err := rows.Scan(&b.ID, &b.Category, &b.Limit, &b.Spent); err != nil {
			return nil, fmt.Errorf("failed to scan budget: %w", err)
		}
		budgets = append(budgets, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate budgets: %w", err)
	}
	return budgets, nil
}

// SaveBudget creates or replaces a per-category budget limit.
func (s *SQLiteStorage) SaveBudget(ctx context.Context, userID string, budget model.Budget) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(userID, "userID"); err != nil {
		return err
	}
	if err := validateString(budget.Category, "budget category"); err != nil {
		return err
	}
	if budget.Limit <= 0 {
		return fmt.Errorf("%w: budget limit must be positive, got %v", ErrInvalidInput, budget.Limit)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO budgets (id, user_id, category, limit_amount)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(user_id, category) DO UPDATE SET limit_amount = excluded.limit_amount`,
		budget.ID, userID, budget.Category, budget.Limit)
	if err != nil {
		return fmt.Errorf("failed to save budget: %w", err)
	}
	return nil
}
