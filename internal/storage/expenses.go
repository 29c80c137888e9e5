package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/arthasage/arthasage/internal/common"
	"github.com/arthasage/arthasage/internal/model"
)

// CreateExpense inserts a new expense row.
func (s *SQLiteStorage) CreateExpense(ctx context.Context, userID string, expense model.Expense) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(userID, "userID"); err != nil {
		return err
	}
	if err := validateExpense(expense); err != nil {
		return err
	}

	peopleJSON, err := marshalStrings(expense.PeopleIDs)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO expenses (id, user_id, amount, currency, category, description, expense_date, people_ids)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		expense.ID, userID, expense.Amount, orDefault(expense.Currency, "INR"),
		orDefault(expense.Category, "Other"), expense.Description,
		expense.Date.UTC(), peopleJSON)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}
	return nil
}

// UpdateExpense overwrites an existing expense row.
func (s *SQLiteStorage) UpdateExpense(ctx context.Context, userID string, expense model.Expense) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(userID, "userID"); err != nil {
		return err
	}
	if err := validateExpense(expense); err != nil {
		return err
	}

	peopleJSON, err := marshalStrings(expense.PeopleIDs)
	if err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE expenses
		SET amount = ?, currency = ?, category = ?, description = ?, expense_date = ?, people_ids = ?,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND user_id = ?`,
		expense.Amount, orDefault(expense.Currency, "INR"),
		orDefault(expense.Category, "Other"), expense.Description,
		expense.Date.UTC(), peopleJSON, expense.ID, userID)
	if err != nil {
		return fmt.Errorf("failed to update expense: %w", err)
	}
	return requireRowAffected(result, expense.ID)
}

// DeleteExpense removes an expense row.
func (s *SQLiteStorage) DeleteExpense(ctx context.Context, userID, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx,
		`DELETE FROM expenses WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	return requireRowAffected(result, id)
}

// GetExpense fetches a single expense by ID.
func (s *SQLiteStorage) GetExpense(ctx context.Context, userID, id string) (*model.Expense, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT id, amount, currency, category, description, expense_date, people_ids
		FROM expenses WHERE id = ? AND user_id = ?`, id, userID)

	expense, err := scanExpense(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("expense %s: %w", id, common.ErrNotFound)
		}
		return nil, err
	}
	return &expense, nil
}

// ListExpenses returns a user's expenses newest-first. Date, category,
// amount, and limit filters apply in SQL; the people filter is matched
// against the stored people-ID list in Go.
func (s *SQLiteStorage) ListExpenses(ctx context.Context, userID string, filters model.Filters) ([]model.Expense, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(userID, "userID"); err != nil {
		return nil, err
	}

	query := strings.Builder{}
	query.WriteString(`
		SELECT id, amount, currency, category, description, expense_date, people_ids
		FROM expenses WHERE user_id = ?`)
	args := []any{userID}

	if filters.DateFrom != "" {
		query.WriteString(" AND expense_date >= ?")
		args = append(args, filters.DateFrom)
	}
	if filters.DateTo != "" {
		// DateTo is inclusive; rows carry midnight timestamps so compare
		// against the following day.
		query.WriteString(" AND expense_date < datetime(?, '+1 day')")
		args = append(args, filters.DateTo)
	}
	if filters.Category != "" {
		query.WriteString(" AND category = ?")
		args = append(args, filters.Category)
	}
	if filters.AmountMin != nil {
		query.WriteString(" AND amount >= ?")
		args = append(args, *filters.AmountMin)
	}
	if filters.AmountMax != nil {
		query.WriteString(" AND amount <= ?")
		args = append(args, *filters.AmountMax)
	}

	query.WriteString(" ORDER BY expense_date DESC, created_at DESC")
	if filters.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filters.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var expenses []model.Expense
	for rows.Next() {
		expense, scanErr := scanExpense(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		if len(filters.People) > 0 && !hasAnyPerson(expense.PeopleIDs, filters.People) {
			continue
		}
		expenses = append(expenses, expense)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}
	return expenses, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanExpense(row rowScanner) (model.Expense, error) {
	var (
		expense     model.Expense
		description sql.NullString
		peopleJSON  sql.NullString
		date        time.Time
	)
	if err := row.Scan(&expense.ID, &expense.Amount, &expense.Currency,
		&expense.Category, &description, &date, &peopleJSON); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Expense{}, err
		}
		return model.Expense{}, fmt.Errorf("failed to scan expense: %w", err)
	}

	expense.Description = description.String
	expense.Date = date
	if peopleJSON.Valid && peopleJSON.String != "" {
		if err := json.Unmarshal([]byte(peopleJSON.String), &expense.PeopleIDs); err != nil {
			return model.Expense{}, fmt.Errorf("failed to decode people IDs: %w", err)
		}
	}
	return expense, nil
}

func marshalStrings(values []string) (string, error) {
	if len(values) == 0 {
		return "", nil
	}
	data, err := json.Marshal(values)
	if err != nil {
		return "", fmt.Errorf("failed to encode string list: %w", err)
	}
	return string(data), nil
}

func hasAnyPerson(have, want []string) bool {
	for _, w := range want {
		for _, h := range have {
			if strings.EqualFold(h, w) {
				return true
			}
		}
	}
	return false
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func requireRowAffected(result sql.Result, id string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("expense %s: %w", id, common.ErrNotFound)
	}
	return nil
}
