package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/arthasage/arthasage/internal/model"
)

// ErrInvalidInput is returned when a storage argument fails validation.
var ErrInvalidInput = errors.New("invalid input")

func validateContext(ctx context.Context) error {
	if ctx == nil {
		return fmt.Errorf("%w: context is nil", ErrInvalidInput)
	}
	return nil
}

func validateString(value, name string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s is empty", ErrInvalidInput, name)
	}
	return nil
}

func validateExpense(e model.Expense) error {
	if err := validateString(e.ID, "expense ID"); err != nil {
		return err
	}
	if e.Amount <= 0 {
		return fmt.Errorf("%w: expense amount must be positive, got %v", ErrInvalidInput, e.Amount)
	}
	if e.Date.IsZero() {
		return fmt.Errorf("%w: expense date is zero", ErrInvalidInput)
	}
	return nil
}
