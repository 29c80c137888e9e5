// Package service defines the interfaces and request/response types that
// connect the assistant pipeline to its storage and transport layers.
package service

import (
	"context"
	"time"

	"github.com/arthasage/arthasage/internal/model"
)

// Storage is the persistence surface the assistant depends on. Listing
// methods return data scoped to one user; expenses come back newest-first.
type Storage interface {
	// Expenses.
	CreateExpense(ctx context.Context, userID string, expense model.Expense) error
	UpdateExpense(ctx context.Context, userID string, expense model.Expense) error
	DeleteExpense(ctx context.Context, userID, id string) error
	GetExpense(ctx context.Context, userID, id string) (*model.Expense, error)
	ListExpenses(ctx context.Context, userID string, filters model.Filters) ([]model.Expense, error)

	// Supporting reference data.
	ListBudgets(ctx context.Context, userID string) ([]model.Budget, error)
	SaveBudget(ctx context.Context, userID string, budget model.Budget) error
	ListCategories(ctx context.Context, userID string) ([]model.Category, error)
	CreateCategory(ctx context.Context, userID string, category model.Category) error
	ListPeople(ctx context.Context, userID string) ([]model.Person, error)
	CreatePerson(ctx context.Context, userID string, person model.Person) error
	ListTemplates(ctx context.Context, userID string) ([]model.Template, error)
	SaveTemplate(ctx context.Context, userID string, template model.Template) error
	GetPreferences(ctx context.Context, userID string) (model.Preferences, error)
	SavePreferences(ctx context.Context, userID string, prefs model.Preferences) error

	// Conversation history.
	SaveTurn(ctx context.Context, userID string, turn model.Turn) error
	RecentTurns(ctx context.Context, userID string, limit int) ([]model.Turn, error)

	// Lifecycle.
	Migrate(ctx context.Context) error
	Close() error
}

// ChatRequest is one inbound user message.
type ChatRequest struct {
	UserID  string
	Message string
	History []model.Turn
}

// ChatResponse is the assistant's reply envelope. Metadata carries
// diagnostic detail (confidence, subtype) for logging and transports.
type ChatResponse struct {
	Timestamp   time.Time
	Response    string
	IntentType  model.IntentType
	ActionItems []model.ExecutedAction
	Suggestions []string
	Metadata    map[string]string
	DataCount   int
	Success     bool
}
