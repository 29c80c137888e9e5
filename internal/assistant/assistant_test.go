package assistant

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthasage/arthasage/internal/llm"
	"github.com/arthasage/arthasage/internal/model"
	"github.com/arthasage/arthasage/internal/service"
)

// memStorage is an in-memory service.Storage for pipeline tests.
type memStorage struct {
	expenses  map[string]model.Expense
	budgets   map[string]model.Budget
	people    []model.Person
	templates []model.Template
	prefs     model.Preferences
	turns     []model.Turn
	failList  error
}

func newMemStorage() *memStorage {
	return &memStorage{
		expenses: make(map[string]model.Expense),
		budgets:  make(map[string]model.Budget),
		prefs:    model.Preferences{Currency: "INR"},
	}
}

func (m *memStorage) CreateExpense(_ context.Context, _ string, e model.Expense) error {
	m.expenses[e.ID] = e
	return nil
}

func (m *memStorage) UpdateExpense(_ context.Context, _ string, e model.Expense) error {
	m.expenses[e.ID] = e
	return nil
}

func (m *memStorage) DeleteExpense(_ context.Context, _, id string) error {
	delete(m.expenses, id)
	return nil
}

func (m *memStorage) GetExpense(_ context.Context, _, id string) (*model.Expense, error) {
	e, ok := m.expenses[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return &e, nil
}

func (m *memStorage) ListExpenses(_ context.Context, _ string, _ model.Filters) ([]model.Expense, error) {
	if m.failList != nil {
		return nil, m.failList
	}
	out := make([]model.Expense, 0, len(m.expenses))
	for _, e := range m.expenses {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (m *memStorage) ListBudgets(_ context.Context, _ string) ([]model.Budget, error) {
	out := make([]model.Budget, 0, len(m.budgets))
	for _, b := range m.budgets {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out, nil
}

func (m *memStorage) SaveBudget(_ context.Context, _ string, b model.Budget) error {
	m.budgets[b.Category] = b
	return nil
}

func (m *memStorage) ListCategories(_ context.Context, _ string) ([]model.Category, error) {
	return []model.Category{
		{ID: "cat-food", Name: "Food & Dining"},
		{ID: "cat-transport", Name: "Transportation"},
		{ID: "cat-entertainment", Name: "Entertainment"},
		{ID: "cat-other", Name: "Other"},
	}, nil
}

func (m *memStorage) CreateCategory(_ context.Context, _ string, _ model.Category) error { return nil }

func (m *memStorage) ListPeople(_ context.Context, _ string) ([]model.Person, error) {
	return m.people, nil
}

func (m *memStorage) CreatePerson(_ context.Context, _ string, p model.Person) error {
	m.people = append(m.people, p)
	return nil
}

func (m *memStorage) ListTemplates(_ context.Context, _ string) ([]model.Template, error) {
	return m.templates, nil
}

func (m *memStorage) SaveTemplate(_ context.Context, _ string, t model.Template) error {
	m.templates = append(m.templates, t)
	return nil
}

func (m *memStorage) GetPreferences(_ context.Context, _ string) (model.Preferences, error) {
	return m.prefs, nil
}

func (m *memStorage) SavePreferences(_ context.Context, _ string, p model.Preferences) error {
	m.prefs = p
	return nil
}

func (m *memStorage) SaveTurn(_ context.Context, _ string, turn model.Turn) error {
	m.turns = append(m.turns, turn)
	return nil
}

func (m *memStorage) RecentTurns(_ context.Context, _ string, _ int) ([]model.Turn, error) {
	return m.turns, nil
}

func (m *memStorage) Migrate(_ context.Context) error { return nil }
func (m *memStorage) Close() error                    { return nil }

var _ service.Storage = (*memStorage)(nil)

func fixedClock() time.Time {
	return time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
}

func newTestAssistant(t *testing.T, store *memStorage, client llm.Client) *Assistant {
	t.Helper()
	a, err := New(store, client, WithClock(fixedClock))
	require.NoError(t, err)
	return a
}

func TestChatAddExpense(t *testing.T) {
	store := newMemStorage()
	store.people = []model.Person{{ID: "p-sarah", Name: "Sarah", Custom: true}}
	a := newTestAssistant(t, store, llm.NewMockClient(""))

	resp := a.Chat(context.Background(), service.ChatRequest{
		UserID:  "user1",
		Message: "Add ₹150 for lunch with Sarah",
	})

	require.True(t, resp.Success)
	assert.Equal(t, model.IntentCRUD, resp.IntentType)
	assert.Contains(t, resp.Response, "₹150.00")
	assert.Contains(t, resp.Response, "Food & Dining")
	assert.Contains(t, resp.Response, "Sarah")
	require.Len(t, resp.ActionItems, 1)
	assert.Equal(t, "add", resp.ActionItems[0].Action)

	created := store.expenses[resp.ActionItems[0].ID]
	assert.Equal(t, 150.0, created.Amount)
	assert.Equal(t, "Food & Dining", created.Category)
	assert.Equal(t, "lunch", created.Description)
	assert.Equal(t, []string{"p-sarah"}, created.PeopleIDs)
	assert.Equal(t, "2025-06-15", created.Date.Format("2006-01-02"))
}

func TestChatShowBudgets(t *testing.T) {
	store := newMemStorage()
	store.budgets["Food & Dining"] = model.Budget{ID: "b1", Category: "Food & Dining", Limit: 5000, Spent: 1000}
	a := newTestAssistant(t, store, llm.NewMockClient(""))

	resp := a.Chat(context.Background(), service.ChatRequest{
		UserID:  "user1",
		Message: "show me my budgets",
	})

	require.True(t, resp.Success)
	assert.Equal(t, model.IntentDataRetrieval, resp.IntentType)
	assert.Equal(t, 1, resp.DataCount)
	assert.Contains(t, resp.Response, "Food & Dining")
	assert.Contains(t, resp.Response, "on track")
}

func TestChatSpendingAnalysis(t *testing.T) {
	store := newMemStorage()
	store.expenses["e1"] = model.Expense{
		ID: "e1", Amount: 300, Category: "Food & Dining",
		Date: time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
	}
	mock := llm.NewMockClient("Most of it went to food.")
	a := newTestAssistant(t, store, mock)

	resp := a.Chat(context.Background(), service.ChatRequest{
		UserID:  "user1",
		Message: "How much did I spend this month?",
	})

	require.True(t, resp.Success)
	assert.Equal(t, model.IntentAnalysis, resp.IntentType)
	assert.Equal(t, "Most of it went to food.", resp.Response)

	prompts := mock.Prompts()
	require.Len(t, prompts, 1)
	assert.Contains(t, prompts[0], "₹300.00")
}

func TestChatDeleteWithNothingToDelete(t *testing.T) {
	store := newMemStorage()
	a := newTestAssistant(t, store, llm.NewMockClient(""))

	resp := a.Chat(context.Background(), service.ChatRequest{
		UserID:  "user1",
		Message: "delete the expense",
	})

	require.True(t, resp.Success)
	assert.Contains(t, resp.Response, "don't have any expenses to delete")
	assert.Empty(t, resp.ActionItems)
}

func TestChatDeleteResolvesReference(t *testing.T) {
	store := newMemStorage()
	store.expenses["e1"] = model.Expense{
		ID: "e1", Amount: 100, Category: "Transportation", Description: "metro",
		Date: time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC),
	}
	a := newTestAssistant(t, store, llm.NewMockClient(""))

	history := []model.Turn{
		{Role: model.RoleUser, Content: "add 100 for metro"},
		{Role: model.RoleAssistant, Content: "Added it.", ExecutedActions: []model.ExecutedAction{
			{Action: "add", Entity: "expense", ID: "e1"},
		}},
	}
	resp := a.Chat(context.Background(), service.ChatRequest{
		UserID:  "user1",
		Message: "delete it",
		History: history,
	})

	require.True(t, resp.Success)
	assert.Contains(t, resp.Response, "metro")
	require.Len(t, resp.ActionItems, 1)
	assert.Equal(t, "e1", resp.ActionItems[0].ID)
	assert.NotContains(t, store.expenses, "e1")
}

func TestChatUnauthorized(t *testing.T) {
	a := newTestAssistant(t, newMemStorage(), llm.NewMockClient(""))

	resp := a.Chat(context.Background(), service.ChatRequest{UserID: "", Message: "hello"})
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Response, "not authorized")
}

func TestChatEmptyMessage(t *testing.T) {
	a := newTestAssistant(t, newMemStorage(), llm.NewMockClient(""))

	resp := a.Chat(context.Background(), service.ChatRequest{UserID: "user1", Message: "   "})
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Response, "type a message")
}

func TestChatGeneralFallback(t *testing.T) {
	mock := llm.NewMockClient("Happy to help with your money questions!")
	a := newTestAssistant(t, newMemStorage(), mock)

	resp := a.Chat(context.Background(), service.ChatRequest{UserID: "user1", Message: "hello there"})
	require.True(t, resp.Success)
	assert.Equal(t, model.IntentGeneralChat, resp.IntentType)
	assert.Equal(t, "Happy to help with your money questions!", resp.Response)
}

func TestChatDegradesWhenGenerationFails(t *testing.T) {
	store := newMemStorage()
	mock := llm.NewFailingMockClient(errors.New("provider down"))
	a := newTestAssistant(t, store, mock)

	resp := a.Chat(context.Background(), service.ChatRequest{
		UserID:  "user1",
		Message: "How much did I spend this month?",
	})

	assert.False(t, resp.Success)
	assert.Contains(t, resp.Response, "couldn't finish that analysis")
}

func TestChatStorageFailure(t *testing.T) {
	store := newMemStorage()
	store.failList = errors.New("disk gone")
	a := newTestAssistant(t, store, llm.NewMockClient(""))

	resp := a.Chat(context.Background(), service.ChatRequest{UserID: "user1", Message: "show my expenses"})
	assert.False(t, resp.Success)
	// Internal detail never leaks to the user.
	assert.NotContains(t, resp.Response, "disk gone")
}

func TestChatRecordsTurns(t *testing.T) {
	store := newMemStorage()
	a := newTestAssistant(t, store, llm.NewMockClient(""))

	a.Chat(context.Background(), service.ChatRequest{UserID: "user1", Message: "add ₹50 for coffee"})

	require.Len(t, store.turns, 2)
	assert.Equal(t, model.RoleUser, store.turns[0].Role)
	assert.Equal(t, model.RoleAssistant, store.turns[1].Role)
	assert.NotEmpty(t, store.turns[1].ExecutedActions)
}

func TestChatSetBudget(t *testing.T) {
	store := newMemStorage()
	a := newTestAssistant(t, store, llm.NewMockClient(""))

	resp := a.Chat(context.Background(), service.ChatRequest{
		UserID:  "user1",
		Message: "add a budget of ₹5000 for food",
	})

	require.True(t, resp.Success)
	if assert.Len(t, resp.ActionItems, 1) {
		assert.Equal(t, "budget", resp.ActionItems[0].Entity)
	}
	budget, ok := store.budgets["Food & Dining"]
	require.True(t, ok)
	assert.Equal(t, 5000.0, budget.Limit)
}

func TestJoinNames(t *testing.T) {
	assert.Equal(t, "", joinNames(nil))
	assert.Equal(t, "Sarah", joinNames([]string{"Sarah"}))
	assert.Equal(t, "Sarah and Dev", joinNames([]string{"Sarah", "Dev"}))
	assert.Equal(t, "Sarah, Dev and Mom", joinNames([]string{"Sarah", "Dev", "Mom"}))
}

func TestChatReferenceWithoutHistoryFallsToChain(t *testing.T) {
	store := newMemStorage()
	store.expenses["e1"] = model.Expense{
		ID: "e1", Amount: 80, Category: "Food & Dining", Description: "samosa",
		Date: time.Date(2025, 6, 13, 0, 0, 0, 0, time.UTC),
	}
	store.expenses["e2"] = model.Expense{
		ID: "e2", Amount: 120, Category: "Food & Dining", Description: "thali",
		Date: time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC),
	}
	a := newTestAssistant(t, store, llm.NewMockClient(""))

	resp := a.Chat(context.Background(), service.ChatRequest{
		UserID:  "user1",
		Message: "delete the last expense",
	})

	require.True(t, resp.Success)
	// "last" resolves to the newest expense.
	require.Len(t, resp.ActionItems, 1)
	assert.Equal(t, "e2", resp.ActionItems[0].ID)
	assert.True(t, strings.Contains(resp.Response, "thali"))
}
