package assistant

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/arthasage/arthasage/internal/common"
	"github.com/arthasage/arthasage/internal/model"
	"github.com/arthasage/arthasage/internal/respond"
	"github.com/arthasage/arthasage/internal/service"
)

// executor applies resolved CRUD intents to storage and reports what it
// did as executed actions for the conversation history.
type executor struct {
	storage service.Storage
	newID   func() string
}

func newExecutor(storage service.Storage) *executor {
	return &executor{
		storage: storage,
		newID:   func() string { return uuid.NewString() },
	}
}

func (e *executor) execute(ctx context.Context, userID string, pi model.ParsedIntent) ([]model.ExecutedAction, string, error) {
	switch {
	case pi.Action == model.ActionAdd && pi.Entity == model.EntityExpense:
		return e.addExpense(ctx, userID, pi)
	case pi.Action == model.ActionUpdate && pi.Entity == model.EntityExpense:
		return e.updateExpense(ctx, userID, pi)
	case pi.Action == model.ActionDelete && pi.Entity == model.EntityExpense:
		return e.deleteExpense(ctx, userID, pi)
	case pi.Action == model.ActionAdd && pi.Entity == model.EntityBudget:
		return e.setBudget(ctx, userID, pi)
	default:
		return nil, "", common.NewUserError(
			fmt.Sprintf("I don't know how to %s a %s yet.", pi.Action, pi.Entity),
			common.ErrNothingToDo)
	}
}

func (e *executor) addExpense(ctx context.Context, userID string, pi model.ParsedIntent) ([]model.ExecutedAction, string, error) {
	params := pi.Parameters
	if params.Amount == nil {
		return nil, "", common.NewUserError(
			"I couldn't find an amount in that. Try something like \"add ₹150 for lunch\".",
			common.ErrNothingToDo)
	}

	date, err := time.Parse("2006-01-02", params.Date)
	if err != nil {
		return nil, "", fmt.Errorf("unparseable expense date %q: %w", params.Date, err)
	}

	expense := model.Expense{
		ID:          e.newID(),
		Amount:      *params.Amount,
		Currency:    "INR",
		Category:    params.Category,
		Description: params.Description,
		Date:        date,
		PeopleIDs:   params.PeopleIDs,
	}
	if err := e.storage.CreateExpense(ctx, userID, expense); err != nil {
		return nil, "", err
	}

	reply := fmt.Sprintf("Added %s to %s", respond.FormatINR(expense.Amount), expense.Category)
	if expense.Description != "" {
		reply += fmt.Sprintf(" for %s", expense.Description)
	}
	if len(params.People) > 0 {
		reply += fmt.Sprintf(" with %s", joinNames(params.People))
	}
	reply += fmt.Sprintf(" on %s.", expense.Date.Format("2006-01-02"))

	actions := []model.ExecutedAction{{
		Action: string(model.ActionAdd),
		Entity: string(model.EntityExpense),
		ID:     expense.ID,
	}}
	return actions, reply, nil
}

func (e *executor) updateExpense(ctx context.Context, userID string, pi model.ParsedIntent) ([]model.ExecutedAction, string, error) {
	params := pi.Parameters
	if params.ID == "" {
		return nil, "I couldn't tell which expense to update. Try \"update expense #<id>\" or describe it.", nil
	}

	expense, err := e.storage.GetExpense(ctx, userID, params.ID)
	if err != nil {
		return nil, "", err
	}

	if params.Amount != nil {
		expense.Amount = *params.Amount
	}
	if params.Category != "" {
		expense.Category = params.Category
	}
	if params.Description != "" {
		expense.Description = params.Description
	}
	if params.Date != "" {
		date, parseErr := time.Parse("2006-01-02", params.Date)
		if parseErr != nil {
			return nil, "", fmt.Errorf("unparseable expense date %q: %w", params.Date, parseErr)
		}
		expense.Date = date
	}
	if len(params.PeopleIDs) > 0 {
		expense.PeopleIDs = params.PeopleIDs
	}

	if err := e.storage.UpdateExpense(ctx, userID, *expense); err != nil {
		return nil, "", err
	}

	reply := fmt.Sprintf("Updated the expense: %s %s on %s.",
		respond.FormatINR(expense.Amount), expense.Category, expense.Date.Format("2006-01-02"))
	actions := []model.ExecutedAction{{
		Action: string(model.ActionUpdate),
		Entity: string(model.EntityExpense),
		ID:     expense.ID,
	}}
	return actions, reply, nil
}

// deleteExpense names the deleted expense in the reply so the user can
// catch a wrong resolution immediately.
func (e *executor) deleteExpense(ctx context.Context, userID string, pi model.ParsedIntent) ([]model.ExecutedAction, string, error) {
	if pi.Parameters.ID == "" {
		return nil, "You don't have any expenses to delete yet.", nil
	}

	expense, err := e.storage.GetExpense(ctx, userID, pi.Parameters.ID)
	if err != nil {
		return nil, "", err
	}
	if err := e.storage.DeleteExpense(ctx, userID, expense.ID); err != nil {
		return nil, "", err
	}

	reply := fmt.Sprintf("Deleted %s %s", respond.FormatINR(expense.Amount), expense.Category)
	if expense.Description != "" {
		reply += fmt.Sprintf(" (%s)", expense.Description)
	}
	reply += fmt.Sprintf(" from %s.", expense.Date.Format("2006-01-02"))

	actions := []model.ExecutedAction{{
		Action: string(model.ActionDelete),
		Entity: string(model.EntityExpense),
		ID:     expense.ID,
	}}
	return actions, reply, nil
}

func (e *executor) setBudget(ctx context.Context, userID string, pi model.ParsedIntent) ([]model.ExecutedAction, string, error) {
	params := pi.Parameters
	if params.Amount == nil || params.Category == "" {
		return nil, "", common.NewUserError(
			"A budget needs an amount and a category, like \"set a budget of ₹5000 for Food & Dining\".",
			common.ErrNothingToDo)
	}

	budget := model.Budget{
		ID:       e.newID(),
		Category: params.Category,
		Limit:    *params.Amount,
	}
	if err := e.storage.SaveBudget(ctx, userID, budget); err != nil {
		return nil, "", err
	}

	reply := fmt.Sprintf("Set a monthly budget of %s for %s.",
		respond.FormatINR(budget.Limit), budget.Category)
	actions := []model.ExecutedAction{{
		Action: string(model.ActionAdd),
		Entity: string(model.EntityBudget),
		ID:     budget.ID,
	}}
	return actions, reply, nil
}

func joinNames(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	default:
		out := names[0]
		for _, n := range names[1 : len(names)-1] {
			out += ", " + n
		}
		return out + " and " + names[len(names)-1]
	}
}
