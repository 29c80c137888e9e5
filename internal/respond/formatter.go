// Package respond renders a resolved intent plus a data slice into the
// assistant's textual reply. Raw-data and summary formats are rendered
// locally; analysis and conversation formats build a prompt and delegate
// to the generative text client.
package respond

import (
	"context"
	"fmt"

	"github.com/arthasage/arthasage/internal/llm"
	"github.com/arthasage/arthasage/internal/model"
)

// Response is a formatted reply plus metadata for the transport layer.
type Response struct {
	Format     model.ResponseFormat
	Content    string
	Summary    string
	TotalItems int
}

// Formatter dispatches on the intent's response format.
type Formatter struct {
	prompts *PromptBuilder
	client  llm.Client
}

// NewFormatter creates a Formatter. The client may be nil, in which case
// analysis and conversation formats return an error for the caller to
// degrade on.
func NewFormatter(client llm.Client) (*Formatter, error) {
	prompts, err := NewPromptBuilder()
	if err != nil {
		return nil, err
	}
	return &Formatter{prompts: prompts, client: client}, nil
}

// Format renders the reply for a resolved intent against the fetched data
// slice. The generative call is awaited; there is no streaming and no
// retry, so a failure here surfaces as an error.
func (f *Formatter) Format(ctx context.Context, pi model.ParsedIntent, uc *model.UserContext, history []model.Turn) (Response, error) {
	switch pi.Query.ResponseFormat {
	case model.FormatRawData:
		return f.formatRawData(pi, uc), nil
	case model.FormatSummary:
		return Response{
			Format:     model.FormatSummary,
			Content:    renderSummary(uc.Expenses),
			TotalItems: len(uc.Expenses),
		}, nil
	case model.FormatAnalysis:
		return f.formatAnalysis(ctx, pi, uc)
	case model.FormatConversation:
		return f.formatConversation(ctx, pi, history)
	default:
		return f.formatConversation(ctx, pi, history)
	}
}

func (f *Formatter) formatRawData(pi model.ParsedIntent, uc *model.UserContext) Response {
	var content string
	var total int

	switch pi.Entity {
	case model.EntityBudget:
		content = renderBudgets(uc.Budgets)
		total = len(uc.Budgets)
	case model.EntityCategory:
		categories := uc.Categories()
		content = renderCategories(categories)
		total = len(categories)
	case model.EntityPerson:
		people := uc.People()
		content = renderPeople(people)
		total = len(people)
	case model.EntityTemplate:
		content = renderTemplates(uc.Templates)
		total = len(uc.Templates)
	case model.EntityExpense:
		content = renderExpenses(uc.Expenses, pi.Parameters.Filters)
		total = len(uc.Expenses)
	default:
		content = renderExpenses(uc.Expenses, pi.Parameters.Filters)
		total = len(uc.Expenses)
	}

	return Response{Format: model.FormatRawData, Content: content, TotalItems: total}
}

func (f *Formatter) formatAnalysis(ctx context.Context, pi model.ParsedIntent, uc *model.UserContext) (Response, error) {
	prompt, err := f.prompts.BuildAnalysisPrompt(pi, uc.Expenses)
	if err != nil {
		return Response{}, err
	}
	text, err := f.generate(ctx, prompt)
	if err != nil {
		return Response{}, err
	}
	return Response{
		Format:     model.FormatAnalysis,
		Content:    text,
		TotalItems: len(uc.Expenses),
	}, nil
}

func (f *Formatter) formatConversation(ctx context.Context, pi model.ParsedIntent, history []model.Turn) (Response, error) {
	prompt, err := f.prompts.BuildConversationPrompt(pi.Message, history)
	if err != nil {
		return Response{}, err
	}
	text, err := f.generate(ctx, prompt)
	if err != nil {
		return Response{}, err
	}
	return Response{Format: model.FormatConversation, Content: text}, nil
}

func (f *Formatter) generate(ctx context.Context, prompt string) (string, error) {
	if f.client == nil {
		return "", fmt.Errorf("no text generation client configured")
	}
	return f.client.Generate(ctx, prompt)
}
