// Package assistant orchestrates the conversational pipeline: authorize,
// extract entities, classify the intent, resolve it against user context
// and history, then execute or render. Collaborator failures degrade to a
// friendly reply instead of an error; the caller always gets a response.
package assistant

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/arthasage/arthasage/internal/common"
	"github.com/arthasage/arthasage/internal/extract"
	"github.com/arthasage/arthasage/internal/intent"
	"github.com/arthasage/arthasage/internal/llm"
	"github.com/arthasage/arthasage/internal/model"
	"github.com/arthasage/arthasage/internal/resolve"
	"github.com/arthasage/arthasage/internal/respond"
	"github.com/arthasage/arthasage/internal/service"
)

// historyLimit bounds how many stored turns feed reference resolution.
const historyLimit = 20

// AuthorizeFunc decides whether a user may talk to the assistant.
type AuthorizeFunc func(ctx context.Context, userID string) error

// Assistant wires the pipeline stages together.
type Assistant struct {
	storage    service.Storage
	recognizer extract.Recognizer
	classifier *intent.Classifier
	resolver   *resolve.Resolver
	formatter  *respond.Formatter
	executor   *executor
	authorize  AuthorizeFunc
	now        func() time.Time
}

// Option customizes an Assistant.
type Option func(*Assistant)

// WithAuthorizer replaces the default non-empty-user check.
func WithAuthorizer(fn AuthorizeFunc) Option {
	return func(a *Assistant) { a.authorize = fn }
}

// WithClock fixes the pipeline clock for tests.
func WithClock(now func() time.Time) Option {
	return func(a *Assistant) {
		a.now = now
		a.recognizer = extract.NewRuleRecognizerAt(now)
		a.classifier = intent.NewClassifierAt(now)
		a.resolver = resolve.NewResolverAt(now)
	}
}

// New creates an Assistant over the given storage and text client. The
// client may be nil; analysis and chat then degrade to an apology.
func New(storage service.Storage, client llm.Client, opts ...Option) (*Assistant, error) {
	formatter, err := respond.NewFormatter(client)
	if err != nil {
		return nil, err
	}

	a := &Assistant{
		storage:    storage,
		recognizer: extract.NewRuleRecognizer(),
		classifier: intent.NewClassifier(),
		resolver:   resolve.NewResolver(),
		formatter:  formatter,
		authorize:  defaultAuthorizer,
		now:        time.Now,
	}
	a.executor = newExecutor(storage)

	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

func defaultAuthorizer(_ context.Context, userID string) error {
	if strings.TrimSpace(userID) == "" {
		return common.ErrUnauthorized
	}
	return nil
}

// Chat processes one user message end to end. Authorization is checked
// before any other work; failures after that point produce an unsuccessful
// but well-formed response.
func (a *Assistant) Chat(ctx context.Context, req service.ChatRequest) service.ChatResponse {
	if err := a.authorize(ctx, req.UserID); err != nil {
		common.LogError(err, "authorization failed", common.Fields{"user_id": req.UserID})
		return a.failure(common.NewUserError("You are not authorized to use this assistant.", err))
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		return a.failure(common.NewUserError("Please type a message so I can help.", common.ErrEmptyMessage))
	}

	uc, err := a.loadContext(ctx, req.UserID)
	if err != nil {
		common.LogError(err, "failed to load user context", common.Fields{"user_id": req.UserID})
		return a.failure(err)
	}

	history := req.History
	if history == nil {
		history, err = a.storage.RecentTurns(ctx, req.UserID, historyLimit)
		if err != nil {
			common.LogError(err, "failed to load history", common.Fields{"user_id": req.UserID})
			history = nil
		}
	}

	rec := a.recognizer.Recognize(message, uc)
	qi := a.classifier.Classify(message)
	pi := a.resolver.Resolve(message, qi, rec, uc, history)

	common.LogDebug("resolved intent", common.Fields{
		"type":       string(pi.Query.Type),
		"action":     string(pi.Action),
		"entity":     string(pi.Entity),
		"confidence": pi.Confidence,
	})

	resp := a.dispatch(ctx, req.UserID, pi, uc, history)
	resp.Suggestions = pi.Suggestions
	resp.IntentType = pi.Query.Type
	resp.Timestamp = a.now()
	resp.Metadata = map[string]string{
		"confidence": strconv.FormatFloat(pi.Confidence, 'f', 2, 64),
		"subtype":    pi.Query.Subtype,
	}

	a.recordTurns(ctx, req.UserID, message, resp)
	return resp
}

func (a *Assistant) dispatch(ctx context.Context, userID string, pi model.ParsedIntent, uc *model.UserContext, history []model.Turn) service.ChatResponse {
	switch pi.Query.Type {
	case model.IntentCRUD:
		return a.handleCRUD(ctx, userID, pi)
	case model.IntentDataRetrieval, model.IntentAnalysis:
		return a.handleData(ctx, userID, pi, uc, history)
	default:
		return a.handleChat(ctx, pi, history)
	}
}

func (a *Assistant) handleCRUD(ctx context.Context, userID string, pi model.ParsedIntent) service.ChatResponse {
	actions, reply, err := a.executor.execute(ctx, userID, pi)
	if err != nil {
		common.LogError(err, "crud execution failed", common.Fields{
			"action": string(pi.Action),
			"entity": string(pi.Entity),
		})
		return a.failure(err)
	}
	return service.ChatResponse{
		Success:     true,
		Response:    reply,
		ActionItems: actions,
		DataCount:   len(actions),
	}
}

func (a *Assistant) handleData(ctx context.Context, userID string, pi model.ParsedIntent, uc *model.UserContext, history []model.Turn) service.ChatResponse {
	expenses, err := a.storage.ListExpenses(ctx, userID, pi.Parameters.Filters)
	if err != nil {
		common.LogError(err, "failed to list expenses", common.Fields{"user_id": userID})
		return a.failure(err)
	}

	scoped := *uc
	scoped.Expenses = expenses

	resp, err := a.formatter.Format(ctx, pi, &scoped, history)
	if err != nil {
		common.LogError(err, "formatting failed", common.Fields{"format": string(pi.Query.ResponseFormat)})
		return a.failure(common.NewUserError(
			"I couldn't finish that analysis right now. Try a plain listing like \"show my expenses this month\".",
			common.ErrLLMUnavailable))
	}

	return service.ChatResponse{
		Success:   true,
		Response:  resp.Content,
		DataCount: resp.TotalItems,
	}
}

func (a *Assistant) handleChat(ctx context.Context, pi model.ParsedIntent, history []model.Turn) service.ChatResponse {
	resp, err := a.formatter.Format(ctx, pi, &model.UserContext{}, history)
	if err != nil {
		common.LogError(err, "chat generation failed", nil)
		return a.failure(common.ErrLLMUnavailable)
	}
	return service.ChatResponse{Success: true, Response: resp.Content}
}

// loadContext assembles the read-only user snapshot the pipeline works on.
func (a *Assistant) loadContext(ctx context.Context, userID string) (*model.UserContext, error) {
	expenses, err := a.storage.ListExpenses(ctx, userID, model.Filters{})
	if err != nil {
		return nil, err
	}
	budgets, err := a.storage.ListBudgets(ctx, userID)
	if err != nil {
		return nil, err
	}
	categories, err := a.storage.ListCategories(ctx, userID)
	if err != nil {
		return nil, err
	}
	people, err := a.storage.ListPeople(ctx, userID)
	if err != nil {
		return nil, err
	}
	templates, err := a.storage.ListTemplates(ctx, userID)
	if err != nil {
		return nil, err
	}
	prefs, err := a.storage.GetPreferences(ctx, userID)
	if err != nil {
		return nil, err
	}

	uc := &model.UserContext{
		UserID:      userID,
		Expenses:    expenses,
		Budgets:     budgets,
		Templates:   templates,
		Preferences: prefs,
	}
	for _, c := range categories {
		if c.Custom {
			uc.CustomCategories = append(uc.CustomCategories, c)
		} else {
			uc.PublicCategories = append(uc.PublicCategories, c)
		}
	}
	for _, p := range people {
		if p.Custom {
			uc.CustomPeople = append(uc.CustomPeople, p)
		} else {
			uc.PublicPeople = append(uc.PublicPeople, p)
		}
	}
	return uc, nil
}

// recordTurns persists the user message and the assistant reply. History
// write failures are logged, never surfaced.
func (a *Assistant) recordTurns(ctx context.Context, userID, message string, resp service.ChatResponse) {
	if err := a.storage.SaveTurn(ctx, userID, model.Turn{Role: model.RoleUser, Content: message}); err != nil {
		common.LogError(err, "failed to save user turn", common.Fields{"user_id": userID})
		return
	}
	turn := model.Turn{
		Role:            model.RoleAssistant,
		Content:         resp.Response,
		ExecutedActions: resp.ActionItems,
	}
	if err := a.storage.SaveTurn(ctx, userID, turn); err != nil {
		common.LogError(err, "failed to save assistant turn", common.Fields{"user_id": userID})
	}
}

func (a *Assistant) failure(err error) service.ChatResponse {
	return service.ChatResponse{
		Success:   false,
		Response:  common.UserMessage(err),
		Timestamp: a.now(),
	}
}
