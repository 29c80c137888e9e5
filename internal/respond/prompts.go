package respond

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"

	"github.com/arthasage/arthasage/internal/model"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// historyWindow is how many trailing turns the conversation prompt carries.
const historyWindow = 4

// PromptBuilder renders the analysis and conversation prompts handed to
// the generative text service. This package's responsibility ends at
// prompt construction; the call itself belongs to the caller.
type PromptBuilder struct {
	templates map[string]*template.Template
}

// NewPromptBuilder loads the embedded prompt templates.
func NewPromptBuilder() (*PromptBuilder, error) {
	pb := &PromptBuilder{templates: make(map[string]*template.Template)}

	funcMap := template.FuncMap{
		"formatINR": FormatINR,
		"pct":       func(share float64) float64 { return share * 100 },
	}

	for _, name := range []string{"analysis_prompt", "conversation_prompt"} {
		filename := fmt.Sprintf("templates/%s.tmpl", name)
		tmpl, err := template.New(name + ".tmpl").Funcs(funcMap).ParseFS(templateFS, filename)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		pb.templates[name] = tmpl
	}

	return pb, nil
}

type analysisPromptData struct {
	Message    string
	Subtype    string
	Total      string
	Average    string
	DateFrom   string
	DateTo     string
	Count      int
	Categories []categoryShare
	Principles []Principle
}

// BuildAnalysisPrompt assembles the context string for an analysis reply:
// totals, category breakdown, and any applicable principles.
func (pb *PromptBuilder) BuildAnalysisPrompt(pi model.ParsedIntent, expenses []model.Expense) (string, error) {
	amounts := make([]float64, 0, len(expenses))
	byCategory := make(map[string]float64)
	categoryText := ""
	for _, e := range expenses {
		amounts = append(amounts, e.Amount)
		byCategory[e.Category] += e.Amount
		categoryText += " " + e.Category
	}
	total := sumAmounts(amounts)

	average := 0.0
	if len(expenses) > 0 {
		average = total / float64(len(expenses))
	}

	data := analysisPromptData{
		Message:    pi.Message,
		Subtype:    pi.Query.Subtype,
		Count:      len(expenses),
		Total:      FormatINR(total),
		Average:    FormatINR(average),
		DateFrom:   pi.Parameters.Filters.DateFrom,
		DateTo:     pi.Parameters.Filters.DateTo,
		Categories: sortedCategoryShares(byCategory, total),
		Principles: selectPrinciples(pi.Message+categoryText, 2),
	}

	var buf bytes.Buffer
	if err := pb.templates["analysis_prompt"].ExecuteTemplate(&buf, "analysis_prompt.tmpl", data); err != nil {
		return "", fmt.Errorf("failed to execute analysis prompt: %w", err)
	}
	return buf.String(), nil
}

type conversationPromptData struct {
	Message string
	History []model.Turn
}

// BuildConversationPrompt assembles the conversational prompt with the
// last few history turns.
func (pb *PromptBuilder) BuildConversationPrompt(message string, history []model.Turn) (string, error) {
	recent := history
	if len(recent) > historyWindow {
		recent = recent[len(recent)-historyWindow:]
	}

	var buf bytes.Buffer
	data := conversationPromptData{Message: message, History: recent}
	if err := pb.templates["conversation_prompt"].ExecuteTemplate(&buf, "conversation_prompt.tmpl", data); err != nil {
		return "", fmt.Errorf("failed to execute conversation prompt: %w", err)
	}
	return buf.String(), nil
}
