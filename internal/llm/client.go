// Package llm provides clients for generative text providers. The
// assistant uses them only for analysis and conversational replies;
// entity extraction and intent classification never leave the process.
package llm

import "context"

// Client generates free-form text for an assembled prompt.
type Client interface {
	// Generate returns the provider's reply for the prompt. The call is
	// synchronous and honors context cancellation.
	Generate(ctx context.Context, prompt string) (string, error)
}

// Config holds provider configuration.
type Config struct {
	Provider          string
	APIKey            string
	Model             string
	Temperature       float64
	MaxTokens         int
	RequestsPerMinute int
}
