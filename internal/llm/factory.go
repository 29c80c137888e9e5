package llm

import (
	"fmt"
	"strings"
)

// NewClient creates a text generation client for the configured provider,
// wrapped with a circuit breaker.
func NewClient(cfg Config) (Client, error) {
	var (
		client Client
		err    error
	)

	switch strings.ToLower(cfg.Provider) {
	case "gemini", "":
		client, err = newGeminiClient(cfg)
	case "mock":
		client = NewMockClient("")
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}
	if err != nil {
		return nil, err
	}

	return WithBreaker(client), nil
}
