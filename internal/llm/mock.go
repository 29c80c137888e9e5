package llm

import (
	"context"
	"sync"
)

// MockClient is a test double that records prompts and returns canned
// replies. It is also selectable as the "mock" provider for offline runs.
type MockClient struct {
	mu           sync.Mutex
	reply        string
	err          error
	prompts      []string
	GenerateFunc func(ctx context.Context, prompt string) (string, error)
}

// NewMockClient returns a mock that always replies with reply.
func NewMockClient(reply string) *MockClient {
	if reply == "" {
		reply = "This is a placeholder reply; no text provider is configured."
	}
	return &MockClient{reply: reply}
}

// NewFailingMockClient returns a mock whose every call fails with err.
func NewFailingMockClient(err error) *MockClient {
	return &MockClient{err: err}
}

// Generate records the prompt and returns the canned reply or error.
func (m *MockClient) Generate(ctx context.Context, prompt string) (string, error) {
	m.mu.Lock()
	m.prompts = append(m.prompts, prompt)
	m.mu.Unlock()

	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, prompt)
	}
	if m.err != nil {
		return "", m.err
	}
	return m.reply, nil
}

// Prompts returns a copy of every prompt the mock has seen.
func (m *MockClient) Prompts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.prompts))
	copy(out, m.prompts)
	return out
}
