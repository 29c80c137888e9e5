package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"
)

// ErrCircuitOpen is returned when the breaker rejects a request because
// the provider has been failing.
var ErrCircuitOpen = errors.New("text generation circuit is open")

// breakerClient wraps a Client with a circuit breaker so a failing
// provider degrades the assistant to local rendering instead of stalling
// every chat turn on timeouts.
type breakerClient struct {
	inner   Client
	breaker *gobreaker.CircuitBreaker
}

// WithBreaker wraps client with a circuit breaker: three consecutive
// failures open the circuit, which stays open for 30 seconds before
// allowing probe requests.
func WithBreaker(client Client) Client {
	settings := gobreaker.Settings{
		Name:        "llm",
		MaxRequests: 2,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			slog.Warn("llm circuit state changed",
				"breaker", name,
				"from", from.String(),
				"to", to.String())
		},
	}

	return &breakerClient{
		inner:   client,
		breaker: gobreaker.NewCircuitBreaker(settings),
	}
}

// Generate runs the wrapped client's call through the breaker.
func (b *breakerClient) Generate(ctx context.Context, prompt string) (string, error) {
	result, err := b.breaker.Execute(func() (any, error) {
		return b.inner.Generate(ctx, prompt)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return "", fmt.Errorf("%w: %w", ErrCircuitOpen, err)
		}
		return "", err
	}

	text, ok := result.(string)
	if !ok {
		return "", fmt.Errorf("unexpected breaker result type %T", result)
	}
	return text, nil
}
