package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBreakerPassesThroughSuccess(t *testing.T) {
	mock := NewMockClient("fine")
	client := WithBreaker(mock)

	text, err := client.Generate(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "fine", text)
	assert.Equal(t, []string{"hello"}, mock.Prompts())
}

func TestBreakerOpensAfterConsecutiveFailures(t *testing.T) {
	boom := errors.New("provider down")
	mock := NewFailingMockClient(boom)
	client := WithBreaker(mock)

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		_, err := client.Generate(ctx, "hello")
		require.ErrorIs(t, err, boom)
	}

	// Circuit is now open; the inner client is not called again.
	_, err := client.Generate(ctx, "hello")
	require.ErrorIs(t, err, ErrCircuitOpen)
	assert.Len(t, mock.Prompts(), 3)
}
