package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/wonderwhiz/internal/contentgen"
	"github.com/abhisek/wonderwhiz/internal/llm"
)

// fastPolicy keeps test runtime negligible.
func fastPolicy() Policy {
	return Policy{
		MaxAttempts: 3,
		InitialWait: time.Millisecond,
		MaxWait:     5 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func TestDo_SucceedsFirstTry(t *testing.T) {
	calls := 0
	got, err := Do(t.Context(), fastPolicy(), func(context.Context) (string, error) {
		calls++
		return "ok", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", got)
	assert.Equal(t, 1, calls)
}

func TestDo_RetriesTransientFailures(t *testing.T) {
	calls := 0
	got, err := Do(t.Context(), fastPolicy(), func(context.Context) (string, error) {
		calls++
		if calls < 3 {
			return "", &llm.ErrTransport{StatusCode: 503, Err: errors.New("unavailable")}
		}
		return "ok", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", got)
	assert.Equal(t, 3, calls)
}

func TestDo_ExhaustsAttempts(t *testing.T) {
	calls := 0
	_, err := Do(t.Context(), fastPolicy(), func(context.Context) (int, error) {
		calls++
		return 0, &llm.ErrTransport{Err: errors.New("down")}
	})
	require.Error(t, err)
	assert.Equal(t, 3, calls)

	var transport *llm.ErrTransport
	assert.True(t, errors.As(err, &transport), "last error should surface")
}

func TestDo_StopsOnNonRetryable(t *testing.T) {
	calls := 0
	_, err := Do(t.Context(), fastPolicy(), func(context.Context) (int, error) {
		calls++
		return 0, &llm.ErrMissingCredentials{Provider: "gemini"}
	})
	require.Error(t, err)
	assert.Equal(t, 1, calls, "missing credentials must not be retried")
}

func TestDo_StopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())

	calls := 0
	_, err := Do(ctx, fastPolicy(), func(context.Context) (int, error) {
		calls++
		cancel()
		return 0, &llm.ErrTransport{Err: errors.New("down")}
	})
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestRetryable(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "transport",
			err:  &llm.ErrTransport{Err: errors.New("down")},
			want: true,
		},
		{
			name: "missing credentials",
			err:  &llm.ErrMissingCredentials{Provider: "gemini"},
			want: false,
		},
		{
			name: "generation malformed json",
			err:  &contentgen.GenerationError{Kind: contentgen.KindMalformedJSON, Err: errors.New("bad")},
			want: true,
		},
		{
			name: "generation bad request",
			err:  &contentgen.GenerationError{Kind: contentgen.KindBadRequest, Err: errors.New("bad")},
			want: false,
		},
		{
			name: "generation missing credentials",
			err:  &contentgen.GenerationError{Kind: contentgen.KindMissingCredentials, Err: errors.New("bad")},
			want: false,
		},
		{
			name: "context deadline",
			err:  context.DeadlineExceeded,
			want: false,
		},
		{
			name: "unclassified",
			err:  errors.New("mystery"),
			want: true,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Retryable(tc.err))
		})
	}
}

func TestBackoff_GrowsAndCaps(t *testing.T) {
	p := Policy{
		MaxAttempts: 5,
		InitialWait: 100 * time.Millisecond,
		MaxWait:     300 * time.Millisecond,
		Multiplier:  2.0,
	}

	// Jitter is ±20%, so bound rather than pin exact values.
	first := p.backoff(0)
	assert.InDelta(t, float64(100*time.Millisecond), float64(first), float64(20*time.Millisecond))

	capped := p.backoff(4)
	assert.LessOrEqual(t, capped, 360*time.Millisecond)
	assert.GreaterOrEqual(t, capped, 240*time.Millisecond)
}
