// Package retry implements a caller-level retry policy with explicit
// max-attempts and backoff.
//
// The generation pipeline intentionally performs no retries of its own:
// each service call makes exactly one provider call, and re-issuing a
// request is an explicit caller decision. Callers that want resilience
// wrap their calls with Do. Provider output is not idempotent — two
// attempts with identical input may yield different, equally valid
// results.
package retry

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"

	"github.com/abhisek/wonderwhiz/internal/contentgen"
	"github.com/abhisek/wonderwhiz/internal/llm"
)

// Policy configures retry behavior.
type Policy struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultPolicy returns the recommended policy for interactive callers.
func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts: 3,
		InitialWait: 1 * time.Second,
		MaxWait:     10 * time.Second,
		Multiplier:  2.0,
	}
}

// Do invokes fn up to p.MaxAttempts times, waiting with exponential
// backoff and jitter between attempts. Non-retryable errors and context
// cancellation stop immediately.
func Do[T any](ctx context.Context, p Policy, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	var lastErr error

	for attempt := range p.MaxAttempts {
		result, err := fn(ctx)
		if err == nil {
			return result, nil
		}
		lastErr = err

		if !Retryable(err) {
			return zero, err
		}

		// Last attempt — don't sleep, just return the error.
		if attempt == p.MaxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(p.backoff(attempt)):
		}
	}

	return zero, lastErr
}

// Retryable reports whether re-issuing the request could plausibly
// succeed. Configuration errors (missing credentials) and malformed
// requests never heal on retry; transport hiccups, empty responses, and
// unparseable model output can.
func Retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var missingCreds *llm.ErrMissingCredentials
	if errors.As(err, &missingCreds) {
		return false
	}

	var genErr *contentgen.GenerationError
	if errors.As(err, &genErr) {
		switch genErr.Kind {
		case contentgen.KindMissingCredentials, contentgen.KindBadRequest:
			return false
		}
		return true
	}

	// Bare provider errors (image/chat paths) and anything unclassified
	// are treated as transient.
	return true
}

// backoff computes the wait duration for the given attempt.
func (p Policy) backoff(attempt int) time.Duration {
	wait := float64(p.InitialWait) * math.Pow(p.Multiplier, float64(attempt))
	if wait > float64(p.MaxWait) {
		wait = float64(p.MaxWait)
	}

	// Add ±20% jitter.
	jitter := wait * 0.2 * (2*rand.Float64() - 1)
	wait += jitter

	if wait < 0 {
		wait = 0
	}
	return time.Duration(wait)
}
