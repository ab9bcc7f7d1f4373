package codegrade

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// RetryGrader wraps a Grader and re-asks it on transient failures: rate
// limits and provider outages back off exponentially with jitter, a
// malformed verdict is re-asked exactly once, and context cancellation
// aborts immediately.
type RetryGrader struct {
	inner Grader
	cfg   RetryConfig
}

// WithRetry wraps a Grader with retry logic.
func WithRetry(g Grader, cfg RetryConfig) Grader {
	return &RetryGrader{inner: g, cfg: cfg}
}

func (r *RetryGrader) Grade(ctx context.Context, sub Submission) (*Verdict, error) {
	var lastErr error
	invalidBudget := 1

	for attempt := 0; attempt < r.cfg.MaxAttempts; attempt++ {
		if attempt > 0 {
			if err := sleep(ctx, r.wait(attempt-1, lastErr)); err != nil {
				return nil, err
			}
		}

		v, err := r.inner.Grade(ctx, sub)
		if err == nil {
			return v, nil
		}
		lastErr = err

		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}

		var invalid *ErrInvalidVerdict
		if errors.As(err, &invalid) {
			// A malformed verdict is usually model noise; one re-ask is
			// worth it, more is not.
			if invalidBudget == 0 {
				return nil, err
			}
			invalidBudget--
		}
	}

	return nil, lastErr
}

func (r *RetryGrader) ProviderID() string {
	return r.inner.ProviderID()
}

// wait computes the pause after the given zero-based attempt. A
// server-sent retry-after takes precedence over the backoff curve.
func (r *RetryGrader) wait(attempt int, err error) time.Duration {
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	w := float64(r.cfg.InitialWait) * math.Pow(r.cfg.Multiplier, float64(attempt))
	w = math.Min(w, float64(r.cfg.MaxWait))

	// Spread concurrent retries out with up to ±20% jitter.
	w *= 0.8 + 0.4*rand.Float64()
	return time.Duration(math.Max(w, 0))
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
