package llm

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"
)

// retryProvider re-issues failed generations. A question batch is
// cheap to regenerate, so transient provider trouble (rate limits,
// 5xx, network) is retried with doubling waits, and one extra attempt
// is spent on output that failed validation. Waits carry jitter so
// parallel fetches don't retry in lockstep.
type retryProvider struct {
	next Provider
	cfg  RetryConfig
}

// WithRetry wraps a Provider with the retry policy.
func WithRetry(next Provider, cfg RetryConfig) Provider {
	return &retryProvider{next: next, cfg: cfg}
}

func (r *retryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	wait := r.cfg.BaseWait
	badOutputs := 0

	for attempt := 1; ; attempt++ {
		resp, err := r.next.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}

		var bad *BadOutputError
		if errors.As(err, &bad) {
			badOutputs++
		}
		if attempt >= r.cfg.MaxAttempts || !retryable(err, badOutputs) {
			return nil, err
		}

		if err := sleep(ctx, jittered(wait, err)); err != nil {
			return nil, err
		}
		wait *= 2
		if wait > r.cfg.MaxWait {
			wait = r.cfg.MaxWait
		}
	}
}

func (r *retryProvider) ModelID() string {
	return r.next.ModelID()
}

// retryable classifies a failure. Rate limits, unavailability and
// unclassified (network-level) errors are transient. Bad output earns
// a single regeneration. A cancelled caller is final.
func retryable(err error, badOutputs int) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var bad *BadOutputError
	if errors.As(err, &bad) {
		return badOutputs <= 1
	}
	return true
}

// jittered spreads base over ±25%, deferring to the provider's
// Retry-After when a rate limit carries one.
func jittered(base time.Duration, err error) time.Duration {
	var rl *RateLimitedError
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}
	quarter := base / 4
	if quarter <= 0 {
		return base
	}
	return base - quarter + rand.N(2*quarter)
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
