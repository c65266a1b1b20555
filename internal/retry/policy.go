// Package retry provides the fixed-interval retry policy used for orchestrator
// connection and suite registration.
package retry

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Policy retries an operation up to MaxAttempts times, sleeping Interval between
// attempts. No sleep follows the final attempt.
type Policy struct {
	MaxAttempts int
	Interval    time.Duration
}

// Notify is called after each failed attempt that will be retried.
type Notify func(attempt int, err error, next time.Duration)

// Do runs op until it succeeds, returns a permanent error, the context is
// cancelled, or the attempt budget is spent. It returns the number of
// attempts made and the last error.
func (p Policy) Do(ctx context.Context, op func(ctx context.Context) error, notify Notify) (int, error) {
	maxAttempts := p.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	var b backoff.BackOff = backoff.NewConstantBackOff(p.Interval)
	b = backoff.WithMaxRetries(b, uint64(maxAttempts-1))
	b = backoff.WithContext(b, ctx)

	attempts := 0
	err := backoff.RetryNotify(func() error {
		attempts++
		return op(ctx)
	}, b, func(err error, next time.Duration) {
		if notify != nil {
			notify(attempts, err, next)
		}
	})
	return attempts, err
}

// Permanent marks err so that Do stops retrying immediately.
func Permanent(err error) error {
	return backoff.Permanent(err)
}
