package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolicy_SucceedsAfterFailures(t *testing.T) {
	p := Policy{MaxAttempts: 5, Interval: time.Millisecond}
	calls := 0

	attempts, err := p.Do(context.Background(), func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("not yet")
		}
		return nil
	}, nil)

	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestPolicy_ExhaustsAttemptsWithoutTrailingSleep(t *testing.T) {
	p := Policy{MaxAttempts: 3, Interval: 40 * time.Millisecond}
	var notified []int
	boom := errors.New("boom")

	start := time.Now()
	attempts, err := p.Do(context.Background(), func(ctx context.Context) error {
		return boom
	}, func(attempt int, err error, next time.Duration) {
		notified = append(notified, attempt)
	})
	elapsed := time.Since(start)

	require.ErrorIs(t, err, boom)
	assert.Equal(t, 3, attempts)
	assert.Equal(t, []int{1, 2}, notified)
	assert.GreaterOrEqual(t, elapsed, 80*time.Millisecond)
	assert.Less(t, elapsed, 200*time.Millisecond)
}

func TestPolicy_PermanentErrorStops(t *testing.T) {
	p := Policy{MaxAttempts: 10, Interval: time.Millisecond}
	boom := errors.New("rejected")

	attempts, err := p.Do(context.Background(), func(ctx context.Context) error {
		return Permanent(boom)
	}, nil)

	require.ErrorIs(t, err, boom)
	assert.Equal(t, 1, attempts)
}

func TestPolicy_ZeroAttemptsRunsOnce(t *testing.T) {
	attempts, err := Policy{}.Do(context.Background(), func(ctx context.Context) error {
		return nil
	}, nil)

	require.NoError(t, err)
	assert.Equal(t, 1, attempts)
}
