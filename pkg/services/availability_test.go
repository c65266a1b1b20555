package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bnema/zerowrap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/testnet/pkg/domain"
	"github.com/bnema/testnet/pkg/services"
	"github.com/bnema/testnet/pkg/services/servicetest"
)

func testLogger() zerowrap.Logger {
	return zerowrap.New(zerowrap.Config{Level: "warn"})
}

func TestWaitForStartup_AvailableAfterPolls(t *testing.T) {
	svc := servicetest.NewService(nil, 3)
	checker := services.NewDefaultAvailabilityChecker("api", svc, services.WithCheckerLogger(testLogger()))

	err := checker.WaitForStartup(time.Millisecond, 5)

	require.NoError(t, err)
	assert.Equal(t, 3, svc.Polls())
}

func TestWaitForStartup_NeverAvailable(t *testing.T) {
	svc := servicetest.NewService(nil, 0)
	checker := services.NewDefaultAvailabilityChecker("api", svc, services.WithCheckerLogger(testLogger()))

	start := time.Now()
	err := checker.WaitForStartup(50*time.Millisecond, 3)
	elapsed := time.Since(start)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAvailabilityTimeout)

	var timeoutErr *domain.AvailabilityTimeoutError
	require.True(t, errors.As(err, &timeoutErr))
	assert.Equal(t, domain.ServiceID("api"), timeoutErr.ServiceID)
	assert.Equal(t, 3, timeoutErr.MaxPolls)

	// Two sleeps between three polls, none after the last.
	assert.Equal(t, 3, svc.Polls())
	assert.GreaterOrEqual(t, elapsed, 100*time.Millisecond)
	assert.Less(t, elapsed, 250*time.Millisecond)
}

func TestWaitForStartup_SinglePollDoesNotSleep(t *testing.T) {
	svc := servicetest.NewService(nil, 0)
	checker := services.NewDefaultAvailabilityChecker("api", svc)

	start := time.Now()
	err := checker.WaitForStartup(time.Second, 1)

	assert.ErrorIs(t, err, domain.ErrAvailabilityTimeout)
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}

func TestWaitForStartup_InvalidArguments(t *testing.T) {
	checker := services.NewDefaultAvailabilityChecker("api", servicetest.NewService(nil, 1))

	assert.ErrorIs(t, checker.WaitForStartup(time.Millisecond, 0), domain.ErrConfiguration)
	assert.ErrorIs(t, checker.WaitForStartup(-time.Millisecond, 3), domain.ErrConfiguration)
}

func TestWaitForStartupContext_Cancelled(t *testing.T) {
	svc := servicetest.NewService(nil, 0)
	checker := services.NewDefaultAvailabilityChecker("api", svc)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	err := checker.WaitForStartupContext(ctx, time.Second, 10)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAvailabilityTimeout)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 1, svc.Polls())
}
