// Package execution runs a testsuite process: it registers the suite with the
// orchestrator, then either publishes the suite metadata or drives the one
// test the orchestrator asked for.
package execution

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/zerowrap"

	"github.com/bnema/testnet/internal/boundaries/out"
	"github.com/bnema/testnet/internal/retry"
	"github.com/bnema/testnet/pkg/domain"
)

// Suite registration defaults.
const (
	DefaultRegistrationAttempts = 20
	DefaultRegistrationInterval = 500 * time.Millisecond
)

// SuiteRegistrar announces the suite to the orchestrator, retrying while the
// orchestrator is not ready to accept it.
type SuiteRegistrar struct {
	registry out.SuiteRegistry
	policy   retry.Policy
}

func NewSuiteRegistrar(registry out.SuiteRegistry, maxAttempts int, interval time.Duration) *SuiteRegistrar {
	if maxAttempts <= 0 {
		maxAttempts = DefaultRegistrationAttempts
	}
	if interval <= 0 {
		interval = DefaultRegistrationInterval
	}
	return &SuiteRegistrar{
		registry: registry,
		policy:   retry.Policy{MaxAttempts: maxAttempts, Interval: interval},
	}
}

// Register returns the action the orchestrator wants this process to take.
func (r *SuiteRegistrar) Register(ctx context.Context) (domain.SuiteAction, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "execution",
		zerowrap.FieldUseCase: "RegisterSuite",
	})
	log := zerowrap.FromCtx(ctx)

	var action domain.SuiteAction
	attempts, err := r.policy.Do(ctx, func(ctx context.Context) error {
		a, err := r.registry.RegisterSuite(ctx)
		if err != nil {
			return err
		}
		if !a.Valid() {
			return retry.Permanent(fmt.Errorf("unrecognized suite action %q", a))
		}
		action = a
		return nil
	}, func(attempt int, err error, next time.Duration) {
		log.Debug().Err(err).Int("attempt", attempt).Dur("retry_in", next).Msg("suite registration failed, retrying")
	})
	if err != nil {
		return "", &domain.RegistrationError{
			Operation: "register suite",
			Cause:     fmt.Errorf("after %d attempts: %w", attempts, err),
		}
	}

	log.Info().Str(zerowrap.FieldAction, string(action)).Int("attempts", attempts).Msg("suite registered")
	return action, nil
}
