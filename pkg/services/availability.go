package services

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/zerowrap"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/bnema/testnet/internal/adapters/out/telemetry"
	"github.com/bnema/testnet/pkg/domain"
)

// AvailabilityChecker blocks until a freshly started service reports ready.
type AvailabilityChecker interface {
	WaitForStartup(timeBetweenPolls time.Duration, maxNumPolls int) error
}

// DefaultAvailabilityChecker polls Service.IsAvailable.
type DefaultAvailabilityChecker struct {
	serviceID domain.ServiceID
	service   Service
	log       zerowrap.Logger
	metrics   *telemetry.Metrics
}

var _ AvailabilityChecker = (*DefaultAvailabilityChecker)(nil)

// CheckerOption configures a DefaultAvailabilityChecker.
type CheckerOption func(*DefaultAvailabilityChecker)

// WithCheckerLogger sets the logger polls are reported to.
func WithCheckerLogger(log zerowrap.Logger) CheckerOption {
	return func(c *DefaultAvailabilityChecker) { c.log = log }
}

// WithCheckerMeterProvider counts polls through mp. A nil mp disables metrics.
func WithCheckerMeterProvider(mp metric.MeterProvider) CheckerOption {
	return func(c *DefaultAvailabilityChecker) { c.metrics = telemetry.MetricsFor(mp) }
}

// NewDefaultAvailabilityChecker creates a checker polling service.
func NewDefaultAvailabilityChecker(serviceID domain.ServiceID, service Service, opts ...CheckerOption) *DefaultAvailabilityChecker {
	c := &DefaultAvailabilityChecker{
		serviceID: serviceID,
		service:   service,
		log:       zerowrap.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WaitForStartup polls up to maxNumPolls times, sleeping timeBetweenPolls
// between polls but not after the last one.
func (c *DefaultAvailabilityChecker) WaitForStartup(timeBetweenPolls time.Duration, maxNumPolls int) error {
	return c.WaitForStartupContext(context.Background(), timeBetweenPolls, maxNumPolls)
}

// WaitForStartupContext is WaitForStartup bounded by ctx.
func (c *DefaultAvailabilityChecker) WaitForStartupContext(ctx context.Context, timeBetweenPolls time.Duration, maxNumPolls int) error {
	if maxNumPolls <= 0 {
		return &domain.ConfigurationError{Field: "max polls", Reason: fmt.Sprintf("must be positive, got %d", maxNumPolls)}
	}
	if timeBetweenPolls < 0 {
		return &domain.ConfigurationError{Field: "poll interval", Reason: fmt.Sprintf("must not be negative, got %s", timeBetweenPolls)}
	}

	log := c.log.With().
		Str(zerowrap.FieldEntityID, string(c.serviceID)).
		Logger()

	for poll := 1; poll <= maxNumPolls; poll++ {
		available := c.service.IsAvailable()
		c.recordPoll(ctx, available)
		if available {
			log.Debug().Int("poll", poll).Msg("service available")
			return nil
		}
		log.Debug().Int("poll", poll).Int("max_polls", maxNumPolls).Msg("service not yet available")

		if poll == maxNumPolls {
			break
		}

		timer := time.NewTimer(timeBetweenPolls)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return &domain.AvailabilityTimeoutError{
				ServiceID:    c.serviceID,
				MaxPolls:     maxNumPolls,
				PollInterval: timeBetweenPolls,
				Cause:        ctx.Err(),
			}
		}
	}

	return &domain.AvailabilityTimeoutError{
		ServiceID:    c.serviceID,
		MaxPolls:     maxNumPolls,
		PollInterval: timeBetweenPolls,
	}
}

func (c *DefaultAvailabilityChecker) recordPoll(ctx context.Context, available bool) {
	if c.metrics == nil {
		return
	}
	c.metrics.AvailabilityPolls.Add(ctx, 1, metric.WithAttributes(
		attribute.Bool("available", available),
	))
}
