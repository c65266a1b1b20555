package telemetry

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// Metrics holds the testnet OTel metric instruments.
type Metrics struct {
	// Network
	ServicesAdded      metric.Int64Counter
	ServiceAddFailures metric.Int64Counter
	ServicesRemoved    metric.Int64Counter
	ActiveServices     metric.Int64UpDownCounter
	Repartitions       metric.Int64Counter
	AvailabilityPolls  metric.Int64Counter

	// Test lifecycle
	TestTransitions metric.Int64Counter
	TestOutcomes    metric.Int64Counter
	PhaseDuration   metric.Float64Histogram

	// Events
	EventsProcessed metric.Int64Counter
	EventsDropped   metric.Int64Counter
}

// NewMetrics creates and registers all testnet metric instruments on mp, or on
// the global MeterProvider when mp is nil.
// All fields are always initialized; OTel hands out noop instruments when no
// MeterProvider is set.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	if mp == nil {
		mp = otel.GetMeterProvider()
	}
	meter := mp.Meter("testnet")
	m := &Metrics{}
	var err error

	if m.ServicesAdded, err = meter.Int64Counter("testnet.network.services.added",
		metric.WithDescription("Total services added to test networks")); err != nil {
		return nil, err
	}
	if m.ServiceAddFailures, err = meter.Int64Counter("testnet.network.services.add_failures",
		metric.WithDescription("Total failed service additions")); err != nil {
		return nil, err
	}
	if m.ServicesRemoved, err = meter.Int64Counter("testnet.network.services.removed",
		metric.WithDescription("Total services removed from test networks")); err != nil {
		return nil, err
	}
	if m.ActiveServices, err = meter.Int64UpDownCounter("testnet.network.services.active",
		metric.WithDescription("Services currently registered in a test network")); err != nil {
		return nil, err
	}
	if m.Repartitions, err = meter.Int64Counter("testnet.network.repartitions",
		metric.WithDescription("Total repartition requests sent")); err != nil {
		return nil, err
	}
	if m.AvailabilityPolls, err = meter.Int64Counter("testnet.service.availability_polls",
		metric.WithDescription("Total service availability polls")); err != nil {
		return nil, err
	}
	if m.TestTransitions, err = meter.Int64Counter("testnet.test.transitions",
		metric.WithDescription("Total test lifecycle state transitions")); err != nil {
		return nil, err
	}
	if m.TestOutcomes, err = meter.Int64Counter("testnet.test.outcomes",
		metric.WithDescription("Total finished tests by outcome")); err != nil {
		return nil, err
	}
	if m.PhaseDuration, err = meter.Float64Histogram("testnet.test.phase_duration_seconds",
		metric.WithDescription("Test lifecycle phase duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.1, 0.5, 1, 5, 10, 30, 60, 180)); err != nil {
		return nil, err
	}
	if m.EventsProcessed, err = meter.Int64Counter("testnet.events.processed",
		metric.WithDescription("Total lifecycle events processed")); err != nil {
		return nil, err
	}
	if m.EventsDropped, err = meter.Int64Counter("testnet.events.dropped",
		metric.WithDescription("Total lifecycle events dropped")); err != nil {
		return nil, err
	}

	return m, nil
}

// MetricsFor builds the instruments for options that cannot return an error.
// A nil mp disables metrics. Creation errors go to the OTel error handler.
func MetricsFor(mp metric.MeterProvider) *Metrics {
	if mp == nil {
		return nil
	}
	m, err := NewMetrics(mp)
	if err != nil {
		otel.Handle(err)
		return nil
	}
	return m
}
