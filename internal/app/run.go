// Package app provides the testsuite process initialization and wiring.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/zerowrap"
	"go.opentelemetry.io/otel"

	"github.com/bnema/testnet/internal/adapters/out/eventbus"
	"github.com/bnema/testnet/internal/adapters/out/telemetry"
	"github.com/bnema/testnet/pkg/execution"
	"github.com/bnema/testnet/pkg/version"
)

const (
	eventBufferSize   = 100
	telemetryShutdown = 5 * time.Second
)

// Outcome is what a testsuite process reports when it exits.
type Outcome struct {
	// Result is nil when the suite only published its metadata.
	Result  *execution.TestResult
	Summary Counts
}

// RunOption configures Run.
type RunOption func(*runOptions)

type runOptions struct {
	executorOpts []execution.ExecutorOption
}

// WithExecutorOptions passes extra options to the suite executor.
func WithExecutorOptions(opts ...execution.ExecutorOption) RunOption {
	return func(o *runOptions) { o.executorOpts = append(o.executorOpts, opts...) }
}

// Run wires telemetry, the lifecycle event bus and the suite executor, then
// performs the action the orchestrator asks for.
func Run(ctx context.Context, cfg Config, configurator execution.TestSuiteConfigurator, log zerowrap.Logger, opts ...RunOption) (Outcome, error) {
	var o runOptions
	for _, opt := range opts {
		opt(&o)
	}

	ctx = zerowrap.WithCtx(ctx, log)
	runLog := log.With().
		Str(zerowrap.FieldLayer, "app").
		Str("version", version.Version()).
		Logger()

	provider, shutdownTelemetry, err := telemetry.NewProvider(ctx, cfg.Telemetry, "testnet", version.Version())
	if err != nil {
		return Outcome{}, fmt.Errorf("failed to init telemetry: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), telemetryShutdown)
		defer cancel()
		if err := shutdownTelemetry(shutdownCtx); err != nil {
			runLog.Warn().Err(err).Msg("failed to flush telemetry")
		}
	}()

	meterProvider := otel.GetMeterProvider()
	metrics, err := telemetry.NewMetrics(meterProvider)
	if err != nil {
		return Outcome{}, fmt.Errorf("failed to create metrics: %w", err)
	}

	bus := eventbus.NewInMemory(eventBufferSize, log)
	bus.SetMetrics(metrics)
	summary := &RunSummary{}
	if err := bus.Subscribe(summary); err != nil {
		return Outcome{}, fmt.Errorf("failed to subscribe run summary: %w", err)
	}
	if err := bus.Start(); err != nil {
		return Outcome{}, fmt.Errorf("failed to start event bus: %w", err)
	}

	executorOpts := append([]execution.ExecutorOption{
		execution.WithDriverOptions(
			execution.WithSuiteExVolMountpoint(cfg.Suite.ExecutionVolume),
			execution.WithPhaseGrace(cfg.Suite.PhaseGrace),
			execution.WithEventPublisher(bus),
			execution.WithMeterProvider(meterProvider),
			execution.WithServiceCompensation(cfg.Suite.CompensateFailures),
		),
	}, o.executorOpts...)

	runLog.Info().
		Str("api_socket", cfg.API.Socket).
		Str("run_id", provider.RunID).
		Bool("telemetry", cfg.Telemetry.Enabled).
		Msg("starting testsuite")

	result, runErr := execution.NewTestSuiteExecutor(cfg.ExecutorConfig(), configurator, executorOpts...).Run(ctx)

	if err := bus.Stop(); err != nil {
		runLog.Warn().Err(err).Msg("event bus did not drain")
	}
	return Outcome{Result: result, Summary: summary.Counts()}, runErr
}
