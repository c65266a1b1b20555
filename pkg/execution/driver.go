package execution

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/bnema/zerowrap"
	"github.com/spf13/afero"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/bnema/testnet/internal/adapters/out/telemetry"
	"github.com/bnema/testnet/internal/boundaries/out"
	"github.com/bnema/testnet/pkg/domain"
	"github.com/bnema/testnet/pkg/networks"
	"github.com/bnema/testnet/pkg/testsuite"
)

// Driver defaults.
const (
	DefaultSuiteExVolMountpoint = "/suite-execution"
	DefaultPhaseGrace           = 10 * time.Second
)

const (
	phaseSetup = "setup"
	phaseRun   = "run"
)

// DriverClient is the orchestrator API a test run needs.
type DriverClient interface {
	out.TestExecutionReporter
	out.NetworkClient
}

// TestResult is the outcome of one driven test.
type TestResult struct {
	TestName    string
	State       domain.TestState
	Err         error
	Transitions []domain.TestTransition
	Duration    time.Duration
}

// Passed reports whether the test completed successfully.
func (r TestResult) Passed() bool {
	return r.State == domain.TestStateCompleted
}

// TestLifecycleDriver runs one test through registration, setup and execution,
// reporting each step to the orchestrator. The orchestrator enforces the test
// timeouts; the driver only backstops each phase with the timeout plus a grace
// period so a hung phase cannot block the process forever.
type TestLifecycleDriver struct {
	client               DriverClient
	suiteExVolMountpoint string
	phaseGrace           time.Duration
	fs                   afero.Fs
	events               out.EventPublisher
	meterProvider        metric.MeterProvider
	metrics              *telemetry.Metrics
	tracer               trace.Tracer
	compensate           bool
}

// DriverOption configures a TestLifecycleDriver.
type DriverOption func(*TestLifecycleDriver)

// WithSuiteExVolMountpoint sets where the suite execution volume is mounted in
// the testsuite container.
func WithSuiteExVolMountpoint(mountpoint string) DriverOption {
	return func(d *TestLifecycleDriver) { d.suiteExVolMountpoint = mountpoint }
}

// WithPhaseGrace sets how long past its timeout a phase may run before the
// driver gives up on it.
func WithPhaseGrace(grace time.Duration) DriverOption {
	return func(d *TestLifecycleDriver) { d.phaseGrace = grace }
}

// WithFs sets the file system generated files are written to.
func WithFs(fs afero.Fs) DriverOption {
	return func(d *TestLifecycleDriver) { d.fs = fs }
}

// WithEventPublisher publishes test transitions and network events.
func WithEventPublisher(p out.EventPublisher) DriverOption {
	return func(d *TestLifecycleDriver) { d.events = p }
}

// WithMeterProvider records lifecycle and network metrics through mp. A nil
// mp disables them.
func WithMeterProvider(mp metric.MeterProvider) DriverOption {
	return func(d *TestLifecycleDriver) {
		d.meterProvider = mp
		d.metrics = telemetry.MetricsFor(mp)
	}
}

// WithServiceCompensation controls whether services whose startup failed are removed again.
func WithServiceCompensation(enabled bool) DriverOption {
	return func(d *TestLifecycleDriver) { d.compensate = enabled }
}

// NewTestLifecycleDriver creates a driver reporting to client.
func NewTestLifecycleDriver(client DriverClient, opts ...DriverOption) *TestLifecycleDriver {
	d := &TestLifecycleDriver{
		client:               client,
		suiteExVolMountpoint: DefaultSuiteExVolMountpoint,
		phaseGrace:           DefaultPhaseGrace,
		fs:                   afero.NewOsFs(),
		tracer:               otel.Tracer("testnet"),
		compensate:           true,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// testRun tracks the state machine of one Drive call.
type testRun struct {
	driver *TestLifecycleDriver
	ctx    context.Context
	span   trace.Span
	start  time.Time
	result TestResult
}

// Drive runs test to a terminal state. It never panics and never returns
// before the test reached Completed or Failed.
func (d *TestLifecycleDriver) Drive(ctx context.Context, testName string, test testsuite.Test) TestResult {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "execution",
		zerowrap.FieldUseCase: "DriveTest",
		"test":                testName,
	})
	ctx, span := d.tracer.Start(ctx, "test "+testName, trace.WithAttributes(attribute.String("test.name", testName)))
	defer span.End()

	r := &testRun{
		driver: d,
		ctx:    ctx,
		span:   span,
		start:  time.Now(),
		result: TestResult{TestName: testName, State: domain.TestStateIdle},
	}

	cfg, err := configure(test)
	if err != nil {
		return r.fail(err)
	}

	r.transition(domain.TestStateRegistering, nil)
	setupCtx, cancelSetup := context.WithTimeout(ctx, cfg.SetupTimeout+d.phaseGrace)
	defer cancelSetup()

	if err := d.client.RegisterTestSetup(setupCtx); err != nil {
		return r.fail(&domain.RegistrationError{Operation: "register test setup", Cause: err})
	}

	r.transition(domain.TestStateSettingUp, nil)
	nc := networks.NewNetworkContext(d.client, cfg.FilesArtifactURLs, d.suiteExVolMountpoint,
		networks.WithFs(d.fs),
		networks.WithMeterProvider(d.meterProvider),
		networks.WithEventPublisher(d.events),
		networks.WithCompensation(d.compensate, networks.DefaultCompensationStopTimeout),
	)

	setupStart := time.Now()
	network, err := runPhase(setupCtx, phaseSetup, cfg.SetupTimeout+d.phaseGrace, func(ctx context.Context) (networks.Network, error) {
		return test.Setup(ctx, nc)
	})
	d.recordPhase(ctx, phaseSetup, setupStart, err)
	if err != nil {
		return r.fail(err)
	}
	if network == nil {
		return r.fail(&domain.ConfigurationError{Field: "network", Reason: "setup returned no network"})
	}

	if err := d.client.RegisterTestSetupCompletion(ctx); err != nil {
		return r.fail(&domain.RegistrationError{Operation: "register test setup completion", Cause: err})
	}
	if err := d.client.RegisterTestExecution(ctx, cfg.RunTimeout); err != nil {
		return r.fail(&domain.RegistrationError{Operation: "register test execution", Cause: err})
	}
	cancelSetup()

	r.transition(domain.TestStateRunning, nil)
	runCtx, cancelRun := context.WithTimeout(ctx, cfg.RunTimeout+d.phaseGrace)
	defer cancelRun()

	runStart := time.Now()
	_, err = runPhase(runCtx, phaseRun, cfg.RunTimeout+d.phaseGrace, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, test.Run(ctx, network, testsuite.TestContext{})
	})
	d.recordPhase(ctx, phaseRun, runStart, err)
	if err != nil {
		return r.fail(err)
	}

	return r.finish(domain.TestStateCompleted, nil)
}

func configure(test testsuite.Test) (cfg domain.TestConfiguration, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = faultFromPanic("configure", rec)
		}
	}()
	return testsuite.GetTestConfiguration(test)
}

// runPhase runs fn on its own goroutine and waits for it or for ctx to end.
// Panics in fn are converted to errors, as is fn leaving through runtime.Goexit.
func runPhase[T any](ctx context.Context, phase string, timeout time.Duration, fn func(ctx context.Context) (T, error)) (T, error) {
	type outcome struct {
		value T
		err   error
	}
	done := make(chan outcome, 1)

	go func() {
		returned := false
		defer func() {
			if rec := recover(); rec != nil {
				done <- outcome{err: faultFromPanic(phase, rec)}
				return
			}
			if !returned {
				done <- outcome{err: &domain.InternalFault{Phase: phase, Value: "goroutine exited without returning", Stack: debug.Stack()}}
			}
		}()
		v, err := fn(ctx)
		returned = true
		done <- outcome{value: v, err: err}
	}()

	select {
	case o := <-done:
		return o.value, o.err
	case <-ctx.Done():
		var zero T
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return zero, &domain.PhaseTimeoutError{Phase: phase, Timeout: timeout}
		}
		return zero, fmt.Errorf("%s interrupted: %w", phase, ctx.Err())
	}
}

func faultFromPanic(phase string, rec any) error {
	if failure, ok := rec.(*domain.TestAssertionFailure); ok {
		return failure
	}
	return &domain.InternalFault{Phase: phase, Value: rec, Stack: debug.Stack()}
}

func (r *testRun) transition(to domain.TestState, err error) {
	d := r.driver
	from := r.result.State
	t := domain.TestTransition{TestName: r.result.TestName, From: from, To: to, Err: err}
	r.result.State = to
	r.result.Transitions = append(r.result.Transitions, t)

	log := zerowrap.FromCtx(r.ctx)
	event := log.Info()
	if err != nil {
		event = log.Error().Err(err)
	}
	event.Str("from", string(from)).Str("to", string(to)).Msg("test state changed")

	r.span.AddEvent("state_changed", trace.WithAttributes(
		attribute.String("from", string(from)),
		attribute.String("to", string(to)),
	))

	if d.metrics != nil {
		d.metrics.TestTransitions.Add(r.ctx, 1, metric.WithAttributes(
			attribute.String("from", string(from)),
			attribute.String("to", string(to)),
		))
	}
	if d.events != nil {
		if perr := d.events.Publish(domain.EventTestStateChanged, t); perr != nil {
			log.Warn().Err(perr).Str(zerowrap.FieldEvent, string(domain.EventTestStateChanged)).Msg("failed to publish test transition")
		}
	}
}

func (r *testRun) fail(err error) TestResult {
	var fault *domain.InternalFault
	if errors.As(err, &fault) {
		log := zerowrap.FromCtx(r.ctx)
		log.Error().
			Str("phase", fault.Phase).
			Str("stack", string(fault.Stack)).
			Msg("test panicked")
	}
	r.span.RecordError(err)
	r.span.SetStatus(codes.Error, err.Error())
	return r.finish(domain.TestStateFailed, err)
}

func (r *testRun) finish(state domain.TestState, err error) TestResult {
	r.transition(state, err)
	r.result.Err = err
	r.result.Duration = time.Since(r.start)

	if m := r.driver.metrics; m != nil {
		m.TestOutcomes.Add(r.ctx, 1, metric.WithAttributes(attribute.String("state", string(state))))
	}
	if err == nil {
		r.span.SetStatus(codes.Ok, "")
	}
	return r.result
}

func (d *TestLifecycleDriver) recordPhase(ctx context.Context, phase string, start time.Time, err error) {
	if d.metrics == nil {
		return
	}
	d.metrics.PhaseDuration.Record(ctx, time.Since(start).Seconds(), metric.WithAttributes(
		attribute.String("phase", phase),
		attribute.Bool("failed", err != nil),
	))
}
