package execution

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/zerowrap"

	"github.com/bnema/testnet/internal/adapters/out/grpcapi"
	"github.com/bnema/testnet/internal/boundaries/out"
	"github.com/bnema/testnet/pkg/domain"
)

// ExecutorConfig holds the process inputs of a testsuite run. Zero connection
// settings fall back to the connector defaults.
type ExecutorConfig struct {
	APISocket            string
	CustomParamsJSON     string
	LogLevel             string
	MaxConnectAttempts   int
	ConnectRetryInterval time.Duration
	CallTimeout          time.Duration
	RegistrationAttempts int
	RegistrationInterval time.Duration
}

// Orchestrator is the full orchestrator API a testsuite process uses.
type Orchestrator interface {
	out.Orchestrator
}

// ConnectFunc opens the orchestrator API.
type ConnectFunc func(ctx context.Context, endpoint string) (Orchestrator, error)

// TestSuiteExecutor is the entry point of a testsuite process.
type TestSuiteExecutor struct {
	cfg          ExecutorConfig
	configurator TestSuiteConfigurator
	connect      ConnectFunc
	driverOpts   []DriverOption
}

// ExecutorOption configures a TestSuiteExecutor.
type ExecutorOption func(*TestSuiteExecutor)

// WithConnectFunc replaces the gRPC connector.
func WithConnectFunc(connect ConnectFunc) ExecutorOption {
	return func(e *TestSuiteExecutor) { e.connect = connect }
}

// WithDriverOptions configures the driver of the executed test.
func WithDriverOptions(opts ...DriverOption) ExecutorOption {
	return func(e *TestSuiteExecutor) { e.driverOpts = append(e.driverOpts, opts...) }
}

// NewTestSuiteExecutor creates the executor of the suite configurator builds.
func NewTestSuiteExecutor(cfg ExecutorConfig, configurator TestSuiteConfigurator, opts ...ExecutorOption) *TestSuiteExecutor {
	e := &TestSuiteExecutor{cfg: cfg, configurator: configurator}
	for _, opt := range opts {
		opt(e)
	}
	if e.connect == nil {
		e.connect = func(ctx context.Context, endpoint string) (Orchestrator, error) {
			connector := grpcapi.NewConnector(grpcapi.ConnectorConfig{
				MaxAttempts:   cfg.MaxConnectAttempts,
				RetryInterval: cfg.ConnectRetryInterval,
				CallTimeout:   cfg.CallTimeout,
			}, zerowrap.FromCtx(ctx))
			return connector.Connect(ctx, endpoint)
		}
	}
	return e
}

// Run registers the suite and performs the action the orchestrator asks for.
// The result is nil when the suite only published its metadata. A test that
// did not complete is reported as an error alongside its result.
func (e *TestSuiteExecutor) Run(ctx context.Context) (*TestResult, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "execution",
		zerowrap.FieldUseCase: "ExecuteSuite",
	})
	log := zerowrap.FromCtx(ctx)

	if e.cfg.APISocket == "" {
		return nil, &domain.ConfigurationError{Field: "api socket", Reason: "must not be empty"}
	}
	if err := e.configurator.SetLogLevel(e.cfg.LogLevel); err != nil {
		return nil, &domain.ConfigurationError{Field: "log level", Reason: fmt.Sprintf("%q rejected", e.cfg.LogLevel), Cause: err}
	}

	paramsJSON := e.cfg.CustomParamsJSON
	if paramsJSON == "" {
		paramsJSON = "{}"
	}
	if err := ValidateParams(e.configurator, paramsJSON); err != nil {
		return nil, err
	}
	suite, err := e.configurator.ParseParamsAndCreateSuite(paramsJSON)
	if err != nil {
		return nil, &domain.ConfigurationError{Field: "custom params", Reason: "suite creation failed", Cause: err}
	}

	client, err := e.connect(ctx, e.cfg.APISocket)
	if err != nil {
		return nil, log.WrapErr(err, "failed to connect to orchestrator")
	}
	defer func() {
		if cerr := client.Close(); cerr != nil {
			log.Warn().Err(cerr).Msg("failed to close orchestrator connection")
		}
	}()

	action, err := NewSuiteRegistrar(client, e.cfg.RegistrationAttempts, e.cfg.RegistrationInterval).Register(ctx)
	if err != nil {
		return nil, err
	}

	switch action {
	case domain.SuiteActionSerializeSuiteMetadata:
		return nil, NewMetadataPublisher(client).Publish(ctx, suite)

	case domain.SuiteActionExecuteTest:
		testName, err := client.GetTestExecutionInfo(ctx)
		if err != nil {
			return nil, &domain.RegistrationError{Operation: "get test execution info", Cause: err}
		}
		test, ok := suite.GetTests()[testName]
		if !ok {
			return nil, fmt.Errorf("test %q: %w", testName, domain.ErrTestNotFound)
		}

		result := NewTestLifecycleDriver(client, e.driverOpts...).Drive(ctx, testName, test)
		if !result.Passed() {
			return &result, fmt.Errorf("test %q failed: %w", testName, result.Err)
		}
		return &result, nil

	default:
		return nil, &domain.RegistrationError{Operation: "register suite", Cause: fmt.Errorf("unrecognized suite action %q", action)}
	}
}
