package execution_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/testnet/internal/adapters/out/grpcapi"
	"github.com/bnema/testnet/internal/testutils"
	"github.com/bnema/testnet/pkg/domain"
	"github.com/bnema/testnet/pkg/execution"
	"github.com/bnema/testnet/pkg/testsuite"
)

type pingConfigurator struct {
	level  string
	params map[string]any
}

func (c *pingConfigurator) SetLogLevel(level string) error {
	if _, err := zerolog.ParseLevel(level); err != nil {
		return err
	}
	c.level = level
	return nil
}

func (c *pingConfigurator) ParseParamsAndCreateSuite(paramsJSON string) (testsuite.TestSuite, error) {
	if err := json.Unmarshal([]byte(paramsJSON), &c.params); err != nil {
		return nil, err
	}
	return twoTestSuite(), nil
}

func (c *pingConfigurator) ParamsSchema() string {
	return `{
		"type": "object",
		"properties": {"peers": {"type": "integer", "minimum": 1}},
		"additionalProperties": false
	}`
}

func newExecutor(t *testing.T, fake *testutils.FakeOrchestrator, cfg execution.ExecutorConfig, configurator execution.TestSuiteConfigurator) *execution.TestSuiteExecutor {
	t.Helper()
	if cfg.APISocket == "" {
		cfg.APISocket = testutils.BufnetTarget
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "debug"
	}
	cfg.RegistrationInterval = time.Millisecond
	return execution.NewTestSuiteExecutor(cfg, configurator,
		execution.WithConnectFunc(func(context.Context, string) (execution.Orchestrator, error) {
			return fake.Connect(t), nil
		}),
		execution.WithDriverOptions(execution.WithFs(afero.NewMemMapFs())),
	)
}

func TestTestSuiteExecutor_SerializesMetadata(t *testing.T) {
	fake := testutils.NewFakeOrchestrator("")
	fake.SuiteAction = domain.SuiteActionSerializeSuiteMetadata
	configurator := &pingConfigurator{}

	result, err := newExecutor(t, fake, execution.ExecutorConfig{CustomParamsJSON: `{"peers": 3}`}, configurator).Run(testutils.TestContext(t))

	require.NoError(t, err)
	assert.Nil(t, result)
	assert.Equal(t, "debug", configurator.level)
	assert.EqualValues(t, 3, configurator.params["peers"])
	require.NotNil(t, fake.Metadata())
	assert.Len(t, fake.Metadata().TestMetadata, 2)
	assert.Equal(t, []string{grpcapi.MethodRegisterSuite, grpcapi.MethodSerializeSuiteMetadata}, fake.Calls())
}

func TestTestSuiteExecutor_ExecutesRequestedTest(t *testing.T) {
	fake := testutils.NewFakeOrchestrator("basic")

	result, err := newExecutor(t, fake, execution.ExecutorConfig{}, &pingConfigurator{}).Run(testutils.TestContext(t))

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.Passed())
	assert.Equal(t, "basic", result.TestName)
	assert.Contains(t, fake.Calls(), grpcapi.MethodRegisterTestExecution)
}

func TestTestSuiteExecutor_UnknownTest(t *testing.T) {
	fake := testutils.NewFakeOrchestrator("missing")

	result, err := newExecutor(t, fake, execution.ExecutorConfig{}, &pingConfigurator{}).Run(testutils.TestContext(t))

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrTestNotFound)
	assert.NotContains(t, fake.Calls(), grpcapi.MethodRegisterTestSetup)
}

func TestTestSuiteExecutor_FailedTestReturnsResult(t *testing.T) {
	fake := testutils.NewFakeOrchestrator("basic")
	fake.Fail(grpcapi.MethodStartService, errors.New("no capacity"))

	result, err := newExecutor(t, fake, execution.ExecutorConfig{}, &pingConfigurator{}).Run(testutils.TestContext(t))

	require.Error(t, err)
	require.NotNil(t, result)
	assert.Equal(t, domain.TestStateFailed, result.State)
	assert.ErrorIs(t, err, domain.ErrRegistration)
	assert.Equal(t, []domain.ServiceID{"db"}, fake.Removed())
}

func TestTestSuiteExecutor_RejectsBadInputsBeforeConnecting(t *testing.T) {
	tests := []struct {
		name     string
		cfg      execution.ExecutorConfig
		noSocket bool
	}{
		{name: "missing socket", cfg: execution.ExecutorConfig{LogLevel: "info"}, noSocket: true},
		{name: "bad log level", cfg: execution.ExecutorConfig{LogLevel: "chatty"}},
		{name: "malformed params", cfg: execution.ExecutorConfig{CustomParamsJSON: `{"peers":`}},
		{name: "trailing params", cfg: execution.ExecutorConfig{CustomParamsJSON: `{} {}`}},
		{name: "schema violation", cfg: execution.ExecutorConfig{CustomParamsJSON: `{"peers": 0}`}},
		{name: "unknown param", cfg: execution.ExecutorConfig{CustomParamsJSON: `{"validators": 2}`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			connected := false
			cfg := tt.cfg
			if !tt.noSocket {
				cfg.APISocket = testutils.BufnetTarget
			}
			if cfg.LogLevel == "" {
				cfg.LogLevel = "info"
			}
			executor := execution.NewTestSuiteExecutor(cfg, &pingConfigurator{},
				execution.WithConnectFunc(func(context.Context, string) (execution.Orchestrator, error) {
					connected = true
					return nil, errors.New("unexpected connect")
				}),
			)

			_, err := executor.Run(context.Background())

			assert.ErrorIs(t, err, domain.ErrConfiguration)
			assert.False(t, connected)
		})
	}
}

func TestValidateParams_WithoutSchemaOnlyChecksJSON(t *testing.T) {
	var configurator execution.TestSuiteConfigurator = schemalessConfigurator{}

	assert.NoError(t, execution.ValidateParams(configurator, `{"anything": [1, 2]}`))
	assert.ErrorIs(t, execution.ValidateParams(configurator, `nope`), domain.ErrConfiguration)
}

func TestValidateParams_InvalidSchema(t *testing.T) {
	err := execution.ValidateParams(brokenSchemaConfigurator{}, `{}`)

	var cfgErr *domain.ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "params schema", cfgErr.Field)
}

type schemalessConfigurator struct{}

func (schemalessConfigurator) SetLogLevel(string) error { return nil }
func (schemalessConfigurator) ParseParamsAndCreateSuite(string) (testsuite.TestSuite, error) {
	return twoTestSuite(), nil
}

type brokenSchemaConfigurator struct{ schemalessConfigurator }

func (brokenSchemaConfigurator) ParamsSchema() string { return `{"type": 12}` }
