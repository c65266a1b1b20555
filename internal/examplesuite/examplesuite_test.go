package examplesuite

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/testnet/internal/boundaries/out"
	"github.com/bnema/testnet/internal/testutils"
	"github.com/bnema/testnet/pkg/domain"
	"github.com/bnema/testnet/pkg/execution"
)

type stubProber struct{ status int }

func (p stubProber) Probe(context.Context, string) (int, int64, error) { return p.status, 1, nil }

// shellLike answers exec commands the way an alpine container would, with
// ping failing while the client and server partitions are blocked.
func shellLike(fake *testutils.FakeOrchestrator) func(string, []string) (int32, []byte) {
	return func(_ string, args []string) (int32, []byte) {
		switch args[0] {
		case "true":
			return 0, nil
		case "false":
			return 1, nil
		case "echo":
			return 0, []byte(strings.Join(args[1:], " ") + "\n")
		case "ping":
			topologies := fake.Topologies()
			if len(topologies) == 0 {
				return 0, nil
			}
			conn := topologies[len(topologies)-1].PartitionConnections[domain.NewPartitionPair(clientPartition, serverPartition)]
			if conn.IsBlocked {
				return 1, []byte("1 packets transmitted, 0 received")
			}
			return 0, []byte("1 packets transmitted, 1 received")
		}
		return 127, []byte("command not found")
	}
}

func runSuite(t *testing.T, testName, params string, prober out.HTTPProber) (*execution.TestResult, *testutils.FakeOrchestrator, error) {
	t.Helper()
	fake := testutils.NewFakeOrchestrator(testName)
	fake.ExecHandler = shellLike(fake)

	var opts []ConfiguratorOption
	if prober != nil {
		opts = append(opts, WithProber(prober))
	}
	executor := execution.NewTestSuiteExecutor(execution.ExecutorConfig{
		APISocket:        testutils.BufnetTarget,
		CustomParamsJSON: params,
		LogLevel:         "debug",
	}, NewConfigurator(opts...),
		execution.WithConnectFunc(func(context.Context, string) (execution.Orchestrator, error) {
			return fake.Connect(t), nil
		}),
		execution.WithDriverOptions(execution.WithFs(afero.NewMemMapFs())),
	)
	result, err := executor.Run(testutils.TestContext(t))
	return result, fake, err
}

func TestExecCommandTest(t *testing.T) {
	result, fake, err := runSuite(t, ExecCommandTestName, "", nil)

	require.NoError(t, err)
	assert.True(t, result.Passed())
	req, ok := fake.Started(execServiceID)
	require.True(t, ok)
	assert.Equal(t, []string{"sleep"}, req.EntrypointArgs)
}

func TestExecCommandTest_WrongOutputFails(t *testing.T) {
	fake := testutils.NewFakeOrchestrator(ExecCommandTestName)
	fake.ExecHandler = func(string, []string) (int32, []byte) { return 0, nil }

	executor := execution.NewTestSuiteExecutor(execution.ExecutorConfig{
		APISocket: testutils.BufnetTarget,
		LogLevel:  "info",
	}, NewConfigurator(),
		execution.WithConnectFunc(func(context.Context, string) (execution.Orchestrator, error) {
			return fake.Connect(t), nil
		}),
		execution.WithDriverOptions(execution.WithFs(afero.NewMemMapFs())),
	)
	result, err := executor.Run(testutils.TestContext(t))

	assert.ErrorIs(t, err, domain.ErrTestAssertion)
	require.NotNil(t, result)
	assert.Equal(t, domain.TestStateFailed, result.State)
}

func TestNetworkPartitionTest(t *testing.T) {
	result, fake, err := runSuite(t, NetworkPartitionTestName, `{"isPartitioningSuite": true}`, nil)

	require.NoError(t, err)
	assert.True(t, result.Passed())
	topologies := fake.Topologies()
	require.Len(t, topologies, 2)
	pair := domain.NewPartitionPair(clientPartition, serverPartition)
	assert.True(t, topologies[0].PartitionConnections[pair].IsBlocked)
	assert.False(t, topologies[1].PartitionConnections[pair].IsBlocked)
}

func TestNetworkPartitionTest_OnlyInPartitioningSuite(t *testing.T) {
	_, _, err := runSuite(t, NetworkPartitionTestName, `{}`, nil)

	assert.ErrorIs(t, err, domain.ErrTestNotFound)
}

func TestEndpointAvailabilityTest(t *testing.T) {
	result, fake, err := runSuite(t, EndpointAvailabilityTestName, "", stubProber{status: http.StatusOK})

	require.NoError(t, err)
	assert.True(t, result.Passed())
	req, ok := fake.Started(webServiceID)
	require.True(t, ok)
	assert.Equal(t, []string{"sh", "-c"}, req.EntrypointArgs)
	require.Len(t, req.CmdArgs, 1)
	assert.Contains(t, req.CmdArgs[0], "/test-volume/services/web/index")
}

func TestConfigurator_RejectsUnknownParams(t *testing.T) {
	err := execution.ValidateParams(NewConfigurator(), `{"execImage": "busybox", "replicas": 3}`)

	assert.ErrorIs(t, err, domain.ErrConfiguration)
}

func TestConfigurator_AppliesDefaults(t *testing.T) {
	c := NewConfigurator()
	require.NoError(t, execution.ValidateParams(c, `{"networkWidthBits": 12}`))

	suite, err := c.ParseParamsAndCreateSuite(`{"networkWidthBits": 12}`)

	require.NoError(t, err)
	assert.Equal(t, uint32(12), suite.GetNetworkWidthBits())
	assert.Len(t, suite.GetTests(), 2)
	assert.Equal(t, defaultExecImage, suite.(*Suite).params.ExecImage)
}

func TestConfigurator_SetLogLevel(t *testing.T) {
	c := NewConfigurator()

	assert.NoError(t, c.SetLogLevel("warn"))
	assert.Error(t, c.SetLogLevel("loud"))
	t.Cleanup(func() { _ = c.SetLogLevel("debug") })
}
