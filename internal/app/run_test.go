package app

import (
	"context"
	"testing"

	"github.com/bnema/zerowrap"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/testnet/internal/examplesuite"
	"github.com/bnema/testnet/internal/testutils"
	"github.com/bnema/testnet/pkg/domain"
	"github.com/bnema/testnet/pkg/execution"
)

func testConfig() Config {
	var cfg Config
	cfg.API.Socket = testutils.BufnetTarget
	cfg.Suite.Params = "{}"
	cfg.Suite.ExecutionVolume = execution.DefaultSuiteExVolMountpoint
	cfg.Suite.PhaseGrace = execution.DefaultPhaseGrace
	cfg.Suite.CompensateFailures = true
	cfg.Logging.Level = "debug"
	cfg.Logging.Format = "console"
	return cfg
}

func runWithFake(t *testing.T, fake *testutils.FakeOrchestrator) (Outcome, error) {
	t.Helper()
	return Run(testutils.TestContext(t), testConfig(), examplesuite.NewConfigurator(), zerowrap.Default(),
		WithExecutorOptions(
			execution.WithConnectFunc(func(context.Context, string) (execution.Orchestrator, error) {
				return fake.Connect(t), nil
			}),
			execution.WithDriverOptions(execution.WithFs(afero.NewMemMapFs())),
		),
	)
}

func TestRun_ExecutesTestAndSummarizes(t *testing.T) {
	fake := testutils.NewFakeOrchestrator(examplesuite.ExecCommandTestName)
	fake.ExecHandler = func(_ string, args []string) (int32, []byte) {
		switch args[0] {
		case "false":
			return 1, nil
		case "echo":
			return 0, []byte("hello\n")
		}
		return 0, nil
	}

	outcome, err := runWithFake(t, fake)

	require.NoError(t, err)
	require.NotNil(t, outcome.Result)
	assert.True(t, outcome.Result.Passed())
	assert.Equal(t, 1, outcome.Summary.ServicesAdded)
	assert.Equal(t, domain.TestStateCompleted, outcome.Summary.LastState)
}

func TestRun_PublishesMetadata(t *testing.T) {
	fake := testutils.NewFakeOrchestrator("")
	fake.SuiteAction = domain.SuiteActionSerializeSuiteMetadata

	outcome, err := runWithFake(t, fake)

	require.NoError(t, err)
	assert.Nil(t, outcome.Result)
	require.NotNil(t, fake.Metadata())
	assert.Contains(t, fake.Metadata().TestMetadata, examplesuite.ExecCommandTestName)
	assert.Equal(t, uint32(8), fake.Metadata().NetworkWidthBits)
}

func TestRunSummary_CountsNetworkEvents(t *testing.T) {
	s := &RunSummary{}
	events := []domain.Event{
		{Type: domain.EventServiceAdded},
		{Type: domain.EventServiceAdded},
		{Type: domain.EventServiceRemoved},
		{Type: domain.EventNetworkRepartitioned},
		{Type: domain.EventTestStateChanged, Data: domain.TestTransition{To: domain.TestStateFailed}},
	}
	for _, e := range events {
		require.True(t, s.CanHandle(e.Type))
		require.NoError(t, s.Handle(context.Background(), e))
	}

	assert.Equal(t, Counts{
		ServicesAdded:   2,
		ServicesRemoved: 1,
		Repartitions:    1,
		LastState:       domain.TestStateFailed,
	}, s.Counts())
	assert.False(t, s.CanHandle(domain.EventType("other")))
}
