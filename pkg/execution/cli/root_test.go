package cli

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/testnet/internal/app"
	"github.com/bnema/testnet/internal/examplesuite"
	"github.com/bnema/testnet/internal/testutils"
	"github.com/bnema/testnet/pkg/domain"
	"github.com/bnema/testnet/pkg/execution"
	"github.com/bnema/testnet/pkg/version"
)

func init() {
	color.NoColor = true
}

func fakeRunOption(t *testing.T, fake *testutils.FakeOrchestrator) Option {
	return WithExecutorOptions(
		execution.WithConnectFunc(func(context.Context, string) (execution.Orchestrator, error) {
			return fake.Connect(t), nil
		}),
		execution.WithDriverOptions(execution.WithFs(afero.NewMemMapFs())),
	)
}

func TestRootCmd_PublishesMetadata(t *testing.T) {
	fake := testutils.NewFakeOrchestrator("")
	fake.SuiteAction = domain.SuiteActionSerializeSuiteMetadata

	cmd := NewRootCmd(examplesuite.NewConfigurator(), fakeRunOption(t, fake))
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetArgs([]string{"--api-socket", testutils.BufnetTarget, "--log-level", "info", "--params", `{"isPartitioningSuite": true}`})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, stdout.String(), "OK suite metadata published")
	require.NotNil(t, fake.Metadata())
	assert.Contains(t, fake.Metadata().TestMetadata, examplesuite.NetworkPartitionTestName)
}

func TestRootCmd_RequiresSocketAndLevel(t *testing.T) {
	t.Setenv(app.EnvAPISocket, "")
	t.Setenv(app.EnvLogLevel, "")

	cmd := NewRootCmd(examplesuite.NewConfigurator())
	var stderr bytes.Buffer
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"--log-level", "info"})

	err := cmd.Execute()

	assert.ErrorIs(t, err, domain.ErrConfiguration)
	assert.Contains(t, stderr.String(), "ERROR")
}

func TestRootCmd_ReportsConfigLoadFailure(t *testing.T) {
	cmd := NewRootCmd(examplesuite.NewConfigurator())
	var stderr bytes.Buffer
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"--env-file", filepath.Join(t.TempDir(), "missing.env"), "--api-socket", testutils.BufnetTarget, "--log-level", "info"})

	err := cmd.Execute()

	require.Error(t, err)
	assert.Contains(t, stderr.String(), "ERROR failed to load env file")
}

func TestRootCmd_FailedTestReturnsError(t *testing.T) {
	fake := testutils.NewFakeOrchestrator("missing")

	cmd := NewRootCmd(examplesuite.NewConfigurator(), fakeRunOption(t, fake))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--api-socket", testutils.BufnetTarget, "--log-level", "info"})

	assert.ErrorIs(t, cmd.Execute(), domain.ErrTestNotFound)
}

func TestVersionCmd(t *testing.T) {
	version.Set("1.2.3", "abc123", "2026-10-01")
	t.Cleanup(func() { version.Set("dev", "unknown", "unknown") })

	cmd := NewRootCmd(examplesuite.NewConfigurator())
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "testnet 1.2.3 (commit abc123, built 2026-10-01)\n", stdout.String())
}

func TestWriteOutcome(t *testing.T) {
	tests := []struct {
		name    string
		outcome app.Outcome
		err     error
		want    string
	}{
		{
			name: "passed",
			outcome: app.Outcome{
				Result:  &execution.TestResult{TestName: "execCommandTest", State: domain.TestStateCompleted, Duration: 1500 * time.Millisecond},
				Summary: app.Counts{ServicesAdded: 2},
			},
			want: "PASS execCommandTest in 1.5s services 2\n",
		},
		{
			name: "failed",
			outcome: app.Outcome{
				Result: &execution.TestResult{TestName: "execCommandTest", State: domain.TestStateFailed, Err: errors.New("boom"), Duration: time.Second},
			},
			err:  errors.New("test failed"),
			want: "FAIL execCommandTest: boom in 1s\n",
		},
		{
			name: "fatal",
			err:  errors.New("no orchestrator"),
			want: "ERROR no orchestrator\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, writeOutcome(&buf, tt.outcome, tt.err))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}
