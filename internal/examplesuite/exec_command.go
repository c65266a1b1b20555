package examplesuite

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/alessio/shellescape"
	"github.com/bnema/zerowrap"

	"github.com/bnema/testnet/pkg/domain"
	"github.com/bnema/testnet/pkg/networks"
	"github.com/bnema/testnet/pkg/testsuite"
)

const execServiceID domain.ServiceID = "exec"

var (
	execCmdThatSucceeds = []string{"true"}
	execCmdThatFails    = []string{"false"}
	execCmdWithOutput   = []string{"echo", "hello"}
	expectedExecOutput  = []byte("hello\n")
)

// ExecCommandTest checks exit codes and output of commands run inside a service.
type ExecCommandTest struct {
	image string
}

func (t *ExecCommandTest) Configure(b *testsuite.TestConfigurationBuilder) {
	b.WithSetupTimeout(30 * time.Second).WithRunTimeout(30 * time.Second)
}

func (t *ExecCommandTest) Setup(_ context.Context, nc *networks.NetworkContext) (networks.Network, error) {
	return nc, nil
}

func (t *ExecCommandTest) Run(ctx context.Context, network networks.Network, tc testsuite.TestContext) error {
	log := zerowrap.FromCtx(ctx)
	nc := network.(*networks.NetworkContext)

	if _, _, err := nc.AddService(ctx, execServiceID, ExecCmdFactory{image: t.image}); err != nil {
		return fmt.Errorf("start service %s: %w", execServiceID, err)
	}
	svc, err := networks.GetService[*ExecCmdService](nc, execServiceID)
	if err != nil {
		return err
	}

	code, _, err := svc.RunExecCmd(ctx, execCmdThatSucceeds)
	if err != nil {
		return err
	}
	tc.AssertTrue(code == 0, fmt.Errorf("%s should succeed, got exit code %d", shellescape.QuoteCommand(execCmdThatSucceeds), code))
	log.Info().Msg("successful command returned exit code 0")

	code, _, err = svc.RunExecCmd(ctx, execCmdThatFails)
	if err != nil {
		return err
	}
	tc.AssertTrue(code != 0, fmt.Errorf("%s should fail, got exit code 0", shellescape.QuoteCommand(execCmdThatFails)))
	log.Info().Int32("exit_code", code).Msg("failing command returned an error exit code")

	code, output, err := svc.RunExecCmd(ctx, execCmdWithOutput)
	if err != nil {
		return err
	}
	tc.AssertTrue(code == 0, fmt.Errorf("%s should succeed, got exit code %d", shellescape.QuoteCommand(execCmdWithOutput), code))
	tc.AssertTrue(bytes.Equal(output, expectedExecOutput), fmt.Errorf("expected output %q, got %q", expectedExecOutput, output))
	log.Info().Msg("command output matched")

	return nil
}
