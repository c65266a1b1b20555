package examplesuite

import (
	"context"

	"github.com/bnema/testnet/pkg/services"
)

const testVolumeMountpoint = "/test-volume"

// ExecCmdService is an idle container commands are executed in.
type ExecCmdService struct {
	serviceCtx *services.ServiceContext
}

func (s *ExecCmdService) IsAvailable() bool { return true }

func (s *ExecCmdService) RunExecCmd(ctx context.Context, args []string) (int32, []byte, error) {
	return s.serviceCtx.ExecCommand(ctx, args)
}

// ExecCmdFactory starts an ExecCmdService that sleeps until it is removed.
type ExecCmdFactory struct {
	image string
}

func (f ExecCmdFactory) GetCreationConfig() (*services.ContainerCreationConfig, error) {
	return services.NewContainerCreationConfigBuilder(f.image, testVolumeMountpoint, func(ctx *services.ServiceContext) services.Service {
		return &ExecCmdService{serviceCtx: ctx}
	}).Build()
}

func (f ExecCmdFactory) GetRunConfig(string, map[string]string) (*services.ContainerRunConfig, error) {
	return services.NewContainerRunConfigBuilder().
		WithEntrypointOverride([]string{"sleep"}).
		WithCmdOverride([]string{"3600"}).
		Build(), nil
}
