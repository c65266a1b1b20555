// Package servicetest provides Service implementations for tests.
package servicetest

import (
	"sync/atomic"

	"github.com/bnema/testnet/pkg/domain"
	"github.com/bnema/testnet/pkg/services"
)

// Service becomes available on the Nth call to IsAvailable. A zero
// availableOnPoll means it never becomes available.
type Service struct {
	ctx             *services.ServiceContext
	availableOnPoll int64
	polls           atomic.Int64
}

var _ services.Service = (*Service)(nil)

func NewService(ctx *services.ServiceContext, availableOnPoll int) *Service {
	return &Service{ctx: ctx, availableOnPoll: int64(availableOnPoll)}
}

func (s *Service) IsAvailable() bool {
	n := s.polls.Add(1)
	return s.availableOnPoll > 0 && n >= s.availableOnPoll
}

// Polls returns how many times IsAvailable was called.
func (s *Service) Polls() int {
	return int(s.polls.Load())
}

func (s *Service) Context() *services.ServiceContext {
	return s.ctx
}

// Factory is a ContainerConfigFactory producing Services.
type Factory struct {
	Image           string
	UsedPorts       map[string]bool
	GeneratedFiles  map[string]services.FileInitializer
	FilesArtifacts  map[domain.FilesArtifactID]string
	AvailableOnPoll int
	Cmd             []string

	// RunConfigErr, when set, is returned by GetRunConfig.
	RunConfigErr error

	// Recorded by GetRunConfig.
	SeenIP        string
	SeenFilepaths map[string]string
}

var _ services.ContainerConfigFactory = (*Factory)(nil)

// TestVolumeMountpoint is where Factory services mount the suite volume.
const TestVolumeMountpoint = "/test-volume"

func (f *Factory) GetCreationConfig() (*services.ContainerCreationConfig, error) {
	image := f.Image
	if image == "" {
		image = "alpine:3.20"
	}
	b := services.NewContainerCreationConfigBuilder(image, TestVolumeMountpoint, func(ctx *services.ServiceContext) services.Service {
		return NewService(ctx, f.AvailableOnPoll)
	}).
		WithUsedPorts(f.UsedPorts).
		WithGeneratedFiles(f.GeneratedFiles)
	if f.FilesArtifacts != nil {
		b = b.WithFilesArtifacts(f.FilesArtifacts)
	}
	return b.Build()
}

func (f *Factory) GetRunConfig(containerIPAddr string, generatedFileFilepaths map[string]string) (*services.ContainerRunConfig, error) {
	f.SeenIP = containerIPAddr
	f.SeenFilepaths = generatedFileFilepaths
	if f.RunConfigErr != nil {
		return nil, f.RunConfigErr
	}
	return services.NewContainerRunConfigBuilder().
		WithCmdOverride(f.Cmd).
		WithEnvironmentVariableOverrides(map[string]string{"SERVICE_IP": containerIPAddr}).
		Build(), nil
}
