// Package out defines output ports (interfaces) for infrastructure.
// These interfaces define the contract between the client library and the
// driven adapters that talk to the orchestrator.
package out

import (
	"context"
	"time"

	"github.com/bnema/testnet/pkg/domain"
)

// SuiteRegistry announces a testsuite to the orchestrator.
type SuiteRegistry interface {
	// RegisterSuite tells the orchestrator the suite is up and returns what it should do.
	RegisterSuite(ctx context.Context) (domain.SuiteAction, error)
}

// MetadataSink receives the suite metadata document.
type MetadataSink interface {
	SerializeSuiteMetadata(ctx context.Context, metadata domain.SuiteMetadata) error
}

// TestExecutionReporter reports test lifecycle progress to the orchestrator.
type TestExecutionReporter interface {
	// GetTestExecutionInfo returns the name of the test this process must run.
	GetTestExecutionInfo(ctx context.Context) (string, error)
	RegisterTestSetup(ctx context.Context) error
	RegisterTestSetupCompletion(ctx context.Context) error
	RegisterTestExecution(ctx context.Context, timeout time.Duration) error
}

// NetworkOrchestrator manages the services and partitions of a test network.
type NetworkOrchestrator interface {
	RegisterService(ctx context.Context, req domain.RegisterServiceRequest) (*domain.RegisterServiceResult, error)
	StartService(ctx context.Context, req domain.StartServiceRequest) error
	RemoveService(ctx context.Context, req domain.RemoveServiceRequest) error
	Repartition(ctx context.Context, topology domain.PartitionTopology) error
}

// ServiceCommander runs operations inside an already started service.
type ServiceCommander interface {
	ExecCommand(ctx context.Context, serviceID domain.ServiceID, args []string) (*domain.ExecResult, error)
	// GenerateFiles returns, per requested file id, a path relative to the suite execution volume.
	GenerateFiles(ctx context.Context, serviceID domain.ServiceID, fileIDs map[string]bool) (map[string]string, error)
}

// NetworkClient is the part of the orchestrator API a test network uses.
type NetworkClient interface {
	NetworkOrchestrator
	ServiceCommander
}

// Orchestrator is the full remote API consumed by a testsuite process.
type Orchestrator interface {
	SuiteRegistry
	MetadataSink
	TestExecutionReporter
	NetworkOrchestrator
	ServiceCommander
	Close() error
}
