package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/bnema/testnet/pkg/domain"
)

// MockOrchestrator is a mock implementation of out.Orchestrator
type MockOrchestrator struct {
	mock.Mock
}

// NewMockOrchestrator creates a MockOrchestrator whose expectations are asserted on cleanup.
func NewMockOrchestrator(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockOrchestrator {
	m := &MockOrchestrator{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Suite operations
func (m *MockOrchestrator) RegisterSuite(ctx context.Context) (domain.SuiteAction, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.SuiteAction), args.Error(1)
}

func (m *MockOrchestrator) SerializeSuiteMetadata(ctx context.Context, metadata domain.SuiteMetadata) error {
	args := m.Called(ctx, metadata)
	return args.Error(0)
}

// Test execution operations
func (m *MockOrchestrator) GetTestExecutionInfo(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockOrchestrator) RegisterTestSetup(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrchestrator) RegisterTestSetupCompletion(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrchestrator) RegisterTestExecution(ctx context.Context, timeout time.Duration) error {
	args := m.Called(ctx, timeout)
	return args.Error(0)
}

// Network operations
func (m *MockOrchestrator) RegisterService(ctx context.Context, req domain.RegisterServiceRequest) (*domain.RegisterServiceResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RegisterServiceResult), args.Error(1)
}

func (m *MockOrchestrator) StartService(ctx context.Context, req domain.StartServiceRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockOrchestrator) RemoveService(ctx context.Context, req domain.RemoveServiceRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockOrchestrator) Repartition(ctx context.Context, topology domain.PartitionTopology) error {
	args := m.Called(ctx, topology)
	return args.Error(0)
}

// Service operations
func (m *MockOrchestrator) ExecCommand(ctx context.Context, serviceID domain.ServiceID, cmdArgs []string) (*domain.ExecResult, error) {
	args := m.Called(ctx, serviceID, cmdArgs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExecResult), args.Error(1)
}

func (m *MockOrchestrator) GenerateFiles(ctx context.Context, serviceID domain.ServiceID, fileIDs map[string]bool) (map[string]string, error) {
	args := m.Called(ctx, serviceID, fileIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]string), args.Error(1)
}

func (m *MockOrchestrator) Close() error {
	args := m.Called()
	return args.Error(0)
}
