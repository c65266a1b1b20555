package testutils

import (
	"context"
	"fmt"
	"net"
	"path"
	"sync"
	"testing"
	"time"

	"github.com/bnema/zerowrap"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/bnema/testnet/internal/adapters/out/grpcapi"
	testnetv1 "github.com/bnema/testnet/internal/grpc"
	"github.com/bnema/testnet/pkg/domain"
)

// BufnetTarget is the dial target used with the fake orchestrator's dialer.
const BufnetTarget = "passthrough:///bufnet"

// FakeOrchestrator is an in-process orchestrator API served over bufconn.
// Exported fields configure responses and must be set before Connect.
type FakeOrchestrator struct {
	testnetv1.UnimplementedOrchestratorServer

	SuiteAction domain.SuiteAction
	TestName    string
	// Failures makes the named method return codes.Unavailable.
	Failures map[string]error
	// ExecHandler answers ExecCommand; a nil handler echoes the args with exit code 0.
	ExecHandler func(serviceID string, args []string) (int32, []byte)

	mu               sync.Mutex
	calls            []string
	nextIP           int
	metadata         *domain.SuiteMetadata
	executionTimeout time.Duration
	registered       map[domain.ServiceID]domain.PartitionID
	started          map[domain.ServiceID]domain.StartServiceRequest
	removed          []domain.ServiceID
	topologies       []domain.PartitionTopology
}

var _ testnetv1.OrchestratorServer = (*FakeOrchestrator)(nil)

// NewFakeOrchestrator creates a fake that asks the suite to execute testName.
func NewFakeOrchestrator(testName string) *FakeOrchestrator {
	return &FakeOrchestrator{
		SuiteAction: domain.SuiteActionExecuteTest,
		TestName:    testName,
		Failures:    make(map[string]error),
		registered:  make(map[domain.ServiceID]domain.PartitionID),
		started:     make(map[domain.ServiceID]domain.StartServiceRequest),
	}
}

// Start serves the fake until the test ends and returns a dialer option reaching it.
func (f *FakeOrchestrator) Start(t *testing.T) grpc.DialOption {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	testnetv1.RegisterOrchestratorServer(srv, f)
	go func() {
		_ = srv.Serve(lis)
	}()
	t.Cleanup(func() {
		srv.Stop()
		_ = lis.Close()
	})

	return grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
		return lis.DialContext(ctx)
	})
}

// Connect starts the fake and returns a connected client closed on cleanup.
func (f *FakeOrchestrator) Connect(t *testing.T) *grpcapi.Client {
	t.Helper()
	cfg := grpcapi.ConnectorConfig{
		MaxAttempts:   3,
		RetryInterval: 10 * time.Millisecond,
		CallTimeout:   5 * time.Second,
	}
	client, err := grpcapi.NewConnector(cfg, zerowrap.Default(), f.Start(t)).Connect(TestContext(t), BufnetTarget)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

// Fail makes method return codes.Unavailable until Recover is called.
func (f *FakeOrchestrator) Fail(method string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Failures[method] = err
}

// Recover clears the failure configured for method.
func (f *FakeOrchestrator) Recover(method string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.Failures, method)
}

// Calls returns the method names received so far, in order.
func (f *FakeOrchestrator) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

// Metadata returns the last suite metadata document received.
func (f *FakeOrchestrator) Metadata() *domain.SuiteMetadata {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.metadata
}

// ExecutionTimeout returns the timeout sent with RegisterTestExecution.
func (f *FakeOrchestrator) ExecutionTimeout() time.Duration {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.executionTimeout
}

// Started returns the start request received for a service.
func (f *FakeOrchestrator) Started(id domain.ServiceID) (domain.StartServiceRequest, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	req, ok := f.started[id]
	return req, ok
}

// Removed returns the removed service ids, in order.
func (f *FakeOrchestrator) Removed() []domain.ServiceID {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.ServiceID(nil), f.removed...)
}

// Topologies returns every topology received through Repartition.
func (f *FakeOrchestrator) Topologies() []domain.PartitionTopology {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.PartitionTopology(nil), f.topologies...)
}

func (f *FakeOrchestrator) record(method string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, method)
	if err, ok := f.Failures[method]; ok {
		return status.Error(codes.Unavailable, err.Error())
	}
	return nil
}

func (f *FakeOrchestrator) RegisterSuite(_ context.Context, _ *emptypb.Empty) (*testnetv1.RegisterSuiteResponse, error) {
	if err := f.record(grpcapi.MethodRegisterSuite); err != nil {
		return nil, err
	}
	return &testnetv1.RegisterSuiteResponse{SuiteAction: string(f.SuiteAction)}, nil
}

func (f *FakeOrchestrator) SerializeSuiteMetadata(_ context.Context, in *testnetv1.TestSuiteMetadata) (*emptypb.Empty, error) {
	if err := f.record(grpcapi.MethodSerializeSuiteMetadata); err != nil {
		return nil, err
	}
	md := grpcapi.SuiteMetadataFromProto(in)
	f.mu.Lock()
	f.metadata = &md
	f.mu.Unlock()
	return &emptypb.Empty{}, nil
}

func (f *FakeOrchestrator) GetTestExecutionInfo(_ context.Context, _ *emptypb.Empty) (*testnetv1.TestExecutionInfo, error) {
	if err := f.record(grpcapi.MethodGetTestExecutionInfo); err != nil {
		return nil, err
	}
	return &testnetv1.TestExecutionInfo{TestName: f.TestName}, nil
}

func (f *FakeOrchestrator) RegisterTestSetup(_ context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	if err := f.record(grpcapi.MethodRegisterTestSetup); err != nil {
		return nil, err
	}
	return &emptypb.Empty{}, nil
}

func (f *FakeOrchestrator) RegisterTestSetupCompletion(_ context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	if err := f.record(grpcapi.MethodRegisterTestSetupCompletion); err != nil {
		return nil, err
	}
	return &emptypb.Empty{}, nil
}

func (f *FakeOrchestrator) RegisterTestExecution(_ context.Context, in *testnetv1.RegisterTestExecutionArgs) (*emptypb.Empty, error) {
	if err := f.record(grpcapi.MethodRegisterTestExecution); err != nil {
		return nil, err
	}
	f.mu.Lock()
	f.executionTimeout = time.Duration(in.GetTimeoutSeconds()) * time.Second
	f.mu.Unlock()
	return &emptypb.Empty{}, nil
}

func (f *FakeOrchestrator) RegisterService(_ context.Context, in *testnetv1.RegisterServiceArgs) (*testnetv1.RegisterServiceResponse, error) {
	if err := f.record(grpcapi.MethodRegisterService); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	id := domain.ServiceID(in.GetServiceId())
	if _, exists := f.registered[id]; exists {
		return nil, status.Errorf(codes.AlreadyExists, "service %q already registered", id)
	}
	f.registered[id] = domain.PartitionID(in.GetPartitionId())
	f.nextIP++

	paths := make(map[string]string, len(in.GetFilesToGenerate()))
	for fileID := range in.GetFilesToGenerate() {
		paths[fileID] = path.Join("services", in.GetServiceId(), fileID)
	}
	return &testnetv1.RegisterServiceResponse{
		IpAddr:                          fmt.Sprintf("172.23.0.%d", f.nextIP+1),
		GeneratedFilesRelativeFilepaths: paths,
	}, nil
}

func (f *FakeOrchestrator) StartService(_ context.Context, in *testnetv1.StartServiceArgs) (*emptypb.Empty, error) {
	if err := f.record(grpcapi.MethodStartService); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	id := domain.ServiceID(in.GetServiceId())
	if _, ok := f.registered[id]; !ok {
		return nil, status.Errorf(codes.NotFound, "service %q was never registered", id)
	}
	f.started[id] = grpcapi.StartServiceRequestFromProto(in)
	return &emptypb.Empty{}, nil
}

func (f *FakeOrchestrator) RemoveService(_ context.Context, in *testnetv1.RemoveServiceArgs) (*emptypb.Empty, error) {
	if err := f.record(grpcapi.MethodRemoveService); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	id := domain.ServiceID(in.GetServiceId())
	if _, ok := f.registered[id]; !ok {
		return nil, status.Errorf(codes.NotFound, "service %q not found", id)
	}
	delete(f.started, id)
	f.removed = append(f.removed, id)
	return &emptypb.Empty{}, nil
}

func (f *FakeOrchestrator) Repartition(_ context.Context, in *testnetv1.RepartitionArgs) (*emptypb.Empty, error) {
	if err := f.record(grpcapi.MethodRepartition); err != nil {
		return nil, err
	}
	f.mu.Lock()
	f.topologies = append(f.topologies, grpcapi.TopologyFromProto(in))
	f.mu.Unlock()
	return &emptypb.Empty{}, nil
}

func (f *FakeOrchestrator) ExecCommand(_ context.Context, in *testnetv1.ExecCommandArgs) (*testnetv1.ExecCommandResponse, error) {
	if err := f.record(grpcapi.MethodExecCommand); err != nil {
		return nil, err
	}
	if f.ExecHandler != nil {
		code, output := f.ExecHandler(in.GetServiceId(), in.GetCommandArgs())
		return &testnetv1.ExecCommandResponse{ExitCode: code, LogOutput: output}, nil
	}
	return &testnetv1.ExecCommandResponse{LogOutput: []byte(fmt.Sprint(in.GetCommandArgs()))}, nil
}

func (f *FakeOrchestrator) GenerateFiles(_ context.Context, in *testnetv1.GenerateFilesArgs) (*testnetv1.GenerateFilesResponse, error) {
	if err := f.record(grpcapi.MethodGenerateFiles); err != nil {
		return nil, err
	}
	paths := make(map[string]string, len(in.GetFilesToGenerate()))
	for fileID := range in.GetFilesToGenerate() {
		paths[fileID] = path.Join("services", in.GetServiceId(), "generated", fileID)
	}
	return &testnetv1.GenerateFilesResponse{GeneratedFileRelativeFilepaths: paths}, nil
}
