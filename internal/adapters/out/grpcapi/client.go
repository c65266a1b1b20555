// Package grpcapi implements the orchestrator port over gRPC.
package grpcapi

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/zerowrap"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/bnema/testnet/internal/boundaries/out"
	testnetv1 "github.com/bnema/testnet/internal/grpc"
	"github.com/bnema/testnet/pkg/domain"
)

// Method names of the orchestrator API, as recorded in logs and errors.
const (
	MethodRegisterSuite               = "RegisterSuite"
	MethodSerializeSuiteMetadata      = "SerializeSuiteMetadata"
	MethodGetTestExecutionInfo        = "GetTestExecutionInfo"
	MethodRegisterTestSetup           = "RegisterTestSetup"
	MethodRegisterTestSetupCompletion = "RegisterTestSetupCompletion"
	MethodRegisterTestExecution       = "RegisterTestExecution"
	MethodRegisterService             = "RegisterService"
	MethodStartService                = "StartService"
	MethodRemoveService               = "RemoveService"
	MethodRepartition                 = "Repartition"
	MethodExecCommand                 = "ExecCommand"
	MethodGenerateFiles               = "GenerateFiles"
)

// Client implements out.Orchestrator over an established gRPC connection.
// Every RPC is bounded by the client's call timeout.
type Client struct {
	conn        *grpc.ClientConn
	api         testnetv1.OrchestratorClient
	endpoint    string
	callTimeout time.Duration
	log         zerowrap.Logger
}

// Compile-time interface check.
var _ out.Orchestrator = (*Client)(nil)

func newClient(conn *grpc.ClientConn, endpoint string, callTimeout time.Duration, log zerowrap.Logger) *Client {
	return &Client{
		conn:        conn,
		api:         testnetv1.NewOrchestratorClient(conn),
		endpoint:    endpoint,
		callTimeout: callTimeout,
		log:         log,
	}
}

// Endpoint returns the address the client is connected to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Close closes the underlying connection.
func (c *Client) Close() error {
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// call bounds one RPC by the call timeout, logs it and wraps its error with the method name.
func call[Resp any](ctx context.Context, c *Client, method string, rpc func(context.Context) (Resp, error)) (Resp, error) {
	if c.callTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.callTimeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := rpc(ctx)
	c.log.Debug().
		Str(zerowrap.FieldLayer, "adapter").
		Str(zerowrap.FieldAdapter, "grpcapi").
		Str(zerowrap.FieldMethod, method).
		Dur(zerowrap.FieldDuration, time.Since(start)).
		Bool("ok", err == nil).
		Msg("orchestrator call")
	if err != nil {
		var zero Resp
		return zero, fmt.Errorf("%s: %w", method, err)
	}
	return resp, nil
}

// RegisterSuite announces the suite and returns the action the orchestrator wants.
func (c *Client) RegisterSuite(ctx context.Context) (domain.SuiteAction, error) {
	resp, err := call(ctx, c, MethodRegisterSuite, func(ctx context.Context) (*testnetv1.RegisterSuiteResponse, error) {
		return c.api.RegisterSuite(ctx, &emptypb.Empty{})
	})
	if err != nil {
		return "", err
	}
	return domain.SuiteAction(resp.GetSuiteAction()), nil
}

func (c *Client) SerializeSuiteMetadata(ctx context.Context, metadata domain.SuiteMetadata) error {
	_, err := call(ctx, c, MethodSerializeSuiteMetadata, func(ctx context.Context) (*emptypb.Empty, error) {
		return c.api.SerializeSuiteMetadata(ctx, toProtoSuiteMetadata(metadata))
	})
	return err
}

func (c *Client) GetTestExecutionInfo(ctx context.Context) (string, error) {
	resp, err := call(ctx, c, MethodGetTestExecutionInfo, func(ctx context.Context) (*testnetv1.TestExecutionInfo, error) {
		return c.api.GetTestExecutionInfo(ctx, &emptypb.Empty{})
	})
	if err != nil {
		return "", err
	}
	return resp.GetTestName(), nil
}

func (c *Client) RegisterTestSetup(ctx context.Context) error {
	_, err := call(ctx, c, MethodRegisterTestSetup, func(ctx context.Context) (*emptypb.Empty, error) {
		return c.api.RegisterTestSetup(ctx, &emptypb.Empty{})
	})
	return err
}

func (c *Client) RegisterTestSetupCompletion(ctx context.Context) error {
	_, err := call(ctx, c, MethodRegisterTestSetupCompletion, func(ctx context.Context) (*emptypb.Empty, error) {
		return c.api.RegisterTestSetupCompletion(ctx, &emptypb.Empty{})
	})
	return err
}

func (c *Client) RegisterTestExecution(ctx context.Context, timeout time.Duration) error {
	req := &testnetv1.RegisterTestExecutionArgs{TimeoutSeconds: durationSeconds(timeout)}
	_, err := call(ctx, c, MethodRegisterTestExecution, func(ctx context.Context) (*emptypb.Empty, error) {
		return c.api.RegisterTestExecution(ctx, req)
	})
	return err
}

func (c *Client) RegisterService(ctx context.Context, req domain.RegisterServiceRequest) (*domain.RegisterServiceResult, error) {
	args := &testnetv1.RegisterServiceArgs{
		ServiceId:       string(req.ServiceID),
		PartitionId:     string(req.PartitionID),
		FilesToGenerate: req.FilesToGenerate,
	}
	resp, err := call(ctx, c, MethodRegisterService, func(ctx context.Context) (*testnetv1.RegisterServiceResponse, error) {
		return c.api.RegisterService(ctx, args)
	})
	if err != nil {
		return nil, err
	}
	return &domain.RegisterServiceResult{
		IPAddress:                       resp.GetIpAddr(),
		GeneratedFilesRelativeFilepaths: resp.GetGeneratedFilesRelativeFilepaths(),
	}, nil
}

func (c *Client) StartService(ctx context.Context, req domain.StartServiceRequest) error {
	_, err := call(ctx, c, MethodStartService, func(ctx context.Context) (*emptypb.Empty, error) {
		return c.api.StartService(ctx, toProtoStartServiceArgs(req))
	})
	return err
}

func (c *Client) RemoveService(ctx context.Context, req domain.RemoveServiceRequest) error {
	args := &testnetv1.RemoveServiceArgs{
		ServiceId:                   string(req.ServiceID),
		ContainerStopTimeoutSeconds: durationSeconds(req.ContainerStopTimeout),
	}
	_, err := call(ctx, c, MethodRemoveService, func(ctx context.Context) (*emptypb.Empty, error) {
		return c.api.RemoveService(ctx, args)
	})
	return err
}

func (c *Client) Repartition(ctx context.Context, topology domain.PartitionTopology) error {
	_, err := call(ctx, c, MethodRepartition, func(ctx context.Context) (*emptypb.Empty, error) {
		return c.api.Repartition(ctx, toProtoRepartitionArgs(topology))
	})
	return err
}

func (c *Client) ExecCommand(ctx context.Context, serviceID domain.ServiceID, args []string) (*domain.ExecResult, error) {
	req := &testnetv1.ExecCommandArgs{ServiceId: string(serviceID), CommandArgs: args}
	resp, err := call(ctx, c, MethodExecCommand, func(ctx context.Context) (*testnetv1.ExecCommandResponse, error) {
		return c.api.ExecCommand(ctx, req)
	})
	if err != nil {
		return nil, err
	}
	return &domain.ExecResult{ExitCode: resp.GetExitCode(), Output: resp.GetLogOutput()}, nil
}

func (c *Client) GenerateFiles(ctx context.Context, serviceID domain.ServiceID, fileIDs map[string]bool) (map[string]string, error) {
	req := &testnetv1.GenerateFilesArgs{ServiceId: string(serviceID), FilesToGenerate: fileIDs}
	resp, err := call(ctx, c, MethodGenerateFiles, func(ctx context.Context) (*testnetv1.GenerateFilesResponse, error) {
		return c.api.GenerateFiles(ctx, req)
	})
	if err != nil {
		return nil, err
	}
	return resp.GetGeneratedFileRelativeFilepaths(), nil
}
