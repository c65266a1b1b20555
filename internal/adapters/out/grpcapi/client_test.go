package grpcapi_test

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/bnema/zerowrap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/bnema/testnet/internal/adapters/out/grpcapi"
	"github.com/bnema/testnet/internal/testutils"
	"github.com/bnema/testnet/pkg/domain"
)

func TestClient_SuiteAndTestLifecycleCalls(t *testing.T) {
	fake := testutils.NewFakeOrchestrator("ping")
	client := fake.Connect(t)
	ctx := testutils.TestContext(t)

	action, err := client.RegisterSuite(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.SuiteActionExecuteTest, action)

	name, err := client.GetTestExecutionInfo(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ping", name)

	require.NoError(t, client.RegisterTestSetup(ctx))
	require.NoError(t, client.RegisterTestSetupCompletion(ctx))
	require.NoError(t, client.RegisterTestExecution(ctx, 90*time.Second))

	assert.Equal(t, 90*time.Second, fake.ExecutionTimeout())
	assert.Equal(t, []string{
		grpcapi.MethodRegisterSuite,
		grpcapi.MethodGetTestExecutionInfo,
		grpcapi.MethodRegisterTestSetup,
		grpcapi.MethodRegisterTestSetupCompletion,
		grpcapi.MethodRegisterTestExecution,
	}, fake.Calls())
}

func TestClient_SerializeSuiteMetadata(t *testing.T) {
	fake := testutils.NewFakeOrchestrator("")
	client := fake.Connect(t)

	md := domain.SuiteMetadata{
		TestMetadata: map[string]domain.TestMetadata{
			"ping": {
				IsPartitioningEnabled: true,
				UsedArtifactURLs:      map[string]bool{"https://example.com/a.tgz": true},
				SetupTimeoutSeconds:   60,
				RunTimeoutSeconds:     30,
			},
		},
		NetworkWidthBits: 8,
	}

	require.NoError(t, client.SerializeSuiteMetadata(testutils.TestContext(t), md))
	require.NotNil(t, fake.Metadata())
	assert.Equal(t, md, *fake.Metadata())
}

func TestClient_ServiceCalls(t *testing.T) {
	fake := testutils.NewFakeOrchestrator("")
	client := fake.Connect(t)
	ctx := testutils.TestContext(t)

	result, err := client.RegisterService(ctx, domain.RegisterServiceRequest{
		ServiceID:       "db",
		PartitionID:     "left",
		FilesToGenerate: map[string]bool{"config": true},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.IPAddress)
	assert.Equal(t, "services/db/config", result.GeneratedFilesRelativeFilepaths["config"])

	start := domain.StartServiceRequest{
		ServiceID:                     "db",
		DockerImage:                   "postgres:16",
		UsedPorts:                     map[string]bool{"5432/tcp": true},
		CmdArgs:                       []string{"postgres", "-c", "fsync=off"},
		EnvVars:                       map[string]string{"POSTGRES_PASSWORD": "test"},
		SuiteExecutionVolMountDirpath: "/suite-execution",
		FilesArtifactMountDirpaths:    map[string]string{"https://example.com/a.tgz": "/data"},
	}
	require.NoError(t, client.StartService(ctx, start))
	got, ok := fake.Started("db")
	require.True(t, ok)
	assert.Equal(t, start, got)

	exec, err := client.ExecCommand(ctx, "db", []string{"echo", "hi"})
	require.NoError(t, err)
	assert.Equal(t, int32(0), exec.ExitCode)

	paths, err := client.GenerateFiles(ctx, "db", map[string]bool{"seed": true})
	require.NoError(t, err)
	assert.Equal(t, "services/db/generated/seed", paths["seed"])

	require.NoError(t, client.RemoveService(ctx, domain.RemoveServiceRequest{ServiceID: "db", ContainerStopTimeout: time.Second}))
	assert.Equal(t, []domain.ServiceID{"db"}, fake.Removed())
}

func TestClient_RepartitionRoundTripsTopology(t *testing.T) {
	fake := testutils.NewFakeOrchestrator("")
	client := fake.Connect(t)

	topology := domain.NewPartitionTopology(true)
	topology.PartitionServices["left"] = map[domain.ServiceID]bool{"a": true}
	topology.PartitionServices["right"] = map[domain.ServiceID]bool{"b": true, "c": true}
	topology.PartitionConnections[domain.NewPartitionPair("right", "left")] = domain.PartitionConnection{IsBlocked: false}

	require.NoError(t, client.Repartition(testutils.TestContext(t), topology))
	require.Len(t, fake.Topologies(), 1)
	assert.Equal(t, topology, fake.Topologies()[0])
}

func TestClient_PropagatesServerErrors(t *testing.T) {
	fake := testutils.NewFakeOrchestrator("")
	fake.Failures[grpcapi.MethodStartService] = errors.New("no capacity")
	client := fake.Connect(t)

	err := client.StartService(testutils.TestContext(t), domain.StartServiceRequest{ServiceID: "db"})
	require.Error(t, err)
	assert.Equal(t, codes.Unavailable, status.Code(errors.Unwrap(err)))
	assert.Contains(t, err.Error(), grpcapi.MethodStartService)
}

func TestConnector_ExhaustsAttempts(t *testing.T) {
	refused := grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
		return nil, errors.New("connection refused")
	})
	cfg := grpcapi.ConnectorConfig{
		MaxAttempts:   3,
		RetryInterval: 10 * time.Millisecond,
		CallTimeout:   50 * time.Millisecond,
	}

	_, err := grpcapi.NewConnector(cfg, zerowrap.Default(), refused).Connect(testutils.TestContext(t), testutils.BufnetTarget)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConnection)
	var connErr *domain.ConnectionError
	require.ErrorAs(t, err, &connErr)
	assert.Equal(t, 3, connErr.Attempts)
	assert.Equal(t, testutils.BufnetTarget, connErr.Endpoint)
}

func TestDefaultConnectorConfig(t *testing.T) {
	cfg := grpcapi.DefaultConnectorConfig()
	assert.Equal(t, 20, cfg.MaxAttempts)
	assert.Equal(t, 500*time.Millisecond, cfg.RetryInterval)
	assert.Equal(t, 30*time.Second, cfg.CallTimeout)
}
