package grpcapi

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"

	testnetv1 "github.com/bnema/testnet/internal/grpc"
	"github.com/bnema/testnet/pkg/domain"
)

func TestRepartitionArgs_SurviveProtobufEncoding(t *testing.T) {
	topology := domain.NewPartitionTopology(true)
	topology.PartitionServices["left"] = map[domain.ServiceID]bool{"a": true}
	topology.PartitionServices["right"] = map[domain.ServiceID]bool{"b": true}
	topology.PartitionConnections[domain.NewPartitionPair("left", "right")] = domain.PartitionConnection{IsBlocked: false}

	wire, err := proto.Marshal(toProtoRepartitionArgs(topology))
	require.NoError(t, err)

	decoded := &testnetv1.RepartitionArgs{}
	require.NoError(t, proto.Unmarshal(wire, decoded))
	assert.Equal(t, topology, TopologyFromProto(decoded))
}

func TestSuiteMetadata_SurvivesProtobufEncoding(t *testing.T) {
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

	wire, err := proto.Marshal(toProtoSuiteMetadata(md))
	require.NoError(t, err)

	decoded := &testnetv1.TestSuiteMetadata{}
	require.NoError(t, proto.Unmarshal(wire, decoded))
	assert.Equal(t, md, SuiteMetadataFromProto(decoded))
}

func TestOrchestratorServiceDescriptor(t *testing.T) {
	svc := testnetv1.File_testnet_v1_orchestrator_proto.Services().ByName("Orchestrator")
	require.NotNil(t, svc)
	assert.Equal(t, "testnet.v1.Orchestrator", string(svc.FullName()))
	assert.Equal(t, 12, svc.Methods().Len())
	assert.Equal(t, testnetv1.Orchestrator_ServiceDesc.ServiceName, string(svc.FullName()))
}

func TestDurationSeconds(t *testing.T) {
	tests := []struct {
		name string
		in   time.Duration
		want uint64
	}{
		{"negative", -time.Second, 0},
		{"zero", 0, 0},
		{"sub second rounds up", 100 * time.Millisecond, 1},
		{"whole seconds", 90 * time.Second, 90},
		{"fraction rounds up", 1500 * time.Millisecond, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, durationSeconds(tt.in))
		})
	}
}
