package networks_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/testnet/pkg/domain"
	"github.com/bnema/testnet/pkg/networks"
)

func TestRepartitionerBuilder_Build(t *testing.T) {
	r, err := networks.NewRepartitionerBuilder(true).
		WithPartition("a", "s1").
		WithPartition("b", "s2", "s3").
		WithPartition("a", "s4").
		WithPartitionConnection("b", "a", false).
		Build()
	require.NoError(t, err)

	topology := r.Topology()
	assert.True(t, topology.DefaultConnection.IsBlocked)
	assert.Equal(t, map[domain.ServiceID]bool{"s1": true, "s4": true}, topology.PartitionServices["a"])
	assert.Equal(t, map[domain.ServiceID]bool{"s2": true, "s3": true}, topology.PartitionServices["b"])
	assert.Equal(t,
		map[domain.PartitionPair]domain.PartitionConnection{{A: "a", B: "b"}: {IsBlocked: false}},
		topology.PartitionConnections)
}

func TestRepartitionerBuilder_LaterConnectionWins(t *testing.T) {
	r, err := networks.NewRepartitionerBuilder(false).
		WithPartition("a").
		WithPartition("b").
		WithPartitionConnection("a", "b", true).
		WithPartitionConnection("b", "a", false).
		Build()
	require.NoError(t, err)

	assert.False(t, r.Topology().PartitionConnections[domain.NewPartitionPair("a", "b")].IsBlocked)
}

func TestRepartitionerBuilder_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		builder *networks.RepartitionerBuilder
	}{
		{
			name: "service in two partitions",
			builder: networks.NewRepartitionerBuilder(false).
				WithPartition("a", "s1").
				WithPartition("b", "s1"),
		},
		{
			name: "connection to undeclared partition",
			builder: networks.NewRepartitionerBuilder(false).
				WithPartition("a", "s1").
				WithPartitionConnection("a", "c", true),
		},
		{
			name: "self connection",
			builder: networks.NewRepartitionerBuilder(false).
				WithPartition("a", "s1").
				WithPartitionConnection("a", "a", true),
		},
		{
			name:    "empty partition id",
			builder: networks.NewRepartitionerBuilder(false).WithPartition("", "s1"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.builder.Build()
			assert.ErrorIs(t, err, domain.ErrConfiguration)
		})
	}
}

func TestRepartitioner_TopologyIsCopy(t *testing.T) {
	r, err := networks.NewRepartitionerBuilder(false).WithPartition("a", "s1").Build()
	require.NoError(t, err)

	topology := r.Topology()
	topology.PartitionServices["a"]["s2"] = true

	assert.Len(t, r.Topology().PartitionServices["a"], 1)
}

func TestRepartitionerBuilder_RedeclaredPartitionReplacesServices(t *testing.T) {
	r, err := networks.NewRepartitionerBuilder(false).
		WithPartition("a", "x").
		WithPartition("a", "y").
		Build()
	require.NoError(t, err)

	assert.Equal(t, map[domain.ServiceID]bool{"y": true}, r.Topology().PartitionServices["a"])
}
