package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPartitionPair_IsOrderIndependent(t *testing.T) {
	assert.Equal(t, NewPartitionPair("a", "b"), NewPartitionPair("b", "a"))
	assert.Equal(t, PartitionID("a"), NewPartitionPair("b", "a").A)
}

func TestPartitionTopology_Validate(t *testing.T) {
	tests := []struct {
		name    string
		build   func() PartitionTopology
		wantErr bool
	}{
		{
			name: "valid two partitions",
			build: func() PartitionTopology {
				topo := NewPartitionTopology(false)
				topo.PartitionServices["left"] = map[ServiceID]bool{"a": true}
				topo.PartitionServices["right"] = map[ServiceID]bool{"b": true}
				topo.PartitionConnections[NewPartitionPair("left", "right")] = PartitionConnection{IsBlocked: true}
				return topo
			},
		},
		{
			name: "service in two partitions",
			build: func() PartitionTopology {
				topo := NewPartitionTopology(false)
				topo.PartitionServices["left"] = map[ServiceID]bool{"a": true}
				topo.PartitionServices["right"] = map[ServiceID]bool{"a": true}
				return topo
			},
			wantErr: true,
		},
		{
			name: "connection to undeclared partition",
			build: func() PartitionTopology {
				topo := NewPartitionTopology(false)
				topo.PartitionServices["left"] = map[ServiceID]bool{"a": true}
				topo.PartitionConnections[NewPartitionPair("left", "ghost")] = PartitionConnection{}
				return topo
			},
			wantErr: true,
		},
		{
			name: "self connection",
			build: func() PartitionTopology {
				topo := NewPartitionTopology(false)
				topo.PartitionServices["left"] = map[ServiceID]bool{"a": true}
				topo.PartitionConnections[NewPartitionPair("left", "left")] = PartitionConnection{}
				return topo
			},
			wantErr: true,
		},
		{
			name: "empty partition id",
			build: func() PartitionTopology {
				topo := NewPartitionTopology(false)
				topo.PartitionServices[DefaultPartitionID] = map[ServiceID]bool{"a": true}
				return topo
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.build().Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrConfiguration))
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestPartitionTopology_ServicePartitions(t *testing.T) {
	topo := NewPartitionTopology(true)
	topo.PartitionServices["left"] = map[ServiceID]bool{"a": true, "b": true}
	topo.PartitionServices["right"] = map[ServiceID]bool{"c": true}

	assert.Equal(t, map[ServiceID]PartitionID{"a": "left", "b": "left", "c": "right"}, topo.ServicePartitions())
	assert.True(t, topo.DefaultConnection.IsBlocked)
}
