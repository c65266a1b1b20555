package networks

import (
	"github.com/bnema/testnet/pkg/domain"
)

// Repartitioner is a validated partition topology ready to be applied to a network.
type Repartitioner struct {
	topology domain.PartitionTopology
}

// Topology returns a copy of the topology the repartitioner applies.
func (r *Repartitioner) Topology() domain.PartitionTopology {
	return copyTopology(r.topology)
}

// RepartitionerBuilder declares partitions and the connections between them.
// Mutators are applied in call order when Build is called.
type RepartitionerBuilder struct {
	isDefaultConnectionBlocked bool
	mutators                   []func(*domain.PartitionTopology)
}

func NewRepartitionerBuilder(isDefaultConnectionBlocked bool) *RepartitionerBuilder {
	return &RepartitionerBuilder{isDefaultConnectionBlocked: isDefaultConnectionBlocked}
}

// WithPartition declares partition with exactly serviceIDs. Declaring the
// same partition again replaces its service set.
func (b *RepartitionerBuilder) WithPartition(partition domain.PartitionID, serviceIDs ...domain.ServiceID) *RepartitionerBuilder {
	ids := append([]domain.ServiceID(nil), serviceIDs...)
	b.mutators = append(b.mutators, func(t *domain.PartitionTopology) {
		set := make(map[domain.ServiceID]bool, len(ids))
		for _, id := range ids {
			set[id] = true
		}
		t.PartitionServices[partition] = set
	})
	return b
}

// WithPartitionConnection sets the policy between two partitions, overriding
// the default connection. The pair is unordered.
func (b *RepartitionerBuilder) WithPartitionConnection(a, c domain.PartitionID, isBlocked bool) *RepartitionerBuilder {
	b.mutators = append(b.mutators, func(t *domain.PartitionTopology) {
		t.PartitionConnections[domain.NewPartitionPair(a, c)] = domain.PartitionConnection{IsBlocked: isBlocked}
	})
	return b
}

// Build applies the mutators to an empty topology and validates its structure.
func (b *RepartitionerBuilder) Build() (*Repartitioner, error) {
	topology := domain.NewPartitionTopology(b.isDefaultConnectionBlocked)
	for _, mutate := range b.mutators {
		mutate(&topology)
	}
	if err := topology.Validate(); err != nil {
		return nil, err
	}
	return &Repartitioner{topology: topology}, nil
}

func copyTopology(t domain.PartitionTopology) domain.PartitionTopology {
	out := domain.NewPartitionTopology(t.DefaultConnection.IsBlocked)
	for partition, ids := range t.PartitionServices {
		set := make(map[domain.ServiceID]bool, len(ids))
		for id, v := range ids {
			set[id] = v
		}
		out.PartitionServices[partition] = set
	}
	for pair, conn := range t.PartitionConnections {
		out.PartitionConnections[pair] = conn
	}
	return out
}
