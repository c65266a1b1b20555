package domain

import (
	"fmt"
	"sort"
)

// PartitionConnection describes traffic policy between two partitions.
type PartitionConnection struct {
	IsBlocked bool `json:"is_blocked"`
}

// PartitionPair is an unordered pair of partitions, stored with A <= B.
type PartitionPair struct {
	A PartitionID `json:"a"`
	B PartitionID `json:"b"`
}

// NewPartitionPair returns the canonical pair for two partitions.
func NewPartitionPair(a, b PartitionID) PartitionPair {
	if b < a {
		a, b = b, a
	}
	return PartitionPair{A: a, B: b}
}

// PartitionTopology is a complete assignment of services to partitions plus
// the connection policy between them.
type PartitionTopology struct {
	PartitionServices    map[PartitionID]map[ServiceID]bool
	PartitionConnections map[PartitionPair]PartitionConnection
	DefaultConnection    PartitionConnection
}

// NewPartitionTopology returns an empty topology with the given default connection.
func NewPartitionTopology(isDefaultConnectionBlocked bool) PartitionTopology {
	return PartitionTopology{
		PartitionServices:    make(map[PartitionID]map[ServiceID]bool),
		PartitionConnections: make(map[PartitionPair]PartitionConnection),
		DefaultConnection:    PartitionConnection{IsBlocked: isDefaultConnectionBlocked},
	}
}

// Validate checks the structure of the topology: partition ids are non-empty,
// each service belongs to exactly one partition, and every connection joins
// two distinct declared partitions.
func (t PartitionTopology) Validate() error {
	owner := make(map[ServiceID]PartitionID)
	for _, partitionID := range t.sortedPartitions() {
		if partitionID == DefaultPartitionID {
			return &ConfigurationError{Field: "partition id", Reason: "partition id must not be empty"}
		}
		for serviceID := range t.PartitionServices[partitionID] {
			if existing, ok := owner[serviceID]; ok {
				return &ConfigurationError{
					Field:  "partition services",
					Reason: fmt.Sprintf("service %q is in both partition %q and %q", serviceID, existing, partitionID),
				}
			}
			owner[serviceID] = partitionID
		}
	}

	for pair := range t.PartitionConnections {
		if pair.A == pair.B {
			return &ConfigurationError{
				Field:  "partition connections",
				Reason: fmt.Sprintf("partition %q cannot have a connection to itself", pair.A),
			}
		}
		for _, p := range []PartitionID{pair.A, pair.B} {
			if _, ok := t.PartitionServices[p]; !ok {
				return &ConfigurationError{
					Field:  "partition connections",
					Reason: fmt.Sprintf("connection references undeclared partition %q", p),
				}
			}
		}
	}
	return nil
}

// ServicePartitions returns the partition each service is assigned to.
func (t PartitionTopology) ServicePartitions() map[ServiceID]PartitionID {
	result := make(map[ServiceID]PartitionID)
	for partitionID, serviceIDs := range t.PartitionServices {
		for serviceID := range serviceIDs {
			result[serviceID] = partitionID
		}
	}
	return result
}

func (t PartitionTopology) sortedPartitions() []PartitionID {
	ids := make([]PartitionID, 0, len(t.PartitionServices))
	for id := range t.PartitionServices {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
