// Package domain holds the value types and errors shared by the testnet client library.
package domain

// ServiceID identifies a service within one network. Ids are never reused after removal.
type ServiceID string

// PartitionID identifies a network partition.
type PartitionID string

// FilesArtifactID is the key a service uses to request a files artifact.
type FilesArtifactID string

// DefaultPartitionID is the implicit partition services join when none is named.
const DefaultPartitionID PartitionID = ""
