package grpcapi

import (
	"time"

	testnetv1 "github.com/bnema/testnet/internal/grpc"
	"github.com/bnema/testnet/pkg/domain"
)

func toProtoSuiteMetadata(md domain.SuiteMetadata) *testnetv1.TestSuiteMetadata {
	msg := &testnetv1.TestSuiteMetadata{
		TestMetadata:     make(map[string]*testnetv1.TestMetadata, len(md.TestMetadata)),
		NetworkWidthBits: md.NetworkWidthBits,
	}
	for name, tm := range md.TestMetadata {
		msg.TestMetadata[name] = &testnetv1.TestMetadata{
			IsPartitioningEnabled:     tm.IsPartitioningEnabled,
			UsedArtifactUrls:          tm.UsedArtifactURLs,
			TestSetupTimeoutInSeconds: tm.SetupTimeoutSeconds,
			TestRunTimeoutInSeconds:   tm.RunTimeoutSeconds,
		}
	}
	return msg
}

// SuiteMetadataFromProto converts a wire metadata document to the domain type.
func SuiteMetadataFromProto(msg *testnetv1.TestSuiteMetadata) domain.SuiteMetadata {
	md := domain.SuiteMetadata{
		TestMetadata:     make(map[string]domain.TestMetadata, len(msg.GetTestMetadata())),
		NetworkWidthBits: msg.GetNetworkWidthBits(),
	}
	for name, tm := range msg.GetTestMetadata() {
		if tm == nil {
			continue
		}
		md.TestMetadata[name] = domain.TestMetadata{
			IsPartitioningEnabled: tm.GetIsPartitioningEnabled(),
			UsedArtifactURLs:      tm.GetUsedArtifactUrls(),
			SetupTimeoutSeconds:   tm.GetTestSetupTimeoutInSeconds(),
			RunTimeoutSeconds:     tm.GetTestRunTimeoutInSeconds(),
		}
	}
	return md
}

func toProtoStartServiceArgs(req domain.StartServiceRequest) *testnetv1.StartServiceArgs {
	return &testnetv1.StartServiceArgs{
		ServiceId:                     string(req.ServiceID),
		DockerImage:                   req.DockerImage,
		UsedPorts:                     req.UsedPorts,
		EntrypointArgs:                req.EntrypointArgs,
		CmdArgs:                       req.CmdArgs,
		DockerEnvVars:                 req.EnvVars,
		SuiteExecutionVolMountDirpath: req.SuiteExecutionVolMountDirpath,
		FilesArtifactMountDirpaths:    req.FilesArtifactMountDirpaths,
	}
}

// StartServiceRequestFromProto converts wire start arguments to the domain type.
func StartServiceRequestFromProto(args *testnetv1.StartServiceArgs) domain.StartServiceRequest {
	return domain.StartServiceRequest{
		ServiceID:                     domain.ServiceID(args.GetServiceId()),
		DockerImage:                   args.GetDockerImage(),
		UsedPorts:                     args.GetUsedPorts(),
		EntrypointArgs:                args.GetEntrypointArgs(),
		CmdArgs:                       args.GetCmdArgs(),
		EnvVars:                       args.GetDockerEnvVars(),
		SuiteExecutionVolMountDirpath: args.GetSuiteExecutionVolMountDirpath(),
		FilesArtifactMountDirpaths:    args.GetFilesArtifactMountDirpaths(),
	}
}

// Connections are keyed by partition A then partition B of the canonical pair.
func toProtoRepartitionArgs(topology domain.PartitionTopology) *testnetv1.RepartitionArgs {
	args := &testnetv1.RepartitionArgs{
		PartitionServices:    make(map[string]*testnetv1.PartitionServices, len(topology.PartitionServices)),
		PartitionConnections: make(map[string]*testnetv1.PartitionConnections),
		DefaultConnection:    &testnetv1.PartitionConnectionInfo{IsBlocked: topology.DefaultConnection.IsBlocked},
	}
	for partitionID, serviceIDs := range topology.PartitionServices {
		set := make(map[string]bool, len(serviceIDs))
		for id := range serviceIDs {
			set[string(id)] = true
		}
		args.PartitionServices[string(partitionID)] = &testnetv1.PartitionServices{ServiceIdSet: set}
	}
	for pair, conn := range topology.PartitionConnections {
		inner, ok := args.PartitionConnections[string(pair.A)]
		if !ok {
			inner = &testnetv1.PartitionConnections{ConnectionInfo: make(map[string]*testnetv1.PartitionConnectionInfo)}
			args.PartitionConnections[string(pair.A)] = inner
		}
		inner.ConnectionInfo[string(pair.B)] = &testnetv1.PartitionConnectionInfo{IsBlocked: conn.IsBlocked}
	}
	return args
}

// TopologyFromProto converts wire repartition arguments to the domain type.
func TopologyFromProto(args *testnetv1.RepartitionArgs) domain.PartitionTopology {
	topology := domain.NewPartitionTopology(args.GetDefaultConnection().GetIsBlocked())
	for partitionID, services := range args.GetPartitionServices() {
		set := make(map[domain.ServiceID]bool)
		for id := range services.GetServiceIdSet() {
			set[domain.ServiceID(id)] = true
		}
		topology.PartitionServices[domain.PartitionID(partitionID)] = set
	}
	for partitionA, conns := range args.GetPartitionConnections() {
		for partitionB, info := range conns.GetConnectionInfo() {
			pair := domain.NewPartitionPair(domain.PartitionID(partitionA), domain.PartitionID(partitionB))
			topology.PartitionConnections[pair] = domain.PartitionConnection{IsBlocked: info.GetIsBlocked()}
		}
	}
	return topology
}

// durationSeconds rounds d up to whole seconds; non-positive durations are zero.
func durationSeconds(d time.Duration) uint64 {
	if d <= 0 {
		return 0
	}
	return uint64((d + time.Second - 1) / time.Second)
}
