package domain

import "time"

// RegisterServiceRequest reserves an IP and generated-file paths for a service.
type RegisterServiceRequest struct {
	ServiceID       ServiceID
	PartitionID     PartitionID
	FilesToGenerate map[string]bool
}

// RegisterServiceResult carries what the orchestrator allocated for a service.
// File paths are relative to the suite execution volume root.
type RegisterServiceResult struct {
	IPAddress                       string
	GeneratedFilesRelativeFilepaths map[string]string
}

// StartServiceRequest launches the container backing a registered service.
type StartServiceRequest struct {
	ServiceID                     ServiceID
	DockerImage                   string
	UsedPorts                     map[string]bool
	EntrypointArgs                []string
	CmdArgs                       []string
	EnvVars                       map[string]string
	SuiteExecutionVolMountDirpath string
	// FilesArtifactMountDirpaths maps artifact URL to the dirpath it is mounted at.
	FilesArtifactMountDirpaths map[string]string
}

// RemoveServiceRequest stops and removes a service's container.
type RemoveServiceRequest struct {
	ServiceID            ServiceID
	ContainerStopTimeout time.Duration
}

// ExecResult is the outcome of a command run inside a service container.
type ExecResult struct {
	ExitCode int32
	Output   []byte
}
