// Package services defines how test code describes, starts and talks to the
// containers that make up a test network.
package services

// Service is the user-defined handle to a running container.
type Service interface {
	// IsAvailable reports whether the service is ready to accept work.
	IsAvailable() bool
}

// ServiceCreatingFunc wraps a started container in the user-defined Service type.
type ServiceCreatingFunc func(serviceCtx *ServiceContext) Service

// ContainerConfigFactory produces the configuration of one service container.
// The creation config is requested before the container has an IP address;
// the run config after the IP and generated file paths are known.
type ContainerConfigFactory interface {
	GetCreationConfig() (*ContainerCreationConfig, error)
	// GetRunConfig receives the container IP and, per generated file id, the
	// absolute path of that file inside the service container.
	GetRunConfig(containerIPAddr string, generatedFileFilepaths map[string]string) (*ContainerRunConfig, error)
}
