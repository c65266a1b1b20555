package services

import (
	"fmt"
	"io"
	"sort"

	"github.com/docker/go-connections/nat"

	"github.com/bnema/testnet/internal/validation"
	"github.com/bnema/testnet/pkg/domain"
)

// FileInitializer writes the initial contents of a generated file.
type FileInitializer func(w io.Writer) error

// ContainerCreationConfig is everything needed to register and start a container
// that does not depend on its IP address.
type ContainerCreationConfig struct {
	image                    string
	testVolumeMountpoint     string
	usedPorts                map[string]bool
	serviceCreatingFunc      ServiceCreatingFunc
	generatedFiles           map[string]FileInitializer
	filesArtifactMountpoints map[domain.FilesArtifactID]string
}

func (cfg *ContainerCreationConfig) Image() string { return cfg.image }

// TestVolumeMountpoint is where the suite execution volume is mounted inside the service.
func (cfg *ContainerCreationConfig) TestVolumeMountpoint() string { return cfg.testVolumeMountpoint }

// UsedPorts returns the normalized port specs, e.g. "8080/tcp".
func (cfg *ContainerCreationConfig) UsedPorts() map[string]bool {
	return copyMap(cfg.usedPorts)
}

func (cfg *ContainerCreationConfig) ServiceCreatingFunc() ServiceCreatingFunc {
	return cfg.serviceCreatingFunc
}

// GeneratedFiles returns the initializer for each generated file id.
func (cfg *ContainerCreationConfig) GeneratedFiles() map[string]FileInitializer {
	return copyMap(cfg.generatedFiles)
}

// FileIDsToGenerate returns the set of generated file ids.
func (cfg *ContainerCreationConfig) FileIDsToGenerate() map[string]bool {
	ids := make(map[string]bool, len(cfg.generatedFiles))
	for id := range cfg.generatedFiles {
		ids[id] = true
	}
	return ids
}

// FilesArtifactMountpoints returns, per artifact id, the dirpath it is mounted at.
func (cfg *ContainerCreationConfig) FilesArtifactMountpoints() map[domain.FilesArtifactID]string {
	return copyMap(cfg.filesArtifactMountpoints)
}

// ContainerCreationConfigBuilder builds a ContainerCreationConfig.
type ContainerCreationConfigBuilder struct {
	image                    string
	testVolumeMountpoint     string
	serviceCreatingFunc      ServiceCreatingFunc
	usedPorts                map[string]bool
	generatedFiles           map[string]FileInitializer
	filesArtifactMountpoints map[domain.FilesArtifactID]string
}

// NewContainerCreationConfigBuilder starts a creation config for image.
func NewContainerCreationConfigBuilder(image, testVolumeMountpoint string, serviceCreatingFunc ServiceCreatingFunc) *ContainerCreationConfigBuilder {
	return &ContainerCreationConfigBuilder{
		image:                    image,
		testVolumeMountpoint:     testVolumeMountpoint,
		serviceCreatingFunc:      serviceCreatingFunc,
		usedPorts:                map[string]bool{},
		generatedFiles:           map[string]FileInitializer{},
		filesArtifactMountpoints: map[domain.FilesArtifactID]string{},
	}
}

// WithUsedPorts sets the ports the container listens on ("80", "8080/tcp", "53/udp").
func (b *ContainerCreationConfigBuilder) WithUsedPorts(usedPorts map[string]bool) *ContainerCreationConfigBuilder {
	b.usedPorts = copyMap(usedPorts)
	return b
}

// WithGeneratedFiles sets the files to generate before start, keyed by file id.
func (b *ContainerCreationConfigBuilder) WithGeneratedFiles(initializers map[string]FileInitializer) *ContainerCreationConfigBuilder {
	b.generatedFiles = copyMap(initializers)
	return b
}

// WithFilesArtifacts sets the artifacts to mount, keyed by artifact id.
func (b *ContainerCreationConfigBuilder) WithFilesArtifacts(mountpoints map[domain.FilesArtifactID]string) *ContainerCreationConfigBuilder {
	b.filesArtifactMountpoints = copyMap(mountpoints)
	return b
}

// Build validates the accumulated settings and returns the config.
func (b *ContainerCreationConfigBuilder) Build() (*ContainerCreationConfig, error) {
	if err := validation.ValidateImage(b.image); err != nil {
		return nil, &domain.ConfigurationError{Field: "image", Reason: "invalid image reference", Cause: err}
	}
	if err := validation.ValidateMountpoint(b.testVolumeMountpoint); err != nil {
		return nil, &domain.ConfigurationError{Field: "test volume mountpoint", Reason: "invalid mountpoint", Cause: err}
	}
	if b.serviceCreatingFunc == nil {
		return nil, &domain.ConfigurationError{Field: "service creating func", Reason: "must not be nil"}
	}

	ports, err := normalizePorts(b.usedPorts)
	if err != nil {
		return nil, err
	}

	for id, init := range b.generatedFiles {
		if id == "" || init == nil {
			return nil, &domain.ConfigurationError{
				Field:  "generated files",
				Reason: fmt.Sprintf("file id %q needs a non-empty id and an initializer", id),
			}
		}
	}
	for id, mountpoint := range b.filesArtifactMountpoints {
		if err := validation.ValidateMountpoint(mountpoint); err != nil {
			return nil, &domain.ConfigurationError{
				Field:  "files artifact mountpoint",
				Reason: fmt.Sprintf("artifact %q", id),
				Cause:  err,
			}
		}
	}

	return &ContainerCreationConfig{
		image:                    b.image,
		testVolumeMountpoint:     b.testVolumeMountpoint,
		usedPorts:                ports,
		serviceCreatingFunc:      b.serviceCreatingFunc,
		generatedFiles:           copyMap(b.generatedFiles),
		filesArtifactMountpoints: copyMap(b.filesArtifactMountpoints),
	}, nil
}

// normalizePorts parses Docker port specs and rewrites them as "port/proto".
func normalizePorts(specs map[string]bool) (map[string]bool, error) {
	raw := make([]string, 0, len(specs))
	for spec, used := range specs {
		if used {
			raw = append(raw, spec)
		}
	}
	sort.Strings(raw)

	ports := make(map[string]bool, len(raw))
	for _, spec := range raw {
		proto, port := nat.SplitProtoPort(spec)
		p, err := nat.NewPort(proto, port)
		if err != nil {
			return nil, &domain.ConfigurationError{Field: "used ports", Reason: fmt.Sprintf("port %q", spec), Cause: err}
		}
		start, end, err := nat.ParsePortRangeToInt(p.Port())
		if err != nil || start != end || start == 0 {
			return nil, &domain.ConfigurationError{Field: "used ports", Reason: fmt.Sprintf("port %q must be a single non-zero port", spec)}
		}
		switch p.Proto() {
		case "tcp", "udp", "sctp":
		default:
			return nil, &domain.ConfigurationError{Field: "used ports", Reason: fmt.Sprintf("port %q has unknown protocol %q", spec, p.Proto())}
		}
		ports[string(p)] = true
	}
	return ports, nil
}

func copyMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
