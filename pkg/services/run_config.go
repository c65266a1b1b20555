package services

// ContainerRunConfig holds the settings that depend on the container's IP and
// generated file paths. Nil overrides keep the image defaults.
type ContainerRunConfig struct {
	entrypointOverride  []string
	cmdOverride         []string
	environmentOverride map[string]string
}

func (cfg *ContainerRunConfig) EntrypointOverride() []string { return cfg.entrypointOverride }

func (cfg *ContainerRunConfig) CmdOverride() []string { return cfg.cmdOverride }

func (cfg *ContainerRunConfig) EnvironmentVariableOverrides() map[string]string {
	return copyMap(cfg.environmentOverride)
}

// ContainerRunConfigBuilder builds a ContainerRunConfig.
type ContainerRunConfigBuilder struct {
	entrypointOverride  []string
	cmdOverride         []string
	environmentOverride map[string]string
}

func NewContainerRunConfigBuilder() *ContainerRunConfigBuilder {
	return &ContainerRunConfigBuilder{
		environmentOverride: map[string]string{},
	}
}

func (b *ContainerRunConfigBuilder) WithEntrypointOverride(args []string) *ContainerRunConfigBuilder {
	b.entrypointOverride = append([]string(nil), args...)
	return b
}

func (b *ContainerRunConfigBuilder) WithCmdOverride(args []string) *ContainerRunConfigBuilder {
	b.cmdOverride = append([]string(nil), args...)
	return b
}

func (b *ContainerRunConfigBuilder) WithEnvironmentVariableOverrides(env map[string]string) *ContainerRunConfigBuilder {
	b.environmentOverride = copyMap(env)
	return b
}

func (b *ContainerRunConfigBuilder) Build() *ContainerRunConfig {
	return &ContainerRunConfig{
		entrypointOverride:  b.entrypointOverride,
		cmdOverride:         b.cmdOverride,
		environmentOverride: copyMap(b.environmentOverride),
	}
}
