package testsuite

import (
	"time"

	"github.com/bnema/testnet/pkg/domain"
)

// TestConfigurationBuilder collects a test's configuration. A fresh builder
// carries the defaults: 180s setup, 180s run, partitioning off, no artifacts.
type TestConfigurationBuilder struct {
	setupTimeout          time.Duration
	runTimeout            time.Duration
	isPartitioningEnabled bool
	filesArtifactURLs     map[domain.FilesArtifactID]string
}

func NewTestConfigurationBuilder() *TestConfigurationBuilder {
	return &TestConfigurationBuilder{
		setupTimeout:      domain.DefaultSetupTimeout,
		runTimeout:        domain.DefaultRunTimeout,
		filesArtifactURLs: map[domain.FilesArtifactID]string{},
	}
}

func (b *TestConfigurationBuilder) WithSetupTimeout(timeout time.Duration) *TestConfigurationBuilder {
	b.setupTimeout = timeout
	return b
}

func (b *TestConfigurationBuilder) WithRunTimeout(timeout time.Duration) *TestConfigurationBuilder {
	b.runTimeout = timeout
	return b
}

func (b *TestConfigurationBuilder) WithPartitioningEnabled(enabled bool) *TestConfigurationBuilder {
	b.isPartitioningEnabled = enabled
	return b
}

// WithFilesArtifactURLs declares the artifacts services of this test may mount,
// keyed by the id services request them with.
func (b *TestConfigurationBuilder) WithFilesArtifactURLs(urls map[domain.FilesArtifactID]string) *TestConfigurationBuilder {
	b.filesArtifactURLs = make(map[domain.FilesArtifactID]string, len(urls))
	for id, url := range urls {
		b.filesArtifactURLs[id] = url
	}
	return b
}

// Build returns the collected configuration, or a ConfigurationError when a
// timeout is not positive.
func (b *TestConfigurationBuilder) Build() (domain.TestConfiguration, error) {
	urls := make(map[domain.FilesArtifactID]string, len(b.filesArtifactURLs))
	for id, url := range b.filesArtifactURLs {
		urls[id] = url
	}
	cfg := domain.TestConfiguration{
		SetupTimeout:          b.setupTimeout,
		RunTimeout:            b.runTimeout,
		IsPartitioningEnabled: b.isPartitioningEnabled,
		FilesArtifactURLs:     urls,
	}
	if err := cfg.Validate(); err != nil {
		return domain.TestConfiguration{}, err
	}
	return cfg, nil
}

// GetTestConfiguration runs test's Configure on a fresh builder.
func GetTestConfiguration(test Test) (domain.TestConfiguration, error) {
	builder := NewTestConfigurationBuilder()
	test.Configure(builder)
	return builder.Build()
}
