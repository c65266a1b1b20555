package domain

import (
	"fmt"
	"math"
	"time"
)

// Test configuration defaults applied before a test configures itself.
const (
	DefaultSetupTimeout = 180 * time.Second
	DefaultRunTimeout   = 180 * time.Second
)

// TestConfiguration is what a test declares about itself before it runs.
type TestConfiguration struct {
	SetupTimeout          time.Duration
	RunTimeout            time.Duration
	IsPartitioningEnabled bool
	// FilesArtifactURLs maps the id a service requests an artifact by to the
	// URL the orchestrator downloads it from.
	FilesArtifactURLs map[FilesArtifactID]string
}

// Validate rejects timeouts the orchestrator cannot schedule.
func (c TestConfiguration) Validate() error {
	if c.SetupTimeout <= 0 {
		return &ConfigurationError{Field: "setup timeout", Reason: fmt.Sprintf("must be positive, got %s", c.SetupTimeout)}
	}
	if c.RunTimeout <= 0 {
		return &ConfigurationError{Field: "run timeout", Reason: fmt.Sprintf("must be positive, got %s", c.RunTimeout)}
	}
	return nil
}

// TimeoutSeconds rounds d up to whole seconds and clamps it to the uint32 range
// of the metadata document. Non-positive durations are zero.
func TimeoutSeconds(d time.Duration) uint32 {
	if d <= 0 {
		return 0
	}
	secs := int64(d / time.Second)
	if d%time.Second != 0 {
		secs++
	}
	if secs > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(secs)
}

// TestMetadata is the per-test entry of the suite metadata document.
type TestMetadata struct {
	IsPartitioningEnabled bool
	UsedArtifactURLs      map[string]bool
	SetupTimeoutSeconds   uint32
	RunTimeoutSeconds     uint32
}

// NewTestMetadata derives the published metadata for one test configuration.
func NewTestMetadata(cfg TestConfiguration) TestMetadata {
	urls := make(map[string]bool, len(cfg.FilesArtifactURLs))
	for _, url := range cfg.FilesArtifactURLs {
		urls[url] = true
	}
	return TestMetadata{
		IsPartitioningEnabled: cfg.IsPartitioningEnabled,
		UsedArtifactURLs:      urls,
		SetupTimeoutSeconds:   TimeoutSeconds(cfg.SetupTimeout),
		RunTimeoutSeconds:     TimeoutSeconds(cfg.RunTimeout),
	}
}

// SuiteMetadata describes every test in a suite for the orchestrator.
type SuiteMetadata struct {
	TestMetadata     map[string]TestMetadata
	NetworkWidthBits uint32
}

// SuiteAction is what the orchestrator asks a freshly registered suite to do.
type SuiteAction string

const (
	SuiteActionSerializeSuiteMetadata SuiteAction = "serialize_suite_metadata"
	SuiteActionExecuteTest            SuiteAction = "execute_test"
)

// Valid reports whether the action is one the client knows how to perform.
func (a SuiteAction) Valid() bool {
	return a == SuiteActionSerializeSuiteMetadata || a == SuiteActionExecuteTest
}
