// Package testsuite defines the contract between test-writing code and the
// execution engine: tests, suites, their configuration and assertions.
package testsuite

import (
	"context"

	"github.com/bnema/testnet/pkg/networks"
)

// Test is one integration test of a suite.
type Test interface {
	// Configure declares the test's timeouts, partitioning and artifacts.
	Configure(builder *TestConfigurationBuilder)

	// Setup builds the services the test needs and returns the test's view of
	// the network.
	Setup(ctx context.Context, networkCtx *networks.NetworkContext) (networks.Network, error)

	// Run exercises the network returned by Setup.
	Run(ctx context.Context, network networks.Network, testCtx TestContext) error
}

// TestSuite is the set of tests one testsuite image provides.
type TestSuite interface {
	GetTests() map[string]Test
	// GetNetworkWidthBits sizes the subnet the orchestrator allocates per test.
	GetNetworkWidthBits() uint32
}
