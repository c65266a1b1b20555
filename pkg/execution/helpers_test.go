package execution_test

import (
	"context"
	"time"

	"github.com/bnema/testnet/pkg/networks"
	"github.com/bnema/testnet/pkg/services/servicetest"
	"github.com/bnema/testnet/pkg/testsuite"
)

// scriptedTest is a Test whose phases are supplied as functions.
type scriptedTest struct {
	configure func(*testsuite.TestConfigurationBuilder)
	setup     func(ctx context.Context, nc *networks.NetworkContext) (networks.Network, error)
	run       func(ctx context.Context, network networks.Network, tc testsuite.TestContext) error
}

func (s *scriptedTest) Configure(b *testsuite.TestConfigurationBuilder) {
	b.WithSetupTimeout(5 * time.Second).WithRunTimeout(5 * time.Second)
	if s.configure != nil {
		s.configure(b)
	}
}

func (s *scriptedTest) Setup(ctx context.Context, nc *networks.NetworkContext) (networks.Network, error) {
	if s.setup != nil {
		return s.setup(ctx, nc)
	}
	if _, _, err := nc.AddService(ctx, "db", &servicetest.Factory{AvailableOnPoll: 1}); err != nil {
		return nil, err
	}
	return nc, nil
}

func (s *scriptedTest) Run(ctx context.Context, network networks.Network, tc testsuite.TestContext) error {
	if s.run != nil {
		return s.run(ctx, network, tc)
	}
	return nil
}

type staticSuite struct {
	tests     map[string]testsuite.Test
	widthBits uint32
}

func (s staticSuite) GetTests() map[string]testsuite.Test { return s.tests }
func (s staticSuite) GetNetworkWidthBits() uint32         { return s.widthBits }
