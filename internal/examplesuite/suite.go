package examplesuite

import (
	"github.com/bnema/testnet/internal/boundaries/out"
	"github.com/bnema/testnet/pkg/testsuite"
)

// Test names, as the orchestrator requests them.
const (
	ExecCommandTestName          = "execCommandTest"
	NetworkPartitionTestName     = "networkPartitionTest"
	EndpointAvailabilityTestName = "endpointAvailabilityTest"
)

// Suite is the example testsuite.
type Suite struct {
	params Params
	prober out.HTTPProber
}

func (s *Suite) GetTests() map[string]testsuite.Test {
	tests := map[string]testsuite.Test{
		ExecCommandTestName:          &ExecCommandTest{image: s.params.ExecImage},
		EndpointAvailabilityTestName: &EndpointAvailabilityTest{image: s.params.WebImage, prober: s.prober},
	}
	if s.params.IsPartitioningSuite {
		tests[NetworkPartitionTestName] = &NetworkPartitionTest{image: s.params.ExecImage}
	}
	return tests
}

func (s *Suite) GetNetworkWidthBits() uint32 { return s.params.NetworkWidthBits }
