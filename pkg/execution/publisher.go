package execution

import (
	"context"
	"fmt"
	"sort"

	"github.com/bnema/zerowrap"

	"github.com/bnema/testnet/internal/boundaries/out"
	"github.com/bnema/testnet/pkg/domain"
	"github.com/bnema/testnet/pkg/testsuite"
)

// MetadataPublisher sends the description of every test in a suite.
type MetadataPublisher struct {
	sink out.MetadataSink
}

func NewMetadataPublisher(sink out.MetadataSink) *MetadataPublisher {
	return &MetadataPublisher{sink: sink}
}

// BuildSuiteMetadata configures every test of suite and collects its metadata.
// A Configure that panics or declares an invalid configuration fails the build.
func BuildSuiteMetadata(suite testsuite.TestSuite) (domain.SuiteMetadata, error) {
	tests := suite.GetTests()
	metadata := domain.SuiteMetadata{
		TestMetadata:     make(map[string]domain.TestMetadata, len(tests)),
		NetworkWidthBits: suite.GetNetworkWidthBits(),
	}
	for name, test := range tests {
		cfg, err := configure(test)
		if err != nil {
			return domain.SuiteMetadata{}, fmt.Errorf("configure test %q: %w", name, err)
		}
		metadata.TestMetadata[name] = domain.NewTestMetadata(cfg)
	}
	return metadata, nil
}

// Publish sends the suite metadata once. Failures are not retried.
func (p *MetadataPublisher) Publish(ctx context.Context, suite testsuite.TestSuite) error {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "execution",
		zerowrap.FieldUseCase: "PublishMetadata",
	})
	log := zerowrap.FromCtx(ctx)

	metadata, err := BuildSuiteMetadata(suite)
	if err != nil {
		return log.WrapErr(err, "failed to build suite metadata")
	}
	if err := p.sink.SerializeSuiteMetadata(ctx, metadata); err != nil {
		return log.WrapErr(&domain.RegistrationError{Operation: "serialize suite metadata", Cause: err}, "failed to publish suite metadata")
	}

	names := make([]string, 0, len(metadata.TestMetadata))
	for name := range metadata.TestMetadata {
		names = append(names, name)
	}
	sort.Strings(names)
	log.Info().Strs("tests", names).Uint32("network_width_bits", metadata.NetworkWidthBits).Msg("suite metadata published")
	return nil
}
