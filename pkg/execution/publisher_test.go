package execution_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/testnet/internal/boundaries/out/mocks"
	"github.com/bnema/testnet/pkg/domain"
	"github.com/bnema/testnet/pkg/execution"
	"github.com/bnema/testnet/pkg/testsuite"
)

func twoTestSuite() staticSuite {
	return staticSuite{
		widthBits: 8,
		tests: map[string]testsuite.Test{
			"basic": &scriptedTest{},
			"partitioned": &scriptedTest{configure: func(b *testsuite.TestConfigurationBuilder) {
				b.WithPartitioningEnabled(true).
					WithRunTimeout(30 * time.Second).
					WithFilesArtifactURLs(map[domain.FilesArtifactID]string{
						"genesis": "https://example.com/genesis.tgz",
					})
			}},
		},
	}
}

func TestBuildSuiteMetadata(t *testing.T) {
	metadata, err := execution.BuildSuiteMetadata(twoTestSuite())
	require.NoError(t, err)

	assert.Equal(t, uint32(8), metadata.NetworkWidthBits)
	require.Len(t, metadata.TestMetadata, 2)

	basic := metadata.TestMetadata["basic"]
	assert.False(t, basic.IsPartitioningEnabled)
	assert.Empty(t, basic.UsedArtifactURLs)
	assert.Equal(t, uint32(5), basic.SetupTimeoutSeconds)

	partitioned := metadata.TestMetadata["partitioned"]
	assert.True(t, partitioned.IsPartitioningEnabled)
	assert.Equal(t, uint32(30), partitioned.RunTimeoutSeconds)
	assert.Equal(t, map[string]bool{"https://example.com/genesis.tgz": true}, partitioned.UsedArtifactURLs)
}

func TestMetadataPublisher_Publish(t *testing.T) {
	client := mocks.NewMockOrchestrator(t)
	client.On("SerializeSuiteMetadata", mock.Anything, mock.MatchedBy(func(m domain.SuiteMetadata) bool {
		return len(m.TestMetadata) == 2 && m.NetworkWidthBits == 8
	})).Return(nil).Once()

	require.NoError(t, execution.NewMetadataPublisher(client).Publish(context.Background(), twoTestSuite()))
}

func TestMetadataPublisher_PublishFailure(t *testing.T) {
	client := mocks.NewMockOrchestrator(t)
	client.On("SerializeSuiteMetadata", mock.Anything, mock.Anything).Return(errors.New("boom")).Once()

	err := execution.NewMetadataPublisher(client).Publish(context.Background(), twoTestSuite())

	assert.ErrorIs(t, err, domain.ErrRegistration)
}

func TestMetadataPublisher_ConfigurePanicFailsPublish(t *testing.T) {
	suite := twoTestSuite()
	suite.tests["broken"] = &scriptedTest{configure: func(*testsuite.TestConfigurationBuilder) {
		panic("bad configure")
	}}
	client := mocks.NewMockOrchestrator(t)

	var err error
	require.NotPanics(t, func() {
		err = execution.NewMetadataPublisher(client).Publish(context.Background(), suite)
	})

	assert.ErrorIs(t, err, domain.ErrInternalFault)
	assert.Contains(t, err.Error(), `"broken"`)
	client.AssertNotCalled(t, "SerializeSuiteMetadata", mock.Anything, mock.Anything)
}

func TestBuildSuiteMetadata_InvalidTimeout(t *testing.T) {
	suite := staticSuite{tests: map[string]testsuite.Test{
		"negative": &scriptedTest{configure: func(b *testsuite.TestConfigurationBuilder) {
			b.WithRunTimeout(-time.Second)
		}},
	}}

	_, err := execution.BuildSuiteMetadata(suite)

	assert.ErrorIs(t, err, domain.ErrConfiguration)
}
