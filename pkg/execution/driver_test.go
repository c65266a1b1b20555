package execution_test

import (
	"context"
	"errors"
	"runtime"
	"testing"
	"time"

	"github.com/bnema/zerowrap"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/suite"

	"github.com/bnema/testnet/internal/adapters/out/eventbus"
	"github.com/bnema/testnet/internal/adapters/out/grpcapi"
	"github.com/bnema/testnet/internal/testutils"
	"github.com/bnema/testnet/pkg/domain"
	"github.com/bnema/testnet/pkg/execution"
	"github.com/bnema/testnet/pkg/networks"
	"github.com/bnema/testnet/pkg/services/servicetest"
	"github.com/bnema/testnet/pkg/testsuite"
)

type DriverSuite struct {
	suite.Suite
	ctx    context.Context
	fake   *testutils.FakeOrchestrator
	client *grpcapi.Client
	bus    *eventbus.InMemory
	events *eventbus.Recorder
}

func TestDriverSuite(t *testing.T) {
	suite.Run(t, new(DriverSuite))
}

func (s *DriverSuite) SetupTest() {
	s.ctx = testutils.TestContext(s.T())
	s.fake = testutils.NewFakeOrchestrator("ping")
	s.client = s.fake.Connect(s.T())

	s.bus = eventbus.NewInMemory(32, zerowrap.Default())
	s.events = eventbus.NewRecorder(domain.EventTestStateChanged)
	s.Require().NoError(s.bus.Subscribe(s.events))
	s.Require().NoError(s.bus.Start())
}

func (s *DriverSuite) TearDownTest() {
	s.Require().NoError(s.bus.Stop())
}

func (s *DriverSuite) driver(opts ...execution.DriverOption) *execution.TestLifecycleDriver {
	opts = append([]execution.DriverOption{
		execution.WithFs(afero.NewMemMapFs()),
		execution.WithEventPublisher(s.bus),
		execution.WithPhaseGrace(50 * time.Millisecond),
	}, opts...)
	return execution.NewTestLifecycleDriver(s.client, opts...)
}

func states(transitions []domain.TestTransition) []domain.TestState {
	out := make([]domain.TestState, 0, len(transitions))
	for _, t := range transitions {
		out = append(out, t.To)
	}
	return out
}

func (s *DriverSuite) TestCompletesAndReportsEachStep() {
	var ran bool
	test := &scriptedTest{run: func(ctx context.Context, network networks.Network, tc testsuite.TestContext) error {
		nc, ok := network.(*networks.NetworkContext)
		tc.AssertTrue(ok, errors.New("network is not a network context"))
		_, err := networks.GetService[*servicetest.Service](nc, "db")
		ran = true
		return err
	}}

	result := s.driver().Drive(s.ctx, "ping", test)

	s.Require().NoError(result.Err)
	s.True(result.Passed())
	s.True(ran)
	s.Equal([]domain.TestState{
		domain.TestStateRegistering,
		domain.TestStateSettingUp,
		domain.TestStateRunning,
		domain.TestStateCompleted,
	}, states(result.Transitions))
	s.Equal([]string{
		grpcapi.MethodRegisterTestSetup,
		grpcapi.MethodRegisterService,
		grpcapi.MethodStartService,
		grpcapi.MethodRegisterTestSetupCompletion,
		grpcapi.MethodRegisterTestExecution,
	}, s.fake.Calls())
	s.Equal(5*time.Second, s.fake.ExecutionTimeout())
	s.Positive(result.Duration)

	testutils.AssertEventuallyTrue(s.T(), func() bool {
		return len(s.events.Events()) == 4
	}, time.Second, "every transition is published")
	last := s.events.Events()[3].Data.(domain.TestTransition)
	s.Equal(domain.TestStateRunning, last.From)
	s.Equal(domain.TestStateCompleted, last.To)
}

func (s *DriverSuite) TestPanicInRunIsInternalFault() {
	test := &scriptedTest{run: func(context.Context, networks.Network, testsuite.TestContext) error {
		var m map[string]int
		m["boom"]++
		return nil
	}}

	result := s.driver().Drive(s.ctx, "ping", test)

	s.Equal(domain.TestStateFailed, result.State)
	s.ErrorIs(result.Err, domain.ErrInternalFault)
	var fault *domain.InternalFault
	s.Require().True(errors.As(result.Err, &fault))
	s.Equal("run", fault.Phase)
	s.NotEmpty(fault.Stack)
}

func (s *DriverSuite) TestPanicWithErrorKeepsCause() {
	cause := errors.New("peer table corrupted")
	test := &scriptedTest{run: func(context.Context, networks.Network, testsuite.TestContext) error {
		panic(cause)
	}}

	result := s.driver().Drive(s.ctx, "ping", test)

	s.ErrorIs(result.Err, domain.ErrInternalFault)
	s.ErrorIs(result.Err, cause)
}

func (s *DriverSuite) TestGoexitInRunIsInternalFault() {
	test := &scriptedTest{run: func(context.Context, networks.Network, testsuite.TestContext) error {
		runtime.Goexit()
		return nil
	}}

	start := time.Now()
	result := s.driver().Drive(s.ctx, "ping", test)

	s.Equal(domain.TestStateFailed, result.State)
	s.ErrorIs(result.Err, domain.ErrInternalFault)
	s.NotErrorIs(result.Err, domain.ErrPhaseTimeout)
	var fault *domain.InternalFault
	s.Require().True(errors.As(result.Err, &fault))
	s.Equal("run", fault.Phase)
	s.Less(time.Since(start), 5*time.Second)
}

func (s *DriverSuite) TestAssertionFailureKeepsCause() {
	cause := errors.New("expected 3 peers")
	test := &scriptedTest{run: func(_ context.Context, _ networks.Network, tc testsuite.TestContext) error {
		tc.AssertTrue(false, cause)
		return nil
	}}

	result := s.driver().Drive(s.ctx, "ping", test)

	s.ErrorIs(result.Err, domain.ErrTestAssertion)
	s.ErrorIs(result.Err, cause)
	s.NotErrorIs(result.Err, domain.ErrInternalFault)
}

func (s *DriverSuite) TestSetupErrorSkipsExecution() {
	cause := errors.New("no quorum")
	test := &scriptedTest{setup: func(context.Context, *networks.NetworkContext) (networks.Network, error) {
		return nil, cause
	}}

	result := s.driver().Drive(s.ctx, "ping", test)

	s.ErrorIs(result.Err, cause)
	s.Equal([]domain.TestState{
		domain.TestStateRegistering,
		domain.TestStateSettingUp,
		domain.TestStateFailed,
	}, states(result.Transitions))
	s.NotContains(s.fake.Calls(), grpcapi.MethodRegisterTestSetupCompletion)
}

func (s *DriverSuite) TestNilNetworkIsConfigurationError() {
	test := &scriptedTest{setup: func(context.Context, *networks.NetworkContext) (networks.Network, error) {
		return nil, nil
	}}

	result := s.driver().Drive(s.ctx, "ping", test)

	s.ErrorIs(result.Err, domain.ErrConfiguration)
}

func (s *DriverSuite) TestHungSetupTimesOut() {
	release := make(chan struct{})
	s.T().Cleanup(func() { close(release) })
	test := &scriptedTest{
		configure: func(b *testsuite.TestConfigurationBuilder) {
			b.WithSetupTimeout(100 * time.Millisecond)
		},
		setup: func(context.Context, *networks.NetworkContext) (networks.Network, error) {
			<-release
			return nil, nil
		},
	}

	start := time.Now()
	result := s.driver().Drive(s.ctx, "ping", test)

	s.ErrorIs(result.Err, domain.ErrPhaseTimeout)
	var timeout *domain.PhaseTimeoutError
	s.Require().True(errors.As(result.Err, &timeout))
	s.Equal("setup", timeout.Phase)
	s.Less(time.Since(start), 5*time.Second)
}

func (s *DriverSuite) TestRegisterTestSetupFailure() {
	s.fake.Fail(grpcapi.MethodRegisterTestSetup, errors.New("orchestrator busy"))

	result := s.driver().Drive(s.ctx, "ping", &scriptedTest{})

	s.ErrorIs(result.Err, domain.ErrRegistration)
	s.Equal([]domain.TestState{domain.TestStateRegistering, domain.TestStateFailed}, states(result.Transitions))
	s.NotContains(s.fake.Calls(), grpcapi.MethodRegisterService)
}

func (s *DriverSuite) TestPanicInConfigureFailsBeforeRegistering() {
	test := &scriptedTest{configure: func(*testsuite.TestConfigurationBuilder) {
		panic("bad configuration")
	}}

	result := s.driver().Drive(s.ctx, "ping", test)

	s.ErrorIs(result.Err, domain.ErrInternalFault)
	s.Equal([]domain.TestState{domain.TestStateFailed}, states(result.Transitions))
	s.Empty(s.fake.Calls())
}
