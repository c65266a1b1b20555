package eventbus

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/zerowrap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/testnet/pkg/domain"
)

type failingHandler struct{}

func (failingHandler) CanHandle(domain.EventType) bool { return true }
func (failingHandler) Handle(context.Context, domain.Event) error {
	return errors.New("handler failed")
}

func TestInMemory_DeliversInOrder(t *testing.T) {
	bus := NewInMemory(10, zerowrap.Default())
	rec := NewRecorder(domain.EventTestStateChanged)
	require.NoError(t, bus.Subscribe(failingHandler{}))
	require.NoError(t, bus.Subscribe(rec))
	require.NoError(t, bus.Start())

	states := []domain.TestState{domain.TestStateRegistering, domain.TestStateSettingUp, domain.TestStateRunning}
	for _, s := range states {
		require.NoError(t, bus.Publish(domain.EventTestStateChanged, domain.TestTransition{TestName: "ping", To: s}))
	}
	require.NoError(t, bus.Publish(domain.EventServiceAdded, domain.ServiceEventPayload{ServiceID: "db"}))
	require.NoError(t, bus.Stop())

	events := rec.Events()
	require.Len(t, events, 3)
	for i, e := range events {
		assert.NotEmpty(t, e.ID)
		assert.Equal(t, states[i], e.Data.(domain.TestTransition).To)
	}
}

func TestInMemory_PublishAfterStopFails(t *testing.T) {
	bus := NewInMemory(0, zerowrap.Default())
	require.NoError(t, bus.Start())
	require.NoError(t, bus.Stop())

	assert.Error(t, bus.Publish(domain.EventServiceAdded, nil))
}

func TestInMemory_Unsubscribe(t *testing.T) {
	bus := NewInMemory(1, zerowrap.Default())
	rec := NewRecorder()

	require.NoError(t, bus.Subscribe(rec))
	require.NoError(t, bus.Unsubscribe(rec))
	assert.Error(t, bus.Unsubscribe(rec))
}
