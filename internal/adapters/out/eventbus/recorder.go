package eventbus

import (
	"context"
	"sync"

	"github.com/bnema/testnet/pkg/domain"
)

// Recorder is an EventHandler that keeps every event it receives.
type Recorder struct {
	mu     sync.Mutex
	types  map[domain.EventType]bool
	events []domain.Event
}

// NewRecorder creates a recorder for the given event types, or all types when none are given.
func NewRecorder(types ...domain.EventType) *Recorder {
	r := &Recorder{types: make(map[domain.EventType]bool)}
	for _, t := range types {
		r.types[t] = true
	}
	return r
}

func (r *Recorder) CanHandle(eventType domain.EventType) bool {
	return len(r.types) == 0 || r.types[eventType]
}

func (r *Recorder) Handle(_ context.Context, event domain.Event) error {
	r.mu.Lock()
	r.events = append(r.events, event)
	r.mu.Unlock()
	return nil
}

// Events returns the recorded events in delivery order.
func (r *Recorder) Events() []domain.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Event(nil), r.events...)
}
