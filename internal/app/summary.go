package app

import (
	"context"
	"sync"

	"github.com/bnema/testnet/pkg/domain"
)

// RunSummary counts the network activity of a test run from lifecycle events.
type RunSummary struct {
	mu              sync.Mutex
	servicesAdded   int
	servicesRemoved int
	repartitions    int
	lastState       domain.TestState
}

// Counts is a snapshot of a RunSummary.
type Counts struct {
	ServicesAdded   int
	ServicesRemoved int
	Repartitions    int
	LastState       domain.TestState
}

func (s *RunSummary) CanHandle(eventType domain.EventType) bool {
	switch eventType {
	case domain.EventServiceAdded, domain.EventServiceRemoved, domain.EventNetworkRepartitioned, domain.EventTestStateChanged:
		return true
	}
	return false
}

func (s *RunSummary) Handle(_ context.Context, event domain.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch event.Type {
	case domain.EventServiceAdded:
		s.servicesAdded++
	case domain.EventServiceRemoved:
		s.servicesRemoved++
	case domain.EventNetworkRepartitioned:
		s.repartitions++
	case domain.EventTestStateChanged:
		if t, ok := event.Data.(domain.TestTransition); ok {
			s.lastState = t.To
		}
	}
	return nil
}

func (s *RunSummary) Counts() Counts {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Counts{
		ServicesAdded:   s.servicesAdded,
		ServicesRemoved: s.servicesRemoved,
		Repartitions:    s.repartitions,
		LastState:       s.lastState,
	}
}
