package domain

import "time"

// TestState is a state of the test lifecycle.
type TestState string

const (
	TestStateIdle        TestState = "idle"
	TestStateRegistering TestState = "registering"
	TestStateSettingUp   TestState = "setting_up"
	TestStateRunning     TestState = "running"
	TestStateCompleted   TestState = "completed"
	TestStateFailed      TestState = "failed"
)

// Terminal reports whether no further transition can leave the state.
func (s TestState) Terminal() bool {
	return s == TestStateCompleted || s == TestStateFailed
}

// EventType represents the type of a lifecycle event.
type EventType string

const (
	EventTestStateChanged     EventType = "test.state_changed"
	EventServiceAdded         EventType = "network.service_added"
	EventServiceRemoved       EventType = "network.service_removed"
	EventNetworkRepartitioned EventType = "network.repartitioned"
)

// Event is a lifecycle event delivered through the event bus.
type Event struct {
	ID        string
	Type      EventType
	Timestamp time.Time
	Data      any
}

// TestTransition is the payload of EventTestStateChanged.
type TestTransition struct {
	TestName string
	From     TestState
	To       TestState
	Err      error
}

// ServiceEventPayload is the payload of the network service events.
type ServiceEventPayload struct {
	ServiceID   ServiceID
	PartitionID PartitionID
	IPAddress   string
}
