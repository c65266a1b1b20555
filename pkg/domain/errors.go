package domain

import (
	"errors"
	"fmt"
	"time"
)

// Domain errors represent the failure classes callers can branch on with errors.Is.
// The typed errors below carry context and report these sentinels through Is.
var (
	// Registry errors
	ErrServiceNotFound  = errors.New("service not found")
	ErrServiceExists    = errors.New("service already exists")
	ErrServiceIDRetired = errors.New("service id was already used and removed")
	ErrTypeMismatch     = errors.New("service has unexpected type")

	// Orchestrator errors
	ErrConnection   = errors.New("failed to connect to orchestrator")
	ErrRegistration = errors.New("orchestrator rejected request")

	// Local errors
	ErrConfiguration       = errors.New("invalid configuration")
	ErrFileIO              = errors.New("file operation failed")
	ErrAvailabilityTimeout = errors.New("service did not become available")

	// Test execution errors
	ErrTestAssertion = errors.New("test assertion failed")
	ErrInternalFault = errors.New("test panicked")
	ErrPhaseTimeout  = errors.New("test phase exceeded its deadline")
	ErrTestNotFound  = errors.New("test not found in suite")
)

// ConnectionError is returned when the orchestrator could not be reached within
// the configured number of attempts.
type ConnectionError struct {
	Endpoint string
	Attempts int
	Interval time.Duration
	Cause    error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("failed to connect to orchestrator at %s after %d attempts (%s apart): %v",
		e.Endpoint, e.Attempts, e.Interval, e.Cause)
}

func (e *ConnectionError) Unwrap() error        { return e.Cause }
func (e *ConnectionError) Is(target error) bool { return target == ErrConnection }

// RegistrationError is returned when an orchestrator RPC failed or returned a
// response the client cannot act on.
type RegistrationError struct {
	Operation string
	ServiceID ServiceID
	Cause     error
}

func (e *RegistrationError) Error() string {
	if e.ServiceID != "" {
		return fmt.Sprintf("%s failed for service %q: %v", e.Operation, e.ServiceID, e.Cause)
	}
	return fmt.Sprintf("%s failed: %v", e.Operation, e.Cause)
}

func (e *RegistrationError) Unwrap() error        { return e.Cause }
func (e *RegistrationError) Is(target error) bool { return target == ErrRegistration }

// ConfigurationError reports a locally detected configuration problem. No RPC
// is sent for a request that fails with this error.
type ConfigurationError struct {
	Field  string
	Reason string
	Cause  error
}

func (e *ConfigurationError) Error() string {
	msg := fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *ConfigurationError) Unwrap() error        { return e.Cause }
func (e *ConfigurationError) Is(target error) bool { return target == ErrConfiguration }

// FileIOError is returned when a generated file could not be created or initialized.
type FileIOError struct {
	FileID string
	Path   string
	Cause  error
}

func (e *FileIOError) Error() string {
	return fmt.Sprintf("generated file %q at %s: %v", e.FileID, e.Path, e.Cause)
}

func (e *FileIOError) Unwrap() error        { return e.Cause }
func (e *FileIOError) Is(target error) bool { return target == ErrFileIO }

// AvailabilityTimeoutError is returned when a service never reported itself
// available within the polling budget.
type AvailabilityTimeoutError struct {
	ServiceID    ServiceID
	MaxPolls     int
	PollInterval time.Duration
	Cause        error
}

func (e *AvailabilityTimeoutError) Error() string {
	msg := fmt.Sprintf("service %q did not become available after %d polls with %s between polls",
		e.ServiceID, e.MaxPolls, e.PollInterval)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *AvailabilityTimeoutError) Unwrap() error        { return e.Cause }
func (e *AvailabilityTimeoutError) Is(target error) bool { return target == ErrAvailabilityTimeout }

// ServiceNotFoundError is returned when an id is not present in the registry.
type ServiceNotFoundError struct {
	ServiceID ServiceID
}

func (e *ServiceNotFoundError) Error() string {
	return fmt.Sprintf("no service with id %q in the network", e.ServiceID)
}

func (e *ServiceNotFoundError) Is(target error) bool { return target == ErrServiceNotFound }

// TypeMismatchError is returned when a stored service is not of the requested type.
type TypeMismatchError struct {
	ServiceID ServiceID
	Expected  string
	Actual    string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("service %q is %s, not %s", e.ServiceID, e.Actual, e.Expected)
}

func (e *TypeMismatchError) Is(target error) bool { return target == ErrTypeMismatch }

// TestAssertionFailure wraps the error a test raised through its test context.
type TestAssertionFailure struct {
	Cause error
}

func (e *TestAssertionFailure) Error() string {
	return fmt.Sprintf("assertion failed: %v", e.Cause)
}

func (e *TestAssertionFailure) Unwrap() error        { return e.Cause }
func (e *TestAssertionFailure) Is(target error) bool { return target == ErrTestAssertion }

// InternalFault captures a panic recovered while running user code.
type InternalFault struct {
	Phase string
	Value any
	Stack []byte
}

func (e *InternalFault) Error() string {
	return fmt.Sprintf("panic during %s: %v", e.Phase, e.Value)
}

func (e *InternalFault) Is(target error) bool { return target == ErrInternalFault }

// Unwrap returns the panic value when it is an error.
func (e *InternalFault) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// PhaseTimeoutError is returned when a lifecycle phase outlived its local deadline.
type PhaseTimeoutError struct {
	Phase   string
	Timeout time.Duration
}

func (e *PhaseTimeoutError) Error() string {
	return fmt.Sprintf("%s did not finish within %s", e.Phase, e.Timeout)
}

func (e *PhaseTimeoutError) Is(target error) bool { return target == ErrPhaseTimeout }
