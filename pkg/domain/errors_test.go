package domain

import (
	"errors"
	"io"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTypedErrors_MatchSentinels(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"connection", &ConnectionError{Endpoint: "api:7443", Attempts: 3, Interval: time.Second, Cause: io.EOF}, ErrConnection},
		{"registration", &RegistrationError{Operation: "register service", ServiceID: "db", Cause: io.EOF}, ErrRegistration},
		{"configuration", &ConfigurationError{Field: "artifact", Reason: "unknown"}, ErrConfiguration},
		{"file io", &FileIOError{FileID: "cfg", Path: "/x", Cause: io.EOF}, ErrFileIO},
		{"availability", &AvailabilityTimeoutError{ServiceID: "db", MaxPolls: 3, PollInterval: time.Millisecond}, ErrAvailabilityTimeout},
		{"not found", &ServiceNotFoundError{ServiceID: "db"}, ErrServiceNotFound},
		{"type mismatch", &TypeMismatchError{ServiceID: "db", Expected: "A", Actual: "B"}, ErrTypeMismatch},
		{"assertion", &TestAssertionFailure{Cause: io.EOF}, ErrTestAssertion},
		{"fault", &InternalFault{Phase: "run", Value: "boom"}, ErrInternalFault},
		{"phase timeout", &PhaseTimeoutError{Phase: "setup", Timeout: time.Second}, ErrPhaseTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.sentinel)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestTypedErrors_UnwrapCause(t *testing.T) {
	err := &RegistrationError{Operation: "start service", ServiceID: "db", Cause: io.ErrUnexpectedEOF}

	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.Contains(t, err.Error(), `"db"`)

	var regErr *RegistrationError
	assert.True(t, errors.As(error(err), &regErr))
	assert.Equal(t, "start service", regErr.Operation)
}

func TestInternalFault_UnwrapsErrorValue(t *testing.T) {
	fault := &InternalFault{Phase: "run", Value: io.ErrClosedPipe}
	assert.ErrorIs(t, fault, io.ErrClosedPipe)
	assert.ErrorIs(t, fault, ErrInternalFault)

	assert.NoError(t, (&InternalFault{Phase: "run", Value: "boom"}).Unwrap())
}

func TestNewTestMetadata(t *testing.T) {
	md := NewTestMetadata(TestConfiguration{
		SetupTimeout:          90 * time.Second,
		RunTimeout:            30 * time.Second,
		IsPartitioningEnabled: true,
		FilesArtifactURLs: map[FilesArtifactID]string{
			"a": "https://example.com/a.tgz",
			"b": "https://example.com/a.tgz",
		},
	})

	assert.True(t, md.IsPartitioningEnabled)
	assert.Equal(t, uint32(90), md.SetupTimeoutSeconds)
	assert.Equal(t, uint32(30), md.RunTimeoutSeconds)
	assert.Equal(t, map[string]bool{"https://example.com/a.tgz": true}, md.UsedArtifactURLs)
}

func TestNewTestMetadata_RoundsTimeoutsUp(t *testing.T) {
	md := NewTestMetadata(TestConfiguration{
		SetupTimeout: 100 * time.Millisecond,
		RunTimeout:   1500 * time.Millisecond,
	})

	assert.Equal(t, uint32(1), md.SetupTimeoutSeconds)
	assert.Equal(t, uint32(2), md.RunTimeoutSeconds)
}

func TestTimeoutSeconds(t *testing.T) {
	tests := []struct {
		name string
		in   time.Duration
		want uint32
	}{
		{"negative", -time.Second, 0},
		{"zero", 0, 0},
		{"one nanosecond", time.Nanosecond, 1},
		{"whole seconds", 90 * time.Second, 90},
		{"fraction rounds up", 90*time.Second + time.Millisecond, 91},
		{"max uint32 seconds", math.MaxUint32 * time.Second, math.MaxUint32},
		{"beyond uint32 clamps", (math.MaxUint32 + 1) * time.Second, math.MaxUint32},
		{"max duration clamps", time.Duration(math.MaxInt64), math.MaxUint32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TimeoutSeconds(tt.in))
		})
	}
}

func TestTestConfiguration_Validate(t *testing.T) {
	assert.NoError(t, TestConfiguration{SetupTimeout: time.Second, RunTimeout: time.Second}.Validate())

	err := TestConfiguration{SetupTimeout: time.Second, RunTimeout: -time.Second}.Validate()
	var cfgErr *ConfigurationError
	assert.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "run timeout", cfgErr.Field)
	assert.ErrorIs(t, err, ErrConfiguration)
}
