package testutils

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestContext creates a test context with timeout
func TestContext(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)
	return ctx
}

// WriteConfigFile writes a TOML configuration file into a temp dir and returns its path
func WriteConfigFile(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "testnet.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// AssertEventuallyTrue retries a condition until it's true or times out
func AssertEventuallyTrue(t *testing.T, condition func() bool, timeout time.Duration, message string) {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("Condition never became true: %s", message)
}
