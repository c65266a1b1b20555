package testsuite

import (
	"fmt"

	"github.com/bnema/testnet/pkg/domain"
)

// TestContext lets a running test fail immediately. A failure unwinds the
// test and is reported as a *domain.TestAssertionFailure.
type TestContext struct{}

// Fatal fails the test with err.
func (TestContext) Fatal(err error) {
	panic(&domain.TestAssertionFailure{Cause: err})
}

// AssertTrue fails the test with err unless condition holds.
func (tc TestContext) AssertTrue(condition bool, err error) {
	if !condition {
		tc.Fatal(err)
	}
}

// Fatalf fails the test with a formatted message.
func (tc TestContext) Fatalf(format string, args ...any) {
	tc.Fatal(fmt.Errorf(format, args...))
}
