// Package version holds the build information of testnet binaries.
package version

import "fmt"

// Populated by Set at startup.
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

// Set stores the build information. Call once from main.
func Set(v, c, d string) {
	if v != "" {
		version = v
	}
	if c != "" {
		commit = c
	}
	if d != "" {
		buildDate = d
	}
}

func Version() string   { return version }
func Commit() string    { return commit }
func BuildDate() string { return buildDate }

// String formats the build information on one line.
func String() string {
	return fmt.Sprintf("testnet %s (commit %s, built %s)", version, commit, buildDate)
}
