// Package version carries the build metadata stamped in at link time.
package version

import (
	"fmt"
	"runtime"
)

// Overridden via -ldflags on release builds. "dev" marks a local,
// unstamped build.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info returns the long form printed by --version.
func Info() string {
	if Version == "dev" {
		return fmt.Sprintf("stint dev (%s/%s)", runtime.GOOS, runtime.GOARCH)
	}
	return fmt.Sprintf("stint %s (commit %s, built %s, %s/%s)",
		Version, Commit, Date, runtime.GOOS, runtime.GOARCH)
}

// Short returns the compact form shown in the TUI footer.
func Short() string {
	if Version == "dev" {
		return "stint dev"
	}
	return "stint " + Version
}
