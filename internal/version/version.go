package version

import "fmt"

// Version contains the application version information.
// Overridable via build-time ldflags:
// go build -ldflags "-X github.com/aligoren/iz/internal/version.Version=v0.2.0".
var Version = "0.1.0"

// BuildInfo contains additional build metadata.
var (
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// String renders the version for --version output, including the commit when
// the build recorded one.
func String() string {
	if GitCommit == "unknown" {
		return Version
	}
	return fmt.Sprintf("%s (%s)", Version, GitCommit)
}
