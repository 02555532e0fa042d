// Package version provides version information for the mcpstack-tool CLI.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/Masterminds/semver/v3"
)

// Build-time variables set via ldflags.
var (
	// Version is the CLI version (set via ldflags).
	Version = "v0.0.0-dev"

	// GitCommit is the git commit hash.
	GitCommit = "unknown"

	// BuildDate is the build timestamp.
	BuildDate = "unknown"
)

// Info contains version information.
type Info struct {
	// Version is the CLI version (set via ldflags).
	Version string `json:"version"`

	// GitCommit is the git commit hash.
	GitCommit string `json:"gitCommit"`

	// BuildDate is the build timestamp.
	BuildDate string `json:"buildDate"`

	// GoVersion is the Go version used to build.
	GoVersion string `json:"goVersion"`
}

// Get returns the current version information. When Version was not set
// at link time, the module version recorded by `go install` is used.
func Get() Info {
	v := Version
	if v == "v0.0.0-dev" {
		if bi, ok := debug.ReadBuildInfo(); ok && Valid(bi.Main.Version) {
			v = bi.Main.Version
		}
	}
	return Info{
		Version:   v,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
	}
}

// Valid reports whether v is a semantic version, with or without a leading "v".
func Valid(v string) bool {
	_, err := semver.NewVersion(v)
	return err == nil
}

// String returns a human-readable version string.
func (i Info) String() string {
	return fmt.Sprintf("mcpstack-tool version %s\n  Commit:    %s\n  Built:     %s\n  Go:        %s",
		i.Version, i.GitCommit, i.BuildDate, i.GoVersion)
}
