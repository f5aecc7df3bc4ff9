// Package version exposes build-time version information.
package version

import "fmt"

var (
	// Version is set at build time via ldflags.
	Version = "dev"
	// GitCommit is set at build time via ldflags.
	GitCommit = "unknown"
)

// Info holds the version fields reported by the version command.
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
}

// Get returns the current version information.
func Get() Info {
	return Info{Version: Version, GitCommit: GitCommit}
}

func (i Info) String() string {
	return fmt.Sprintf("copilot %s (%s)", i.Version, i.GitCommit)
}
