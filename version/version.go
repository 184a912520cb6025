// Package version holds urlkit build information and the version command.
package version

import (
	"fmt"
	"runtime"
)

// Version, BuildDate and GitCommit are set via ldflags at build time:
//
//	go build -ldflags "-X github.com/jongio/urlkit/version.Version=1.2.3"
var (
	Version   = "0.0.0-dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// Info holds version information for a binary.
type Info struct {
	Version   string `json:"version"`
	BuildDate string `json:"buildDate"`
	GitCommit string `json:"gitCommit"`
	GoVersion string `json:"goVersion"`
	Platform  string `json:"platform"`
	Name      string `json:"name"`
}

// New creates an Info for name from the ldflags-provided values.
func New(name string) *Info {
	return &Info{
		Version:   Version,
		BuildDate: BuildDate,
		GitCommit: GitCommit,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
		Name:      name,
	}
}

// String returns a human-readable version string.
func (i *Info) String() string {
	return fmt.Sprintf("%s version %s (commit: %s, built: %s)", i.Name, i.Version, i.GitCommit, i.BuildDate)
}
