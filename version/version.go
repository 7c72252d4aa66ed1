// Package version provides build version information and the version
// command for the weburl CLI.
package version

import (
	"fmt"
	"runtime"

	"golang.org/x/net/idna"
)

// Info holds version information for a binary.
type Info struct {
	Name           string `json:"name" yaml:"name"`
	Version        string `json:"version" yaml:"version"`
	BuildDate      string `json:"buildDate" yaml:"buildDate"`
	GitCommit      string `json:"gitCommit" yaml:"gitCommit"`
	GoVersion      string `json:"goVersion" yaml:"goVersion"`
	UnicodeVersion string `json:"unicodeVersion" yaml:"unicodeVersion"`
}

// New creates a new Info with default values. Version, BuildDate, GitCommit
// are expected to be set via ldflags at build time. UnicodeVersion is the
// Unicode version of the IDNA tables hosts are mapped with.
func New(name string) *Info {
	return &Info{
		Name:           name,
		Version:        "0.0.0-dev",
		BuildDate:      "unknown",
		GitCommit:      "unknown",
		GoVersion:      runtime.Version(),
		UnicodeVersion: idna.UnicodeVersion,
	}
}

// String returns a human-readable version string.
func (i *Info) String() string {
	return fmt.Sprintf("%s version %s (commit: %s, built: %s)", i.Name, i.Version, i.GitCommit, i.BuildDate)
}
