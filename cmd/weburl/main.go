// Command weburl parses, resolves and edits URLs with WHATWG semantics.
package main

import (
	"fmt"
	"os"

	"github.com/jongio/weburl/version"
)

// Set via -ldflags "-X main.Version=... -X main.BuildDate=... -X main.GitCommit=...".
var (
	Version   = "0.0.0-dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	info := version.New("weburl")
	info.Version, info.BuildDate, info.GitCommit = Version, BuildDate, GitCommit

	if err := newRootCommand(info).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
