// Package version reports build information for the ctxbundle binary.
package version

import (
	"fmt"
	"runtime"
)

// Set at build time, for example:
// go build -ldflags "-X 'ctxbundle/pkg/version.Version=0.3.0' -X 'ctxbundle/pkg/version.Commit=abcdefg'"
var (
	Version   = "dev"
	Commit    = "none"
	BuildTime = "unknown"
)

// Info describes the running binary.
type Info struct {
	Version   string
	GitCommit string
	BuildTime string
	GoVersion string
	Platform  string // GOOS/GOARCH
}

// Get returns the current version information.
func Get() Info {
	return Info{
		Version:   Version,
		GitCommit: Commit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String returns a single line such as:
// ctxbundle 0.3.0 (commit abcdefg, built 2024-04-27T15:04:05Z, go1.23.1 linux/amd64)
func (i Info) String() string {
	return fmt.Sprintf("ctxbundle %s (commit %s, built %s, %s %s)",
		i.Version, i.GitCommit, i.BuildTime, i.GoVersion, i.Platform)
}
