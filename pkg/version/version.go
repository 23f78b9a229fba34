// Package version provides build information for the srcbundle CLI.
package version

import (
	"fmt"
	"runtime"
)

// Populated at build time, e.g.
// go build -ldflags "-X 'srcbundle/pkg/version.Version=1.2.3' -X 'srcbundle/pkg/version.Commit=abcdefg'"
var (
	Version   = "dev"
	Commit    = "none"
	BuildTime = "unknown"
)

// AppName is reported in logs and version output.
const AppName = "srcbundle"

// Info contains comprehensive version information.
type Info struct {
	Version   string
	GitCommit string
	BuildTime string
	GoVersion string
	Platform  string // OS/arch
}

// Get returns the current version information.
func Get() Info {
	return Info{
		Version:   Version,
		GitCommit: Commit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String renders the info on one line, e.g.
// srcbundle 1.2.3 (commit abcdefg, built 2024-04-27T15:04:05Z, go1.24.0 linux/amd64)
func (i Info) String() string {
	return fmt.Sprintf("%s %s (commit %s, built %s, %s %s)",
		AppName, i.Version, i.GitCommit, i.BuildTime, i.GoVersion, i.Platform)
}
