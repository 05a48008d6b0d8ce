// Package version holds build version information injected at link time.
package version

import "fmt"

var (
	// Set via -ldflags "-X github.com/zkcostlab/zkcost/pkg/version.version=..."
	version   = "v0.0.0-unknown"
	gitCommit = ""
)

// Info describes the build of the running binary.
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"gitCommit"`
}

// Get returns the version information of the running binary.
func Get() Info {
	return Info{
		Version:   version,
		GitCommit: gitCommit,
	}
}

func (i Info) String() string {
	if i.GitCommit == "" {
		return i.Version
	}
	return fmt.Sprintf("%s (%s)", i.Version, i.GitCommit)
}
