// Package version exposes build version information for diagnostics
// endpoints and startup logging.
package version

import (
	"fmt"
	"runtime/debug"
	"time"
)

// Version is set at build time using -ldflags.
var Version = "dev"

// Info describes the running build.
type Info struct {
	Version   string    `json:"version"`
	GitCommit string    `json:"git_commit"`
	GoVersion string    `json:"go_version"`
	BuildTime time.Time `json:"build_time"`
	Dirty     bool      `json:"dirty"`
}

// Get returns version information, filling VCS fields from the embedded
// build info when available.
func Get() *Info {
	info := &Info{Version: Version}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	info.GoVersion = bi.GoVersion
	for _, setting := range bi.Settings {
		switch setting.Key {
		case "vcs.revision":
			info.GitCommit = setting.Value
			if len(info.GitCommit) > 7 {
				info.GitCommit = info.GitCommit[:7]
			}
		case "vcs.modified":
			info.Dirty = setting.Value == "true"
		case "vcs.time":
			if t, err := time.Parse(time.RFC3339, setting.Value); err == nil {
				info.BuildTime = t
			}
		}
	}
	return info
}

// Short returns a compact version string for logs.
func (i *Info) Short() string {
	switch {
	case i.GitCommit == "":
		return i.Version
	case i.Dirty:
		return fmt.Sprintf("%s-%s-dirty", i.Version, i.GitCommit)
	default:
		return fmt.Sprintf("%s-%s", i.Version, i.GitCommit)
	}
}
