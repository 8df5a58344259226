// Package version reports the wlaninfo build version.
package version

import (
	"fmt"
	"runtime/debug"
	"time"
)

// Version and Commit may be stamped at link time:
//
//	go build -ldflags="-X github.com/muurk/wlaninfo/internal/version.Version=v1.2.3 \
//	                   -X github.com/muurk/wlaninfo/internal/version.Commit=abc123"
//
// Unstamped builds fill them from the module and VCS build info.
var (
	Version = ""
	Commit  = ""
)

const (
	shortCommitLen = 7
	develVersion   = "(devel)"
)

func init() {
	info, _ := debug.ReadBuildInfo()
	Version, Commit = resolve(Version, Commit, info, time.Now())
}

// resolve fills in whichever of version and commit is empty. A tagged
// module version wins over a dev version derived from the commit time.
func resolve(version, commit string, info *debug.BuildInfo, now time.Time) (string, string) {
	var revision, modified, vcsTime string
	if info != nil {
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				revision = s.Value
			case "vcs.modified":
				modified = s.Value
			case "vcs.time":
				vcsTime = s.Value
			}
		}
	}

	if commit == "" && revision != "" {
		commit = revision
		if len(commit) > shortCommitLen {
			commit = commit[:shortCommitLen]
		}
		if modified == "true" {
			commit += "-dirty"
		}
	}
	if commit == "" {
		commit = "unknown"
	}

	if version == "" && info != nil && info.Main.Version != "" && info.Main.Version != develVersion {
		version = info.Main.Version
	}
	if version == "" {
		if t, err := time.Parse(time.RFC3339, vcsTime); err == nil {
			version = "dev-" + t.UTC().Format("20060102")
		}
	}
	if version == "" {
		version = "dev-" + now.Format("20060102-150405")
	}
	return version, commit
}

// Full returns the version with its commit, as printed by `wlaninfo version`.
func Full() string {
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}
