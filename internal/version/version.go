// Package version reports the build version of the fiftyone-links tools.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"time"
)

// These variables can be set at build time via ldflags:
//
//	go build -ldflags="-X github.com/voxel51/fiftyone-links/internal/version.Version=v1.2.3 \
//	                   -X github.com/voxel51/fiftyone-links/internal/version.Commit=abc123"
//
// If not set, they are populated from VCS build info when available, and
// otherwise fall back to "dev" with a timestamp.
var (
	// Version is the semantic version of the application
	Version = ""
	// Commit is the git commit hash
	Commit = ""
)

func init() {
	if Version == "" || Commit == "" {
		if info, ok := debug.ReadBuildInfo(); ok {
			applyBuildSettings(info.Settings)
		}
	}

	if Version == "" {
		Version = fmt.Sprintf("dev-%s", time.Now().Format("20060102-150405"))
	}
	if Commit == "" {
		Commit = "unknown"
	}
}

// applyBuildSettings fills Version and Commit from VCS build settings.
// Values set via ldflags are left alone.
func applyBuildSettings(settings []debug.BuildSetting) {
	var revision, modified, vcsTime string
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			modified = s.Value
		case "vcs.time":
			vcsTime = s.Value
		}
	}

	if Commit == "" && revision != "" {
		Commit = revision
		if len(Commit) > 7 {
			Commit = Commit[:7]
		}
		if modified == "true" {
			Commit += "-dirty"
		}
	}

	// Build info carries no tags, so use a dated dev version
	if Version == "" && vcsTime != "" {
		if t, err := time.Parse(time.RFC3339, vcsTime); err == nil {
			Version = fmt.Sprintf("dev-%s", t.Format("20060102"))
		}
	}
}

// Full returns the full version string including commit
func Full() string {
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}

// Platform returns the OS/architecture the binary was built for
func Platform() string {
	return runtime.GOOS + "/" + runtime.GOARCH
}
