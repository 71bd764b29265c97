// Package version reports the build version of phya-waitlist.
package version

import (
	"fmt"
	"runtime/debug"
	"time"
)

// ProductName identifies the client to the backend and in banners
const ProductName = "phya-waitlist"

// These variables can be set at build time via ldflags:
//
//	go build -ldflags="-X github.com/phya/waitlist/internal/version.Version=v1.2.3 \
//	                   -X github.com/phya/waitlist/internal/version.Commit=abc123"
//
// Unset values are filled from the module's VCS build info, or fall back to
// a dated dev version.
var (
	Version = ""
	Commit  = ""
)

func init() {
	if Version == "" || Commit == "" {
		fromBuildInfo(debug.ReadBuildInfo())
	}
	if Version == "" {
		Version = fmt.Sprintf("dev-%s", time.Now().Format("20060102-150405"))
	}
	if Commit == "" {
		Commit = "unknown"
	}
}

func fromBuildInfo(info *debug.BuildInfo, ok bool) {
	if !ok || info == nil {
		return
	}

	settings := make(map[string]string, len(info.Settings))
	for _, s := range info.Settings {
		settings[s.Key] = s.Value
	}

	if Commit == "" {
		Commit = shortRevision(settings["vcs.revision"], settings["vcs.modified"] == "true")
	}

	if Version == "" {
		// Tagged module builds (go install ...@v1.2.3) carry a real version
		if v := info.Main.Version; v != "" && v != "(devel)" {
			Version = v
		} else if t, err := time.Parse(time.RFC3339, settings["vcs.time"]); err == nil {
			Version = fmt.Sprintf("dev-%s", t.Format("20060102"))
		}
	}
}

// shortRevision returns the first 7 characters of rev, marked -dirty when modified
func shortRevision(rev string, modified bool) string {
	if rev == "" {
		return ""
	}
	if len(rev) > 7 {
		rev = rev[:7]
	}
	if modified {
		rev += "-dirty"
	}
	return rev
}

// Full returns the full version string including commit
func Full() string {
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}

// UserAgent returns the User-Agent sent with waitlist submissions
func UserAgent() string {
	return fmt.Sprintf("%s/%s", ProductName, Version)
}
