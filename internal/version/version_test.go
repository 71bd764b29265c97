package version

import (
	"runtime/debug"
	"strings"
	"testing"
)

func TestShortRevision(t *testing.T) {
	tests := []struct {
		rev      string
		modified bool
		want     string
	}{
		{"", false, ""},
		{"abc", false, "abc"},
		{"0123456789abcdef", false, "0123456"},
		{"0123456789abcdef", true, "0123456-dirty"},
	}

	for _, tt := range tests {
		if got := shortRevision(tt.rev, tt.modified); got != tt.want {
			t.Errorf("shortRevision(%q, %v) = %q, want %q", tt.rev, tt.modified, got, tt.want)
		}
	}
}

func TestFromBuildInfo(t *testing.T) {
	oldVersion, oldCommit := Version, Commit
	defer func() { Version, Commit = oldVersion, oldCommit }()

	Version, Commit = "", ""
	fromBuildInfo(&debug.BuildInfo{
		Main: debug.Module{Version: "(devel)"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "fedcba9876543210"},
			{Key: "vcs.modified", Value: "false"},
			{Key: "vcs.time", Value: "2026-03-01T10:00:00Z"},
		},
	}, true)

	if Commit != "fedcba9" {
		t.Errorf("Commit = %q, want %q", Commit, "fedcba9")
	}
	if Version != "dev-20260301" {
		t.Errorf("Version = %q, want %q", Version, "dev-20260301")
	}

	Version, Commit = "", ""
	fromBuildInfo(&debug.BuildInfo{Main: debug.Module{Version: "v1.4.0"}}, true)
	if Version != "v1.4.0" {
		t.Errorf("Version = %q, want module version v1.4.0", Version)
	}

	Version, Commit = "", ""
	fromBuildInfo(nil, false)
	if Version != "" || Commit != "" {
		t.Errorf("missing build info should leave values empty, got %q/%q", Version, Commit)
	}
}

func TestUserAgent(t *testing.T) {
	if ua := UserAgent(); !strings.HasPrefix(ua, "phya-waitlist/") {
		t.Errorf("UserAgent() = %q, want phya-waitlist/ prefix", ua)
	}
	if !strings.Contains(Full(), "commit:") {
		t.Errorf("Full() = %q, want commit", Full())
	}
}
