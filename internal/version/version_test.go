package version

import (
	"runtime/debug"
	"strings"
	"testing"
)

func withVersion(t *testing.T, v, c string) {
	t.Helper()
	oldV, oldC := Version, Commit
	Version, Commit = v, c
	t.Cleanup(func() { Version, Commit = oldV, oldC })
}

func TestApplyBuildSettings(t *testing.T) {
	tests := []struct {
		name        string
		settings    []debug.BuildSetting
		wantVersion string
		wantCommit  string
	}{
		{
			name: "clean checkout",
			settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "0123456789abcdef"},
				{Key: "vcs.modified", Value: "false"},
				{Key: "vcs.time", Value: "2026-10-01T12:00:00Z"},
			},
			wantVersion: "dev-20261001",
			wantCommit:  "0123456",
		},
		{
			name: "dirty tree",
			settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "abc"},
				{Key: "vcs.modified", Value: "true"},
			},
			wantVersion: "",
			wantCommit:  "abc-dirty",
		},
		{
			name:     "no vcs info",
			settings: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withVersion(t, "", "")
			applyBuildSettings(tt.settings)
			if Version != tt.wantVersion {
				t.Errorf("Version = %q, want %q", Version, tt.wantVersion)
			}
			if Commit != tt.wantCommit {
				t.Errorf("Commit = %q, want %q", Commit, tt.wantCommit)
			}
		})
	}
}

func TestApplyBuildSettings_KeepsLdflags(t *testing.T) {
	withVersion(t, "v1.0.0", "feedbee")
	applyBuildSettings([]debug.BuildSetting{{Key: "vcs.revision", Value: "0123456789"}})

	if Version != "v1.0.0" || Commit != "feedbee" {
		t.Errorf("ldflags values overwritten: %s %s", Version, Commit)
	}
}

func TestFull(t *testing.T) {
	withVersion(t, "v1.2.3", "abc1234")
	if got := Full(); got != "v1.2.3 (commit: abc1234)" {
		t.Errorf("Full() = %q", got)
	}
	if !strings.Contains(Platform(), "/") {
		t.Errorf("Platform() = %q", Platform())
	}
}
