package cli

import (
	"testing"

	"github.com/matzehuels/colorbars/pkg/buildinfo"
)

func TestSetVersion(t *testing.T) {
	saved := [3]string{buildinfo.Version, buildinfo.Commit, buildinfo.Date}
	t.Cleanup(func() { buildinfo.Version, buildinfo.Commit, buildinfo.Date = saved[0], saved[1], saved[2] })

	SetVersion("1.0.0", "abc123", "2024-01-01")

	if buildinfo.Version != "1.0.0" {
		t.Errorf("Version = %q, want %q", buildinfo.Version, "1.0.0")
	}
	if buildinfo.Commit != "abc123" {
		t.Errorf("Commit = %q, want %q", buildinfo.Commit, "abc123")
	}
	if buildinfo.Date != "2024-01-01" {
		t.Errorf("Date = %q, want %q", buildinfo.Date, "2024-01-01")
	}
}

func TestSetVersionEmptyKeepsValues(t *testing.T) {
	saved := [3]string{buildinfo.Version, buildinfo.Commit, buildinfo.Date}
	t.Cleanup(func() { buildinfo.Version, buildinfo.Commit, buildinfo.Date = saved[0], saved[1], saved[2] })

	SetVersion("2.0.0", "def456", "2025-01-01")
	SetVersion("", "", "")

	if buildinfo.Version != "2.0.0" {
		t.Errorf("Version should be unchanged, got %q", buildinfo.Version)
	}
	if buildinfo.Commit != "def456" {
		t.Errorf("Commit should be unchanged, got %q", buildinfo.Commit)
	}
	if buildinfo.Date != "2025-01-01" {
		t.Errorf("Date should be unchanged, got %q", buildinfo.Date)
	}
}
