// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package snapshot

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/AngouNin/Hotwings-MeMe/pkg/constants"
	"github.com/AngouNin/Hotwings-MeMe/pkg/safety"
)

func writeTestSnapshot(t *testing.T, m *Manager, name string, age time.Duration) {
	t.Helper()
	dir := m.Dir(name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, constants.SnapshotDataFileName), make([]byte, 1024), 0o644); err != nil {
		t.Fatal(err)
	}
	manifest := &Manifest{
		Version:   ManifestVersion,
		CreatedAt: time.Now().UTC().Add(-age).Format(createdAtFormat),
		Data:      File{Name: constants.SnapshotDataFileName, Bytes: 1024},
	}
	if err := writeManifest(dir, manifest); err != nil {
		t.Fatal(err)
	}
}

func TestCleanup_OldSnapshots(t *testing.T) {
	m := NewManager(t.TempDir())
	writeTestSnapshot(t, m, "newest", time.Hour)
	writeTestSnapshot(t, m, "recent", 2*time.Hour)
	writeTestSnapshot(t, m, "stale", 30*24*time.Hour)

	result := m.Cleanup(CleanupConfig{KeepLatest: 1, MaxAge: 7 * 24 * time.Hour})

	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Deleted) != 1 || result.Deleted[0] != "stale" {
		t.Errorf("expected only stale deleted, got %v", result.Deleted)
	}
	if result.BytesFreed < 1024 {
		t.Errorf("expected at least 1024 bytes freed, got %d", result.BytesFreed)
	}
	if _, err := os.Stat(m.Dir("stale")); !os.IsNotExist(err) {
		t.Error("stale snapshot should have been deleted")
	}
	if _, err := os.Stat(m.Dir("recent")); err != nil {
		t.Error("recent snapshot should have been kept")
	}
}

func TestCleanup_DryRun(t *testing.T) {
	m := NewManager(t.TempDir())
	writeTestSnapshot(t, m, "newest", time.Hour)
	writeTestSnapshot(t, m, "old", 10*24*time.Hour)

	result := m.Cleanup(CleanupConfig{KeepLatest: 1, DryRun: true})

	if len(result.Deleted) != 1 {
		t.Errorf("expected 1 snapshot reported, got %d", len(result.Deleted))
	}
	if _, err := os.Stat(m.Dir("old")); err != nil {
		t.Error("dry run should not delete anything")
	}
}

func TestCleanup_MissingRoot(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "absent"))
	result := m.Cleanup(DefaultCleanupConfig())
	if len(result.Errors) != 0 || len(result.Deleted) != 0 {
		t.Errorf("expected empty result, got %+v", result)
	}
}

func TestFormatBytes(t *testing.T) {
	cases := map[int64]string{
		0:           "0 B",
		1023:        "1023 B",
		1024:        "1.0 KB",
		1536:        "1.5 KB",
		5 * 1 << 20: "5.0 MB",
	}
	for in, want := range cases {
		if got := FormatBytes(in); got != want {
			t.Errorf("FormatBytes(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestCleanup_RespectsPolicy(t *testing.T) {
	root := t.TempDir()
	m := NewManager(root).WithPolicy(safety.Policy{DenyPrefixes: []string{root}})
	writeTestSnapshot(t, m, "stale", 30*24*time.Hour)

	result := m.Cleanup(CleanupConfig{MaxAge: time.Hour})
	if len(result.Errors) != 1 {
		t.Fatalf("expected one policy error, got %v", result.Errors)
	}
	if !errors.Is(result.Errors[0], safety.ErrProtectedPath) {
		t.Errorf("unexpected error: %v", result.Errors[0])
	}
	if _, err := os.Stat(m.Dir("stale")); err != nil {
		t.Error("protected snapshot should have been kept")
	}
}
