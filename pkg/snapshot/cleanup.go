// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package snapshot

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/AngouNin/Hotwings-MeMe/pkg/safety"
	"github.com/AngouNin/Hotwings-MeMe/pkg/ux"
)

// CleanupConfig configures cleanup behavior
type CleanupConfig struct {
	// KeepLatest snapshots are never removed, whatever their age.
	KeepLatest int

	// MaxAge is the age after which a snapshot beyond KeepLatest is removed.
	// Zero removes every snapshot beyond KeepLatest.
	MaxAge time.Duration

	// DryRun if true, only report what would be deleted
	DryRun bool

	Verbose bool
}

// DefaultCleanupConfig keeps the five newest snapshots and anything younger
// than a week.
func DefaultCleanupConfig() CleanupConfig {
	return CleanupConfig{
		KeepLatest: 5,
		MaxAge:     7 * 24 * time.Hour,
	}
}

// CleanupResult contains statistics from cleanup operation
type CleanupResult struct {
	Deleted    []string
	BytesFreed int64
	Errors     []error
}

// Cleanup removes old snapshots under the manager root.
func (m *Manager) Cleanup(cfg CleanupConfig) CleanupResult {
	result := CleanupResult{}

	entries, err := m.List()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Errorf("failed to list snapshots: %w", err))
		return result
	}

	now := time.Now().UTC()
	for i, entry := range entries {
		if i < cfg.KeepLatest {
			continue
		}
		createdAt, err := entry.Manifest.Created()
		if err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("snapshot %s: %w", entry.Name, err))
			continue
		}
		age := now.Sub(createdAt)
		if cfg.MaxAge > 0 && age <= cfg.MaxAge {
			continue
		}

		size := DirSize(entry.Dir)
		if cfg.Verbose && ux.Logger != nil {
			ux.Logger.PrintToUser("  Snapshot: %s (age %v)", entry.Name, age.Round(time.Minute))
		}
		if !cfg.DryRun {
			if err := safety.RemoveAll(m.policy, entry.Dir); err != nil {
				result.Errors = append(result.Errors, fmt.Errorf("failed to remove snapshot %s: %w", entry.Dir, err))
				continue
			}
		}
		result.Deleted = append(result.Deleted, entry.Name)
		result.BytesFreed += size
	}
	return result
}

// DirSize calculates the total size of a directory
func DirSize(path string) int64 {
	var size int64
	_ = filepath.Walk(path, func(_ string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if !info.IsDir() {
			size += info.Size()
		}
		return nil
	})
	return size
}

// FormatBytes formats bytes into human-readable format
func FormatBytes(b int64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := int64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(b)/float64(div), "KMGTPE"[exp])
}
