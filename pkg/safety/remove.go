// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package safety guards filesystem deletions under the hotwings base
// directory so that ledger state and user configuration are never removed
// by housekeeping commands.
package safety

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/AngouNin/Hotwings-MeMe/pkg/constants"
)

var (
	ErrProtectedPath = errors.New("refusing to delete protected path")
	ErrNotAllowed    = errors.New("refusing to delete path outside the allowed list")
)

// Policy defines which paths are allowed or denied for deletion.
type Policy struct {
	BaseDir       string   // hotwings base directory (e.g. ~/.hotwings)
	AllowPrefixes []string // absolute paths allowed to delete under
	DenyPrefixes  []string // absolute paths never deletable
}

// DefaultPolicy allows snapshot and log housekeeping and protects the ledger
// database together with the CLI config files.
func DefaultPolicy(baseDir string) Policy {
	return Policy{
		BaseDir: baseDir,
		AllowPrefixes: []string{
			filepath.Join(baseDir, constants.SnapshotDir),
			filepath.Join(baseDir, constants.LogDir),
		},
		DenyPrefixes: []string{
			filepath.Join(baseDir, constants.DBDir),
			filepath.Join(baseDir, constants.DefaultConfigFileName+"."+constants.DefaultConfigFileType),
			filepath.Join(baseDir, constants.LastActionsFileName),
		},
	}
}

// RemoveAll removes target if the policy permits it.
func RemoveAll(policy Policy, target string) error {
	abs, err := filepath.Abs(target)
	if err != nil {
		return fmt.Errorf("failed to resolve path: %w", err)
	}
	if matchesAny(abs, policy.DenyPrefixes) {
		return fmt.Errorf("%w: %s", ErrProtectedPath, abs)
	}
	if !matchesAny(abs, policy.AllowPrefixes) {
		return fmt.Errorf("%w: %s", ErrNotAllowed, abs)
	}
	return os.RemoveAll(abs)
}

// IsProtected reports whether target falls under a deny prefix. Paths that
// cannot be resolved count as protected.
func IsProtected(policy Policy, target string) bool {
	abs, err := filepath.Abs(target)
	if err != nil {
		return true
	}
	return matchesAny(abs, policy.DenyPrefixes)
}

// IsAllowed reports whether target falls under an allow prefix.
func IsAllowed(policy Policy, target string) bool {
	abs, err := filepath.Abs(target)
	if err != nil {
		return false
	}
	return matchesAny(abs, policy.AllowPrefixes)
}

func matchesAny(path string, prefixes []string) bool {
	for _, p := range prefixes {
		if isUnderOrEqual(path, p) {
			return true
		}
	}
	return false
}

// isUnderOrEqual returns true if path is equal to or under prefix.
func isUnderOrEqual(path, prefix string) bool {
	path = filepath.Clean(path)
	prefix = filepath.Clean(prefix)
	if path == prefix {
		return true
	}
	return strings.HasPrefix(path, prefix+string(filepath.Separator))
}
