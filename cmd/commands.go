// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

// Command names exported for testing
const (
	// VestingCmd is the vesting command name
	VestingCmd = "vesting"

	// ExemptCmd is the exempt command name
	ExemptCmd = "exempt"

	// AdminCmd is the admin command name
	AdminCmd = "admin"

	// HookCmd is the hook command name
	HookCmd = "hook"

	// TokenCmd is the token command name
	TokenCmd = "token"

	// SnapshotCmd is the snapshot command name
	SnapshotCmd = "snapshot"

	// ConfigCmd is the config command name
	ConfigCmd = "config"

	// DatabaseCmd is the database command name
	DatabaseCmd = "database"

	// DoctorCmd is the doctor command name
	DoctorCmd = "doctor"
)
