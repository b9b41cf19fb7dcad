// Copyright (C) 2022, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package commands

// CLIBinary is set by the suite once the binary is built.
var CLIBinary = "./bin/hotwings"

const (
	VestingCmd  = "vesting"
	ExemptCmd   = "exempt"
	AdminCmd    = "admin"
	HookCmd     = "hook"
	TokenCmd    = "token"
	SnapshotCmd = "snapshot"
	ConfigCmd   = "config"
	DoctorCmd   = "doctor"
	DatabaseCmd = "database"
)
