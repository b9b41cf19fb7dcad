// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package constants

const (
	DefaultPerms755    = 0o755
	WriteReadReadPerms = 0o644

	BaseDirName = ".hotwings"
	LogDir      = "logs"
	DBDir       = "db"
	SnapshotDir = "snapshots"

	LogName = "hotwings"

	MaxLogFileSize   = 4
	MaxNumOfLogFiles = 5
	RetainOldFiles   = 0 // retain all old log files

	// Config file
	DefaultConfigFileName = "cli"
	DefaultConfigFileType = "json"
	LastActionsFileName   = "last-actions.json"

	// Config keys
	ConfigDBTypeKey = "db-type"
	ConfigDBDirKey  = "db-dir"
	ConfigSignerKey = "signer"

	// Environment
	EnvPrefix         = "HOTWINGS"
	EnvBaseDir        = "HOTWINGS_HOME"
	EnvNonInteractive = "HOTWINGS_NON_INTERACTIVE"

	// Database backends
	BadgerDB = "badgerdb"
	MemDB    = "memdb"

	DefaultDBType = BadgerDB

	// Snapshot files
	SnapshotDataFileName     = "ledger.json.zst"
	SnapshotManifestFileName = "manifest.json"
)
