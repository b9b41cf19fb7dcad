// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package snapshot exports and imports complete ledger state.
//
// A snapshot is a directory holding the zstd compressed JSON dump of the
// ledger and a manifest recording its size and sha256. Import refuses a data
// file whose checksum does not match and only restores into an empty ledger.
//
// Usage:
//
//	manager := snapshot.NewManager(app.GetSnapshotsDir())
//	manifest, err := manager.Create("before-listing", runtime)
//	if err != nil {
//	    // handle error
//	}
package snapshot
