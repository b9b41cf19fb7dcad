// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package utils

// Fixture addresses shared by the e2e suites.
const (
	Authority  = "0x00000000000000000000000000000000000000a1"
	Mint       = "0x00000000000000000000000000000000000000b1"
	Burn       = "0x00000000000000000000000000000000000000c1"
	Marketing  = "0x00000000000000000000000000000000000000c2"
	Treasury   = "0x00000000000000000000000000000000000000c3"
	Venue      = "0x00000000000000000000000000000000000000d1"
	VenueVault = "0x00000000000000000000000000000000000000e1"

	Alice        = "0x00000000000000000000000000000000000001a0"
	Bob          = "0x00000000000000000000000000000000000001b0"
	BobAccount   = "0x00000000000000000000000000000000000001b1"
	Carol        = "0x00000000000000000000000000000000000001c0"
	CarolAccount = "0x00000000000000000000000000000000000001c1"
	Stranger     = "0x00000000000000000000000000000000000009f0"

	TreasuryFunding uint64 = 100_000_000
)
