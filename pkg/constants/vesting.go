// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package constants

import "time"

const (
	// MaxMilestones is the fixed number of unlock tiers.
	MaxMilestones = 8
	// MaxParticipants caps the number of vesting records.
	MaxParticipants = 1000
	// MaxHoldAmount is the anti-whale cap on a non-exempt recipient balance.
	MaxHoldAmount uint64 = 50_000_000
	// MaxExemptWallets caps the anti-whale exemption registry.
	MaxExemptWallets = 20

	// MarketCapCeiling rejects absurd oracle reports.
	MarketCapCeiling uint64 = 10_000_000

	// FullUnlockDelay is measured from initialization.
	FullUnlockDelay = 90 * 24 * time.Hour

	// Settlement tax is TaxNumerator/TaxDenominator (1.5%).
	TaxNumerator   uint64 = 15
	TaxDenominator uint64 = 1000

	PercentDenominator uint64 = 100
	FullUnlockPercent  uint8  = 100
)
