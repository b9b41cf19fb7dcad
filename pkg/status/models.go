// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package status

import (
	"time"
)

// Report is a point-in-time view of the vesting ledger.
type Report struct {
	GeneratedAt time.Time         `json:"generatedAt" yaml:"generatedAt"`
	Ledger      LedgerInfo        `json:"ledger" yaml:"ledger"`
	Milestones  []MilestoneStatus `json:"milestones" yaml:"milestones"`
	Totals      Totals            `json:"totals" yaml:"totals"`
	LastActions []Action          `json:"lastActions,omitempty" yaml:"lastActions,omitempty"`
}

// LedgerInfo mirrors the global ledger with addresses rendered as checksummed
// hex so that every output format shows the same strings.
type LedgerInfo struct {
	Authority       string `json:"authority" yaml:"authority"`
	TokenMint       string `json:"tokenMint" yaml:"tokenMint"`
	TreasuryWallet  string `json:"treasuryWallet" yaml:"treasuryWallet"`
	BurnWallet      string `json:"burnWallet" yaml:"burnWallet"`
	MarketingWallet string `json:"marketingWallet" yaml:"marketingWallet"`
	VenueProgram    string `json:"venueProgram" yaml:"venueProgram"`
	LiquidityPool   string `json:"liquidityPool,omitempty" yaml:"liquidityPool,omitempty"`

	MarketCap          uint64    `json:"marketCap" yaml:"marketCap"`
	CurrentMilestone   uint8     `json:"currentMilestone" yaml:"currentMilestone"`
	MilestoneCount     int       `json:"milestoneCount" yaml:"milestoneCount"`
	UnlockedPercent    uint8     `json:"unlockedPercent" yaml:"unlockedPercent"`
	NextThreshold      uint64    `json:"nextThreshold,omitempty" yaml:"nextThreshold,omitempty"`
	FullUnlockReached  bool      `json:"fullUnlockReached" yaml:"fullUnlockReached"`
	FullUnlockDeadline time.Time `json:"fullUnlockDeadline" yaml:"fullUnlockDeadline"`

	Participants  uint64   `json:"participants" yaml:"participants"`
	ExemptWallets []string `json:"exemptWallets" yaml:"exemptWallets"`
}

type MilestoneStatus struct {
	Tier          int    `json:"tier" yaml:"tier"`
	Threshold     uint64 `json:"threshold" yaml:"threshold"`
	UnlockPercent uint8  `json:"unlockPercent" yaml:"unlockPercent"`
	Reached       bool   `json:"reached" yaml:"reached"`
}

// Totals aggregates every participant record against the treasury.
// Shortfall is how much of the outstanding lock the treasury cannot cover.
type Totals struct {
	Locked          uint64 `json:"locked" yaml:"locked"`
	Unlocked        uint64 `json:"unlocked" yaml:"unlocked"`
	TreasuryBalance uint64 `json:"treasuryBalance" yaml:"treasuryBalance"`
	Shortfall       uint64 `json:"shortfall" yaml:"shortfall"`
}

// Action is the last invocation of a mutating command.
type Action struct {
	Command string    `json:"command" yaml:"command"`
	At      time.Time `json:"at" yaml:"at"`
	Detail  string    `json:"detail,omitempty" yaml:"detail,omitempty"`
}
