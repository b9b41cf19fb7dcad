// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vesting

import (
	"fmt"
	"time"

	"github.com/AngouNin/Hotwings-MeMe/pkg/constants"
	"github.com/luxfi/geth/common"
)

// GlobalLedger holds program-wide configuration and progression state.
type GlobalLedger struct {
	Authority       common.Address `json:"authority"`
	TokenMint       common.Address `json:"tokenMint"`
	BurnWallet      common.Address `json:"burnWallet"`
	MarketingWallet common.Address `json:"marketingWallet"`
	TreasuryWallet  common.Address `json:"treasuryWallet"`

	Milestones         MilestoneTable `json:"milestones"`
	CurrentMarketCap   uint64         `json:"currentMarketCap"`
	CurrentMilestone   uint8          `json:"currentMilestone"`
	ParticipantCount   uint64         `json:"participantCount"`
	FullUnlockDeadline time.Time      `json:"fullUnlockDeadline"`
	FullUnlockReached  bool           `json:"fullUnlockReached"`

	ExemptWallets ExemptionRegistry `json:"exemptWallets"`

	// VenueProgram is the owner identity of trading-venue accounts; movements
	// sourced from accounts it owns are treated as purchases.
	VenueProgram  common.Address `json:"venueProgram"`
	LiquidityPool common.Address `json:"liquidityPool,omitempty"`
}

// InitParams are the inputs to NewGlobalLedger.
type InitParams struct {
	Authority       common.Address
	TokenMint       common.Address
	BurnWallet      common.Address
	MarketingWallet common.Address
	TreasuryWallet  common.Address
	VenueProgram    common.Address
	LiquidityPool   common.Address
}

// NewGlobalLedger validates params and returns a ledger populated with the
// default tiers and a full-unlock deadline FullUnlockDelay after now.
func NewGlobalLedger(params InitParams, now time.Time) (*GlobalLedger, error) {
	if params.Authority == (common.Address{}) {
		return nil, ErrInvalidAuthority
	}
	if params.TokenMint == (common.Address{}) || params.VenueProgram == (common.Address{}) {
		return nil, ErrAccountNotFound
	}
	// A sink must be a plain external wallet, so it cannot alias the mint,
	// the venue or another sink.
	reserved := []common.Address{params.TokenMint, params.VenueProgram}
	sinks := []struct {
		addr common.Address
		err  error
	}{
		{params.BurnWallet, ErrInvalidBurnWallet},
		{params.MarketingWallet, ErrInvalidMarketingWallet},
		{params.TreasuryWallet, ErrInvalidProjectWallet},
	}
	for _, sink := range sinks {
		if sink.addr == (common.Address{}) {
			return nil, sink.err
		}
		for _, r := range reserved {
			if sink.addr == r {
				return nil, sink.err
			}
		}
		reserved = append(reserved, sink.addr)
	}

	g := &GlobalLedger{
		Authority:          params.Authority,
		TokenMint:          params.TokenMint,
		BurnWallet:         params.BurnWallet,
		MarketingWallet:    params.MarketingWallet,
		TreasuryWallet:     params.TreasuryWallet,
		Milestones:         DefaultMilestones(),
		FullUnlockDeadline: now.Add(constants.FullUnlockDelay).UTC(),
		VenueProgram:       params.VenueProgram,
		LiquidityPool:      params.LiquidityPool,
	}
	return g, g.Validate()
}

// Authorize fails with ErrUnauthorized unless caller is the admin authority.
func (g *GlobalLedger) Authorize(caller common.Address) error {
	if caller == (common.Address{}) || caller != g.Authority {
		return fmt.Errorf("%w: %s is not the ledger authority", ErrUnauthorized, caller.Hex())
	}
	return nil
}

// IsExempt reports whether wallet bypasses the anti-whale clamp.
func (g *GlobalLedger) IsExempt(wallet common.Address) bool {
	return g.ExemptWallets.Contains(wallet)
}

// IsVenueOwner reports whether owner is the configured trading venue.
func (g *GlobalLedger) IsVenueOwner(owner common.Address) bool {
	return g.VenueProgram != (common.Address{}) && owner == g.VenueProgram
}

// MilestonesRemaining is the number of tiers not yet crossed.
func (g *GlobalLedger) MilestonesRemaining() int {
	return g.Milestones.Len() - int(g.CurrentMilestone)
}

// NextMilestone returns the next tier to cross, if any.
func (g *GlobalLedger) NextMilestone() (Milestone, bool) {
	if int(g.CurrentMilestone) >= g.Milestones.Len() {
		return Milestone{}, false
	}
	return g.Milestones[g.CurrentMilestone], true
}

// UnlockedPercent is the cumulative percentage released at the current tier.
func (g *GlobalLedger) UnlockedPercent() uint8 {
	if g.FullUnlockReached {
		return constants.FullUnlockPercent
	}
	if g.CurrentMilestone == 0 {
		return 0
	}
	return g.Milestones[g.CurrentMilestone-1].UnlockPercent
}

// Validate checks the structural invariants of the ledger.
func (g *GlobalLedger) Validate() error {
	if err := g.Milestones.Validate(); err != nil {
		return err
	}
	if int(g.CurrentMilestone) > g.Milestones.Len() {
		return fmt.Errorf("%w: current milestone %d out of range", ErrInvalidMilestones, g.CurrentMilestone)
	}
	if g.ExemptWallets.Len() > constants.MaxExemptWallets {
		return ErrMaxExemptedWallets
	}
	if g.ParticipantCount > constants.MaxParticipants {
		return ErrMaxUsersReached
	}
	return nil
}
