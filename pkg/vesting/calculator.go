// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vesting

import (
	"fmt"

	"github.com/AngouNin/Hotwings-MeMe/pkg/constants"
	"github.com/luxfi/geth/common"
)

// TransferKind labels the leg of a settlement a transfer belongs to.
type TransferKind string

const (
	TransferUser      TransferKind = "user"
	TransferBurn      TransferKind = "burn"
	TransferMarketing TransferKind = "marketing"
	TransferMovement  TransferKind = "movement"
)

// Transfer is one instruction for the host transfer primitive.
type Transfer struct {
	Kind   TransferKind
	From   common.Address
	To     common.Address
	Amount uint64
}

// TransferExecutor applies a set of transfers as a single unit: either all of
// them land or none do.
type TransferExecutor interface {
	Execute(transfers []Transfer) error
}

// Release is the computed outcome of settling one participant.
type Release struct {
	Wallet      common.Address
	Destination common.Address
	// Due is what the participant is entitled to before the anti-whale clamp.
	Due     uint64
	Delta   uint64
	Clamped bool
	TaxSplit
	Milestone uint8
}

// NothingDue reports whether the release moves no tokens.
func (r Release) NothingDue() bool {
	return r.Delta == 0
}

// Transfers returns the instruction set for r. Zero-value legs are omitted.
func (r Release) Transfers(g *GlobalLedger) []Transfer {
	legs := []Transfer{
		{Kind: TransferUser, From: g.TreasuryWallet, To: r.Destination, Amount: r.UserAmount},
		{Kind: TransferBurn, From: g.TreasuryWallet, To: g.BurnWallet, Amount: r.BurnAmount},
		{Kind: TransferMarketing, From: g.TreasuryWallet, To: g.MarketingWallet, Amount: r.MarketingAmount},
	}
	transfers := legs[:0]
	for _, leg := range legs {
		if leg.Amount > 0 {
			transfers = append(transfers, leg)
		}
	}
	return transfers
}

// ComputeRelease works out what settling p at tier would move without touching
// any state.
func ComputeRelease(g *GlobalLedger, p *Participant, tier Milestone, recipientBalance uint64) (Release, error) {
	release := Release{
		Wallet:      p.Wallet,
		Destination: p.SettlementAccount,
		Milestone:   g.CurrentMilestone,
	}
	if p.TotalLocked == 0 {
		return release, nil
	}

	original, err := p.OriginalLock()
	if err != nil {
		return Release{}, err
	}
	entitled := original
	if !g.FullUnlockReached {
		entitled, err = checkedMulDiv(original, uint64(tier.UnlockPercent), constants.PercentDenominator)
		if err != nil {
			return Release{}, err
		}
	}
	// Percentages are cumulative over the original lock, so a tier that has
	// already been paid yields nothing.
	due := saturatingSub(entitled, p.TotalUnlocked)
	if due > p.TotalLocked {
		due = p.TotalLocked
	}
	release.Due = due
	release.Delta = due

	if !g.FullUnlockReached && !g.IsExempt(p.Wallet) {
		headroom := saturatingSub(constants.MaxHoldAmount, recipientBalance)
		if release.Delta > headroom {
			release.Delta = headroom
			release.Clamped = true
		}
	}
	if release.Delta == 0 {
		return release, nil
	}

	release.TaxSplit, err = SplitTax(release.Delta)
	if err != nil {
		return Release{}, err
	}
	return release, nil
}

// UnlockCalculator settles participants against the active tier.
type UnlockCalculator struct {
	Transfers TransferExecutor
	Events    EventSink
}

// Settle releases whatever p is due at tier. A release of zero is not an
// error. p is only mutated after the transfers have been executed.
func (c *UnlockCalculator) Settle(g *GlobalLedger, p *Participant, tier Milestone, recipientBalance uint64) (Release, error) {
	release, err := ComputeRelease(g, p, tier, recipientBalance)
	if err != nil {
		return Release{}, err
	}
	if release.NothingDue() {
		return release, nil
	}

	// Validate the bookkeeping before anything moves.
	updated := *p
	if err := updated.release(release.Delta, g.CurrentMilestone); err != nil {
		return Release{}, err
	}

	if err := c.Transfers.Execute(release.Transfers(g)); err != nil {
		return Release{}, fmt.Errorf("%w: %s: %v", ErrTokenTransferFailed, p.Wallet.Hex(), err)
	}
	*p = updated

	if err := EmitMilestoneProcessed(c.Events, release); err != nil {
		return Release{}, err
	}
	return release, nil
}
