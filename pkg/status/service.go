// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package status

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/AngouNin/Hotwings-MeMe/pkg/vesting"
	"github.com/holiman/uint256"
	"github.com/luxfi/geth/common"
)

var ErrTotalsOverflow = errors.New("ledger totals overflow")

// LedgerReader is the read side of the ledger runtime.
type LedgerReader interface {
	Global() (*vesting.GlobalLedger, error)
	Participants() ([]*vesting.Participant, error)
	Balance(addr common.Address) (uint64, error)
}

// Collect builds a Report from the ledger. actions may be nil.
func Collect(r LedgerReader, actions []Action, now time.Time) (*Report, error) {
	g, err := r.Global()
	if err != nil {
		return nil, err
	}
	participants, err := r.Participants()
	if err != nil {
		return nil, err
	}
	treasury, err := r.Balance(g.TreasuryWallet)
	if err != nil {
		return nil, fmt.Errorf("failed to read treasury balance: %w", err)
	}

	totals, err := sumParticipants(participants)
	if err != nil {
		return nil, err
	}
	totals.TreasuryBalance = treasury
	if totals.Locked > treasury {
		totals.Shortfall = totals.Locked - treasury
	}

	sorted := append([]Action(nil), actions...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Command < sorted[j].Command })

	return &Report{
		GeneratedAt: now.UTC(),
		Ledger:      ledgerInfo(g),
		Milestones:  milestones(g),
		Totals:      totals,
		LastActions: sorted,
	}, nil
}

func ledgerInfo(g *vesting.GlobalLedger) LedgerInfo {
	info := LedgerInfo{
		Authority:          g.Authority.Hex(),
		TokenMint:          g.TokenMint.Hex(),
		TreasuryWallet:     g.TreasuryWallet.Hex(),
		BurnWallet:         g.BurnWallet.Hex(),
		MarketingWallet:    g.MarketingWallet.Hex(),
		VenueProgram:       g.VenueProgram.Hex(),
		MarketCap:          g.CurrentMarketCap,
		CurrentMilestone:   g.CurrentMilestone,
		MilestoneCount:     g.Milestones.Len(),
		UnlockedPercent:    g.UnlockedPercent(),
		FullUnlockReached:  g.FullUnlockReached,
		FullUnlockDeadline: g.FullUnlockDeadline.UTC(),
		Participants:       g.ParticipantCount,
		ExemptWallets:      make([]string, 0, g.ExemptWallets.Len()),
	}
	if g.LiquidityPool != (common.Address{}) {
		info.LiquidityPool = g.LiquidityPool.Hex()
	}
	if next, ok := g.NextMilestone(); ok && !g.FullUnlockReached {
		info.NextThreshold = next.Threshold
	}
	for _, w := range g.ExemptWallets.Wallets {
		info.ExemptWallets = append(info.ExemptWallets, w.Hex())
	}
	return info
}

func milestones(g *vesting.GlobalLedger) []MilestoneStatus {
	rows := make([]MilestoneStatus, 0, g.Milestones.Len())
	for i, m := range g.Milestones {
		rows = append(rows, MilestoneStatus{
			Tier:          i + 1,
			Threshold:     m.Threshold,
			UnlockPercent: m.UnlockPercent,
			Reached:       g.FullUnlockReached || i < int(g.CurrentMilestone),
		})
	}
	return rows
}

func sumParticipants(participants []*vesting.Participant) (Totals, error) {
	var locked, unlocked uint256.Int
	for _, p := range participants {
		locked.Add(&locked, uint256.NewInt(p.TotalLocked))
		unlocked.Add(&unlocked, uint256.NewInt(p.TotalUnlocked))
	}
	if !locked.IsUint64() || !unlocked.IsUint64() {
		return Totals{}, ErrTotalsOverflow
	}
	return Totals{Locked: locked.Uint64(), Unlocked: unlocked.Uint64()}, nil
}
