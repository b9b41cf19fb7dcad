// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ux

import (
	"fmt"
	"io"
	"time"

	"github.com/AngouNin/Hotwings-MeMe/pkg/vesting"
	"github.com/luxfi/geth/common"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// NewTable creates a left aligned table with a header row.
func NewTable(w io.Writer, headers ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.Configure(func(config *tablewriter.Config) {
		config.Row.Alignment.Global = tw.AlignLeft
	})
	anyHeaders := make([]any, len(headers))
	for i, h := range headers {
		anyHeaders[i] = h
	}
	table.Header(anyHeaders...)
	return table
}

// PrintGlobalLedger prints the ledger configuration and progress.
func PrintGlobalLedger(w io.Writer, g *vesting.GlobalLedger) {
	table := NewTable(w, "Field", "Value")
	rows := [][]string{
		{"Authority", g.Authority.Hex()},
		{"Token mint", g.TokenMint.Hex()},
		{"Treasury wallet", g.TreasuryWallet.Hex()},
		{"Burn wallet", g.BurnWallet.Hex()},
		{"Marketing wallet", g.MarketingWallet.Hex()},
		{"Venue program", g.VenueProgram.Hex()},
		{"Market cap", FormatAmount(g.CurrentMarketCap)},
		{"Milestone", fmt.Sprintf("%d/%d", g.CurrentMilestone, g.Milestones.Len())},
		{"Unlocked", fmt.Sprintf("%d%%", g.UnlockedPercent())},
		{"Full unlock", fmt.Sprintf("%t (deadline %s)", g.FullUnlockReached, g.FullUnlockDeadline.Format(time.RFC3339))},
		{"Participants", FormatAmount(g.ParticipantCount)},
		{"Exempt wallets", fmt.Sprintf("%d", g.ExemptWallets.Len())},
	}
	if next, ok := g.NextMilestone(); ok && !g.FullUnlockReached {
		rows = append(rows, []string{"Next milestone", fmt.Sprintf("%s -> %d%%", FormatAmount(next.Threshold), next.UnlockPercent)})
	}
	if g.LiquidityPool != (common.Address{}) {
		rows = append(rows, []string{"Liquidity pool", g.LiquidityPool.Hex()})
	}
	for _, row := range rows {
		_ = table.Append(row)
	}
	_ = table.Render()
}

// PrintMilestones prints the tier table marking the tiers already crossed.
func PrintMilestones(w io.Writer, g *vesting.GlobalLedger) {
	table := NewTable(w, "Tier", "Threshold", "Unlock", "Reached")
	for i, m := range g.Milestones {
		reached := "no"
		if i < int(g.CurrentMilestone) {
			reached = "yes"
		}
		_ = table.Append([]string{
			fmt.Sprintf("%d", i+1),
			FormatAmount(m.Threshold),
			fmt.Sprintf("%d%%", m.UnlockPercent),
			reached,
		})
	}
	_ = table.Render()
}

// PrintParticipants prints one row per participant.
func PrintParticipants(w io.Writer, participants []*vesting.Participant) {
	table := NewTable(w, "Wallet", "Settlement", "Locked", "Unlocked", "Last tier")
	for _, p := range participants {
		_ = table.Append([]string{
			p.Wallet.Hex(),
			p.SettlementAccount.Hex(),
			FormatAmount(p.TotalLocked),
			FormatAmount(p.TotalUnlocked),
			fmt.Sprintf("%d", p.LastMilestone),
		})
	}
	_ = table.Render()
}

// PrintReleases prints the outcome of a settlement batch.
func PrintReleases(w io.Writer, releases []vesting.Release) {
	table := NewTable(w, "Wallet", "Released", "User", "Burn", "Marketing", "Clamped")
	for _, r := range releases {
		_ = table.Append([]string{
			r.Wallet.Hex(),
			FormatAmount(r.Delta),
			FormatAmount(r.UserAmount),
			FormatAmount(r.BurnAmount),
			FormatAmount(r.MarketingAmount),
			fmt.Sprintf("%t", r.Clamped),
		})
	}
	_ = table.Render()
}
