// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vesting

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/AngouNin/Hotwings-MeMe/pkg/constants"
	"github.com/stretchr/testify/require"
)

func advanceTo(t *testing.T, g *GlobalLedger, marketCap uint64) Milestone {
	t.Helper()
	result, err := Advance(g, marketCap, testNow)
	require.NoError(t, err)
	return result.Milestone
}

func TestSettleFirstAndSecondTier(t *testing.T) {
	require := require.New(t)
	g := newTestGlobal(t)
	executor := &recordingExecutor{}
	events := &eventLog{}
	calc := &UnlockCalculator{Transfers: executor, Events: events}
	p := &Participant{Wallet: testWalletA, SettlementAccount: testWalletA, TotalLocked: 1_000_000}

	tier := advanceTo(t, g, 45_000)
	release, err := calc.Settle(g, p, tier, 0)
	require.NoError(err)
	require.Equal(uint64(100_000), release.Delta)
	require.Equal(uint64(1_500), release.Tax)
	require.Equal(uint64(750), release.BurnAmount)
	require.Equal(uint64(750), release.MarketingAmount)
	require.Equal(uint64(98_500), release.UserAmount)
	require.Equal(uint64(900_000), p.TotalLocked)
	require.Equal(uint64(100_000), p.TotalUnlocked)
	require.Equal(uint8(1), p.LastMilestone)

	require.Len(executor.executed, 1)
	require.Equal([]Transfer{
		{Kind: TransferUser, From: testTreasury, To: testWalletA, Amount: 98_500},
		{Kind: TransferBurn, From: testTreasury, To: testBurn, Amount: 750},
		{Kind: TransferMarketing, From: testTreasury, To: testMarketing, Amount: 750},
	}, executor.executed[0])

	tier = advanceTo(t, g, 105_500)
	release, err = calc.Settle(g, p, tier, 98_500)
	require.NoError(err)
	require.Equal(uint64(100_000), release.Delta)
	require.Equal(uint64(1_500), release.Tax)
	require.Equal(uint64(200_000), p.TotalUnlocked)
	require.Equal(uint64(800_000), p.TotalLocked)
	require.Equal(uint8(2), p.LastMilestone)

	require.Equal([]string{EventMilestoneProcessed, EventMilestoneProcessed}, events.names())
	var processed MilestoneProcessedEvent
	require.NoError(json.Unmarshal(events.events[1].payload, &processed))
	require.Equal(MilestoneProcessedEvent{
		Wallet:         testWalletA,
		UnlockedTokens: 100_000,
		MilestoneIndex: 2,
		Tax:            1_500,
		BurnTax:        750,
		MarketingTax:   750,
	}, processed)
}

func TestSettleIsIdempotent(t *testing.T) {
	require := require.New(t)
	g := newTestGlobal(t)
	executor := &recordingExecutor{}
	calc := &UnlockCalculator{Transfers: executor}
	p := &Participant{Wallet: testWalletA, SettlementAccount: testWalletA, TotalLocked: 1_000_000}

	tier := advanceTo(t, g, 230_000)
	_, err := calc.Settle(g, p, tier, 0)
	require.NoError(err)
	before := *p

	release, err := calc.Settle(g, p, tier, 0)
	require.NoError(err)
	require.True(release.NothingDue())
	require.Equal(before, *p)
	require.Len(executor.executed, 1)
}

func TestSettleAntiWhaleClamp(t *testing.T) {
	require := require.New(t)
	g := newTestGlobal(t)
	tier := advanceTo(t, g, 45_000)
	balance := constants.MaxHoldAmount - 50

	calc := &UnlockCalculator{Transfers: &recordingExecutor{}}
	p := &Participant{Wallet: testWalletA, SettlementAccount: testWalletA, TotalLocked: 1_000_000}
	release, err := calc.Settle(g, p, tier, balance)
	require.NoError(err)
	require.True(release.Clamped)
	require.Equal(uint64(100_000), release.Due)
	require.Equal(uint64(50), release.Delta)
	require.Equal(uint64(50), p.TotalUnlocked)

	_, err = g.ExemptWallets.Add(testWalletB)
	require.NoError(err)
	exempt := &Participant{Wallet: testWalletB, SettlementAccount: testWalletB, TotalLocked: 1_000_000}
	release, err = calc.Settle(g, exempt, tier, balance)
	require.NoError(err)
	require.False(release.Clamped)
	require.Equal(uint64(100_000), release.Delta)
}

func TestSettleClampLeavesRemainderForLater(t *testing.T) {
	require := require.New(t)
	g := newTestGlobal(t)
	tier := advanceTo(t, g, 45_000)
	calc := &UnlockCalculator{Transfers: &recordingExecutor{}}
	p := &Participant{Wallet: testWalletA, SettlementAccount: testWalletA, TotalLocked: 1_000_000}

	_, err := calc.Settle(g, p, tier, constants.MaxHoldAmount)
	require.NoError(err)
	require.Zero(p.TotalUnlocked)

	// once the recipient has room the withheld amount is paid at the same tier
	release, err := calc.Settle(g, p, tier, 0)
	require.NoError(err)
	require.Equal(uint64(100_000), release.Delta)
}

func TestSettleFullUnlockBypassesClamp(t *testing.T) {
	require := require.New(t)
	g := newTestGlobal(t)
	tier := advanceTo(t, g, 45_000)
	calc := &UnlockCalculator{Transfers: &recordingExecutor{}}
	p := &Participant{Wallet: testWalletA, SettlementAccount: testWalletA, TotalLocked: 1_000_000}
	_, err := calc.Settle(g, p, tier, 0)
	require.NoError(err)

	tier = advanceTo(t, g, 3_000_000)
	release, err := calc.Settle(g, p, tier, constants.MaxHoldAmount*2)
	require.NoError(err)
	require.False(release.Clamped)
	require.Equal(uint64(900_000), release.Delta)
	require.Zero(p.TotalLocked)
	require.Equal(uint64(1_000_000), p.TotalUnlocked)
}

func TestSettleNothingDue(t *testing.T) {
	require := require.New(t)
	g := newTestGlobal(t)
	tier := advanceTo(t, g, 45_000)
	executor := &recordingExecutor{}
	calc := &UnlockCalculator{Transfers: executor}

	empty := &Participant{Wallet: testWalletA, SettlementAccount: testWalletA}
	release, err := calc.Settle(g, empty, tier, 0)
	require.NoError(err)
	require.True(release.NothingDue())
	require.Empty(executor.executed)
}

func TestSettleTransferFailureLeavesParticipant(t *testing.T) {
	require := require.New(t)
	g := newTestGlobal(t)
	tier := advanceTo(t, g, 45_000)
	events := &eventLog{}
	calc := &UnlockCalculator{Transfers: &recordingExecutor{err: errTransferRejected}, Events: events}
	p := &Participant{Wallet: testWalletA, SettlementAccount: testWalletA, TotalLocked: 1_000_000}
	before := *p

	_, err := calc.Settle(g, p, tier, 0)
	require.ErrorIs(err, ErrTokenTransferFailed)
	require.Equal(before, *p)
	require.Empty(events.events)
}

func TestSettleOverflow(t *testing.T) {
	g := newTestGlobal(t)
	tier := advanceTo(t, g, 45_000)
	calc := &UnlockCalculator{Transfers: &recordingExecutor{}}
	p := &Participant{Wallet: testWalletA, TotalLocked: math.MaxUint64, TotalUnlocked: 1}

	_, err := calc.Settle(g, p, tier, 0)
	require.ErrorIs(t, err, ErrArithmeticOverflow)
}

func TestSettleConservation(t *testing.T) {
	require := require.New(t)
	g := newTestGlobal(t)
	executor := &recordingExecutor{}
	calc := &UnlockCalculator{Transfers: executor}
	p := &Participant{Wallet: testWalletA, SettlementAccount: testWalletA, TotalLocked: 3_333_333}

	var paid uint64
	for _, marketCap := range []uint64{45_000, 300_000, 100_000, 1_000_000, 2_600_000, 2_600_000} {
		result, err := Advance(g, marketCap, testNow)
		if err != nil {
			require.ErrorIs(err, ErrMilestoneNotReached)
			continue
		}
		release, err := calc.Settle(g, p, result.Milestone, 0)
		require.NoError(err)
		paid += release.Delta
		require.Equal(uint64(3_333_333), p.TotalLocked+p.TotalUnlocked)
	}
	require.Equal(uint64(3_333_333), paid)
	require.Zero(p.TotalLocked)

	var moved uint64
	for _, set := range executor.executed {
		for _, tr := range set {
			require.Equal(testTreasury, tr.From)
			moved += tr.Amount
		}
	}
	require.Equal(paid, moved)
}
