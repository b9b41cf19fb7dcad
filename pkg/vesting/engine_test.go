// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vesting

import (
	"testing"

	"github.com/AngouNin/Hotwings-MeMe/pkg/constants"
	"github.com/stretchr/testify/require"
)

func TestAdvanceRejectsInvalidMarketCap(t *testing.T) {
	for _, marketCap := range []uint64{0, constants.MarketCapCeiling, constants.MarketCapCeiling + 1} {
		g := newTestGlobal(t)
		_, err := Advance(g, marketCap, testNow)
		require.ErrorIs(t, err, ErrInvalidMarketCapValue)
		require.Zero(t, g.CurrentMarketCap)
	}
}

func TestAdvanceBelowFirstTier(t *testing.T) {
	require := require.New(t)
	g := newTestGlobal(t)

	_, err := Advance(g, 40_000, testNow)
	require.ErrorIs(err, ErrMilestoneNotReached)
	require.Equal(uint64(40_000), g.CurrentMarketCap)
	require.Zero(g.CurrentMilestone)
	require.False(g.FullUnlockReached)
}

func TestAdvanceCrossesSeveralTiers(t *testing.T) {
	require := require.New(t)
	g := newTestGlobal(t)

	result, err := Advance(g, 45_000, testNow)
	require.NoError(err)
	require.Equal(Advanced, result.Status)
	require.Equal(uint8(0), result.Previous)
	require.Equal(uint8(1), result.Index)
	require.Equal(uint8(10), result.Milestone.UnlockPercent)

	result, err = Advance(g, 400_000, testNow)
	require.NoError(err)
	require.Equal(uint8(1), result.Previous)
	require.Equal(uint8(4), result.Index)
	require.Equal(uint8(40), result.Milestone.UnlockPercent)
	require.Equal(uint8(40), g.UnlockedPercent())

	next, ok := g.NextMilestone()
	require.True(ok)
	require.Equal(uint64(650_000), next.Threshold)
	require.Equal(4, g.MilestonesRemaining())
}

func TestAdvanceOutOfOrderReport(t *testing.T) {
	require := require.New(t)
	g := newTestGlobal(t)

	_, err := Advance(g, 700_000, testNow)
	require.NoError(err)
	require.Equal(uint8(5), g.CurrentMilestone)

	_, err = Advance(g, 100_000, testNow)
	require.ErrorIs(err, ErrMilestoneNotReached)
	require.Equal(uint8(5), g.CurrentMilestone)
	require.Equal(uint64(100_000), g.CurrentMarketCap)
}

func TestAdvanceFinalTierIsFullUnlock(t *testing.T) {
	require := require.New(t)
	g := newTestGlobal(t)

	result, err := Advance(g, 2_500_000, testNow)
	require.NoError(err)
	require.Equal(Advanced, result.Status)
	require.Equal(uint8(8), result.Index)
	require.True(g.FullUnlockReached)
	require.Equal(uint8(100), result.Milestone.UnlockPercent)

	// full unlock is sticky, so a lower report still settles at 100%
	result, err = Advance(g, 50_000, testNow)
	require.NoError(err)
	require.Equal(FullUnlock, result.Status)
	require.Equal(uint8(8), g.CurrentMilestone)
	require.True(g.FullUnlockReached)
	require.Equal(uint64(50_000), g.CurrentMarketCap)
}

func TestAdvanceDeadlineTriggersFullUnlock(t *testing.T) {
	require := require.New(t)
	g := newTestGlobal(t)
	_, err := Advance(g, 110_000, testNow)
	require.NoError(err)

	result, err := Advance(g, 110_000, g.FullUnlockDeadline)
	require.NoError(err)
	require.Equal(FullUnlock, result.Status)
	require.Equal(uint8(2), result.Index)
	require.True(g.FullUnlockReached)
	require.Equal(uint8(100), result.Milestone.UnlockPercent)
	require.Equal(uint8(100), g.UnlockedPercent())
}

func TestAdvanceCompletedWithoutFullUnlock(t *testing.T) {
	require := require.New(t)
	g := newTestGlobal(t)
	g.CurrentMilestone = 8
	g.CurrentMarketCap = 123

	_, err := Advance(g, 60_000, testNow)
	require.ErrorIs(err, ErrMilestoneCompleted)
	require.Equal(uint64(60_000), g.CurrentMarketCap)
	require.Equal(uint8(8), g.CurrentMilestone)
}

func TestAdvanceStatusString(t *testing.T) {
	require.Equal(t, "advanced", Advanced.String())
	require.Equal(t, "full-unlock", FullUnlock.String())
	require.Equal(t, "unknown", AdvanceStatus(0).String())
}
