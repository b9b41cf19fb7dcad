// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vesting

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultMilestonesValid(t *testing.T) {
	require := require.New(t)
	table := DefaultMilestones()
	require.NoError(table.Validate())
	require.Equal(8, table.Len())
	require.Equal(Milestone{Threshold: 2_500_000, UnlockPercent: 100}, table.Last())
}

func TestMilestoneTableValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*MilestoneTable)
	}{
		{
			name:   "threshold not increasing",
			mutate: func(t *MilestoneTable) { t[3].Threshold = t[2].Threshold },
		},
		{
			name:   "percent not increasing",
			mutate: func(t *MilestoneTable) { t[5].UnlockPercent = t[4].UnlockPercent },
		},
		{
			name:   "last percent below full",
			mutate: func(t *MilestoneTable) { t[7].UnlockPercent = 90 },
		},
		{
			name:   "zero threshold",
			mutate: func(t *MilestoneTable) { t[0].Threshold = 0 },
		},
		{
			name:   "percent above full",
			mutate: func(t *MilestoneTable) { t[7].UnlockPercent = 101 },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := DefaultMilestones()
			tt.mutate(&table)
			require.ErrorIs(t, table.Validate(), ErrInvalidMilestones)
		})
	}
}

func TestMilestoneTableReached(t *testing.T) {
	table := DefaultMilestones()
	tests := []struct {
		start     uint8
		marketCap uint64
		want      uint8
	}{
		{0, 44_999, 0},
		{0, 45_000, 1},
		{0, 105_499, 1},
		{0, 225_000, 3},
		{3, 225_000, 3},
		{3, 1_000_000, 6},
		{0, 2_500_000, 8},
		{8, 9_000_000, 8},
		// a lower report never moves the index back
		{5, 50_000, 5},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, table.Reached(tt.start, tt.marketCap), "start %d cap %d", tt.start, tt.marketCap)
	}
}
