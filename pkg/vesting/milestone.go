// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vesting

import (
	"fmt"

	"github.com/AngouNin/Hotwings-MeMe/pkg/constants"
)

// Milestone is a market-cap threshold paired with the cumulative share of the
// original lock that becomes releasable once the threshold is crossed.
type Milestone struct {
	Threshold     uint64 `json:"threshold"`
	UnlockPercent uint8  `json:"unlockPercent"`
}

// MilestoneTable is the ordered, fixed-length tier list.
type MilestoneTable [constants.MaxMilestones]Milestone

// DefaultMilestones returns the tiers every ledger is initialized with.
func DefaultMilestones() MilestoneTable {
	return MilestoneTable{
		{Threshold: 45_000, UnlockPercent: 10},
		{Threshold: 105_500, UnlockPercent: 20},
		{Threshold: 225_000, UnlockPercent: 30},
		{Threshold: 395_000, UnlockPercent: 40},
		{Threshold: 650_000, UnlockPercent: 50},
		{Threshold: 997_000, UnlockPercent: 60},
		{Threshold: 1_574_000, UnlockPercent: 70},
		{Threshold: 2_500_000, UnlockPercent: 100},
	}
}

// Len is always constants.MaxMilestones.
func (t MilestoneTable) Len() int {
	return len(t)
}

// Last returns the final tier.
func (t MilestoneTable) Last() Milestone {
	return t[len(t)-1]
}

// Validate checks that thresholds and percentages are strictly increasing and
// that the final tier releases everything.
func (t MilestoneTable) Validate() error {
	for i, m := range t {
		if m.Threshold == 0 || m.UnlockPercent == 0 || m.UnlockPercent > constants.FullUnlockPercent {
			return fmt.Errorf("%w: tier %d has threshold %d and percent %d", ErrInvalidMilestones, i, m.Threshold, m.UnlockPercent)
		}
		if i == 0 {
			continue
		}
		prev := t[i-1]
		if m.Threshold <= prev.Threshold {
			return fmt.Errorf("%w: tier %d threshold %d does not exceed %d", ErrInvalidMilestones, i, m.Threshold, prev.Threshold)
		}
		if m.UnlockPercent <= prev.UnlockPercent {
			return fmt.Errorf("%w: tier %d percent %d does not exceed %d", ErrInvalidMilestones, i, m.UnlockPercent, prev.UnlockPercent)
		}
	}
	if t.Last().UnlockPercent != constants.FullUnlockPercent {
		return fmt.Errorf("%w: last tier must unlock %d%%", ErrInvalidMilestones, constants.FullUnlockPercent)
	}
	return nil
}

// Reached returns the number of tiers cleared by marketCap when scanning
// forward from index start.
func (t MilestoneTable) Reached(start uint8, marketCap uint64) uint8 {
	i := int(start)
	for i < len(t) && marketCap >= t[i].Threshold {
		i++
	}
	return uint8(i)
}
