// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vesting

import (
	"fmt"
	"time"

	"github.com/AngouNin/Hotwings-MeMe/pkg/constants"
)

// AdvanceStatus tells the caller how to settle after a market cap report.
type AdvanceStatus int

const (
	// Advanced means at least one new tier was crossed.
	Advanced AdvanceStatus = iota + 1
	// FullUnlock means no new tier was crossed but full unlock is active,
	// so settlement proceeds at 100%.
	FullUnlock
)

func (s AdvanceStatus) String() string {
	switch s {
	case Advanced:
		return "advanced"
	case FullUnlock:
		return "full-unlock"
	default:
		return "unknown"
	}
}

// AdvanceResult is the outcome of a successful Advance.
type AdvanceResult struct {
	Status AdvanceStatus
	// Milestone is the tier settlement applies.
	Milestone Milestone
	Previous  uint8
	Index     uint8
}

// ValidateMarketCap rejects zero and absurd reports.
func ValidateMarketCap(marketCap uint64) error {
	if marketCap == 0 || marketCap >= constants.MarketCapCeiling {
		return fmt.Errorf("%w: %d", ErrInvalidMarketCapValue, marketCap)
	}
	return nil
}

// Advance records reportedCap and moves the tier index forward across every
// threshold it clears.
//
// The market cap is recorded even when Advance returns ErrMilestoneNotReached
// or ErrMilestoneCompleted, so callers may persist g on those errors. Every other error leaves g as it was.
func Advance(g *GlobalLedger, reportedCap uint64, now time.Time) (AdvanceResult, error) {
	if err := ValidateMarketCap(reportedCap); err != nil {
		return AdvanceResult{}, err
	}

	fullUnlock := g.FullUnlockReached ||
		reportedCap >= g.Milestones.Last().Threshold ||
		!now.Before(g.FullUnlockDeadline)

	previous := g.CurrentMilestone
	next := g.Milestones.Reached(previous, reportedCap)

	if next == previous && !fullUnlock {
		g.CurrentMarketCap = reportedCap
		if int(previous) >= g.Milestones.Len() {
			return AdvanceResult{}, ErrMilestoneCompleted
		}
		return AdvanceResult{}, fmt.Errorf("%w: market cap %d is below %d",
			ErrMilestoneNotReached, reportedCap, g.Milestones[previous].Threshold)
	}

	g.CurrentMarketCap = reportedCap
	g.CurrentMilestone = next
	g.FullUnlockReached = fullUnlock

	result := AdvanceResult{
		Status:    Advanced,
		Milestone: g.Milestones.Last(),
		Previous:  previous,
		Index:     next,
	}
	if next == previous {
		result.Status = FullUnlock
	}
	if next > 0 && !fullUnlock {
		result.Milestone = g.Milestones[next-1]
	}
	return result, nil
}
