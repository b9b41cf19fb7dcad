// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ux

import (
	"bytes"
	"testing"
	"time"

	"github.com/AngouNin/Hotwings-MeMe/pkg/vesting"
	"github.com/luxfi/geth/common"
	"github.com/stretchr/testify/require"
)

func TestFormatAmount(t *testing.T) {
	require.Equal(t, "0", FormatAmount(0))
	require.Equal(t, "45,000", FormatAmount(45_000))
	require.Equal(t, "50,000,000", FormatAmount(50_000_000))
}

func TestPrintMilestones(t *testing.T) {
	require := require.New(t)
	g := &vesting.GlobalLedger{Milestones: vesting.DefaultMilestones(), CurrentMilestone: 2}

	var buf bytes.Buffer
	PrintMilestones(&buf, g)
	out := buf.String()
	require.Contains(out, "105,500")
	require.Contains(out, "2,500,000")
	require.Contains(out, "100%")
}

func TestPrintGlobalLedger(t *testing.T) {
	require := require.New(t)
	g := &vesting.GlobalLedger{
		Authority:          common.HexToAddress("0x00000000000000000000000000000000000000a1"),
		Milestones:         vesting.DefaultMilestones(),
		CurrentMarketCap:   120_000,
		CurrentMilestone:   2,
		FullUnlockDeadline: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}

	var buf bytes.Buffer
	PrintGlobalLedger(&buf, g)
	out := buf.String()
	require.Contains(out, "120,000")
	require.Contains(out, "2/8")
	require.Contains(out, "20%")
	require.Contains(out, "225,000")
}
