// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vesting

import (
	"testing"

	"github.com/AngouNin/Hotwings-MeMe/pkg/constants"
	"github.com/luxfi/geth/common"
	"github.com/stretchr/testify/require"
)

func TestNewGlobalLedger(t *testing.T) {
	require := require.New(t)
	g, err := NewGlobalLedger(testInitParams(), testNow)
	require.NoError(err)
	require.Equal(testNow.Add(constants.FullUnlockDelay), g.FullUnlockDeadline)
	require.Equal(DefaultMilestones(), g.Milestones)
	require.Zero(g.CurrentMilestone)
	require.Zero(g.UnlockedPercent())
	require.Equal(8, g.MilestonesRemaining())
	require.Equal(testPool, g.LiquidityPool)
}

func TestNewGlobalLedgerRejects(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*InitParams)
		wantErr error
	}{
		{"no authority", func(p *InitParams) { p.Authority = common.Address{} }, ErrInvalidAuthority},
		{"no mint", func(p *InitParams) { p.TokenMint = common.Address{} }, ErrAccountNotFound},
		{"no venue", func(p *InitParams) { p.VenueProgram = common.Address{} }, ErrAccountNotFound},
		{"no burn", func(p *InitParams) { p.BurnWallet = common.Address{} }, ErrInvalidBurnWallet},
		{"burn is mint", func(p *InitParams) { p.BurnWallet = testMint }, ErrInvalidBurnWallet},
		{"marketing is burn", func(p *InitParams) { p.MarketingWallet = testBurn }, ErrInvalidMarketingWallet},
		{"marketing is venue", func(p *InitParams) { p.MarketingWallet = testVenue }, ErrInvalidMarketingWallet},
		{"treasury is marketing", func(p *InitParams) { p.TreasuryWallet = testMarketing }, ErrInvalidProjectWallet},
		{"no treasury", func(p *InitParams) { p.TreasuryWallet = common.Address{} }, ErrInvalidProjectWallet},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := testInitParams()
			tt.mutate(&params)
			_, err := NewGlobalLedger(params, testNow)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAuthorize(t *testing.T) {
	require := require.New(t)
	g := newTestGlobal(t)
	require.NoError(g.Authorize(testAuthority))
	require.ErrorIs(g.Authorize(testWalletA), ErrUnauthorized)
	require.ErrorIs(g.Authorize(common.Address{}), ErrUnauthorized)
}

func TestIsVenueOwner(t *testing.T) {
	g := newTestGlobal(t)
	require.True(t, g.IsVenueOwner(testVenue))
	require.False(t, g.IsVenueOwner(testWalletA))
}
