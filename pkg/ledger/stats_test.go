// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"testing"

	"github.com/AngouNin/Hotwings-MeMe/pkg/vesting"
	"github.com/luxfi/database/memdb"
	"github.com/stretchr/testify/require"
)

func TestStats(t *testing.T) {
	require := require.New(t)
	rt := newTestRuntime(t)
	_, err := rt.CreditTokens(treasury, 10_000)
	require.NoError(err)
	_, err = rt.RegisterParticipants([]vesting.Registration{
		{Wallet: alice, LockedAmount: 1_000},
		{Wallet: bob, LockedAmount: 2_000},
	})
	require.NoError(err)

	stats, err := Stats(rt.base)
	require.NoError(err)
	require.Len(stats, 3)
	require.Equal("global", stats[0].Name)
	require.Equal(1, stats[0].Keys)
	require.Equal(2, stats[1].Keys)
	require.Positive(stats[1].Bytes)
	require.Equal("balance", stats[2].Name)
	require.Equal(1, stats[2].Keys)
}

func TestCopyAndVerify(t *testing.T) {
	require := require.New(t)
	rt := newTestRuntime(t)
	_, err := rt.CreditTokens(treasury, 10_000)
	require.NoError(err)
	_, err = rt.RegisterParticipants([]vesting.Registration{{Wallet: alice, LockedAmount: 1_000}})
	require.NoError(err)

	dst := memdb.New()
	var batches []int
	copied, err := Copy(rt.base, dst, 2, func(n int) { batches = append(batches, n) })
	require.NoError(err)
	require.Equal(3, copied)
	require.Equal([]int{2, 1}, batches)

	checked, err := Verify(rt.base, dst)
	require.NoError(err)
	require.Equal(copied, checked)

	restored := NewRuntime(dst, rt.log)
	p, err := restored.Participant(alice)
	require.NoError(err)
	require.Equal(uint64(1_000), p.TotalLocked)

	require.NoError(dst.Put([]byte("stray"), []byte("x")))
	other := memdb.New()
	require.NoError(other.Put([]byte("stray"), []byte("y")))
	_, err = Verify(other, dst)
	require.ErrorIs(err, ErrCopyMismatch)
}
