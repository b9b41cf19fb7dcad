// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vesting

import (
	"math/big"
	"testing"

	"github.com/AngouNin/Hotwings-MeMe/pkg/constants"
	"github.com/luxfi/geth/common"
	"github.com/stretchr/testify/require"
)

func TestExemptionRegistryAddRemove(t *testing.T) {
	require := require.New(t)
	var registry ExemptionRegistry

	added, err := registry.Add(testWalletA)
	require.NoError(err)
	require.True(added)
	require.True(registry.Contains(testWalletA))

	added, err = registry.Add(testWalletA)
	require.NoError(err)
	require.False(added)
	require.Equal(1, registry.Len())

	require.False(registry.Remove(testWalletB))
	require.True(registry.Remove(testWalletA))
	require.False(registry.Contains(testWalletA))
	require.Zero(registry.Len())
}

func TestExemptionRegistryZeroWallet(t *testing.T) {
	var registry ExemptionRegistry
	_, err := registry.Add(common.Address{})
	require.ErrorIs(t, err, ErrAccountNotFound)
}

func TestExemptionRegistryCapacity(t *testing.T) {
	require := require.New(t)
	var registry ExemptionRegistry
	for i := 1; i <= constants.MaxExemptWallets; i++ {
		_, err := registry.Add(common.BigToAddress(big.NewInt(int64(1000 + i))))
		require.NoError(err)
	}
	require.Equal(constants.MaxExemptWallets, registry.Len())

	_, err := registry.Add(testWalletC)
	require.ErrorIs(err, ErrMaxExemptedWallets)
	require.False(registry.Contains(testWalletC))

	// re-adding a present wallet at capacity stays a no-op
	added, err := registry.Add(registry.Wallets[0])
	require.NoError(err)
	require.False(added)
}
