// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package flags

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/AngouNin/Hotwings-MeMe/pkg/constants"
	"github.com/AngouNin/Hotwings-MeMe/pkg/ledger"
	"github.com/AngouNin/Hotwings-MeMe/pkg/vesting"
	"github.com/luxfi/geth/common"
	"github.com/stretchr/testify/require"
)

const (
	walletHex     = "0x00000000000000000000000000000000000001a0"
	settlementHex = "0x00000000000000000000000000000000000001a1"
)

func TestParseAmount(t *testing.T) {
	require := require.New(t)
	v, err := ParseAmount("1_000_000")
	require.NoError(err)
	require.Equal(uint64(1_000_000), v)

	v, err = ParseAmount("0x10")
	require.NoError(err)
	require.Equal(uint64(16), v)

	v, err = ParseAmount("0100")
	require.NoError(err)
	require.Equal(uint64(100), v)

	_, err = ParseAmount("0x")
	require.ErrorIs(err, constants.ErrInvalidAmount)

	_, err = ParseAmount("0")
	require.ErrorIs(err, constants.ErrInvalidAmount)
	_, err = ParseAmount("-5")
	require.ErrorIs(err, constants.ErrInvalidAmount)
}

func TestParseRegistration(t *testing.T) {
	require := require.New(t)

	reg, err := ParseRegistration(walletHex + ":1000000")
	require.NoError(err)
	require.Equal(vesting.Registration{Wallet: common.HexToAddress(walletHex), LockedAmount: 1_000_000}, reg)

	reg, err = ParseRegistration(walletHex + ":250:" + settlementHex)
	require.NoError(err)
	require.Equal(common.HexToAddress(settlementHex), reg.SettlementAccount)

	for _, bad := range []string{walletHex, walletHex + ":0", "0xzz:5", walletHex + ":5:0x0", walletHex + ":1:2:3"} {
		_, err := ParseRegistration(bad)
		require.Error(err, bad)
	}
}

func TestParseRegistrations(t *testing.T) {
	regs, err := ParseRegistrations([]string{walletHex + ":1", settlementHex + ":2"})
	require.NoError(t, err)
	require.Len(t, regs, 2)

	_, err = ParseRegistrations([]string{walletHex + ":1", "bad"})
	require.Error(t, err)
}

func TestLoadRegistrationsFile(t *testing.T) {
	require := require.New(t)
	path := filepath.Join(t.TempDir(), "regs.json")
	content := `[{"wallet":"` + walletHex + `","amount":500},{"wallet":"` + settlementHex + `","amount":7,"settlement":"` + walletHex + `"}]`
	require.NoError(os.WriteFile(path, []byte(content), 0o600))

	regs, err := LoadRegistrationsFile(path)
	require.NoError(err)
	require.Equal([]vesting.Registration{
		{Wallet: common.HexToAddress(walletHex), LockedAmount: 500},
		{Wallet: common.HexToAddress(settlementHex), LockedAmount: 7, SettlementAccount: common.HexToAddress(walletHex)},
	}, regs)

	require.NoError(os.WriteFile(path, []byte(`[{"wallet":"`+walletHex+`","amount":0}]`), 0o600))
	_, err = LoadRegistrationsFile(path)
	require.ErrorIs(err, constants.ErrInvalidAmount)
}

func TestParseSettlementPair(t *testing.T) {
	require := require.New(t)

	pair, err := ParseSettlementPair(walletHex)
	require.NoError(err)
	require.Equal(ledger.SettlementPair{Wallet: common.HexToAddress(walletHex)}, pair)

	pair, err = ParseSettlementPair(walletHex + ":" + settlementHex)
	require.NoError(err)
	require.Equal(common.HexToAddress(settlementHex), pair.SettlementAccount)

	_, err = ParseSettlementPair(walletHex + ":" + settlementHex + ":x")
	require.Error(err)
}
