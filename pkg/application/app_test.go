// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package application

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/AngouNin/Hotwings-MeMe/pkg/config"
	"github.com/AngouNin/Hotwings-MeMe/pkg/constants"
	"github.com/AngouNin/Hotwings-MeMe/pkg/safety"
	"github.com/AngouNin/Hotwings-MeMe/pkg/vesting"
	"github.com/luxfi/geth/common"
	luxlog "github.com/luxfi/log"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *Hotwings {
	tempDir := t.TempDir()
	v := viper.New()
	v.AddConfigPath(tempDir)
	v.SetConfigName(constants.DefaultConfigFileName)
	v.SetConfigType(constants.DefaultConfigFileType)
	app := New()
	app.Setup(tempDir, luxlog.NewNoOpLogger(), config.NewWithViper(v), nil)
	return app
}

func TestDirs(t *testing.T) {
	require := require.New(t)
	ap := newTestApp(t)

	require.Equal(filepath.Join(ap.GetBaseDir(), constants.DBDir), ap.GetDBDir())
	require.Equal(filepath.Join(ap.GetBaseDir(), constants.SnapshotDir), ap.GetSnapshotsDir())
	require.Equal(filepath.Join(ap.GetBaseDir(), constants.LogDir), ap.GetLogDir())

	custom := t.TempDir()
	require.NoError(ap.Conf.SetConfigValue(constants.ConfigDBDirKey, custom))
	require.Equal(custom, ap.GetDBDir())
}

func TestSignerResolution(t *testing.T) {
	require := require.New(t)
	ap := newTestApp(t)

	_, err := ap.Signer()
	require.ErrorIs(err, constants.ErrNoSigner)

	require.NoError(ap.Conf.SetConfigValue(constants.ConfigSignerKey, "0x00000000000000000000000000000000000000a1"))
	signer, err := ap.Signer()
	require.NoError(err)
	require.Equal(common.HexToAddress("0xa1"), signer)

	ap.SignerOverride = "0x00000000000000000000000000000000000000a2"
	signer, err = ap.Signer()
	require.NoError(err)
	require.Equal(common.HexToAddress("0xa2"), signer)

	ap.SignerOverride = "nope"
	_, err = ap.Signer()
	require.ErrorIs(err, constants.ErrInvalidAddress)
}

func TestOpenLedgerPersists(t *testing.T) {
	require := require.New(t)
	ap := newTestApp(t)

	rt, closeDB, err := ap.OpenLedger()
	require.NoError(err)
	_, err = rt.CreditTokens(common.HexToAddress("0xc3"), 500)
	require.NoError(err)
	require.NoError(closeDB())

	_, err = os.Stat(ap.GetDBDir())
	require.NoError(err)

	rt, closeDB, err = ap.OpenLedger()
	require.NoError(err)
	defer closeDB()
	balance, err := rt.Balance(common.HexToAddress("0xc3"))
	require.NoError(err)
	require.Equal(uint64(500), balance)

	_, err = rt.Global()
	require.ErrorIs(err, vesting.ErrNotInitialized)
}

func TestOpenLedgerMemDB(t *testing.T) {
	require := require.New(t)
	ap := newTestApp(t)
	ap.DBTypeOverride = constants.MemDB

	rt, closeDB, err := ap.OpenLedger()
	require.NoError(err)
	defer closeDB()
	empty, err := rt.Empty()
	require.NoError(err)
	require.True(empty)

	_, err = os.Stat(ap.GetDBDir())
	require.True(os.IsNotExist(err))

	ap.DBTypeOverride = "rocksdb"
	_, _, err = ap.OpenLedger()
	require.ErrorIs(err, constants.ErrUnknownDBType)
}

func TestLastActions(t *testing.T) {
	require := require.New(t)
	ap := newTestApp(t)

	actions, err := ap.LoadLastActions()
	require.NoError(err)
	require.Empty(actions)

	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(ap.RecordLastAction(LastAction{Command: "settle", At: at, Detail: "milestone 3"}))
	require.NoError(ap.RecordLastAction(LastAction{Command: "init", At: at}))
	require.NoError(ap.RecordLastAction(LastAction{Command: "settle", At: at.Add(time.Hour)}))

	actions, err = ap.LoadLastActions()
	require.NoError(err)
	require.Len(actions, 2)
	require.Equal(at.Add(time.Hour), actions["settle"].At)
	require.Empty(actions["settle"].Detail)
}

func TestSafetyPolicyProtectsCustomDBDir(t *testing.T) {
	require := require.New(t)
	ap := newTestApp(t)
	custom := filepath.Join(ap.GetSnapshotsDir(), "ledger-db")
	require.NoError(ap.Conf.SetConfigValue(constants.ConfigDBDirKey, custom))

	policy := ap.SafetyPolicy()
	require.True(safety.IsProtected(policy, custom))
	require.True(safety.IsAllowed(policy, filepath.Join(ap.GetSnapshotsDir(), "nightly")))
	require.False(safety.IsProtected(policy, filepath.Join(ap.GetSnapshotsDir(), "nightly")))
}
