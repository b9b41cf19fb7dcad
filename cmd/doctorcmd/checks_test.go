// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package doctorcmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/AngouNin/Hotwings-MeMe/pkg/application"
	"github.com/AngouNin/Hotwings-MeMe/pkg/config"
	"github.com/AngouNin/Hotwings-MeMe/pkg/constants"
	"github.com/AngouNin/Hotwings-MeMe/pkg/ledger"
	"github.com/AngouNin/Hotwings-MeMe/pkg/vesting"
	"github.com/luxfi/database/memdb"
	"github.com/luxfi/geth/common"
	luxlog "github.com/luxfi/log"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

var (
	authority = common.HexToAddress("0x00000000000000000000000000000000000000a1")
	treasury  = common.HexToAddress("0x00000000000000000000000000000000000000c3")
	holder    = common.HexToAddress("0x00000000000000000000000000000000000001a0")
)

func newTestApp(t *testing.T, baseDir string) *application.Hotwings {
	t.Helper()
	v := viper.New()
	v.AddConfigPath(baseDir)
	v.SetConfigName(constants.DefaultConfigFileName)
	v.SetConfigType(constants.DefaultConfigFileType)
	app := application.New()
	app.Setup(baseDir, luxlog.NewNoOpLogger(), config.NewWithViper(v), nil)
	app.DBTypeOverride = constants.MemDB
	return app
}

// newTestDoctor creates a doctor instance with output captured in a buffer
func newTestDoctor(t *testing.T, baseDir string, fixMode bool) (*Doctor, *bytes.Buffer) {
	var buf bytes.Buffer
	d := NewDoctor(newTestApp(t, baseDir), fixMode)
	d.output = &buf
	return d, &buf
}

func newRuntime(t *testing.T, treasuryFunding uint64) *ledger.Runtime {
	t.Helper()
	require := require.New(t)
	rt := ledger.NewRuntime(memdb.New(), luxlog.NewNoOpLogger())
	_, err := rt.Initialize(vesting.InitParams{
		Authority:       authority,
		TokenMint:       common.HexToAddress("0x00000000000000000000000000000000000000b1"),
		BurnWallet:      common.HexToAddress("0x00000000000000000000000000000000000000c1"),
		MarketingWallet: common.HexToAddress("0x00000000000000000000000000000000000000c2"),
		TreasuryWallet:  treasury,
		VenueProgram:    common.HexToAddress("0x00000000000000000000000000000000000000d1"),
	})
	require.NoError(err)
	if treasuryFunding > 0 {
		_, err = rt.CreditTokens(treasury, treasuryFunding)
		require.NoError(err)
	}
	_, err = rt.RegisterParticipants([]vesting.Registration{{Wallet: holder, LockedAmount: 1_000_000}})
	require.NoError(err)
	return rt
}

func findResult(t *testing.T, d *Doctor, name string) CheckResult {
	t.Helper()
	for _, r := range d.results {
		if r.Name == name {
			return r
		}
	}
	t.Fatalf("no %q result in %v", name, d.results)
	return CheckResult{}
}

func TestCheckStatus(t *testing.T) {
	require.Equal(t, 0, int(StatusOK))
	require.Equal(t, 1, int(StatusWarn))
	require.Equal(t, 2, int(StatusError))
}

func TestCheckBaseDir(t *testing.T) {
	require := require.New(t)
	d, _ := newTestDoctor(t, t.TempDir(), false)
	d.checkBaseDir()
	require.Equal(StatusOK, findResult(t, d, "Base Directory").Status)

	missing := filepath.Join(t.TempDir(), constants.BaseDirName)
	d, _ = newTestDoctor(t, missing, true)
	d.checkBaseDir()
	result := findResult(t, d, "Base Directory")
	require.Equal(StatusWarn, result.Status)
	require.True(result.CanAutoFix)
	require.NoError(result.AutoFix())
	_, err := os.Stat(filepath.Join(missing, constants.SnapshotDir))
	require.NoError(err)
}

func TestCheckBaseDirNotADirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "hotwings")
	require.NoError(t, os.WriteFile(file, nil, 0o644))
	d, _ := newTestDoctor(t, file, false)
	d.checkBaseDir()
	require.Equal(t, StatusError, findResult(t, d, "Base Directory").Status)
}

func TestCheckConfig(t *testing.T) {
	require := require.New(t)
	d, _ := newTestDoctor(t, t.TempDir(), false)
	d.checkConfig()
	require.Equal(StatusOK, findResult(t, d, "Config").Status)

	d, _ = newTestDoctor(t, t.TempDir(), false)
	require.NoError(d.app.Conf.SetConfigValue(constants.ConfigDBTypeKey, constants.MemDB))
	d.checkConfig()
	result := findResult(t, d, "Config")
	require.Equal(StatusWarn, result.Status)
	require.Contains(result.FixSuggestion, "config set signer")

	d, _ = newTestDoctor(t, t.TempDir(), false)
	require.NoError(d.app.Conf.SetConfigValue(constants.ConfigSignerKey, authority.Hex()))
	d.checkConfig()
	require.Equal(StatusOK, findResult(t, d, "Config").Status)
}

func TestInspectLedgerNotInitialized(t *testing.T) {
	d, _ := newTestDoctor(t, t.TempDir(), false)
	d.inspectLedger(ledger.NewRuntime(memdb.New(), luxlog.NewNoOpLogger()))
	result := findResult(t, d, "Ledger State")
	require.Equal(t, StatusWarn, result.Status)
	require.Len(t, d.results, 1)
}

func TestInspectLedgerHealthy(t *testing.T) {
	require := require.New(t)
	d, _ := newTestDoctor(t, t.TempDir(), false)
	d.inspectLedger(newRuntime(t, 2_000_000))

	require.Equal(StatusOK, findResult(t, d, "Ledger State").Status)
	require.Equal(StatusOK, findResult(t, d, "Participants").Status)
	require.Equal(StatusOK, findResult(t, d, "Treasury Coverage").Status)
}

func TestInspectLedgerShortfall(t *testing.T) {
	require := require.New(t)
	d, _ := newTestDoctor(t, t.TempDir(), false)
	d.inspectLedger(newRuntime(t, 400_000))

	result := findResult(t, d, "Treasury Coverage")
	require.Equal(StatusWarn, result.Status)
	require.Contains(result.FixSuggestion, "600,000")
}

func TestCheckSnapshots(t *testing.T) {
	require := require.New(t)
	d, _ := newTestDoctor(t, t.TempDir(), false)
	d.checkSnapshots()
	require.Equal(StatusWarn, findResult(t, d, "Snapshots").Status)

	_, err := d.app.SnapshotManager().Create("nightly", newRuntime(t, 1_000_000))
	require.NoError(err)
	d.results = nil
	d.checkSnapshots()
	result := findResult(t, d, "Snapshots")
	require.Equal(StatusOK, result.Status)
	require.Contains(result.Message, "nightly")
}

func TestRunWithFix(t *testing.T) {
	require := require.New(t)
	missing := filepath.Join(t.TempDir(), constants.BaseDirName)
	d, buf := newTestDoctor(t, missing, true)

	require.NoError(d.Run())
	require.Contains(buf.String(), "Fixed 1 issue(s), 0 failed")
	_, err := os.Stat(missing)
	require.NoError(err)
}

func TestRunReportsErrors(t *testing.T) {
	file := filepath.Join(t.TempDir(), "hotwings")
	require.NoError(t, os.WriteFile(file, nil, 0o644))
	d, buf := newTestDoctor(t, file, false)

	require.Error(t, d.Run())
	require.Contains(t, buf.String(), "[ERROR]")
}

func TestPrintResultsPlainWhenNotTerminal(t *testing.T) {
	d, buf := newTestDoctor(t, t.TempDir(), false)
	d.add(CheckResult{Name: "Config", Status: StatusWarn, Message: "no config file"})
	d.printResults()

	require.Contains(t, buf.String(), "[WARN] Config: no config file")
	require.NotContains(t, buf.String(), "\033[")
}
