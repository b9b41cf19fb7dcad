// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package commands

import (
	"fmt"

	"github.com/AngouNin/Hotwings-MeMe/tests/e2e/utils"
)

// InitLedger initializes a ledger with the fixture wallets, signed by the
// fixture authority.
func InitLedger(baseDir string) (string, error) {
	return Run(baseDir,
		VestingCmd, "init",
		"--signer", utils.Authority,
		"--mint", utils.Mint,
		"--burn", utils.Burn,
		"--marketing", utils.Marketing,
		"--treasury", utils.Treasury,
		"--venue", utils.Venue,
	)
}

func Register(baseDir string, entries ...string) (string, error) {
	args := []string{VestingCmd, "register"}
	for _, e := range entries {
		args = append(args, "--entry", e)
	}
	return Run(baseDir, args...)
}

func SettleAll(baseDir string, marketCap uint64) (string, error) {
	return Run(baseDir, VestingCmd, "settle", "--market-cap", fmt.Sprint(marketCap), "--all")
}

func Settle(baseDir string, marketCap uint64, participants ...string) (string, error) {
	args := []string{VestingCmd, "settle", "--market-cap", fmt.Sprint(marketCap)}
	for _, p := range participants {
		args = append(args, "--participant", p)
	}
	return Run(baseDir, args...)
}

func Status(baseDir string) (string, error) {
	return Run(baseDir, VestingCmd, "status")
}

func StatusOutput(baseDir string, format string) (string, error) {
	return Run(baseDir, VestingCmd, "status", "--output", format)
}

func Participants(baseDir string) (string, error) {
	return Run(baseDir, VestingCmd, "participants")
}

func Show(baseDir string, wallet string) (string, error) {
	return Run(baseDir, VestingCmd, "show", wallet)
}
