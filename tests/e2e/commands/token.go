// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package commands

import (
	"fmt"

	"github.com/AngouNin/Hotwings-MeMe/tests/e2e/utils"
)

func Credit(baseDir string, addr string, amount uint64) (string, error) {
	return Run(baseDir, TokenCmd, "credit", addr, fmt.Sprint(amount))
}

func Balance(baseDir string, addrs ...string) (string, error) {
	return Run(baseDir, append([]string{TokenCmd, "balance"}, addrs...)...)
}

// VenuePurchase moves amount out of the venue vault to buyer.
func VenuePurchase(baseDir string, buyer string, buyerAccount string, amount uint64) (string, error) {
	return Run(baseDir,
		HookCmd, "transfer",
		"--source", utils.VenueVault,
		"--source-owner", utils.Venue,
		"--destination", buyerAccount,
		"--destination-owner", buyer,
		"--amount", fmt.Sprint(amount),
	)
}

func AddExempt(baseDir string, signer string, wallet string) (string, error) {
	return Run(baseDir, ExemptCmd, "add", wallet, "--signer", signer)
}

func Admin(baseDir string, signer string, sub string, value string) (string, error) {
	return Run(baseDir, AdminCmd, sub, value, "--signer", signer)
}
