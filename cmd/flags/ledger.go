// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package flags

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/AngouNin/Hotwings-MeMe/pkg/config"
	"github.com/AngouNin/Hotwings-MeMe/pkg/constants"
	"github.com/AngouNin/Hotwings-MeMe/pkg/ledger"
	"github.com/AngouNin/Hotwings-MeMe/pkg/vesting"
	"github.com/luxfi/geth/common"
)

// ParseAmount accepts decimal, 0x hex and underscore separated token amounts.
// Leading zeros are decimal. Zero is rejected.
func ParseAmount(s string) (uint64, error) {
	digits := strings.ReplaceAll(strings.TrimSpace(s), "_", "")
	base := 10
	if rest, ok := strings.CutPrefix(strings.ToLower(digits), "0x"); ok {
		digits, base = rest, 16
	}
	v, err := strconv.ParseUint(digits, base, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", constants.ErrInvalidAmount, s)
	}
	if v == 0 {
		return 0, fmt.Errorf("%w: must be bigger than zero", constants.ErrInvalidAmount)
	}
	return v, nil
}

// ParseOptionalAddress is ParseAddress that maps "" to the zero address.
func ParseOptionalAddress(s string) (common.Address, error) {
	if strings.TrimSpace(s) == "" {
		return common.Address{}, nil
	}
	return config.ParseAddress(s)
}

// ParseRegistration parses "<wallet>:<amount>[:<settlement>]".
func ParseRegistration(s string) (vesting.Registration, error) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return vesting.Registration{}, fmt.Errorf("invalid entry %q, expected <wallet>:<amount>[:<settlement>]", s)
	}
	wallet, err := config.ParseAddress(parts[0])
	if err != nil {
		return vesting.Registration{}, err
	}
	amount, err := ParseAmount(parts[1])
	if err != nil {
		return vesting.Registration{}, err
	}
	reg := vesting.Registration{Wallet: wallet, LockedAmount: amount}
	if len(parts) == 3 {
		if reg.SettlementAccount, err = config.ParseAddress(parts[2]); err != nil {
			return vesting.Registration{}, err
		}
	}
	return reg, nil
}

// ParseRegistrations parses every entry, stopping at the first bad one.
func ParseRegistrations(entries []string) ([]vesting.Registration, error) {
	regs := make([]vesting.Registration, 0, len(entries))
	for _, e := range entries {
		reg, err := ParseRegistration(e)
		if err != nil {
			return nil, err
		}
		regs = append(regs, reg)
	}
	return regs, nil
}

type registrationFileEntry struct {
	Wallet     string `json:"wallet"`
	Amount     uint64 `json:"amount"`
	Settlement string `json:"settlement,omitempty"`
}

// LoadRegistrationsFile reads a JSON array of {wallet, amount, settlement}.
func LoadRegistrationsFile(path string) ([]vesting.Registration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var entries []registrationFileEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	regs := make([]vesting.Registration, 0, len(entries))
	for i, e := range entries {
		wallet, err := config.ParseAddress(e.Wallet)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		if e.Amount == 0 {
			return nil, fmt.Errorf("entry %d: %w: must be bigger than zero", i, constants.ErrInvalidAmount)
		}
		settlement, err := ParseOptionalAddress(e.Settlement)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		regs = append(regs, vesting.Registration{Wallet: wallet, LockedAmount: e.Amount, SettlementAccount: settlement})
	}
	return regs, nil
}

// ParseSettlementPair parses "<wallet>[:<settlement>]". A missing settlement
// account is left zero for the caller to fill from the stored record.
func ParseSettlementPair(s string) (ledger.SettlementPair, error) {
	parts := strings.Split(s, ":")
	if len(parts) > 2 {
		return ledger.SettlementPair{}, fmt.Errorf("invalid entry %q, expected <wallet>[:<settlement>]", s)
	}
	wallet, err := config.ParseAddress(parts[0])
	if err != nil {
		return ledger.SettlementPair{}, err
	}
	pair := ledger.SettlementPair{Wallet: wallet}
	if len(parts) == 2 {
		if pair.SettlementAccount, err = config.ParseAddress(parts[1]); err != nil {
			return ledger.SettlementPair{}, err
		}
	}
	return pair, nil
}
