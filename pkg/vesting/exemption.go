// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vesting

import (
	"slices"

	"github.com/AngouNin/Hotwings-MeMe/pkg/constants"
	"github.com/luxfi/geth/common"
)

// ExemptionRegistry is the bounded set of wallets that bypass the anti-whale
// clamp. Insertion order is kept so the persisted form is stable.
type ExemptionRegistry struct {
	Wallets []common.Address `json:"wallets"`
}

func (r *ExemptionRegistry) Contains(wallet common.Address) bool {
	return slices.Contains(r.Wallets, wallet)
}

func (r *ExemptionRegistry) Len() int {
	return len(r.Wallets)
}

// Add inserts wallet. It reports whether the registry changed; adding a
// wallet that is already present is not an error.
func (r *ExemptionRegistry) Add(wallet common.Address) (bool, error) {
	if wallet == (common.Address{}) {
		return false, ErrAccountNotFound
	}
	if r.Contains(wallet) {
		return false, nil
	}
	if len(r.Wallets) >= constants.MaxExemptWallets {
		return false, ErrMaxExemptedWallets
	}
	r.Wallets = append(r.Wallets, wallet)
	return true, nil
}

// Remove deletes wallet and reports whether it was present.
func (r *ExemptionRegistry) Remove(wallet common.Address) bool {
	i := slices.Index(r.Wallets, wallet)
	if i < 0 {
		return false
	}
	r.Wallets = slices.Delete(r.Wallets, i, i+1)
	return true
}
