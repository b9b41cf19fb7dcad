// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vesting

import "github.com/AngouNin/Hotwings-MeMe/pkg/constants"

// TaxSplit is the three-way division of a released amount.
type TaxSplit struct {
	Tax             uint64
	UserAmount      uint64
	BurnAmount      uint64
	MarketingAmount uint64
}

// SplitTax charges the settlement tax on delta. The odd unit of an odd tax
// goes to marketing so burn+marketing always equals tax.
func SplitTax(delta uint64) (TaxSplit, error) {
	tax, err := checkedMulDiv(delta, constants.TaxNumerator, constants.TaxDenominator)
	if err != nil {
		return TaxSplit{}, err
	}
	user, err := checkedSub(delta, tax)
	if err != nil {
		return TaxSplit{}, err
	}
	burn := tax / 2
	return TaxSplit{
		Tax:             tax,
		UserAmount:      user,
		BurnAmount:      burn,
		MarketingAmount: tax - burn,
	}, nil
}
