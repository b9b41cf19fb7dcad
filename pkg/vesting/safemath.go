// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vesting

import (
	"github.com/holiman/uint256"
)

// All ledger arithmetic goes through these helpers. Intermediate values are
// carried in 256 bits so a product never wraps before the range check.

func toUint64(v *uint256.Int) (uint64, error) {
	if !v.IsUint64() {
		return 0, ErrArithmeticOverflow
	}
	return v.Uint64(), nil
}

func checkedAdd(a, b uint64) (uint64, error) {
	sum, overflow := new(uint256.Int).AddOverflow(uint256.NewInt(a), uint256.NewInt(b))
	if overflow {
		return 0, ErrArithmeticOverflow
	}
	return toUint64(sum)
}

func checkedSub(a, b uint64) (uint64, error) {
	diff, underflow := new(uint256.Int).SubOverflow(uint256.NewInt(a), uint256.NewInt(b))
	if underflow {
		return 0, ErrArithmeticOverflow
	}
	return toUint64(diff)
}

// checkedMulDiv returns a*num/den truncated. A zero denominator is reported
// as an overflow.
func checkedMulDiv(a, num, den uint64) (uint64, error) {
	if den == 0 {
		return 0, ErrArithmeticOverflow
	}
	product, overflow := new(uint256.Int).MulOverflow(uint256.NewInt(a), uint256.NewInt(num))
	if overflow {
		return 0, ErrArithmeticOverflow
	}
	return toUint64(product.Div(product, uint256.NewInt(den)))
}

// saturatingSub floors at zero instead of failing.
func saturatingSub(a, b uint64) uint64 {
	if b >= a {
		return 0
	}
	return a - b
}
