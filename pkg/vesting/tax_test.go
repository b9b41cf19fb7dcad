// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vesting

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitTax(t *testing.T) {
	tests := []struct {
		delta uint64
		want  TaxSplit
	}{
		{100_000, TaxSplit{Tax: 1_500, UserAmount: 98_500, BurnAmount: 750, MarketingAmount: 750}},
		{50, TaxSplit{Tax: 0, UserAmount: 50}},
		{1_000, TaxSplit{Tax: 15, UserAmount: 985, BurnAmount: 7, MarketingAmount: 8}},
		{0, TaxSplit{}},
	}
	for _, tt := range tests {
		got, err := SplitTax(tt.delta)
		require.NoError(t, err)
		require.Equal(t, tt.want, got, "delta %d", tt.delta)
	}
}

func TestSplitTaxExactness(t *testing.T) {
	require := require.New(t)
	for _, delta := range []uint64{1, 66, 67, 999, 12_345, 7_777_777, math.MaxUint64} {
		split, err := SplitTax(delta)
		require.NoError(err)
		require.Equal(delta, split.UserAmount+split.BurnAmount+split.MarketingAmount)
		require.Equal(split.Tax, split.BurnAmount+split.MarketingAmount)
		require.LessOrEqual(split.MarketingAmount-split.BurnAmount, uint64(1))
	}
}
