// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package prompts

import (
	"errors"
	"strconv"

	"github.com/luxfi/geth/common"
)

func validateAddress(input string) error {
	if !common.IsHexAddress(input) {
		return errors.New("invalid address")
	}
	if common.HexToAddress(input) == (common.Address{}) {
		return errors.New("the zero address is not allowed")
	}
	return nil
}

func validateBiggerThanZero(input string) error {
	val, err := strconv.ParseUint(input, 0, 64)
	if err != nil {
		return err
	}
	if val == 0 {
		return errors.New("the value must be bigger than zero")
	}
	return nil
}

// validateNonEmpty validates that a string is not empty
func validateNonEmpty(input string) error {
	if input == "" {
		return errors.New("input cannot be empty")
	}
	return nil
}
