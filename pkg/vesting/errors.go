// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vesting

import "errors"

var (
	// authorization
	ErrUnauthorized           = errors.New("caller is not authorized to perform this action")
	ErrInvalidBurnWallet      = errors.New("invalid burn wallet account")
	ErrInvalidMarketingWallet = errors.New("invalid marketing wallet account")
	ErrInvalidProjectWallet   = errors.New("invalid project wallet account")
	ErrInvalidAuthority       = errors.New("invalid authority")

	// capacity
	ErrMaxUsersReached       = errors.New("max users reached")
	ErrMaxExemptedWallets    = errors.New("max exempted wallets reached")
	ErrUserAlreadyRegistered = errors.New("user already registered")

	// progression
	ErrMilestoneNotReached   = errors.New("next milestone not reached yet")
	ErrMilestoneCompleted    = errors.New("milestones have finished")
	ErrInvalidMarketCapValue = errors.New("invalid market cap value")
	ErrInvalidMilestones     = errors.New("invalid milestone table")

	// arithmetic
	ErrArithmeticOverflow = errors.New("arithmetic overflow occurred")

	// lookup and consistency
	ErrAccountNotFound       = errors.New("account not found")
	ErrUserNotFound          = errors.New("user not found")
	ErrAccountNotEnough      = errors.New("user's accounts not enough")
	ErrInvalidLockAmount     = errors.New("locked amount must be positive")
	ErrAlreadyInitialized    = errors.New("ledger already initialized")
	ErrNotInitialized        = errors.New("ledger not initialized")
	ErrDeserializationFailed = errors.New("deserialization failed")
	ErrSerializationFailed   = errors.New("serialization failed")

	// external calls
	ErrTokenTransferFailed         = errors.New("token transfer failed")
	ErrRecipientBalanceUnavailable = errors.New("recipient balance unavailable")
)
