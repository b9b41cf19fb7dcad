// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package constants

import "errors"

var (
	ErrUnknownDBType  = errors.New("unknown database type")
	ErrInvalidAddress = errors.New("invalid address")
	ErrInvalidAmount  = errors.New("invalid amount")
	ErrNoSigner       = errors.New("no signer identity: pass --signer or set it with 'hotwings config set signer <address>'")
)
