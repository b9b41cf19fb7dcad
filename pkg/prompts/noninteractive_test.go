// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package prompts

import (
	"testing"

	"github.com/luxfi/geth/common"
	"github.com/stretchr/testify/require"
)

func TestNonInteractivePrompter_FailsWithError(t *testing.T) {
	p := NewNonInteractivePrompter()

	_, err := p.CaptureYesNo("Confirm?")
	require.ErrorIs(t, err, ErrNonInteractive)
	require.Contains(t, err.Error(), "Confirm?")
	require.Contains(t, err.Error(), EnvNonInteractive)

	_, err = p.CaptureString("Enter name")
	require.ErrorIs(t, err, ErrNonInteractive)

	_, err = p.CaptureList("Choose", []string{"a", "b"})
	require.ErrorIs(t, err, ErrNonInteractive)

	_, err = p.CaptureUint64("Enter number")
	require.ErrorIs(t, err, ErrNonInteractive)

	_, err = p.CaptureUint64Compare("Market cap", nil)
	require.ErrorIs(t, err, ErrNonInteractive)

	addr, err := p.CaptureAddress("Wallet")
	require.ErrorIs(t, err, ErrNonInteractive)
	require.Equal(t, common.Address{}, addr)

	_, err = p.CaptureNoYes("Proceed?")
	require.ErrorIs(t, err, ErrNonInteractive)
}

func TestNonInteractivePrompter_CustomMessage(t *testing.T) {
	p := NewNonInteractivePrompterWithMessage("use --market-cap flag")

	_, err := p.CaptureUint64("Market cap")
	require.Contains(t, err.Error(), "use --market-cap flag")
}
