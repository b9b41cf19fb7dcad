// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package prompts

import (
	"errors"
	"testing"

	"github.com/luxfi/geth/common"
	"github.com/manifoldco/promptui"
	"github.com/stretchr/testify/require"
)

func mockPrompt(t *testing.T, answer string) {
	t.Helper()
	original := promptUIRunner
	t.Cleanup(func() { promptUIRunner = original })
	promptUIRunner = func(prompt promptui.Prompt) (string, error) {
		if prompt.Validate != nil {
			if err := prompt.Validate(answer); err != nil {
				return "", err
			}
		}
		return answer, nil
	}
}

func mockSelect(t *testing.T, choice string) {
	t.Helper()
	original := promptUISelectRunner
	t.Cleanup(func() { promptUISelectRunner = original })
	promptUISelectRunner = func(sel promptui.Select) (int, string, error) {
		return 0, choice, nil
	}
}

func TestCaptureAddress(t *testing.T) {
	require := require.New(t)
	p := NewPrompter()

	mockPrompt(t, "0x00000000000000000000000000000000000001a0")
	addr, err := p.CaptureAddress("Wallet")
	require.NoError(err)
	require.Equal(common.HexToAddress("0x1a0"), addr)

	mockPrompt(t, "not-an-address")
	_, err = p.CaptureAddress("Wallet")
	require.Error(err)

	mockPrompt(t, "0x0000000000000000000000000000000000000000")
	_, err = p.CaptureAddress("Wallet")
	require.Error(err)
}

func TestCaptureUint64(t *testing.T) {
	require := require.New(t)
	p := NewPrompter()

	mockPrompt(t, "45000")
	val, err := p.CaptureUint64("Amount")
	require.NoError(err)
	require.Equal(uint64(45_000), val)

	mockPrompt(t, "0")
	_, err = p.CaptureUint64("Amount")
	require.Error(err)
}

func TestCaptureUint64Compare(t *testing.T) {
	require := require.New(t)
	p := NewPrompter()
	comparators := []Comparator{
		{Label: "zero", Type: MoreThan, Value: 0},
		{Label: "ceiling", Type: LessThan, Value: 10_000_000},
	}

	mockPrompt(t, "2500000")
	val, err := p.CaptureUint64Compare("Market cap", comparators)
	require.NoError(err)
	require.Equal(uint64(2_500_000), val)

	mockPrompt(t, "10000000")
	_, err = p.CaptureUint64Compare("Market cap", comparators)
	require.ErrorContains(err, "ceiling")
}

func TestCaptureYesNo(t *testing.T) {
	require := require.New(t)
	p := NewPrompter()

	mockSelect(t, Yes)
	ok, err := p.CaptureYesNo("Proceed?")
	require.NoError(err)
	require.True(ok)

	mockSelect(t, No)
	ok, err = p.CaptureNoYes("Proceed?")
	require.NoError(err)
	require.False(ok)
}

func TestCaptureListEmpty(t *testing.T) {
	_, err := NewPrompter().CaptureList("Choose", nil)
	require.Error(t, err)
}

func TestCaptureStringPropagatesError(t *testing.T) {
	original := promptUIRunner
	t.Cleanup(func() { promptUIRunner = original })
	promptUIRunner = func(promptui.Prompt) (string, error) {
		return "", errors.New("interrupted")
	}
	_, err := NewPrompter().CaptureString("Name")
	require.ErrorContains(t, err, "interrupted")
}
