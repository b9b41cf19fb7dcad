// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package prompts

import (
	"errors"
	"fmt"
	"strings"

	"github.com/luxfi/geth/common"
)

// MissingOpt describes a required option that was not provided.
type MissingOpt struct {
	Flag   string // e.g., "--treasury"
	Env    string // e.g., "HOTWINGS_SIGNER" (optional)
	Prompt string // used for interactive prompts
	Note   string // optional additional context
}

// MissingError creates a clear, actionable error listing all missing options.
func MissingError(cmd string, missing []MissingOpt) error {
	if len(missing) == 0 {
		return nil
	}

	var b strings.Builder
	b.WriteString("missing required options:\n")
	for _, m := range missing {
		if m.Env != "" {
			fmt.Fprintf(&b, "  %s (or %s)", m.Flag, m.Env)
		} else {
			fmt.Fprintf(&b, "  %s", m.Flag)
		}
		if m.Note != "" {
			fmt.Fprintf(&b, " - %s", m.Note)
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "\nrun '%s --help' to see all options", cmd)
	return errors.New(b.String())
}

// AddressValidator collects address options and fills the empty ones from a
// prompter, or reports every missing flag at once when prompting is off.
//
// Usage:
//
//	v := prompts.NewAddressValidator("hotwings vesting init")
//	v.Require(&treasury, prompts.MissingOpt{Flag: "--treasury", Prompt: "Treasury wallet"})
//	if err := v.Resolve(app.Prompt); err != nil {
//	    return err
//	}
type AddressValidator struct {
	cmd     string
	missing []MissingOpt
	targets []*common.Address
}

func NewAddressValidator(cmd string) *AddressValidator {
	return &AddressValidator{cmd: cmd}
}

// Require marks target as required. A zero address counts as missing.
func (v *AddressValidator) Require(target *common.Address, opt MissingOpt) *AddressValidator {
	if *target == (common.Address{}) {
		v.missing = append(v.missing, opt)
		v.targets = append(v.targets, target)
	}
	return v
}

func (v *AddressValidator) Missing() []MissingOpt {
	return v.missing
}

// Resolve prompts for missing values, or returns a MissingError when
// prompter cannot prompt.
func (v *AddressValidator) Resolve(prompter Prompter) error {
	if len(v.missing) == 0 {
		return nil
	}
	if _, ok := prompter.(*NonInteractivePrompter); ok {
		return MissingError(v.cmd, v.missing)
	}
	for i, m := range v.missing {
		addr, err := prompter.CaptureAddress(m.Prompt)
		if err != nil {
			return fmt.Errorf("failed to get %s: %w", m.Flag, err)
		}
		*v.targets[i] = addr
	}
	return nil
}
