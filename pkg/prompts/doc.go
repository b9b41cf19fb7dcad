// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

/*
Package prompts provides user interaction primitives following UNIX conventions.

# Mode Detection

Non-interactive mode is enabled when ANY of these is true:

  - the --non-interactive flag is passed
  - HOTWINGS_NON_INTERACTIVE=1/true/yes/on
  - CI=1/true (GitHub Actions, GitLab CI, etc.)
  - stdin is not a TTY (piped/redirected/scripted)

# Option Precedence

Values are resolved in this order:

 1. Flags (--treasury 0x...)
 2. Environment variables (HOTWINGS_SIGNER=0x...)
 3. Config file (~/.hotwings/cli.json)
 4. Defaults
 5. Prompts (only if interactive/TTY)

# Usage Pattern: AddressValidator

	v := prompts.NewAddressValidator("hotwings vesting init")
	v.Require(&treasury, prompts.MissingOpt{Flag: "--treasury", Prompt: "Treasury wallet"})
	v.Require(&burn, prompts.MissingOpt{Flag: "--burn", Prompt: "Burn wallet"})
	if err := v.Resolve(app.Prompt); err != nil {
	    return err
	}

When non-interactive and required values are missing, errors look like:

	missing required options:
	  --treasury
	  --burn

	run 'hotwings vesting init --help' to see all options
*/
package prompts
