// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package doctorcmd

import (
	"github.com/AngouNin/Hotwings-MeMe/pkg/application"
	"github.com/spf13/cobra"
)

var (
	app     *application.Hotwings
	fixMode bool
)

// NewCmd returns a new cobra.Command for doctor operations
func NewCmd(injectedApp *application.Hotwings) *cobra.Command {
	app = injectedApp
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check the local ledger setup",
		Long: `The doctor command checks the hotwings base directory and ledger for problems.

It verifies:
  - the base directory exists and is writable
  - free disk space for the ledger database
  - the config file parses and names a valid signer and backend
  - the ledger database opens and is initialized
  - participant records agree with the global ledger
  - the treasury holds enough tokens to cover every outstanding lock
  - a recent snapshot exists

Use --fix to attempt automatic remediation of detected issues.`,
		Args: cobra.NoArgs,
		RunE: runDoctor,
	}

	cmd.Flags().BoolVar(&fixMode, "fix", false, "attempt to automatically fix detected issues")

	return cmd
}

func runDoctor(_ *cobra.Command, _ []string) error {
	doctor := NewDoctor(app, fixMode)
	return doctor.Run()
}
