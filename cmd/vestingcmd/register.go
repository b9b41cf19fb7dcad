// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vestingcmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/AngouNin/Hotwings-MeMe/cmd/flags"
	"github.com/AngouNin/Hotwings-MeMe/pkg/application"
	"github.com/AngouNin/Hotwings-MeMe/pkg/ledger"
	"github.com/AngouNin/Hotwings-MeMe/pkg/ux"
	"github.com/spf13/cobra"
)

var (
	registerEntries []string
	registerFile    string
)

func newRegisterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Lock tokens for a batch of participants",
		Long: `Register a batch of participants. Either every entry is registered or none is.

Entries have the form <wallet>:<amount>[:<settlement>]. The settlement account
defaults to the wallet itself. A JSON file with [{"wallet","amount","settlement"}]
objects can be passed with --file.

EXAMPLE:

  hotwings vesting register --entry 0x...1a0:1000000 --entry 0x...1b0:250000:0x...1b1`,
		Args: cobra.NoArgs,
		RunE: runRegister,
	}
	cmd.Flags().StringArrayVar(&registerEntries, "entry", nil, "participant entry <wallet>:<amount>[:<settlement>] (repeatable)")
	cmd.Flags().StringVar(&registerFile, "file", "", "JSON file with registrations")
	return cmd
}

func runRegister(_ *cobra.Command, _ []string) error {
	regs, err := flags.ParseRegistrations(registerEntries)
	if err != nil {
		return err
	}
	if registerFile != "" {
		fromFile, err := flags.LoadRegistrationsFile(registerFile)
		if err != nil {
			return err
		}
		regs = append(regs, fromFile...)
	}
	if len(regs) == 0 {
		return errors.New("nothing to register: pass --entry or --file")
	}

	return app.WithLedger(func(rt *ledger.Runtime) error {
		created, err := rt.RegisterParticipants(regs)
		if err != nil {
			return err
		}
		ux.Logger.GreenCheckmarkToUser("Registered %d participants", len(created))
		ux.PrintParticipants(ux.Logger.Writer(), created)
		return app.RecordLastAction(application.LastAction{
			Command: "register",
			At:      time.Now().UTC(),
			Detail:  fmt.Sprintf("%d participants", len(created)),
		})
	})
}
