// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vestingcmd

import (
	"fmt"

	"github.com/AngouNin/Hotwings-MeMe/pkg/application"
	"github.com/spf13/cobra"
)

var app *application.Hotwings

// NewCmd creates the vesting command
func NewCmd(injectedApp *application.Hotwings) *cobra.Command {
	app = injectedApp
	cmd := &cobra.Command{
		Use:   "vesting",
		Short: "Initialize the ledger, register participants and settle releases",
		Long: `The vesting command suite drives the milestone-gated vesting ledger.

Tokens are locked per participant at registration. Each market cap report that
crosses one or more tiers raises the cumulative unlocked share, and settling a
participant pays the difference from the treasury, minus the 1.5% tax split
between the burn and marketing wallets.`,
		Run: func(cmd *cobra.Command, _ []string) {
			err := cmd.Help()
			if err != nil {
				fmt.Println(err)
			}
		},
	}
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newRegisterCmd())
	cmd.AddCommand(newSettleCmd())
	cmd.AddCommand(newStatusCmd())
	cmd.AddCommand(newParticipantsCmd())
	cmd.AddCommand(newShowCmd())
	return cmd
}
