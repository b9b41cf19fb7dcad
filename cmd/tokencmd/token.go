// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package tokencmd

import (
	"fmt"

	"github.com/AngouNin/Hotwings-MeMe/cmd/flags"
	"github.com/AngouNin/Hotwings-MeMe/pkg/application"
	"github.com/AngouNin/Hotwings-MeMe/pkg/config"
	"github.com/AngouNin/Hotwings-MeMe/pkg/ledger"
	"github.com/AngouNin/Hotwings-MeMe/pkg/ux"
	"github.com/spf13/cobra"
)

var app *application.Hotwings

// NewCmd creates the token command
func NewCmd(injectedApp *application.Hotwings) *cobra.Command {
	app = injectedApp
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Inspect and fund token balances",
		Long: `Balances of the tracked token. Settlement pays out of the treasury balance,
so fund it with 'hotwings token credit <treasury> <amount>' first.`,
		Run: func(cmd *cobra.Command, _ []string) {
			err := cmd.Help()
			if err != nil {
				fmt.Println(err)
			}
		},
	}
	cmd.AddCommand(newCreditCmd())
	cmd.AddCommand(newBalanceCmd())
	return cmd
}

func newCreditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "credit <address> <amount>",
		Short: "Mint tokens into an account",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			addr, err := config.ParseAddress(args[0])
			if err != nil {
				return err
			}
			amount, err := flags.ParseAmount(args[1])
			if err != nil {
				return err
			}
			return app.WithLedger(func(rt *ledger.Runtime) error {
				balance, err := rt.CreditTokens(addr, amount)
				if err != nil {
					return err
				}
				ux.Logger.GreenCheckmarkToUser("Credited %s to %s, balance %s", ux.FormatAmount(amount), addr.Hex(), ux.FormatAmount(balance))
				return nil
			})
		},
	}
}

func newBalanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balance <address>...",
		Short: "Show token balances",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return app.WithLedger(func(rt *ledger.Runtime) error {
				table := ux.NewTable(ux.Logger.Writer(), "Address", "Balance")
				for _, arg := range args {
					addr, err := config.ParseAddress(arg)
					if err != nil {
						return err
					}
					balance, err := rt.Balance(addr)
					if err != nil {
						return err
					}
					_ = table.Append([]string{addr.Hex(), ux.FormatAmount(balance)})
				}
				return table.Render()
			})
		},
	}
}
