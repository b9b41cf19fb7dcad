// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package exemptcmd

import (
	"fmt"

	"github.com/AngouNin/Hotwings-MeMe/pkg/application"
	"github.com/AngouNin/Hotwings-MeMe/pkg/config"
	"github.com/AngouNin/Hotwings-MeMe/pkg/constants"
	"github.com/AngouNin/Hotwings-MeMe/pkg/ledger"
	"github.com/AngouNin/Hotwings-MeMe/pkg/ux"
	"github.com/spf13/cobra"
)

var app *application.Hotwings

// NewCmd creates the exempt command
func NewCmd(injectedApp *application.Hotwings) *cobra.Command {
	app = injectedApp
	cmd := &cobra.Command{
		Use:   "exempt",
		Short: "Manage wallets exempt from the anti-whale cap",
		Long: fmt.Sprintf(`Exempt wallets may hold more than %s tokens after a release.
At most %d wallets can be exempt. Adding and removing requires the admin
authority as --signer.`, ux.FormatAmount(constants.MaxHoldAmount), constants.MaxExemptWallets),
		Run: func(cmd *cobra.Command, _ []string) {
			err := cmd.Help()
			if err != nil {
				fmt.Println(err)
			}
		},
	}
	cmd.AddCommand(newAddCmd())
	cmd.AddCommand(newRemoveCmd())
	cmd.AddCommand(newListCmd())
	return cmd
}

func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <wallet>",
		Short: "Exempt a wallet",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			wallet, err := config.ParseAddress(args[0])
			if err != nil {
				return err
			}
			signer, err := app.Signer()
			if err != nil {
				return err
			}
			return app.WithLedger(func(rt *ledger.Runtime) error {
				added, err := rt.AddExemptWallet(signer, wallet)
				if err != nil {
					return err
				}
				if added {
					ux.Logger.GreenCheckmarkToUser("%s is now exempt", wallet.Hex())
				} else {
					ux.Logger.PrintToUser("%s was already exempt", wallet.Hex())
				}
				return nil
			})
		},
	}
}

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <wallet>",
		Short: "Remove a wallet from the exemption list",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			wallet, err := config.ParseAddress(args[0])
			if err != nil {
				return err
			}
			signer, err := app.Signer()
			if err != nil {
				return err
			}
			return app.WithLedger(func(rt *ledger.Runtime) error {
				removed, err := rt.RemoveExemptWallet(signer, wallet)
				if err != nil {
					return err
				}
				if removed {
					ux.Logger.GreenCheckmarkToUser("%s is no longer exempt", wallet.Hex())
				} else {
					ux.Logger.PrintToUser("%s was not exempt", wallet.Hex())
				}
				return nil
			})
		},
	}
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List exempt wallets",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return app.WithLedger(func(rt *ledger.Runtime) error {
				g, err := rt.Global()
				if err != nil {
					return err
				}
				if g.ExemptWallets.Len() == 0 {
					ux.Logger.PrintToUser("No exempt wallets.")
					return nil
				}
				table := ux.NewTable(ux.Logger.Writer(), "#", "Wallet")
				for i, w := range g.ExemptWallets.Wallets {
					_ = table.Append([]string{fmt.Sprintf("%d", i+1), w.Hex()})
				}
				return table.Render()
			})
		},
	}
}
