// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package admincmd

import (
	"fmt"

	"github.com/AngouNin/Hotwings-MeMe/cmd/flags"
	"github.com/AngouNin/Hotwings-MeMe/pkg/application"
	"github.com/AngouNin/Hotwings-MeMe/pkg/config"
	"github.com/AngouNin/Hotwings-MeMe/pkg/ledger"
	"github.com/AngouNin/Hotwings-MeMe/pkg/ux"
	"github.com/luxfi/geth/common"
	"github.com/spf13/cobra"
)

var app *application.Hotwings

// NewCmd creates the admin command
func NewCmd(injectedApp *application.Hotwings) *cobra.Command {
	app = injectedApp
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Authority-only ledger updates",
		Long: `Single-field updates reserved for the admin authority. The caller is the
--signer (or the signer from the config file).`,
		Run: func(cmd *cobra.Command, _ []string) {
			err := cmd.Help()
			if err != nil {
				fmt.Println(err)
			}
		},
	}
	cmd.AddCommand(newMarketCapCmd())
	cmd.AddCommand(newAddressCmd("venue", "Replace the trading venue owner identity",
		func(rt *ledger.Runtime, caller, addr common.Address) error {
			return rt.UpdateVenueReference(caller, addr)
		}))
	cmd.AddCommand(newAddressCmd("pool", "Replace the liquidity pool reference",
		func(rt *ledger.Runtime, caller, addr common.Address) error {
			return rt.UpdateLiquidityPoolReference(caller, addr)
		}))
	cmd.AddCommand(newAddressCmd("authority", "Hand the admin authority to another address",
		func(rt *ledger.Runtime, caller, addr common.Address) error {
			return rt.UpdateAuthority(caller, addr)
		}))
	return cmd
}

func newMarketCapCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "market-cap <value>",
		Short: "Record a market cap without advancing tiers",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			marketCap, err := flags.ParseAmount(args[0])
			if err != nil {
				return err
			}
			signer, err := app.Signer()
			if err != nil {
				return err
			}
			return app.WithLedger(func(rt *ledger.Runtime) error {
				if err := rt.UpdateMarketCap(signer, marketCap); err != nil {
					return err
				}
				ux.Logger.GreenCheckmarkToUser("Market cap set to %s", ux.FormatAmount(marketCap))
				return nil
			})
		},
	}
}

func newAddressCmd(use, short string, update func(rt *ledger.Runtime, caller, addr common.Address) error) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <address>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			addr, err := config.ParseAddress(args[0])
			if err != nil {
				return err
			}
			signer, err := app.Signer()
			if err != nil {
				return err
			}
			return app.WithLedger(func(rt *ledger.Runtime) error {
				if err := update(rt, signer, addr); err != nil {
					return err
				}
				ux.Logger.GreenCheckmarkToUser("Updated %s to %s", use, addr.Hex())
				return nil
			})
		},
	}
}
