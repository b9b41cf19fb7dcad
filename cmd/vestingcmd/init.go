// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vestingcmd

import (
	"errors"
	"time"

	"github.com/AngouNin/Hotwings-MeMe/cmd/flags"
	"github.com/AngouNin/Hotwings-MeMe/pkg/application"
	"github.com/AngouNin/Hotwings-MeMe/pkg/constants"
	"github.com/AngouNin/Hotwings-MeMe/pkg/ledger"
	"github.com/AngouNin/Hotwings-MeMe/pkg/prompts"
	"github.com/AngouNin/Hotwings-MeMe/pkg/ux"
	"github.com/AngouNin/Hotwings-MeMe/pkg/vesting"
	"github.com/luxfi/geth/common"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type initFlags struct {
	admin     string
	mint      string
	burn      string
	marketing string
	treasury  string
	venue     string
	pool      string
}

var initOpts initFlags

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the global vesting ledger",
		Long: `Create the global vesting ledger with the default tier table and a full
unlock deadline 90 days from now.

The admin authority defaults to the signer. Missing wallets are prompted for
when running interactively.

EXAMPLE:

  hotwings vesting init --signer 0x...a1 --mint 0x...b1 --burn 0x...c1 \
    --marketing 0x...c2 --treasury 0x...c3 --venue 0x...d1`,
		Args: cobra.NoArgs,
		RunE: runInit,
	}
	cmd.Flags().StringVar(&initOpts.admin, "admin", "", "admin authority (default: signer)")
	accounts := flags.RegisterFlagGroup(cmd, "Ledger Accounts", func(set *pflag.FlagSet) {
		set.StringVar(&initOpts.mint, "mint", "", "token mint address")
		set.StringVar(&initOpts.burn, "burn", "", "burn wallet receiving half of the tax")
		set.StringVar(&initOpts.marketing, "marketing", "", "marketing wallet receiving the rest of the tax")
		set.StringVar(&initOpts.treasury, "treasury", "", "treasury wallet holding locked tokens")
	})
	venue := flags.RegisterFlagGroup(cmd, "Trading Venue", func(set *pflag.FlagSet) {
		set.StringVar(&initOpts.venue, "venue", "", "trading venue owner identity")
		set.StringVar(&initOpts.pool, "pool", "", "liquidity pool reference (optional)")
	})
	flags.WithGroupedUsage(cmd, accounts, venue)
	return cmd
}

func runInit(cmd *cobra.Command, _ []string) error {
	var (
		params vesting.InitParams
		err    error
	)
	targets := []struct {
		value string
		dst   *common.Address
		opt   prompts.MissingOpt
	}{
		{initOpts.admin, &params.Authority, prompts.MissingOpt{Flag: "--admin", Env: constants.EnvPrefix + "_SIGNER", Prompt: "Admin authority address"}},
		{initOpts.mint, &params.TokenMint, prompts.MissingOpt{Flag: "--mint", Prompt: "Token mint address"}},
		{initOpts.burn, &params.BurnWallet, prompts.MissingOpt{Flag: "--burn", Prompt: "Burn wallet"}},
		{initOpts.marketing, &params.MarketingWallet, prompts.MissingOpt{Flag: "--marketing", Prompt: "Marketing wallet"}},
		{initOpts.treasury, &params.TreasuryWallet, prompts.MissingOpt{Flag: "--treasury", Prompt: "Treasury wallet"}},
		{initOpts.venue, &params.VenueProgram, prompts.MissingOpt{Flag: "--venue", Prompt: "Trading venue owner"}},
	}
	for _, target := range targets {
		if *target.dst, err = flags.ParseOptionalAddress(target.value); err != nil {
			return err
		}
	}
	if params.LiquidityPool, err = flags.ParseOptionalAddress(initOpts.pool); err != nil {
		return err
	}
	if params.Authority == (common.Address{}) {
		signer, err := app.Signer()
		if err != nil && !errors.Is(err, constants.ErrNoSigner) {
			return err
		}
		params.Authority = signer
	}

	v := prompts.NewAddressValidator(cmd.CommandPath())
	for _, target := range targets {
		v.Require(target.dst, target.opt)
	}
	if err := v.Resolve(app.Prompt); err != nil {
		return err
	}

	return app.WithLedger(func(rt *ledger.Runtime) error {
		g, err := rt.Initialize(params)
		if err != nil {
			return err
		}
		ux.Logger.GreenCheckmarkToUser("Vesting ledger initialized, full unlock at %s", g.FullUnlockDeadline.Format(time.RFC3339))
		ux.PrintGlobalLedger(ux.Logger.Writer(), g)
		return app.RecordLastAction(application.LastAction{Command: "init", At: time.Now().UTC()})
	})
}
