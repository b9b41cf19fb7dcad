// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package hookcmd

import (
	"errors"
	"fmt"

	"github.com/AngouNin/Hotwings-MeMe/cmd/flags"
	"github.com/AngouNin/Hotwings-MeMe/pkg/application"
	"github.com/AngouNin/Hotwings-MeMe/pkg/ledger"
	"github.com/AngouNin/Hotwings-MeMe/pkg/prompts"
	"github.com/AngouNin/Hotwings-MeMe/pkg/ux"
	"github.com/AngouNin/Hotwings-MeMe/pkg/vesting"
	"github.com/luxfi/geth/common"
	"github.com/spf13/cobra"
)

var app *application.Hotwings

// NewCmd creates the hook command
func NewCmd(injectedApp *application.Hotwings) *cobra.Command {
	app = injectedApp
	cmd := &cobra.Command{
		Use:   "hook",
		Short: "Route token movements through the transfer hook",
		Run: func(cmd *cobra.Command, _ []string) {
			err := cmd.Help()
			if err != nil {
				fmt.Println(err)
			}
		},
	}
	cmd.AddCommand(newTransferCmd())
	return cmd
}

type transferFlags struct {
	source           string
	sourceOwner      string
	destination      string
	destinationOwner string
	mint             string
	amount           string
}

var transferOpts transferFlags

func newTransferCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Move tokens, locking venue purchases for the buyer",
		Long: `Move tokens between two accounts through the transfer hook.

When the source account is owned by the trading venue the movement is a
purchase: the tokens land in the treasury instead of the destination and are
locked for the destination owner, registering them when needed. Every other
movement passes through unchanged.

EXAMPLE:

  hotwings hook transfer --source 0x...e1 --source-owner 0x...d1 \
    --destination 0x...e2 --destination-owner 0x...1a0 --amount 5000`,
		Args: cobra.NoArgs,
		RunE: runTransfer,
	}
	cmd.Flags().StringVar(&transferOpts.source, "source", "", "source token account")
	cmd.Flags().StringVar(&transferOpts.sourceOwner, "source-owner", "", "owner of the source account")
	cmd.Flags().StringVar(&transferOpts.destination, "destination", "", "destination token account")
	cmd.Flags().StringVar(&transferOpts.destinationOwner, "destination-owner", "", "owner of the destination account")
	cmd.Flags().StringVar(&transferOpts.mint, "mint", "", "token mint (default: the ledger's mint)")
	cmd.Flags().StringVar(&transferOpts.amount, "amount", "", "amount to move")
	return cmd
}

func runTransfer(cmd *cobra.Command, _ []string) error {
	var (
		m   vesting.Movement
		err error
	)
	targets := []struct {
		value string
		dst   *common.Address
		opt   prompts.MissingOpt
	}{
		{transferOpts.source, &m.Source, prompts.MissingOpt{Flag: "--source", Prompt: "Source token account"}},
		{transferOpts.sourceOwner, &m.SourceOwner, prompts.MissingOpt{Flag: "--source-owner", Prompt: "Source account owner"}},
		{transferOpts.destination, &m.Destination, prompts.MissingOpt{Flag: "--destination", Prompt: "Destination token account"}},
		{transferOpts.destinationOwner, &m.DestinationOwner, prompts.MissingOpt{Flag: "--destination-owner", Prompt: "Destination account owner"}},
	}
	for _, target := range targets {
		if *target.dst, err = flags.ParseOptionalAddress(target.value); err != nil {
			return err
		}
	}
	if m.Mint, err = flags.ParseOptionalAddress(transferOpts.mint); err != nil {
		return err
	}
	if transferOpts.amount == "" {
		return prompts.MissingError(cmd.CommandPath(), []prompts.MissingOpt{{Flag: "--amount"}})
	}
	if m.Amount, err = flags.ParseAmount(transferOpts.amount); err != nil {
		return err
	}

	v := prompts.NewAddressValidator(cmd.CommandPath())
	for _, target := range targets {
		v.Require(target.dst, target.opt)
	}
	if err := v.Resolve(app.Prompt); err != nil {
		return err
	}

	return app.WithLedger(func(rt *ledger.Runtime) error {
		if m.Mint == (common.Address{}) {
			g, err := rt.Global()
			if err != nil && !errors.Is(err, vesting.ErrNotInitialized) {
				return err
			}
			if g != nil {
				m.Mint = g.TokenMint
			}
		}
		route, err := rt.OnValueMovement(m)
		if err != nil {
			return err
		}
		if route.VenueSourced {
			ux.Logger.GreenCheckmarkToUser("Venue purchase of %s locked for %s (now %s locked)",
				ux.FormatAmount(m.Amount), m.DestinationOwner.Hex(), ux.FormatAmount(route.Participant.TotalLocked))
			return nil
		}
		ux.Logger.GreenCheckmarkToUser("Moved %s from %s to %s", ux.FormatAmount(m.Amount), m.Source.Hex(), route.Destination.Hex())
		return nil
	})
}
