// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vestingcmd

import (
	"time"

	"github.com/AngouNin/Hotwings-MeMe/pkg/ledger"
	"github.com/AngouNin/Hotwings-MeMe/pkg/status"
	"github.com/AngouNin/Hotwings-MeMe/pkg/ux"
	"github.com/AngouNin/Hotwings-MeMe/pkg/vesting"
	"github.com/luxfi/geth/common"
	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the global ledger, tier table and totals",
		Long: `Show the global ledger, the tier table, aggregate locked and unlocked
amounts against the treasury balance, and the last mutating commands.

Use --output json or --output yaml for machine readable output.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			format, err := status.ParseFormat(output)
			if err != nil {
				return err
			}
			return app.WithLedger(func(rt *ledger.Runtime) error {
				report, err := status.Collect(rt, lastActions(), time.Now())
				if err != nil {
					return err
				}
				w := ux.Logger.Writer()
				f := status.NewStatusFormatter(w)
				switch format {
				case status.FormatJSON:
					return f.FormatJSON(report)
				case status.FormatYAML:
					return f.FormatYAML(report)
				}

				g, err := rt.Global()
				if err != nil {
					return err
				}
				ux.PrintGlobalLedger(w, g)
				ux.Logger.PrintToUser("")
				ux.PrintMilestones(w, g)
				ux.Logger.PrintToUser("")
				if err := f.FormatTotals(report); err != nil {
					return err
				}
				if len(report.LastActions) > 0 {
					ux.Logger.PrintToUser("")
					f.FormatLastActions(report)
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format (text, json, yaml)")
	return cmd
}

func lastActions() []status.Action {
	actions, err := app.LoadLastActions()
	if err != nil {
		app.Log.Warn("failed to load last actions", "error", err)
		return nil
	}
	out := make([]status.Action, 0, len(actions))
	for _, a := range actions {
		out = append(out, status.Action{Command: a.Command, At: a.At, Detail: a.Detail})
	}
	return out
}

func newParticipantsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "participants",
		Short: "List every participant",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return app.WithLedger(func(rt *ledger.Runtime) error {
				participants, err := rt.Participants()
				if err != nil {
					return err
				}
				if len(participants) == 0 {
					ux.Logger.PrintToUser("No participants registered.")
					return nil
				}
				ux.PrintParticipants(ux.Logger.Writer(), participants)
				return nil
			})
		},
	}
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <wallet>",
		Short: "Show one participant and what it could settle now",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if !common.IsHexAddress(args[0]) {
				return vesting.ErrAccountNotFound
			}
			wallet := common.HexToAddress(args[0])
			return app.WithLedger(func(rt *ledger.Runtime) error {
				return showParticipant(rt, wallet)
			})
		},
	}
}

func showParticipant(rt *ledger.Runtime, wallet common.Address) error {
	p, err := rt.Participant(wallet)
	if err != nil {
		return err
	}
	g, err := rt.Global()
	if err != nil {
		return err
	}
	ux.PrintParticipants(ux.Logger.Writer(), []*vesting.Participant{p})
	if g.CurrentMilestone == 0 && !g.FullUnlockReached {
		ux.Logger.PrintToUser("No milestone reached yet.")
		return nil
	}

	tier := g.Milestones[g.CurrentMilestone-1]
	if g.FullUnlockReached {
		tier = g.Milestones.Last()
	}
	balance, err := rt.Balance(p.SettlementAccount)
	if err != nil {
		return err
	}
	release, err := vesting.ComputeRelease(g, p, tier, balance)
	if err != nil {
		return err
	}
	if release.NothingDue() {
		ux.Logger.PrintToUser("Nothing due at tier %d.", release.Milestone)
		return nil
	}
	ux.Logger.PrintToUser("Pending at tier %d:", release.Milestone)
	ux.PrintReleases(ux.Logger.Writer(), []vesting.Release{release})
	return nil
}
