// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vestingcmd

import (
	"errors"
	"fmt"
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
)

var (
	settleMarketCap    uint64
	settleParticipants []string
	settleAll          bool
)

func newSettleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settle",
		Short: "Report a market cap and settle a batch of participants",
		Long: `Report a market cap and settle participants against the resulting tier.

The market cap is always recorded. When it does not reach the next tier (and
full unlock is not active) nothing is settled and the command fails with
"next milestone not reached yet". Any other failure discards the whole batch.

Participants have the form <wallet>[:<settlement>]; the settlement account
defaults to the one stored at registration. --all settles every participant.

EXAMPLES:

  hotwings vesting settle --market-cap 120000 --all
  hotwings vesting settle --market-cap 400000 --participant 0x...1a0`,
		Args: cobra.NoArgs,
		RunE: runSettle,
	}
	cmd.Flags().Uint64Var(&settleMarketCap, "market-cap", 0, "reported market cap")
	cmd.Flags().StringArrayVar(&settleParticipants, "participant", nil, "participant <wallet>[:<settlement>] (repeatable)")
	cmd.Flags().BoolVar(&settleAll, "all", false, "settle every registered participant")
	return cmd
}

// captureMarketCap returns --market-cap whenever it was set, zero included.
func captureMarketCap(cmd *cobra.Command) (uint64, error) {
	if cmd.Flags().Changed("market-cap") {
		return settleMarketCap, nil
	}
	if _, ok := app.Prompt.(*prompts.NonInteractivePrompter); ok {
		return 0, prompts.MissingError(cmd.CommandPath(), []prompts.MissingOpt{{Flag: "--market-cap"}})
	}
	return app.Prompt.CaptureUint64Compare("Reported market cap", []prompts.Comparator{
		{Label: "zero", Type: prompts.MoreThan, Value: 0},
		{Label: "the market cap ceiling", Type: prompts.LessThan, Value: constants.MarketCapCeiling},
	})
}

func runSettle(cmd *cobra.Command, _ []string) error {
	if settleAll && len(settleParticipants) > 0 {
		return errors.New("--all and --participant are mutually exclusive")
	}
	marketCap, err := captureMarketCap(cmd)
	if err != nil {
		return err
	}
	parsed := make([]ledger.SettlementPair, 0, len(settleParticipants))
	for _, entry := range settleParticipants {
		pair, err := flags.ParseSettlementPair(entry)
		if err != nil {
			return err
		}
		parsed = append(parsed, pair)
	}

	return app.WithLedger(func(rt *ledger.Runtime) error {
		pairs, err := resolvePairs(rt, parsed)
		if err != nil {
			return err
		}

		report, err := rt.ReportMarketCapAndSettle(marketCap, pairs)
		if errors.Is(err, vesting.ErrMilestoneNotReached) {
			printNotReached(rt, marketCap)
			return err
		}
		if err != nil {
			return err
		}

		ux.Logger.GreenCheckmarkToUser("Market cap %s, tier %d (%s), released %s tokens to %d participants",
			ux.FormatAmount(marketCap), report.Advance.Index, report.Advance.Status,
			ux.FormatAmount(report.Released()), len(report.Releases))
		if len(report.Releases) > 0 {
			ux.PrintReleases(ux.Logger.Writer(), report.Releases)
		}
		return app.RecordLastAction(application.LastAction{
			Command: "settle",
			At:      time.Now().UTC(),
			Detail:  fmt.Sprintf("market cap %d, tier %d", marketCap, report.Advance.Index),
		})
	})
}

// resolvePairs fills settlement accounts from the stored records. Unknown
// wallets are passed through so the ledger reports them.
func resolvePairs(rt *ledger.Runtime, parsed []ledger.SettlementPair) ([]ledger.SettlementPair, error) {
	if settleAll {
		participants, err := rt.Participants()
		if err != nil {
			return nil, err
		}
		pairs := make([]ledger.SettlementPair, 0, len(participants))
		for _, p := range participants {
			pairs = append(pairs, ledger.SettlementPair{Wallet: p.Wallet, SettlementAccount: p.SettlementAccount})
		}
		return pairs, nil
	}
	for i, pair := range parsed {
		if pair.SettlementAccount != (common.Address{}) {
			continue
		}
		p, err := rt.Participant(pair.Wallet)
		if errors.Is(err, vesting.ErrUserNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		parsed[i].SettlementAccount = p.SettlementAccount
	}
	return parsed, nil
}

func printNotReached(rt *ledger.Runtime, marketCap uint64) {
	g, err := rt.Global()
	if err != nil {
		return
	}
	ux.Logger.PrintToUser("Market cap %s recorded.", ux.FormatAmount(marketCap))
	if next, ok := g.NextMilestone(); ok {
		ux.Logger.PrintToUser("Next milestone at %s unlocks %d%%.", ux.FormatAmount(next.Threshold), next.UnlockPercent)
	}
}
