// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ux

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/AngouNin/Hotwings-MeMe/pkg/ledger"
	"github.com/AngouNin/Hotwings-MeMe/pkg/vesting"
)

// EventLine renders a committed ledger event as a single line.
func EventLine(ev ledger.Event) string {
	switch ev.Name {
	case vesting.EventUserRegistered:
		var e vesting.UserRegisteredEvent
		if json.Unmarshal(ev.Payload, &e) == nil {
			return fmt.Sprintf("[%s] %s locked %s (settles to %s)", ev.Name, e.Wallet.Hex(), FormatAmount(e.LockedTokens), e.SettlementAccount.Hex())
		}
	case vesting.EventMarketCapUpdated:
		var e vesting.MarketCapUpdatedEvent
		if json.Unmarshal(ev.Payload, &e) == nil {
			return fmt.Sprintf("[%s] market cap %s by %s", ev.Name, FormatAmount(e.MarketCap), e.Authority.Hex())
		}
	case vesting.EventMilestoneAdvanced:
		var e vesting.MilestoneAdvancedEvent
		if json.Unmarshal(ev.Payload, &e) == nil {
			line := fmt.Sprintf("[%s] tier %d -> %d at market cap %s", ev.Name, e.From, e.To, FormatAmount(e.MarketCap))
			if e.FullUnlock {
				line += " (full unlock)"
			}
			return line
		}
	case vesting.EventMilestoneProcessed:
		var e vesting.MilestoneProcessedEvent
		if json.Unmarshal(ev.Payload, &e) == nil {
			return fmt.Sprintf("[%s] %s released %s at tier %d, tax %s (burn %s, marketing %s)",
				ev.Name, e.Wallet.Hex(), FormatAmount(e.UnlockedTokens), e.MilestoneIndex,
				FormatAmount(e.Tax), FormatAmount(e.BurnTax), FormatAmount(e.MarketingTax))
		}
	case vesting.EventVenuePurchaseLocked:
		var e vesting.VenuePurchaseLockedEvent
		if json.Unmarshal(ev.Payload, &e) == nil {
			return fmt.Sprintf("[%s] %s bought %s from %s, %s now locked",
				ev.Name, e.Buyer.Hex(), FormatAmount(e.Amount), e.Source.Hex(), FormatAmount(e.TotalLocked))
		}
	}
	return fmt.Sprintf("[%s] %s", ev.Name, string(ev.Payload))
}

// EventPrinter returns a ledger event handler that writes one line per event.
func EventPrinter(w io.Writer) func(ledger.Event) {
	return func(ev ledger.Event) {
		_, _ = fmt.Fprintln(w, EventLine(ev))
	}
}
