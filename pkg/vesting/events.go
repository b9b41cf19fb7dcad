// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vesting

import (
	"encoding/json"
	"fmt"

	"github.com/luxfi/geth/common"
)

const (
	EventUserRegistered      = "UserRegistered"
	EventMarketCapUpdated    = "MarketCapUpdated"
	EventMilestoneAdvanced   = "MilestoneAdvanced"
	EventMilestoneProcessed  = "MilestoneProcessed"
	EventVenuePurchaseLocked = "VenuePurchaseLocked"
)

// EventSink receives encoded events. Hosts buffer them and publish only once
// the enclosing operation has committed.
type EventSink interface {
	SetEvent(name string, payload []byte) error
}

type UserRegisteredEvent struct {
	Wallet            common.Address `json:"wallet"`
	LockedTokens      uint64         `json:"lockedTokens"`
	SettlementAccount common.Address `json:"settlementAccount"`
}

type MarketCapUpdatedEvent struct {
	Authority common.Address `json:"authority"`
	MarketCap uint64         `json:"marketCap"`
}

type MilestoneAdvancedEvent struct {
	From       uint8  `json:"from"`
	To         uint8  `json:"to"`
	MarketCap  uint64 `json:"marketCap"`
	FullUnlock bool   `json:"fullUnlock"`
}

type MilestoneProcessedEvent struct {
	Wallet         common.Address `json:"wallet"`
	UnlockedTokens uint64         `json:"unlockedTokens"`
	MilestoneIndex uint8          `json:"milestoneIndex"`
	Tax            uint64         `json:"tax"`
	BurnTax        uint64         `json:"burnTax"`
	MarketingTax   uint64         `json:"marketingTax"`
}

type VenuePurchaseLockedEvent struct {
	Buyer       common.Address `json:"buyer"`
	Source      common.Address `json:"source"`
	Amount      uint64         `json:"amount"`
	TotalLocked uint64         `json:"totalLocked"`
}

func emit(sink EventSink, name string, event any) error {
	if sink == nil {
		return nil
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: %s event: %v", ErrSerializationFailed, name, err)
	}
	if err := sink.SetEvent(name, payload); err != nil {
		return fmt.Errorf("failed to set event %s: %w", name, err)
	}
	return nil
}

func EmitUserRegistered(sink EventSink, p *Participant) error {
	return emit(sink, EventUserRegistered, UserRegisteredEvent{
		Wallet:            p.Wallet,
		LockedTokens:      p.TotalLocked,
		SettlementAccount: p.SettlementAccount,
	})
}

func EmitMarketCapUpdated(sink EventSink, authority common.Address, marketCap uint64) error {
	return emit(sink, EventMarketCapUpdated, MarketCapUpdatedEvent{
		Authority: authority,
		MarketCap: marketCap,
	})
}

func EmitMilestoneAdvanced(sink EventSink, result AdvanceResult, marketCap uint64) error {
	return emit(sink, EventMilestoneAdvanced, MilestoneAdvancedEvent{
		From:       result.Previous,
		To:         result.Index,
		MarketCap:  marketCap,
		FullUnlock: result.Status == FullUnlock,
	})
}

func EmitMilestoneProcessed(sink EventSink, r Release) error {
	return emit(sink, EventMilestoneProcessed, MilestoneProcessedEvent{
		Wallet:         r.Wallet,
		UnlockedTokens: r.Delta,
		MilestoneIndex: r.Milestone,
		Tax:            r.Tax,
		BurnTax:        r.BurnAmount,
		MarketingTax:   r.MarketingAmount,
	})
}

func EmitVenuePurchaseLocked(sink EventSink, p *Participant, source common.Address, amount uint64) error {
	return emit(sink, EventVenuePurchaseLocked, VenuePurchaseLockedEvent{
		Buyer:       p.Wallet,
		Source:      source,
		Amount:      amount,
		TotalLocked: p.TotalLocked,
	})
}
