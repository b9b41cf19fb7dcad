// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vesting

import (
	"errors"
	"fmt"

	"github.com/AngouNin/Hotwings-MeMe/pkg/constants"
	"github.com/luxfi/geth/common"
)

// Participant is the vesting record of a single wallet.
type Participant struct {
	Wallet            common.Address `json:"wallet"`
	SettlementAccount common.Address `json:"settlementAccount"`
	TotalLocked       uint64         `json:"totalLocked"`
	TotalUnlocked     uint64         `json:"totalUnlocked"`
	LastMilestone     uint8          `json:"lastMilestone"`
}

// OriginalLock is everything ever locked for the wallet.
func (p *Participant) OriginalLock() (uint64, error) {
	return checkedAdd(p.TotalLocked, p.TotalUnlocked)
}

// lock credits a new purchase to the locked balance.
func (p *Participant) lock(amount uint64) error {
	locked, err := checkedAdd(p.TotalLocked, amount)
	if err != nil {
		return err
	}
	if _, err := checkedAdd(locked, p.TotalUnlocked); err != nil {
		return err
	}
	p.TotalLocked = locked
	return nil
}

// release moves delta from locked to unlocked. Both counters are computed
// before either is written.
func (p *Participant) release(delta uint64, milestone uint8) error {
	locked, err := checkedSub(p.TotalLocked, delta)
	if err != nil {
		return err
	}
	unlocked, err := checkedAdd(p.TotalUnlocked, delta)
	if err != nil {
		return err
	}
	p.TotalLocked = locked
	p.TotalUnlocked = unlocked
	p.LastMilestone = milestone
	return nil
}

// ParticipantBook is the keyed participant storage the core reads and writes.
// GetParticipant returns ErrUserNotFound for an unknown wallet.
type ParticipantBook interface {
	GetParticipant(wallet common.Address) (*Participant, error)
	PutParticipant(p *Participant) error
}

// Registration is one entry of a RegisterParticipants batch. A zero
// SettlementAccount defaults to the wallet itself.
type Registration struct {
	Wallet            common.Address
	LockedAmount      uint64
	SettlementAccount common.Address
}

// RegisterParticipants creates one record per entry and bumps the participant
// count. Any failure leaves the caller to discard the whole batch.
func RegisterParticipants(g *GlobalLedger, book ParticipantBook, entries []Registration, events EventSink) ([]*Participant, error) {
	count := g.ParticipantCount
	seen := make(map[common.Address]struct{}, len(entries))
	created := make([]*Participant, 0, len(entries))
	for _, entry := range entries {
		if entry.Wallet == (common.Address{}) {
			return nil, ErrAccountNotFound
		}
		if entry.LockedAmount == 0 {
			return nil, fmt.Errorf("%w: %s", ErrInvalidLockAmount, entry.Wallet.Hex())
		}
		if _, dup := seen[entry.Wallet]; dup {
			return nil, fmt.Errorf("%w: %s", ErrUserAlreadyRegistered, entry.Wallet.Hex())
		}
		seen[entry.Wallet] = struct{}{}
		_, err := book.GetParticipant(entry.Wallet)
		switch {
		case err == nil:
			return nil, fmt.Errorf("%w: %s", ErrUserAlreadyRegistered, entry.Wallet.Hex())
		case !errors.Is(err, ErrUserNotFound):
			return nil, err
		}
		if count >= constants.MaxParticipants {
			return nil, ErrMaxUsersReached
		}
		count++

		settlement := entry.SettlementAccount
		if settlement == (common.Address{}) {
			settlement = entry.Wallet
		}
		p := &Participant{
			Wallet:            entry.Wallet,
			SettlementAccount: settlement,
			TotalLocked:       entry.LockedAmount,
		}
		if err := book.PutParticipant(p); err != nil {
			return nil, err
		}
		if err := EmitUserRegistered(events, p); err != nil {
			return nil, err
		}
		created = append(created, p)
	}
	g.ParticipantCount = count
	return created, nil
}
