// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vesting

import (
	"errors"
	"fmt"

	"github.com/AngouNin/Hotwings-MeMe/pkg/constants"
	"github.com/luxfi/geth/common"
	luxlog "github.com/luxfi/log"
	"go.uber.org/zap"
)

// Movement is a single movement of value intercepted by the host pipeline.
type Movement struct {
	Source           common.Address
	SourceOwner      common.Address
	Destination      common.Address
	DestinationOwner common.Address
	Mint             common.Address
	Amount           uint64
}

// Route is the routing decision for a Movement.
type Route struct {
	// Destination is where the movement must actually land.
	Destination  common.Address
	VenueSourced bool
	// Participant is the buyer record after a venue purchase, nil otherwise.
	Participant *Participant
	Created     bool
}

// Transfer returns the movement leg for the routed destination.
func (r Route) Transfer(m Movement) Transfer {
	return Transfer{
		Kind:   TransferMovement,
		From:   m.Source,
		To:     r.Destination,
		Amount: m.Amount,
	}
}

// TransferRouter classifies token movements and turns venue purchases into
// vesting locks.
type TransferRouter struct {
	Participants ParticipantBook
	Events       EventSink
	Log          luxlog.Logger
}

// OnValueMovement decides where m lands. Venue purchases are redirected to
// the treasury and locked for the buyer; everything else passes through.
// On error nothing has been written and the movement must be rejected whole.
func (r *TransferRouter) OnValueMovement(g *GlobalLedger, m Movement) (Route, error) {
	if g == nil {
		return Route{}, fmt.Errorf("%w: global ledger", ErrAccountNotFound)
	}
	if g.TokenMint == (common.Address{}) || m.Mint != g.TokenMint {
		return Route{}, fmt.Errorf("%w: mint %s is not the tracked token", ErrAccountNotFound, m.Mint.Hex())
	}
	if g.TreasuryWallet == (common.Address{}) {
		return Route{}, fmt.Errorf("%w: treasury wallet", ErrAccountNotFound)
	}

	if !g.IsVenueOwner(m.SourceOwner) {
		if r.Log != nil {
			r.Log.Debug("pass-through movement",
				zap.String("source", m.Source.Hex()),
				zap.String("destination", m.Destination.Hex()),
				zap.Uint64("amount", m.Amount),
			)
		}
		return Route{Destination: m.Destination}, nil
	}

	if m.Amount == 0 {
		return Route{}, fmt.Errorf("%w: venue purchase of zero tokens", ErrInvalidLockAmount)
	}
	buyer := m.DestinationOwner
	if buyer == (common.Address{}) {
		return Route{}, fmt.Errorf("%w: owner of destination %s", ErrAccountNotFound, m.Destination.Hex())
	}

	route := Route{Destination: g.TreasuryWallet, VenueSourced: true}
	p, err := r.Participants.GetParticipant(buyer)
	switch {
	case errors.Is(err, ErrUserNotFound):
		if g.ParticipantCount >= constants.MaxParticipants {
			return Route{}, ErrMaxUsersReached
		}
		count, err := checkedAdd(g.ParticipantCount, 1)
		if err != nil {
			return Route{}, err
		}
		p = &Participant{Wallet: buyer, SettlementAccount: m.Destination}
		if err := p.lock(m.Amount); err != nil {
			return Route{}, err
		}
		if err := r.Participants.PutParticipant(p); err != nil {
			return Route{}, err
		}
		g.ParticipantCount = count
		route.Created = true
		if err := EmitUserRegistered(r.Events, p); err != nil {
			return Route{}, err
		}
	case err != nil:
		return Route{}, err
	default:
		if err := p.lock(m.Amount); err != nil {
			return Route{}, err
		}
		if err := r.Participants.PutParticipant(p); err != nil {
			return Route{}, err
		}
	}
	if err := EmitVenuePurchaseLocked(r.Events, p, m.Source, m.Amount); err != nil {
		return Route{}, err
	}
	route.Participant = p

	if r.Log != nil {
		r.Log.Debug("venue purchase locked",
			zap.String("buyer", buyer.Hex()),
			zap.Uint64("amount", m.Amount),
			zap.Uint64("totalLocked", p.TotalLocked),
			zap.Bool("created", route.Created),
		)
	}
	return route, nil
}
