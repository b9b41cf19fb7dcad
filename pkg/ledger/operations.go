// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"errors"
	"fmt"

	"github.com/AngouNin/Hotwings-MeMe/pkg/vesting"
	"github.com/luxfi/geth/common"
	"go.uber.org/zap"
)

// SettlementPair names a participant and the account its release is paid to.
type SettlementPair struct {
	Wallet            common.Address
	SettlementAccount common.Address
}

// SettleReport is the outcome of ReportMarketCapAndSettle.
type SettleReport struct {
	Advance  vesting.AdvanceResult
	Releases []vesting.Release
}

// Released sums the delta of every release in the report.
func (r *SettleReport) Released() uint64 {
	var total uint64
	for _, release := range r.Releases {
		total += release.Delta
	}
	return total
}

// Initialize creates the global ledger. It can only succeed once.
func (r *Runtime) Initialize(params vesting.InitParams) (*vesting.GlobalLedger, error) {
	var g *vesting.GlobalLedger
	err := r.atomic(func(t *tx) error {
		initialized, err := t.store.Initialized()
		if err != nil {
			return err
		}
		if initialized {
			return vesting.ErrAlreadyInitialized
		}
		g, err = vesting.NewGlobalLedger(params, r.now())
		if err != nil {
			return err
		}
		return t.store.PutGlobal(g)
	})
	if err != nil {
		return nil, err
	}
	r.log.Info("ledger initialized",
		zap.String("authority", g.Authority.Hex()),
		zap.String("mint", g.TokenMint.Hex()),
		zap.Time("fullUnlockDeadline", g.FullUnlockDeadline),
	)
	return g, nil
}

// RegisterParticipants creates a vesting record for every entry or for none.
func (r *Runtime) RegisterParticipants(entries []vesting.Registration) ([]*vesting.Participant, error) {
	var created []*vesting.Participant
	err := r.atomic(func(t *tx) error {
		g, err := t.store.Global()
		if err != nil {
			return err
		}
		created, err = vesting.RegisterParticipants(g, t.store, entries, t.events)
		if err != nil {
			return err
		}
		return t.store.PutGlobal(g)
	})
	if err != nil {
		return nil, err
	}
	r.log.Info("participants registered", zap.Int("count", len(created)))
	return created, nil
}

// AddExemptWallet exempts wallet from the anti-whale clamp. It reports false
// when the wallet was already exempt.
func (r *Runtime) AddExemptWallet(caller, wallet common.Address) (bool, error) {
	var added bool
	err := r.admin(caller, func(t *tx, g *vesting.GlobalLedger) error {
		var err error
		added, err = g.ExemptWallets.Add(wallet)
		return err
	})
	return added, err
}

// RemoveExemptWallet reports false when the wallet was not exempt.
func (r *Runtime) RemoveExemptWallet(caller, wallet common.Address) (bool, error) {
	var removed bool
	err := r.admin(caller, func(t *tx, g *vesting.GlobalLedger) error {
		removed = g.ExemptWallets.Remove(wallet)
		return nil
	})
	return removed, err
}

// UpdateMarketCap records a market cap without advancing or settling.
func (r *Runtime) UpdateMarketCap(caller common.Address, marketCap uint64) error {
	return r.admin(caller, func(t *tx, g *vesting.GlobalLedger) error {
		if err := vesting.ValidateMarketCap(marketCap); err != nil {
			return err
		}
		g.CurrentMarketCap = marketCap
		return vesting.EmitMarketCapUpdated(t.events, caller, marketCap)
	})
}

// UpdateVenueReference replaces the trading venue identity.
func (r *Runtime) UpdateVenueReference(caller, venue common.Address) error {
	return r.admin(caller, func(t *tx, g *vesting.GlobalLedger) error {
		if venue == (common.Address{}) {
			return fmt.Errorf("%w: venue reference", vesting.ErrAccountNotFound)
		}
		g.VenueProgram = venue
		return nil
	})
}

// UpdateLiquidityPoolReference replaces the venue pool identity. The zero
// address clears it.
func (r *Runtime) UpdateLiquidityPoolReference(caller, pool common.Address) error {
	return r.admin(caller, func(t *tx, g *vesting.GlobalLedger) error {
		g.LiquidityPool = pool
		return nil
	})
}

// UpdateAuthority hands admin rights to authority.
func (r *Runtime) UpdateAuthority(caller, authority common.Address) error {
	return r.admin(caller, func(t *tx, g *vesting.GlobalLedger) error {
		if authority == (common.Address{}) {
			return vesting.ErrInvalidAuthority
		}
		g.Authority = authority
		return nil
	})
}

func (r *Runtime) admin(caller common.Address, fn func(*tx, *vesting.GlobalLedger) error) error {
	return r.atomic(func(t *tx) error {
		g, err := t.store.Global()
		if err != nil {
			return err
		}
		if err := g.Authorize(caller); err != nil {
			return err
		}
		if err := fn(t, g); err != nil {
			return err
		}
		if err := g.Validate(); err != nil {
			return err
		}
		return t.store.PutGlobal(g)
	})
}

// ReportMarketCapAndSettle advances the tier index with marketCap and then
// settles every pair against the active tier. Any failure discards the whole
// batch. When no tier is reached the market cap is still recorded and
// ErrMilestoneNotReached is returned.
func (r *Runtime) ReportMarketCapAndSettle(marketCap uint64, pairs []SettlementPair) (*SettleReport, error) {
	report := &SettleReport{}
	err := r.atomic(func(t *tx) error {
		g, err := t.store.Global()
		if err != nil {
			return err
		}
		report.Advance, err = vesting.Advance(g, marketCap, r.now())
		if errors.Is(err, vesting.ErrMilestoneNotReached) || errors.Is(err, vesting.ErrMilestoneCompleted) {
			if putErr := t.store.PutGlobal(g); putErr != nil {
				return putErr
			}
			return keepWrites{err: err}
		}
		if err != nil {
			return err
		}
		if err := vesting.EmitMilestoneAdvanced(t.events, report.Advance, marketCap); err != nil {
			return err
		}

		calc := &vesting.UnlockCalculator{Transfers: t.tokens, Events: t.events}
		for _, pair := range pairs {
			release, err := settleOne(t, g, calc, report.Advance.Milestone, pair)
			if err != nil {
				return err
			}
			report.Releases = append(report.Releases, release)
		}
		return t.store.PutGlobal(g)
	})
	if err != nil {
		return nil, err
	}
	r.log.Info("market cap reported",
		zap.Uint64("marketCap", marketCap),
		zap.Stringer("status", report.Advance.Status),
		zap.Uint8("tier", report.Advance.Index),
		zap.Int("settled", len(report.Releases)),
	)
	return report, nil
}

func settleOne(t *tx, g *vesting.GlobalLedger, calc *vesting.UnlockCalculator, tier vesting.Milestone, pair SettlementPair) (vesting.Release, error) {
	p, err := t.store.GetParticipant(pair.Wallet)
	if err != nil {
		return vesting.Release{}, err
	}
	if pair.SettlementAccount == (common.Address{}) {
		return vesting.Release{}, fmt.Errorf("%w: no settlement account for %s", vesting.ErrAccountNotEnough, pair.Wallet.Hex())
	}
	if pair.SettlementAccount != p.SettlementAccount {
		return vesting.Release{}, fmt.Errorf("%w: settlement account %s does not belong to %s",
			vesting.ErrAccountNotFound, pair.SettlementAccount.Hex(), pair.Wallet.Hex())
	}
	balance, err := t.tokens.Balance(pair.SettlementAccount)
	if err != nil {
		return vesting.Release{}, fmt.Errorf("%w: %s: %v", vesting.ErrRecipientBalanceUnavailable, pair.SettlementAccount.Hex(), err)
	}
	release, err := calc.Settle(g, p, tier, balance)
	if err != nil {
		return vesting.Release{}, err
	}
	if release.NothingDue() {
		return release, nil
	}
	return release, t.store.PutParticipant(p)
}

// OnValueMovement routes a movement of the tracked token and executes it.
// Venue purchases land in the treasury and are locked for the buyer.
func (r *Runtime) OnValueMovement(m vesting.Movement) (vesting.Route, error) {
	var route vesting.Route
	err := r.atomic(func(t *tx) error {
		g, err := t.store.Global()
		if errors.Is(err, vesting.ErrNotInitialized) {
			g = nil
		} else if err != nil {
			return err
		}
		router := &vesting.TransferRouter{Participants: t.store, Events: t.events, Log: r.log}
		route, err = router.OnValueMovement(g, m)
		if err != nil {
			return err
		}
		if err := t.tokens.Execute([]vesting.Transfer{route.Transfer(m)}); err != nil {
			return fmt.Errorf("%w: %v", vesting.ErrTokenTransferFailed, err)
		}
		if !route.VenueSourced {
			return nil
		}
		return t.store.PutGlobal(g)
	})
	if err != nil {
		return vesting.Route{}, err
	}
	return route, nil
}

// CreditTokens mints amount to addr on the host balance book.
func (r *Runtime) CreditTokens(addr common.Address, amount uint64) (uint64, error) {
	var balance uint64
	err := r.atomic(func(t *tx) error {
		var err error
		balance, err = t.tokens.Credit(addr, amount)
		return err
	})
	if err != nil {
		return 0, err
	}
	r.log.Info("tokens credited", zap.String("address", addr.Hex()), zap.Uint64("amount", amount))
	return balance, nil
}

func (r *Runtime) Balance(addr common.Address) (uint64, error) {
	var balance uint64
	err := r.read(func(t *tx) error {
		var err error
		balance, err = t.tokens.Balance(addr)
		return err
	})
	return balance, err
}

func (r *Runtime) Global() (*vesting.GlobalLedger, error) {
	var g *vesting.GlobalLedger
	err := r.read(func(t *tx) error {
		var err error
		g, err = t.store.Global()
		return err
	})
	return g, err
}

func (r *Runtime) Participant(wallet common.Address) (*vesting.Participant, error) {
	var p *vesting.Participant
	err := r.read(func(t *tx) error {
		var err error
		p, err = t.store.GetParticipant(wallet)
		return err
	})
	return p, err
}

func (r *Runtime) Participants() ([]*vesting.Participant, error) {
	var participants []*vesting.Participant
	err := r.read(func(t *tx) error {
		var err error
		participants, err = t.store.Participants()
		return err
	})
	return participants, err
}
