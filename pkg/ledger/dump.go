// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"fmt"

	"github.com/AngouNin/Hotwings-MeMe/pkg/vesting"
	"github.com/luxfi/database"
	"github.com/luxfi/geth/common"
	"go.uber.org/zap"
)

// Dump is a full copy of the ledger state.
type Dump struct {
	Global       *vesting.GlobalLedger     `json:"global"`
	Participants []*vesting.Participant    `json:"participants"`
	Balances     map[common.Address]uint64 `json:"balances"`
}

// Dump reads the committed state in one consistent view.
func (r *Runtime) Dump() (*Dump, error) {
	dump := &Dump{}
	err := r.read(func(t *tx) error {
		var err error
		if dump.Global, err = t.store.Global(); err != nil {
			return err
		}
		if dump.Participants, err = t.store.Participants(); err != nil {
			return err
		}
		dump.Balances, err = t.tokens.Balances()
		return err
	})
	if err != nil {
		return nil, err
	}
	return dump, nil
}

// Empty reports whether nothing has been written to the ledger.
func (r *Runtime) Empty() (bool, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	return isEmpty(r.base)
}

func isEmpty(db database.Iteratee) (bool, error) {
	it := db.NewIterator()
	defer it.Release()
	empty := !it.Next()
	return empty, it.Error()
}

// Restore writes dump into an empty ledger.
func (r *Runtime) Restore(dump *Dump) error {
	if dump.Global == nil {
		return vesting.ErrNotInitialized
	}
	if err := dump.Global.Validate(); err != nil {
		return err
	}
	if uint64(len(dump.Participants)) != dump.Global.ParticipantCount {
		return fmt.Errorf("%w: %d participant records for a count of %d",
			vesting.ErrDeserializationFailed, len(dump.Participants), dump.Global.ParticipantCount)
	}
	err := r.atomic(func(t *tx) error {
		empty, err := isEmpty(r.base)
		if err != nil {
			return err
		}
		if !empty {
			return ErrLedgerNotEmpty
		}
		if err := t.store.PutGlobal(dump.Global); err != nil {
			return err
		}
		for _, p := range dump.Participants {
			if _, err := p.OriginalLock(); err != nil {
				return err
			}
			if err := t.store.PutParticipant(p); err != nil {
				return err
			}
		}
		for addr, balance := range dump.Balances {
			if _, err := t.tokens.Credit(addr, balance); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	r.log.Info("ledger restored",
		zap.Int("participants", len(dump.Participants)),
		zap.Int("balances", len(dump.Balances)),
	)
	return nil
}
