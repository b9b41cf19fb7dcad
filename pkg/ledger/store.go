// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/AngouNin/Hotwings-MeMe/pkg/vesting"
	"github.com/luxfi/database"
	"github.com/luxfi/database/prefixdb"
	"github.com/luxfi/geth/common"
)

var (
	globalPrefix      = []byte("global")
	participantPrefix = []byte("participant")

	globalKey = []byte("ledger")
)

// Store persists the global ledger and the participant records, keyed by
// wallet.
type Store struct {
	global       database.Database
	participants database.Database
}

// NewStore returns a Store over db. Records are JSON encoded.
func NewStore(db database.Database) *Store {
	return &Store{
		global:       prefixdb.New(globalPrefix, db),
		participants: prefixdb.New(participantPrefix, db),
	}
}

// Global loads the global ledger or returns vesting.ErrNotInitialized.
func (s *Store) Global() (*vesting.GlobalLedger, error) {
	value, err := s.global.Get(globalKey)
	if errors.Is(err, database.ErrNotFound) {
		return nil, vesting.ErrNotInitialized
	}
	if err != nil {
		return nil, err
	}
	g := &vesting.GlobalLedger{}
	if err := json.Unmarshal(value, g); err != nil {
		return nil, fmt.Errorf("%w: global ledger: %v", vesting.ErrDeserializationFailed, err)
	}
	return g, nil
}

func (s *Store) Initialized() (bool, error) {
	return s.global.Has(globalKey)
}

func (s *Store) PutGlobal(g *vesting.GlobalLedger) error {
	value, err := json.Marshal(g)
	if err != nil {
		return fmt.Errorf("%w: global ledger: %v", vesting.ErrSerializationFailed, err)
	}
	return s.global.Put(globalKey, value)
}

// GetParticipant implements vesting.ParticipantBook.
func (s *Store) GetParticipant(wallet common.Address) (*vesting.Participant, error) {
	value, err := s.participants.Get(wallet.Bytes())
	if errors.Is(err, database.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", vesting.ErrUserNotFound, wallet.Hex())
	}
	if err != nil {
		return nil, err
	}
	return decodeParticipant(value)
}

// PutParticipant implements vesting.ParticipantBook.
func (s *Store) PutParticipant(p *vesting.Participant) error {
	value, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("%w: participant %s: %v", vesting.ErrSerializationFailed, p.Wallet.Hex(), err)
	}
	return s.participants.Put(p.Wallet.Bytes(), value)
}

// Participants returns every participant ordered by wallet.
func (s *Store) Participants() ([]*vesting.Participant, error) {
	it := s.participants.NewIterator()
	defer it.Release()

	var participants []*vesting.Participant
	for it.Next() {
		p, err := decodeParticipant(it.Value())
		if err != nil {
			return nil, err
		}
		participants = append(participants, p)
	}
	return participants, it.Error()
}

func decodeParticipant(value []byte) (*vesting.Participant, error) {
	p := &vesting.Participant{}
	if err := json.Unmarshal(value, p); err != nil {
		return nil, fmt.Errorf("%w: participant: %v", vesting.ErrDeserializationFailed, err)
	}
	return p, nil
}
