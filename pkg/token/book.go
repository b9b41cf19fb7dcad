// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package token keeps fungible token balances for the ledger host and acts
// as its transfer primitive.
package token

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/AngouNin/Hotwings-MeMe/pkg/vesting"
	"github.com/holiman/uint256"
	"github.com/luxfi/database"
	"github.com/luxfi/database/prefixdb"
	"github.com/luxfi/geth/common"
)

// BalancePrefix namespaces balance records in the underlying database.
var BalancePrefix = []byte("balance")

var (
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidRecipient    = errors.New("invalid recipient")
	ErrCorruptBalance      = errors.New("corrupt balance record")
)

// Book stores one balance per address.
type Book struct {
	db database.Database
}

// New returns a balance book over the balance keyspace of db.
func New(db database.Database) *Book {
	return &Book{db: prefixdb.New(BalancePrefix, db)}
}

// Balance returns the balance of addr, zero if it has never been credited.
func (b *Book) Balance(addr common.Address) (uint64, error) {
	value, err := b.db.Get(addr.Bytes())
	if errors.Is(err, database.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	if len(value) != 8 {
		return 0, fmt.Errorf("%w: %s", ErrCorruptBalance, addr.Hex())
	}
	return binary.BigEndian.Uint64(value), nil
}

// Credit mints amount to addr.
func (b *Book) Credit(addr common.Address, amount uint64) (uint64, error) {
	if addr == (common.Address{}) {
		return 0, ErrInvalidRecipient
	}
	balance, err := b.Balance(addr)
	if err != nil {
		return 0, err
	}
	sum, overflow := new(uint256.Int).AddOverflow(uint256.NewInt(balance), uint256.NewInt(amount))
	if overflow || !sum.IsUint64() {
		return 0, vesting.ErrArithmeticOverflow
	}
	if err := b.put(b.db, addr, sum.Uint64()); err != nil {
		return 0, err
	}
	return sum.Uint64(), nil
}

// Transfer moves amount from one address to another.
func (b *Book) Transfer(from, to common.Address, amount uint64) error {
	return b.Execute([]vesting.Transfer{{Kind: vesting.TransferMovement, From: from, To: to, Amount: amount}})
}

// Execute applies transfers as one batch. Balances are worked out in memory
// first, so a failing leg leaves every balance untouched.
func (b *Book) Execute(transfers []vesting.Transfer) error {
	balances := make(map[common.Address]uint64)
	order := make([]common.Address, 0, 2*len(transfers))
	load := func(addr common.Address) (uint64, error) {
		if balance, ok := balances[addr]; ok {
			return balance, nil
		}
		balance, err := b.Balance(addr)
		if err != nil {
			return 0, err
		}
		balances[addr] = balance
		order = append(order, addr)
		return balance, nil
	}

	for _, t := range transfers {
		if t.To == (common.Address{}) {
			return fmt.Errorf("%w: %s leg", ErrInvalidRecipient, t.Kind)
		}
		from, err := load(t.From)
		if err != nil {
			return err
		}
		if from < t.Amount {
			return fmt.Errorf("%w: %s holds %d, %s leg needs %d", ErrInsufficientBalance, t.From.Hex(), from, t.Kind, t.Amount)
		}
		balances[t.From] = from - t.Amount

		to, err := load(t.To)
		if err != nil {
			return err
		}
		sum, overflow := new(uint256.Int).AddOverflow(uint256.NewInt(to), uint256.NewInt(t.Amount))
		if overflow || !sum.IsUint64() {
			return vesting.ErrArithmeticOverflow
		}
		balances[t.To] = sum.Uint64()
	}

	batch := b.db.NewBatch()
	for _, addr := range order {
		if err := b.put(batch, addr, balances[addr]); err != nil {
			return err
		}
	}
	return batch.Write()
}

// Balances returns every stored balance.
func (b *Book) Balances() (map[common.Address]uint64, error) {
	it := b.db.NewIterator()
	defer it.Release()

	balances := make(map[common.Address]uint64)
	for it.Next() {
		value := it.Value()
		if len(value) != 8 {
			return nil, fmt.Errorf("%w: key %x", ErrCorruptBalance, it.Key())
		}
		balances[common.BytesToAddress(it.Key())] = binary.BigEndian.Uint64(value)
	}
	return balances, it.Error()
}

func (*Book) put(w database.KeyValueWriter, addr common.Address, balance uint64) error {
	value := make([]byte, 8)
	binary.BigEndian.PutUint64(value, balance)
	return w.Put(addr.Bytes(), value)
}
