// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"bytes"
	"errors"
	"fmt"
	"slices"

	"github.com/AngouNin/Hotwings-MeMe/pkg/token"
	"github.com/luxfi/database"
	"github.com/luxfi/database/prefixdb"
)

var ErrCopyMismatch = errors.New("copied value mismatch")

// NamespaceStats counts the records stored under one ledger keyspace.
type NamespaceStats struct {
	Name  string
	Keys  int
	Bytes int64
}

var namespaces = []struct {
	name   string
	prefix []byte
}{
	{"global", globalPrefix},
	{"participant", participantPrefix},
	{"balance", token.BalancePrefix},
}

// Stats walks every ledger keyspace of db.
func Stats(db database.Database) ([]NamespaceStats, error) {
	stats := make([]NamespaceStats, 0, len(namespaces))
	for _, ns := range namespaces {
		s := NamespaceStats{Name: ns.name}
		it := prefixdb.New(ns.prefix, db).NewIterator()
		for it.Next() {
			s.Keys++
			s.Bytes += int64(len(it.Key()) + len(it.Value()))
		}
		err := it.Error()
		it.Release()
		if err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, nil
}

// Copy writes every key of src into dst in batches of batchSize and returns
// the number of keys copied. progress, when set, receives the size of every
// batch once it is written.
func Copy(src database.Iteratee, dst database.Batcher, batchSize int, progress func(int)) (int, error) {
	if batchSize <= 0 {
		batchSize = 1
	}
	it := src.NewIterator()
	defer it.Release()

	batch := dst.NewBatch()
	total := 0
	for it.Next() {
		if err := batch.Put(slices.Clone(it.Key()), slices.Clone(it.Value())); err != nil {
			return total, err
		}
		total++
		if total%batchSize == 0 {
			if err := batch.Write(); err != nil {
				return total, err
			}
			batch.Reset()
			if progress != nil {
				progress(batchSize)
			}
		}
	}
	if err := it.Error(); err != nil {
		return total, err
	}
	if err := batch.Write(); err != nil {
		return total, err
	}
	if rest := total % batchSize; rest > 0 && progress != nil {
		progress(rest)
	}
	return total, nil
}

// Verify checks that every key of src holds the same value in dst.
func Verify(src database.Iteratee, dst database.KeyValueReader) (int, error) {
	it := src.NewIterator()
	defer it.Release()

	checked := 0
	for it.Next() {
		value, err := dst.Get(it.Key())
		if err != nil {
			return checked, fmt.Errorf("key %x missing from target: %w", it.Key(), err)
		}
		if !bytes.Equal(value, it.Value()) {
			return checked, fmt.Errorf("%w: key %x differs", ErrCopyMismatch, it.Key())
		}
		checked++
	}
	return checked, it.Error()
}
