// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package ledger hosts the vesting core: it persists state, executes token
// transfers and runs every operation as one all-or-nothing unit.
package ledger

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/AngouNin/Hotwings-MeMe/pkg/token"
	"github.com/luxfi/database"
	"github.com/luxfi/database/versiondb"
	luxlog "github.com/luxfi/log"
	"go.uber.org/zap"
)

var ErrLedgerNotEmpty = errors.New("ledger is not empty")

// Event is a committed ledger event.
type Event struct {
	Name    string          `json:"name"`
	Payload json.RawMessage `json:"payload"`
}

type Option func(*Runtime)

// WithClock overrides the time source used for the full-unlock deadline.
func WithClock(now func() time.Time) Option {
	return func(r *Runtime) {
		r.now = now
	}
}

// WithEventHandler registers fn to receive events once their operation has
// committed.
func WithEventHandler(fn func(Event)) Option {
	return func(r *Runtime) {
		r.handlers = append(r.handlers, fn)
	}
}

// Runtime serializes ledger operations over a base database.
type Runtime struct {
	lock     sync.Mutex
	base     database.Database
	log      luxlog.Logger
	now      func() time.Time
	handlers []func(Event)
}

func NewRuntime(db database.Database, log luxlog.Logger, opts ...Option) *Runtime {
	r := &Runtime{
		base: db,
		log:  log,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// tx is the view an operation works against. Nothing it writes reaches the
// base database unless the operation succeeds.
type tx struct {
	store  *Store
	tokens *token.Book
	events *eventBuffer
}

type eventBuffer struct {
	events []Event
}

func (b *eventBuffer) SetEvent(name string, payload []byte) error {
	b.events = append(b.events, Event{Name: name, Payload: payload})
	return nil
}

// keepWrites marks an operation error whose writes are committed anyway.
type keepWrites struct {
	err error
}

func (k keepWrites) Error() string {
	return k.err.Error()
}

func (k keepWrites) Unwrap() error {
	return k.err
}

func (r *Runtime) atomic(fn func(*tx) error) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	vdb := versiondb.New(r.base)
	t := &tx{
		store:  NewStore(vdb),
		tokens: token.New(vdb),
		events: &eventBuffer{},
	}
	err := fn(t)
	var keep keepWrites
	if err != nil && !errors.As(err, &keep) {
		vdb.Abort()
		return err
	}
	if commitErr := vdb.Commit(); commitErr != nil {
		vdb.Abort()
		return commitErr
	}
	r.publish(t.events.events)
	if err != nil {
		return keep.err
	}
	return nil
}

// read runs fn against the committed state.
func (r *Runtime) read(fn func(*tx) error) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	return fn(&tx{
		store:  NewStore(r.base),
		tokens: token.New(r.base),
		events: &eventBuffer{},
	})
}

func (r *Runtime) publish(events []Event) {
	for _, event := range events {
		r.log.Debug("ledger event", zap.String("name", event.Name), zap.ByteString("payload", event.Payload))
		for _, handler := range r.handlers {
			handler(event)
		}
	}
}
