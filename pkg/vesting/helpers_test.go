// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vesting

import (
	"errors"
	"testing"
	"time"

	"github.com/luxfi/geth/common"
	"github.com/stretchr/testify/require"
)

var (
	testAuthority = common.HexToAddress("0x00000000000000000000000000000000000000a1")
	testMint      = common.HexToAddress("0x00000000000000000000000000000000000000b1")
	testBurn      = common.HexToAddress("0x00000000000000000000000000000000000000c1")
	testMarketing = common.HexToAddress("0x00000000000000000000000000000000000000c2")
	testTreasury  = common.HexToAddress("0x00000000000000000000000000000000000000c3")
	testVenue     = common.HexToAddress("0x00000000000000000000000000000000000000d1")
	testPool      = common.HexToAddress("0x00000000000000000000000000000000000000d2")

	testWalletA = common.HexToAddress("0x00000000000000000000000000000000000001a0")
	testWalletB = common.HexToAddress("0x00000000000000000000000000000000000001b0")
	testWalletC = common.HexToAddress("0x00000000000000000000000000000000000001c0")

	testNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
)

func testInitParams() InitParams {
	return InitParams{
		Authority:       testAuthority,
		TokenMint:       testMint,
		BurnWallet:      testBurn,
		MarketingWallet: testMarketing,
		TreasuryWallet:  testTreasury,
		VenueProgram:    testVenue,
		LiquidityPool:   testPool,
	}
}

func newTestGlobal(t *testing.T) *GlobalLedger {
	t.Helper()
	g, err := NewGlobalLedger(testInitParams(), testNow)
	require.NoError(t, err)
	return g
}

// memBook is an in-memory ParticipantBook that stores copies, like a real
// keyed store would.
type memBook struct {
	records map[common.Address]Participant
	putErr  error
}

func newMemBook() *memBook {
	return &memBook{records: map[common.Address]Participant{}}
}

func (b *memBook) GetParticipant(wallet common.Address) (*Participant, error) {
	p, ok := b.records[wallet]
	if !ok {
		return nil, ErrUserNotFound
	}
	return &p, nil
}

func (b *memBook) PutParticipant(p *Participant) error {
	if b.putErr != nil {
		return b.putErr
	}
	b.records[p.Wallet] = *p
	return nil
}

type recordedEvent struct {
	name    string
	payload []byte
}

type eventLog struct {
	events []recordedEvent
}

func (l *eventLog) SetEvent(name string, payload []byte) error {
	l.events = append(l.events, recordedEvent{name: name, payload: payload})
	return nil
}

func (l *eventLog) names() []string {
	names := make([]string, 0, len(l.events))
	for _, e := range l.events {
		names = append(names, e.name)
	}
	return names
}

// recordingExecutor records executed transfer sets, failing when err is set.
type recordingExecutor struct {
	executed [][]Transfer
	err      error
}

func (e *recordingExecutor) Execute(transfers []Transfer) error {
	if e.err != nil {
		return e.err
	}
	e.executed = append(e.executed, transfers)
	return nil
}

var errTransferRejected = errors.New("insufficient funds")
