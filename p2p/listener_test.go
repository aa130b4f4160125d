// Copyright 2015 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

package p2p

import (
	"encoding/hex"
	"net"
	"testing"
	"time"

	"github.com/floodledger/floodledger/core"
	"github.com/floodledger/floodledger/core/types"
	"github.com/floodledger/floodledger/crypto"
	"github.com/floodledger/floodledger/p2p/wire"
)

func startValidator(t *testing.T) (*State, *Listener) {
	t.Helper()
	kp, err := crypto.GenerateKeyPair()
	if err != nil {
		t.Fatal(err)
	}
	state := NewState(kp, true, nil)
	ln, err := NewListener("127.0.0.1:0", state)
	if err != nil {
		t.Fatal(err)
	}
	go ln.Serve()
	t.Cleanup(func() { ln.Close() })
	return state, ln
}

func dialSend(t *testing.T, addr string, raw []byte) {
	t.Helper()
	conn, err := net.DialTimeout("tcp", addr, 2*time.Second)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()
	if _, err := conn.Write(raw); err != nil {
		t.Fatal(err)
	}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition did not become true before the deadline")
}

func signedCreateTransaction(t *testing.T, kp crypto.KeyPair, contact string, dp types.DataPoint, now int64) wire.Message {
	t.Helper()
	preimage, err := dp.SigningPreimage(now, contact)
	if err != nil {
		t.Fatal(err)
	}
	return wire.Message{
		Destiny:   wire.CreateTransaction,
		Pubkey:    kp.Public,
		Signed:    kp.Sign(preimage),
		Data:      []types.DataPoint{dp},
		Blocks:    []*types.Block{},
		Contacts:  []string{},
		Timestamp: now,
		Contact:   contact,
	}
}

// Scenario 1: a well-formed, validly signed create-transaction against a
// fresh validator mines exactly one new block.
func TestListenerMinesOnValidTransaction(t *testing.T) {
	state, ln := startValidator(t)
	senderKP, err := crypto.GenerateKeyPair()
	if err != nil {
		t.Fatal(err)
	}

	msg := signedCreateTransaction(t, senderKP, "127.0.0.1:1", types.DataPoint{To: "bob", Amount: 5}, time.Now().Unix())
	raw, err := wire.Encode(msg)
	if err != nil {
		t.Fatal(err)
	}
	dialSend(t, ln.Addr(), raw)

	waitFor(t, func() bool { return state.ChainLen() == 2 })
	if bal := state.CheckBalance("bob"); bal != 5 {
		t.Fatalf("bob balance = %v, want 5", bal)
	}
}

// Scenario 2: a message whose signature does not verify against its claimed
// pubkey is dropped, and the chain does not grow.
func TestListenerRejectsBadSignature(t *testing.T) {
	state, ln := startValidator(t)
	senderKP, err := crypto.GenerateKeyPair()
	if err != nil {
		t.Fatal(err)
	}

	msg := signedCreateTransaction(t, senderKP, "127.0.0.1:1", types.DataPoint{To: "bob", Amount: 5}, time.Now().Unix())
	msg.Signed[0] ^= 0x01
	raw, err := wire.Encode(msg)
	if err != nil {
		t.Fatal(err)
	}
	dialSend(t, ln.Addr(), raw)

	time.Sleep(100 * time.Millisecond)
	if state.ChainLen() != 1 {
		t.Fatalf("chain grew to %d blocks on a bad signature", state.ChainLen())
	}
}

// Scenario 3: replaying the exact same signed message a second time must
// not mine a second block.
func TestListenerRejectsReplay(t *testing.T) {
	state, ln := startValidator(t)
	senderKP, err := crypto.GenerateKeyPair()
	if err != nil {
		t.Fatal(err)
	}

	msg := signedCreateTransaction(t, senderKP, "127.0.0.1:1", types.DataPoint{To: "bob", Amount: 5}, time.Now().Unix())
	raw, err := wire.Encode(msg)
	if err != nil {
		t.Fatal(err)
	}
	dialSend(t, ln.Addr(), raw)
	waitFor(t, func() bool { return state.ChainLen() == 2 })

	dialSend(t, ln.Addr(), raw)
	time.Sleep(100 * time.Millisecond)
	if state.ChainLen() != 2 {
		t.Fatalf("chain grew to %d blocks after a replayed message, want 2", state.ChainLen())
	}
}

// Scenario 4: a give-chain message carrying a chain that verifies is
// adopted wholesale; one that doesn't gets its sender banned and is not
// adopted.
func TestListenerAdoptsValidChainAndBansInvalidOne(t *testing.T) {
	state, ln := startValidator(t)
	senderKP, err := crypto.GenerateKeyPair()
	if err != nil {
		t.Fatal(err)
	}

	good := core.NewChain()
	good.AddData("alice", types.DataPoint{To: "bob", Amount: 7})

	okMsg := wire.Message{
		Destiny:   wire.GiveChain,
		Pubkey:    senderKP.Public,
		Signed:    wire.NoneBytes,
		Data:      []types.DataPoint{},
		Blocks:    good.Blocks,
		Contacts:  []string{},
		Timestamp: time.Now().Unix(),
		Contact:   "127.0.0.1:2",
	}
	state.AddContact(okMsg.Contact)
	raw, err := wire.Encode(okMsg)
	if err != nil {
		t.Fatal(err)
	}
	dialSend(t, ln.Addr(), raw)
	waitFor(t, func() bool { return state.ChainLen() == good.Len() })

	badKP, err := crypto.GenerateKeyPair()
	if err != nil {
		t.Fatal(err)
	}
	bad := core.NewChain()
	bad.AddData("mallory", types.DataPoint{To: "mallory", Amount: 1000})
	bad.Blocks[0].Nonce++ // invalidate the tip's proof of work

	badMsg := wire.Message{
		Destiny:   wire.GiveChain,
		Pubkey:    badKP.Public,
		Signed:    wire.NoneBytes,
		Data:      []types.DataPoint{},
		Blocks:    bad.Blocks,
		Contacts:  []string{},
		Timestamp: time.Now().Unix(),
		Contact:   "127.0.0.1:3",
	}
	state.AddContact(badMsg.Contact)
	raw, err = wire.Encode(badMsg)
	if err != nil {
		t.Fatal(err)
	}
	dialSend(t, ln.Addr(), raw)

	waitFor(t, func() bool { return state.IsBanned(hex.EncodeToString(badKP.Public)) })
	if state.ChainLen() != good.Len() {
		t.Fatalf("invalid chain was adopted: chain length now %d, want %d", state.ChainLen(), good.Len())
	}
}

// Scenario 5: a non-boot node's contact list is seeded with the boot list
// it was constructed with, before it has exchanged any messages.
func TestNonBootNodeSeedsBootContacts(t *testing.T) {
	kp, err := crypto.GenerateKeyPair()
	if err != nil {
		t.Fatal(err)
	}
	boot := []string{"127.0.0.1:60000"}
	state := NewState(kp, false, boot)

	contacts := state.Contacts()
	if len(contacts) != 1 || contacts[0] != boot[0] {
		t.Fatalf("contacts = %v, want %v", contacts, boot)
	}
}

// Scenario 6: the processed window holds no more than its configured
// capacity; once it is over capacity the oldest signature is evicted and no
// longer suppresses a replay.
func TestProcessedWindowEvictsOldestEntry(t *testing.T) {
	const size = 4
	w := newProcessedWindow(size)

	for i := 0; i < size; i++ {
		sig := string(rune('a' + i))
		if w.Seen(sig) {
			t.Fatalf("sig %q reported seen before being recorded", sig)
		}
		w.Record(sig)
	}
	if w.Len() != size {
		t.Fatalf("window length = %d, want %d", w.Len(), size)
	}

	// One more insert past capacity evicts the oldest ("a").
	w.Record("overflow")
	if w.Seen("a") {
		t.Fatal("oldest entry was not evicted once the window exceeded capacity")
	}
	if !w.Seen("overflow") {
		t.Fatal("most recently recorded entry was evicted instead of the oldest")
	}
}
