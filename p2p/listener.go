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
	"fmt"
	"net"
	"time"

	"github.com/google/uuid"

	"github.com/floodledger/floodledger/core"
	"github.com/floodledger/floodledger/core/types"
	"github.com/floodledger/floodledger/crypto"
	"github.com/floodledger/floodledger/internal/log"
	"github.com/floodledger/floodledger/p2p/wire"
	"github.com/floodledger/floodledger/params"
)

// Listener accepts TCP connections sequentially, demultiplexes one
// Message per connection, enforces TTL/dedup/ban, mutates shared State,
// and forwards. It owns the processed-signature window exclusively; no
// other goroutine ever touches it.
type Listener struct {
	state     *State
	processed *processedWindow
	ln        net.Listener
}

// NewListener binds addr (typically "127.0.0.1:<port>") and captures the
// bound address into state's self slot.
func NewListener(addr string, state *State) (*Listener, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listener: bind %s: %w", addr, err)
	}
	state.SetSelf(ln.Addr().String())
	log.Info("listener bound", "addr", ln.Addr().String())
	return &Listener{
		state:     state,
		processed: newProcessedWindow(params.TTL),
		ln:        ln,
	}, nil
}

// Addr returns the bound local address.
func (l *Listener) Addr() string { return l.ln.Addr().String() }

// Close stops accepting new connections.
func (l *Listener) Close() error { return l.ln.Close() }

// Serve runs the accept loop. It returns only when the listener is
// closed. Each accepted connection is handled inline, on the same
// goroutine: per spec, message processing within a single listener is
// strictly sequential in arrival order, and a slow peer stalls the accept
// loop. This is a known scalability limit, not a bug.
func (l *Listener) Serve() error {
	for {
		conn, err := l.ln.Accept()
		if err != nil {
			return err
		}
		l.handle(conn)
	}
}

func (l *Listener) handle(conn net.Conn) {
	id := uuid.NewString()
	defer conn.Close()

	buf := make([]byte, params.BufferSize)
	n, err := conn.Read(buf)
	if err != nil && n == 0 {
		log.Warn("listener: read failed", "id", id, "err", err)
		return
	}

	msg, err := wire.Decode(buf)
	if err != nil {
		log.Warn("listener: decode failed", "id", id, "err", err)
		return
	}

	l.dispatch(id, msg)
}

func (l *Listener) dispatch(id string, msg wire.Message) {
	pubkeyHex := hex.EncodeToString(msg.Pubkey)

	if l.state.IsBanned(pubkeyHex) {
		log.Debug("listener: dropped, banned sender", "id", id, "pubkey", pubkeyHex)
		return
	}
	if msg.Timestamp+params.TTL < time.Now().Unix() {
		log.Debug("listener: dropped, expired", "id", id, "destiny", msg.Destiny)
		return
	}

	var recordable bool
	switch msg.Destiny {
	case wire.CreateTransaction:
		recordable = l.handleCreateTransaction(id, msg)
	case wire.GetChain:
		recordable = l.handleGetChain(id, msg)
	case wire.GiveChain:
		recordable = l.handleGiveChain(id, msg)
	case wire.GetContacts:
		recordable = l.handleGetContacts(id, msg)
	case wire.GiveContacts:
		recordable = l.handleGiveContacts(id, msg)
	default:
		log.Debug("listener: dropped, unknown destiny", "id", id, "destiny", msg.Destiny)
		return
	}

	if recordable {
		l.processed.Record(string(msg.Signed))
	}
}

// handleCreateTransaction returns true if msg should be recorded into the
// processed window: false covers the rejection paths the protocol
// explicitly says must not be recorded (missing data, replay, bad
// signature).
func (l *Listener) handleCreateTransaction(id string, msg wire.Message) bool {
	if len(msg.Data) == 0 {
		log.Warn("listener: create-transaction without data", "id", id)
		return false
	}
	if l.processed.Seen(string(msg.Signed)) {
		log.Debug("listener: dropped, replay", "id", id)
		return false
	}

	preimage, err := msg.Data[0].SigningPreimage(msg.Timestamp, msg.Contact)
	if err != nil {
		log.Warn("listener: could not rebuild signing preimage", "id", id, "err", err)
		return false
	}
	if !crypto.Verify(msg.Pubkey, preimage, msg.Signed) {
		log.Warn("listener: dropped, bad signature", "id", id, "contact", msg.Contact)
		return false
	}

	l.state.AddContact(msg.Contact)

	if l.state.Validator {
		l.state.AddTransaction(hex.EncodeToString(msg.Pubkey), msg.Data[0])
	}

	raw, err := wire.Encode(msg)
	if err != nil {
		log.Error("listener: re-encode for forward failed", "id", id, "err", err)
		return true
	}
	Flood(l.state.Contacts(), msg.Contact, raw)
	return true
}

func (l *Listener) handleGetChain(id string, msg wire.Message) bool {
	l.state.AddContact(msg.Contact)

	reply := wire.Message{
		Destiny:   wire.GiveChain,
		Pubkey:    wire.NoneBytes,
		Signed:    wire.NoneBytes,
		Data:      []types.DataPoint{},
		Blocks:    l.state.ChainBlocks(),
		Contacts:  []string{},
		Timestamp: time.Now().Unix(),
		Contact:   l.state.Self(),
	}
	raw, err := wire.Encode(reply)
	if err != nil {
		log.Error("listener: encode give-chain failed", "id", id, "err", err)
		return true
	}
	Flood(l.state.Contacts(), l.state.Self(), raw)
	return true
}

func (l *Listener) handleGiveChain(id string, msg wire.Message) bool {
	if !l.state.HasContact(msg.Contact) {
		log.Debug("listener: dropped give-chain from unknown contact", "id", id, "contact", msg.Contact)
		return false
	}
	l.state.AddContact(msg.Contact)

	candidate := core.FromSequence(msg.Blocks)
	if !candidate.Verify() {
		log.Warn("listener: rejected invalid chain, banning sender", "id", id, "pubkey", hex.EncodeToString(msg.Pubkey))
		l.state.Ban(hex.EncodeToString(msg.Pubkey))
		return false
	}
	l.state.ReplaceChain(candidate)
	log.Info("listener: adopted chain", "id", id, "length", candidate.Len())
	return true
}

func (l *Listener) handleGetContacts(id string, msg wire.Message) bool {
	l.state.AddContact(msg.Contact)

	reply := wire.Message{
		Destiny:   wire.GiveContacts,
		Pubkey:    wire.NoneBytes,
		Signed:    wire.NoneBytes,
		Data:      []types.DataPoint{},
		Blocks:    []*types.Block{},
		Contacts:  l.state.Contacts(),
		Timestamp: time.Now().Unix(),
		Contact:   l.state.Self(),
	}
	raw, err := wire.Encode(reply)
	if err != nil {
		log.Error("listener: encode give-contacts failed", "id", id, "err", err)
		return true
	}
	Flood(l.state.Contacts(), l.state.Self(), raw)
	return true
}

func (l *Listener) handleGiveContacts(id string, msg wire.Message) bool {
	self := l.state.Self()
	for _, addr := range msg.Contacts {
		if addr != self {
			l.state.AddContact(addr)
		}
	}
	return true
}
