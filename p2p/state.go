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

// Package p2p is floodledger's network runtime: the flood forwarder, the
// listener that accepts and dispatches incoming messages, the client that
// drives outgoing ones, and the shared NodeState both run against.
package p2p

import (
	"sync"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/floodledger/floodledger/core"
	"github.com/floodledger/floodledger/core/types"
	"github.com/floodledger/floodledger/crypto"
	"github.com/floodledger/floodledger/params"
)

// State is the process-wide state shared between the listener goroutine
// and the client command loop. Every mutable field is guarded by its own
// mutex; there is no back-pointer between the two goroutines, only shared
// handles into this struct. Lock order, to forbid deadlock, is fixed:
// chainMu -> contactMu -> bannedMu -> selfMu. No lock is ever held across
// a connect, read, write, or a call into consensus/powsha3.Mine.
type State struct {
	KeyPair   crypto.KeyPair
	Validator bool

	chainMu sync.Mutex
	chain   *core.Chain

	contactMu sync.Mutex
	contacts  mapset.Set[string]

	bannedMu sync.Mutex
	banned   mapset.Set[string]

	selfMu sync.Mutex
	self   string // this node's own advertised host:port, set once the listener binds
}

// NewState constructs shared state for a node identified by kp, seeded
// with the given initial contact list (the boot-node list for a non-boot
// node, or empty for a boot node).
func NewState(kp crypto.KeyPair, validator bool, seedContacts []string) *State {
	contacts := mapset.NewSet[string]()
	for _, c := range seedContacts {
		contacts.Add(c)
	}
	return &State{
		KeyPair:   kp,
		Validator: validator,
		chain:     core.NewChain(),
		contacts:  contacts,
		banned:    mapset.NewSet[string](),
	}
}

// AddTransaction folds dp into the chain's pending buffer under from's
// identity. Mining, which is CPU-bound and can take tens of thousands of
// hash attempts, never happens while chainMu is held: the critical
// section only decides whether a block is due and, if so, captures the
// buffer and tip summary to mine against. The actual call into
// consensus/powsha3 (via types.NewBlock) happens after the lock is
// released, and a second short critical section commits the result.
//
// Because the listener processes one connection at a time, AddTransaction
// is never called concurrently with itself in practice; the two-phase
// locking is what the spec's lock-discipline rules require regardless.
func (s *State) AddTransaction(from string, dp types.DataPoint) {
	dp.From = from

	s.chainMu.Lock()
	s.chain.DataBuffer = append([]types.DataPoint{dp}, s.chain.DataBuffer...)
	var (
		pending []types.DataPoint
		tip     string
		mine    bool
	)
	if len(s.chain.DataBuffer) >= params.BlockSize {
		pending = s.chain.DataBuffer
		tip = s.chain.Last().Summary
		mine = true
	}
	s.chainMu.Unlock()

	if !mine {
		return
	}
	block := types.NewBlock(pending, tip)

	s.chainMu.Lock()
	defer s.chainMu.Unlock()
	s.chain.Blocks = append([]*types.Block{block}, s.chain.Blocks...)
	s.chain.DataBuffer = nil
}

// ReplaceChain swaps in a new, already-verified chain wholesale.
func (s *State) ReplaceChain(c *core.Chain) {
	s.chainMu.Lock()
	defer s.chainMu.Unlock()
	s.chain = c
}

// ChainBlocks returns a snapshot of the current block list, safe to hand
// to the wire codec or a forward call after the lock is released.
func (s *State) ChainBlocks() []*types.Block {
	s.chainMu.Lock()
	defer s.chainMu.Unlock()
	out := make([]*types.Block, len(s.chain.Blocks))
	copy(out, s.chain.Blocks)
	return out
}

// CheckBalance returns id's current balance over the whole chain.
func (s *State) CheckBalance(id string) float64 {
	s.chainMu.Lock()
	defer s.chainMu.Unlock()
	return s.chain.CheckBalance(id)
}

// ChainLen returns the number of blocks currently in the chain.
func (s *State) ChainLen() int {
	s.chainMu.Lock()
	defer s.chainMu.Unlock()
	return s.chain.Len()
}

// AddContact registers addr in the contact list, deduplicated.
func (s *State) AddContact(addr string) {
	if addr == "" {
		return
	}
	s.contactMu.Lock()
	defer s.contactMu.Unlock()
	s.contacts.Add(addr)
}

// HasContact reports whether addr is already known.
func (s *State) HasContact(addr string) bool {
	s.contactMu.Lock()
	defer s.contactMu.Unlock()
	return s.contacts.Contains(addr)
}

// Contacts returns a snapshot slice of the current contact list.
func (s *State) Contacts() []string {
	s.contactMu.Lock()
	defer s.contactMu.Unlock()
	return s.contacts.ToSlice()
}

// Ban adds pubkeyHex to the banned list.
func (s *State) Ban(pubkeyHex string) {
	s.bannedMu.Lock()
	defer s.bannedMu.Unlock()
	s.banned.Add(pubkeyHex)
}

// IsBanned reports whether pubkeyHex has been banned.
func (s *State) IsBanned(pubkeyHex string) bool {
	s.bannedMu.Lock()
	defer s.bannedMu.Unlock()
	return s.banned.Contains(pubkeyHex)
}

// SetSelf records this node's own advertised host:port, learned from the
// listener's bound address.
func (s *State) SetSelf(addr string) {
	s.selfMu.Lock()
	defer s.selfMu.Unlock()
	s.self = addr
}

// Self returns this node's own advertised host:port.
func (s *State) Self() string {
	s.selfMu.Lock()
	defer s.selfMu.Unlock()
	return s.self
}
