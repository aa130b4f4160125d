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
	lru "github.com/hashicorp/golang-lru/v2"
)

// processedWindow is the bounded FIFO of recently seen signature bytes
// used for replay suppression. It is owned solely by the listener
// goroutine and is never shared or locked — unlike chain/contacts/banned,
// nothing else ever touches it.
//
// A fixed-capacity LRU behaves as a FIFO here because it is only ever
// queried with Contains (which, in hashicorp/golang-lru, does not bump
// recency the way Get does), and a create-transaction signature is checked
// with Seen before it is recorded, so it is inserted at most once. A
// signature recorded again (the shared "NONE" of unsigned messages, or a
// repeated give-chain) moves to the newest position instead of keeping its
// original place in the eviction order.
type processedWindow struct {
	cache *lru.Cache[string, struct{}]
}

func newProcessedWindow(size int) *processedWindow {
	cache, err := lru.New[string, struct{}](size)
	if err != nil {
		// size is a compile-time constant (params.TTL); a construction
		// error here means the constant itself is non-positive.
		panic(err)
	}
	return &processedWindow{cache: cache}
}

// Seen reports whether sig has been recorded before.
func (p *processedWindow) Seen(sig string) bool {
	return p.cache.Contains(sig)
}

// Record adds sig to the window, evicting the oldest entry if the window
// is already at capacity.
func (p *processedWindow) Record(sig string) {
	p.cache.Add(sig, struct{}{})
}

// Len reports how many signatures are currently held.
func (p *processedWindow) Len() int {
	return p.cache.Len()
}
