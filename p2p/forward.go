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
	"net"
	"sync"
	"time"

	"github.com/floodledger/floodledger/internal/log"
)

// dialTimeout bounds how long a single flood fanout connection attempt is
// allowed to take. The protocol specifies no cancellation for reads, but a
// hung outbound dial would otherwise stall an entire flood round; a
// timeout here changes no observable semantics for any live peer.
const dialTimeout = 5 * time.Second

// floodTo opens one connection to addr, writes raw, and closes. Failures
// are logged and swallowed: the flood forwarder has no retry and no
// backpressure.
func floodTo(addr string, raw []byte) {
	conn, err := net.DialTimeout("tcp", addr, dialTimeout)
	if err != nil {
		log.Warn("flood: peer unreachable", "addr", addr, "err", err)
		return
	}
	defer conn.Close()

	if _, err := conn.Write(raw); err != nil {
		log.Warn("flood: write failed", "addr", addr, "err", err)
	}
}

// Flood sends raw to every address in contacts, excluding any address
// equal to skip (the originating contact, to suppress the one-hop echo).
// Connections run independently; there is no ordering guarantee between
// peers and no fan-out concurrency limit beyond len(contacts) goroutines.
func Flood(contacts []string, skip string, raw []byte) {
	var wg sync.WaitGroup
	for _, addr := range contacts {
		if addr == skip {
			continue
		}
		wg.Add(1)
		go func(addr string) {
			defer wg.Done()
			floodTo(addr, raw)
		}(addr)
	}
	wg.Wait()
}
