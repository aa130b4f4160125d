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

// Package params collects the protocol-level constants shared by every
// floodledger component: the chain's proof-of-work difficulty and block
// size, the wire codec's framing limits, and the overlay's bootstrap list.
package params

const (
	// BufferSize bounds a single accepted connection's read buffer. It
	// caps the total compressed size of any one Message; an oversize
	// message is cut off at the read and then fails to decode.
	BufferSize = 8192

	// CompressionLevel is the deflate level used when encoding a Message.
	CompressionLevel = 9

	// TTL is both the message-age threshold in seconds and the depth of
	// the listener's processed-signature window.
	TTL = 3600

	// Cost is the number of leading hex-zero characters a block summary
	// must have to satisfy proof of work.
	Cost = 4

	// BlockSize is the number of buffered DataPoints that triggers
	// mining a new block.
	BlockSize = 1
)

// BootNodes is the fixed set of addresses a non-boot node seeds its
// contact list with at startup.
var BootNodes = []string{"127.0.0.1:60000"}
