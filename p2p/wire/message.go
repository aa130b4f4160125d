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

// Package wire is floodledger's on-the-wire Message: the JSON shape every
// node exchanges, and the deflate-compressed encoding of it that actually
// travels over a TCP connection. The encoding carries no length prefix; the
// receiver finds the end of the stream by trailing-zero framing.
package wire

import "github.com/floodledger/floodledger/core/types"

// Destiny tags the five kinds of Message the protocol knows. It is a
// string-backed Go type standing in for the original's dynamic dispatch on
// a bare string tag; the wire representation stays a plain JSON string for
// interoperability.
type Destiny string

const (
	CreateTransaction Destiny = "create-transaction"
	GetChain          Destiny = "get-chain"
	GiveChain         Destiny = "give-chain"
	GetContacts       Destiny = "get-contacts"
	GiveContacts      Destiny = "give-contacts"
)

// NoneBytes is the sentinel ASCII payload carried by Signed on messages
// that are not signed (every destiny except create-transaction). The
// listener's give-chain and give-contacts replies also carry it in Pubkey;
// the client's get-chain and get-contacts requests carry the node's real
// public key there.
var NoneBytes = []byte("NONE")

// Message is the single envelope every node exchange uses. All fields are
// always present in the encoded form, even when empty.
type Message struct {
	Destiny   Destiny           `json:"destiny"`
	Pubkey    []byte            `json:"pubkey"`
	Signed    []byte            `json:"signed"`
	Data      []types.DataPoint `json:"data"`
	Blocks    []*types.Block    `json:"blocks"`
	Contacts  []string          `json:"contacts"`
	Timestamp int64             `json:"timestamp"`
	Contact   string            `json:"contact"`
}
