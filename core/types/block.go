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

package types

import (
	"strconv"
	"time"

	"github.com/floodledger/floodledger/consensus/powsha3"
	"github.com/floodledger/floodledger/params"
)

// GenesisSummary is the fixed digest carried by the genesis block and used
// as the previous_summary of the first mined block.
const GenesisSummary = "NONE"

// Block is a single hash-linked, proof-of-work-sealed link in a Chain.
type Block struct {
	Summary         string      `json:"summary"`
	Data            []DataPoint `json:"data"`
	PreviousSummary string      `json:"previous_summary"`
	Nonce           uint64      `json:"nonce"`
	Timestamp       int64       `json:"timestamp"`
	Genesis         bool        `json:"genesis"`
}

// IsGenesis reports whether b is the chain's genesis block. The Genesis
// field is carried for wire compatibility, but summary equality with the
// fixed sentinel is the robust test: some constructors in the original
// protocol leave Genesis false on an otherwise-genesis block, so callers
// must not trust the field alone.
func (b *Block) IsGenesis() bool {
	return b.Summary == GenesisSummary
}

// NewGenesisBlock returns the fixed, synthetic first block every chain is
// anchored to.
func NewGenesisBlock() *Block {
	return &Block{
		Summary:         GenesisSummary,
		Data:            []DataPoint{GenesisDataPoint()},
		PreviousSummary: GenesisSummary,
		Nonce:           0,
		Timestamp:       0,
		Genesis:         true,
	}
}

// concatDataFields builds the transaction-batch portion of a block's PoW
// preimage: concat(for d in data: d.From || d.To || fmt(d.Amount)).
func concatDataFields(data []DataPoint) string {
	var sb []byte
	for _, d := range data {
		sb = append(sb, d.From...)
		sb = append(sb, d.To...)
		sb = strconv.AppendFloat(sb, d.Amount, 'g', -1, 64)
	}
	return string(sb)
}

// NewBlock mines a fresh block sealing data on top of previousSummary.
// Mining is synchronous and blocking; there is no cancellation.
func NewBlock(data []DataPoint, previousSummary string) *Block {
	prefix := concatDataFields(data) + previousSummary
	digest, nonce := powsha3.Mine(prefix, params.Cost)
	return &Block{
		Summary:         digest,
		Data:            data,
		PreviousSummary: previousSummary,
		Nonce:           nonce,
		Timestamp:       time.Now().Unix(),
		Genesis:         false,
	}
}

// Verify reports whether b is internally consistent: the genesis block is
// trivially valid, and recomputing a non-genesis block's digest from its
// fields must reproduce Summary, which must also carry the required
// hex-zero proof-of-work prefix.
func (b *Block) Verify() bool {
	if b.IsGenesis() {
		return true
	}
	preimage := concatDataFields(b.Data) + b.PreviousSummary + strconv.FormatUint(b.Nonce, 10)
	return powsha3.Verify(preimage, b.Summary, params.Cost)
}
