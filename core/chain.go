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

// Package core implements the Chain: the genesis-anchored, newest-first
// sequence of blocks and the pending-transaction buffer that feeds it.
package core

import (
	"github.com/floodledger/floodledger/core/types"
	"github.com/floodledger/floodledger/params"
)

// Chain is newest-block-first: Blocks[0] is the tip, the last element is
// always the genesis block. DataBuffer holds transactions not yet sealed
// into a block.
type Chain struct {
	Blocks     []*types.Block
	DataBuffer []types.DataPoint
}

// NewChain returns a fresh chain containing only the genesis block.
func NewChain() *Chain {
	return &Chain{Blocks: []*types.Block{types.NewGenesisBlock()}}
}

// FromSequence wraps an externally supplied block list — e.g. one received
// in a give-chain message — without re-mining anything. The caller must
// call Verify before trusting the result; FromSequence performs no
// validation itself.
func FromSequence(blocks []*types.Block) *Chain {
	return &Chain{Blocks: blocks}
}

// Last returns the tip of the chain.
func (c *Chain) Last() *types.Block {
	return c.Blocks[0]
}

// Len returns the number of blocks in the chain, genesis included.
func (c *Chain) Len() int { return len(c.Blocks) }

// PendingLen returns the number of DataPoints buffered but not yet mined
// into a block.
func (c *Chain) PendingLen() int { return len(c.DataBuffer) }

// AddData overwrites dp.From with from (the signer's identity, as
// determined by the caller — never trust the value the wire carried),
// prepends dp to the pending buffer, and mines a new block once the
// buffer reaches params.BlockSize.
func (c *Chain) AddData(from string, dp types.DataPoint) {
	dp.From = from
	c.DataBuffer = append([]types.DataPoint{dp}, c.DataBuffer...)
	if len(c.DataBuffer) < params.BlockSize {
		return
	}
	block := types.NewBlock(c.DataBuffer, c.Last().Summary)
	c.Blocks = append([]*types.Block{block}, c.Blocks...)
	c.DataBuffer = nil
}

// CheckBalance sums +amount for every DataPoint crediting id and -amount
// for every one debiting it, across every block in the chain. A DataPoint
// whose From and To are both id counts only as a credit.
func (c *Chain) CheckBalance(id string) float64 {
	var balance float64
	for _, block := range c.Blocks {
		for _, dp := range block.Data {
			switch id {
			case dp.To:
				balance += dp.Amount
			case dp.From:
				balance -= dp.Amount
			}
		}
	}
	return balance
}

// Verify requires every non-genesis block in the chain to verify
// individually; a single failing block fails the whole chain. This is the
// corrected reading of the protocol's chain-verification rule (see
// DESIGN.md for why the source's weaker, effectively-always-true check is
// not reproduced here).
func (c *Chain) Verify() bool {
	if len(c.Blocks) == 0 {
		return false
	}
	if !c.Blocks[len(c.Blocks)-1].IsGenesis() {
		return false
	}
	for i, block := range c.Blocks {
		if !block.Verify() {
			return false
		}
		if i < len(c.Blocks)-1 && block.PreviousSummary != c.Blocks[i+1].Summary {
			return false
		}
	}
	return true
}
