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
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/floodledger/floodledger/core/types"
	"github.com/floodledger/floodledger/internal/log"
	"github.com/floodledger/floodledger/p2p/wire"
)

// Client drives outbound commands against shared State: it builds and
// signs Messages and floods them to every known peer.
type Client struct {
	state *State
}

// NewClient returns a Client driving state.
func NewClient(state *State) *Client {
	return &Client{state: state}
}

// NewTransaction builds, signs, and floods a create-transaction message
// moving amount from this node's identity to the given recipient. The
// signing preimage is computed over the DataPoint exactly as the client
// constructed it, with From left empty — the listener overwrites From
// with the signer's identity on ingestion, but the signature must be
// checked against what was actually signed.
func (c *Client) NewTransaction(to string, amount float64) error {
	dp := types.DataPoint{From: "", To: to, Amount: amount}
	now := time.Now().Unix()
	contact := c.state.Self()

	preimage, err := dp.SigningPreimage(now, contact)
	if err != nil {
		return fmt.Errorf("client: build signing preimage: %w", err)
	}
	sig := c.state.KeyPair.Sign(preimage)

	msg := wire.Message{
		Destiny:   wire.CreateTransaction,
		Pubkey:    c.state.KeyPair.Public,
		Signed:    sig,
		Data:      []types.DataPoint{dp},
		Blocks:    []*types.Block{},
		Contacts:  []string{},
		Timestamp: now,
		Contact:   contact,
	}
	return c.send(msg)
}

// GetChain floods an unsigned get-chain request.
func (c *Client) GetChain() error {
	return c.send(c.unsignedEnvelope(wire.GetChain))
}

// GetContacts floods an unsigned get-contacts request.
func (c *Client) GetContacts() error {
	return c.send(c.unsignedEnvelope(wire.GetContacts))
}

func (c *Client) unsignedEnvelope(destiny wire.Destiny) wire.Message {
	return wire.Message{
		Destiny:   destiny,
		Pubkey:    c.state.KeyPair.Public,
		Signed:    wire.NoneBytes,
		Data:      []types.DataPoint{},
		Blocks:    []*types.Block{},
		Contacts:  []string{},
		Timestamp: time.Now().Unix(),
		Contact:   c.state.Self(),
	}
}

func (c *Client) send(msg wire.Message) error {
	raw, err := wire.Encode(msg)
	if err != nil {
		return fmt.Errorf("client: encode message: %w", err)
	}
	Flood(c.state.Contacts(), "", raw)
	return nil
}

// RunCommand parses one whitespace-separated command line and executes it
// against c. Recognized commands:
//
//	new-trans amm <amount> to <identity>
//	get-chain
//	get-contacts
//
// Argument order between amm and to is free; any other first token is an
// error, logged and ignored.
func (c *Client) RunCommand(line string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return
	}
	switch fields[0] {
	case "new-trans":
		to, amount, err := parseNewTrans(fields[1:])
		if err != nil {
			log.Error("command: new-trans", "err", err)
			return
		}
		if err := c.NewTransaction(to, amount); err != nil {
			log.Error("command: new-trans failed", "err", err)
		}
	case "get-chain":
		if err := c.GetChain(); err != nil {
			log.Error("command: get-chain failed", "err", err)
		}
	case "get-contacts":
		if err := c.GetContacts(); err != nil {
			log.Error("command: get-contacts failed", "err", err)
		}
	default:
		log.Error("unknown command", "command", fields[0])
	}
}

func parseNewTrans(args []string) (to string, amount float64, err error) {
	var haveAmount, haveTo bool
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "amm":
			if i+1 >= len(args) {
				return "", 0, fmt.Errorf("amm without value")
			}
			amount, err = strconv.ParseFloat(args[i+1], 64)
			if err != nil {
				return "", 0, fmt.Errorf("invalid amount: %w", err)
			}
			haveAmount = true
			i++
		case "to":
			if i+1 >= len(args) {
				return "", 0, fmt.Errorf("to without value")
			}
			to = args[i+1]
			haveTo = true
			i++
		}
	}
	if !haveAmount || !haveTo {
		return "", 0, fmt.Errorf("new-trans requires both amm and to")
	}
	return to, amount, nil
}
