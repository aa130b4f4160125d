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

// Package node wires together a single floodledger process: its identity,
// its listener, its client, and the command loop reading operator input.
// It is the one package that knows how all the other pieces fit.
package node

import (
	"bufio"
	"fmt"
	"io"

	"github.com/floodledger/floodledger/config"
	"github.com/floodledger/floodledger/crypto"
	"github.com/floodledger/floodledger/internal/log"
	"github.com/floodledger/floodledger/p2p"
	"github.com/floodledger/floodledger/params"
)

// Node is one running floodledger process.
type Node struct {
	cfg      config.Config
	state    *p2p.State
	listener *p2p.Listener
	client   *p2p.Client
}

// New generates a fresh Ed25519 identity, binds the listener on cfg.Port,
// and seeds the contact list: the fixed boot list for a non-boot node, or
// nothing for a boot node.
func New(cfg config.Config) (*Node, error) {
	kp, err := crypto.GenerateKeyPair()
	if err != nil {
		return nil, fmt.Errorf("node: generate identity: %w", err)
	}
	log.Info("node identity", "pubkey", kp.Hex(), "boot_node", cfg.BootNode)

	var seed []string
	if !cfg.BootNode {
		seed = params.BootNodes
	}

	state := p2p.NewState(kp, true, seed)

	addr := fmt.Sprintf("127.0.0.1:%d", cfg.Port)
	ln, err := p2p.NewListener(addr, state)
	if err != nil {
		return nil, err
	}

	n := &Node{
		cfg:      cfg,
		state:    state,
		listener: ln,
		client:   p2p.NewClient(state),
	}

	if !cfg.BootNode {
		if err := n.client.GetContacts(); err != nil {
			log.Warn("node: initial get-contacts failed", "err", err)
		}
		if err := n.client.GetChain(); err != nil {
			log.Warn("node: initial get-chain failed", "err", err)
		}
	}
	return n, nil
}

// Addr returns the node's bound listen address.
func (n *Node) Addr() string { return n.listener.Addr() }

// Serve runs the listener's accept loop. It blocks until the listener is
// closed and should be run on its own goroutine.
func (n *Node) Serve() error {
	return n.listener.Serve()
}

// RunCommands reads one command per line from r until EOF, dispatching
// each to the client. It is meant to run on the main goroutine while Serve
// runs on another.
func (n *Node) RunCommands(r io.Reader) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		n.client.RunCommand(scanner.Text())
	}
}

// Close shuts down the listener.
func (n *Node) Close() error {
	return n.listener.Close()
}
