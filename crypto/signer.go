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

// Package crypto wraps the Ed25519 keypair operations floodledger uses to
// authenticate messages. It does not implement the primitive itself;
// golang.org/x/crypto/ed25519 does the real work.
package crypto

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/ed25519"
)

// PublicKeySize and SignatureSize match the Ed25519 contract assumed by
// the wire protocol: 32-byte public keys, 64-byte signatures.
const (
	PublicKeySize = ed25519.PublicKeySize
	SignatureSize = ed25519.SignatureSize
)

// KeyPair is an Ed25519 identity. The public key doubles as the node's
// address on the chain: DataPoint.From/To values are its hex encoding.
type KeyPair struct {
	Public  ed25519.PublicKey
	Private ed25519.PrivateKey
}

// GenerateKeyPair creates a fresh, random Ed25519 identity.
func GenerateKeyPair() (KeyPair, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return KeyPair{}, fmt.Errorf("generate ed25519 keypair: %w", err)
	}
	return KeyPair{Public: pub, Private: priv}, nil
}

// Hex is the node's advertised identity string: the lowercase hex encoding
// of its public key.
func (k KeyPair) Hex() string { return hex.EncodeToString(k.Public) }

// Sign produces a 64-byte Ed25519 signature over msg.
func (k KeyPair) Sign(msg []byte) []byte {
	return ed25519.Sign(k.Private, msg)
}

// Verify reports whether sig is a valid Ed25519 signature over msg under
// pubkey. Any length mismatch on pubkey or sig is treated as invalid
// rather than a panic or error, since the listener must be able to call
// this on attacker-controlled byte slices of arbitrary length.
func Verify(pubkey, msg, sig []byte) bool {
	if len(pubkey) != PublicKeySize || len(sig) != SignatureSize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(pubkey), msg, sig)
}
