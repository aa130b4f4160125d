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

// Package powsha3 is floodledger's proof-of-work engine: a SHA3-256 hex
// digest function and the brute-force nonce search mined against it. It
// has no notion of Block or Chain; those layer block-shaped preimages on
// top of Hash and Mine.
package powsha3

import (
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/floodledger/floodledger/internal/log"
	"golang.org/x/crypto/sha3"
)

// Hash returns the lowercase hex-encoded SHA3-256 digest of s.
func Hash(s string) string {
	sum := sha3.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

// Mine searches for the smallest nonce, starting at 1, such that
// Hash(prefixData + dec(nonce)) begins with cost hexadecimal zeros. It
// returns the winning digest and nonce. There is no cancellation: the call
// blocks until a solution is found, exactly as the original pedagogical
// miner does.
func Mine(prefixData string, cost int) (digest string, nonce uint64) {
	target := strings.Repeat("0", cost)
	for nonce = 1; ; nonce++ {
		digest = Hash(prefixData + strconv.FormatUint(nonce, 10))
		if strings.HasPrefix(digest, target) {
			log.Debug("mined block", "nonce", nonce, "digest", digest, "cost", cost)
			return digest, nonce
		}
	}
}

// Verify reports whether digest is the SHA3-256 hash of preimage and
// begins with the required number of hex zeros.
func Verify(preimage, digest string, cost int) bool {
	return Hash(preimage) == digest && strings.HasPrefix(digest, strings.Repeat("0", cost))
}
