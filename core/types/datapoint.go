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
	"encoding/json"
	"strconv"
)

// DataPoint is a single value transfer. From is overwritten by the
// listener with the message signer's hex-encoded public key on ingestion;
// whatever the originator supplied there is discarded. Amount is an
// unconstrained real: negative values act as reverse transfers, a known
// loose behavior this module does not validate away.
type DataPoint struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Amount float64 `json:"amount"`
}

// NoOne is the sentinel identity used by the genesis DataPoint.
const NoOne = "NOONE"

// GenesisDataPoint is the single, fixed transaction carried by the
// genesis block.
func GenesisDataPoint() DataPoint {
	return DataPoint{From: NoOne, To: NoOne, Amount: 0}
}

// SigningPreimage builds the exact byte string a create-transaction
// message's signature is produced and checked over:
// utf8(json(dp)) || utf8(dec(timestamp)) || utf8(contact). Per the
// protocol's signing rule, dp must be the pre-overwrite DataPoint (the one
// the client signed, with From as the originator supplied it) — callers
// reconstructing this on the receiving side must not have mutated From
// first.
func (dp DataPoint) SigningPreimage(timestamp int64, contact string) ([]byte, error) {
	encoded, err := json.Marshal(dp)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, 0, len(encoded)+20+len(contact))
	buf = append(buf, encoded...)
	buf = strconv.AppendInt(buf, timestamp, 10)
	buf = append(buf, contact...)
	return buf, nil
}
