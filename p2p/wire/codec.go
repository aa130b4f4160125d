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

package wire

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/flate"

	"github.com/floodledger/floodledger/params"
)

// ErrEmptyBuffer is returned by Decode when the input was empty after
// trimming, e.g. a peer that closed the connection without writing
// anything.
var ErrEmptyBuffer = errors.New("wire: empty message buffer")

// Encode JSON-marshals m, deflate-compresses the result at
// params.CompressionLevel, and returns the compressed bytes ready for a
// single TCP write.
func Encode(m Message) ([]byte, error) {
	payload, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("wire: marshal message: %w", err)
	}

	var buf bytes.Buffer
	zw, err := flate.NewWriter(&buf, params.CompressionLevel)
	if err != nil {
		return nil, fmt.Errorf("wire: new deflate writer: %w", err)
	}
	if _, err := zw.Write(payload); err != nil {
		return nil, fmt.Errorf("wire: deflate write: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("wire: deflate close: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode reverses Encode. raw is the fixed-size buffer a connection was
// read into; it may contain trailing zero bytes beyond whatever was
// actually read. Decode locates the first run of three consecutive zero
// bytes and truncates there, then inflates and JSON-decodes.
//
// Because a legitimate deflate stream can itself contain a run of three
// zero bytes, a single truncation point is not reliable: Decode
// progressively re-extends the candidate slice by one byte at a time and
// retries decompression until it succeeds, bounded by len(raw). This
// mirrors the original protocol's framing exactly and must not be
// "simplified" into a length-prefixed frame — the wire format has none.
func Decode(raw []byte) (Message, error) {
	cut := findZeroRun(raw)
	if cut == 0 {
		return Message{}, ErrEmptyBuffer
	}

	var lastErr error
	for end := cut; end <= len(raw); end++ {
		inflated, err := inflate(raw[:end])
		if err != nil {
			lastErr = err
			continue
		}
		var m Message
		if err := json.Unmarshal(inflated, &m); err != nil {
			return Message{}, fmt.Errorf("wire: unmarshal message: %w", err)
		}
		return m, nil
	}
	return Message{}, fmt.Errorf("wire: could not inflate message: %w", lastErr)
}

// findZeroRun returns the index of the first byte of the first run of
// three consecutive zero bytes in raw, or len(raw) if none is found.
func findZeroRun(raw []byte) int {
	for i := 0; i+2 < len(raw); i++ {
		if raw[i] == 0 && raw[i+1] == 0 && raw[i+2] == 0 {
			return i
		}
	}
	return len(raw)
}

func inflate(compressed []byte) ([]byte, error) {
	zr := flate.NewReader(bytes.NewReader(compressed))
	defer zr.Close()
	out, err := io.ReadAll(zr)
	if err != nil {
		return nil, err
	}
	return out, nil
}
