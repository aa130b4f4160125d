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

package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignVerifyRoundTrip(t *testing.T) {
	kp, err := GenerateKeyPair()
	require.NoError(t, err)

	msg := []byte("transfer 5 from alice to bob")
	sig := kp.Sign(msg)
	assert.True(t, Verify(kp.Public, msg, sig))
}

func TestVerifyRejectsTamperedMessage(t *testing.T) {
	kp, err := GenerateKeyPair()
	require.NoError(t, err)

	msg := []byte("transfer 5 from alice to bob")
	sig := kp.Sign(msg)

	tampered := append([]byte(nil), msg...)
	tampered[0] ^= 0x01
	assert.False(t, Verify(kp.Public, tampered, sig))
}

func TestVerifyRejectsTamperedSignature(t *testing.T) {
	kp, err := GenerateKeyPair()
	require.NoError(t, err)

	msg := []byte("transfer 5 from alice to bob")
	sig := kp.Sign(msg)
	sig[0] ^= 0x01
	assert.False(t, Verify(kp.Public, msg, sig))
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	kp1, err := GenerateKeyPair()
	require.NoError(t, err)
	kp2, err := GenerateKeyPair()
	require.NoError(t, err)

	msg := []byte("transfer 5 from alice to bob")
	sig := kp1.Sign(msg)
	assert.False(t, Verify(kp2.Public, msg, sig))
}

func TestVerifyRejectsMalformedLengths(t *testing.T) {
	kp, err := GenerateKeyPair()
	require.NoError(t, err)

	msg := []byte("transfer 5 from alice to bob")
	sig := kp.Sign(msg)

	assert.False(t, Verify(kp.Public[:len(kp.Public)-1], msg, sig))
	assert.False(t, Verify(kp.Public, msg, sig[:len(sig)-1]))
	assert.False(t, Verify(nil, msg, nil))
}

func TestHexIsStableForSameKey(t *testing.T) {
	kp, err := GenerateKeyPair()
	require.NoError(t, err)
	assert.Equal(t, kp.Hex(), kp.Hex())
	assert.Len(t, kp.Hex(), PublicKeySize*2)
}
