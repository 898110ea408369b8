// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package sponge

import (
	"encoding/binary"

	"github.com/consensys/go-vmtrace/pkg/util/field/f128"
)

// DigestSize is the size, in bytes, of a sponge digest.
const DigestSize = 32

// blockSize is the number of input bytes absorbed per round: two field
// elements of 16 bytes each, injected through the round's operation slots.
const blockSize = 2 * f128.Bytes

// Hash absorbs the given data into a zeroed sponge state and returns a
// 32-byte digest.  The final block is zero-padded and there is no length
// suffix: this is not a general-purpose hash, it exists solely to derive
// random-coin seeds from fixed-size inputs.
func Hash(data []byte) [DigestSize]byte {
	var (
		state  State
		zero   f128.Element
		round  int
		digest [DigestSize]byte
	)
	// Absorb input, one block per round.
	for len(data) > 0 {
		var block [blockSize]byte
		//
		n := copy(block[:], data)
		data = data[n:]
		//
		lo := f128.FromLittleEndianBytes(block[0:f128.Bytes])
		hi := f128.FromLittleEndianBytes(block[f128.Bytes:])
		//
		ApplyRound(&state, lo, hi, round)
		round++
	}
	// Finalize with a full cycle of empty rounds.
	for i := 0; i < CycleLength; i++ {
		ApplyRound(&state, zero, zero, round)
		round++
	}
	//
	lo := state[0].LittleEndianBytes()
	hi := state[1].LittleEndianBytes()
	//
	copy(digest[0:f128.Bytes], lo[:])
	copy(digest[f128.Bytes:], hi[:])
	//
	return digest
}

// MergeWithInt hashes the given digest together with a 64-bit value.  This is
// the re-keying primitive used by the random coin to derive one candidate per
// counter value.
func MergeWithInt(seed [DigestSize]byte, value uint64) [DigestSize]byte {
	var data [DigestSize + 8]byte
	//
	copy(data[:DigestSize], seed[:])
	binary.LittleEndian.PutUint64(data[DigestSize:], value)
	//
	return Hash(data[:])
}
