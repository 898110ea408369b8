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

// Package random provides a deterministic, seedable source of field elements
// built on the sponge permutation.  A coin seeded from the same bytes always
// produces the same draw sequence; without the seed the sequence is
// unpredictable (to the extent the underlying permutation is).
package random

import (
	"encoding/binary"
	"errors"

	"github.com/consensys/go-vmtrace/pkg/sponge"
	"github.com/consensys/go-vmtrace/pkg/util/field/f128"
)

// ErrDrawExhausted signals that no canonical field element could be extracted
// within the sampling policy.  Probabilistically this should never happen;
// when it does, trace construction must abort since partial randomization
// violates the degree-stability invariant.
var ErrDrawExhausted = errors.New("failed to draw a random field element")

// maxDrawAttempts bounds the rejection sampling loop of a single draw.
const maxDrawAttempts = 1000

// Coin is a seeded pseudorandom generator of field elements.  Each instance
// owns its state exclusively; independent instances never share state, even
// when seeded from the same bytes.
type Coin struct {
	// seed commits the coin to its seed bytes
	seed [sponge.DigestSize]byte
	// counter keys each candidate extraction
	counter uint64
}

// NewCoin constructs a coin seeded from the given bytes, typically a binding
// digest such as a program hash.
func NewCoin(seed []byte) *Coin {
	return &Coin{seed: sponge.Hash(seed)}
}

// Draw produces the next field element.  Candidates are extracted by hashing
// the seed with a monotonically increasing counter and rejecting any value
// not below the field modulus; after maxDrawAttempts rejections the draw
// fails with ErrDrawExhausted.
func (c *Coin) Draw() (f128.Element, error) {
	for i := 0; i < maxDrawAttempts; i++ {
		c.counter++
		//
		digest := sponge.MergeWithInt(c.seed, c.counter)
		//
		lo := binary.LittleEndian.Uint64(digest[0:8])
		hi := binary.LittleEndian.Uint64(digest[8:16])
		// Reject non-canonical candidates.
		if element, ok := f128.FromUint128(lo, hi); ok {
			return element, nil
		}
	}
	//
	return f128.Element{}, ErrDrawExhausted
}
