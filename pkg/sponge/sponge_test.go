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
	"math/rand"
	"testing"

	"github.com/consensys/go-vmtrace/pkg/util/field/f128"
	"github.com/stretchr/testify/assert"
)

func TestMDSRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(0))
	//
	for i := 0; i < 100; i++ {
		state := randomState(rng)
		original := state
		//
		ApplyMDS(&state)
		ApplyInvMDS(&state)
		//
		assert.Equal(t, original, state, "MDS followed by its inverse must be the identity")
	}
}

func TestSBoxRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	//
	for i := 0; i < 100; i++ {
		state := randomState(rng)
		original := state
		//
		ApplySBox(&state)
		ApplyInvSBox(&state)
		//
		assert.Equal(t, original, state, "S-box followed by its inverse must be the identity")
	}
}

func TestRoundDeterminism(t *testing.T) {
	var (
		rng    = rand.New(rand.NewSource(2))
		opCode = f128.New(rng.Uint64(), rng.Uint64())
		opVal  = f128.New(rng.Uint64(), rng.Uint64())
		s1     = randomState(rng)
		s2     = s1
	)
	//
	ApplyRound(&s1, opCode, opVal, 3)
	ApplyRound(&s2, opCode, opVal, 3)
	//
	assert.Equal(t, s1, s2, "identical inputs must yield identical states")
}

func TestRoundInjection(t *testing.T) {
	var (
		rng = rand.New(rand.NewSource(3))
		s1  = randomState(rng)
		s2  = s1
	)
	// Same state, different injected operations.
	ApplyRound(&s1, f128.New(1, 0), f128.New(0, 0), 0)
	ApplyRound(&s2, f128.New(2, 0), f128.New(0, 0), 0)
	//
	assert.NotEqual(t, s1, s2, "injected operations must influence the state")
}

func TestRoundConstantCycle(t *testing.T) {
	var (
		rng    = rand.New(rand.NewSource(4))
		opCode = f128.New(rng.Uint64(), rng.Uint64())
		opVal  = f128.New(rng.Uint64(), rng.Uint64())
		s1     = randomState(rng)
		s2     = s1
		s3     = s1
	)
	// Constants repeat with period CycleLength.
	ApplyRound(&s1, opCode, opVal, 1)
	ApplyRound(&s2, opCode, opVal, 1+CycleLength)
	ApplyRound(&s3, opCode, opVal, 2)
	//
	assert.Equal(t, s1, s2, "round constants must repeat after a full cycle")
	assert.NotEqual(t, s1, s3, "distinct cycle steps must use distinct constants")
}

func TestHashDeterminism(t *testing.T) {
	data := []byte("some seed material")
	//
	assert.Equal(t, Hash(data), Hash(data))
	assert.NotEqual(t, Hash(data), Hash([]byte("some other material")))
	// Empty input still runs the finalization rounds.
	assert.NotEqual(t, [DigestSize]byte{}, Hash(nil))
}

func TestMergeWithInt(t *testing.T) {
	seed := Hash([]byte("seed"))
	//
	assert.Equal(t, MergeWithInt(seed, 1), MergeWithInt(seed, 1))
	assert.NotEqual(t, MergeWithInt(seed, 1), MergeWithInt(seed, 2))
	assert.NotEqual(t, MergeWithInt(seed, 1), MergeWithInt(Hash([]byte("eggs")), 1))
}

// randomState draws a state of canonical elements from the given generator.
func randomState(rng *rand.Rand) State {
	var state State
	//
	for i := range state {
		state[i] = f128.New(rng.Uint64(), rng.Uint64())
	}
	//
	return state
}
