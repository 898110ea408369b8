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

// Package sponge implements the algebraic permutation underlying the random
// coin.  It is a modified Rescue round in which values are injected into the
// state in the middle of the round.  This modification differs significantly
// from how the function was originally designed, and may potentially be
// insecure; callers must not assume cryptographic soundness beyond
// unpredictability without the seed.
package sponge

import "github.com/consensys/go-vmtrace/pkg/util/field/f128"

// StateWidth is the number of field elements making up the sponge state.
const StateWidth = 4

// CycleLength is the period, in rounds, of the round constant tables.
const CycleLength = 16

// State is the working memory of one permutation invocation.
type State = [StateWidth]f128.Element

// ApplyRound mutates the given state through one full round of the
// permutation: the first Rescue half-round, a mid-round injection of the
// operation code into slot 0 and the operation value into slot 1, then the
// second half-round.  Round constants are selected by step modulo
// CycleLength.
func ApplyRound(state *State, opCode, opValue f128.Element, step int) {
	arkIdx := step % CycleLength

	// apply first half of Rescue round
	AddConstants(state, arkIdx, 0)
	ApplySBox(state)
	ApplyMDS(state)

	// inject value into the state
	state[0] = state[0].Add(opCode)
	state[1] = state[1].Add(opValue)

	// apply second half of Rescue round
	AddConstants(state, arkIdx, StateWidth)
	ApplyInvSBox(state)
	ApplyMDS(state)
}

// AddConstants adds one row of round constants to the state, selected by
// cycle index and half-round offset.
func AddConstants(state *State, idx int, offset int) {
	for i := 0; i < StateWidth; i++ {
		state[i] = state[i].Add(ark[offset+i][idx])
	}
}

// ApplySBox raises every state element to the power alpha.
func ApplySBox(state *State) {
	for i := 0; i < StateWidth; i++ {
		state[i] = state[i].Exp(alpha, 0)
	}
}

// ApplyInvSBox raises every state element to the power 1/alpha.
func ApplyInvSBox(state *State) {
	for i := 0; i < StateWidth; i++ {
		state[i] = state[i].Exp(invAlphaLo, invAlphaHi)
	}
}

// ApplyMDS multiplies the state by the linear-mixing matrix.
func ApplyMDS(state *State) {
	var result State
	//
	for i := 0; i < StateWidth; i++ {
		for j := 0; j < StateWidth; j++ {
			result[i] = result[i].Add(mds[i*StateWidth+j].Mul(state[j]))
		}
	}
	//
	*state = result
}

// ApplyInvMDS multiplies the state by the inverse of the linear-mixing
// matrix.
func ApplyInvMDS(state *State) {
	var result State
	//
	for i := 0; i < StateWidth; i++ {
		for j := 0; j < StateWidth; j++ {
			result[i] = result[i].Add(invMds[i*StateWidth+j].Mul(state[j]))
		}
	}
	//
	*state = result
}
