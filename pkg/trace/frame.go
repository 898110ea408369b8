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
package trace

import "github.com/consensys/go-vmtrace/pkg/util/field"

// EvaluationFrame is a pair of row buffers read during constraint
// evaluation: the current row and the next row, where the next row of the
// last trace row wraps around to the first.  Transition constraints are
// expressed over these two rows, including the wraparound boundary.
type EvaluationFrame[F field.Element[F]] struct {
	current []F
	next    []F
}

// NewEvaluationFrame constructs a frame with buffers of the given width.
func NewEvaluationFrame[F field.Element[F]](width uint) *EvaluationFrame[F] {
	return &EvaluationFrame[F]{
		current: make([]F, width),
		next:    make([]F, width),
	}
}

// Current returns the buffer holding the current row.
func (p *EvaluationFrame[F]) Current() []F {
	return p.current
}

// Next returns the buffer holding the next row.
func (p *EvaluationFrame[F]) Next() []F {
	return p.next
}
