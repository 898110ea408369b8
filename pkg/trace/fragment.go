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

// Fragment is a transient, non-owning grouping of mutable column views
// handed to one partial-trace producer during assembly.  All columns in a
// fragment have the same length; fragments never alias each other's columns
// and must not outlive the assembly step.
type Fragment struct {
	data [][]Felt
}

// NewFragment creates a fragment with its column set allocated to the given
// capacity.
func NewFragment(capacity uint) *Fragment {
	return &Fragment{data: make([][]Felt, 0, capacity)}
}

// Width returns the number of columns in this fragment.
func (p *Fragment) Width() uint {
	return uint(len(p.data))
}

// Len returns the number of rows in this fragment.
func (p *Fragment) Len() uint {
	return uint(len(p.data[0]))
}

// Set updates a single cell in this fragment with the provided value.
func (p *Fragment) Set(row uint, col uint, value Felt) {
	p.data[col][row] = value
}

// Column returns the mutable view of the given column.
func (p *Fragment) Column(index uint) []Felt {
	return p.data[index]
}

// PushColumnSlice adds a new column to this fragment covering the first n
// elements of the provided column, and returns the remainder as a separate
// mutable slice.
func (p *Fragment) PushColumnSlice(column []Felt, n uint) []Felt {
	p.data = append(p.data, column[:n])
	// Done
	return column[n:]
}
