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

// Package trace assembles the raw execution record of a completed program
// run into a STARK-provable execution trace: a rectangular matrix of field
// elements of power-of-two length, whose reserved tail rows carry random
// values drawn from a coin seeded with the program hash.
package trace

import "github.com/consensys/go-vmtrace/pkg/util/field/f128"

// Felt is the base field element type of all trace cells.
type Felt = f128.Element

// Digest is a fixed-size binding digest, here the hash of the executed
// program, used to seed randomness deterministically per run.
type Digest [32]byte

// Layout of the execution trace.
const (
	// NumRandRows is the number of rows at the end of an execution trace
	// which are injected with random values.
	NumRandRows = 1
	// MinTraceLen is the smallest admissible number of trace rows.
	MinTraceLen = 64
	// MinStackDepth is the number of operand stack registers exposed as
	// dedicated trace columns.
	MinStackDepth = 16

	// SysTraceOffset locates the system segment columns.
	SysTraceOffset = 0
	// SysTraceWidth is the number of system segment columns.
	SysTraceWidth = 2
	// DecoderTraceOffset locates the decoder segment columns.
	DecoderTraceOffset = SysTraceOffset + SysTraceWidth
	// DecoderTraceWidth is the number of decoder segment columns.
	DecoderTraceWidth = 6
	// StackTraceOffset locates the operand stack segment columns.
	StackTraceOffset = DecoderTraceOffset + DecoderTraceWidth
	// StackTraceWidth is the number of operand stack segment columns.
	StackTraceWidth = MinStackDepth + 3
	// RangeCheckTraceOffset locates the range checker segment columns.
	RangeCheckTraceOffset = StackTraceOffset + StackTraceWidth
	// RangeCheckTraceWidth is the number of range checker segment columns.
	RangeCheckTraceWidth = 4
	// RangeCheckValueCol is the column holding the range checker's claimed
	// values, i.e. the column the lookup argument ranges over.
	RangeCheckValueCol = RangeCheckTraceOffset + RangeCheckTraceWidth - 1
	// AuxTableTraceOffset locates the auxiliary co-processor segment columns.
	AuxTableTraceOffset = RangeCheckTraceOffset + RangeCheckTraceWidth
	// AuxTableTraceWidth is the number of auxiliary co-processor columns.
	AuxTableTraceWidth = 12

	// TraceWidth is the total width of the main trace segment.
	TraceWidth = AuxTableTraceOffset + AuxTableTraceWidth
)

// Trace is the capability handed to the external prover.  Today there is
// exactly one conforming type (ExecutionTrace); the interface leaves room
// for alternate trace representations.
type Trace interface {
	// Layout returns the segment structure of this trace.
	Layout() *Layout
	// Length returns the resolved (power of two) number of rows.
	Length() uint
	// Meta returns opaque metadata bytes, empty by default.
	Meta() []byte
	// MainSegment returns the main trace matrix.  The returned matrix must
	// be treated as read-only.
	MainSegment() *Matrix[Felt]
	// BuildAuxSegment constructs the next auxiliary segment using random
	// challenges received after the main segment was committed.  It returns
	// nil (and no error) if all supported segments have been built already,
	// i.e. if auxSegments is non-empty.
	BuildAuxSegment(auxSegments []*Matrix[Felt], randElements []Felt) (*Matrix[Felt], error)
	// ReadFrame fills the frame's current buffer with the given row, and its
	// next buffer with the following row, wrapping around at the last row.
	// Row indices beyond the trace length violate the caller contract.
	ReadFrame(rowIdx uint, frame *EvaluationFrame[Felt])
}

// Layout describes the number and widths of the segments making up a trace:
// one main segment, plus zero or more auxiliary segments each entitled to a
// number of random challenge elements.
type Layout struct {
	// Width of the main trace segment
	mainWidth uint
	// Widths of the auxiliary segments
	auxWidths []uint
	// Number of random elements each auxiliary segment is built from
	auxRandElements []uint
}

// NewLayout constructs a trace layout descriptor.
func NewLayout(mainWidth uint, auxWidths []uint, auxRandElements []uint) *Layout {
	// Sanity check shape
	if len(auxWidths) != len(auxRandElements) {
		panic("every auxiliary segment requires a random element count")
	}
	//
	return &Layout{mainWidth, auxWidths, auxRandElements}
}

// MainWidth returns the number of columns in the main segment.
func (p *Layout) MainWidth() uint {
	return p.mainWidth
}

// NumAuxSegments returns the number of auxiliary segments in the layout.
func (p *Layout) NumAuxSegments() uint {
	return uint(len(p.auxWidths))
}

// AuxWidth returns the number of columns in the given auxiliary segment.
func (p *Layout) AuxWidth(segment uint) uint {
	return p.auxWidths[segment]
}

// NumAuxRandElements returns the number of random challenge elements the
// given auxiliary segment is built from.
func (p *Layout) NumAuxRandElements(segment uint) uint {
	return p.auxRandElements[segment]
}
