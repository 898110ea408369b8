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

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/consensys/go-vmtrace/pkg/random"
	log "github.com/sirupsen/logrus"
)

// ErrInconsistentTraceLength signals that step-driven partial traces
// disagree on their row count.  This can only arise from an upstream
// execution bug; it is not recoverable.
var ErrInconsistentTraceLength = errors.New("inconsistent component trace length")

// StackTopState holds the values of the top operand stack registers at a
// single point of the execution.
type StackTopState [MinStackDepth]Felt

// ExecutionTrace is generated when a program is executed on the VM.  It
// combines the main traces of the system, decoder, operand stack, range
// checker and auxiliary co-processor components, together with the hints
// used during auxiliary segment construction and the metadata needed by the
// STARK prover.
type ExecutionTrace struct {
	meta        []byte
	layout      *Layout
	mainTrace   *Matrix[Felt]
	auxHints    RangeCheckHints
	programHash Digest
}

var _ Trace = (*ExecutionTrace)(nil)

// NewExecutionTrace builds an execution trace from the given record,
// consuming it.  The program hash seeds the random element generator used
// to inject random values at the end of the trace; this is acceptable
// because the random values only stabilize constraint degrees, they do not
// provide zero knowledge.
func NewExecutionTrace(record *Record) (*ExecutionTrace, error) {
	mainTrace, auxHints, err := finalizeTrace(record)
	if err != nil {
		return nil, err
	}
	//
	return &ExecutionTrace{
		meta:        nil,
		layout:      NewLayout(TraceWidth, []uint{1}, []uint{1}),
		mainTrace:   mainTrace,
		auxHints:    auxHints,
		programHash: record.ProgramHash,
	}, nil
}

// ProgramHash returns the hash of the program whose execution resulted in
// this trace.
func (p *ExecutionTrace) ProgramHash() Digest {
	return p.programHash
}

// Layout returns the segment structure of this trace.
func (p *ExecutionTrace) Layout() *Layout {
	return p.layout
}

// Length returns the resolved number of rows, always a power of two.
func (p *ExecutionTrace) Length() uint {
	return p.mainTrace.NumRows()
}

// Meta returns opaque metadata bytes, empty by default.
func (p *ExecutionTrace) Meta() []byte {
	return p.meta
}

// MainSegment returns the main trace matrix.
func (p *ExecutionTrace) MainSegment() *Matrix[Felt] {
	return p.mainTrace
}

// InitStackState returns the state of the top stack registers at the first
// row of the trace.
func (p *ExecutionTrace) InitStackState() StackTopState {
	var result StackTopState
	//
	for i := range result {
		result[i] = p.mainTrace.Get(uint(i+StackTraceOffset), 0)
	}
	//
	return result
}

// LastStackState returns the state of the top stack registers at the last
// row of the trace before the randomized rows.
func (p *ExecutionTrace) LastStackState() StackTopState {
	var (
		result   StackTopState
		lastStep = p.lastStep()
	)
	//
	for i := range result {
		result[i] = p.mainTrace.Get(uint(i+StackTraceOffset), lastStep)
	}
	//
	return result
}

// BuildAuxSegment constructs the running-product lookup segment from the
// range checker hints and the given random challenges.  Only one auxiliary
// segment is supported: if any segment has been built already, nil is
// returned without error.
func (p *ExecutionTrace) BuildAuxSegment(auxSegments []*Matrix[Felt], randElements []Felt) (*Matrix[Felt], error) {
	// We only have one auxiliary segment.
	if len(auxSegments) != 0 {
		return nil, nil
	}
	//
	log.Debugf("building auxiliary trace segment (%d challenges)", len(randElements))
	// Add the range checker's running product column.
	auxColumns, err := buildAuxColumns(p.Length(), p.auxHints, randElements,
		p.mainTrace.Column(RangeCheckValueCol))
	//
	if err != nil {
		return nil, err
	}
	// Inject random values into the last rows of the segment.
	coin := random.NewCoin(p.programHash[:])
	//
	if err := randomizeRows(auxColumns, p.Length()-NumRandRows, p.Length(), coin); err != nil {
		return nil, err
	}
	//
	return NewMatrix(auxColumns), nil
}

// ReadFrame fills the frame's current buffer with the given row and its
// next buffer with the following row, wrapping around at the last row.
func (p *ExecutionTrace) ReadFrame(rowIdx uint, frame *EvaluationFrame[Felt]) {
	nextRowIdx := (rowIdx + 1) % p.Length()
	//
	p.mainTrace.ReadRowInto(rowIdx, frame.Current())
	p.mainTrace.ReadRowInto(nextRowIdx, frame.Next())
}

// lastStep returns the index of the last row of the trace before the
// randomized rows.
func (p *ExecutionTrace) lastStep() uint {
	return p.Length() - NumRandRows - 1
}

// finalizeTrace converts a record into the combined main trace matrix.  This
// involves determining the trace length required to accommodate the longest
// component, having every producer materialize its columns at that length,
// and overwriting the reserved tail rows of every column with random values.
// The random rows ensure there are no repeating patterns in any column and
// that each column contains at least two distinct values, which keeps the
// polynomial degrees of all columns stable.
func finalizeTrace(record *Record) (*Matrix[Felt], RangeCheckHints, error) {
	var hints RangeCheckHints
	// Trace lengths of step-driven components must equal the cycle count.
	if err := checkStepLength("system", record.System.TraceLen(), record.Clk); err != nil {
		return nil, hints, err
	}

	if err := checkStepLength("decoder", record.Decoder.TraceLen(), record.Clk); err != nil {
		return nil, hints, err
	}

	if err := checkStepLength("stack", record.Stack.TraceLen(), record.Clk); err != nil {
		return nil, hints, err
	}
	// Sanity check producer widths against the fixed layout.
	checkWidth("system", record.System.Width(), SysTraceWidth)
	checkWidth("decoder", record.Decoder.Width(), DecoderTraceWidth)
	checkWidth("stack", record.Stack.Width(), StackTraceWidth)
	checkWidth("range checker", record.RangeChecker.Width(), RangeCheckTraceWidth)
	checkWidth("auxiliary table", record.AuxTable.Width(), AuxTableTraceWidth)
	// Get the trace length required to hold all execution trace steps.
	maxLen := max(record.Clk, record.RangeChecker.TraceLen(), record.AuxTable.TraceLen())
	// Pad to the next power of two, leaving space for the random rows, and
	// enforce the minimum trace length.
	traceLen := max(nextPowerOfTwo(maxLen+NumRandRows), MinTraceLen)
	//
	log.Debugf("resolved execution trace length %d (width %d, %d cycles)", traceLen, TraceWidth, record.Clk)
	// Allocate the combined matrix.
	columns := make([][]Felt, TraceWidth)
	for i := range columns {
		columns[i] = make([]Felt, traceLen)
	}
	// Have each producer materialize its columns into its own fragment of
	// disjoint column views.
	record.System.FillTrace(fragmentOf(columns[SysTraceOffset:DecoderTraceOffset]), NumRandRows)
	record.Decoder.FillTrace(fragmentOf(columns[DecoderTraceOffset:StackTraceOffset]), NumRandRows)
	record.Stack.FillTrace(fragmentOf(columns[StackTraceOffset:RangeCheckTraceOffset]), NumRandRows)
	hints = record.RangeChecker.FillTrace(fragmentOf(columns[RangeCheckTraceOffset:AuxTableTraceOffset]), NumRandRows)
	record.AuxTable.FillTrace(fragmentOf(columns[AuxTableTraceOffset:TraceWidth]), NumRandRows)
	// Inject random values into the last rows of the trace.
	coin := random.NewCoin(record.ProgramHash[:])
	//
	if err := randomizeRows(columns, traceLen-NumRandRows, traceLen, coin); err != nil {
		return nil, hints, err
	}
	//
	return NewMatrix(columns), hints, nil
}

// randomizeRows overwrites rows [start, end) of every column with values
// freshly drawn from the given coin, so that every cell receives an
// independent draw.
func randomizeRows(columns [][]Felt, start uint, end uint, coin *random.Coin) error {
	for i := start; i < end; i++ {
		for _, column := range columns {
			value, err := coin.Draw()
			if err != nil {
				return err
			}
			//
			column[i] = value
		}
	}
	//
	return nil
}

// fragmentOf wraps the given columns into a fragment of full-length views.
func fragmentOf(columns [][]Felt) *Fragment {
	fragment := NewFragment(uint(len(columns)))
	//
	for _, column := range columns {
		fragment.PushColumnSlice(column, uint(len(column)))
	}
	//
	return fragment
}

// checkStepLength validates that a step-driven producer reports exactly one
// row per executed cycle.
func checkStepLength(component string, len uint, clk uint) error {
	if len != clk {
		return fmt.Errorf("%w: %s reports %d rows over %d cycles",
			ErrInconsistentTraceLength, component, len, clk)
	}
	//
	return nil
}

// checkWidth validates a producer's width against the fixed trace layout.
// A mismatch indicates a bug in the producer, hence panic.
func checkWidth(component string, actual uint, expected uint) {
	if actual != expected {
		panic(fmt.Sprintf("%s trace width %d does not match layout width %d",
			component, actual, expected))
	}
}

// nextPowerOfTwo rounds n up to the nearest power of two.
func nextPowerOfTwo(n uint) uint {
	if n <= 1 {
		return 1
	}
	//
	return 1 << bits.Len64(uint64(n-1))
}
