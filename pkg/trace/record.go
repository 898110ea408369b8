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

// ColumnSet is one partial-trace producer: a named group of equal-length
// columns generated by a single subsystem of the virtual machine.
type ColumnSet interface {
	// TraceLen returns the number of rows this producer has recorded.
	TraceLen() uint
	// Width returns the number of columns this producer contributes.
	Width() uint
	// FillTrace materializes this producer's columns into the given
	// fragment, whose length is the resolved trace length.  Columns shorter
	// than the fragment are padded per the producer's own continuation
	// policy; the last numRandRows rows may be left untouched since they are
	// overwritten with random values afterwards.
	FillTrace(fragment *Fragment, numRandRows uint)
}

// RangeChecker is the range checker's partial-trace producer.  In addition
// to its columns it emits the bookkeeping hints required to build the
// auxiliary lookup-argument segment later, without re-deriving them from
// the main matrix.
type RangeChecker interface {
	// TraceLen returns the number of rows this producer has recorded.
	TraceLen() uint
	// Width returns the number of columns this producer contributes.
	Width() uint
	// FillTrace materializes the range checker columns, as per
	// ColumnSet.FillTrace, and returns the auxiliary build hints.
	FillTrace(fragment *Fragment, numRandRows uint) RangeCheckHints
}

// Record is the decomposed execution record of one completed program run.
// It is consumed exactly once, by NewExecutionTrace; producers hand out
// their columns during that single assembly and are discarded afterwards.
type Record struct {
	// Clk is the number of executed cycles.  Step-driven producers (system,
	// decoder, operand stack) must report exactly this many rows.
	Clk uint
	// ProgramHash binds the trace to the executed program and seeds all
	// randomization.
	ProgramHash Digest
	// System registers producer
	System ColumnSet
	// Instruction decoder producer
	Decoder ColumnSet
	// Operand stack producer
	Stack ColumnSet
	// Range checker producer
	RangeChecker RangeChecker
	// Auxiliary co-processor table producer
	AuxTable ColumnSet
}
