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
package cmd

import (
	"github.com/consensys/go-vmtrace/pkg/trace"
	"github.com/consensys/go-vmtrace/pkg/util/field"
)

// demoRecord fabricates the execution record of a synthetic program run with
// the given cycle count.  Column contents are deterministic patterns, which
// is enough to exercise assembly, randomization and the lookup argument.
func demoRecord(clk uint, programHash trace.Digest) *trace.Record {
	return &trace.Record{
		Clk:         clk,
		ProgramHash: programHash,
		System: &demoColumns{clk, trace.SysTraceWidth, func(row, col uint) trace.Felt {
			// Column 0 is the clock
			if col == 0 {
				return field.Uint64[trace.Felt](uint64(row))
			}
			// Remaining system registers idle at zero
			return trace.Felt{}
		}},
		Decoder: &demoColumns{clk, trace.DecoderTraceWidth, func(row, col uint) trace.Felt {
			// Alternating opcode bit pattern
			return field.Uint64[trace.Felt](uint64((row >> col) & 1))
		}},
		Stack: &demoColumns{clk, trace.StackTraceWidth, func(row, col uint) trace.Felt {
			return field.Uint64[trace.Felt](uint64(row + col))
		}},
		RangeChecker: &demoRangeChecker{clk / 2},
		AuxTable: &demoColumns{clk / 4, trace.AuxTableTraceWidth, func(row, col uint) trace.Felt {
			return field.Uint64[trace.Felt](uint64(row * col))
		}},
	}
}

// demoColumns is a partial-trace producer whose cells are computed from a
// fixed pattern, repeating the terminal row as its continuation policy.
type demoColumns struct {
	rows  uint
	width uint
	cell  func(row, col uint) trace.Felt
}

// TraceLen implementation for the trace.ColumnSet interface.
func (p *demoColumns) TraceLen() uint {
	return p.rows
}

// Width implementation for the trace.ColumnSet interface.
func (p *demoColumns) Width() uint {
	return p.width
}

// FillTrace implementation for the trace.ColumnSet interface.
func (p *demoColumns) FillTrace(fragment *trace.Fragment, numRandRows uint) {
	fill := fragment.Len() - numRandRows
	//
	for col := uint(0); col < p.width; col++ {
		for row := uint(0); row < fill; row++ {
			fragment.Set(row, col, p.cell(min(row, p.rows-1), col))
		}
	}
}

// demoRangeChecker produces a range checker segment whose value column walks
// upwards one value per row, each looked up exactly once.
type demoRangeChecker struct {
	rows uint
}

// TraceLen implementation for the trace.RangeChecker interface.
func (p *demoRangeChecker) TraceLen() uint {
	return p.rows
}

// Width implementation for the trace.RangeChecker interface.
func (p *demoRangeChecker) Width() uint {
	return trace.RangeCheckTraceWidth
}

// FillTrace implementation for the trace.RangeChecker interface.
func (p *demoRangeChecker) FillTrace(fragment *trace.Fragment, numRandRows uint) trace.RangeCheckHints {
	var (
		fill           = fragment.Len() - numRandRows
		valueCol       = fragment.Width() - 1
		multiplicities = make([]uint64, p.rows)
	)
	//
	for row := uint(0); row < fill; row++ {
		value := min(row, p.rows-1) & 0xffff
		// Selector flags
		fragment.Set(row, 0, field.One[trace.Felt]())
		fragment.Set(row, 1, trace.Felt{})
		fragment.Set(row, 2, trace.Felt{})
		// Checked value
		fragment.Set(row, valueCol, field.Uint64[trace.Felt](uint64(value)))
	}
	// Every table row is looked up exactly once.
	for i := range multiplicities {
		multiplicities[i] = 1
	}
	//
	return trace.RangeCheckHints{Multiplicities: multiplicities}
}
