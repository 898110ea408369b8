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
	"testing"

	"github.com/consensys/go-vmtrace/pkg/util/field"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// patternColumns is a test producer whose cells follow a fixed pattern,
// padding with its terminal row.
type patternColumns struct {
	rows  uint
	width uint
	cell  func(row, col uint) Felt
}

func (p *patternColumns) TraceLen() uint {
	return p.rows
}

func (p *patternColumns) Width() uint {
	return p.width
}

func (p *patternColumns) FillTrace(fragment *Fragment, numRandRows uint) {
	fill := fragment.Len() - numRandRows
	//
	for col := uint(0); col < p.width; col++ {
		for row := uint(0); row < fill; row++ {
			fragment.Set(row, col, p.cell(min(row, p.rows-1), col))
		}
	}
}

// testRangeChecker is a test producer for the range checker segment, with
// its lookup multiplicities chosen up front.
type testRangeChecker struct {
	rows           uint
	multiplicities []uint64
}

func (p *testRangeChecker) TraceLen() uint {
	return p.rows
}

func (p *testRangeChecker) Width() uint {
	return RangeCheckTraceWidth
}

func (p *testRangeChecker) FillTrace(fragment *Fragment, numRandRows uint) RangeCheckHints {
	var (
		fill     = fragment.Len() - numRandRows
		valueCol = fragment.Width() - 1
	)
	//
	for row := uint(0); row < fill; row++ {
		fragment.Set(row, valueCol, field.Uint64[Felt](uint64(min(row, p.rows-1))))
	}
	//
	return RangeCheckHints{p.multiplicities}
}

// testRecord assembles a record of pattern producers over the given number
// of cycles, with every range check row looked up exactly once.
func testRecord(clk uint, programHash Digest) *Record {
	return testRecordWith(clk, programHash, &testRangeChecker{clk, unitMultiplicities(clk)})
}

func testRecordWith(clk uint, programHash Digest, rangeChecker RangeChecker) *Record {
	cell := func(row, col uint) Felt {
		return field.Uint64[Felt](uint64(row*100 + col))
	}
	//
	return &Record{
		Clk:          clk,
		ProgramHash:  programHash,
		System:       &patternColumns{clk, SysTraceWidth, cell},
		Decoder:      &patternColumns{clk, DecoderTraceWidth, cell},
		Stack:        &patternColumns{clk, StackTraceWidth, cell},
		RangeChecker: rangeChecker,
		AuxTable:     &patternColumns{clk, AuxTableTraceWidth, cell},
	}
}

func unitMultiplicities(n uint) []uint64 {
	multiplicities := make([]uint64, n)
	for i := range multiplicities {
		multiplicities[i] = 1
	}
	//
	return multiplicities
}

func TestTraceLengthMinimum(t *testing.T) {
	executionTrace, err := NewExecutionTrace(testRecord(16, Digest{1}))
	require.NoError(t, err)
	// 16 cycles still yield the minimum trace length.
	assert.Equal(t, uint(MinTraceLen), executionTrace.Length())
}

func TestTraceLengthNextPowerOfTwo(t *testing.T) {
	executionTrace, err := NewExecutionTrace(testRecord(100, Digest{1}))
	require.NoError(t, err)
	//
	assert.Equal(t, uint(128), executionTrace.Length())
}

func TestTraceLengthReservesRandomRows(t *testing.T) {
	// 64 cycles plus the reserved tail row no longer fit in 64 rows.
	executionTrace, err := NewExecutionTrace(testRecord(64, Digest{1}))
	require.NoError(t, err)
	//
	assert.Equal(t, uint(128), executionTrace.Length())
}

func TestTraceLengthLongestComponentWins(t *testing.T) {
	// A 200-row range checker outgrows the 16 execution cycles.
	record := testRecordWith(16, Digest{1}, &testRangeChecker{200, unitMultiplicities(200)})
	//
	executionTrace, err := NewExecutionTrace(record)
	require.NoError(t, err)
	//
	assert.Equal(t, uint(256), executionTrace.Length())
}

func TestTraceShape(t *testing.T) {
	executionTrace, err := NewExecutionTrace(testRecord(16, Digest{1}))
	require.NoError(t, err)
	//
	layout := executionTrace.Layout()
	assert.Equal(t, uint(TraceWidth), layout.MainWidth())
	assert.Equal(t, uint(TraceWidth), executionTrace.MainSegment().NumCols())
	assert.Equal(t, uint(1), layout.NumAuxSegments())
	assert.Equal(t, uint(1), layout.AuxWidth(0))
	assert.Equal(t, uint(1), layout.NumAuxRandElements(0))
	assert.Equal(t, Digest{1}, executionTrace.ProgramHash())
	assert.Equal(t, 0, len(executionTrace.Meta()))
}

func TestInconsistentComponentLengths(t *testing.T) {
	for _, component := range []string{"system", "decoder", "stack"} {
		record := testRecord(16, Digest{1})
		// Desynchronize one step-driven producer.
		switch component {
		case "system":
			record.System = &patternColumns{17, SysTraceWidth, record.System.(*patternColumns).cell}
		case "decoder":
			record.Decoder = &patternColumns{15, DecoderTraceWidth, record.Decoder.(*patternColumns).cell}
		case "stack":
			record.Stack = &patternColumns{17, StackTraceWidth, record.Stack.(*patternColumns).cell}
		}
		//
		_, err := NewExecutionTrace(record)
		assert.ErrorIs(t, err, ErrInconsistentTraceLength, component)
		assert.ErrorContains(t, err, component)
	}
}

func TestTraceContentPreserved(t *testing.T) {
	clk := uint(16)
	//
	executionTrace, err := NewExecutionTrace(testRecord(clk, Digest{1}))
	require.NoError(t, err)
	//
	segment := executionTrace.MainSegment()
	// Recorded rows hold the producer pattern, offset per segment.
	for row := uint(0); row < clk; row++ {
		assert.True(t, segment.Get(SysTraceOffset+1, row).Equals(field.Uint64[Felt](uint64(row*100+1))))
		assert.True(t, segment.Get(DecoderTraceOffset, row).Equals(field.Uint64[Felt](uint64(row*100))))
		assert.True(t, segment.Get(StackTraceOffset+2, row).Equals(field.Uint64[Felt](uint64(row*100+2))))
		assert.True(t, segment.Get(AuxTableTraceOffset, row).Equals(field.Uint64[Felt](uint64(row*100))))
	}
	// Padding rows repeat the terminal row.
	lastStep := executionTrace.Length() - NumRandRows - 1
	assert.True(t, segment.Get(DecoderTraceOffset, lastStep).Equals(field.Uint64[Felt](uint64((clk-1)*100))))
}

func TestRandomizedTailDeterminism(t *testing.T) {
	trace1, err := NewExecutionTrace(testRecord(16, Digest{1}))
	require.NoError(t, err)

	trace2, err := NewExecutionTrace(testRecord(16, Digest{1}))
	require.NoError(t, err)

	trace3, err := NewExecutionTrace(testRecord(16, Digest{2}))
	require.NoError(t, err)
	//
	var (
		lastRow = trace1.Length() - 1
		same    = true
	)
	//
	for col := uint(0); col < TraceWidth; col++ {
		// Identical program hashes yield identical random rows.
		assert.True(t, trace1.MainSegment().Get(col, lastRow).Equals(trace2.MainSegment().Get(col, lastRow)),
			"column %d", col)
		//
		same = same && trace1.MainSegment().Get(col, lastRow).Equals(trace3.MainSegment().Get(col, lastRow))
	}
	// Distinct program hashes must diverge somewhere along the row.
	assert.False(t, same, "random rows must depend on the program hash")
}

func TestRandomizedTailOverwritesCells(t *testing.T) {
	executionTrace, err := NewExecutionTrace(testRecord(16, Digest{1}))
	require.NoError(t, err)
	//
	var (
		segment = executionTrace.MainSegment()
		lastRow = executionTrace.Length() - 1
		zeros   = 0
	)
	// Every cell receives an independent draw; all of them vanishing (or any
	// two neighbours colliding) would indicate the rows were never touched.
	for col := uint(0); col < TraceWidth; col++ {
		if segment.Get(col, lastRow).IsZero() {
			zeros++
		}
		//
		if col > 0 {
			assert.False(t, segment.Get(col, lastRow).Equals(segment.Get(col-1, lastRow)),
				"columns %d and %d share a random value", col-1, col)
		}
	}
	//
	assert.NotEqual(t, int(TraceWidth), zeros, "random row was never written")
}

func TestReadFrameInterior(t *testing.T) {
	executionTrace, err := NewExecutionTrace(testRecord(16, Digest{1}))
	require.NoError(t, err)
	//
	frame := NewEvaluationFrame[Felt](TraceWidth)
	executionTrace.ReadFrame(3, frame)
	//
	assert.True(t, frame.Current()[DecoderTraceOffset].Equals(field.Uint64[Felt](300)))
	assert.True(t, frame.Next()[DecoderTraceOffset].Equals(field.Uint64[Felt](400)))
}

func TestReadFrameWrapsAround(t *testing.T) {
	executionTrace, err := NewExecutionTrace(testRecord(16, Digest{1}))
	require.NoError(t, err)
	//
	var (
		frame   = NewEvaluationFrame[Felt](TraceWidth)
		lastRow = executionTrace.Length() - 1
		segment = executionTrace.MainSegment()
	)
	//
	executionTrace.ReadFrame(lastRow, frame)
	// Current holds the last (randomized) row.
	assert.True(t, frame.Current()[0].Equals(segment.Get(0, lastRow)))
	// Next wraps around to the first row.
	for col := uint(0); col < TraceWidth; col++ {
		assert.True(t, frame.Next()[col].Equals(segment.Get(col, 0)), "column %d", col)
	}
}

func TestStackStates(t *testing.T) {
	clk := uint(16)
	//
	executionTrace, err := NewExecutionTrace(testRecord(clk, Digest{1}))
	require.NoError(t, err)
	//
	initState := executionTrace.InitStackState()
	lastState := executionTrace.LastStackState()
	// Stack cells follow the row*100+col pattern; the last step repeats the
	// terminal recorded row.
	for i := 0; i < MinStackDepth; i++ {
		assert.True(t, initState[i].Equals(field.Uint64[Felt](uint64(i))), "register %d", i)
		assert.True(t, lastState[i].Equals(field.Uint64[Felt](uint64((clk-1)*100+uint(i)))), "register %d", i)
	}
}

func TestBuildAuxSegment(t *testing.T) {
	executionTrace, err := NewExecutionTrace(testRecord(16, Digest{1}))
	require.NoError(t, err)
	//
	challenge := field.Uint64[Felt](12345)
	//
	segment, err := executionTrace.BuildAuxSegment(nil, []Felt{challenge})
	require.NoError(t, err)
	require.NotNil(t, segment)
	//
	assert.Equal(t, uint(1), segment.NumCols())
	assert.Equal(t, executionTrace.Length(), segment.NumRows())
	// Unit multiplicities telescope to one at the last usable row.
	product := segment.Get(0, executionTrace.Length()-NumRandRows-1)
	assert.True(t, product.IsOne(), "expected product one, got %s", product)
}

func TestBuildAuxSegmentOnlyOnce(t *testing.T) {
	executionTrace, err := NewExecutionTrace(testRecord(16, Digest{1}))
	require.NoError(t, err)
	//
	first, err := executionTrace.BuildAuxSegment(nil, []Felt{field.Uint64[Felt](12345)})
	require.NoError(t, err)
	// All supported segments have been built at this point.
	second, err := executionTrace.BuildAuxSegment([]*Matrix[Felt]{first}, []Felt{field.Uint64[Felt](999)})
	assert.NoError(t, err)
	assert.Nil(t, second)
}

func TestBuildAuxSegmentMismatch(t *testing.T) {
	// Row 0 of the range table is looked up twice while present once.
	multiplicities := unitMultiplicities(16)
	multiplicities[0] = 2
	//
	record := testRecordWith(16, Digest{1}, &testRangeChecker{16, multiplicities})
	//
	executionTrace, err := NewExecutionTrace(record)
	require.NoError(t, err)
	//
	segment, err := executionTrace.BuildAuxSegment(nil, []Felt{field.Uint64[Felt](12345)})
	require.NoError(t, err)
	//
	product := segment.Get(0, executionTrace.Length()-NumRandRows-1)
	assert.False(t, product.IsOne(), "mismatched lookups must not telescope to one")
}

func TestBuildAuxSegmentRandomizedTail(t *testing.T) {
	challenge := field.Uint64[Felt](12345)
	//
	trace1, err := NewExecutionTrace(testRecord(16, Digest{1}))
	require.NoError(t, err)

	trace2, err := NewExecutionTrace(testRecord(16, Digest{1}))
	require.NoError(t, err)
	//
	segment1, err := trace1.BuildAuxSegment(nil, []Felt{challenge})
	require.NoError(t, err)

	segment2, err := trace2.BuildAuxSegment(nil, []Felt{challenge})
	require.NoError(t, err)
	//
	lastRow := trace1.Length() - 1
	// The tail is drawn from the program hash, hence deterministic.
	assert.True(t, segment1.Get(0, lastRow).Equals(segment2.Get(0, lastRow)))
	// And it genuinely diverges from the running product.
	assert.False(t, segment1.Get(0, lastRow).IsOne())
}

func TestBuildAuxSegmentRejectsMissingChallenges(t *testing.T) {
	executionTrace, err := NewExecutionTrace(testRecord(16, Digest{1}))
	require.NoError(t, err)
	//
	_, err = executionTrace.BuildAuxSegment(nil, nil)
	assert.ErrorIs(t, err, ErrMalformedAuxHints)
}
