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

// Matrix is a column-major grid of field elements where every column has
// identical length.  A matrix owns its columns; accessors return them
// directly and callers must treat them as read-only.
type Matrix[F field.Element[F]] struct {
	// Holds the column data
	columns [][]F
}

// NewMatrix constructs a matrix from the given columns.  All columns must
// have the same length.
func NewMatrix[F field.Element[F]](columns [][]F) *Matrix[F] {
	if len(columns) == 0 {
		panic("matrix requires at least one column")
	}
	// Sanity check column heights
	for _, col := range columns {
		if len(col) != len(columns[0]) {
			panic("matrix columns must have equal length")
		}
	}
	//
	return &Matrix[F]{columns}
}

// NumCols returns the number of columns in this matrix.
func (p *Matrix[F]) NumCols() uint {
	return uint(len(p.columns))
}

// NumRows returns the number of rows in this matrix.
func (p *Matrix[F]) NumRows() uint {
	return uint(len(p.columns[0]))
}

// Column returns the data of the given column.
func (p *Matrix[F]) Column(index uint) []F {
	return p.columns[index]
}

// Get returns the value at the given column and row.
func (p *Matrix[F]) Get(col uint, row uint) F {
	return p.columns[col][row]
}

// ReadRowInto copies the given row into the destination buffer, which must
// have the width of this matrix.
func (p *Matrix[F]) ReadRowInto(row uint, dst []F) {
	for i, column := range p.columns {
		dst[i] = column[row]
	}
}
