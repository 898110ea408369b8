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

// auxProduct builds the running product column over the given table values
// and multiplicities, returning its stable final value.
func auxProduct(t *testing.T, length uint, values []uint64, multiplicities []uint64, challenge uint64) Felt {
	vColumn := make([]Felt, length)
	for i, v := range values {
		vColumn[i] = field.Uint64[Felt](v)
	}
	//
	columns, err := buildAuxColumns(length, RangeCheckHints{multiplicities}, []Felt{field.Uint64[Felt](challenge)}, vColumn)
	require.NoError(t, err)
	require.Equal(t, 1, len(columns))
	// The product is stable from the last hint row onwards.
	z := columns[0]
	assert.True(t, z[0].IsOne(), "running product must start at one")
	//
	return z[length-NumRandRows-1]
}

func TestAuxProductMatchedMultiset(t *testing.T) {
	// Two lookups of 5 against a table holding 5 twice, one lookup of 7.
	product := auxProduct(t, 64, []uint64{5, 5, 7}, []uint64{2, 0, 1}, 12345)
	//
	assert.True(t, product.IsOne(), "matched multisets must telescope to one, got %s", product)
}

func TestAuxProductEachRowOnce(t *testing.T) {
	product := auxProduct(t, 64, []uint64{1, 2, 3, 4}, []uint64{1, 1, 1, 1}, 98765)
	//
	assert.True(t, product.IsOne(), "unit multiplicities must telescope to one, got %s", product)
}

func TestAuxProductMismatchedMultiset(t *testing.T) {
	// The value 7 is looked up once too often.
	product := auxProduct(t, 64, []uint64{5, 5, 7}, []uint64{2, 0, 2}, 12345)
	//
	assert.False(t, product.IsOne(), "mismatched multisets must not telescope to one")
	// Specifically, the excess factor is (challenge + 7).
	assert.True(t, product.Equals(field.Uint64[Felt](12345+7)))
}

func TestAuxProductUnusedRow(t *testing.T) {
	// A table row never looked up divides the product.
	product := auxProduct(t, 64, []uint64{5, 7}, []uint64{1, 0}, 12345)
	//
	expected := field.Uint64[Felt](12345 + 7).Inverse()
	assert.True(t, product.Equals(expected))
}

func TestAuxColumnsMissingHints(t *testing.T) {
	_, err := buildAuxColumns(64, RangeCheckHints{}, []Felt{field.One[Felt]()}, make([]Felt, 64))
	//
	assert.ErrorIs(t, err, ErrMalformedAuxHints)
}

func TestAuxColumnsMissingChallenges(t *testing.T) {
	_, err := buildAuxColumns(64, RangeCheckHints{[]uint64{1}}, nil, make([]Felt, 64))
	//
	assert.ErrorIs(t, err, ErrMalformedAuxHints)
}

func TestAuxColumnsOversizedHints(t *testing.T) {
	// 64 hint rows cannot fit a 64-row trace with a reserved tail row.
	_, err := buildAuxColumns(64, RangeCheckHints{make([]uint64, 64)}, []Felt{field.One[Felt]()}, make([]Felt, 64))
	//
	assert.ErrorIs(t, err, ErrMalformedAuxHints)
}
