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

	"github.com/consensys/go-vmtrace/pkg/util/field"
)

// ErrMalformedAuxHints signals that the range checker's auxiliary build
// hints are absent or do not fit the trace, so the lookup argument cannot
// be constructed.  This indicates an upstream bug, not a user error.
var ErrMalformedAuxHints = errors.New("malformed auxiliary trace hints")

// RangeCheckHints is the bookkeeping produced alongside the range checker's
// main columns, sufficient to build the auxiliary segment later without
// re-deriving it from the main matrix.
type RangeCheckHints struct {
	// Multiplicities[i] gives the number of range check requests satisfied
	// by row i of the range checker segment, i.e. how many times the value
	// in that row was looked up by other components.
	Multiplicities []uint64
}

// buildAuxColumns constructs the columns of the auxiliary trace segment: a
// single running product column z encoding a multiset equality argument
// between the range checker's claimed values and its lookup bookkeeping.
// Row i of the range table contributes the factor (α + vᵢ)^mᵢ / (α + vᵢ),
// where α is the random challenge and mᵢ the row's request multiplicity;
// rows beyond the hints leave the product unchanged.  The product over the
// full trace telescopes to one exactly when the multiset of looked-up
// values matches the multiset of table entries.
func buildAuxColumns(length uint, hints RangeCheckHints, randElements []Felt, vColumn []Felt) ([][]Felt, error) {
	if hints.Multiplicities == nil {
		return nil, fmt.Errorf("%w: missing range checker multiplicities", ErrMalformedAuxHints)
	}
	//
	n := uint(len(hints.Multiplicities))
	//
	if n > length-NumRandRows {
		return nil, fmt.Errorf("%w: %d hint rows exceed %d usable trace rows",
			ErrMalformedAuxHints, n, length-NumRandRows)
	}
	// The argument is parameterized by one verifier challenge.
	if len(randElements) == 0 {
		return nil, fmt.Errorf("%w: no random challenges supplied", ErrMalformedAuxHints)
	}
	//
	alpha := randElements[0]
	// Batch invert the per-row denominators (α + vᵢ).
	denominators := make([]Felt, n)
	for i := uint(0); i < n; i++ {
		denominators[i] = alpha.Add(vColumn[i])
	}
	//
	field.BatchInvert(denominators)
	// Accumulate the running product.
	z := make([]Felt, length)
	z[0] = field.One[Felt]()
	//
	for i := uint(0); i+1 < length; i++ {
		if i < n {
			numerator := field.Pow(alpha.Add(vColumn[i]), hints.Multiplicities[i])
			z[i+1] = z[i].Mul(numerator).Mul(denominators[i])
		} else {
			// Padding rows do not participate in the argument.
			z[i+1] = z[i]
		}
	}
	//
	return [][]Felt{z}, nil
}
