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
)

func TestFragmentPushColumnSlice(t *testing.T) {
	var (
		fragment = NewFragment(2)
		col      = make([]Felt, 8)
	)
	// Split the column between the fragment and a remainder.
	rest := fragment.PushColumnSlice(col, 6)
	//
	assert.Equal(t, uint(1), fragment.Width())
	assert.Equal(t, uint(6), fragment.Len())
	assert.Equal(t, 2, len(rest))
}

func TestFragmentSetWritesThrough(t *testing.T) {
	var (
		fragment = NewFragment(1)
		col      = make([]Felt, 4)
	)
	//
	fragment.PushColumnSlice(col, 4)
	fragment.Set(2, 0, field.Uint64[Felt](42))
	// Fragments are views, not copies.
	assert.True(t, col[2].Equals(field.Uint64[Felt](42)))
	assert.True(t, fragment.Column(0)[2].Equals(field.Uint64[Felt](42)))
}
