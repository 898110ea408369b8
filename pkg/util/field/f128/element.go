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

// Package f128 implements the prime field of order 2^128 - 45*2^40 + 1 used
// as the base field for execution traces and for the sponge permutation.
// Elements are held in plain (non-Montgomery) form as two little-endian
// 64-bit limbs, and are always canonical (i.e. reduced modulo the order).
package f128

import (
	"encoding/binary"
	"hash/fnv"
	"math/big"
	"math/bits"
)

// Field modulus as 64-bit limbs, p = 2^128 - 45*2^40 + 1.
const (
	modulusLo uint64 = 0xffffd30000000001
	modulusHi uint64 = 0xffffffffffffffff
)

// epsilon = 2^128 - p = 45*2^40 - 1, used when folding wide products.
const epsilon uint64 = 0x2cffffffffff

// Exponent p-2, used to compute inverses.
const (
	pMinus2Lo uint64 = 0xffffd2ffffffffff
	pMinus2Hi uint64 = 0xffffffffffffffff
)

// Bytes gives the number of bytes needed to represent an element.
const Bytes = 16

var modulus = func() *big.Int {
	var bs [Bytes]byte
	//
	binary.BigEndian.PutUint64(bs[0:8], modulusHi)
	binary.BigEndian.PutUint64(bs[8:16], modulusLo)
	//
	return new(big.Int).SetBytes(bs[:])
}()

// Element represents a field value as two 64-bit limbs in little-endian
// order (i.e. index 0 holds the least significant limb).
type Element [2]uint64

// New constructs a canonical element from the given 128-bit value, reducing
// modulo the field order as necessary.
func New(lo, hi uint64) Element {
	return reduce128(lo, hi)
}

// FromUint128 constructs an element from the given 128-bit value, provided it
// is already canonical.  Returns false if the value is not below the field
// modulus.
func FromUint128(lo, hi uint64) (Element, bool) {
	if !lessThanModulus(lo, hi) {
		return Element{}, false
	}
	//
	return Element{lo, hi}, true
}

// FromLittleEndianBytes constructs an element from up to 16 bytes given in
// little endian order, reducing modulo the field order as necessary.
func FromLittleEndianBytes(bs []byte) Element {
	var padded [Bytes]byte
	//
	copy(padded[:], bs)
	//
	lo := binary.LittleEndian.Uint64(padded[0:8])
	hi := binary.LittleEndian.Uint64(padded[8:16])
	//
	return reduce128(lo, hi)
}

// SetUint64 implementation for the field.Element interface.
func (x Element) SetUint64(val uint64) Element {
	return Element{val, 0}
}

// SetBytes constructs an element from bytes given in big endian order,
// reducing modulo the field order as necessary.
func (x Element) SetBytes(bs []byte) Element {
	if len(bs) > Bytes {
		// Slow path for oversized inputs.
		val := new(big.Int).SetBytes(bs)
		val.Mod(val, modulus)
		//
		return x.SetBytes(val.Bytes())
	}
	//
	var padded [Bytes]byte
	//
	copy(padded[Bytes-len(bs):], bs)
	//
	hi := binary.BigEndian.Uint64(padded[0:8])
	lo := binary.BigEndian.Uint64(padded[8:16])
	//
	return reduce128(lo, hi)
}

// Bytes returns the big-endian encoded value of this element, always exactly
// 16 bytes.
func (x Element) Bytes() []byte {
	var bs [Bytes]byte
	//
	binary.BigEndian.PutUint64(bs[0:8], x[1])
	binary.BigEndian.PutUint64(bs[8:16], x[0])
	//
	return bs[:]
}

// LittleEndianBytes returns the little-endian encoded value of this element.
func (x Element) LittleEndianBytes() [Bytes]byte {
	var bs [Bytes]byte
	//
	binary.LittleEndian.PutUint64(bs[0:8], x[0])
	binary.LittleEndian.PutUint64(bs[8:16], x[1])
	//
	return bs
}

// Add x + y
func (x Element) Add(y Element) Element {
	lo, carry := bits.Add64(x[0], y[0], 0)
	hi, carry := bits.Add64(x[1], y[1], carry)
	// An overflow of 2^128 folds back as epsilon.
	if carry != 0 {
		lo, carry = bits.Add64(lo, epsilon, 0)
		hi += carry
	}
	//
	return reduce128(lo, hi)
}

// Sub x - y
func (x Element) Sub(y Element) Element {
	lo, borrow := bits.Sub64(x[0], y[0], 0)
	hi, borrow := bits.Sub64(x[1], y[1], borrow)
	// Underflow wraps around the modulus.
	if borrow != 0 {
		lo, borrow = bits.Add64(lo, modulusLo, 0)
		hi, _ = bits.Add64(hi, modulusHi, borrow)
	}
	//
	return Element{lo, hi}
}

// Mul x * y
func (x Element) Mul(y Element) Element {
	// Schoolbook 128x128 -> 256 bit multiplication.
	c1, z0 := bits.Mul64(x[0], y[0])
	t1, t0 := bits.Mul64(x[0], y[1])
	u1, u0 := bits.Mul64(x[1], y[0])
	v1, v0 := bits.Mul64(x[1], y[1])
	//
	z1, carry := bits.Add64(c1, t0, 0)
	z2, carry := bits.Add64(t1, v0, carry)
	z3 := v1 + carry
	//
	z1, carry = bits.Add64(z1, u0, 0)
	z2, carry = bits.Add64(z2, u1, carry)
	z3 += carry
	//
	return reduce256(z3, z2, z1, z0)
}

// Exp computes x to the power of the given 128-bit exponent.
func (x Element) Exp(expLo, expHi uint64) Element {
	result := Element{1, 0}
	//
	for i := 127; i >= 0; i-- {
		result = result.Mul(result)
		//
		var bit uint64
		if i >= 64 {
			bit = (expHi >> (i - 64)) & 1
		} else {
			bit = (expLo >> i) & 1
		}
		//
		if bit == 1 {
			result = result.Mul(x)
		}
	}
	//
	return result
}

// Inverse x⁻¹, or 0 if x = 0.
func (x Element) Inverse() Element {
	if x.IsZero() {
		return Element{}
	}
	// By Fermat's little theorem, x⁻¹ = x^(p-2).
	return x.Exp(pMinus2Lo, pMinus2Hi)
}

// Cmp returns 1 if x > y, 0 if x = y, and -1 if x < y.
func (x Element) Cmp(y Element) int {
	switch {
	case x[1] > y[1]:
		return 1
	case x[1] < y[1]:
		return -1
	case x[0] > y[0]:
		return 1
	case x[0] < y[0]:
		return -1
	}
	//
	return 0
}

// IsZero implementation for the field.Element interface.
func (x Element) IsZero() bool {
	return x[0] == 0 && x[1] == 0
}

// IsOne implementation for the field.Element interface.
func (x Element) IsOne() bool {
	return x[0] == 1 && x[1] == 0
}

// Equals implementation for the field.Element interface.
func (x Element) Equals(other Element) bool {
	return x == other
}

// Modulus returns the order of this field.
func (x Element) Modulus() *big.Int {
	return new(big.Int).Set(modulus)
}

// Hash implementation for the field.Element interface.
func (x Element) Hash() uint64 {
	hash := fnv.New64a()
	hash.Write(x.Bytes())
	// Done
	return hash.Sum64()
}

// Uint64 returns the numerical value of x, provided it fits in a uint64.
func (x Element) Uint64() (uint64, bool) {
	return x[0], x[1] == 0
}

func (x Element) String() string {
	return x.Text(10)
}

// Text returns the numerical value of x in the given base.
func (x Element) Text(base int) string {
	return new(big.Int).SetBytes(x.Bytes()).Text(base)
}

// lessThanModulus checks whether the given 128-bit value is canonical.
func lessThanModulus(lo, hi uint64) bool {
	return hi < modulusHi || (hi == modulusHi && lo < modulusLo)
}

// reduce128 reduces an arbitrary 128-bit value modulo p.  Since p > 2^127, a
// single conditional subtraction suffices.
func reduce128(lo, hi uint64) Element {
	if !lessThanModulus(lo, hi) {
		var borrow uint64
		//
		lo, borrow = bits.Sub64(lo, modulusLo, 0)
		hi, _ = bits.Sub64(hi, modulusHi, borrow)
	}
	//
	return Element{lo, hi}
}

// reduce256 reduces a 256-bit value (given as four 64-bit limbs, most
// significant first) modulo p, using 2^128 = epsilon (mod p) to fold the top
// half downwards.
func reduce256(z3, z2, z1, z0 uint64) Element {
	// Fold the top 128 bits: (z3,z2) * epsilon is at most 174 bits.
	t0hi, t0lo := bits.Mul64(z2, epsilon)
	t1hi, t1lo := bits.Mul64(z3, epsilon)
	//
	m1, carry := bits.Add64(t0hi, t1lo, 0)
	m2 := t1hi + carry
	//
	r0, carry := bits.Add64(z0, t0lo, 0)
	r1, carry := bits.Add64(z1, m1, carry)
	overflow := m2 + carry
	// Fold the (small) remaining overflow.
	o1, o0 := bits.Mul64(overflow, epsilon)
	//
	r0, carry = bits.Add64(r0, o0, 0)
	r1, carry = bits.Add64(r1, o1, carry)
	//
	if carry != 0 {
		// One final fold; cannot overflow again since r1 wrapped around.
		r0, carry = bits.Add64(r0, epsilon, 0)
		r1 += carry
	}
	//
	return reduce128(r0, r1)
}
