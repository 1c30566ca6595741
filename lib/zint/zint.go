// Copyright 2025 The Ratcore Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// ----------------

// Package zint implements extended precision integer arithmetic on base
// 2^32 limbs.
//
// An Int is a little-endian limb array plus a sign. The representation is
// always trimmed: the high limb is nonzero unless the value is zero, and
// zero is uniquely (len 1, limb 0, positive). Int values are immutable
// once returned; operations allocate their results. Small values and a
// handful of frequently used constants are shared, which is safe only
// because of that immutability convention.
//
// The multiply, square and divide crossover points between the schoolbook
// and sub-quadratic algorithms come from the mathconf package. The
// package is single-threaded by contract: the Karatsuba scratch buffers
// and the lazily grown power-of-ten table are process-wide state.
package zint

import (
	"errors"
	"math/bits"
)

const (
	// baseB is the number of bits in a limb.
	baseB = 32
	// base is the limb radix as a 64-bit value.
	base = uint64(1) << baseB
	// base1 is base - 1, the largest limb value.
	base1 = base - 1
)

var (
	ErrDivByZero  = errors.New("zint: division by zero")
	ErrNegSqrt    = errors.New("zint: square root of negative number")
	ErrNegRoot    = errors.New("zint: even root of negative number")
	ErrBadRoot    = errors.New("zint: non-positive root")
	ErrNegFact    = errors.New("zint: negative argument for factorial")
	ErrHugeArg    = errors.New("zint: argument exceeds internal 31-bit limit")
	ErrZeroLog    = errors.New("zint: logarithm of zero or too small base")
	ErrBadModulus = errors.New("zint: non-positive modulus")
	ErrNegPower   = errors.New("zint: negative power")
	ErrNotCoprime = errors.New("zint: values are not relatively prime")
	ErrBadRound   = errors.New("zint: invalid rounding mode bits")
)

// Int is a multi-precision integer.
type Int struct {
	v    []uint32 // little-endian limbs, len >= 1, high limb nonzero unless zero
	sign bool     // true when the value is negative; zero is never negative
}

// Shared constants. These are immutable by convention; never write to
// their limb slices.
var (
	zeroVal = []uint32{0}
	oneVal  = []uint32{1}

	Zero = &Int{v: zeroVal}
	One  = &Int{v: oneVal}
	Two  = &Int{v: []uint32{2}}
	Ten  = &Int{v: []uint32{10}}

	// NegOne is -1, used by sign flips and Jacobi results.
	NegOne = &Int{v: oneVal, sign: true}

	// SqBase is 2^64, the square of the limb base.
	SqBase = &Int{v: []uint32{0, 0, 1}}

	// Pow4Base is 2^128.
	Pow4Base = &Int{v: []uint32{0, 0, 0, 0, 1}}

	// small[i] is the value i for 0 <= i <= 20.
	small = [21]*Int{
		Zero, One, Two,
		{v: []uint32{3}}, {v: []uint32{4}}, {v: []uint32{5}},
		{v: []uint32{6}}, {v: []uint32{7}}, {v: []uint32{8}},
		{v: []uint32{9}}, Ten, {v: []uint32{11}},
		{v: []uint32{12}}, {v: []uint32{13}}, {v: []uint32{14}},
		{v: []uint32{15}}, {v: []uint32{16}}, {v: []uint32{17}},
		{v: []uint32{18}}, {v: []uint32{19}}, {v: []uint32{20}},
	}
)

// mkint wraps a limb slice and sign in an Int, trimming high zero limbs.
func mkint(v []uint32, sign bool) *Int {
	n := len(v)
	for n > 1 && v[n-1] == 0 {
		n--
	}
	v = v[:n]
	if n == 1 && v[0] == 0 {
		return Zero
	}
	return &Int{v: v, sign: sign}
}

// trim drops high zero limbs from v, keeping at least one limb.
func trim(v []uint32) []uint32 {
	n := len(v)
	for n > 1 && v[n-1] == 0 {
		n--
	}
	return v[:n]
}

// NewInt returns the Int for a signed 64-bit value.
func NewInt(i int64) *Int {
	if i >= 0 && i <= 20 {
		return small[i]
	}
	neg := i < 0
	u := uint64(i)
	if neg {
		u = -u
	}
	return newAbs(u, neg)
}

// NewUint returns the Int for an unsigned 64-bit value.
func NewUint(u uint64) *Int {
	if u <= 20 {
		return small[u]
	}
	return newAbs(u, false)
}

func newAbs(u uint64, neg bool) *Int {
	if u>>baseB == 0 {
		return &Int{v: []uint32{uint32(u)}, sign: neg}
	}
	return &Int{v: []uint32{uint32(u), uint32(u >> baseB)}, sign: neg}
}

// FromLimbs builds a nonnegative Int from little-endian limbs. The Int
// takes ownership of the slice.
func FromLimbs(v []uint32) *Int {
	if len(v) == 0 {
		return Zero
	}
	return mkint(v, false)
}

// FromUint64Chunks builds a nonnegative Int from little-endian 64-bit
// chunks.
func FromUint64Chunks(c []uint64) *Int {
	v := make([]uint32, 2*len(c))
	for i, w := range c {
		v[2*i] = uint32(w)
		v[2*i+1] = uint32(w >> baseB)
	}
	return FromLimbs(v)
}

// Limbs returns the little-endian limbs of abs(x). The slice is shared
// with x and must not be modified.
func (x *Int) Limbs() []uint32 { return x.v }

// Int64 returns the low 63 bits of x with x's sign. Higher order bits of
// very large values are discarded, as with the original ztoi.
func (x *Int) Int64() int64 {
	u := x.Uint64() & (1<<63 - 1)
	if x.sign {
		return -int64(u)
	}
	return int64(u)
}

// Uint64 returns the low 64 bits of the absolute value of x.
func (x *Int) Uint64() uint64 {
	u := uint64(x.v[0])
	if len(x.v) > 1 {
		u |= uint64(x.v[1]) << baseB
	}
	return u
}

// FitsUint64 reports whether abs(x) < 2^64.
func (x *Int) FitsUint64() bool { return len(x.v) <= 2 }

// FitsInt64 reports whether abs(x) <= math.MaxInt64.
func (x *Int) FitsInt64() bool {
	return len(x.v) < 2 || (len(x.v) == 2 && x.v[1] < 1<<31)
}

// IsZero reports whether x == 0.
func (x *Int) IsZero() bool { return len(x.v) == 1 && x.v[0] == 0 }

// IsUnit reports whether abs(x) == 1.
func (x *Int) IsUnit() bool { return len(x.v) == 1 && x.v[0] == 1 }

// IsOne reports whether x == 1.
func (x *Int) IsOne() bool { return x.IsUnit() && !x.sign }

// IsNegOne reports whether x == -1.
func (x *Int) IsNegOne() bool { return x.IsUnit() && x.sign }

// IsTwo reports whether x == 2.
func (x *Int) IsTwo() bool { return len(x.v) == 1 && x.v[0] == 2 && !x.sign }

// IsEven reports whether x is even.
func (x *Int) IsEven() bool { return x.v[0]&1 == 0 }

// IsOdd reports whether x is odd.
func (x *Int) IsOdd() bool { return x.v[0]&1 == 1 }

// IsNeg reports whether x < 0.
func (x *Int) IsNeg() bool { return x.sign }

// IsPos reports whether x > 0.
func (x *Int) IsPos() bool { return !x.sign && !x.IsZero() }

// IsTiny reports whether abs(x) fits in a single limb.
func (x *Int) IsTiny() bool { return len(x.v) == 1 }

// Ge32b reports whether abs(x) >= 2^32.
func (x *Int) Ge32b() bool { return len(x.v) > 1 }

// Ge31b reports whether abs(x) >= 2^31. Arguments at or beyond this size
// exceed the internal limit for exponents, shifts and table sizes.
func (x *Int) Ge31b() bool {
	return len(x.v) > 1 || int32(x.v[0]) < 0
}

// Ge16b reports whether abs(x) >= 2^16.
func (x *Int) Ge16b() bool { return len(x.v) > 1 || x.v[0] >= 1<<16 }

// Ge64b reports whether abs(x) >= 2^64.
func (x *Int) Ge64b() bool { return len(x.v) > 2 }

// Ge8192b reports whether abs(x) >= 2^8192.
func (x *Int) Ge8192b() bool { return len(x.v) > 256 }

// Len returns the number of limbs in x.
func (x *Int) Len() int { return len(x.v) }

// Sign returns -1, 0 or +1 according to the sign of x.
func (x *Int) Sign() int {
	if x.IsZero() {
		return 0
	}
	if x.sign {
		return -1
	}
	return 1
}

// Neg returns -x.
func (x *Int) Neg() *Int {
	if x.IsZero() {
		return Zero
	}
	return &Int{v: x.v, sign: !x.sign}
}

// Abs returns the absolute value of x.
func (x *Int) Abs() *Int {
	if !x.sign {
		return x
	}
	return &Int{v: x.v}
}

// CopySign returns abs(x) with the given sign flag.
func (x *Int) CopySign(neg bool) *Int {
	if x.IsZero() || x.sign == neg {
		return x
	}
	return &Int{v: x.v, sign: neg}
}

// Cmp compares x and y, returning -1, 0 or +1.
func (x *Int) Cmp(y *Int) int {
	if x.sign != y.sign {
		if x.sign {
			return -1
		}
		return 1
	}
	c := cmpAbs(x.v, y.v)
	if x.sign {
		return -c
	}
	return c
}

// CmpAbs compares the absolute values of x and y.
func (x *Int) CmpAbs(y *Int) int { return cmpAbs(x.v, y.v) }

// Eq reports whether x == y.
func (x *Int) Eq(y *Int) bool {
	if x == y {
		return true
	}
	if x.sign != y.sign || len(x.v) != len(y.v) || x.v[0] != y.v[0] {
		return false
	}
	return cmpAbs(x.v, y.v) == 0
}

func cmpAbs(a, b []uint32) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// BitValue returns 2^n for n >= 0.
func BitValue(n int64) (*Int, error) {
	if n < 0 || n >= 1<<31 {
		return nil, ErrHugeArg
	}
	v := make([]uint32, n/baseB+1)
	v[len(v)-1] = 1 << uint(n%baseB)
	return &Int{v: v}, nil
}

// HighBit returns the index of the most significant one bit of abs(x),
// counting from zero. HighBit of zero is -1.
func (x *Int) HighBit() int64 {
	top := x.v[len(x.v)-1]
	return int64(len(x.v)-1)*baseB + int64(bits.Len32(top)) - 1
}

// LowBit returns the index of the least significant one bit of abs(x).
// LowBit of zero is 0.
func (x *Int) LowBit() int64 {
	for i, w := range x.v {
		if w != 0 {
			return int64(i)*baseB + int64(bits.TrailingZeros32(w))
		}
	}
	return 0
}

// Bit reports whether bit n of abs(x) is set.
func (x *Int) Bit(n int64) bool {
	if n < 0 {
		return false
	}
	i := n / baseB
	if i >= int64(len(x.v)) {
		return false
	}
	return x.v[i]>>(uint(n)%baseB)&1 == 1
}

// IsOneBit reports whether abs(x) is a power of two.
func (x *Int) IsOneBit() bool {
	for i := 0; i < len(x.v)-1; i++ {
		if x.v[i] != 0 {
			return false
		}
	}
	top := x.v[len(x.v)-1]
	return top != 0 && top&(top-1) == 0
}

// IsAllBits reports whether abs(x) is one less than a power of two.
func (x *Int) IsAllBits() bool {
	for i := 0; i < len(x.v)-1; i++ {
		if x.v[i] != uint32(base1) {
			return false
		}
	}
	top := uint64(x.v[len(x.v)-1])
	return top != 0 && top&(top+1) == 0
}

// IsPowerOfTwo reports whether x is a positive power of two, and if so
// returns its exponent.
func (x *Int) IsPowerOfTwo() (int64, bool) {
	if x.sign || x.IsZero() || !x.IsOneBit() {
		return 0, false
	}
	return x.HighBit(), true
}

// PopCount returns the number of bits of abs(x) equal to bitval (0 or 1).
// Counting zero bits only considers bits below the highest one bit, as
// with the original zpopcnt.
func (x *Int) PopCount(bitval int) int64 {
	var n int64
	if bitval != 0 {
		for _, w := range x.v {
			n += int64(bits.OnesCount32(w))
		}
		return n
	}
	// Zero bits count only within the value's bit-length.
	h := x.HighBit()
	for i, w := range x.v {
		if int64(i+1)*baseB <= h {
			n += int64(baseB - bits.OnesCount32(w))
		} else {
			rem := uint(h - int64(i)*baseB)
			n += int64(rem) - int64(bits.OnesCount32(w&(1<<rem-1)))
			break
		}
	}
	return n
}
