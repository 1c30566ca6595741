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

package zint

import (
	"math/bits"
)

// issqMod4k marks the quadratic residues modulo 4096. A value whose low
// twelve bits miss this table cannot be a perfect square.
var issqMod4k [4096]bool

func init() {
	for r := uint64(0); r < 4096; r++ {
		issqMod4k[r*r%4096] = true
	}
}

// Sqrt returns an integer within one of the square root of nonnegative
// z, rounded according to rnd: 0 rounds down, RoundUp up, RoundToParity
// to the parity of the RoundUp bit, RoundNearest to nearest. The second
// result is the sign of the exact square root minus the returned value,
// so 0 signals that z was a perfect square.
func (z *Int) Sqrt(rnd Round) (*Int, int, error) {
	if z.IsNeg() {
		return nil, 0, ErrNegSqrt
	}
	if z.IsZero() {
		return Zero, 0, nil
	}
	s := z.floorSqrt()
	rem := z.Sub(s.Square())
	if rem.IsZero() {
		return s, 0, nil
	}
	var up bool
	switch {
	case rnd&RoundNearest != 0:
		// (s+1/2)^2 = s^2 + s + 1/4, so z is nearer s+1 exactly
		// when the remainder exceeds s. No ties are possible.
		up = rem.Cmp(s) > 0
	case rnd&RoundToParity != 0:
		up = (uint32(rnd)^s.v[0])&1 != 0
	default:
		up = rnd&RoundUp != 0
	}
	if up {
		return s.Add(One), -1, nil
	}
	return s, 1, nil
}

// floorSqrt computes the integer square root of positive z by Newton
// iteration two bits of seed at a time.
func (z *Int) floorSqrt() *Int {
	if !z.Ge64b() {
		return NewUint(usqrt(z.Uint64()))
	}
	// Initial estimate: 2^ceil(bitlen/2) >= sqrt(z).
	x, _ := BitValue((z.HighBit() + 2) / 2)
	for {
		q, _, _, _ := z.QuoRem(x, 0)
		y := x.Add(q).Shift(-1)
		if y.Cmp(x) >= 0 {
			return x
		}
		x = y
	}
}

// usqrt is the integer square root of a 64-bit value.
func usqrt(v uint64) uint64 {
	if v == 0 {
		return 0
	}
	x := uint64(1) << ((uint(bits.Len64(v))+1)/2 + 1)
	for {
		y := (x + v/x) >> 1
		if y >= x {
			return x
		}
		x = y
	}
}

// Root returns the k-th root of z truncated toward zero: the greatest
// integer not exceeding the k-th root of abs(z), carrying the sign of z.
// It uses the iteration x = ((k-1)*x + z/x^(k-1)) / k.
func (z *Int) Root(k *Int) (*Int, error) {
	neg := z.IsNeg()
	if neg && k.IsEven() {
		return nil, ErrNegRoot
	}
	if k.IsZero() || k.IsNeg() {
		return nil, ErrBadRoot
	}
	if z.IsZero() {
		return Zero, nil
	}
	if k.IsUnit() {
		return z, nil
	}
	if k.Ge31b() {
		return One.CopySign(neg), nil
	}
	kk := k.Int64()
	highbit := z.HighBit()
	if highbit < kk {
		return One.CopySign(neg), nil
	}
	k1 := NewInt(kk - 1)
	az := z.Abs()

	try, _ := BitValue((highbit + kk - 1) / kk)
	old := Zero
	for {
		t, err := try.Pow(k1)
		if err != nil {
			return nil, err
		}
		quo, _, err := az.Quo(t, 0)
		if err != nil {
			return nil, err
		}
		c := try.Cmp(quo)
		if c <= 0 {
			if c == 0 || old.Eq(try) {
				return try.CopySign(neg), nil
			}
			old = try
		}
		sum := quo.Add(try.Mul(k1))
		try, _, err = sum.Quo(k, 0)
		if err != nil {
			return nil, err
		}
	}
}

// IsSquare reports whether nonnegative z is a perfect square. A 4096
// entry residue table rejects most values before the full root test.
func (z *Int) IsSquare() bool {
	if z.IsNeg() {
		return false
	}
	v := z.v
	for len(v) > 1 && v[0] == 0 {
		v = v[1:]
	}
	t := &Int{v: v}
	if len(v) == 1 && v[0] <= 1 {
		return true
	}
	if !issqMod4k[v[0]&0xfff] {
		return false
	}
	_, flag, _ := t.Sqrt(0)
	return flag == 0
}
