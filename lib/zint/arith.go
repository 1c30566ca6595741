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

// Add returns x + y.
func (x *Int) Add(y *Int) *Int {
	if x.sign && !y.sign {
		return y.subAbsSigned(x.Abs())
	}
	if y.sign && !x.sign {
		return x.subAbsSigned(y.Abs())
	}
	// Same signs: add magnitudes, keep the sign.
	if len(y.v) > len(x.v) {
		x, y = y, x
	}
	dest := make([]uint32, len(x.v)+1)
	var carry uint64
	for i := 0; i < len(y.v); i++ {
		s := uint64(x.v[i]) + uint64(y.v[i]) + carry
		dest[i] = uint32(s)
		carry = s >> baseB
	}
	for i := len(y.v); i < len(x.v); i++ {
		s := uint64(x.v[i]) + carry
		dest[i] = uint32(s)
		carry = s >> baseB
	}
	dest[len(x.v)] = uint32(carry)
	return mkint(dest, x.sign)
}

// Sub returns x - y.
func (x *Int) Sub(y *Int) *Int {
	if x.sign != y.sign {
		return x.Add(y.Neg())
	}
	return x.subAbsSigned(y)
}

// subAbsSigned computes x - y where x and y carry the same sign flag.
func (x *Int) subAbsSigned(y *Int) *Int {
	c := cmpAbs(x.v, y.v)
	if c == 0 {
		return Zero
	}
	neg := x.sign
	a, b := x.v, y.v
	if c < 0 {
		a, b = b, a
		neg = !neg
	}
	dest := make([]uint32, len(a))
	var borrow uint64
	for i := 0; i < len(b); i++ {
		d := uint64(a[i]) - uint64(b[i]) - borrow
		dest[i] = uint32(d)
		borrow = d >> baseB & 1
	}
	for i := len(b); i < len(a); i++ {
		d := uint64(a[i]) - borrow
		dest[i] = uint32(d)
		borrow = d >> baseB & 1
	}
	return mkint(dest, neg)
}

// AddInt returns x + n for a small signed value.
func (x *Int) AddInt(n int64) *Int {
	return x.Add(NewInt(n))
}

// MulInt returns x * n for a small signed value.
func (x *Int) MulInt(n int64) *Int {
	if n == 0 || x.IsZero() {
		return Zero
	}
	neg := x.sign
	if n < 0 {
		neg = !neg
		n = -n
	}
	if n == 1 {
		return x.CopySign(neg)
	}
	lo := uint64(n) & base1
	hi := uint64(n) >> baseB
	dest := make([]uint32, len(x.v)+2)
	var carry uint64
	for i, w := range x.v {
		s := uint64(w)*lo + carry
		dest[i] = uint32(s)
		carry = s >> baseB
	}
	dest[len(x.v)] = uint32(carry)
	if hi != 0 {
		carry = 0
		for i, w := range x.v {
			s := uint64(w)*hi + uint64(dest[i+1]) + carry
			dest[i+1] = uint32(s)
			carry = s >> baseB
		}
		dest[len(x.v)+1] = uint32(carry)
	}
	return mkint(dest, neg)
}

// DivInt returns the quotient and remainder of abs(x) / n for a small
// positive value, with the quotient carrying the sign of x. A nonzero
// remainder is only meaningful when both operands are positive, as with
// the original zdivi.
func (x *Int) DivInt(n int64) (*Int, int64, error) {
	if n == 0 {
		return nil, 0, ErrDivByZero
	}
	neg := x.sign
	if n < 0 {
		neg = !neg
		n = -n
	}
	if x.IsZero() {
		return Zero, 0, nil
	}
	d := uint64(n)
	dest := make([]uint32, len(x.v))
	var rem uint64
	if d>>baseB == 0 {
		for i := len(x.v) - 1; i >= 0; i-- {
			cur := rem<<baseB | uint64(x.v[i])
			dest[i] = uint32(cur / d)
			rem = cur % d
		}
	} else {
		// Two-limb divisor: go through the general divide.
		q, r, _, err := x.Abs().QuoRem(NewInt(n).Abs(), 0)
		if err != nil {
			return nil, 0, err
		}
		return q.CopySign(neg), r.Int64(), nil
	}
	return mkint(dest, neg), int64(rem), nil
}

// ModInt returns abs(x) mod n for a small positive n.
func (x *Int) ModInt(n int64) (int64, error) {
	_, r, err := x.Abs().DivInt(n)
	return r, err
}
