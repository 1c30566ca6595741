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

// Pow returns x raised to the nonnegative power e, left-to-right binary
// with a one-time extraction of the factors of two in x.
func (x *Int) Pow(e *Int) (*Int, error) {
	if e.IsNeg() {
		return nil, ErrNegPower
	}
	neg := x.sign && e.IsOdd()
	a := x.Abs()
	if e.IsZero() && !a.IsZero() {
		return One, nil
	}
	if len(a.v) == 1 && a.v[0] <= 1 {
		// 0, 1 or -1 raised to any power; zero wins over a zero
		// exponent here, as with the integer layer of the original.
		if a.IsZero() {
			return Zero, nil
		}
		return One.CopySign(neg), nil
	}
	if e.Ge31b() {
		return nil, ErrHugeArg
	}
	power := e.Int64()
	if a.IsTwo() {
		r, err := BitValue(power)
		if err != nil {
			return nil, err
		}
		return r.CopySign(neg), nil
	}
	if a.IsTiny() && a.v[0] == 10 {
		r, err := TenPow(power)
		if err != nil {
			return nil, err
		}
		return r.CopySign(neg), nil
	}
	switch power {
	case 1:
		return x, nil
	case 2:
		return a.Square(), nil
	case 3:
		return a.Square().Mul(a).CopySign(neg), nil
	case 4:
		return a.Square().Square(), nil
	}

	// Shift out powers of two so the multiplies stay small; the shift
	// is restored, multiplied by the exponent, at the end.
	var twos int64
	if a.IsEven() {
		twos = a.LowBit()
		a = a.Shift(-twos)
		twos *= power
	}
	bit := int64(1) << uint(bits.Len64(uint64(power))-1)
	bit >>= 1
	ans := a.Square()
	if bit&power != 0 {
		ans = ans.Mul(a)
	}
	for bit >>= 1; bit != 0; bit >>= 1 {
		ans = ans.Square()
		if bit&power != 0 {
			ans = ans.Mul(a)
		}
	}
	if twos != 0 {
		ans = ans.Shift(twos)
	}
	return ans.CopySign(neg), nil
}

// tenPowers caches 10^2^i; entry 0 is seeded with ten on first use.
var tenPowers [50]*Int

// TenPow returns 10^power for power >= 0, reusing the shared table of
// repeated squares.
func TenPow(power int64) (*Int, error) {
	if power <= 0 {
		return One, nil
	}
	ans := One
	if tenPowers[0] == nil {
		tenPowers[0] = Ten
	}
	for i := 0; power != 0; i++ {
		if i >= len(tenPowers) {
			return nil, ErrHugeArg
		}
		if tenPowers[i] == nil {
			tenPowers[i] = tenPowers[i-1].Square()
		}
		if power&1 != 0 {
			ans = ans.Mul(tenPowers[i])
		}
		power >>= 1
	}
	return ans, nil
}

// TenPow2 returns 10^2^i from the shared table, growing it as needed.
// Log10 walks this table when bracketing large values.
func TenPow2(i int) (*Int, error) {
	if i < 0 || i >= len(tenPowers) {
		return nil, ErrHugeArg
	}
	if tenPowers[0] == nil {
		tenPowers[0] = Ten
	}
	for k := 1; k <= i; k++ {
		if tenPowers[k] == nil {
			tenPowers[k] = tenPowers[k-1].Square()
		}
	}
	return tenPowers[i], nil
}
