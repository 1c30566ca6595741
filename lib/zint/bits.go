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

// Shift returns x shifted left by n bits when n >= 0, or right by -n bits
// when n < 0. The sign of x is preserved; right shifts truncate toward
// zero on the magnitude.
func (x *Int) Shift(n int64) *Int {
	if x.IsZero() || n == 0 {
		return x
	}
	if n > 0 {
		return x.lsh(uint(n))
	}
	return x.rsh(uint(-n))
}

func (x *Int) lsh(n uint) *Int {
	words := int(n / baseB)
	bitsN := n % baseB
	dest := make([]uint32, len(x.v)+words+1)
	if bitsN == 0 {
		copy(dest[words:], x.v)
	} else {
		var carry uint32
		for i, w := range x.v {
			dest[words+i] = w<<bitsN | carry
			carry = uint32(uint64(w) >> (baseB - bitsN))
		}
		dest[words+len(x.v)] = carry
	}
	return mkint(dest, x.sign)
}

func (x *Int) rsh(n uint) *Int {
	words := int(n / baseB)
	bitsN := n % baseB
	if words >= len(x.v) {
		return Zero
	}
	src := x.v[words:]
	dest := make([]uint32, len(src))
	if bitsN == 0 {
		copy(dest, src)
	} else {
		for i := 0; i < len(src); i++ {
			w := src[i] >> bitsN
			if i+1 < len(src) {
				w |= src[i+1] << (baseB - bitsN)
			}
			dest[i] = w
		}
	}
	return mkint(dest, x.sign)
}

// And returns the bitwise and of abs(x) and abs(y); the result is
// positive, matching the original zand.
func (x *Int) And(y *Int) *Int {
	n := len(x.v)
	if len(y.v) < n {
		n = len(y.v)
	}
	dest := make([]uint32, n)
	for i := 0; i < n; i++ {
		dest[i] = x.v[i] & y.v[i]
	}
	return mkint(dest, false)
}

// Or returns the bitwise or of abs(x) and abs(y).
func (x *Int) Or(y *Int) *Int {
	if len(y.v) > len(x.v) {
		x, y = y, x
	}
	dest := make([]uint32, len(x.v))
	copy(dest, x.v)
	for i := 0; i < len(y.v); i++ {
		dest[i] |= y.v[i]
	}
	return mkint(dest, false)
}

// Xor returns the bitwise exclusive or of abs(x) and abs(y).
func (x *Int) Xor(y *Int) *Int {
	if len(y.v) > len(x.v) {
		x, y = y, x
	}
	dest := make([]uint32, len(x.v))
	copy(dest, x.v)
	for i := 0; i < len(y.v); i++ {
		dest[i] ^= y.v[i]
	}
	return mkint(dest, false)
}

// AndNot returns abs(x) with the bits of abs(y) cleared.
func (x *Int) AndNot(y *Int) *Int {
	dest := make([]uint32, len(x.v))
	copy(dest, x.v)
	n := len(y.v)
	if n > len(dest) {
		n = len(dest)
	}
	for i := 0; i < n; i++ {
		dest[i] &^= y.v[i]
	}
	return mkint(dest, false)
}
