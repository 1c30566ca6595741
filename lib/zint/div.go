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

// Round selects the rounding behavior of QuoRem and the other rounding
// operations. It is a small bitmask; the bits compose:
//
//	RoundUp          round the quotient away from the default direction
//	RoundQuotSign    flip direction by the sign of the exact quotient
//	RoundDivisorSign flip direction by the sign of the divisor
//	RoundToParity    round so the quotient's low bit equals the RoundUp bit
//	RoundNearest     round to nearest, ties broken by the preceding bits
//	RoundSigFigs     interpreted by the rational layer: places count
//	                 significant digits rather than fractional digits
//	RoundNegate      interpreted by the rational square root: negate result
//
// RoundHalfEven (nearest, ties to even) is the conventional default for
// output conversion and the transcendental guard-bit discard.
type Round int64

const (
	RoundUp Round = 1 << iota
	RoundQuotSign
	RoundDivisorSign
	RoundToParity
	RoundNearest
	RoundSigFigs
	RoundNegate

	RoundHalfEven = RoundNearest | RoundToParity
	roundAllBits  = RoundUp | RoundQuotSign | RoundDivisorSign |
		RoundToParity | RoundNearest | RoundSigFigs | RoundNegate
)

// Valid reports whether only defined rounding bits are set.
func (r Round) Valid() bool { return r&^roundAllBits == 0 }

const topHalf = uint64(1) << (baseB - 1)

// QuoRem divides x by y under the rounding mask rnd, returning quotient
// and remainder with x == quo*y + rem, and the sign (-1, 0, +1) of the
// remainder.
func (x *Int) QuoRem(y *Int, rnd Round) (*Int, *Int, int, error) {
	if y.IsZero() {
		return nil, nil, 0, ErrDivByZero
	}
	if !rnd.Valid() {
		return nil, nil, 0, ErrBadRound
	}
	m := len(x.v)
	n := len(y.v)
	B := y.v

	var A []uint32
	var qoff, qlen int // quotient digits at A[qoff : qoff+qlen]
	var s uint32       // nonzero while the running remainder is negative

	if m < n {
		A = make([]uint32, n+2)
		copy(A, x.v)
		qoff, qlen = n, 1
	} else {
		A = make([]uint32, m+3)
		copy(A, x.v)
		qoff = n
		qlen = m - n + 1
		b0 := 0
		p := n
		for B[b0] == 0 {
			b0++
			p--
		}
		if p == 1 {
			u := B[b0]
			if u == 1 {
				for ; m >= n; m-- {
					A[m] = A[m-1]
				}
				A[m] = 0
				m = n - 1
			} else {
				var f uint64
				for i, a := qlen, m; i > 0; i-- {
					a--
					f = f<<baseB | uint64(A[a])
					A[a+1] = uint32(f / uint64(u))
					f %= uint64(u)
				}
				A[n-1] = uint32(f)
				m = n
			}
		} else {
			f := uint64(B[n-1])
			k := uint(1)
			for f >>= 1; f != 0; f >>= 1 {
				k++
			}
			j1 := baseB - k
			j2 := baseB + j1
			var h uint64
			if j1 != 0 {
				h = uint64(B[n-1])<<j1 | uint64(B[n-2])>>k
			} else {
				h = uint64(B[n-1])
			}
			onebit := B[n-2]>>(k-1)&1 != 0
			m++
			for m > n {
				m--
				f = uint64(A[m])<<j2 | uint64(A[m-1])<<j1
				if j1 != 0 {
					f |= uint64(A[m-2]) >> k
				}
				if s != 0 {
					f = ^f
				}
				xq := f / h
				if xq != 0 {
					if onebit && xq > topHalf+f%h {
						xq--
					}
					ai := m - p
					var u uint32
					if s != 0 {
						for i := 0; i < p; i++ {
							t := uint64(A[ai]) + uint64(u) + xq*uint64(B[b0+i])
							A[ai] = uint32(t)
							u = uint32(t >> baseB)
							ai++
						}
						s = A[ai] + u
						A[m] = uint32(^xq) + b2u(s == 0)
					} else {
						for i := 0; i < p; i++ {
							t := uint64(A[ai]) - uint64(u) - xq*uint64(B[b0+i])
							A[ai] = uint32(t)
							u = -uint32(t >> baseB)
							ai++
						}
						s = A[ai] - u
						A[m] = uint32(xq) + s
					}
				} else {
					A[m] = s
				}
			}
		}
	}

	for m > 0 && A[m-1] == 0 {
		m--
	}
	negQuo := x.sign != y.sign
	if m == 0 && s == 0 {
		// Exact division.
		if A[qoff+qlen-1] == 0 {
			qlen--
		}
		var quo *Int
		if qlen == 0 {
			quo = Zero
		} else {
			quo = mkint(clone(A[qoff:qoff+qlen]), negQuo)
		}
		return quo, Zero, 0, nil
	}

	var adjust bool
	if rnd&RoundToParity != 0 {
		adjust = (A[qoff]^uint32(rnd))&1 != 0
	} else {
		adjust = (uint32(rnd)&1 != 0) != negQuo
	}
	if rnd&RoundQuotSign != 0 {
		adjust = adjust != negQuo
	}
	if rnd&RoundDivisorSign != 0 {
		adjust = adjust != y.sign
	}
	if rnd&RoundNearest != 0 {
		// Compare twice the remainder against the divisor by walking
		// both limb arrays down from the top with a half-limb lag.
		ai, bi := n, n
		i := n + 1
		var f, g uint64
		t := -1
		if s != 0 {
			for i--; i > 0; i-- {
				ai--
				bi--
				g = uint64(A[ai]) + (uint64(B[bi]>>1) | f)
				if B[bi]&1 != 0 {
					f = topHalf
				} else {
					f = 0
				}
				if g != base1 {
					break
				}
			}
			if g == base && f == 0 {
				for i--; i > 0; i-- {
					ai--
					bi--
					if A[ai]|B[bi] != 0 {
						break
					}
				}
				t = b2i(i > 0)
			} else if g >= base {
				t = 1
			}
		} else {
			for i--; i > 0; i-- {
				ai--
				bi--
				g = uint64(A[ai]) - (uint64(B[bi]>>1) | f)
				if B[bi]&1 != 0 {
					f = topHalf
				} else {
					f = 0
				}
				if g != 0 {
					break
				}
			}
			if g > 0 && g < base {
				t = 1
			} else if g == 0 && f == 0 {
				t = 0
			}
		}
		if t != 0 {
			adjust = t > 0
		}
	}
	if adjust {
		i, a := qlen, qoff
		for i > 0 && A[a] == uint32(base1) {
			i--
			A[a] = 0
			a++
		}
		A[a]++
		if i == 0 {
			qlen++
		}
	}
	switch {
	case s != 0 && adjust:
		// Negative running remainder, quotient bumped: negate A.
		i := 0
		for A[i] == 0 {
			i++
		}
		A[i] = -A[i]
		for i++; i < n; i++ {
			A[i] = ^A[i]
		}
		m = n
	case s == 0 && adjust:
		// rem = y - rem.
		var u uint32
		for i := 0; i < n; i++ {
			f := uint64(B[i]) - uint64(A[i]) - uint64(u)
			A[i] = uint32(f)
			u = -uint32(f >> baseB)
		}
		m = n
	case s != 0 && !adjust:
		// rem = y + rem (remainder was negative).
		var f uint64
		for i := 0; i < n; i++ {
			f = uint64(B[i]) + uint64(A[i]) + f>>baseB
			A[i] = uint32(f)
		}
		m = n
	}
	for m > 0 && A[m-1] == 0 {
		m--
	}
	rem := mkint(clone(A[:m]), x.sign != adjust)
	remSign := 1
	if rem.sign {
		remSign = -1
	}
	if A[qoff+qlen-1] == 0 {
		qlen--
	}
	var quo *Int
	if qlen == 0 {
		quo = Zero
	} else {
		quo = mkint(clone(A[qoff:qoff+qlen]), negQuo)
	}
	return quo, rem, remSign, nil
}

func clone(v []uint32) []uint32 {
	w := make([]uint32, len(v))
	copy(w, v)
	return w
}

func b2u(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Quo returns the rounded quotient of x / y, plus the sign of the exact
// quotient minus the computed quotient.
func (x *Int) Quo(y *Int, rnd Round) (*Int, int, error) {
	q, _, rs, err := x.QuoRem(y, rnd)
	if err != nil {
		return nil, 0, err
	}
	if y.sign {
		rs = -rs
	}
	return q, rs, err
}

// Mod returns the rounded remainder of x / y, plus its sign.
func (x *Int) Mod(y *Int, rnd Round) (*Int, int, error) {
	_, r, rs, err := x.QuoRem(y, rnd)
	return r, rs, err
}

// Divides reports whether x evenly divides y.
func (x *Int) Divides(y *Int) bool {
	if x.IsZero() {
		return y.IsZero()
	}
	if x.IsUnit() {
		return true
	}
	if y.IsZero() {
		return true
	}
	if len(x.v) > len(y.v) {
		return false
	}
	if x.IsTwo() {
		return y.IsEven()
	}
	_, r, _, err := y.QuoRem(x, 0)
	return err == nil && r.IsZero()
}

// Equo computes x / y assuming the division is exact. There is no
// thorough check on the exactness; results are undefined when y does not
// divide x. It uses a left-to-right schoolbook pass driven by the inverse
// of the divisor's low limb modulo the base.
func (x *Int) Equo(y *Int) (*Int, error) {
	if x.IsZero() {
		return Zero, nil
	}
	if y.IsZero() {
		return nil, ErrDivByZero
	}
	if y.IsUnit() {
		return x.CopySign(x.sign != y.sign), nil
	}
	if x.HighBit() < y.HighBit() {
		return nil, ErrDivByZero
	}
	B := y.v
	o := 0
	for B[o] == 0 {
		o++
	}
	B = B[o:]
	m := len(x.v) - o
	n := len(y.v) - o
	qlen := m - n + 1
	v := B[0]
	A := make([]uint32, qlen+1)
	copy(A, x.v[o:o+qlen])
	if n == 1 {
		if v > 1 {
			var f uint64
			for i := qlen - 1; i >= 0; i-- {
				f = f<<baseB | uint64(A[i])
				A[i] = uint32(f / uint64(v))
				f %= uint64(v)
			}
		}
	} else {
		k := uint(0)
		for v&1 == 0 {
			k++
			v >>= 1
		}
		j := baseB - k
		if k > 0 {
			v |= B[1] << j
		}
		// w = inverse of v modulo the base.
		u := v - 1
		w, xb := uint32(1), uint32(1)
		for u != 0 {
			for {
				v <<= 1
				xb <<= 1
				if u&xb != 0 {
					break
				}
			}
			u += v
			w |= xb
		}
		a0 := 0
		p := qlen
		for p > 1 {
			if A[a0] == 0 {
				for A[a0+1] == 0 && p > 1 {
					a0++
					p--
				}
			}
			if p == 1 {
				break
			}
			var xd uint32
			if k != 0 {
				xd = w * (A[a0]>>k | A[a0+1]<<j)
			} else {
				xd = w * A[a0]
			}
			if xd != 0 {
				g := uint64(xd)
				var u32 uint32
				i := n
				if i > p {
					i = p
				}
				ai := a0
				for bi := 0; bi < i; bi++ {
					f := uint64(A[ai]) - g*uint64(B[bi]) - uint64(u32)
					A[ai] = uint32(f)
					u32 = -uint32(f >> baseB)
					ai++
				}
				if u32 != 0 && p > n {
					for i := p - n; u32 != 0 && i > 0; i-- {
						f := uint64(A[ai]) - uint64(u32)
						A[ai] = uint32(f)
						u32 = -uint32(f >> baseB)
						ai++
					}
				}
			}
			A[a0] = xd
			a0++
			p--
		}
		if k == 0 {
			A[a0] = w * A[a0]
		} else {
			u := (w * A[a0]) >> k
			top := uint64(x.v[len(x.v)-1])<<baseB | uint64(x.v[len(x.v)-2])
			div := uint64(B[n-1])<<baseB | uint64(B[n-2])
			xt := uint32(top / div)
			if (xt^u)&1 != 0 {
				xt--
			}
			A[a0] = xt
		}
	}
	return mkint(A[:qlen], x.sign != y.sign), nil
}

// Reduce divides a and b by their greatest common divisor, the primitive
// for putting fractions in lowest terms.
func Reduce(a, b *Int) (*Int, *Int) {
	var g *Int
	if a.IsUnit() || b.IsUnit() || a.IsZero() || b.IsZero() {
		g = One
	} else {
		g = a.Gcd(b)
	}
	if g.IsUnit() {
		return a, b
	}
	ra, _ := a.Equo(g)
	rb, _ := b.Equo(g)
	return ra, rb
}
