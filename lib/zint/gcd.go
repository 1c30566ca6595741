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

// Gcd returns the greatest common divisor of abs(x) and abs(y).
//
// Common trailing zero limbs and zero bits are factored out first and
// shifted back in at the end. While both operands are longer than one
// limb, quotients of the continued fraction expansion are simulated on
// the leading 62 bits and applied as a 2x2 transform over the whole
// arrays (Lehmer); a transform whose off-diagonal entry is zero forces
// one full-precision quotient step. Single-limb tails finish with the
// ordinary Euclidean algorithm on machine words.
func (x *Int) Gcd(y *Int) *Int {
	if x.IsUnit() || y.IsUnit() {
		return One
	}
	a := x.Abs()
	b := y.Abs()
	if a.IsZero() || a.Eq(b) {
		return b
	}
	if b.IsZero() {
		return a
	}
	ta := a.LowBit()
	tb := b.LowBit()
	shift := ta
	if tb < shift {
		shift = tb
	}
	a = a.Shift(-ta)
	b = b.Shift(-tb)
	if a.CmpAbs(b) < 0 {
		a, b = b, a
	}

	for len(b.v) > 1 {
		uh, vh := leadingDigits(a, b)
		if vh == 0 {
			_, r, _, _ := a.QuoRem(b, 0)
			a, b = b, r
			continue
		}
		A, B, C, D := lehmerSimulate(uh, vh)
		if B == 0 {
			_, r, _, _ := a.QuoRem(b, 0)
			a, b = b, r
			continue
		}
		// a' = A*a + B*b, b' = C*a + D*b; both results are
		// nonnegative by construction of the transform and a' >= b'.
		na := a.MulInt(A).Add(b.MulInt(B))
		nb := a.MulInt(C).Add(b.MulInt(D))
		a, b = na, nb
		if a.CmpAbs(b) < 0 {
			a, b = b, a
		}
	}

	var g *Int
	if b.IsZero() {
		g = a
	} else {
		// Single-limb finish.
		u := uint64(b.v[0])
		var r uint64
		for i := len(a.v) - 1; i >= 0; i-- {
			r = (r<<baseB | uint64(a.v[i])) % u
		}
		for r != 0 {
			u, r = r, u%r
		}
		g = NewUint(u)
	}
	return g.Shift(shift)
}

// leadingDigits returns aligned leading 62-bit digits of a and b, where
// a >= b. vh is zero when b is too much smaller than a for a simulated
// step to make progress.
func leadingDigits(a, b *Int) (uint64, uint64) {
	s := a.HighBit() - 62
	if s < 0 {
		s = 0
	}
	uh := a.Shift(-s).Uint64()
	vh := b.Shift(-s).Uint64()
	return uh, vh
}

// lehmerSimulate runs the single-precision extended Euclid on the
// leading digits, returning the 2x2 transform (A, B; C, D). A and D
// carry one sign, B and C the other, so both linear combinations in the
// caller come out nonnegative.
func lehmerSimulate(uh, vh uint64) (int64, int64, int64, int64) {
	var A, B, C, D int64 = 1, 0, 0, 1
	for {
		// The additions wrap, but the true values are nonnegative
		// whenever the quotients still agree.
		ch := vh + uint64(C)
		dh := vh + uint64(D)
		if ch == 0 || dh == 0 {
			break
		}
		q1 := (uh + uint64(A)) / ch
		q2 := (uh + uint64(B)) / dh
		if q1 != q2 {
			break
		}
		q := int64(q1)
		A, C = C, A-q*C
		B, D = D, B-q*D
		uh, vh = vh, uh-q1*vh
	}
	return A, B, C, D
}

// Lcm returns the least common multiple of abs(x) and abs(y), using
// gcd(a,b) * lcm(a,b) = a*b.
func (x *Int) Lcm(y *Int) *Int {
	if x.IsZero() || y.IsZero() {
		return Zero
	}
	g := x.Gcd(y)
	q, _ := x.Abs().Equo(g)
	return q.Mul(y.Abs())
}

// RelPrime reports whether abs(x) and abs(y) are relatively prime. A few
// trial primes are checked before falling back to a full gcd.
func (x *Int) RelPrime(y *Int) bool {
	a := x.Abs()
	b := y.Abs()
	if a.IsEven() && b.IsEven() {
		return false
	}
	if a.IsUnit() || b.IsUnit() {
		return true
	}
	if a.IsZero() || b.IsZero() {
		return false
	}
	if a.IsTwo() || b.IsTwo() {
		return true
	}
	r1, _ := a.ModInt(3 * 5 * 7 * 11 * 13)
	r2, _ := b.ModInt(3 * 5 * 7 * 11 * 13)
	for _, p := range [5]int64{3, 5, 7, 11, 13} {
		if r1%p == 0 && r2%p == 0 {
			return false
		}
	}
	r1, _ = a.ModInt(17 * 19 * 23)
	r2, _ = b.ModInt(17 * 19 * 23)
	for _, p := range [3]int64{17, 19, 23} {
		if r1%p == 0 && r2%p == 0 {
			return false
		}
	}
	return a.Gcd(b).IsUnit()
}

// ModInv returns the inverse of x modulo abs(v), or ErrNotCoprime when no
// inverse exists. This is algorithm X of Knuth Vol 2 section 4.5.2 with
// the single-precision quotient acceleration of exercise 17.
func (x *Int) ModInv(v *Int) (*Int, error) {
	v = v.Abs()
	if v.IsZero() {
		return nil, ErrBadModulus
	}
	var v3 *Int
	if x.IsNeg() || x.CmpAbs(v) >= 0 {
		v3, _, _ = mod0(x, v)
	} else {
		v3 = x
	}
	u3 := v
	u2, v2 := Zero, One

	for len(u3.v) > 1 && !v3.IsZero() {
		uh, vh := leadingDigits(u3, v3)
		var A, B, C, D int64 = 1, 0, 0, 1
		if vh != 0 {
			A, B, C, D = lehmerSimulate(uh, vh)
		}
		if B == 0 {
			// No single-precision progress: one full step.
			q, _, _ := u3.Quo(v3, 0)
			u2, v2 = v2, u2.Sub(q.Mul(v2))
			u3, v3 = v3, u3.Sub(q.Mul(v3))
			continue
		}
		nu2 := u2.MulInt(A).Add(v2.MulInt(B))
		nv2 := u2.MulInt(C).Add(v2.MulInt(D))
		nu3 := u3.MulInt(A).Add(v3.MulInt(B))
		nv3 := u3.MulInt(C).Add(v3.MulInt(D))
		u2, v2 = nu2, nv2
		u3, v3 = nu3, nv3
	}

	if v3.IsZero() && !u3.IsOne() {
		return nil, ErrNotCoprime
	}
	ui := u3.Uint64()
	vi := v3.Uint64()
	for vi != 0 {
		q := ui / vi
		u2, v2 = v2, u2.Sub(v2.MulInt(int64(q)))
		ui, vi = vi, ui-q*vi
	}
	if ui != 1 {
		return nil, ErrNotCoprime
	}
	if u2.IsNeg() {
		return v.Add(u2), nil
	}
	return u2, nil
}

// mod0 is x mod m with default rounding, ignoring errors (m nonzero).
func mod0(x, m *Int) (*Int, int, error) {
	r, rs, err := x.Mod(m, 0)
	return r, rs, err
}

// Jacobi returns the Jacobi symbol (x / y) for odd positive y. Invalid
// parameters (x <= 0, y even or y < 1) return 0.
func (x *Int) Jacobi(y *Int) int {
	if x.IsZero() || x.IsNeg() {
		return 0
	}
	if y.IsEven() || y.IsNeg() {
		return 0
	}
	if x.IsOne() {
		return 1
	}
	val := 1
	p := x
	q := y
	for {
		p, _, _ = mod0(p, q)
		if p.IsZero() {
			return 0
		}
		if p.IsEven() {
			low := p.LowBit()
			p = p.Shift(-low)
			if low&1 == 1 {
				if m8 := q.v[0] & 7; m8 == 3 || m8 == 5 {
					val = -val
				}
			}
		}
		if p.IsUnit() {
			return val
		}
		if p.v[0]&q.v[0]&3 == 3 {
			val = -val
		}
		p, q = q, p
	}
}
