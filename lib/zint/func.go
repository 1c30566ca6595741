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

const maxInt64 = int64(1<<63 - 1)

// Fact returns n! for nonnegative n, squeezing powers of two out of each
// multiplier and shifting them back in at the end so the inner
// multiplies stay odd and small.
func Fact(n *Int) (*Int, error) {
	if n.IsNeg() {
		return nil, ErrNegFact
	}
	if n.Ge31b() {
		return nil, ErrHugeArg
	}
	v := n.Int64()
	var ptwo int64
	mul := int64(1)
	res := One
	for ; v > 1; v-- {
		m := v
		for m&1 == 0 {
			m >>= 1
			ptwo++
		}
		if mul <= maxInt64/m {
			mul *= m
			continue
		}
		res = res.MulInt(mul)
		mul = m
	}
	if mul > 1 {
		res = res.MulInt(mul)
	}
	return res.Shift(ptwo), nil
}

// Primorial returns the product of all primes <= n.
func Primorial(n *Int) (*Int, error) {
	if n.IsNeg() {
		return nil, ErrNegFact
	}
	if n.Ge31b() {
		return nil, ErrHugeArg
	}
	limit := n.Int64()
	res := One
	mul := int64(1)
	for p := int64(2); p <= limit; p = int64(nextPrime32(uint64(p))) {
		if mul <= maxInt64/p {
			mul *= p
			continue
		}
		res = res.MulInt(mul)
		mul = p
	}
	if mul > 1 {
		res = res.MulInt(mul)
	}
	return res, nil
}

// LcmFact returns the least common multiple of all integers up to n: the
// product over primes p <= n of p^floor(log_p n).
func LcmFact(n *Int) (*Int, error) {
	if n.IsNeg() {
		return nil, ErrNegFact
	}
	if n.Ge31b() {
		return nil, ErrHugeArg
	}
	limit := n.Int64()
	res := One
	if limit < 2 {
		return res, nil
	}
	mul := int64(1)
	for p := int64(2); p <= limit; p = int64(nextPrime32(uint64(p))) {
		pp := p
		for pp <= limit/p {
			pp *= p
		}
		if mul <= maxInt64/pp {
			mul *= pp
			continue
		}
		res = res.MulInt(mul)
		mul = pp
	}
	if mul > 1 {
		res = res.MulInt(mul)
	}
	return res, nil
}

// Perm returns the permutation count m! / (m-n)!.
func Perm(m, n *Int) (*Int, error) {
	if m.IsNeg() || n.IsNeg() {
		return nil, ErrNegFact
	}
	if m.Cmp(n) < 0 {
		return nil, ErrHugeArg
	}
	if n.Ge31b() {
		return nil, ErrHugeArg
	}
	count := n.Int64()
	if count == 0 {
		return One, nil
	}
	ans := m
	cur := m.Sub(One)
	for count--; count > 0; count-- {
		ans = ans.Mul(cur)
		cur = cur.Sub(One)
	}
	return ans, nil
}

// Comb returns the binomial coefficient m choose n. A negative upper
// index uses comb(m, n) = (-1)^n * comb(n-m-1, n).
func Comb(m, n *Int) (*Int, error) {
	if n.IsNeg() || (!m.IsNeg() && n.Cmp(m) > 0) {
		return Zero, nil
	}
	if n.IsOne() {
		return m, nil
	}
	if m.IsNeg() {
		t := m.Abs().Sub(One).Add(n)
		r, err := combPos(t, n)
		if err != nil {
			return nil, err
		}
		if n.IsOdd() {
			r = r.Neg()
		}
		return r, nil
	}
	return combPos(m, n)
}

func combPos(m, n *Int) (*Int, error) {
	if n.Cmp(m) > 0 {
		return Zero, nil
	}
	rest := m.Sub(n)
	if n.Ge31b() && rest.Ge31b() {
		return nil, ErrHugeArg
	}
	count := n.Uint64()
	if rest.Cmp(n) < 0 {
		count = rest.Uint64()
	}
	if count == 0 {
		return One, nil
	}
	if count == 1 {
		return m, nil
	}
	ans := m
	mul := m
	for i := uint64(2); i <= count; i++ {
		mul = mul.Sub(One)
		t := ans.Mul(mul)
		ans, _, _ = t.Quo(NewUint(i), 0)
	}
	return ans, nil
}

// Fib returns the Fibonacci number F(n), computed by the doubling
// recurrences F(2N+1) = F(N+1)^2 + F(N)^2 and F(2N) = F(N+1)^2 - F(N-1)^2.
// A negative index follows F(-n) = (-1)^(n+1) F(n).
func Fib(n *Int) (*Int, error) {
	if n.Ge31b() {
		return nil, ErrHugeArg
	}
	v := n.Abs().Int64()
	if v == 0 {
		return Zero, nil
	}
	neg := n.IsNeg() && v&1 == 0
	if v <= 2 {
		return One.CopySign(neg), nil
	}
	var i uint64 = 1 << 62
	uv := uint64(v)
	for i&uv == 0 {
		i >>= 1
	}
	i >>= 1
	fnm1, fn, fnp1 := Zero, One, One
	for i != 0 {
		t1 := fnm1.Square()
		t2 := fn.Square()
		t3 := fnp1.Square()
		fnp1 = t2.Add(t3)
		fn = t3.Sub(t1)
		if i&uv != 0 {
			fnm1 = fn
			fn = fnp1
			fnp1 = fnm1.Add(fn)
		} else {
			fnm1 = fnp1.Sub(fn)
		}
		i >>= 1
	}
	return fn.CopySign(neg), nil
}

// Log returns the integer floor of the log of abs(z) to base abs(b),
// walking a table of repeated squares of the base.
func (z *Int) Log(b *Int) (int64, error) {
	z = z.Abs()
	b = b.Abs()
	if z.IsZero() || b.IsZero() || b.IsOne() {
		return 0, ErrZeroLog
	}
	c := z.Cmp(b)
	if c <= 0 {
		if c == 0 {
			return 1, nil
		}
		return 0, nil
	}
	if b.IsOneBit() {
		return z.HighBit() / b.LowBit(), nil
	}
	if b.IsTiny() && b.v[0] == 10 {
		p, _, err := z.Log10()
		return p, err
	}
	// The table ends with the first square whose own square exceeds z,
	// so each level of the descent divides at most once.
	squares := []*Int{b}
	sq := b
	for 2*len(sq.v)-1 <= len(z.v) && z.Cmp(sq) >= 0 {
		sq = sq.Square()
		squares = append(squares, sq)
	}
	var power int64
	cur := z
	for i := len(squares) - 1; i >= 0; i-- {
		power <<= 1
		if cur.Cmp(squares[i]) >= 0 {
			cur, _, _ = cur.Quo(squares[i], 0)
			power++
		}
	}
	return power, nil
}

// Log10 returns the integer floor of the base 10 log of abs(z), plus
// whether z was an exact power of ten.
func (z *Int) Log10() (int64, bool, error) {
	if z.IsZero() {
		return 0, false, ErrZeroLog
	}
	z = z.Abs()
	if z.FitsInt64() {
		v := z.Int64()
		p := int64(0)
		for t := int64(1); ; p++ {
			if v == t {
				return p, true, nil
			}
			if t > v/10 {
				return p, false, nil
			}
			t *= 10
		}
	}
	// Climb the 10^2^k table, then assemble the power going down.
	d := 0
	for {
		t, err := TenPow2(d)
		if err != nil {
			return 0, false, err
		}
		if 2*len(t.v)-1 > len(z.v) {
			break
		}
		d++
	}
	var power int64
	var acc *Int
	for i := d; i >= 0; i-- {
		t, _ := TenPow2(i)
		var probe *Int
		if acc == nil {
			probe = t
		} else {
			probe = acc.Mul(t)
		}
		c := probe.Cmp(z)
		if c == 0 {
			return power + 1<<uint(i), true, nil
		}
		if c < 0 {
			acc = probe
			power += 1 << uint(i)
		}
	}
	return power, false, nil
}

// DivCount returns the number of times b divides z exactly.
func (z *Int) DivCount(b *Int) int64 {
	if z.IsZero() || b.IsZero() || b.IsUnit() {
		return 0
	}
	n, _ := z.FacRem(b)
	return n
}

// FacRem removes every factor b from z, returning the count removed and
// the cofactor. Squares of the factor are tried first so large counts
// cost a logarithmic number of divisions.
func (z *Int) FacRem(b *Int) (int64, *Int) {
	z = z.Abs()
	b = b.Abs()
	if len(z.v) < len(b.v) || (z.IsOdd() && b.IsEven()) ||
		b.IsZero() || b.IsOne() {
		return 0, z
	}
	if b.IsOneBit() {
		low := b.LowBit()
		count := z.LowBit() / low
		return count, z.Shift(-count * low)
	}
	q, r, _, _ := z.QuoRem(b, 0)
	if !r.IsZero() {
		return 0, z
	}
	z = q
	count := int64(1)
	worth := int64(1)
	squares := []*Int{b}
	for {
		sq := squares[len(squares)-1].Square()
		if 2*len(sq.v)-1 > len(z.v) {
			break
		}
		q, r, _, _ = z.QuoRem(sq, 0)
		if !r.IsZero() {
			break
		}
		z = q
		squares = append(squares, sq)
		worth *= 2
		count += worth
	}
	for i := len(squares) - 1; i >= 0; i, worth = i-1, worth/2 {
		if len(squares[i].v) <= len(z.v) {
			q, r, _, _ = z.QuoRem(squares[i], 0)
			if r.IsZero() {
				z = q
				count += worth
			}
		}
	}
	return count, z
}

// GcdRem divides z by its gcd with b until the result is relatively
// prime to b, returning the number of divisions and the final cofactor.
func (z *Int) GcdRem(b *Int) (int64, *Int, error) {
	if z.IsZero() || b.IsZero() {
		return 0, nil, ErrDivByZero
	}
	z = z.Abs()
	b = b.Abs()
	if b.IsOne() {
		return 0, z, nil
	}
	if b.IsOneBit() {
		sh := z.LowBit()
		if sh == 0 {
			return 0, z, nil
		}
		return 1 + (sh-1)/b.LowBit(), z.Shift(-sh), nil
	}
	if z.IsOneBit() {
		if b.IsOdd() {
			return 0, z, nil
		}
		return z.LowBit(), One, nil
	}
	g := z.Gcd(b)
	if g.IsUnit() || g.IsZero() {
		return 0, z, nil
	}
	z, _ = z.Equo(g)
	count := int64(1)
	for !g.IsUnit() {
		n, rem := z.FacRem(g)
		if n > 0 {
			count += n
			z = rem
		}
		g = z.Gcd(g)
	}
	return count, z, nil
}

// Digits returns the number of decimal digits in abs(z).
func (z *Int) Digits() int64 {
	z = z.Abs()
	if !z.Ge16b() {
		count := int64(1)
		for val := uint32(10); z.v[0] >= val; val *= 10 {
			count++
		}
		return count
	}
	p, _, _ := z.Log10()
	return p + 1
}

// Digit returns the decimal digit of abs(z) at position n, where 0 is
// the least significant digit.
func (z *Int) Digit(n int64) int64 {
	z = z.Abs()
	if z.IsZero() || n < 0 || n/9 >= int64(len(z.v)) {
		return 0
	}
	switch n {
	case 0:
		r, _ := z.ModInt(10)
		return r
	case 1:
		r, _ := z.ModInt(100)
		return r / 10
	case 2:
		r, _ := z.ModInt(1000)
		return r / 100
	case 3:
		r, _ := z.ModInt(10000)
		return r / 1000
	}
	t, err := TenPow(n)
	if err != nil {
		return 0
	}
	q, _, _ := z.Quo(t, 0)
	r, _ := q.ModInt(10)
	return r
}

// SquareMod returns z^2 mod m for positive m.
func (z *Int) SquareMod(m *Int) (*Int, error) {
	if m.IsZero() || m.IsNeg() {
		return nil, ErrBadModulus
	}
	if z.IsZero() || m.IsUnit() {
		return Zero, nil
	}
	if m.IsTiny() {
		d := uint64(m.v[0])
		if d&(d-1) == 0 {
			p := uint64(z.v[0])
			return NewUint(p * p & (d - 1)), nil
		}
		r, _ := z.Abs().ModInt(int64(d))
		return NewUint(uint64(r) * uint64(r) % d), nil
	}
	t := z.Square()
	if t.Cmp(m) < 0 {
		return t, nil
	}
	r, _, err := t.Mod(m, 0)
	return r, err
}

// MinMod returns the value congruent to z mod m with minimal absolute
// value, in the range -int((m-1)/2) to int(m/2).
func (z *Int) MinMod(m *Int) (*Int, error) {
	if m.IsZero() || m.IsNeg() {
		return nil, ErrBadModulus
	}
	if z.IsZero() || m.IsUnit() {
		return Zero, nil
	}
	if m.IsTwo() {
		if z.IsOdd() {
			return One, nil
		}
		return Zero, nil
	}
	if len(z.v) < len(m.v)-1 {
		return z, nil
	}
	neg := z.IsNeg()
	t := z.Abs()
	if c := t.Cmp(m); c == 0 {
		return Zero, nil
	} else if c > 0 {
		var err error
		t, _, err = z.Mod(m, 0)
		if err != nil {
			return nil, err
		}
		if len(t.v) < len(m.v)-1 {
			return t, nil
		}
		neg = false
	}
	d := m.Sub(t)
	if t.Cmp(d) < 0 {
		return t.CopySign(neg), nil
	}
	if t.Eq(d) {
		return d, nil
	}
	return d.CopySign(!neg), nil
}

// CmpMod reports whether x and y differ modulo positive m.
func CmpMod(x, y, m *Int) (bool, error) {
	if m.IsZero() || m.IsNeg() {
		return false, ErrBadModulus
	}
	if m.IsTwo() {
		return (x.v[0]+y.v[0])&1 != 0, nil
	}
	if x.Eq(y) {
		return false, nil
	}
	d := x.Sub(y).Abs()
	c := d.Cmp(m)
	if c == 0 {
		return false, nil
	}
	if c < 0 {
		// A nonzero difference strictly below m cannot be a
		// multiple of m.
		return true, nil
	}
	r, _, err := d.Mod(m, 0)
	if err != nil {
		return false, err
	}
	return !r.IsZero(), nil
}

// Hnrmod computes v mod h*2^n+r for h > 0, n > 0, r in {-1, 0, 1},
// without a general division:
//
//	v mod h*2^n+r == 2^n*(b mod h) + a - r*int(b/h), v = b*2^n + a.
//
// The loop repeats the split until the value drops below the modulus.
func Hnrmod(v, zh, zn, zr *Int) (*Int, error) {
	if zh.IsNeg() || zh.IsZero() {
		return nil, ErrBadModulus
	}
	if zn.IsNeg() || zn.IsZero() {
		return nil, ErrBadModulus
	}
	if zn.Ge31b() {
		return nil, ErrHugeArg
	}
	if len(zr.v) > 1 || zr.v[0] > 1 {
		return nil, ErrBadModulus
	}
	n := zn.Int64()
	r := int(zr.v[0])
	if zr.IsNeg() {
		r = -r
	}
	h := zh
	if lbit := zh.LowBit(); lbit > 0 {
		n += lbit
		h = zh.Shift(-lbit)
	}
	modulus := h.Shift(n).AddInt(int64(r))
	if modulus.FitsInt64() {
		mv, err := v.Abs().ModInt(modulus.Int64())
		if err != nil {
			return nil, err
		}
		if v.IsNeg() && mv != 0 {
			return NewInt(modulus.Int64() - mv), nil
		}
		return NewInt(mv), nil
	}
	hisone := h.IsOne()
	ret := v.Abs()
	neg := v.IsNeg()
	for {
		if ret.HighBit() < n {
			break
		}
		b := ret.Shift(-n)
		a := ret.Sub(b.Shift(n))
		switch r {
		case 0:
			if hisone {
				ret = a
			} else {
				tmod, _, err := b.Mod(h, 0)
				if err != nil {
					return nil, err
				}
				ret = tmod.Shift(n).Add(a)
			}
		case -1:
			if hisone {
				ret = a.Add(b)
			} else {
				tquo, tmod, _, err := b.QuoRem(h, 0)
				if err != nil {
					return nil, err
				}
				ret = tmod.Shift(n).Add(a).Add(tquo)
			}
		case 1:
			if hisone {
				t := a.Sub(b)
				if t.IsNeg() {
					t = t.Add(modulus)
				}
				ret = t
			} else {
				tquo, tmod, _, err := b.QuoRem(h, 0)
				if err != nil {
					return nil, err
				}
				t := tmod.Shift(n).Add(a).Sub(tquo)
				if t.IsNeg() {
					t = t.Add(modulus)
				}
				ret = t
			}
		}
		if ret.IsNeg() {
			neg = !neg
			ret = ret.Neg()
		}
		if ret.Cmp(modulus) <= 0 {
			break
		}
	}
	if neg && !ret.IsZero() {
		ret = modulus.Sub(ret)
	}
	if ret.Eq(modulus) {
		ret = Zero
	}
	return ret, nil
}
