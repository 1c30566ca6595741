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

package qrat

import (
	"errors"

	"github.com/ratcore/ratcore/lib/zint"
	"github.com/ratcore/ratcore/lib/zmod"
)

var (
	ErrZeroLog = errors.New("qrat: logarithm of zero")
	ErrBadBase = errors.New("qrat: inadmissible logarithm or digit base")
)

// ILog2 returns the greatest integer n with 2^n <= abs(q).
func (q *Rat) ILog2() (int64, error) {
	if q.IsZero() {
		return 0, ErrZeroLog
	}
	num := q.num.Abs()
	if q.IsInt() {
		return num.HighBit(), nil
	}
	n := num.HighBit() - q.den.HighBit()
	var c int
	switch {
	case n == 0:
		c = num.Cmp(q.den)
	case n > 0:
		c = num.Cmp(q.den.Shift(n))
	default:
		c = num.Shift(-n).Cmp(q.den)
	}
	if c < 0 {
		n--
	}
	return n, nil
}

// ILog10 returns the greatest integer n with 10^n <= abs(q).
func (q *Rat) ILog10() (int64, error) {
	if q.IsZero() {
		return 0, ErrZeroLog
	}
	num := q.num.Abs()
	if q.IsInt() {
		p, _, err := num.Log10()
		return p, err
	}
	if num.Cmp(q.den) > 0 {
		t, _, err := num.Quo(q.den, 0)
		if err != nil {
			return 0, err
		}
		p, _, err := t.Log10()
		return p, err
	}
	// Below one. The inverse of a power of ten would be off by one
	// from the obvious quotient, so back off a unit numerator first.
	var t *zint.Int
	if num.IsUnit() {
		t = q.den.Sub(zint.One)
	} else {
		var err error
		t, _, err = q.den.Quo(num, 0)
		if err != nil {
			return 0, err
		}
	}
	p, _, err := t.Log10()
	return -p - 1, err
}

// ILog returns the integer floor of the log of abs(q) to an integral
// base greater than one.
func (q *Rat) ILog(base *zint.Int) (int64, error) {
	if q.IsZero() {
		return 0, ErrZeroLog
	}
	if base.IsZero() || base.IsUnit() {
		return 0, ErrBadBase
	}
	if q.IsUnit() {
		return 0, nil
	}
	num := q.num.Abs()
	if q.IsInt() {
		return num.Log(base)
	}
	if num.Cmp(q.den) > 0 {
		t, _, err := num.Quo(q.den, 0)
		if err != nil {
			return 0, err
		}
		return t.Log(base)
	}
	var t *zint.Int
	if num.IsUnit() {
		t = q.den.Sub(zint.One)
	} else {
		var err error
		t, _, err = q.den.Quo(num, 0)
		if err != nil {
			return 0, err
		}
	}
	n, err := t.Log(base)
	return -n - 1, err
}

// Precision returns the number of binary fractional bits needed to get
// within positive q of a value: -ilog2(q), clamped at zero.
func (q *Rat) Precision() (int64, error) {
	if q.IsZero() || q.IsNeg() {
		return 0, ErrZeroLog
	}
	n, err := q.ILog2()
	if err != nil {
		return 0, err
	}
	if -n < 0 {
		return 0, nil
	}
	return -n, nil
}

// DecPlaces returns the number of decimal places needed to represent q
// exactly, or -1 when the decimal expansion does not terminate. The
// expansion terminates exactly when the denominator is 2^A * 5^B, and
// then needs max(A, B) places.
func (q *Rat) DecPlaces() int64 {
	if q.IsInt() {
		return 0
	}
	fivepow, rest := q.den.FacRem(zint.NewInt(5))
	if !rest.IsOneBit() {
		return -1
	}
	twopow := rest.LowBit()
	if twopow < fivepow {
		return fivepow
	}
	return twopow
}

// Places returns the minimum number of fractional places needed to
// represent q exactly in the given base, -1 for non-terminating
// expansions, or an error for an inadmissible base.
func (q *Rat) Places(base *zint.Int) (int64, error) {
	if base.IsTiny() && base.Limbs()[0] == 10 && !base.IsNeg() {
		return q.DecPlaces(), nil
	}
	if base.IsZero() || base.IsUnit() {
		return 0, ErrBadBase
	}
	if q.IsInt() {
		return 0, nil
	}
	if base.IsOneBit() {
		if !q.den.IsOneBit() {
			return -1, nil
		}
		return 1 + (q.den.LowBit()-1)/base.LowBit(), nil
	}
	count, rest, err := q.den.GcdRem(base)
	if err != nil {
		return 0, err
	}
	if count == 0 {
		return -1, nil
	}
	if !rest.IsUnit() {
		return -1, nil
	}
	return count, nil
}

// Digits returns the number of digits of the integral part of abs(q) in
// the given base.
func (q *Rat) Digits(base *zint.Int) (int64, error) {
	if q.num.CmpAbs(q.den) < 0 {
		return 1, nil
	}
	if q.IsInt() {
		n, err := q.num.Log(base)
		return 1 + n, err
	}
	t, _, err := q.num.Quo(q.den, zint.RoundQuotSign)
	if err != nil {
		return 0, err
	}
	n, err := t.Log(base)
	return 1 + n, err
}

// Digit returns the digit at place dpos in the base expansion of abs(q),
// places numbered from the units digit so negative dpos selects digits
// to the right of the point.
func (q *Rat) Digit(dpos int64, base *zint.Int) (*zint.Int, error) {
	base = base.Abs()
	if base.IsZero() || base.IsUnit() {
		return nil, ErrBadBase
	}
	if q.IsZero() || (q.IsInt() && dpos < 0) || dpos >= 1<<31 {
		return zint.Zero, nil
	}
	// Express q as base^k * n/d with gcd(d, base) = 1.
	var d *zint.Int
	k, n := q.num.FacRem(base)
	if k == 0 {
		cnt, rest, err := q.den.GcdRem(base)
		if err != nil {
			return nil, err
		}
		if cnt > 0 {
			a, err := q.den.Equo(rest)
			if err != nil {
				return nil, err
			}
			b, err := base.Pow(zint.NewInt(cnt))
			if err != nil {
				return nil, err
			}
			c, err := b.Equo(a)
			if err != nil {
				return nil, err
			}
			n = c.Mul(q.num)
			d = rest
			k = -cnt
		} else {
			n = q.num
		}
	}
	if k >= 0 {
		d = q.den
	}
	n = n.Abs()

	var digit *zint.Int
	if dpos >= k {
		b, err := base.Pow(zint.NewInt(dpos - k))
		if err != nil {
			return nil, err
		}
		digit, _, err = n.Quo(d.Mul(b), 0)
		if err != nil {
			return nil, err
		}
	} else {
		if d.IsUnit() {
			return zint.Zero, nil
		}
		// Digit of a repeating expansion: multiply the residue by
		// base^(k-dpos) modulo d, then by base minus the inverse of
		// d modulo base.
		c, err := zmod.PowerMod(base, zint.NewInt(k-dpos), d)
		if err != nil {
			return nil, err
		}
		a, _, err := n.Mod(d, 0)
		if err != nil {
			return nil, err
		}
		a, _, err = c.Mul(a).Mod(d, 0)
		if err != nil {
			return nil, err
		}
		binv, err := d.ModInv(base)
		if err != nil {
			return nil, err
		}
		digit = base.Sub(binv).Mul(a)
	}
	r, _, err := digit.Mod(base, 0)
	return r, err
}

// Gcd returns the greatest common divisor of two rationals:
// gcd(n1/d1, n2/d2) = gcd(n1, n2) / lcm(d1, d2).
func (q1 *Rat) Gcd(q2 *Rat) *Rat {
	if q1.Eq(q2) {
		return q1.Abs()
	}
	if q1.IsZero() {
		return q2.Abs()
	}
	if q2.IsZero() {
		return q1.Abs()
	}
	num := q1.num.Gcd(q2.num)
	den := q1.den.Lcm(q2.den)
	return mkrat(num, den)
}

// Lcm returns the least common multiple of two rationals.
func (q1 *Rat) Lcm(q2 *Rat) *Rat {
	if q1.IsZero() || q2.IsZero() {
		return Zero
	}
	num := q1.num.Lcm(q2.num)
	den := q1.den.Gcd(q2.den)
	return mkrat(num, den)
}

// Fact returns q! for a nonnegative integer q.
func (q *Rat) Fact() (*Rat, error) {
	if q.IsFrac() {
		return nil, ErrNotInteger
	}
	t, err := zint.Fact(q.num)
	if err != nil {
		return nil, err
	}
	return FromInt(t), nil
}

// PrimeFact returns the primorial of the integer q.
func (q *Rat) PrimeFact() (*Rat, error) {
	if q.IsFrac() {
		return nil, ErrNotInteger
	}
	t, err := zint.Primorial(q.num)
	if err != nil {
		return nil, err
	}
	return FromInt(t), nil
}

// LcmFact returns lcm(1, 2, ..., q) for the integer q.
func (q *Rat) LcmFact() (*Rat, error) {
	if q.IsFrac() {
		return nil, ErrNotInteger
	}
	t, err := zint.LcmFact(q.num)
	if err != nil {
		return nil, err
	}
	return FromInt(t), nil
}

// Perm returns the falling factorial q!/(q-n)! for integers.
func (q *Rat) Perm(n *Rat) (*Rat, error) {
	if q.IsFrac() || n.IsFrac() {
		return nil, ErrNotInteger
	}
	t, err := zint.Perm(q.num, n.num)
	if err != nil {
		return nil, err
	}
	return FromInt(t), nil
}

// Comb returns the binomial coefficient q choose n for integers.
func (q *Rat) Comb(n *Rat) (*Rat, error) {
	if q.IsFrac() || n.IsFrac() {
		return nil, ErrNotInteger
	}
	t, err := zint.Comb(q.num, n.num)
	if err != nil {
		return nil, err
	}
	return FromInt(t), nil
}

// Catalan returns the Catalan number comb(2q, q)/(q+1) for a nonnegative
// integer q; negative arguments return zero.
func (q *Rat) Catalan() (*Rat, error) {
	if q.IsFrac() {
		return nil, ErrNotInteger
	}
	if q.IsNeg() {
		return Zero, nil
	}
	a := q.Scale(1)
	b, err := a.Comb(q)
	if err != nil {
		return nil, err
	}
	return b.Div(q.Inc())
}

// Fib returns the Fibonacci number F(q) for an integer index.
func (q *Rat) Fib() (*Rat, error) {
	if q.IsFrac() {
		return nil, ErrNotInteger
	}
	t, err := zint.Fib(q.num)
	if err != nil {
		return nil, err
	}
	return FromInt(t), nil
}

// Jacobi returns the Jacobi symbol (q1 / q2) for integers.
func (q1 *Rat) Jacobi(q2 *Rat) (*Rat, error) {
	if q1.IsFrac() || q2.IsFrac() {
		return nil, ErrNotInteger
	}
	return FromInt64(int64(q1.num.Jacobi(q2.num))), nil
}

// PowInt raises q to an integral power, inverting for negative
// exponents.
func (q *Rat) PowInt(e *Rat) (*Rat, error) {
	if e.IsFrac() {
		return nil, ErrNotInteger
	}
	if e.IsZero() {
		return One, nil
	}
	if q.IsZero() {
		if e.IsNeg() {
			return nil, ErrDivByZero
		}
		return Zero, nil
	}
	base := q
	exp := e.num
	if e.IsNeg() {
		var err error
		base, err = q.Inv()
		if err != nil {
			return nil, err
		}
		exp = exp.Abs()
	}
	num, err := base.num.Pow(exp)
	if err != nil {
		return nil, err
	}
	den, err := base.den.Pow(exp)
	if err != nil {
		return nil, err
	}
	return mkrat(num, den), nil
}

// PowerMod computes q1^q2 mod q3 for integer arguments.
func (q1 *Rat) PowerMod(q2, q3 *Rat) (*Rat, error) {
	if q1.IsFrac() || q2.IsFrac() || q3.IsFrac() {
		return nil, ErrNotInteger
	}
	t, err := zmod.PowerMod(q1.num, q2.num, q3.num)
	if err != nil {
		return nil, err
	}
	return FromInt(t), nil
}

// MInv returns the inverse of integer q1 modulo integer q2.
func (q1 *Rat) MInv(q2 *Rat) (*Rat, error) {
	if q1.IsFrac() || q2.IsFrac() {
		return nil, ErrNotInteger
	}
	t, err := q1.num.ModInv(q2.num)
	if err != nil {
		return nil, err
	}
	return FromInt(t), nil
}

// ISqrt returns the integer part of the square root of q.
func (q *Rat) ISqrt() (*Rat, error) {
	if q.IsNeg() {
		return nil, zint.ErrNegSqrt
	}
	if q.IsZero() {
		return Zero, nil
	}
	t := q.num
	if q.IsFrac() {
		t, _, _, _ = q.num.QuoRem(q.den, 0)
	}
	r, _, err := t.Sqrt(0)
	if err != nil {
		return nil, err
	}
	return FromInt(r), nil
}

// IRoot returns the integer part of the k-th root of q.
func (q *Rat) IRoot(k *Rat) (*Rat, error) {
	if k.IsFrac() {
		return nil, ErrNotInteger
	}
	if k.IsNeg() || k.IsZero() {
		return nil, zint.ErrBadRoot
	}
	if q.IsZero() {
		return Zero, nil
	}
	if q.IsOne() || k.IsOne() {
		return q, nil
	}
	if k.IsTwo() {
		return q.ISqrt()
	}
	t := q.num
	if q.IsFrac() {
		t, _, _, _ = q.num.QuoRem(q.den, 0)
	}
	r, err := t.Root(k.num)
	if err != nil {
		return nil, err
	}
	return FromInt(r), nil
}

// IsSquare reports whether q is the square of a rational.
func (q *Rat) IsSquare() bool {
	if !q.num.IsSquare() {
		return false
	}
	if q.IsInt() {
		return true
	}
	return q.den.IsSquare()
}

// IsPowerOfTwo reports whether q is 2^n for some integer n (of either
// sign), returning the exponent.
func (q *Rat) IsPowerOfTwo() (int64, bool) {
	if q.IsNeg() || q.IsZero() {
		return 0, false
	}
	if q.IsInt() {
		return q.num.IsPowerOfTwo()
	}
	if !q.num.IsOne() {
		return 0, false
	}
	n, ok := q.den.IsPowerOfTwo()
	return -n, ok
}

// FacRem removes all factors of integer f from integer q, returning the
// count and cofactor.
func (q *Rat) FacRem(f *Rat) (*Rat, int64, error) {
	if q.IsFrac() || f.IsFrac() {
		return nil, 0, ErrNotInteger
	}
	n, rest := q.num.FacRem(f.num)
	return FromInt(rest), n, nil
}

// GcdRem divides integer q by gcds with integer b until coprime.
func (q *Rat) GcdRem(b *Rat) (*Rat, int64, error) {
	if q.IsFrac() || b.IsFrac() {
		return nil, 0, ErrNotInteger
	}
	n, rest, err := q.num.GcdRem(b.num)
	if err != nil {
		return nil, 0, err
	}
	return FromInt(rest), n, nil
}

// LowFactor returns the lowest prime factor of integer q among the first
// count primes, or one when none divides it.
func (q *Rat) LowFactor(count *Rat) (*Rat, error) {
	if q.IsFrac() || count.IsFrac() {
		return nil, ErrNotInteger
	}
	return FromInt(zint.NewUint(q.num.LowFactor(count.Int64()))), nil
}

// PrimeTest runs abs(count) Miller-Rabin rounds on the integer q with
// witnesses chosen by skip.
func (q *Rat) PrimeTest(count, skip *Rat) (bool, error) {
	if q.IsFrac() || count.IsFrac() || skip.IsFrac() {
		return false, ErrNotInteger
	}
	if count.num.Ge31b() {
		return false, ErrHugeArg
	}
	return zmod.PrimeTest(q.num, count.Int64(), skip.num)
}

// Bernoulli and Euler number tables, grown on demand and shared
// process-wide, with explicit release hooks for the interactive layer.
var (
	bernTable  []*Rat // bernTable[k] is B(2k+2)
	eulerTable []*Rat // eulerTable[k] is E(2k+2)
)

// Bernoulli returns the Bernoulli number B(n) for an integer index. Odd
// indices beyond one give zero; B(1) is -1/2.
func Bernoulli(n *zint.Int) (*Rat, error) {
	if n.IsOne() {
		return NegHalf, nil
	}
	if n.IsOdd() || n.IsNeg() {
		return Zero, nil
	}
	if n.IsZero() {
		return One, nil
	}
	if n.Ge31b() {
		return nil, ErrHugeArg
	}
	m := int(n.Int64()>>1) - 1
	for k := len(bernTable); k <= m; k++ {
		nn := int64(2*k + 3)
		dd := int64(1)
		c, err := FromInt64(nn).Inv()
		if err != nil {
			return nil, err
		}
		s := Half.Sub(c)
		for i := 0; i < k; i++ {
			c = c.MulInt(nn)
			nn--
			c, err = c.DivInt(dd)
			if err != nil {
				return nil, err
			}
			dd++
			c = c.MulInt(nn)
			nn--
			c, err = c.DivInt(dd)
			if err != nil {
				return nil, err
			}
			dd++
			s = s.Sub(c.Mul(bernTable[i]))
		}
		bernTable = append(bernTable, s)
	}
	return bernTable[m], nil
}

// FreeBernoulli releases the Bernoulli table.
func FreeBernoulli() { bernTable = nil }

// Euler returns the Euler number E(n) for an integer index; odd or
// negative indices give zero.
func Euler(n *zint.Int) (*Rat, error) {
	if n.IsZero() {
		return One, nil
	}
	if n.IsOdd() || n.IsNeg() {
		return Zero, nil
	}
	if n.Ge31b() {
		return nil, ErrHugeArg
	}
	m := int(n.Int64()>>1) - 1
	for k := len(eulerTable); k <= m; k++ {
		nn := int64(2*k + 2)
		dd := int64(1)
		c := One
		s := NegOne
		var err error
		for i := 0; i < k; i++ {
			c = c.MulInt(nn)
			nn--
			c, err = c.DivInt(dd)
			if err != nil {
				return nil, err
			}
			dd++
			c = c.MulInt(nn)
			nn--
			c, err = c.DivInt(dd)
			if err != nil {
				return nil, err
			}
			dd++
			s = s.Sub(c.Mul(eulerTable[i]))
		}
		eulerTable = append(eulerTable, s)
	}
	return eulerTable[m], nil
}

// FreeEuler releases the Euler table.
func FreeEuler() { eulerTable = nil }
