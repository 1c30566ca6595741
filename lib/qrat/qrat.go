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

// Package qrat implements rational arithmetic on canonical reduced
// fractions.
//
// A Rat is a numerator-denominator pair of extended precision integers
// with two standing invariants: the denominator is always positive, and
// numerator and denominator are always relatively prime. The numerator
// carries the sign. Every operation returns values already in that
// canonical form, so reducing twice changes nothing.
//
// Rat values are immutable; frequently used values (0, 1, -1, 1/2, ...)
// are shared instances.
package qrat

import (
	"errors"

	"github.com/ratcore/ratcore/lib/zint"
)

var (
	ErrDivByZero  = errors.New("qrat: division by zero")
	ErrNotInteger = errors.New("qrat: fractional value where integer required")
	ErrZeroDenom  = errors.New("qrat: zero denominator")
	ErrHugeArg    = errors.New("qrat: argument exceeds internal limit")
)

// Rat is a rational number in lowest terms with a positive denominator.
type Rat struct {
	num *zint.Int
	den *zint.Int
}

// Shared trivial values, returned directly by the constructors and many
// operations.
var (
	Zero    = &Rat{num: zint.Zero, den: zint.One}
	One     = &Rat{num: zint.One, den: zint.One}
	NegOne  = &Rat{num: zint.NegOne, den: zint.One}
	Two     = &Rat{num: zint.Two, den: zint.One}
	Three   = &Rat{num: zint.NewInt(3), den: zint.One}
	Four    = &Rat{num: zint.NewInt(4), den: zint.One}
	Ten     = &Rat{num: zint.Ten, den: zint.One}
	Half    = &Rat{num: zint.One, den: zint.Two}
	NegHalf = &Rat{num: zint.NegOne, den: zint.Two}
)

// trivial returns the shared instance for common small values, or nil.
func trivial(num, den *zint.Int) *Rat {
	if !den.IsOne() {
		if den.IsTwo() && num.IsUnit() {
			if num.IsNeg() {
				return NegHalf
			}
			return Half
		}
		return nil
	}
	if num.IsZero() {
		return Zero
	}
	if !num.IsTiny() {
		return nil
	}
	switch v := num.Limbs()[0]; {
	case v == 1:
		if num.IsNeg() {
			return NegOne
		}
		return One
	case v == 2 && !num.IsNeg():
		return Two
	case v == 3 && !num.IsNeg():
		return Three
	case v == 4 && !num.IsNeg():
		return Four
	case v == 10 && !num.IsNeg():
		return Ten
	}
	return nil
}

// make wraps an already-reduced pair.
func mkrat(num, den *zint.Int) *Rat {
	if t := trivial(num, den); t != nil {
		return t
	}
	return &Rat{num: num, den: den}
}

// New builds the canonical rational num/den, reducing and normalizing
// the denominator sign.
func New(num, den *zint.Int) (*Rat, error) {
	if den.IsZero() {
		return nil, ErrZeroDenom
	}
	if den.IsNeg() {
		num = num.Neg()
		den = den.Abs()
	}
	if num.IsZero() {
		return Zero, nil
	}
	num, den = zint.Reduce(num, den)
	return mkrat(num, den), nil
}

// FromInt returns the rational for an integer.
func FromInt(z *zint.Int) *Rat {
	return mkrat(z, zint.One)
}

// FromInt64 returns the rational for a small integer.
func FromInt64(i int64) *Rat {
	return mkrat(zint.NewInt(i), zint.One)
}

// FromPair returns the canonical rational i1/i2 for small integers.
func FromPair(i1, i2 int64) (*Rat, error) {
	return New(zint.NewInt(i1), zint.NewInt(i2))
}

// Num returns the numerator, which carries the sign.
func (q *Rat) Num() *zint.Int { return q.num }

// Den returns the always positive denominator.
func (q *Rat) Den() *zint.Int { return q.den }

// Predicates.

func (q *Rat) IsZero() bool   { return q.num.IsZero() }
func (q *Rat) IsNeg() bool    { return q.num.IsNeg() }
func (q *Rat) IsPos() bool    { return q.num.IsPos() }
func (q *Rat) IsInt() bool    { return q.den.IsUnit() }
func (q *Rat) IsFrac() bool   { return !q.den.IsUnit() }
func (q *Rat) IsUnit() bool   { return q.num.IsUnit() && q.den.IsUnit() }
func (q *Rat) IsOne() bool    { return q.num.IsOne() && q.den.IsUnit() }
func (q *Rat) IsNegOne() bool { return q.num.IsNegOne() && q.den.IsUnit() }
func (q *Rat) IsTwo() bool    { return q.num.IsTwo() && q.den.IsUnit() }
func (q *Rat) IsEven() bool   { return q.den.IsUnit() && q.num.IsEven() }
func (q *Rat) IsOdd() bool    { return q.den.IsUnit() && q.num.IsOdd() }

// Sign returns -1, 0 or +1.
func (q *Rat) Sign() int { return q.num.Sign() }

// Int64 truncates q toward zero into a small integer.
func (q *Rat) Int64() int64 {
	if q.IsInt() {
		return q.num.Int64()
	}
	t, _, _, _ := q.num.QuoRem(q.den, zint.RoundQuotSign)
	return t.Int64()
}

// Neg returns -q.
func (q *Rat) Neg() *Rat {
	if q.IsZero() {
		return Zero
	}
	return mkrat(q.num.Neg(), q.den)
}

// Abs returns the absolute value of q.
func (q *Rat) Abs() *Rat {
	if !q.IsNeg() {
		return q
	}
	return mkrat(q.num.Abs(), q.den)
}

// Inv returns 1/q. The sign moves to the numerator.
func (q *Rat) Inv() (*Rat, error) {
	if q.IsZero() {
		return nil, ErrDivByZero
	}
	return mkrat(q.den.CopySign(q.IsNeg()), q.num.Abs()), nil
}

// Add returns q1 + q2 using Knuth's two-gcd scheme: with d1 the gcd of
// the denominators, only the cross terms over den/d1 need forming, and a
// second gcd against d1 finishes the reduction.
func (q1 *Rat) Add(q2 *Rat) *Rat {
	if q1.IsZero() {
		return q2
	}
	if q2.IsZero() {
		return q1
	}
	if q1.IsInt() && q2.IsInt() {
		return mkrat(q1.num.Add(q2.num), zint.One)
	}
	if q2.IsInt() {
		return mkrat(q1.num.Add(q1.den.Mul(q2.num)), q1.den)
	}
	if q1.IsInt() {
		return mkrat(q2.num.Add(q2.den.Mul(q1.num)), q2.den)
	}
	d1 := q1.den.Gcd(q2.den)
	if d1.IsUnit() {
		num := q1.num.Mul(q2.den).Add(q1.den.Mul(q2.num))
		return mkrat(num, q1.den.Mul(q2.den))
	}
	vpd1, _, _ := q2.den.Quo(d1, 0)
	upd1, _, _ := q1.den.Quo(d1, 0)
	t := q1.num.Mul(vpd1).Add(q2.num.Mul(upd1))
	d2 := t.Gcd(d1)
	if d2.IsUnit() {
		return mkrat(t, upd1.Mul(q2.den))
	}
	num, _, _ := t.Quo(d2, 0)
	dq, _, _ := q2.den.Quo(d2, 0)
	return mkrat(num, dq.Mul(upd1))
}

// Sub returns q1 - q2.
func (q1 *Rat) Sub(q2 *Rat) *Rat {
	if q1 == q2 {
		return Zero
	}
	if q2.IsZero() {
		return q1
	}
	if q1.IsInt() && q2.IsInt() {
		return mkrat(q1.num.Sub(q2.num), zint.One)
	}
	return q1.Add(q2.Neg())
}

// Inc returns q + 1.
func (q *Rat) Inc() *Rat {
	if q.IsInt() {
		return mkrat(q.num.Add(zint.One), zint.One)
	}
	return mkrat(q.num.Add(q.den), q.den)
}

// Dec returns q - 1.
func (q *Rat) Dec() *Rat {
	if q.IsInt() {
		return mkrat(q.num.Sub(zint.One), zint.One)
	}
	return mkrat(q.num.Sub(q.den), q.den)
}

// AddInt returns q + n.
func (q *Rat) AddInt(n int64) *Rat {
	switch n {
	case 0:
		return q
	case 1:
		return q.Inc()
	case -1:
		return q.Dec()
	}
	return q.Add(FromInt64(n))
}

// Mul returns q1 * q2, cross-cancelling common factors before the two
// multiplies so no final reduction pass is needed.
func (q1 *Rat) Mul(q2 *Rat) *Rat {
	if q1.IsZero() || q2.IsZero() {
		return Zero
	}
	if q1.IsOne() {
		return q2
	}
	if q2.IsOne() {
		return q1
	}
	if q1.IsInt() && q2.IsInt() {
		return mkrat(q1.num.Mul(q2.num), zint.One)
	}
	n1, d1 := q1.num, q1.den
	n2, d2 := q2.num, q2.den
	if !n1.IsUnit() && !d2.IsUnit() {
		if g := n1.Gcd(d2); !g.IsUnit() {
			n1, _ = n1.Equo(g)
			d2, _ = d2.Equo(g)
		}
	}
	if !n2.IsUnit() && !d1.IsUnit() {
		if g := n2.Gcd(d1); !g.IsUnit() {
			n2, _ = n2.Equo(g)
			d1, _ = d1.Equo(g)
		}
	}
	return mkrat(n1.Mul(n2), d1.Mul(d2))
}

// MulInt returns q * n.
func (q *Rat) MulInt(n int64) *Rat {
	if n == 0 || q.IsZero() {
		return Zero
	}
	if n == 1 {
		return q
	}
	return q.Mul(FromInt64(n))
}

// Div returns q1 / q2: multiplication by the swapped divisor, with the
// divisor's sign absorbed into the new numerator.
func (q1 *Rat) Div(q2 *Rat) (*Rat, error) {
	inv, err := q2.Inv()
	if err != nil {
		return nil, err
	}
	return q1.Mul(inv), nil
}

// DivInt returns q / n.
func (q *Rat) DivInt(n int64) (*Rat, error) {
	if n == 0 {
		return nil, ErrDivByZero
	}
	if n == 1 || q.IsZero() {
		return q, nil
	}
	return q.Div(FromInt64(n))
}

// Square returns q * q.
func (q *Rat) Square() *Rat {
	if q.IsZero() {
		return Zero
	}
	if q.IsUnit() {
		return One
	}
	return mkrat(q.num.Square(), q.den.Square())
}

// Cmp compares q1 and q2, returning -1, 0 or +1. The cross products are
// formed only after sign and limb-count short-circuits fail.
func (q1 *Rat) Cmp(q2 *Rat) int {
	if q1 == q2 {
		return 0
	}
	s1, s2 := q1.Sign(), q2.Sign()
	if s1 != s2 {
		if s1 < s2 {
			return -1
		}
		return 1
	}
	if s2 == 0 {
		return 0
	}
	// A two-limb gap in the cross-product sizes decides the order.
	wc1 := q1.num.Len() + q2.den.Len()
	wc2 := q2.num.Len() + q1.den.Len()
	if wc1 < wc2-1 {
		return -s1
	}
	if wc2 < wc1-1 {
		return s1
	}
	var z1, z2 *zint.Int
	switch {
	case q2.den.IsUnit():
		z1 = q1.num
	case q1.num.IsOne():
		z1 = q2.den
	default:
		z1 = q1.num.Mul(q2.den)
	}
	switch {
	case q1.den.IsUnit():
		z2 = q2.num
	case q2.num.IsOne():
		z2 = q1.den
	default:
		z2 = q2.num.Mul(q1.den)
	}
	return z1.Cmp(z2)
}

// Eq reports whether q1 == q2. Canonical form makes this component-wise.
func (q1 *Rat) Eq(q2 *Rat) bool {
	if q1 == q2 {
		return true
	}
	return q1.num.Eq(q2.num) && q1.den.Eq(q2.den)
}

// CmpInt64 compares q against a small integer.
func (q *Rat) CmpInt64(n int64) int {
	return q.Cmp(FromInt64(n))
}

// Min returns the smaller of q1 and q2.
func (q1 *Rat) Min(q2 *Rat) *Rat {
	if q1.Cmp(q2) > 0 {
		return q2
	}
	return q1
}

// Max returns the larger of q1 and q2.
func (q1 *Rat) Max(q2 *Rat) *Rat {
	if q1.Cmp(q2) < 0 {
		return q2
	}
	return q1
}

// IntPart returns the integer part of q truncated toward zero.
func (q *Rat) IntPart() *Rat {
	if q.IsInt() {
		return q
	}
	t, _, _, _ := q.num.QuoRem(q.den, zint.RoundQuotSign)
	return mkrat(t, zint.One)
}

// FracPart returns q minus its integer part; it carries the sign of q.
func (q *Rat) FracPart() *Rat {
	if q.IsInt() {
		return Zero
	}
	_, r, _, _ := q.num.QuoRem(q.den, zint.RoundQuotSign)
	return mkrat(r, q.den)
}

// Shift returns the integer q shifted by n bits.
func (q *Rat) Shift(n int64) (*Rat, error) {
	if q.IsFrac() {
		return nil, ErrNotInteger
	}
	if q.IsZero() || n == 0 {
		return q, nil
	}
	return mkrat(q.num.Shift(n), zint.One), nil
}

// Scale returns q * 2^n. Unlike Shift, fractions work: low zero bits are
// moved between numerator and denominator so no reduction is needed.
func (q *Rat) Scale(pow int64) *Rat {
	if q.IsZero() || pow == 0 {
		return q
	}
	var numShift, denShift int64
	if q.num.IsEven() {
		numShift = q.num.LowBit()
	}
	if q.den.IsEven() {
		denShift = q.den.LowBit()
	}
	if pow > 0 {
		t := pow
		if t > denShift {
			t = denShift
		}
		denShift = -t
		numShift = pow - t
	} else {
		p := -pow
		t := p
		if t > numShift {
			t = numShift
		}
		numShift = -t
		denShift = p - t
	}
	return mkrat(q.num.Shift(numShift), q.den.Shift(denShift))
}

// BitValue returns 2^n as a rational, for any sign of n.
func BitValue(n int64) (*Rat, error) {
	if n >= 0 {
		t, err := zint.BitValue(n)
		if err != nil {
			return nil, err
		}
		return mkrat(t, zint.One), nil
	}
	t, err := zint.BitValue(-n)
	if err != nil {
		return nil, err
	}
	return mkrat(zint.One, t), nil
}

// TenPow returns 10^n as a rational, for any sign of n.
func TenPow(n int64) (*Rat, error) {
	if n >= 0 {
		t, err := zint.TenPow(n)
		if err != nil {
			return nil, err
		}
		return mkrat(t, zint.One), nil
	}
	t, err := zint.TenPow(-n)
	if err != nil {
		return nil, err
	}
	return mkrat(zint.One, t), nil
}

// Comp returns the bitwise complement analogue: -q - 1 for integers, -q
// for fractions.
func (q *Rat) Comp() *Rat {
	if q.IsZero() {
		return NegOne
	}
	if q.IsNegOne() {
		return Zero
	}
	t := q.Neg()
	if q.IsFrac() {
		return t
	}
	return t.Dec()
}

// And returns the bitwise and of two integers; negative operands follow
// two's complement via the Comp identities.
func (q1 *Rat) And(q2 *Rat) (*Rat, error) {
	if q1.IsFrac() || q2.IsFrac() {
		return nil, ErrNotInteger
	}
	if q1.Eq(q2) {
		return q1, nil
	}
	if q1.IsZero() || q2.IsZero() {
		return Zero, nil
	}
	if q1.IsNeg() {
		if q2.IsNeg() {
			t, err := q1.Comp().Or(q2.Comp())
			if err != nil {
				return nil, err
			}
			return t.Comp(), nil
		}
		return q2.AndNot(q1.Comp())
	}
	if q2.IsNeg() {
		return q1.AndNot(q2.Comp())
	}
	return mkrat(q1.num.And(q2.num), zint.One), nil
}

// Or returns the bitwise or of two integers.
func (q1 *Rat) Or(q2 *Rat) (*Rat, error) {
	if q1.IsFrac() || q2.IsFrac() {
		return nil, ErrNotInteger
	}
	if q1.Eq(q2) || q2.IsZero() {
		return q1, nil
	}
	if q1.IsZero() {
		return q2, nil
	}
	if q1.IsNeg() {
		var t *Rat
		var err error
		if q2.IsNeg() {
			t, err = q1.Comp().And(q2.Comp())
		} else {
			t, err = q1.Comp().AndNot(q2)
		}
		if err != nil {
			return nil, err
		}
		return t.Comp(), nil
	}
	if q2.IsNeg() {
		t, err := q2.Comp().AndNot(q1)
		if err != nil {
			return nil, err
		}
		return t.Comp(), nil
	}
	return mkrat(q1.num.Or(q2.num), zint.One), nil
}

// Xor returns the bitwise exclusive or of two integers.
func (q1 *Rat) Xor(q2 *Rat) (*Rat, error) {
	if q1.IsFrac() || q2.IsFrac() {
		return nil, ErrNotInteger
	}
	if q1.Eq(q2) {
		return Zero, nil
	}
	if q1.IsZero() {
		return q2, nil
	}
	if q2.IsZero() {
		return q1, nil
	}
	if q1.IsNeg() {
		if q2.IsNeg() {
			return q1.Comp().Xor(q2.Comp())
		}
		t, err := q1.Comp().Xor(q2)
		if err != nil {
			return nil, err
		}
		return t.Comp(), nil
	}
	if q2.IsNeg() {
		t, err := q1.Xor(q2.Comp())
		if err != nil {
			return nil, err
		}
		return t.Comp(), nil
	}
	return mkrat(q1.num.Xor(q2.num), zint.One), nil
}

// AndNot returns q1 with the bits of q2 cleared.
func (q1 *Rat) AndNot(q2 *Rat) (*Rat, error) {
	if q1.IsFrac() || q2.IsFrac() {
		return nil, ErrNotInteger
	}
	if q1.Eq(q2) || q1.IsZero() {
		return Zero, nil
	}
	if q2.IsZero() {
		return q1, nil
	}
	if q1.IsNeg() {
		if q2.IsNeg() {
			return q2.Comp().AndNot(q1.Comp())
		}
		t, err := q1.Comp().Or(q2)
		if err != nil {
			return nil, err
		}
		return t.Comp(), nil
	}
	if q2.IsNeg() {
		return q1.And(q2.Comp())
	}
	return mkrat(q1.num.AndNot(q2.num), zint.One), nil
}

// IsSet reports whether bit n of the integer part of abs(q) is set;
// fractions consider the truncated value.
func (q *Rat) IsSet(n int64) bool {
	t := q.num
	if q.IsFrac() {
		t, _, _, _ = q.num.QuoRem(q.den, zint.RoundQuotSign)
	}
	return t.Bit(n)
}

// IsMultipleOf reports whether q is an integer multiple of d.
func (q *Rat) IsMultipleOf(d *Rat) bool {
	if q.IsZero() {
		return true
	}
	if q.IsInt() && d.IsInt() {
		if d.IsUnit() {
			return true
		}
		return d.num.Divides(q.num)
	}
	return d.num.Divides(q.num) && q.den.Divides(d.den)
}

// String formats q as num or num/den.
func (q *Rat) String() string {
	if q.IsInt() {
		return q.num.String()
	}
	return q.num.String() + "/" + q.den.String()
}
