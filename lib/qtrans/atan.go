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

package qtrans

import (
	"github.com/ratcore/ratcore/lib/qrat"
	"github.com/ratcore/ratcore/lib/zint"
)

// Atan evaluates the arctangent to the nearest or next to nearest
// multiple of epsilon. The argument is reduced four times by
//
//	atan(x) = 2 * atan(x / (1 + sqrt(1 + x^2)))
//
// trading range for precision, and the remaining small value feeds the
// alternating series x - x^3/3 + x^5/5 - ...
func Atan(q *qrat.Rat, epsilon *qrat.Rat) (*qrat.Rat, error) {
	if epsilon.IsZero() {
		return nil, ErrZeroEpsilon
	}
	if q.IsZero() {
		return qrat.Zero, nil
	}
	il, err := epsilon.ILog2()
	if err != nil {
		return nil, err
	}
	m := 12 - il // 4 bits for 4 doublings, 8 for rounding
	if m < 8 {
		m = 8
	}
	if m > maxWorkBits {
		return nil, ErrHugePrecision
	}
	scaled := q.Scale(m)
	x, _, err := scaled.Num().Quo(scaled.Den(), triground())
	if err != nil {
		return nil, err
	}
	d, err := zint.BitValue(m)
	if err != nil {
		return nil, err
	}
	dd := d.Square()
	for i := 0; i < 4 && !x.IsZero(); i++ {
		t, _, err := x.Square().Add(dd).Sqrt(triground())
		if err != nil {
			return nil, err
		}
		x, _, err = x.Shift(m).Quo(t.Add(d), triground())
		if err != nil {
			return nil, err
		}
	}
	if x.IsZero() {
		return qrat.Zero, nil
	}
	sum := x
	mul := x.Square().Shift(-m)
	dn := int64(3)
	sign := !x.IsNeg()
	for {
		x = x.Mul(mul).Shift(-m)
		term, _, err := x.DivInt(dn)
		if err != nil {
			return nil, err
		}
		if term.IsZero() {
			break
		}
		term = term.Abs().CopySign(sign)
		sum = sum.Add(term)
		sign = !sign
		dn += 2
	}
	// The four doublings fold back in as a 2^4 factor: the sum is
	// scaled by 2^(m-4).
	low := sum.LowBit()
	num := sum.Shift(-low)
	var t *qrat.Rat
	if m-4-low > 0 {
		den, err := zint.BitValue(m - 4 - low)
		if err != nil {
			return nil, err
		}
		t, err = qrat.New(num, den)
		if err != nil {
			return nil, err
		}
	} else {
		t = qrat.FromInt(num.Shift(low - (m - 4)))
	}
	return t.Mappr(epsilon, triground())
}

// Asin evaluates the arcsine for |q| <= 1, in the range -pi/2 to pi/2,
// via atan(q / sqrt(1 - q^2)). Arguments beyond the unit interval are
// not real: ErrNotReal.
func Asin(q *qrat.Rat, epsilon *qrat.Rat) (*qrat.Rat, error) {
	if epsilon.IsZero() {
		return nil, ErrZeroEpsilon
	}
	if q.IsZero() {
		return qrat.Zero, nil
	}
	neg := q.IsNeg()
	c := q.Num().CmpAbs(q.Den())
	if c > 0 {
		return nil, ErrNotReal
	}
	var res *qrat.Rat
	if c == 0 {
		pi, err := Pi(epsilon.Scale(1))
		if err != nil {
			return nil, err
		}
		res = pi.Scale(-1)
	} else {
		eps1 := epsilon.Scale(-2)
		ratio, err := qrat.New(q.Num().Square(),
			q.Den().Square().Sub(q.Num().Square()))
		if err != nil {
			return nil, err
		}
		root, err := Sqrt(ratio, eps1, triground())
		if err != nil {
			return nil, err
		}
		res, err = Atan(root, epsilon)
		if err != nil {
			return nil, err
		}
	}
	if neg {
		return res.Abs().Neg(), nil
	}
	return res.Abs(), nil
}

// Acos evaluates the arccosine for |q| <= 1, in the range 0 to pi, via
// 2*atan(sqrt((1-q)/(1+q))).
func Acos(q *qrat.Rat, epsilon *qrat.Rat) (*qrat.Rat, error) {
	if epsilon.IsZero() {
		return nil, ErrZeroEpsilon
	}
	if q.IsOne() {
		return qrat.Zero, nil
	}
	if q.IsNegOne() {
		return Pi(epsilon)
	}
	if q.Num().CmpAbs(q.Den()) > 0 {
		return nil, ErrNotReal
	}
	eps1 := epsilon.Scale(-3)
	ratio, err := qrat.New(q.Den().Sub(q.Num()), q.Den().Add(q.Num()))
	if err != nil {
		return nil, err
	}
	root, err := Sqrt(ratio, eps1, triground())
	if err != nil {
		return nil, err
	}
	t, err := Atan(root, epsilon.Scale(-1))
	if err != nil {
		return nil, err
	}
	return t.Scale(1), nil
}

// Asec is acos of the inverse.
func Asec(q *qrat.Rat, epsilon *qrat.Rat) (*qrat.Rat, error) {
	inv, err := q.Inv()
	if err != nil {
		return nil, err
	}
	return Acos(inv, epsilon)
}

// Acsc is asin of the inverse.
func Acsc(q *qrat.Rat, epsilon *qrat.Rat) (*qrat.Rat, error) {
	inv, err := q.Inv()
	if err != nil {
		return nil, err
	}
	return Asin(inv, epsilon)
}

// Acot evaluates the inverse cotangent, continuous from above at zero:
// results lie in (0, pi).
func Acot(q *qrat.Rat, epsilon *qrat.Rat) (*qrat.Rat, error) {
	if epsilon.IsZero() {
		return nil, ErrZeroEpsilon
	}
	if q.IsZero() {
		pi, err := Pi(epsilon.Scale(1))
		if err != nil {
			return nil, err
		}
		return pi.Scale(-1), nil
	}
	inv, err := q.Inv()
	if err != nil {
		return nil, err
	}
	if !q.IsNeg() {
		return Atan(inv, epsilon)
	}
	eps1 := epsilon.Scale(-2)
	t, err := Atan(inv, eps1)
	if err != nil {
		return nil, err
	}
	pi, err := Pi(eps1)
	if err != nil {
		return nil, err
	}
	return pi.Add(t).Mappr(epsilon, triground())
}

// Atan2 evaluates the angle of the point (x, y), continuous except on
// the negative real axis; results lie in (-pi, pi]. By convention y is
// the first argument.
func Atan2(qy, qx *qrat.Rat, epsilon *qrat.Rat) (*qrat.Rat, error) {
	if epsilon.IsZero() {
		return nil, ErrZeroEpsilon
	}
	if qy.IsZero() && qx.IsZero() {
		// Conform to the 4.3BSD ANSI/IEEE 754-1985 math library.
		return qrat.Zero, nil
	}
	if qy.IsZero() && qx.IsNeg() {
		return Pi(epsilon)
	}
	if qx.IsPos() {
		if qy.IsZero() {
			return qrat.Zero, nil
		}
		r, err := qy.Div(qx)
		if err != nil {
			return nil, err
		}
		return Atan(r, epsilon)
	}
	// Left half plane with nonzero y:
	// atan2(y,x) = 2*atan(sgn(y)*sqrt((x/y)^2+1) - x/y).
	eps2 := epsilon.Scale(-4)
	r, err := qy.Inv()
	if err != nil {
		return nil, err
	}
	r = qx.Mul(r)
	rnd := zint.RoundHalfEven
	if qy.IsNeg() {
		rnd |= zint.RoundNegate
	}
	root, err := Sqrt(r.Square().Inc(), eps2, rnd)
	if err != nil {
		return nil, err
	}
	t, err := Atan(root.Sub(r), epsilon.Scale(-1))
	if err != nil {
		return nil, err
	}
	return t.Scale(1), nil
}
