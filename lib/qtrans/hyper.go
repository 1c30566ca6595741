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
)

// Cosh evaluates the hyperbolic cosine: (exp(x) + 1/exp(x)) / 2.
func Cosh(q *qrat.Rat, epsilon *qrat.Rat) (*qrat.Rat, error) {
	if epsilon.IsZero() {
		return nil, ErrZeroEpsilon
	}
	e, err := Exp(q.Abs(), epsilon.Scale(-2))
	if err != nil {
		return nil, err
	}
	inv, err := e.Inv()
	if err != nil {
		return nil, err
	}
	return e.Add(inv).Scale(-1).Mappr(epsilon, triground())
}

// Sinh evaluates the hyperbolic sine: (exp(x) - 1/exp(x)) / 2.
func Sinh(q *qrat.Rat, epsilon *qrat.Rat) (*qrat.Rat, error) {
	if epsilon.IsZero() {
		return nil, ErrZeroEpsilon
	}
	if q.IsZero() {
		return qrat.Zero, nil
	}
	e, err := Exp(q.Abs(), epsilon.Scale(-3))
	if err != nil {
		return nil, err
	}
	inv, err := e.Inv()
	if err != nil {
		return nil, err
	}
	var t *qrat.Rat
	if q.IsPos() {
		t = e.Sub(inv)
	} else {
		t = inv.Sub(e)
	}
	return t.Scale(-1).Mappr(epsilon, triground())
}

// Tanh evaluates the hyperbolic tangent, saturating to one for
// arguments large relative to epsilon:
//
//	tanh(x) = (exp(2x) - 1) / (exp(2x) + 1)
func Tanh(q *qrat.Rat, epsilon *qrat.Rat) (*qrat.Rat, error) {
	if epsilon.IsZero() {
		return nil, ErrZeroEpsilon
	}
	n, err := epsilon.ILog2()
	if err != nil {
		return nil, err
	}
	if n > 0 || q.IsZero() {
		return qrat.Zero, nil
	}
	n = -n
	a := q.Abs()
	m := a.Mul(lge).Int64()
	if m > 1+n/2 {
		if q.IsNeg() {
			return qrat.NegOne, nil
		}
		return qrat.One, nil
	}
	e, err := expRel(a.Scale(1), 2+n)
	if err != nil {
		return nil, err
	}
	var t *qrat.Rat
	if m > 1+n/4 {
		t, err = qrat.Two.Div(e)
		if err != nil {
			return nil, err
		}
		t = qrat.One.Sub(t)
	} else {
		t, err = e.Dec().Div(e.Inc())
		if err != nil {
			return nil, err
		}
	}
	t, err = t.Mappr(epsilon, triground())
	if err != nil {
		return nil, err
	}
	if q.IsNeg() {
		return t.Neg(), nil
	}
	return t, nil
}

// Coth evaluates the hyperbolic cotangent of nonzero q:
// 1 + 2/(exp(2x) - 1).
func Coth(q *qrat.Rat, epsilon *qrat.Rat) (*qrat.Rat, error) {
	if epsilon.IsZero() {
		return nil, ErrZeroEpsilon
	}
	if q.IsZero() {
		return nil, ErrZeroDivide
	}
	a := q.Scale(1).Abs()
	k, err := a.ILog2()
	if err != nil {
		return nil, err
	}
	n, err := epsilon.ILog2()
	if err != nil {
		return nil, err
	}
	if k > 0 {
		k = lge.Mul(a).Int64()
	} else {
		k = 2 * k
	}
	k = 4 - k - n
	if k < 4 {
		k = 4
	}
	e, err := expRel(a, k)
	if err != nil {
		return nil, err
	}
	d := e.Dec()
	if d.IsZero() {
		return nil, ErrZeroDivide
	}
	t, err := d.Inv()
	if err != nil {
		return nil, err
	}
	t = t.Scale(1).Inc()
	if q.IsNeg() {
		t = t.Neg()
	}
	return t.Mappr(epsilon, triground())
}

// Sech evaluates the hyperbolic secant: 2/(exp(x) + 1/exp(x)).
func Sech(q *qrat.Rat, epsilon *qrat.Rat) (*qrat.Rat, error) {
	if epsilon.IsZero() {
		return nil, ErrZeroEpsilon
	}
	if q.IsZero() {
		return qrat.One, nil
	}
	a := q.Abs()
	k := int64(0)
	if a.Num().Cmp(a.Den()) >= 0 {
		k = lge.Mul(a).Int64()
	}
	n, err := epsilon.ILog2()
	if err != nil {
		return nil, err
	}
	if k+n > 1 {
		return qrat.Zero, nil
	}
	e, err := expRel(a, 4-k-n)
	if err != nil {
		return nil, err
	}
	inv, err := e.Inv()
	if err != nil {
		return nil, err
	}
	t, err := e.Add(inv).Inv()
	if err != nil {
		return nil, err
	}
	return t.Scale(1).Mappr(epsilon, triground())
}

// Csch evaluates the hyperbolic cosecant of nonzero q.
func Csch(q *qrat.Rat, epsilon *qrat.Rat) (*qrat.Rat, error) {
	if epsilon.IsZero() {
		return nil, ErrZeroEpsilon
	}
	if q.IsZero() {
		return nil, ErrZeroDivide
	}
	n, err := epsilon.ILog2()
	if err != nil {
		return nil, err
	}
	a := q.Abs()
	var k int64
	if a.Num().Cmp(a.Den()) >= 0 {
		k = lge.Mul(a).Int64()
	} else {
		il, err := a.ILog2()
		if err != nil {
			return nil, err
		}
		k = 2 * il
	}
	if k+n >= 1 {
		return qrat.Zero, nil
	}
	e, err := expRel(a, 4-k-n)
	if err != nil {
		return nil, err
	}
	inv, err := e.Inv()
	if err != nil {
		return nil, err
	}
	var t *qrat.Rat
	if q.IsNeg() {
		t = inv.Sub(e)
	} else {
		t = e.Sub(inv)
	}
	t, err = t.Inv()
	if err != nil {
		return nil, err
	}
	return t.Scale(1).Mappr(epsilon, triground())
}

// Acosh evaluates the inverse hyperbolic cosine for q >= 1:
// ln(q + sqrt(q^2 - 1)).
func Acosh(q *qrat.Rat, epsilon *qrat.Rat) (*qrat.Rat, error) {
	if epsilon.IsZero() {
		return nil, ErrZeroEpsilon
	}
	if q.IsOne() {
		return qrat.Zero, nil
	}
	if q.Num().Cmp(q.Den()) < 0 {
		return nil, ErrNotReal
	}
	n, err := epsilon.ILog2()
	if err != nil {
		return nil, err
	}
	eps1, err := qrat.BitValue(n - 3)
	if err != nil {
		return nil, err
	}
	root, err := Sqrt(q.Square().Dec(), eps1, triground())
	if err != nil {
		return nil, err
	}
	t, err := Ln(root.Add(q), eps1)
	if err != nil {
		return nil, err
	}
	return t.Mappr(epsilon, triground())
}

// Asinh evaluates the inverse hyperbolic sine: ln(x + sqrt(x^2 + 1)).
func Asinh(q *qrat.Rat, epsilon *qrat.Rat) (*qrat.Rat, error) {
	if epsilon.IsZero() {
		return nil, ErrZeroEpsilon
	}
	if q.IsZero() {
		return qrat.Zero, nil
	}
	neg := q.IsNeg()
	a := q.Abs()
	n, err := epsilon.ILog2()
	if err != nil {
		return nil, err
	}
	eps1, err := qrat.BitValue(n - 3)
	if err != nil {
		return nil, err
	}
	root, err := Sqrt(a.Square().Inc(), eps1, triground())
	if err != nil {
		return nil, err
	}
	t, err := Ln(root.Add(a), eps1)
	if err != nil {
		return nil, err
	}
	t, err = t.Mappr(epsilon, triground())
	if err != nil {
		return nil, err
	}
	if neg {
		return t.Neg(), nil
	}
	return t, nil
}

// Atanh evaluates the inverse hyperbolic tangent for |q| < 1:
// ln((1 + x)/(1 - x)) / 2.
func Atanh(q *qrat.Rat, epsilon *qrat.Rat) (*qrat.Rat, error) {
	if epsilon.IsZero() {
		return nil, ErrZeroEpsilon
	}
	if q.IsZero() {
		return qrat.Zero, nil
	}
	if q.Num().CmpAbs(q.Den()) >= 0 {
		return nil, ErrNotReal
	}
	r, err := q.Inc().Div(qrat.One.Sub(q))
	if err != nil {
		return nil, err
	}
	t, err := Ln(r, epsilon.Scale(1))
	if err != nil {
		return nil, err
	}
	return t.Scale(-1), nil
}

// Asech is acosh of the inverse.
func Asech(q *qrat.Rat, epsilon *qrat.Rat) (*qrat.Rat, error) {
	inv, err := q.Inv()
	if err != nil {
		return nil, err
	}
	return Acosh(inv, epsilon)
}

// Acsch is asinh of the inverse.
func Acsch(q *qrat.Rat, epsilon *qrat.Rat) (*qrat.Rat, error) {
	inv, err := q.Inv()
	if err != nil {
		return nil, err
	}
	return Asinh(inv, epsilon)
}

// Acoth is atanh of the inverse.
func Acoth(q *qrat.Rat, epsilon *qrat.Rat) (*qrat.Rat, error) {
	inv, err := q.Inv()
	if err != nil {
		return nil, err
	}
	return Atanh(inv, epsilon)
}
