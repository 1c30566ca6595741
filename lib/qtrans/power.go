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

// Power evaluates q1^q2 for rational exponents to within epsilon via
// exp(q2 * ln(q1)). A non-integral power needs a positive base. The
// intermediate epsilon shrinks by both the magnitude estimate of the
// result and the exponent so the final rounding stays inside the bound.
func Power(q1, q2 *qrat.Rat, epsilon *qrat.Rat) (*qrat.Rat, error) {
	if epsilon.IsZero() {
		return nil, ErrZeroEpsilon
	}
	if q1.IsZero() && q2.IsNeg() {
		return nil, qrat.ErrDivByZero
	}
	if q2.IsZero() || q1.IsOne() {
		return qrat.One, nil
	}
	if q1.IsZero() {
		return qrat.Zero, nil
	}
	if q1.IsNeg() {
		if !q2.IsInt() {
			return nil, ErrNegPower
		}
		r, err := Power(q1.Neg(), q2, epsilon)
		if err != nil || q2.Num().IsEven() {
			return r, err
		}
		return r.Neg(), nil
	}
	if q2.IsOne() {
		return q1.Mappr(epsilon, triground())
	}
	// Work with a base at least one.
	base := q1
	pow := q2
	if q1.Num().Cmp(q1.Den()) < 0 {
		var err error
		base, err = q1.Inv()
		if err != nil {
			return nil, err
		}
		pow = q2.Neg()
	}
	if pow.IsOne() {
		return base.Mappr(epsilon, triground())
	}
	m, err := base.ILog2()
	if err != nil {
		return nil, err
	}
	n, err := epsilon.ILog2()
	if err != nil {
		return nil, err
	}
	// Estimate ilog2 of the result.
	if pow.IsNeg() {
		if m > 0 {
			m = qrat.FromInt64(m).Mul(pow).Int64()
		} else {
			t, err := base.Dec().Div(base)
			if err != nil {
				return nil, err
			}
			m = t.Mul(pow).Mul(lge).Int64()
		}
	} else {
		if m > 0 {
			m = qrat.FromInt64(m + 1).Mul(pow).Int64()
		} else {
			m = base.Dec().Mul(pow).Mul(lge).Int64()
		}
	}
	if m > maxWorkBits {
		return nil, ErrHugePrecision
	}
	m++
	if m < n {
		return qrat.Zero, nil
	}
	eps2, err := epsilon.Div(pow)
	if err != nil {
		return nil, err
	}
	eps2 = eps2.Scale(-m - 4).Abs()
	lnv, err := Ln(base, eps2)
	if err != nil {
		return nil, err
	}
	t := lnv.Mul(pow)
	var res *qrat.Rat
	if t.IsNeg() {
		res, err = expRel(t.Neg(), m-n+3)
		if err != nil {
			return nil, err
		}
		res, err = res.Inv()
		if err != nil {
			return nil, err
		}
	} else {
		res, err = expRel(t, m-n+3)
		if err != nil {
			return nil, err
		}
	}
	return res.Mappr(epsilon, triground())
}

// Root evaluates the k-th root of q for a positive integer k: the power
// q^(1/k), with odd roots of negative values handled by symmetry.
func Root(q, k *qrat.Rat, epsilon *qrat.Rat) (*qrat.Rat, error) {
	if epsilon.IsZero() {
		return nil, ErrZeroEpsilon
	}
	if k.IsNeg() || k.IsZero() || k.IsFrac() {
		return nil, qrat.ErrNotInteger
	}
	if q.IsZero() || q.IsOne() || k.IsOne() {
		return q, nil
	}
	if k.IsTwo() {
		return Sqrt(q, epsilon, triground())
	}
	neg := q.IsNeg()
	if neg {
		if k.Num().IsEven() {
			return nil, ErrNotReal
		}
		q = q.Abs()
	}
	inv, err := k.Inv()
	if err != nil {
		return nil, err
	}
	res, err := Power(q, inv, epsilon)
	if err != nil {
		return nil, err
	}
	if neg {
		return res.Neg(), nil
	}
	return res, nil
}
