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

// Ln evaluates the natural logarithm of nonzero q (by absolute value) to
// within epsilon. |q| reduces into (1/2, 2) by repeated square roots,
// each halving the logarithm; with y = (X-D)/(X+D) the series
// 2*(y + y^3/3 + y^5/5 + ...) evaluates ln of the reduced value, and the
// n reductions return as a 2^n factor.
func Ln(q *qrat.Rat, epsilon *qrat.Rat) (*qrat.Rat, error) {
	if q.IsZero() {
		return nil, ErrLnZero
	}
	if epsilon.IsZero() {
		return nil, ErrZeroEpsilon
	}
	if q.IsUnit() {
		return qrat.Zero, nil
	}
	q = q.Abs()
	neg := q.Num().Cmp(q.Den()) < 0
	if neg {
		var err error
		q, err = q.Inv()
		if err != nil {
			return nil, err
		}
	}
	k, err := q.ILog2()
	if err != nil {
		return nil, err
	}
	il, err := epsilon.ILog2()
	if err != nil {
		return nil, err
	}
	m := -il
	if m < 0 {
		m = 0
	}
	for h := k; h > 0; h /= 2 {
		m++ // one more bit per square root below
	}
	m += 18 // 8 more sqrts, 8 for rounding, 2 for epsilon/4
	if m > maxWorkBits {
		return nil, ErrHugePrecision
	}
	scaled := q.Scale(m - k)
	x, _, err := scaled.Num().Quo(scaled.Den(), triground())
	if err != nil {
		return nil, err
	}
	d, err := zint.BitValue(m)
	if err != nil {
		return nil, err
	}
	t, err := zint.BitValue(m - 8)
	if err != nil {
		return nil, err
	}
	bound := d.Add(t)

	n := int64(1) // counts 1 + number of square roots
	for k > 0 || x.Cmp(bound) > 0 {
		n++
		x, _, err = x.Shift(m + (k & 1)).Sqrt(triground())
		if err != nil {
			return nil, err
		}
		k /= 2
	}
	pow := x.Sub(d)
	den := x.Add(d)
	pow, _, err = pow.Shift(m).Quo(den, triground())
	if err != nil {
		return nil, err
	}
	sum := pow
	mul := pow.Square().Shift(-m)
	dn := int64(1)
	for {
		pow = pow.Mul(mul).Shift(-m)
		dn += 2
		term, _, err := pow.DivInt(dn)
		if err != nil {
			return nil, err
		}
		if term.IsZero() {
			break
		}
		sum = sum.Add(term)
	}
	// Result is 2^n * sum / 2^m.
	low := sum.LowBit()
	sum = sum.CopySign(neg)
	var res *qrat.Rat
	if low+n >= m {
		res = qrat.FromInt(sum.Shift(n - m))
	} else {
		dv, err := zint.BitValue(m - low - n)
		if err != nil {
			return nil, err
		}
		res, err = qrat.New(sum.Shift(-low), dv)
		if err != nil {
			return nil, err
		}
	}
	return res.Mappr(epsilon, triground())
}

// Cached logarithm divisors, each keyed by the epsilon last used.
var (
	ln2Epsilon  *qrat.Rat
	ln2Value    *qrat.Rat
	ln10Epsilon *qrat.Rat
	ln10Value   *qrat.Rat
	lnNEpsilon  *qrat.Rat
	lnNBase     *qrat.Rat
	lnNValue    *qrat.Rat
)

// Log evaluates the base 10 logarithm: ln(q) / ln(10), with ln(10)
// cached against the last epsilon. Small powers of ten short-cut to
// exact integers.
func Log(q *qrat.Rat, epsilon *qrat.Rat) (*qrat.Rat, error) {
	if q.IsZero() {
		return nil, ErrLnZero
	}
	if epsilon.IsZero() {
		return nil, ErrZeroEpsilon
	}
	if q.IsInt() && q.IsPos() && !q.Num().Ge8192b() && q.Num().IsEven() {
		ilog, is10, err := q.Num().Log10()
		if err == nil && is10 {
			return qrat.FromInt64(ilog), nil
		}
	}
	lnq, err := Ln(q, epsilon)
	if err != nil {
		return nil, err
	}
	if lnq.IsZero() {
		return lnq, nil
	}
	if ln10Epsilon == nil || !ln10Epsilon.Eq(epsilon) || ln10Value == nil {
		ln10Epsilon = epsilon
		ln10Value, err = Ln(qrat.Ten, epsilon)
		if err != nil {
			return nil, err
		}
	}
	return lnq.Div(ln10Value)
}

// Log2 evaluates the base 2 logarithm: ln(q) / ln(2), exact for powers
// of two.
func Log2(q *qrat.Rat, epsilon *qrat.Rat) (*qrat.Rat, error) {
	if q.IsZero() {
		return nil, ErrLnZero
	}
	if epsilon.IsZero() {
		return nil, ErrZeroEpsilon
	}
	if n, ok := q.IsPowerOfTwo(); ok {
		return qrat.FromInt64(n), nil
	}
	lnq, err := Ln(q, epsilon)
	if err != nil {
		return nil, err
	}
	if lnq.IsZero() {
		return lnq, nil
	}
	if ln2Epsilon == nil || !ln2Epsilon.Eq(epsilon) || ln2Value == nil {
		ln2Epsilon = epsilon
		ln2Value, err = Ln(qrat.Two, epsilon)
		if err != nil {
			return nil, err
		}
	}
	return lnq.Div(ln2Value)
}

// LogN evaluates the logarithm of q to an arbitrary base n:
// ln(q) / ln(n). The divisor cache keys on both the base and the
// epsilon.
func LogN(q, n *qrat.Rat, epsilon *qrat.Rat) (*qrat.Rat, error) {
	if q.IsZero() {
		return nil, ErrLnZero
	}
	if epsilon.IsZero() {
		return nil, ErrZeroEpsilon
	}
	if n.IsZero() || n.IsOne() {
		return nil, qrat.ErrBadBase
	}
	lnq, err := Ln(q, epsilon)
	if err != nil {
		return nil, err
	}
	if lnq.IsZero() {
		return lnq, nil
	}
	if lnNEpsilon == nil || !lnNEpsilon.Eq(epsilon) ||
		lnNBase == nil || !lnNBase.Eq(n) || lnNValue == nil {
		lnNEpsilon = epsilon
		lnNBase = n
		lnNValue, err = Ln(n, epsilon)
		if err != nil {
			return nil, err
		}
	}
	return lnq.Div(lnNValue)
}
