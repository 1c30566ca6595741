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

// lge approximates log2(e); a size estimate, not a precision-bearing
// constant.
var lge = mustRat(36744, 25469)

func mustRat(n, d int64) *qrat.Rat {
	q, err := qrat.FromPair(n, d)
	if err != nil {
		panic(err)
	}
	return q
}

// Exp evaluates the exponential function to the nearest or next to
// nearest multiple of epsilon. The magnitude estimate m bounds exp(q)
// below 2^(m+1); arguments driving the result below epsilon return
// zero, and negative arguments invert the positive evaluation.
func Exp(q *qrat.Rat, epsilon *qrat.Rat) (*qrat.Rat, error) {
	if epsilon.IsZero() {
		return nil, ErrZeroEpsilon
	}
	if q.IsZero() {
		return qrat.One, nil
	}
	m := q.Mul(lge).Int64()
	if m > maxWorkBits {
		return nil, ErrHugePrecision
	}
	n, err := epsilon.ILog2()
	if err != nil {
		return nil, err
	}
	if m < n {
		return qrat.Zero, nil
	}
	t, err := expRel(q.Abs(), m-n+1)
	if err != nil {
		return nil, err
	}
	if q.IsNeg() {
		t, err = t.Inv()
		if err != nil {
			return nil, err
		}
	}
	return t.Mappr(epsilon, triground())
}

// expRel evaluates exp(q) for q >= 0 with a relative error of
// 2^-bitnum: scaled integer Taylor summation followed by repeated
// squaring, with the square-root-of-budget split between the two.
func expRel(q *qrat.Rat, bitnum int64) (*qrat.Rat, error) {
	h, err := q.ILog2()
	if err != nil {
		return nil, err
	}
	n, m, ok := budget(h, bitnum)
	if !ok {
		return qrat.One, nil
	}
	if m > maxWorkBits {
		return nil, ErrHugePrecision
	}
	scaled := q.Scale(m - n)
	x, _, err := scaled.Num().Quo(scaled.Den(), triground())
	if err != nil {
		return nil, err
	}
	if x.IsZero() {
		return qrat.One, nil
	}
	sum, err := zint.BitValue(m)
	if err != nil {
		return nil, err
	}
	term := x
	d := int64(1)
	for {
		sum = sum.Add(term)
		term = term.Mul(x).Shift(-m)
		d++
		term, _, err = term.DivInt(d)
		if err != nil {
			return nil, err
		}
		if term.IsZero() {
			break
		}
	}
	// Square n times; k tracks overflow bits shifted out so the value
	// stays in the working window.
	k := int64(0)
	b, err := zint.BitValue(2*m + 1)
	if err != nil {
		return nil, err
	}
	for ; n > 0; n-- {
		k *= 2
		sq := sum.Square()
		if sq.Cmp(b) >= 0 {
			sum = sq.Shift(-m - 1)
			k++
		} else {
			sum = sq.Shift(-m)
		}
	}
	h = sum.LowBit()
	if m > h+k {
		den, err := zint.BitValue(m - h - k)
		if err != nil {
			return nil, err
		}
		return qrat.New(sum.Shift(-h), den)
	}
	return qrat.FromInt(sum.Shift(k - m)), nil
}
