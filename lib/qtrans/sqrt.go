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

// Sqrt evaluates the square root of nonnegative q to a multiple of
// epsilon. Exact rational squares return exactly; otherwise the radicand
// scales by the squared epsilon denominator so one integer square root
// lands within the requested grid. The rounding mask extends the integer
// divide flags: RoundNearest selects the closer multiple with ties
// decided by the other bits, and RoundNegate negates the result.
func Sqrt(q *qrat.Rat, epsilon *qrat.Rat, rnd zint.Round) (*qrat.Rat, error) {
	if q.IsNeg() {
		return nil, zint.ErrNegSqrt
	}
	if q.IsZero() {
		return qrat.Zero, nil
	}
	if epsilon.IsZero() {
		return nil, ErrZeroEpsilon
	}
	sign := rnd&zint.RoundNegate != 0
	es := int64(0)
	if epsilon.IsNeg() {
		es = 1
	}
	sg := int64(0)
	if sign {
		sg = 1
	}
	rs := int64(rnd) & 25
	if rs&8 == 0 {
		rs ^= es
	}
	if rnd&zint.RoundQuotSign != 0 {
		rs ^= sg ^ es
	}
	if rnd&zint.RoundDivisorSign != 0 {
		rs ^= es
	}
	exactInt := q.IsInt() && epsilon.Num().IsUnit() && epsilon.IsInt()
	if rnd&zint.RoundSigFigs != 0 || exactInt ||
		(q.Num().IsSquare() && q.Den().IsSquare()) {
		t1, s1, err := q.Num().Sqrt(zint.Round(rs))
		if err != nil {
			return nil, err
		}
		if exactInt {
			if t1.IsZero() {
				return qrat.Zero, nil
			}
			return qrat.FromInt(t1.CopySign(sign)), nil
		}
		if s1 == 0 {
			t2, s2, err := q.Den().Sqrt(0)
			if err != nil {
				return nil, err
			}
			if s2 == 0 {
				return qrat.New(t1.CopySign(sign), t2)
			}
		}
	}

	radicand := epsilon.Den().Square().Mul(q.Num())
	divisor := epsilon.Num().Square().Mul(q.Den())
	var mul *zint.Int
	var up int64
	if rnd&zint.RoundNearest != 0 {
		quo, s1, err := radicand.Shift(2).Quo(divisor, zint.RoundNearest)
		if err != nil {
			return nil, err
		}
		var r2 zint.Round
		if s1 != 0 {
			if s1 < 0 {
				r2 = zint.RoundUp
			}
		} else {
			r2 = zint.RoundNearest
		}
		t1, s2, err := quo.Sqrt(r2)
		if err != nil {
			return nil, err
		}
		mul = t1.Shift(-1)
		if t1.IsOdd() {
			up = int64(s1) + int64(s2)
		} else {
			up = -1
		}
	} else {
		quo, s1, err := radicand.Quo(divisor, 0)
		if err != nil {
			return nil, err
		}
		t1, s2, err := quo.Sqrt(0)
		if err != nil {
			return nil, err
		}
		mul = t1
		if s1+s2 != 0 {
			up = 0
		} else {
			up = -1
		}
	}
	if up == 0 {
		if rnd&zint.RoundToParity != 0 {
			up = (rs ^ int64(mul.Limbs()[0])) & 1
		} else {
			up = rs ^ sg
		}
	}
	if up > 0 {
		mul = mul.Add(zint.One)
	}
	if mul.IsZero() {
		return qrat.Zero, nil
	}
	rn, rd := zint.Reduce(mul, epsilon.Den().Abs())
	return qrat.New(rn.CopySign(sign).Mul(epsilon.Num().Abs()), rd)
}

// Hypot evaluates sqrt(q1^2 + q2^2) to within epsilon.
func Hypot(q1, q2 *qrat.Rat, epsilon *qrat.Rat) (*qrat.Rat, error) {
	if epsilon.IsZero() {
		return nil, ErrZeroEpsilon
	}
	if q2.IsZero() {
		return Sqrt(q1.Square(), epsilon, triground())
	}
	if q1.IsZero() {
		return Sqrt(q2.Square(), epsilon, triground())
	}
	return Sqrt(q1.Square().Add(q2.Square()), epsilon, triground())
}

// LegToLeg converts one leg of a unit-hypotenuse right triangle into the
// other: sqrt(1 - q^2) for |q| < 1, negated on request.
func LegToLeg(q *qrat.Rat, epsilon *qrat.Rat, wantNeg bool) (*qrat.Rat, error) {
	if epsilon.IsZero() {
		return nil, ErrZeroEpsilon
	}
	if q.Num().CmpAbs(q.Den()) >= 0 {
		if q.IsUnit() {
			return qrat.Zero, nil
		}
		return nil, ErrNotReal
	}
	if q.IsZero() {
		if wantNeg {
			return qrat.NegOne, nil
		}
		return qrat.One, nil
	}
	rnd := triground()
	if wantNeg {
		rnd |= zint.RoundNegate
	}
	return Sqrt(qrat.One.Sub(q.Square()), epsilon, rnd)
}
