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
	"github.com/ratcore/ratcore/lib/zint"
)

// Mappr approximates q to the nearest multiple of e, with the rounding
// direction selected by rnd: the quotient k of q/e is rounded by the
// integer divide and the result is the reduced k*e.
func (q *Rat) Mappr(e *Rat, rnd zint.Round) (*Rat, error) {
	if e.IsZero() {
		return q, nil
	}
	if q.IsZero() {
		return Zero, nil
	}
	t1 := q.num.Mul(e.den)
	t2 := q.den.Mul(e.num)
	mul, _, err := t1.Quo(t2, rnd)
	if err != nil {
		return nil, err
	}
	if mul.IsZero() {
		return Zero, nil
	}
	rn, rd := zint.Reduce(mul, e.den)
	return mkrat(rn.Mul(e.num), rd), nil
}

// Round rounds q to the given number of decimal places. The RoundSigFigs
// bit counts significant digits instead.
func (q *Rat) Round(places int64, rnd zint.Round) (*Rat, error) {
	if q.IsZero() {
		return Zero, nil
	}
	if rnd&zint.RoundSigFigs != 0 {
		il, err := q.ILog10()
		if err != nil {
			return nil, err
		}
		places -= il + 1
	}
	e, err := TenPow(-places)
	if err != nil {
		return nil, err
	}
	return q.Mappr(e, rnd&31)
}

// BRound rounds q to the given number of binary places.
func (q *Rat) BRound(places int64, rnd zint.Round) (*Rat, error) {
	if q.IsZero() {
		return Zero, nil
	}
	if rnd&zint.RoundSigFigs != 0 {
		il, err := q.ILog2()
		if err != nil {
			return nil, err
		}
		places -= il + 1
	}
	e, err := BitValue(-places)
	if err != nil {
		return nil, err
	}
	return q.Mappr(e, rnd&31)
}

// Trunc truncates q toward zero to places decimal places.
func (q *Rat) Trunc(places int64) (*Rat, error) {
	e, err := TenPow(-places)
	if err != nil {
		return nil, err
	}
	return q.Mappr(e, zint.RoundQuotSign)
}

// BTrunc truncates q toward zero to places binary places.
func (q *Rat) BTrunc(places int64) (*Rat, error) {
	e, err := BitValue(-places)
	if err != nil {
		return nil, err
	}
	return q.Mappr(e, zint.RoundQuotSign)
}

// Quo returns the integer quotient of q1/q2 under the rounding mask.
func (q1 *Rat) Quo(q2 *Rat, rnd zint.Round) (*Rat, error) {
	if q2.IsZero() {
		return nil, ErrDivByZero
	}
	if q1.IsZero() {
		return Zero, nil
	}
	n := q1.num.Mul(q2.den)
	d := q1.den.Mul(q2.num)
	t, _, err := n.Quo(d, rnd)
	if err != nil {
		return nil, err
	}
	return mkrat(t, zint.One), nil
}

// Mod returns q1 - q2*Quo(q1, q2), the remainder under the rounding
// mask.
func (q1 *Rat) Mod(q2 *Rat, rnd zint.Round) (*Rat, error) {
	quo, err := q1.Quo(q2, rnd)
	if err != nil {
		return nil, err
	}
	return q1.Sub(q2.Mul(quo)), nil
}

// QuoMod returns quotient and remainder together, plus whether the
// remainder is nonzero.
func (q1 *Rat) QuoMod(q2 *Rat, rnd zint.Round) (*Rat, *Rat, bool, error) {
	quo, err := q1.Quo(q2, rnd)
	if err != nil {
		return nil, nil, false, err
	}
	rem := q1.Sub(q2.Mul(quo))
	return quo, rem, !rem.IsZero(), nil
}

// Near compares abs(q1-q2) against abs(epsilon): negative when closer
// than epsilon, zero at exactly epsilon, positive beyond.
func (q1 *Rat) Near(q2, epsilon *Rat) int {
	e := epsilon.Abs()
	if q1 == q2 {
		if e.IsZero() {
			return 0
		}
		return -1
	}
	if e.IsZero() {
		if q1.Eq(q2) {
			return 0
		}
		return 1
	}
	return q1.Sub(q2).Abs().Cmp(e)
}

// CfAppr walks the continued fraction expansion of q. When abs(epsilon)
// is at least one it is a denominator budget: the result is the nearest
// rational whose denominator does not exceed the bound, interpolating
// with a partial quotient when the bound falls between convergents.
// Otherwise the result is the smallest-denominator rational within
// abs(epsilon) of q, on the side selected by rnd and the signs.
func (q *Rat) CfAppr(epsilon *Rat, rnd zint.Round) (*Rat, error) {
	if epsilon.IsZero() || q.IsInt() {
		return q, nil
	}
	esign := epsilon.IsNeg()
	eabs := epsilon.Abs()

	bndden := eabs.num.CmpAbs(eabs.den) >= 0
	var denbnd *zint.Int
	var f, g *zint.Int
	if bndden {
		var err error
		denbnd, _, err = eabs.num.Quo(eabs.den, 0)
		if err != nil {
			return nil, err
		}
		if q.den.Cmp(denbnd) <= 0 {
			return q, nil
		}
	} else {
		e1 := epsilon
		if rnd&zint.RoundNearest != 0 {
			e1 = epsilon.Scale(-1)
		}
		t, gg := zint.Reduce(q.den, e1.den)
		g = gg
		f = e1.num.Mul(t).Abs()
	}

	var s int
	if rnd&zint.RoundNearest != 0 && !q.den.IsTwo() {
		s = 0
	} else {
		if esign {
			s = -1
		} else {
			s = 1
		}
		if rnd&zint.RoundUp != 0 {
			s = -s
		}
		if rnd&zint.RoundQuotSign != 0 && (q.IsNeg() != esign) {
			s = -s
		}
		if rnd&zint.RoundDivisorSign != 0 && esign {
			s = -s
		}
	}

	oldnum := zint.One
	oldden := zint.Zero
	oldrem := q.den
	num, rem, _, err := q.num.QuoRem(q.den, 0)
	if err != nil {
		return nil, err
	}
	den := zint.One
	var t1, t2 *zint.Int
	for {
		if !bndden {
			t1 = f.Mul(den)
			t2 = g.Mul(rem).Abs()
			if rem.IsZero() || (s >= 0 && t1.Cmp(t2) >= 0) {
				break
			}
		}
		quot, nrem, _, err := oldrem.QuoRem(rem, 0)
		if err != nil {
			return nil, err
		}
		oldrem, rem = rem, nrem
		oldden, den = den, quot.Mul(den).Add(oldden)
		oldnum, num = num, quot.Mul(num).Add(oldnum)
		if bndden && den.Cmp(denbnd) >= 0 {
			break
		}
		s = -s
	}

	useOld := false
	var k *zint.Int
	if bndden {
		if s > 0 {
			useOld = true
		} else {
			t, _, err := den.Sub(denbnd).Quo(oldden, zint.RoundUp)
			if err != nil {
				return nil, err
			}
			k = t
		}
	} else {
		if s < 0 {
			return q, nil
		}
		t3 := t1.Sub(t2)
		t4 := f.Mul(oldden).Add(g.Mul(oldrem).Abs())
		k, _, err = t3.Quo(t4, 0)
		if err != nil {
			return nil, err
		}
	}
	if !useOld && k != nil && !k.IsZero() {
		num = num.Sub(k.Mul(oldnum))
		den = den.Sub(k.Mul(oldden))
	}
	if bndden && s == 0 {
		rem = rem.Add(k.Mul(oldrem))
		useOld = rem.Mul(oldden).Cmp(den.Mul(oldrem)) >= 0
	}
	if useOld {
		return New(oldnum, oldden)
	}
	return New(num, den)
}

// CfSim returns the nearest above, nearest below, or nearest number with
// denominator less than that of q, the choice among possibilities being
// determined by rnd.
func (q *Rat) CfSim(rnd zint.Round) (*Rat, error) {
	if q.IsZero() && rnd&(zint.RoundQuotSign|zint.RoundToParity|zint.RoundNearest) != 0 {
		return Zero, nil
	}
	var s bool
	if rnd&(zint.RoundToParity|zint.RoundNearest) != 0 {
		s = q.IsNeg()
	} else {
		s = rnd&zint.RoundUp != 0
		if rnd&zint.RoundQuotSign != 0 {
			s = s != q.IsNeg()
		}
	}
	if q.IsInt() {
		if rnd&zint.RoundToParity != 0 && rnd&zint.RoundNearest == 0 {
			return Zero, nil
		}
		if s {
			return q.Inc(), nil
		}
		return q.Dec(), nil
	}
	if q.den.IsTwo() {
		up := s
		if rnd&zint.RoundNearest != 0 {
			up = !up
		}
		var t *zint.Int
		if up {
			t = q.num.Add(zint.One)
		} else {
			t = q.num.Sub(zint.One)
		}
		return mkrat(t.Shift(-1), zint.One), nil
	}
	si := -1
	if s {
		si = 1
	}
	if rnd&(zint.RoundToParity|zint.RoundNearest) != 0 {
		si = 0
	}
	den1, err := q.num.ModInv(q.den)
	if err != nil {
		return nil, err
	}
	if si >= 0 {
		den2 := q.den.Sub(den1)
		if si > 0 || (den1.Cmp(den2) < 0) != (rnd&zint.RoundNearest == 0) {
			t := den2.Mul(q.num).Add(zint.One)
			n, err := t.Equo(q.den)
			if err != nil {
				return nil, err
			}
			return mkrat(n, den2), nil
		}
	}
	t := den1.Mul(q.num).Sub(zint.One)
	n, err := t.Equo(q.den)
	if err != nil {
		return nil, err
	}
	return mkrat(n, den1), nil
}
