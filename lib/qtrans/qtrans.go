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

// Package qtrans evaluates transcendental functions over rationals to a
// caller-supplied error bound.
//
// Every routine takes a positive epsilon and returns a rational r with
// |r - true| below epsilon (or half of it when the configuration enables
// rounded trigonometry). The evaluations run on scaled integers: the
// argument is fixed-point shifted to a working precision derived from
// epsilon, partial sums develop in integer arithmetic, and the result is
// rounded back to a multiple of epsilon.
//
// Functions whose exact value leaves the real line (asin of 2, acosh
// below 1, ...) return ErrNotReal so a caller can route the argument to
// a complex-capable layer.
package qtrans

import (
	"errors"

	"github.com/ratcore/ratcore/lib/mathconf"
	"github.com/ratcore/ratcore/lib/qrat"
	"github.com/ratcore/ratcore/lib/zint"
)

var (
	// ErrZeroEpsilon rejects a non-positive error bound.
	ErrZeroEpsilon = errors.New("qtrans: zero epsilon value")
	// ErrNotReal signals a value not expressible as a real rational;
	// callers may route to a complex layer.
	ErrNotReal = errors.New("qtrans: value is not a real number")
	// ErrHugePrecision rejects evaluations needing more than 2^30
	// working bits.
	ErrHugePrecision = errors.New("qtrans: required precision exceeds working limit")
	// ErrLnZero rejects the logarithm of zero.
	ErrLnZero = errors.New("qtrans: logarithm of non-positive value")
	// ErrZeroDivide rejects zero arguments of pole-bearing functions.
	ErrZeroDivide = errors.New("qtrans: zero argument at a pole")
	// ErrNegPower rejects a negative base under a fractional power.
	ErrNegPower = errors.New("qtrans: negative base for power")
)

// maxWorkBits bounds every working precision.
const maxWorkBits = 1 << 30

// triground is the rounding mask for discarding guard bits.
func triground() zint.Round {
	return zint.Round(mathconf.Global.TrigRound)
}

// intSqrt64 is Newton's iteration on small nonnegative values.
func intSqrt64(k int64) int64 {
	if k <= 0 {
		return 0
	}
	s := k
	for {
		t := s
		s = (s + k/s) / 2
		if t <= s {
			return t
		}
	}
}

// budget splits a requested precision into the number of final
// double-angle (or squaring) steps n and the working bit count m, using
// the square-root-of-budget heuristic: h is ilog2 of the argument,
// bitnum the requested bits.
func budget(h, bitnum int64) (n, m int64, ok bool) {
	k := bitnum + h + 1
	if k < 0 {
		return 0, 0, false
	}
	s := intSqrt64(k) + 1
	if s < -h {
		s = -h
	}
	n = h + s
	m = bitnum + n
	for s > 0 {
		s >>= 1
		m++
	}
	return n, m, true
}

// SinCos evaluates sine and cosine together, accurate to 2^-bitnum.
//
// The argument is scaled to X/2^m and halved n extra times; the Taylor
// sums for sine and cosine develop in integers, and n double-angle
// passes (cos' = cos^2 - sin^2, sin' = 2 cos sin) restore the range.
func SinCos(q *qrat.Rat, bitnum int64) (sin, cos *qrat.Rat, err error) {
	if q.IsZero() {
		return qrat.Zero, qrat.One, nil
	}
	h, err := q.Abs().ILog2()
	if err != nil {
		return nil, nil, err
	}
	n, m, ok := budget(h, bitnum)
	if !ok {
		return qrat.Zero, qrat.One, nil
	}
	if m > maxWorkBits {
		return nil, nil, ErrHugePrecision
	}
	scaled := q.Scale(m - n)
	x, _, err := scaled.Num().Quo(scaled.Den(), triground())
	if err != nil {
		return nil, nil, err
	}
	if x.IsZero() {
		return qrat.Zero, qrat.One, nil
	}
	cossum, err := zint.BitValue(m)
	if err != nil {
		return nil, nil, err
	}
	sinsum := x
	mul := x
	d := int64(1)
	for {
		x = x.Neg()
		x = x.Mul(mul).Shift(-m)
		d++
		x, _, err = x.DivInt(d)
		if err != nil {
			return nil, nil, err
		}
		if x.IsZero() {
			break
		}
		cossum = cossum.Add(x)
		x = x.Mul(mul).Shift(-m)
		d++
		x, _, err = x.DivInt(d)
		if err != nil {
			return nil, nil, err
		}
		if x.IsZero() {
			break
		}
		sinsum = sinsum.Add(x)
	}
	for ; n > 0; n-- {
		c2 := cossum.Square()
		s2 := sinsum.Square()
		prod := cossum.Mul(sinsum)
		cossum = c2.Sub(s2).Shift(-m)
		sinsum = prod.Shift(1 - m)
	}
	cos, err = scaledToRat(cossum, m)
	if err != nil {
		return nil, nil, err
	}
	sin, err = scaledToRat(sinsum, m)
	if err != nil {
		return nil, nil, err
	}
	return sin, cos, nil
}

// scaledToRat converts an integer scaled by 2^m into a reduced rational,
// cancelling common low zero bits instead of running a gcd.
func scaledToRat(sum *zint.Int, m int64) (*qrat.Rat, error) {
	h := sum.LowBit()
	if sum.IsZero() {
		return qrat.Zero, nil
	}
	if m > h {
		den, err := zint.BitValue(m - h)
		if err != nil {
			return nil, err
		}
		return qrat.New(sum.Shift(-h), den)
	}
	return qrat.New(sum.Shift(-m), zint.One)
}

// Cos evaluates the cosine of q to within epsilon.
func Cos(q *qrat.Rat, epsilon *qrat.Rat) (*qrat.Rat, error) {
	if epsilon.IsZero() {
		return nil, ErrZeroEpsilon
	}
	if q.IsZero() {
		return qrat.One, nil
	}
	n, err := epsilon.ILog2()
	if err != nil {
		return nil, err
	}
	n = -n
	if n < 0 {
		return qrat.Zero, nil
	}
	_, cos, err := SinCos(q, n+2)
	if err != nil {
		return nil, err
	}
	return cos.Mappr(epsilon, triground())
}

// Sin evaluates the sine of q to within epsilon.
func Sin(q *qrat.Rat, epsilon *qrat.Rat) (*qrat.Rat, error) {
	if epsilon.IsZero() {
		return nil, ErrZeroEpsilon
	}
	n, err := epsilonBits(epsilon)
	if err != nil {
		return nil, err
	}
	if q.IsZero() || n < 0 {
		return qrat.Zero, nil
	}
	sin, _, err := SinCos(q, n+2)
	if err != nil {
		return nil, err
	}
	return sin.Mappr(epsilon, triground())
}

// epsilonBits is -ilog2(epsilon), the requested bit count.
func epsilonBits(epsilon *qrat.Rat) (int64, error) {
	n, err := epsilon.ILog2()
	if err != nil {
		return 0, err
	}
	return -n, nil
}

// Tan evaluates the tangent, retrying with more working bits when the
// cosine lands too close to a zero.
func Tan(q *qrat.Rat, epsilon *qrat.Rat) (*qrat.Rat, error) {
	if epsilon.IsZero() {
		return nil, ErrZeroEpsilon
	}
	if q.IsZero() {
		return qrat.Zero, nil
	}
	n, err := epsilon.ILog2()
	if err != nil {
		return nil, err
	}
	k := int64(4)
	if n > 0 {
		k = 4 + n/2
	}
	for {
		sin, cos, err := SinCos(q, 2*k-n)
		if err != nil {
			return nil, err
		}
		if cos.IsZero() {
			k = 2*k - n + 4
			continue
		}
		m, err := cos.ILog2()
		if err != nil {
			return nil, err
		}
		m = -m
		if m < k {
			tan, err := sin.Div(cos)
			if err != nil {
				return nil, err
			}
			return tan.Mappr(epsilon, triground())
		}
		k = m + 1
	}
}

// Cot evaluates the cotangent of nonzero q.
func Cot(q *qrat.Rat, epsilon *qrat.Rat) (*qrat.Rat, error) {
	if epsilon.IsZero() {
		return nil, ErrZeroEpsilon
	}
	if q.IsZero() {
		return nil, ErrZeroDivide
	}
	k, err := q.ILog2()
	if err != nil {
		return nil, err
	}
	k = -k
	n, err := epsilon.ILog2()
	if err != nil {
		return nil, err
	}
	if k < 0 {
		if n > 0 {
			k = n / 2
		} else {
			k = 0
		}
	}
	k += 4
	for {
		sin, cos, err := SinCos(q, 2*k-n)
		if err != nil {
			return nil, err
		}
		if sin.IsZero() {
			k = 2*k - n + 4
			continue
		}
		m, err := sin.ILog2()
		if err != nil {
			return nil, err
		}
		m = -m
		if m < k {
			cot, err := cos.Div(sin)
			if err != nil {
				return nil, err
			}
			return cot.Mappr(epsilon, triground())
		}
		k = m + 1
	}
}

// Sec evaluates the secant.
func Sec(q *qrat.Rat, epsilon *qrat.Rat) (*qrat.Rat, error) {
	if epsilon.IsZero() {
		return nil, ErrZeroEpsilon
	}
	if q.IsZero() {
		return qrat.One, nil
	}
	n, err := epsilon.ILog2()
	if err != nil {
		return nil, err
	}
	k := int64(4)
	if n > 0 {
		k = 4 + n/2
	}
	for {
		_, cos, err := SinCos(q, 2*k-n)
		if err != nil {
			return nil, err
		}
		if cos.IsZero() {
			k = 2*k - n + 4
			continue
		}
		m, err := cos.ILog2()
		if err != nil {
			return nil, err
		}
		m = -m
		if m < k {
			sec, err := cos.Inv()
			if err != nil {
				return nil, err
			}
			return sec.Mappr(epsilon, triground())
		}
		k = m + 1
	}
}

// Csc evaluates the cosecant of nonzero q.
func Csc(q *qrat.Rat, epsilon *qrat.Rat) (*qrat.Rat, error) {
	if epsilon.IsZero() {
		return nil, ErrZeroEpsilon
	}
	if q.IsZero() {
		return nil, ErrZeroDivide
	}
	k, err := q.ILog2()
	if err != nil {
		return nil, err
	}
	k = -k
	n, err := epsilon.ILog2()
	if err != nil {
		return nil, err
	}
	if k < 0 {
		if n > 0 {
			k = n / 2
		} else {
			k = 0
		}
	}
	k += 4
	for {
		sin, _, err := SinCos(q, 2*k-n)
		if err != nil {
			return nil, err
		}
		if sin.IsZero() {
			k = 2*k - n + 4
			continue
		}
		m, err := sin.ILog2()
		if err != nil {
			return nil, err
		}
		m = -m
		if m < k {
			csc, err := sin.Inv()
			if err != nil {
				return nil, err
			}
			return csc.Mappr(epsilon, triground())
		}
		k = m + 1
	}
}
