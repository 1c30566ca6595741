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

// Caches of the most recent pi family evaluations, keyed by the epsilon
// they were computed for.
var (
	lastPiEpsilon    *qrat.Rat
	lastPiValue      *qrat.Rat
	lastPi180Epsilon *qrat.Rat
	lastPi180Value   *qrat.Rat
	lastPi200Epsilon *qrat.Rat
	lastPi200Value   *qrat.Rat
)

// Pi evaluates pi to within epsilon using the Ramanujan-style series
//
//	pi = 1 / sum( comb(2N,N)^3 * (42N+5) / 2^(12N+4) )
//
// whose terms each contribute about six bits. The combinatorial numbers
// build recursively via comb(2(N+1), N+1) = 2*comb(2N,N)*(2N+1)/(N+1),
// and the power-of-two denominators become shifts of the running sum.
func Pi(epsilon *qrat.Rat) (*qrat.Rat, error) {
	if epsilon.IsZero() {
		return nil, ErrZeroEpsilon
	}
	if lastPiEpsilon != nil && epsilon.Eq(lastPiEpsilon) {
		return lastPiValue, nil
	}
	il, err := epsilon.ILog2()
	if err != nil {
		return nil, err
	}
	bits := -il + 4
	if bits < 4 {
		bits = 4
	}
	comb := zint.One
	sum := zint.NewInt(5)
	n := int64(0)
	shift := int64(4)
	for {
		n++
		t := int64(1 + (n & 1))
		comb, _, err = comb.DivInt(n / (3 - t))
		if err != nil {
			return nil, err
		}
		comb = comb.MulInt(t * (2*n - 1))
		term := comb.Square().Mul(comb).MulInt(42*n + 5)
		sum = sum.Shift(12).Add(term)
		shift += 12
		if shift-term.HighBit() >= bits {
			break
		}
	}
	inv, err := qrat.New(zint.One, sum)
	if err != nil {
		return nil, err
	}
	r, err := inv.Scale(shift).Mappr(epsilon, triground())
	if err != nil {
		return nil, err
	}
	lastPiEpsilon = epsilon
	lastPiValue = r
	return r, nil
}

// PiDiv180 returns pi/180, the degree-to-radian factor.
func PiDiv180(epsilon *qrat.Rat) (*qrat.Rat, error) {
	if epsilon.IsZero() {
		return nil, ErrZeroEpsilon
	}
	if lastPi180Epsilon != nil && epsilon.Eq(lastPi180Epsilon) {
		return lastPi180Value, nil
	}
	pi, err := Pi(epsilon)
	if err != nil {
		return nil, err
	}
	r, err := pi.DivInt(180)
	if err != nil {
		return nil, err
	}
	lastPi180Epsilon = epsilon
	lastPi180Value = r
	return r, nil
}

// PiDiv200 returns pi/200, the gradian-to-radian factor.
func PiDiv200(epsilon *qrat.Rat) (*qrat.Rat, error) {
	if epsilon.IsZero() {
		return nil, ErrZeroEpsilon
	}
	if lastPi200Epsilon != nil && epsilon.Eq(lastPi200Epsilon) {
		return lastPi200Value, nil
	}
	pi, err := Pi(epsilon)
	if err != nil {
		return nil, err
	}
	r, err := pi.DivInt(200)
	if err != nil {
		return nil, err
	}
	lastPi200Epsilon = epsilon
	lastPi200Value = r
	return r, nil
}
