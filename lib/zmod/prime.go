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

package zmod

import (
	"github.com/golang/glog"

	"github.com/ratcore/ratcore/lib/mathconf"
	"github.com/ratcore/ratcore/lib/zint"
	"github.com/ratcore/ratcore/lib/zrand"
)

// ptestPrecheck bounds the tiny-prime trial division run before the
// Miller-Rabin rounds.
const ptestPrecheck = 101

// PrimeTest is the Miller-Rabin probabilistic primality test (algorithm
// P of Knuth Vol 2 section 4.5.4). Only a FALSE answer is exact: a
// composite passes abs(count) rounds with probability below
// (1/4)^abs(count).
//
// The witnesses are selected by skip: 0 draws them uniformly from the
// random number generator, 1 walks the primes 2, 3, 5, ..., and any
// other value walks consecutive integers from skip mod z. A negative
// count omits the trivial-factor precheck.
func PrimeTest(z *zint.Int, count int64, skip *zint.Int) (bool, error) {
	z = z.Abs()
	if len(z.Limbs()) == 1 && z.Limbs()[0] <= 1 {
		return false, nil
	}
	if z.IsEven() {
		return z.IsTwo(), nil
	}
	if z.IsTiny() && z.Limbs()[0] == 3 {
		return true, nil
	}

	if count >= 0 {
		if !z.Ge32b() {
			return z.IsSmallPrime() == 1, nil
		}
		if z.SmallFactor(ptestPrecheck) != 0 {
			return false, nil
		}
		if count == 0 {
			// No round was run, so no round failed.
			return true, nil
		}
	} else {
		count = -count
	}
	if z.Len() < mathconf.Global.Redc2 {
		return redcPrimeTest(z, count, skip)
	}

	zm1 := z.Sub(zint.One)
	ik := zm1.LowBit()
	z1 := zm1.Shift(-ik)

	var base *zint.Int
	witType := 2
	var limit int64
	primeIdx := uint64(1) // walks 2, 3, 5, ... via NextPrime
	switch {
	case skip.IsZero():
		witType = 0
	case skip.IsOne():
		witType = 1
		base = zint.Two
		limit = 1 << 16
		if !z.Ge16b() {
			limit = z.Int64()
		}
	default:
		if skip.Cmp(z) >= 0 || skip.IsNeg() {
			var err error
			base, _, err = skip.Mod(z, 0)
			if err != nil {
				return false, err
			}
		} else {
			base = skip
		}
	}

	for i := int64(0); i < count; i++ {
		switch witType {
		case 0:
			var err error
			base, err = zrand.Range(zint.Two, zm1)
			if err != nil {
				return false, err
			}
		case 1:
			if i > 0 {
				primeIdx = zint.NewUint(primeIdx).NextPrime()
				if primeIdx == 0 || primeIdx == 1 ||
					int64(primeIdx) >= limit {
					return true, nil
				}
				base = zint.NewUint(primeIdx)
			} else {
				primeIdx = 2
			}
		default:
			if i > 0 {
				base = base.Add(zint.One)
			}
		}

		x, err := PowerMod(base, z1, z)
		if err != nil {
			return false, err
		}
		ij := int64(0)
		for {
			if x.IsOne() {
				if ij != 0 {
					return false, nil
				}
				break
			}
			if x.Eq(zm1) {
				break
			}
			ij++
			if ij >= ik {
				return false, nil
			}
			x, _, err = x.Square().Mod(z, 0)
			if err != nil {
				return false, err
			}
		}
	}
	return true, nil
}

// redcPrimeTest runs the Miller-Rabin rounds in REDC form; z is odd,
// greater than 3, and below the redc2 threshold.
func redcPrimeTest(z *zint.Int, count int64, skip *zint.Int) (bool, error) {
	rp, err := New(z)
	if err != nil {
		return false, err
	}
	redcM1 := z.Sub(rp.one)
	zm1 := z.Sub(zint.One)
	ik := zm1.LowBit()
	z1 := zm1.Shift(-ik)

	var base *zint.Int
	witType := 2
	var limit int64
	primeIdx := uint64(2)
	switch {
	case skip.IsZero():
		witType = 0
	case skip.IsOne():
		witType = 1
		base, err = rp.Encode(zint.Two)
		if err != nil {
			return false, err
		}
		limit = 1 << 16
		if !z.Ge16b() {
			limit = z.Int64()
		}
	default:
		base, err = rp.Encode(skip)
		if err != nil {
			return false, err
		}
	}

	for i := int64(0); i < count; i++ {
		switch witType {
		case 0:
			for {
				base, err = zrand.Range(zint.One, z)
				if err != nil {
					return false, err
				}
				if !base.Eq(rp.one) && !base.Eq(redcM1) {
					break
				}
			}
		case 1:
			if i > 0 {
				primeIdx = zint.NewUint(primeIdx).NextPrime()
				if primeIdx == 0 || primeIdx == 1 ||
					int64(primeIdx) >= limit {
					return true, nil
				}
				base, err = rp.Encode(zint.NewUint(primeIdx))
				if err != nil {
					return false, err
				}
			} else {
				primeIdx = 2
			}
		default:
			if i > 0 {
				base = base.Add(rp.one)
				if base.Cmp(z) >= 0 {
					base = base.Sub(z)
				}
			}
		}

		x, err := rp.Power(base, z1)
		if err != nil {
			return false, err
		}
		ij := int64(0)
		for {
			if x.Eq(rp.one) {
				if ij != 0 {
					return false, nil
				}
				break
			}
			if x.Eq(redcM1) {
				break
			}
			ij++
			if ij >= ik {
				return false, nil
			}
			x, err = rp.Square(x)
			if err != nil {
				return false, err
			}
		}
	}
	return true, nil
}

// NextCand finds the least integer greater than abs(z), congruent to res
// modulo abs(mod), that passes count rounds of PrimeTest. It returns
// false when no such integer can exist (the residue class shares a
// factor with the modulus).
func NextCand(z *zint.Int, count int64, skip, res, mod *zint.Int) (*zint.Int, bool, error) {
	z = z.Abs()
	mod = mod.Abs()
	if mod.IsZero() {
		if res.Cmp(z) > 0 {
			ok, err := PrimeTest(res, count, skip)
			if err != nil {
				return nil, false, err
			}
			if ok {
				return res, true, nil
			}
		}
		return nil, false, nil
	}
	if z.IsZero() && mod.IsOne() {
		return zint.Two, true, nil
	}
	t, _, err := res.Sub(z).Mod(mod, 0)
	if err != nil {
		return nil, false, err
	}
	var cand *zint.Int
	if !t.IsZero() {
		cand = z.Add(t)
	} else {
		cand = z.Add(mod)
	}
	if ok, err := PrimeTest(cand, count, skip); err != nil {
		return nil, false, err
	} else if ok {
		return cand, true, nil
	}
	if !cand.Gcd(mod).IsOne() {
		return nil, false, nil
	}
	if cand.IsEven() {
		cand = cand.Add(mod)
		if ok, err := PrimeTest(cand, count, skip); err != nil {
			return nil, false, err
		} else if ok {
			return cand, true, nil
		}
	}
	// cand is now odd and coprime to mod; step by mod (doubled when
	// odd) to stay odd.
	step := mod
	if mod.IsOdd() {
		step = mod.Shift(1)
	}
	glog.V(2).Infof("zmod: candidate walk from %d bit value", cand.HighBit()+1)
	for {
		cand = cand.Add(step)
		ok, err := PrimeTest(cand, count, skip)
		if err != nil {
			return nil, false, err
		}
		if ok {
			return cand, true, nil
		}
	}
}

// PrevCand finds the greatest positive integer less than abs(z),
// congruent to res modulo abs(mod), that passes count rounds of
// PrimeTest.
func PrevCand(z *zint.Int, count int64, skip, res, mod *zint.Int) (*zint.Int, bool, error) {
	z = z.Abs()
	mod = mod.Abs()
	if mod.IsZero() {
		if res.IsPos() && res.Cmp(z) < 0 {
			ok, err := PrimeTest(res, count, skip)
			if err != nil {
				return nil, false, err
			}
			if ok {
				return res, true, nil
			}
		}
		return nil, false, nil
	}
	t, _, err := z.Sub(res).Mod(mod, 0)
	if err != nil {
		return nil, false, err
	}
	var cand *zint.Int
	if !t.IsZero() {
		cand = z.Sub(t)
	} else {
		cand = z.Sub(mod)
	}
	if cand.IsNeg() {
		return nil, false, nil
	}
	if ok, err := PrimeTest(cand, count, skip); err != nil {
		return nil, false, err
	} else if ok {
		return cand, true, nil
	}
	if !cand.Gcd(mod).IsOne() {
		r, _, err := cand.Mod(mod, 0)
		if err != nil {
			return nil, false, err
		}
		if ok, err := PrimeTest(r, count, skip); err != nil {
			return nil, false, err
		} else if ok {
			return r, true, nil
		}
		if r.IsZero() {
			if ok, err := PrimeTest(mod, count, skip); err != nil {
				return nil, false, err
			} else if ok {
				return mod, true, nil
			}
		}
		return nil, false, nil
	}
	if cand.IsEven() {
		cand = cand.Sub(mod)
		if cand.IsNeg() {
			return nil, false, nil
		}
		if ok, err := PrimeTest(cand, count, skip); err != nil {
			return nil, false, err
		} else if ok {
			return cand, true, nil
		}
	}
	step := mod
	if mod.IsOdd() {
		step = mod.Shift(1)
	}
	for {
		cand = cand.Sub(step)
		if cand.IsNeg() {
			cand = cand.Add(mod)
			if cand.IsTwo() {
				return cand, true, nil
			}
			return nil, false, nil
		}
		ok, err := PrimeTest(cand, count, skip)
		if err != nil {
			return nil, false, err
		}
		if ok {
			return cand, true, nil
		}
	}
}
