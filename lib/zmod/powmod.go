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
)

// estimator reduces against a fixed modulus by multiplying with the
// precomputed reciprocal modinv = floor(2^(2*32*n) / mod) and shifting,
// followed by at most two correction subtractions. The last modulus seen
// is cached so repeated callers skip the reciprocal division.
type estimator struct {
	mod    *zint.Int
	modinv *zint.Int
	n      int // limbs in mod
}

var lastEstimator *estimator

// estimatorFor returns the estimator for mod, reusing the cached one
// when the modulus matches.
func estimatorFor(mod *zint.Int) (*estimator, error) {
	if lastEstimator != nil && lastEstimator.mod.Eq(mod) {
		return lastEstimator, nil
	}
	n := mod.Len()
	t, err := zint.BitValue(2 * int64(n) * baseB)
	if err != nil {
		return nil, err
	}
	inv, _, err := t.Quo(mod, 0)
	if err != nil {
		return nil, err
	}
	glog.V(2).Infof("zmod: new reciprocal estimator for %d limb modulus", n)
	lastEstimator = &estimator{mod: mod, modinv: inv, n: n}
	return lastEstimator, nil
}

// reduce returns z mod mod for nonnegative z.
func (e *estimator) reduce(z *zint.Int) (*zint.Int, error) {
	for z.Cmp(e.mod) >= 0 {
		if z.Len() > 2*e.n {
			// Reduce the top window first, then fold it back.
			hi := z.Shift(-int64(e.n) * baseB)
			rhi, err := e.reduce(hi)
			if err != nil {
				return nil, err
			}
			low := make([]uint32, e.n)
			copy(low, z.Limbs()[:min(e.n, z.Len())])
			z = rhi.Shift(int64(e.n) * baseB).Add(zint.FromLimbs(low))
			continue
		}
		// q estimate: drop n-1 limbs, multiply by the reciprocal,
		// drop n+1 more.
		q := z.Shift(-int64(e.n-1) * baseB).Mul(e.modinv).
			Shift(-int64(e.n+1) * baseB)
		z = z.Sub(q.Mul(e.mod))
		for sub := 0; z.Cmp(e.mod) >= 0; sub++ {
			if sub >= 2 {
				// The estimate is at most two off; anything
				// more means the caller fed a foreign value.
				break
			}
			z = z.Sub(e.mod)
		}
		if z.IsNeg() {
			z = z.Add(e.mod)
		}
	}
	return z, nil
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// PowerMod computes z1^z2 mod z3 for positive z3 and nonnegative z2,
// choosing among three strategies by modulus size and parity: the
// reciprocal estimator for large moduli, REDC for odd moduli below the
// redc2 threshold, and a direct width-4 window otherwise.
func PowerMod(z1, z2, z3 *zint.Int) (*zint.Int, error) {
	if z3.IsNeg() || z3.IsZero() {
		return nil, ErrBadModulus
	}
	if z2.IsNeg() {
		return nil, ErrNegPower
	}
	if (z1.IsZero() && !z2.IsZero()) || z3.IsUnit() {
		return zint.Zero, nil
	}
	if z2.IsZero() {
		return zint.One, nil
	}
	if z3.IsTwo() {
		if z1.IsOdd() {
			return zint.One, nil
		}
		return zint.Zero, nil
	}
	if z1.IsUnit() && (!z1.IsNeg() || z2.IsEven()) {
		return zint.One, nil
	}

	if z1.IsNeg() || z1.Cmp(z3) >= 0 {
		var err error
		z1, _, err = z1.Mod(z3, 0)
		if err != nil {
			return nil, err
		}
	}
	if z1.IsZero() {
		return zint.Zero, nil
	}
	if z1.IsOne() {
		return zint.One, nil
	}

	if z3.Len() >= mathconf.Global.Pow2 {
		est, err := estimatorFor(z3)
		if err != nil {
			return nil, err
		}
		mul := func(a, b *zint.Int) (*zint.Int, error) {
			return est.reduce(a.Mul(b))
		}
		return windowPower(z1, z2, zint.One, mul)
	}

	if z3.Len() < mathconf.Global.Redc2 && z3.IsOdd() {
		rp, err := Find(z3)
		if err != nil {
			return nil, err
		}
		enc, err := rp.Encode(z1)
		if err != nil {
			return nil, err
		}
		pow, err := rp.Power(enc, z2)
		if err != nil {
			return nil, err
		}
		return rp.Decode(pow)
	}

	mul := func(a, b *zint.Int) (*zint.Int, error) {
		r, _, err := a.Mul(b).Mod(z3, 0)
		return r, err
	}
	return windowPower(z1, z2, zint.One, mul)
}
