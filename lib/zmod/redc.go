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

// Package zmod provides modular arithmetic on extended precision
// integers: Montgomery (REDC) reduction with a per-modulus state cache,
// the three-strategy modular exponentiation, and probabilistic
// primality testing.
//
// A REDC state represents values as x*2^(32*wordlen) mod m for odd
// positive m. Modular multiplication in that form needs no trial
// division: a fused multiply-and-reduce pass replaces it. Addition and
// subtraction act on REDC-format values unchanged.
//
// Like the integer layer, this package is single-threaded by contract:
// the REDC cache and the large-modulus estimator cache are process-wide.
package zmod

import (
	"errors"

	"github.com/ratcore/ratcore/lib/mathconf"
	"github.com/ratcore/ratcore/lib/zint"
)

var (
	ErrEvenModulus = errors.New("zmod: REDC requires a positive odd modulus")
	ErrBadModulus  = errors.New("zmod: non-positive modulus")
	ErrNegPower    = errors.New("zmod: negative power")
)

const baseB = 32

// REDC carries the per-modulus precomputation for Montgomery reduction.
type REDC struct {
	wordLen int       // limbs in the binary modulus 2^(32*wordLen)
	mod     *zint.Int // modulus, positive and odd
	inv     *zint.Int // minv(-mod, 2^(32*wordLen))
	one     *zint.Int // REDC format of 1
}

// New builds the REDC state for an odd positive modulus. The binary
// modulus is 2 raised to the modulus bit length rounded up to a limb
// boundary.
func New(mod *zint.Int) (*REDC, error) {
	if mod.IsEven() || mod.IsNeg() || mod.IsZero() {
		return nil, ErrEvenModulus
	}
	rp := &REDC{mod: mod}
	rp.inv = redcModInv(mod)
	bit := mod.HighBit() + 1
	if bit%baseB != 0 {
		bit += baseB - bit%baseB
	}
	t, err := zint.BitValue(bit)
	if err != nil {
		return nil, err
	}
	rp.one, _, err = t.Mod(mod, 0)
	if err != nil {
		return nil, err
	}
	rp.wordLen = int(bit / baseB)
	return rp, nil
}

// Mod returns the modulus this state reduces with.
func (rp *REDC) Mod() *zint.Int { return rp.mod }

// One returns the REDC representation of 1.
func (rp *REDC) One() *zint.Int { return rp.one }

// redcModInv evaluates minv(-z, 2^(32*N)) for odd positive z of N limbs,
// one limb of the inverse at a time.
func redcModInv(z *zint.Int) *zint.Int {
	m := z.Limbs()
	n := len(m)
	tmp := make([]uint32, n)
	tmp[0] = 1

	// inv = -m[0]^-1 mod 2^32 by lifting one bit per step.
	h := 1 + m[0]
	bit := uint32(1)
	inv := uint32(1)
	for h != 0 {
		bit <<= 1
		if bit&h != 0 {
			inv |= bit
			h += bit * m[0]
		}
	}

	j := n
	a0 := 0
	for j > 0 {
		j--
		v := inv * tmp[a0]
		f := uint64(v)*uint64(m[0]) + uint64(tmp[a0])
		tmp[a0] = v
		for i := 1; i <= j; i++ {
			f = uint64(v)*uint64(m[i]) + uint64(tmp[a0+i]) + f>>baseB
			tmp[a0+i] = uint32(f)
		}
		for j > 0 {
			a0++
			if tmp[a0] != 0 {
				break
			}
			j--
		}
	}
	return zint.FromLimbs(tmp)
}

// Encode converts a number into REDC format. The input can be negative
// or out of modulo range. The values 0, 1, -1 and 2 come straight from
// the precomputed format of 1 since addition and subtraction act
// normally on REDC values.
func (rp *REDC) Encode(z *zint.Int) (*zint.Int, error) {
	if z.IsZero() {
		return zint.Zero, nil
	}
	if z.IsOne() {
		return rp.one, nil
	}
	if z.IsUnit() {
		return rp.mod.Sub(rp.one), nil
	}
	if z.IsTwo() {
		t := rp.one.Add(rp.one)
		if t.Cmp(rp.mod) < 0 {
			return t, nil
		}
		return t.Sub(rp.mod), nil
	}
	t := z.Shift(int64(rp.wordLen) * baseB)
	if rp.wordLen < mathconf.Global.Pow2 {
		r, _, err := t.Mod(rp.mod, 0)
		return r, err
	}
	est, err := estimatorFor(rp.mod)
	if err != nil {
		return nil, err
	}
	return est.reduce(t)
}

// Decode runs the REDC reduction, converting a REDC-format value back to
// an ordinary residue.
func (rp *REDC) Decode(z *zint.Int) (*zint.Int, error) {
	if z.IsZero() {
		return zint.Zero, nil
	}
	if z.Eq(rp.one) {
		return zint.One, nil
	}
	sign := z.IsNeg()
	z = z.Abs()
	modlen := rp.wordLen

	// Fold limbs above the binary modulus back in afterward.
	var ztop *zint.Int
	if z.Len() > modlen {
		ztop = z.Shift(-int64(modlen) * baseB)
		if ztop.Cmp(rp.mod) >= 0 {
			var err error
			ztop, _, err = ztop.Mod(rp.mod, 0)
			if err != nil {
				return nil, err
			}
		}
		low := make([]uint32, modlen)
		copy(low, z.Limbs()[:modlen])
		z = zint.FromLimbs(low)
		if z.IsZero() {
			return ztop, nil
		}
	}

	var res *zint.Int
	if rp.mod.Len() < mathconf.Global.Pow2 {
		// Schoolbook inner loop: one limb of the value is absorbed
		// per pass by adding muln*mod and shifting down a limb.
		mv := rp.mod.Limbs()
		zv := z.Limbs()
		ninv := rp.inv.Limbs()[0]
		acc := make([]uint32, modlen+1)
		for i := 0; i < modlen; i++ {
			f := uint64(acc[0])
			if i < len(zv) {
				f += uint64(zv[i])
			}
			muln := uint32(f) * ninv
			f = (uint64(muln)*uint64(mv[0]) + f) >> baseB
			for j := 1; j < modlen; j++ {
				f += uint64(muln)*uint64(mv[j]) + uint64(acc[j])
				acc[j-1] = uint32(f)
				f >>= baseB
			}
			acc[modlen-1] = uint32(f)
		}
		res = zint.FromLimbs(acc[:modlen])
	} else {
		// Large modulus: res = (z + ((z*inv) mod 2^bits) * mod) /
		// 2^bits. The division is exact, so the quotient is one
		// more than the shifted product.
		t := z.Mul(rp.inv)
		if t.Len() > modlen {
			low := make([]uint32, modlen)
			copy(low, t.Limbs()[:modlen])
			t = zint.FromLimbs(low)
		}
		t = t.Mul(rp.mod)
		if t.Len() > modlen {
			res = t.Shift(-int64(modlen) * baseB).Add(zint.One)
		} else {
			res = zint.One
		}
	}
	if ztop != nil {
		res = res.Add(ztop)
	}
	if res.Cmp(rp.mod) >= 0 {
		res = res.Sub(rp.mod)
	}
	if sign && !res.IsZero() {
		res = rp.mod.Sub(res)
	}
	return res, nil
}

// Mul multiplies two REDC-format values. Below the redc2 threshold the
// multiply and reduction fuse into a single doubly nested pass with no
// shifting of partial products; above it an ordinary multiply feeds
// Decode.
func (rp *REDC) Mul(z1, z2 *zint.Int) (*zint.Int, error) {
	sign := z1.IsNeg() != z2.IsNeg()
	z1 = z1.Abs()
	z2 = z2.Abs()
	var err error
	if z1.Cmp(rp.mod) >= 0 {
		if z1, _, err = z1.Mod(rp.mod, 0); err != nil {
			return nil, err
		}
	}
	if z2.Cmp(rp.mod) >= 0 {
		if z2, _, err = z2.Mod(rp.mod, 0); err != nil {
			return nil, err
		}
	}
	if z1.IsZero() || z2.IsZero() {
		return zint.Zero, nil
	}
	if z1.Eq(rp.one) {
		return rp.signed(z2, sign), nil
	}
	if z2.Eq(rp.one) {
		return rp.signed(z1, sign), nil
	}
	if rp.mod.Len() >= mathconf.Global.Redc2 {
		res, err := rp.Decode(z1.Mul(z2))
		if err != nil {
			return nil, err
		}
		return rp.signed(res, sign), nil
	}

	modlen := rp.wordLen
	mv := rp.mod.Limbs()
	ninv := rp.inv.Limbs()[0]
	v1 := z1.Limbs()
	v2 := z2.Limbs()
	acc := make([]uint32, modlen)
	var topdigit uint32

	pass := func(mulb uint64, withZ2 bool) {
		var lo2 uint64
		if withZ2 {
			lo2 = mulb * uint64(v2[0])
		}
		s1 := lo2 + uint64(acc[0])
		muln := uint32(s1) * ninv
		s2 := uint64(muln)*uint64(mv[0]) + uint64(uint32(s1))
		carry := s1>>baseB + s2>>baseB
		j := 1
		if withZ2 {
			for ; j < len(v2); j++ {
				s1 = mulb*uint64(v2[j]) + uint64(acc[j]) + uint64(uint32(carry))
				s2 = uint64(muln)*uint64(mv[j]) + uint64(uint32(s1))
				carry = s1>>baseB + s2>>baseB + carry>>baseB
				acc[j-1] = uint32(s2)
			}
		}
		for ; j < modlen; j++ {
			s2 = uint64(muln)*uint64(mv[j]) + uint64(acc[j]) + uint64(uint32(carry))
			carry = s2>>baseB + carry>>baseB
			acc[j-1] = uint32(s2)
		}
		carry += uint64(topdigit)
		acc[modlen-1] = uint32(carry)
		topdigit = uint32(carry >> baseB)
	}

	for i := 0; i < len(v1); i++ {
		pass(uint64(v1[i]), true)
	}
	for i := len(v1); i < modlen; i++ {
		pass(0, false)
	}

	res := zint.FromLimbs(acc)
	if topdigit == 0 && res.Cmp(rp.mod) < 0 {
		return rp.signed(res, sign), nil
	}
	// A single subtraction reduces the result below the modulus; the
	// unstored top digit would cancel to zero.
	res = res.Sub(rp.mod)
	if res.IsNeg() {
		res = res.Add(modShift(rp))
	}
	return rp.signed(res, sign), nil
}

// modShift is 2^(32*wordLen), the weight of the unstored top digit.
func modShift(rp *REDC) *zint.Int {
	t, _ := zint.BitValue(int64(rp.wordLen) * baseB)
	return t
}

func (rp *REDC) signed(z *zint.Int, sign bool) *zint.Int {
	if sign && !z.IsZero() {
		return rp.mod.Sub(z)
	}
	return z
}

// Square squares a REDC-format value via the fused pass.
func (rp *REDC) Square(z *zint.Int) (*zint.Int, error) {
	return rp.Mul(z.Abs(), z.Abs())
}

// Power raises a REDC-format value to an ordinary nonnegative power,
// examining the power four bits at a time against a 16 entry table of
// low powers, with short-cuts when the base is the REDC image of 1 or
// -1.
func (rp *REDC) Power(z1, z2 *zint.Int) (*zint.Int, error) {
	if z2.IsNeg() {
		return nil, ErrNegPower
	}
	if rp.mod.IsUnit() {
		return zint.Zero, nil
	}
	sign := z2.IsOdd() && z1.IsNeg()
	z1 = z1.Abs()
	var err error
	if z1.Cmp(rp.mod) >= 0 {
		if z1, _, err = z1.Mod(rp.mod, 0); err != nil {
			return nil, err
		}
	}
	if z1.IsZero() {
		if z2.IsZero() {
			return zint.One, nil
		}
		return zint.Zero, nil
	}
	if z1.Eq(rp.one) {
		return rp.signed(rp.one, sign), nil
	}
	// The REDC image of -1 is mod - one.
	negOne := rp.mod.Sub(rp.one)
	if z1.Eq(negOne) {
		if z2.IsOdd() != sign {
			return negOne, nil
		}
		return rp.one, nil
	}

	return windowPower(z1, z2, rp.one, rp.Mul)
}

// windowPower is the shared width-4 window exponentiation, parameterized
// by the modular multiply. one is the multiplicative identity in the
// chosen representation.
func windowPower(base, power, one *zint.Int,
	mul func(*zint.Int, *zint.Int) (*zint.Int, error)) (*zint.Int, error) {

	const powBits = 4
	const powNums = 1 << powBits

	var lowPowers [powNums]*zint.Int
	lowPowers[0] = one
	lowPowers[1] = base
	ans := one

	pv := power.Limbs()
	hp := len(pv) - 1
	curHalf := pv[hp]
	curShift := baseB - powBits
	for curShift > 0 && curHalf>>uint(curShift) == 0 {
		curShift -= powBits
	}

	for {
		curPow := curHalf >> uint(curShift) & (powNums - 1)
		if lowPowers[curPow] == nil {
			var modPow *zint.Int
			if curPow&1 != 0 {
				modPow = base
			} else {
				modPow = one
			}
			for curBit := uint32(2); curBit <= curPow; curBit *= 2 {
				if lowPowers[curBit] == nil {
					sq, err := mul(lowPowers[curBit/2], lowPowers[curBit/2])
					if err != nil {
						return nil, err
					}
					lowPowers[curBit] = sq
				}
				if curBit&curPow != 0 {
					t, err := mul(lowPowers[curBit], modPow)
					if err != nil {
						return nil, err
					}
					modPow = t
				}
			}
			lowPowers[curPow] = modPow
		}
		if curPow != 0 {
			t, err := mul(ans, lowPowers[curPow])
			if err != nil {
				return nil, err
			}
			ans = t
		}
		curShift -= powBits
		if curShift < 0 {
			if hp == 0 {
				break
			}
			hp--
			curHalf = pv[hp]
			curShift = baseB - powBits
		}
		for i := 0; i < powBits; i++ {
			t, err := mul(ans, ans)
			if err != nil {
				return nil, err
			}
			ans = t
		}
	}
	return ans, nil
}
