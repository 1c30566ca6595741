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

package zint

const (
	maxMapPrime = 65521       // largest prime below 2^16
	maxMapVal   = 65535       // largest value covered by the odd bitmap
	maxSmPrime  = 0xfffffffb  // largest 32-bit prime (2^32-5)
	nxtMapPrime = 65537       // smallest prime above 2^16
	nxtSmPrime  = 4294967311  // smallest prime above 2^32 (2^32+15)
	jmpMod      = 3 * 5 * 7 * 11
	jmpSize     = 2 * 4 * 6 * 10 // odd residues mod jmpMod*2 coprime to 3,5,7,11
)

// Small-prime machinery, sieved once at startup rather than embedded:
// an odd-number bitmap below 2^16, the ascending table of odd primes
// terminated by a sentinel 1, and the jump table that walks values not
// divisible by 3, 5, 7 or 11.
var (
	prMap    [8192]uint8        // bit (n>>1)&7 of byte n>>4, odd n <= 65535
	primes16 []uint32           // odd primes 3 .. 65521, then sentinel 1
	jmpIndx  [jmpMod]int16      // per odd residue: jump offset or ~cycle position
	jmpTab   [jmpSize]uint8     // gaps between successive coprime candidates
)

func prMapBit(n uint64) bool {
	return prMap[n>>4]&(1<<(n>>1&7)) != 0
}

func init() {
	// Sieve of the odd numbers below 2^16.
	sieve := make([]bool, 65536) // sieve[i] true means composite
	for p := 3; p*p <= 65535; p += 2 {
		if sieve[p] {
			continue
		}
		for m := p * p; m <= 65535; m += 2 * p {
			sieve[m] = true
		}
	}
	for n := 3; n <= 65535; n += 2 {
		if !sieve[n] {
			prMap[n>>4] |= 1 << (n >> 1 & 7)
			primes16 = append(primes16, uint32(n))
		}
	}
	primes16 = append(primes16, 1) // sentinel

	// Jump table: gaps between consecutive odd values coprime to
	// 3*5*7*11 within one period, plus the per-residue index.
	var cands []int
	for x := 1; x < 2*jmpMod; x += 2 {
		if x%3 != 0 && x%5 != 0 && x%7 != 0 && x%11 != 0 {
			cands = append(cands, x)
		}
	}
	for i, x := range cands {
		next := cands[0] + 2*jmpMod
		if i+1 < len(cands) {
			next = cands[i+1]
		}
		jmpTab[i] = uint8(next - x)
		jmpIndx[(x>>1)%jmpMod] = int16(-i)
	}
	// Non-coprime residues store the distance to the next candidate.
	ci := 0
	for x := 1; x < 2*jmpMod; x += 2 {
		if ci < len(cands) && x == cands[ci] {
			ci++
			continue
		}
		next := cands[0] + 2*jmpMod
		if ci < len(cands) {
			next = cands[ci]
		}
		jmpIndx[(x>>1)%jmpMod] = int16(next - x)
	}
}

// jumper walks candidate values not divisible by 3, 5, 7 or 11.
type jumper int

// firstJump returns the smallest candidate >= x (odd x) and its jumper.
func firstJump(x uint64) (uint64, jumper) {
	t := jmpIndx[(x>>1)%jmpMod]
	if t > 0 {
		x += uint64(t)
	}
	return x, jumper(-jmpIndx[(x>>1)%jmpMod])
}

// next returns the gap to the following candidate and advances.
func (j *jumper) next() uint64 {
	g := jmpTab[*j]
	if int(*j) < jmpSize-1 {
		*j++
	} else {
		*j = 0
	}
	return uint64(g)
}

// prev steps the jumper back and returns the gap to the prior candidate.
func (j *jumper) prev() uint64 {
	if *j > 0 {
		*j--
	} else {
		*j = jmpSize - 1
	}
	return uint64(jmpTab[*j])
}

// IsSmallPrime answers primality exactly for values below 2^32:
// 1 prime, 0 composite, -1 too large to answer.
func (z *Int) IsSmallPrime() int {
	z = z.Abs()
	if len(z.v) == 1 && z.v[0] <= 1 {
		return 0
	}
	if z.Ge32b() {
		return -1
	}
	if z.IsEven() {
		if z.IsTwo() {
			return 1
		}
		return 0
	}
	n := z.Uint64()
	if n <= maxMapVal {
		if prMapBit(n) {
			return 1
		}
		return 0
	}
	isqr := usqrt(n)
	for _, p := range primes16 {
		if p == 1 || uint64(p) > isqr {
			return 1
		}
		if n%uint64(p) == 0 {
			return 0
		}
	}
	return 1
}

// nextPrime32 returns the smallest prime greater than n, valid for
// 2 <= n < 2^32-5.
func nextPrime32(n uint64) uint64 {
	if n&1 == 1 {
		n += 2
	} else {
		n++
	}
	if n <= maxMapPrime {
		for !prMapBit(n) {
			n += 2
		}
		return n
	}
	// The factor limit below never needs raising: a prime gap cannot
	// carry the search across two perfect squares.
	isqr := usqrt(n) + 1
	if isqr&1 == 0 {
		isqr--
	}
	n, j := firstJump(n)
	for {
		composite := false
		for _, p := range primes16[4:] {
			if p == 1 || uint64(p) > isqr {
				break
			}
			if n%uint64(p) == 0 {
				composite = true
				break
			}
		}
		if !composite {
			return n
		}
		n += j.next()
	}
}

// prevPrime32 returns the largest prime smaller than n for 4 < n < 2^32.
func prevPrime32(n uint64) uint64 {
	if n > nxtMapPrime {
		if n&1 == 1 {
			n -= 2
		} else {
			n--
		}
		isqr := usqrt(n) + 1
		if isqr&1 == 0 {
			isqr--
		}
		var j jumper
		if t := jmpIndx[(n>>1)%jmpMod]; t > 0 {
			// Not a candidate: step up to the next one, then one
			// jump back down past the search point.
			n += uint64(t)
			j = jumper(-jmpIndx[(n>>1)%jmpMod])
			n -= j.prev()
		} else {
			j = jumper(-t)
		}
		for {
			composite := false
			for _, p := range primes16 {
				if p == 1 || uint64(p) > isqr {
					break
				}
				if n%uint64(p) == 0 {
					composite = true
					break
				}
			}
			if !composite {
				return n
			}
			n -= j.prev()
		}
	}
	if n <= maxMapPrime {
		if n&1 == 1 {
			n -= 2
		} else {
			n--
		}
		for !prMapBit(n) {
			n -= 2
		}
		return n
	}
	// maxMapPrime < n <= nxtMapPrime
	return maxMapPrime
}

// NextPrime returns the smallest 32-bit-range prime greater than abs(z):
// the prime itself, 0 when the next prime is 2^32+15, or 1 when abs(z)
// is at least 2^32.
func (z *Int) NextPrime() uint64 {
	z = z.Abs()
	if z.Ge32b() {
		return 1
	}
	if len(z.v) == 1 && z.v[0] <= 1 {
		return 2
	}
	n := z.Uint64()
	if n >= maxSmPrime {
		return 0
	}
	return nextPrime32(n)
}

// PrevPrime returns the largest prime smaller than abs(z): the prime, 0
// when abs(z) <= 2, or 1 when abs(z) is at least 2^32.
func (z *Int) PrevPrime() uint64 {
	z = z.Abs()
	if z.Ge32b() {
		return 1
	}
	n := z.Uint64()
	switch n {
	case 0, 1, 2:
		return 0
	case 3:
		return 2
	}
	return prevPrime32(n)
}

// Pix returns the number of primes not exceeding abs(z), or -1 when
// abs(z) is 2^32 or more. Counting runs a segmented sieve over the
// 16-bit prime table.
func (z *Int) Pix() int64 {
	if z.IsNeg() {
		return 0
	}
	if z.Ge32b() {
		return -1
	}
	x := z.Uint64()
	if x < 2 {
		return 0
	}
	count := int64(1) // the prime 2
	if x <= maxMapVal {
		for n := uint64(3); n <= x; n += 2 {
			if prMapBit(n) {
				count++
			}
		}
		return count
	}
	count += int64(len(primes16) - 1)
	const seg = 1 << 16
	buf := make([]bool, seg)
	for lo := uint64(65536); lo <= x; lo += seg {
		hi := lo + seg - 1
		if hi > x {
			hi = x
		}
		for i := range buf {
			buf[i] = false
		}
		for _, p := range primes16 {
			if p == 1 {
				break
			}
			pp := uint64(p)
			start := (lo + pp - 1) / pp * pp
			for m := start; m <= hi; m += pp {
				buf[m-lo] = true
			}
		}
		for n := lo | 1; n <= hi; n += 2 {
			if !buf[n-lo] {
				count++
			}
		}
	}
	return count
}

// SmallFactor returns the smallest prime factor of abs(z) that does not
// exceed limit, or 0 when none is found below both the limit and 2^32.
func (z *Int) SmallFactor(limit uint64) uint64 {
	z = z.Abs()
	if len(z.v) == 1 && z.v[0] <= 1 {
		return 0
	}
	if limit >= 2 && z.IsEven() {
		return 2
	}
	factlim := limit
	if factlim > maxSmPrime {
		factlim = maxSmPrime
	}
	for _, p := range primes16 {
		if p == 1 {
			break
		}
		if uint64(p) > factlim {
			return 0
		}
		if r, _ := z.ModInt(int64(p)); r == 0 {
			return uint64(p)
		}
	}
	// Walk jump candidates beyond the table. A composite candidate
	// cannot divide first: its smaller prime factor would have hit.
	f, j := firstJump(nxtMapPrime)
	for ; f <= factlim; f += j.next() {
		if r, _ := z.ModInt(int64(f)); r == 0 {
			return f
		}
	}
	return 0
}

// Factor stores the smallest prime factor of abs(z) below limit in the
// result, mirroring the original three-way flag: -1 for an oversized
// limit, 0 for no factor, 1 when a factor was found.
func (z *Int) Factor(limit *Int) (*Int, int) {
	if limit.Ge32b() {
		return nil, -1
	}
	f := z.SmallFactor(limit.Abs().Uint64())
	if f == 0 {
		return nil, 0
	}
	return NewUint(f), 1
}

// LowFactor returns the lowest prime factor of abs(z) among the first
// count primes, or 1 when none of them divides z.
func (z *Int) LowFactor(count int64) uint64 {
	z = z.Abs()
	if count <= 0 || z.IsUnit() || z.IsZero() {
		return 1
	}
	if z.IsEven() {
		return 2
	}
	count--
	for i := int64(0); i < count && i < int64(len(primes16)-1); i++ {
		p := primes16[i]
		if r, _ := z.ModInt(int64(p)); r == 0 {
			return uint64(p)
		}
	}
	return 1
}
