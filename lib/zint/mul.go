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

import (
	"github.com/ratcore/ratcore/lib/mathconf"
)

// The recursive multiply and square routines share process-wide scratch
// buffers. Each buffer is grown by 100 limbs beyond the request and never
// shrinks. Recursion levels carve consecutive regions off the same
// buffer, stack style.
var (
	mulScratch []uint32
	sqScratch  []uint32
)

func growScratch(buf []uint32, n int) []uint32 {
	if n <= len(buf) {
		return buf
	}
	return make([]uint32, n+100)
}

// Mul returns x * y using the formula
//
//	(A*S+B)*(C*S+D) = (S^2+S)*A*C + S*(A-B)*(D-C) + (S+1)*B*D
//
// recursively, where S is a power of the limb base, falling back to the
// schoolbook inner loop below the mathconf Mul2 threshold.
func (x *Int) Mul(y *Int) *Int {
	if x.IsZero() || y.IsZero() {
		return Zero
	}
	neg := x.sign != y.sign
	if x.IsUnit() {
		return y.CopySign(neg)
	}
	if y.IsUnit() {
		return x.CopySign(neg)
	}
	n := len(x.v)
	if len(y.v) > n {
		n = len(y.v)
	}
	mulScratch = growScratch(mulScratch, 2*n+128)
	ans := make([]uint32, len(x.v)+len(y.v)+2)
	rlen := domul(x.v, len(x.v), y.v, len(y.v), ans, mulScratch)
	return mkint(ans[:rlen], neg)
}

// Square returns x * x. The split formula is
//
//	(A*S+B)^2 = (S^2+S)*A^2 + (S+1)*B^2 - S*(A-B)^2
//
// with a schoolbook path below the Sq2 threshold that multiplies each
// limb only by later limbs, doubles, and then adds in the limb squares.
func (x *Int) Square() *Int {
	if x.IsZero() {
		return Zero
	}
	if x.IsUnit() {
		return One
	}
	sqScratch = growScratch(sqScratch, 3*len(x.v)+128)
	ans := make([]uint32, (len(x.v)+2)*2)
	rlen := dosquare(x.v, len(x.v), ans, sqScratch)
	return mkint(ans[:rlen], false)
}

func trimLen(v []uint32, n int) int {
	for n > 1 && v[n-1] == 0 {
		n--
	}
	return n
}

// schoolMul computes v1[:size1] * v2[:size2] into ans, size1 >= size2 >= 1,
// and returns the trimmed product length. ans needs size1+size2 limbs.
func schoolMul(v1 []uint32, size1 int, v2 []uint32, size2 int, ans []uint32) int {
	sizetotal := size1 + size2
	for i := size1; i < sizetotal; i++ {
		ans[i] = 0
	}
	// First row initializes the result.
	digit := uint64(v2[0])
	var carry uint64
	for i := 0; i < size1; i++ {
		s := uint64(v1[i])*digit + carry
		ans[i] = uint32(s)
		carry = s >> baseB
	}
	ans[size1] = uint32(carry)
	// Remaining rows accumulate.
	for j := 1; j < size2; j++ {
		digit = uint64(v2[j])
		if digit == 0 {
			continue
		}
		carry = 0
		k := j
		for i := 0; i < size1; i++ {
			s := uint64(v1[i])*digit + uint64(ans[k]) + carry
			ans[k] = uint32(s)
			carry = s >> baseB
			k++
		}
		for carry != 0 {
			s := uint64(ans[k]) + carry
			ans[k] = uint32(s)
			carry = s >> baseB
			k++
		}
	}
	return trimLen(ans, sizetotal)
}

// absDiffInto writes abs(a[:asize] - b[:bsize]) into dst and returns the
// trimmed size plus whether a < b.
func absDiffInto(dst []uint32, a []uint32, asize int, b []uint32, bsize int) (int, bool) {
	swapped := false
	if asize < bsize || (asize == bsize && cmpAbs(a[:asize], b[:bsize]) < 0) {
		a, b = b, a
		asize, bsize = bsize, asize
		swapped = true
	}
	var borrow uint64
	for i := 0; i < bsize; i++ {
		d := uint64(a[i]) - uint64(b[i]) - borrow
		dst[i] = uint32(d)
		borrow = d >> baseB & 1
	}
	for i := bsize; i < asize; i++ {
		d := uint64(a[i]) - borrow
		dst[i] = uint32(d)
		borrow = d >> baseB & 1
	}
	return trimLen(dst, asize), swapped
}

// domul is the recursive multiply. ans must hold size1+size2+2 limbs; tmp
// is the scratch stack for this level and below.
func domul(v1 []uint32, size1 int, v2 []uint32, size2 int, ans []uint32, tmp []uint32) int {
	size1 = trimLen(v1, size1)
	size2 = trimLen(v2, size2)
	sizetotal := size1 + size2

	if (size1 == 1 && v1[0] == 0) || (size2 == 1 && v2[0] == 0) {
		ans[0] = 0
		return 1
	}
	if size1 < size2 {
		v1, v2 = v2, v1
		size1, size2 = size2, size1
	}
	if size2 < mathconf.Global.Mul2 {
		return schoolMul(v1, size1, v2, size2, ans)
	}

	// The shift is half the size of the larger number, rounded up. This
	// level needs 2*shift+2 limbs of scratch for (A-B)*(D-C) plus its
	// transient carry limb.
	shift := (size1 + 1) / 2
	temp := tmp[:2*shift+2]
	rest := tmp[2*shift+2:]

	// The combination passes can transiently carry one limb past the
	// final product size before the last subtraction pulls the value
	// back down. Keep that limb and its neighbor defined.
	ans[sizetotal] = 0
	ans[sizetotal+1] = 0

	baseA := v1[shift:]
	sizeA := size1 - shift
	sizeB := trimLen(v1, shift)
	sizeC := size2 - shift
	dlen := shift
	if dlen > size2 {
		dlen = size2
	}
	sizeD := trimLen(v2, dlen)

	// If the high half of the smaller number is zero, use the simpler
	// (A*S+B)*D = (A*D)*S + B*D.
	if sizeC <= 0 {
		rlen := domul(v1, sizeB, v2, sizeD, ans, rest)
		for i := rlen; i < sizetotal; i++ {
			ans[i] = 0
		}
		tlen := domul(baseA, sizeA, v2, sizeD, temp, rest)
		var carry uint64
		k := shift
		for i := 0; i < tlen; i++ {
			s := uint64(temp[i]) + uint64(ans[k]) + carry
			ans[k] = uint32(s)
			carry = s >> baseB
			k++
		}
		for carry != 0 {
			s := uint64(ans[k]) + carry
			ans[k] = uint32(s)
			carry = s >> baseB
			k++
		}
		return trimLen(ans, sizetotal)
	}

	baseC := v2[shift:]

	// abs(A-B) at ans[0:], abs(D-C) at ans[shift:], then their product
	// into scratch where it waits until the final step.
	sizeAB, negAB := absDiffInto(ans, baseA, sizeA, v1, sizeB)
	sizeDC, negDC := absDiffInto(ans[shift:], v2, sizeD, baseC, sizeC)
	neg := negAB != negDC
	sizeABDC := domul(ans, sizeAB, ans[shift:], sizeDC, temp, rest)

	// B*D at position 0 and A*C at position 2*shift, zero filled up to
	// each other's boundary plus one extra carry limb.
	rlen := domul(v1, sizeB, v2, sizeD, ans, rest)
	for i := rlen; i < 2*shift; i++ {
		ans[i] = 0
	}
	rlen = domul(baseA, sizeA, baseC, sizeC, ans[2*shift:], rest)
	for i := 2*shift + rlen; i <= sizetotal; i++ {
		ans[i] = 0
	}

	// Add A*C and B*D into themselves at the other shifted position.
	// The first pass sums the top half of B*D with the low half of A*C;
	// sources and destinations overlap so one loop stores to both.
	var carryACBD uint64
	for i := 0; i < shift; i++ {
		s := uint64(ans[shift+i]) + uint64(ans[2*shift+i]) + carryACBD
		ans[shift+i] = uint32(s)
		ans[2*shift+i] = uint32(s)
		carryACBD = s >> baseB
	}
	// Top half of A*C into the bottom of A*C, consuming one carry.
	var carry uint64 = carryACBD
	k := 2 * shift
	for i := 0; i < sizetotal-3*shift; i++ {
		s := uint64(ans[3*shift+i]) + uint64(ans[k]) + carry
		ans[k] = uint32(s)
		carry = s >> baseB
		k++
	}
	for carry != 0 {
		s := uint64(ans[k]) + carry
		ans[k] = uint32(s)
		carry = s >> baseB
		k++
	}
	// Bottom half of B*D into the top of B*D.
	carry = 0
	k = shift
	for i := 0; i < shift; i++ {
		s := uint64(ans[i]) + uint64(ans[k]) + carry
		ans[k] = uint32(s)
		carry = s >> baseB
		k++
	}
	for carry != 0 {
		s := uint64(ans[k]) + carry
		ans[k] = uint32(s)
		carry = s >> baseB
		k++
	}
	// The delayed carry from the overlapped pass.
	k = 3 * shift
	for carryACBD != 0 {
		s := uint64(ans[k]) + carryACBD
		ans[k] = uint32(s)
		carryACBD = s >> baseB
		k++
	}

	// Finally add or subtract (A-B)*(D-C) at position shift. When
	// subtracting the result cannot go negative.
	k = shift
	if neg {
		var borrow uint64
		for i := 0; i < sizeABDC; i++ {
			d := uint64(ans[k]) - uint64(temp[i]) - borrow
			ans[k] = uint32(d)
			borrow = d >> baseB & 1
			k++
		}
		for borrow != 0 {
			d := uint64(ans[k]) - borrow
			ans[k] = uint32(d)
			borrow = d >> baseB & 1
			k++
		}
	} else {
		carry = 0
		for i := 0; i < sizeABDC; i++ {
			s := uint64(ans[k]) + uint64(temp[i]) + carry
			ans[k] = uint32(s)
			carry = s >> baseB
			k++
		}
		for carry != 0 {
			s := uint64(ans[k]) + carry
			ans[k] = uint32(s)
			carry = s >> baseB
			k++
		}
	}
	return trimLen(ans, sizetotal)
}

// dosquare is the recursive square. ans must hold 2*size+2 limbs, zeroed by
// the caller at the top level; tmp needs 3*(size+1)/2+4 limbs per level.
func dosquare(vp []uint32, size int, ans []uint32, tmp []uint32) int {
	size = trimLen(vp, size)
	sizetotal := 2 * size

	if size < mathconf.Global.Sq2 {
		for i := 0; i < sizetotal; i++ {
			ans[i] = 0
		}
		// Cross products only: multiply each limb by later limbs.
		for j := 0; j < size; j++ {
			digit := uint64(vp[j])
			if digit == 0 {
				continue
			}
			var carry uint64
			k := 2*j + 1
			for i := j + 1; i < size; i++ {
				s := digit*uint64(vp[i]) + uint64(ans[k]) + carry
				ans[k] = uint32(s)
				carry = s >> baseB
				k++
			}
			for carry != 0 {
				s := uint64(ans[k]) + carry
				ans[k] = uint32(s)
				carry = s >> baseB
				k++
			}
		}
		// Double the cross products. No final carry escapes because
		// every digit of the result is covered.
		var carry uint64
		for i := 0; i < sizetotal; i++ {
			d := uint64(ans[i])
			s := d + d + carry
			ans[i] = uint32(s)
			carry = s >> baseB
		}
		// Add in the squares of each limb.
		carry = 0
		for i := 0; i < size; i++ {
			d := uint64(vp[i])
			s := d*d + uint64(ans[2*i]) + carry
			ans[2*i] = uint32(s)
			carry = s >> baseB
			s = uint64(ans[2*i+1]) + carry
			ans[2*i+1] = uint32(s)
			carry = s >> baseB
		}
		k := sizetotal
		for carry != 0 {
			s := uint64(ans[k]) + carry
			ans[k] = uint32(s)
			carry = s >> baseB
			k++
		}
		return trimLen(ans, sizetotal)
	}

	need := 3*(size+1)/2 + 4
	temp := tmp[:need]
	rest := tmp[need:]

	// As in the multiply, the sum-of-squares pass can transiently carry
	// past the final size until (A-B)^2 is subtracted back out.
	ans[sizetotal] = 0
	ans[sizetotal+1] = 0

	sizeA := size / 2
	sizeB := size - sizeA
	shift := sizeB
	baseA := vp[sizeB:]
	sizeB = trimLen(vp, sizeB)

	// B^2 and A^2 concatenated in the result, zero filled between.
	sizeBB := dosquare(vp, sizeB, ans, rest)
	for i := sizeBB; i < 2*shift; i++ {
		ans[i] = 0
	}
	sizeAA := dosquare(baseA, sizeA, ans[2*shift:], rest)
	for i := 2*shift + sizeAA; i < sizetotal; i++ {
		ans[i] = 0
	}

	// Sum the two squares into scratch, then add the sum back in at the
	// middle position.
	a, b := ans[2*shift:], ans[:2*shift]
	la, lb := sizeAA, sizeBB
	if la < lb {
		a, b = b, a
		la, lb = lb, la
	}
	var carry uint64
	for i := 0; i < lb; i++ {
		s := uint64(a[i]) + uint64(b[i]) + carry
		temp[i] = uint32(s)
		carry = s >> baseB
	}
	for i := lb; i < la; i++ {
		s := uint64(a[i]) + carry
		temp[i] = uint32(s)
		carry = s >> baseB
	}
	sizeAABB := la
	if carry != 0 {
		temp[sizeAABB] = uint32(carry)
		sizeAABB++
	}
	carry = 0
	k := shift
	for i := 0; i < sizeAABB; i++ {
		s := uint64(ans[k]) + uint64(temp[i]) + carry
		ans[k] = uint32(s)
		carry = s >> baseB
		k++
	}
	for carry != 0 {
		s := uint64(ans[k]) + carry
		ans[k] = uint32(s)
		carry = s >> baseB
		k++
	}

	// (A-B)^2 subtracted at the middle position; the result cannot go
	// negative.
	sizeAB, _ := absDiffInto(temp, baseA, sizeA, vp, sizeB)
	sizeABAB := dosquare(temp[:sizeAB], sizeAB, temp[shift:], rest)
	var borrow uint64
	k = shift
	for i := 0; i < sizeABAB; i++ {
		d := uint64(ans[k]) - uint64(temp[shift+i]) - borrow
		ans[k] = uint32(d)
		borrow = d >> baseB & 1
		k++
	}
	for borrow != 0 {
		d := uint64(ans[k]) - borrow
		ans[k] = uint32(d)
		borrow = d >> baseB & 1
		k++
	}
	return trimLen(ans, sizetotal)
}
