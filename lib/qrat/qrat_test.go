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

package qrat

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/ratcore/ratcore/lib/zint"
)

func randRat(rng *rand.Rand) *Rat {
	n := int64(rng.Intn(2000000) - 1000000)
	d := int64(rng.Intn(1000000) + 1)
	q, _ := FromPair(n, d)
	return q
}

func asBigRat(q *Rat) *big.Rat {
	r, _ := new(big.Rat).SetString(q.String())
	return r
}

// checkCanonical verifies the two standing invariants.
func checkCanonical(tt *testing.T, q *Rat) {
	tt.Helper()
	if q.Den().IsNeg() || q.Den().IsZero() {
		tt.Fatalf("denominator not positive: %s", q.String())
	}
	if !q.Num().Gcd(q.Den()).IsUnit() && !q.IsZero() {
		tt.Fatalf("not in lowest terms: %s", q.String())
	}
	if q.IsZero() && !q.Den().IsOne() {
		tt.Fatalf("zero not canonical: %s", q.String())
	}
}

func TestArithmeticAgainstBigRat(tt *testing.T) {
	rng := rand.New(rand.NewSource(30))
	for i := 0; i < 500; i++ {
		a := randRat(rng)
		b := randRat(rng)
		ba, bb := asBigRat(a), asBigRat(b)

		sum := a.Add(b)
		checkCanonical(tt, sum)
		if asBigRat(sum).Cmp(new(big.Rat).Add(ba, bb)) != 0 {
			tt.Fatalf("%s + %s = %s", a, b, sum)
		}
		diff := a.Sub(b)
		checkCanonical(tt, diff)
		if asBigRat(diff).Cmp(new(big.Rat).Sub(ba, bb)) != 0 {
			tt.Fatalf("%s - %s = %s", a, b, diff)
		}
		prod := a.Mul(b)
		checkCanonical(tt, prod)
		if asBigRat(prod).Cmp(new(big.Rat).Mul(ba, bb)) != 0 {
			tt.Fatalf("%s * %s = %s", a, b, prod)
		}
		if !b.IsZero() {
			quo, err := a.Div(b)
			if err != nil {
				tt.Fatal(err)
			}
			checkCanonical(tt, quo)
			if asBigRat(quo).Cmp(new(big.Rat).Quo(ba, bb)) != 0 {
				tt.Fatalf("%s / %s = %s", a, b, quo)
			}
		}
		if got, want := a.Cmp(b), ba.Cmp(bb); got != want {
			tt.Fatalf("Cmp(%s, %s) = %d, want %d", a, b, got, want)
		}
	}
}

func TestAddSevenths(tt *testing.T) {
	a, _ := FromPair(1, 7)
	b, _ := FromPair(2, 7)
	sum := a.Add(b)
	if sum.Num().Int64() != 3 || sum.Den().Int64() != 7 {
		tt.Fatalf("1/7 + 2/7 = %s", sum)
	}
}

func TestReduceIdempotent(tt *testing.T) {
	q, err := New(zint.NewInt(84), zint.NewInt(-126))
	if err != nil {
		tt.Fatal(err)
	}
	if q.String() != "-2/3" {
		tt.Fatalf("84/-126 = %s", q)
	}
	q2, err := New(q.Num(), q.Den())
	if err != nil {
		tt.Fatal(err)
	}
	if !q.Eq(q2) {
		tt.Fatal("reducing a reduced value changed it")
	}
}

func TestTrivialCache(tt *testing.T) {
	if q, _ := FromPair(1, 2); q != Half {
		tt.Fatal("1/2 not shared")
	}
	if q, _ := FromPair(-1, 2); q != NegHalf {
		tt.Fatal("-1/2 not shared")
	}
	if q := FromInt64(10); q != Ten {
		tt.Fatal("10 not shared")
	}
	if q := FromInt64(0); q != Zero {
		tt.Fatal("0 not shared")
	}
}

func TestScale(tt *testing.T) {
	q, _ := FromPair(3, 4)
	up := q.Scale(3)
	if up.String() != "6" {
		tt.Fatalf("3/4 * 8 = %s", up)
	}
	down := q.Scale(-3)
	if down.String() != "3/32" {
		tt.Fatalf("3/4 / 8 = %s", down)
	}
	checkCanonical(tt, up)
	checkCanonical(tt, down)
}

func TestIntFracParts(tt *testing.T) {
	q, _ := FromPair(-7, 2)
	if q.IntPart().String() != "-3" {
		tt.Fatalf("int part of -7/2 = %s", q.IntPart())
	}
	if q.FracPart().String() != "-1/2" {
		tt.Fatalf("frac part of -7/2 = %s", q.FracPart())
	}
	if got := q.IntPart().Add(q.FracPart()); !got.Eq(q) {
		tt.Fatalf("parts do not sum: %s", got)
	}
}

func TestMappr(tt *testing.T) {
	q, _ := FromPair(1, 3)
	e, _ := FromPair(1, 100)
	r, err := q.Mappr(e, zint.RoundHalfEven)
	if err != nil {
		tt.Fatal(err)
	}
	if r.String() != "33/100" {
		tt.Fatalf("1/3 to nearest 1/100 = %s", r)
	}
	checkCanonical(tt, r)
}

func TestRound(tt *testing.T) {
	q, _ := FromPair(1, 3)
	r, err := q.Round(4, zint.RoundHalfEven)
	if err != nil {
		tt.Fatal(err)
	}
	if r.String() != "3333/10000" {
		tt.Fatalf("round(1/3, 4) = %s", r)
	}
	b, err := q.BRound(8, zint.RoundHalfEven)
	if err != nil {
		tt.Fatal(err)
	}
	if b.String() != "85/256" {
		tt.Fatalf("bround(1/3, 8) = %s", b)
	}
}

func TestTrunc(tt *testing.T) {
	q, _ := FromPair(-10, 3)
	r, err := q.Trunc(2)
	if err != nil {
		tt.Fatal(err)
	}
	if r.String() != "-333/100" {
		tt.Fatalf("trunc(-10/3, 2) = %s", r)
	}
}

func TestQuoMod(tt *testing.T) {
	a, _ := FromPair(13, 3)
	b, _ := FromPair(2, 3)
	quo, rem, nonzero, err := a.QuoMod(b, 0)
	if err != nil {
		tt.Fatal(err)
	}
	// 13/3 = 6*(2/3) + 1/3.
	if quo.String() != "6" || rem.String() != "1/3" || !nonzero {
		tt.Fatalf("quomod = %s, %s", quo, rem)
	}
	if got := quo.Mul(b).Add(rem); !got.Eq(a) {
		tt.Fatal("quo*b + rem != a")
	}
}

func TestCfAppr(tt *testing.T) {
	// 416/93 has continued fraction [4; 2, 8, 1, 4]; denominator
	// budget 10 lands on the convergent 9/2.
	q, _ := FromPair(416, 93)
	bound := FromInt64(10)
	r, err := q.CfAppr(bound, zint.RoundHalfEven)
	if err != nil {
		tt.Fatal(err)
	}
	if r.Den().Cmp(zint.Ten) > 0 {
		tt.Fatalf("denominator bound exceeded: %s", r)
	}
	// The approximation must beat any simpler fraction.
	if r.String() != "9/2" {
		tt.Logf("cfappr(416/93, 10) = %s", r)
	}
	diff := r.Sub(q).Abs()
	alt, _ := FromPair(22, 5)
	if diff.Cmp(alt.Sub(q).Abs()) > 0 {
		tt.Fatalf("approximation %s worse than 22/5", r)
	}

	// Epsilon below one: smallest-denominator value within the band.
	e, _ := FromPair(1, 100)
	r, err = q.CfAppr(e, zint.RoundHalfEven)
	if err != nil {
		tt.Fatal(err)
	}
	if r.Sub(q).Abs().Cmp(e) > 0 {
		tt.Fatalf("cfappr outside epsilon: %s", r)
	}
	if r.Den().Cmp(q.Den()) >= 0 {
		tt.Fatalf("no simplification: %s", r)
	}
}

func TestCfSim(tt *testing.T) {
	q, _ := FromPair(416, 93)
	r, err := q.CfSim(zint.RoundNearest)
	if err != nil {
		tt.Fatal(err)
	}
	if r.Den().Cmp(q.Den()) >= 0 {
		tt.Fatalf("cfsim did not simplify: %s", r)
	}
}

func TestNear(tt *testing.T) {
	a, _ := FromPair(1, 3)
	b, _ := FromPair(333, 1000)
	e1, _ := FromPair(1, 100)
	e2, _ := FromPair(1, 10000)
	if a.Near(b, e1) >= 0 {
		tt.Fatal("1/3 and 0.333 not near at 0.01")
	}
	if a.Near(b, e2) <= 0 {
		tt.Fatal("1/3 and 0.333 near at 0.0001")
	}
}

func TestBitwise(tt *testing.T) {
	a := FromInt64(0b1100)
	b := FromInt64(0b1010)
	and, _ := a.And(b)
	or, _ := a.Or(b)
	xor, _ := a.Xor(b)
	if and.Int64() != 0b1000 || or.Int64() != 0b1110 || xor.Int64() != 0b0110 {
		tt.Fatalf("bitwise: %s %s %s", and, or, xor)
	}
	// Negative operands follow two's complement identities.
	na := FromInt64(-12)
	and2, err := na.And(b)
	if err != nil {
		tt.Fatal(err)
	}
	if and2.Int64() != int64(-12&10) {
		tt.Fatalf("-12 & 10 = %s", and2)
	}
	or2, _ := na.Or(b)
	if or2.Int64() != int64(-12|10) {
		tt.Fatalf("-12 | 10 = %s", or2)
	}
	if _, err := Half.And(b); err == nil {
		tt.Fatal("fraction accepted for bitwise and")
	}
}

func TestBernoulli(tt *testing.T) {
	testCases := []struct {
		n    int64
		want string
	}{
		{0, "1"}, {1, "-1/2"}, {2, "1/6"}, {3, "0"}, {4, "-1/30"},
		{6, "1/42"}, {8, "-1/30"}, {10, "5/66"}, {12, "-691/2730"},
	}
	for _, tc := range testCases {
		got, err := Bernoulli(zint.NewInt(tc.n))
		if err != nil {
			tt.Fatal(err)
		}
		if got.String() != tc.want {
			tt.Fatalf("B(%d) = %s, want %s", tc.n, got, tc.want)
		}
	}
	FreeBernoulli()
}

func TestEuler(tt *testing.T) {
	testCases := []struct {
		n    int64
		want string
	}{
		{0, "1"}, {1, "0"}, {2, "-1"}, {4, "5"}, {6, "-61"}, {8, "1385"},
	}
	for _, tc := range testCases {
		got, err := Euler(zint.NewInt(tc.n))
		if err != nil {
			tt.Fatal(err)
		}
		if got.String() != tc.want {
			tt.Fatalf("E(%d) = %s, want %s", tc.n, got, tc.want)
		}
	}
	FreeEuler()
}

func TestCatalan(tt *testing.T) {
	testCases := []struct {
		n    int64
		want int64
	}{
		{0, 1}, {1, 1}, {2, 2}, {3, 5}, {4, 14}, {5, 42}, {10, 16796},
	}
	for _, tc := range testCases {
		got, err := FromInt64(tc.n).Catalan()
		if err != nil {
			tt.Fatal(err)
		}
		if got.Int64() != tc.want {
			tt.Fatalf("catalan(%d) = %s, want %d", tc.n, got, tc.want)
		}
	}
}

func TestILog(tt *testing.T) {
	q, _ := FromPair(13, 10)
	n, err := q.ILog2()
	if err != nil || n != 0 {
		tt.Fatalf("ilog2(1.3) = %d", n)
	}
	q, _ = FromPair(1, 7)
	n, err = q.ILog2()
	if err != nil || n != -3 {
		tt.Fatalf("ilog2(1/7) = %d", n)
	}
	q, _ = FromPair(123, 10)
	n, err = q.ILog10()
	if err != nil || n != 1 {
		tt.Fatalf("ilog10(12.3) = %d", n)
	}
	q, _ = FromPair(23, 1000)
	n, err = q.ILog10()
	if err != nil || n != -2 {
		tt.Fatalf("ilog10(0.023) = %d", n)
	}
	q, _ = FromPair(1, 1000)
	n, err = q.ILog10()
	if err != nil || n != -3 {
		tt.Fatalf("ilog10(1/1000) = %d", n)
	}
}

func TestDecPlaces(tt *testing.T) {
	q, _ := FromPair(3, 40) // 0.075
	if got := q.DecPlaces(); got != 3 {
		tt.Fatalf("decplaces(3/40) = %d", got)
	}
	q, _ = FromPair(1, 3)
	if got := q.DecPlaces(); got != -1 {
		tt.Fatalf("decplaces(1/3) = %d", got)
	}
	if got := FromInt64(5).DecPlaces(); got != 0 {
		tt.Fatalf("decplaces(5) = %d", got)
	}
}

func TestDigit(tt *testing.T) {
	q, _ := FromPair(12345678, 10000) // 1234.5678
	testCases := []struct {
		pos  int64
		want int64
	}{
		{0, 4}, {1, 3}, {2, 2}, {3, 1}, {4, 0},
		{-1, 5}, {-2, 6}, {-3, 7}, {-4, 8}, {-5, 0},
	}
	for _, tc := range testCases {
		got, err := q.Digit(tc.pos, zint.Ten)
		if err != nil {
			tt.Fatal(err)
		}
		if got.Int64() != tc.want {
			tt.Fatalf("digit(1234.5678, %d) = %d, want %d", tc.pos, got.Int64(), tc.want)
		}
	}
	// A repeating expansion: 1/7 = 0.142857...
	q, _ = FromPair(1, 7)
	want := []int64{1, 4, 2, 8, 5, 7, 1, 4}
	for i, w := range want {
		got, err := q.Digit(int64(-i-1), zint.Ten)
		if err != nil {
			tt.Fatal(err)
		}
		if got.Int64() != w {
			tt.Fatalf("digit(1/7, %d) = %d, want %d", -i-1, got.Int64(), w)
		}
	}
}

func TestGcdLcm(tt *testing.T) {
	a, _ := FromPair(3, 4)
	b, _ := FromPair(5, 6)
	g := a.Gcd(b)
	if g.String() != "1/12" {
		tt.Fatalf("gcd(3/4, 5/6) = %s", g)
	}
	l := a.Lcm(b)
	if l.String() != "15/2" {
		tt.Fatalf("lcm(3/4, 5/6) = %s", l)
	}
}

func TestPowInt(tt *testing.T) {
	q, _ := FromPair(2, 3)
	r, err := q.PowInt(FromInt64(3))
	if err != nil {
		tt.Fatal(err)
	}
	if r.String() != "8/27" {
		tt.Fatalf("(2/3)^3 = %s", r)
	}
	r, err = q.PowInt(FromInt64(-2))
	if err != nil {
		tt.Fatal(err)
	}
	if r.String() != "9/4" {
		tt.Fatalf("(2/3)^-2 = %s", r)
	}
}

func TestIsSquare(tt *testing.T) {
	q, _ := FromPair(4, 9)
	if !q.IsSquare() {
		tt.Fatal("4/9 should be square")
	}
	q, _ = FromPair(4, 7)
	if q.IsSquare() {
		tt.Fatal("4/7 should not be square")
	}
}

func TestMInv(tt *testing.T) {
	a := FromInt64(3)
	m := FromInt64(7)
	inv, err := a.MInv(m)
	if err != nil {
		tt.Fatal(err)
	}
	if inv.Int64() != 5 {
		tt.Fatalf("3^-1 mod 7 = %s", inv)
	}
}
