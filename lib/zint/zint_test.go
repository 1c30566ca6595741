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

package zint

import (
	"math/big"
	"math/rand"
	"testing"
)

// randInt produces a deterministic pseudo-random value of up to maxLimbs
// limbs, occasionally negative or zero.
func randInt(rng *rand.Rand, maxLimbs int) *Int {
	n := rng.Intn(maxLimbs) + 1
	if rng.Intn(20) == 0 {
		return Zero
	}
	v := make([]uint32, n)
	for i := range v {
		v[i] = rng.Uint32()
	}
	v[n-1] |= 1 // keep the top limb nonzero
	return mkint(v, rng.Intn(2) == 0)
}

func toBig(x *Int) *big.Int {
	b := new(big.Int).SetBytes(bigEndianBytes(x))
	if x.IsNeg() {
		b.Neg(b)
	}
	return b
}

func bigEndianBytes(x *Int) []byte {
	v := x.Limbs()
	out := make([]byte, 0, 4*len(v))
	for i := len(v) - 1; i >= 0; i-- {
		out = append(out, byte(v[i]>>24), byte(v[i]>>16), byte(v[i]>>8), byte(v[i]))
	}
	return out
}

func eqBig(x *Int, b *big.Int) bool {
	return toBig(x).Cmp(b) == 0
}

func TestAddSubMulSquareAgainstBig(tt *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		x := randInt(rng, 40)
		y := randInt(rng, 40)
		bx, by := toBig(x), toBig(y)

		if got := x.Add(y); !eqBig(got, new(big.Int).Add(bx, by)) {
			tt.Fatalf("Add(%v, %v) = %v", bx, by, toBig(got))
		}
		if got := x.Sub(y); !eqBig(got, new(big.Int).Sub(bx, by)) {
			tt.Fatalf("Sub(%v, %v) = %v", bx, by, toBig(got))
		}
		if got := x.Mul(y); !eqBig(got, new(big.Int).Mul(bx, by)) {
			tt.Fatalf("Mul(%v, %v) = %v", bx, by, toBig(got))
		}
		if got := x.Square(); !eqBig(got, new(big.Int).Mul(bx, bx)) {
			tt.Fatalf("Square(%v) = %v", bx, toBig(got))
		}
	}
}

func TestKaratsubaThreshold(tt *testing.T) {
	// Values wide enough to recurse several levels.
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 20; i++ {
		x := randInt(rng, 400)
		y := randInt(rng, 300)
		bx, by := toBig(x), toBig(y)
		if got := x.Mul(y); !eqBig(got, new(big.Int).Mul(bx, by)) {
			tt.Fatalf("wide Mul mismatch at %d limbs", x.Len())
		}
		if got := x.Square(); !eqBig(got, new(big.Int).Mul(bx, bx)) {
			tt.Fatalf("wide Square mismatch at %d limbs", x.Len())
		}
	}
}

func TestQuoRemIdentity(tt *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 300; i++ {
		x := randInt(rng, 30)
		y := randInt(rng, 10)
		if y.IsZero() {
			continue
		}
		for _, rnd := range []Round{0, RoundUp, RoundHalfEven, RoundNearest} {
			q, r, _, err := x.QuoRem(y, rnd)
			if err != nil {
				tt.Fatal(err)
			}
			// x == q*y + r regardless of the rounding flavor.
			lhs := toBig(x)
			rhs := new(big.Int).Mul(toBig(q), toBig(y))
			rhs.Add(rhs, toBig(r))
			if lhs.Cmp(rhs) != 0 {
				tt.Fatalf("rnd=%d: %v != %v*%v + %v", rnd, lhs, toBig(q), toBig(y), toBig(r))
			}
			// The remainder is smaller than the divisor.
			if r.CmpAbs(y) >= 0 {
				tt.Fatalf("rnd=%d: |rem| %v >= |div| %v", rnd, toBig(r), toBig(y))
			}
		}
	}
}

func TestQuoRounding(tt *testing.T) {
	testCases := []struct {
		x    int64
		y    int64
		rnd  Round
		want int64
	}{
		{7, 2, 0, 3},               // down on positive
		{7, 2, RoundUp, 4},         // up
		{-7, 2, 0, -4},             // default rounds down, not toward zero
		{-7, 2, RoundQuotSign, -3}, // toward zero
		{7, 2, RoundNearest, 3},    // 3.5 tie keeps the default direction
		{5, 2, RoundHalfEven, 2},   // tie to even
		{7, 2, RoundHalfEven, 4},   // tie to even
		{9, 3, RoundUp, 3},         // exact stays exact
	}
	for _, tc := range testCases {
		q, _, err := NewInt(tc.x).Quo(NewInt(tc.y), tc.rnd)
		if err != nil {
			tt.Fatal(err)
		}
		if q.Int64() != tc.want {
			tt.Fatalf("Quo(%d, %d, %d) = %d, want %d", tc.x, tc.y, tc.rnd, q.Int64(), tc.want)
		}
	}
}

func TestEquo(tt *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for i := 0; i < 200; i++ {
		a := randInt(rng, 20).Abs()
		b := randInt(rng, 8).Abs()
		if b.IsZero() {
			continue
		}
		prod := a.Mul(b)
		got, err := prod.Equo(b)
		if err != nil {
			tt.Fatal(err)
		}
		if !got.Eq(a) {
			tt.Fatalf("Equo(%v, %v) = %v, want %v", toBig(prod), toBig(b), toBig(got), toBig(a))
		}
	}
}

func TestShiftAndBits(tt *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 200; i++ {
		x := randInt(rng, 12).Abs()
		n := int64(rng.Intn(200))
		bx := toBig(x)
		if got := x.Shift(n); !eqBig(got, new(big.Int).Lsh(bx, uint(n))) {
			tt.Fatalf("Shift(%v, %d)", bx, n)
		}
		if got := x.Shift(-n); !eqBig(got, new(big.Int).Rsh(bx, uint(n))) {
			tt.Fatalf("Shift(%v, -%d)", bx, n)
		}
		y := randInt(rng, 12).Abs()
		by := toBig(y)
		if got := x.And(y); !eqBig(got, new(big.Int).And(bx, by)) {
			tt.Fatalf("And(%v, %v)", bx, by)
		}
		if got := x.Or(y); !eqBig(got, new(big.Int).Or(bx, by)) {
			tt.Fatalf("Or(%v, %v)", bx, by)
		}
		if got := x.Xor(y); !eqBig(got, new(big.Int).Xor(bx, by)) {
			tt.Fatalf("Xor(%v, %v)", bx, by)
		}
		if got := x.AndNot(y); !eqBig(got, new(big.Int).AndNot(bx, by)) {
			tt.Fatalf("AndNot(%v, %v)", bx, by)
		}
	}
}

func TestHighLowBit(tt *testing.T) {
	x, _ := BitValue(100)
	if x.HighBit() != 100 || x.LowBit() != 100 {
		tt.Fatalf("BitValue(100): high %d low %d", x.HighBit(), x.LowBit())
	}
	y := x.Add(NewInt(8))
	if y.LowBit() != 3 {
		tt.Fatalf("LowBit = %d, want 3", y.LowBit())
	}
	if !x.IsOneBit() || y.IsOneBit() {
		tt.Fatal("IsOneBit misclassified")
	}
}

func TestGcdAgainstBig(tt *testing.T) {
	rng := rand.New(rand.NewSource(6))
	for i := 0; i < 200; i++ {
		x := randInt(rng, 30).Abs()
		y := randInt(rng, 25).Abs()
		if x.IsZero() || y.IsZero() {
			continue
		}
		want := new(big.Int).GCD(nil, nil, toBig(x), toBig(y))
		if got := x.Gcd(y); !eqBig(got, want) {
			tt.Fatalf("Gcd(%v, %v) = %v, want %v", toBig(x), toBig(y), toBig(got), want)
		}
	}
}

func TestGcdCommonFactors(tt *testing.T) {
	a := NewInt(3 * 1024)
	b := NewInt(5 * 256)
	if got := a.Gcd(b); got.Int64() != 256 {
		tt.Fatalf("Gcd(3072, 1280) = %d, want 256", got.Int64())
	}
}

func TestModInv(tt *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		m := randInt(rng, 10).Abs()
		if m.Len() < 2 {
			m = m.Add(NewInt(1000003))
		}
		a := randInt(rng, 8).Abs()
		if a.IsZero() {
			continue
		}
		inv, err := a.ModInv(m)
		if err != nil {
			// Not coprime is a legal outcome; verify it.
			if a.Gcd(m).IsUnit() {
				tt.Fatalf("ModInv rejected coprime pair")
			}
			continue
		}
		prod, _, _ := a.Mul(inv).Mod(m, 0)
		if !prod.IsOne() {
			tt.Fatalf("a*inv mod m = %v", toBig(prod))
		}
	}
}

func TestJacobiAgainstBig(tt *testing.T) {
	rng := rand.New(rand.NewSource(8))
	for i := 0; i < 300; i++ {
		x := randInt(rng, 4).Abs()
		y := randInt(rng, 4).Abs()
		if x.IsZero() || y.IsZero() || y.IsEven() {
			continue
		}
		want := big.Jacobi(toBig(x), toBig(y))
		if got := x.Jacobi(y); got != want {
			tt.Fatalf("Jacobi(%v, %v) = %d, want %d", toBig(x), toBig(y), got, want)
		}
	}
}

func TestSqrtInvariant(tt *testing.T) {
	rng := rand.New(rand.NewSource(9))
	for i := 0; i < 200; i++ {
		x := randInt(rng, 20).Abs()
		s, flag, err := x.Sqrt(0)
		if err != nil {
			tt.Fatal(err)
		}
		lo := s.Square()
		hi := s.Add(One).Square()
		if lo.Cmp(x) > 0 || hi.Cmp(x) <= 0 {
			tt.Fatalf("isqrt(%v) = %v out of range", toBig(x), toBig(s))
		}
		if (flag == 0) != lo.Eq(x) {
			tt.Fatalf("exactness flag wrong for %v", toBig(x))
		}
	}
}

func TestSqrtRounding(tt *testing.T) {
	// sqrt(10) = 3.16...: down 3, up 4, nearest 3.
	x := NewInt(10)
	if s, _, _ := x.Sqrt(0); s.Int64() != 3 {
		tt.Fatalf("down: %d", s.Int64())
	}
	if s, _, _ := x.Sqrt(RoundUp); s.Int64() != 4 {
		tt.Fatalf("up: %d", s.Int64())
	}
	if s, _, _ := x.Sqrt(RoundNearest); s.Int64() != 3 {
		tt.Fatalf("nearest: %d", s.Int64())
	}
	// sqrt(14) = 3.74...: nearest 4.
	if s, _, _ := NewInt(14).Sqrt(RoundNearest); s.Int64() != 4 {
		tt.Fatal("nearest of 14")
	}
}

func TestIsSquare(tt *testing.T) {
	rng := rand.New(rand.NewSource(10))
	for i := 0; i < 100; i++ {
		x := randInt(rng, 8).Abs()
		sq := x.Square()
		if !sq.IsSquare() {
			tt.Fatalf("%v^2 not a square", toBig(x))
		}
		if y := sq.Add(One); y.IsSquare() {
			// x^2+1 is only square for x = 0.
			if !x.IsZero() {
				tt.Fatalf("%v^2+1 claimed square", toBig(x))
			}
		}
	}
}

func TestRoot(tt *testing.T) {
	x := NewInt(85)
	r, err := x.Root(NewInt(3))
	if err != nil {
		tt.Fatal(err)
	}
	if r.Int64() != 4 {
		tt.Fatalf("85^(1/3) = %d, want 4", r.Int64())
	}
	neg, err := NewInt(-27).Root(NewInt(3))
	if err != nil || neg.Int64() != -3 {
		tt.Fatalf("(-27)^(1/3) = %v, %v", neg, err)
	}
	if _, err := NewInt(-4).Root(Two); err == nil {
		tt.Fatal("even root of negative accepted")
	}
}

func TestPow(tt *testing.T) {
	got, err := NewInt(3).Pow(NewInt(40))
	if err != nil {
		tt.Fatal(err)
	}
	want := new(big.Int).Exp(big.NewInt(3), big.NewInt(40), nil)
	if !eqBig(got, want) {
		tt.Fatalf("3^40 = %v", toBig(got))
	}
	got, _ = NewInt(-6).Pow(NewInt(7))
	want = new(big.Int).Exp(big.NewInt(-6), big.NewInt(7), nil)
	if !eqBig(got, want) {
		tt.Fatalf("(-6)^7 = %v", toBig(got))
	}
}

func TestFact(tt *testing.T) {
	got, err := Fact(NewInt(20))
	if err != nil {
		tt.Fatal(err)
	}
	if got.String() != "2432902008176640000" {
		tt.Fatalf("20! = %s", got.String())
	}
	if _, err := Fact(NewInt(-1)); err == nil {
		tt.Fatal("negative factorial accepted")
	}
}

func TestFib(tt *testing.T) {
	testCases := []struct {
		n    int64
		want int64
	}{
		{0, 0}, {1, 1}, {2, 1}, {10, 55}, {20, 6765}, {-8, -21}, {-7, 13},
	}
	for _, tc := range testCases {
		got, err := Fib(NewInt(tc.n))
		if err != nil {
			tt.Fatal(err)
		}
		if got.Int64() != tc.want {
			tt.Fatalf("Fib(%d) = %d, want %d", tc.n, got.Int64(), tc.want)
		}
	}
}

func TestComb(tt *testing.T) {
	got, err := Comb(NewInt(52), NewInt(5))
	if err != nil {
		tt.Fatal(err)
	}
	if got.Int64() != 2598960 {
		tt.Fatalf("C(52,5) = %d", got.Int64())
	}
	got, _ = Comb(NewInt(10), NewInt(11))
	if !got.IsZero() {
		tt.Fatal("C(10,11) != 0")
	}
}

func TestLog10(tt *testing.T) {
	p, exact, err := NewInt(123456).Log10()
	if err != nil || p != 5 || exact {
		tt.Fatalf("log10(123456) = %d, %v", p, exact)
	}
	t, _ := TenPow(30)
	p, exact, err = t.Log10()
	if err != nil || p != 30 || !exact {
		tt.Fatalf("log10(10^30) = %d, %v", p, exact)
	}
}

func TestDigitsAndDigit(tt *testing.T) {
	x := NewInt(1234)
	if x.Digits() != 4 {
		tt.Fatalf("Digits(1234) = %d", x.Digits())
	}
	if x.Digit(1) != 3 {
		tt.Fatalf("Digit(1234, 1) = %d", x.Digit(1))
	}
	big1, _ := TenPow(25)
	if big1.Digits() != 26 {
		tt.Fatalf("Digits(10^25) = %d", big1.Digits())
	}
}

func TestFacRem(tt *testing.T) {
	n, rem := NewInt(540).FacRem(NewInt(3))
	if n != 3 || rem.Int64() != 20 {
		tt.Fatalf("FacRem(540, 3) = %d, %d", n, rem.Int64())
	}
}

func TestParseFormatRoundTrip(tt *testing.T) {
	testCases := []string{
		"0", "1", "-1", "255", "-255", "4294967295", "4294967296",
		"123456789012345678901234567890",
	}
	for _, tc := range testCases {
		z := ParseInt(tc)
		if z.String() != tc {
			tt.Fatalf("decimal round trip %q -> %q", tc, z.String())
		}
		if got := ParseInt(string(z.AppendHex(nil))); !got.Eq(z) {
			tt.Fatalf("hex round trip %q", tc)
		}
		if got := ParseInt(string(z.AppendBinary(nil))); !got.Eq(z) {
			tt.Fatalf("binary round trip %q", tc)
		}
		if got := ParseInt(string(z.AppendOctal(nil))); !got.Eq(z) {
			tt.Fatalf("octal round trip %q", tc)
		}
	}
}

func TestParseBases(tt *testing.T) {
	testCases := []struct {
		in   string
		want int64
	}{
		{"0x1f", 31}, {"0b101", 5}, {"017", 15}, {"-0x10", -16},
		{"1.25", 125}, {"+42", 42},
	}
	for _, tc := range testCases {
		if got := ParseInt(tc.in); got.Int64() != tc.want {
			tt.Fatalf("ParseInt(%q) = %d, want %d", tc.in, got.Int64(), tc.want)
		}
	}
}

func TestHnrmod(tt *testing.T) {
	// v mod h*2^n+r against the ordinary mod.
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 50; i++ {
		v := randInt(rng, 20).Abs()
		h := NewInt(int64(rng.Intn(50) + 1))
		n := NewInt(int64(rng.Intn(100) + 40))
		r := NewInt(int64(rng.Intn(3) - 1))
		got, err := Hnrmod(v, h, n, r)
		if err != nil {
			tt.Fatal(err)
		}
		modulus := h.Shift(n.Int64()).Add(r)
		want, _, _ := v.Mod(modulus, 0)
		if !got.Eq(want) {
			tt.Fatalf("Hnrmod(%v, %v, %v, %v) = %v, want %v",
				toBig(v), toBig(h), toBig(n), toBig(r), toBig(got), toBig(want))
		}
	}
}

func TestMinMod(tt *testing.T) {
	m := NewInt(7)
	for v, want := range map[int64]int64{0: 0, 1: 1, 3: 3, 4: -3, 6: -1, 10: 3} {
		got, err := NewInt(v).MinMod(m)
		if err != nil {
			tt.Fatal(err)
		}
		if got.Int64() != want {
			tt.Fatalf("MinMod(%d, 7) = %d, want %d", v, got.Int64(), want)
		}
	}
}
