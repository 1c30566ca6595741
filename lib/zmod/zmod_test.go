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

package zmod

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/ratcore/ratcore/lib/zint"
)

func randOdd(rng *rand.Rand, limbs int) *zint.Int {
	v := make([]uint32, limbs)
	for i := range v {
		v[i] = rng.Uint32()
	}
	v[0] |= 1
	v[limbs-1] |= 1 << 30
	return zint.FromLimbs(v)
}

func randVal(rng *rand.Rand, limbs int) *zint.Int {
	n := rng.Intn(limbs) + 1
	v := make([]uint32, n)
	for i := range v {
		v[i] = rng.Uint32()
	}
	return zint.FromLimbs(v)
}

func asBig(x *zint.Int) *big.Int {
	b, _ := new(big.Int).SetString(x.String(), 10)
	return b
}

func TestEncodeDecodeRoundTrip(tt *testing.T) {
	rng := rand.New(rand.NewSource(20))
	for i := 0; i < 50; i++ {
		m := randOdd(rng, rng.Intn(6)+1)
		rp, err := New(m)
		if err != nil {
			tt.Fatal(err)
		}
		a := randVal(rng, 8)
		enc, err := rp.Encode(a)
		if err != nil {
			tt.Fatal(err)
		}
		dec, err := rp.Decode(enc)
		if err != nil {
			tt.Fatal(err)
		}
		want, _, _ := a.Mod(m, 0)
		if !dec.Eq(want) {
			tt.Fatalf("decode(encode(%v)) mod %v = %v, want %v",
				asBig(a), asBig(m), asBig(dec), asBig(want))
		}
	}
}

func TestEncodeSpecialValues(tt *testing.T) {
	m := zint.NewInt(1000003)
	rp, err := New(m)
	if err != nil {
		tt.Fatal(err)
	}
	for _, v := range []int64{0, 1, -1, 2} {
		enc, err := rp.Encode(zint.NewInt(v))
		if err != nil {
			tt.Fatal(err)
		}
		dec, err := rp.Decode(enc)
		if err != nil {
			tt.Fatal(err)
		}
		want, _, _ := zint.NewInt(v).Mod(m, 0)
		if !dec.Eq(want) {
			tt.Fatalf("special %d: decode = %v, want %v", v, asBig(dec), asBig(want))
		}
	}
}

func TestREDCMulMatchesBig(tt *testing.T) {
	rng := rand.New(rand.NewSource(21))
	for i := 0; i < 50; i++ {
		m := randOdd(rng, rng.Intn(5)+1)
		rp, err := New(m)
		if err != nil {
			tt.Fatal(err)
		}
		a := randVal(rng, 4)
		b := randVal(rng, 4)
		ea, _ := rp.Encode(a)
		eb, _ := rp.Encode(b)
		prod, err := rp.Mul(ea, eb)
		if err != nil {
			tt.Fatal(err)
		}
		got, err := rp.Decode(prod)
		if err != nil {
			tt.Fatal(err)
		}
		want := new(big.Int).Mul(asBig(a), asBig(b))
		want.Mod(want, asBig(m))
		if asBig(got).Cmp(want) != 0 {
			tt.Fatalf("redc mul: %v * %v mod %v = %v, want %v",
				asBig(a), asBig(b), asBig(m), asBig(got), want)
		}
	}
}

func TestREDCPower(tt *testing.T) {
	m := zint.NewInt(1000000007)
	rp, err := New(m)
	if err != nil {
		tt.Fatal(err)
	}
	base, _ := rp.Encode(zint.NewInt(3))
	pow, err := rp.Power(base, zint.NewInt(1000))
	if err != nil {
		tt.Fatal(err)
	}
	got, err := rp.Decode(pow)
	if err != nil {
		tt.Fatal(err)
	}
	want := new(big.Int).Exp(big.NewInt(3), big.NewInt(1000), big.NewInt(1000000007))
	if asBig(got).Cmp(want) != 0 {
		tt.Fatalf("3^1000 mod 1e9+7 = %v, want %v", asBig(got), want)
	}
}

func TestPowerModAgainstBig(tt *testing.T) {
	rng := rand.New(rand.NewSource(22))
	for i := 0; i < 40; i++ {
		// Mix small, odd, even and large moduli to cover all three
		// strategies.
		var m *zint.Int
		switch i % 3 {
		case 0:
			m = randOdd(rng, rng.Intn(4)+1)
		case 1:
			m = randVal(rng, 3).Add(zint.Two) // any parity
		default:
			m = randOdd(rng, 25) // above the pow2 threshold
		}
		if m.IsZero() || m.IsNeg() {
			continue
		}
		a := randVal(rng, 4)
		e := zint.NewInt(int64(rng.Intn(5000)))
		got, err := PowerMod(a, e, m)
		if err != nil {
			tt.Fatal(err)
		}
		want := new(big.Int).Exp(asBig(a), asBig(e), asBig(m))
		if asBig(got).Cmp(want) != 0 {
			tt.Fatalf("PowerMod(%v, %v, %v) = %v, want %v",
				asBig(a), asBig(e), asBig(m), asBig(got), want)
		}
	}
}

func TestPowerModKnown(tt *testing.T) {
	got, err := PowerMod(zint.Two, zint.NewInt(1000000), zint.NewInt(1000000007))
	if err != nil {
		tt.Fatal(err)
	}
	want := new(big.Int).Exp(big.NewInt(2), big.NewInt(1000000), big.NewInt(1000000007))
	if asBig(got).Cmp(want) != 0 {
		tt.Fatalf("2^1000000 mod 1e9+7 = %v, want %v", asBig(got), want)
	}
}

func TestCacheLRU(tt *testing.T) {
	var c Cache
	mods := make([]*zint.Int, maxREDC+10)
	for i := range mods {
		mods[i] = zint.NewInt(int64(2*i + 1001))
		if _, err := c.Find(mods[i]); err != nil {
			tt.Fatal(err)
		}
	}
	if c.Len() != maxREDC {
		tt.Fatalf("cache length %d, want %d", c.Len(), maxREDC)
	}
	// The most recent moduli are still hits (pointer equality path).
	rp1, _ := c.Find(mods[len(mods)-1])
	rp2, _ := c.Find(mods[len(mods)-1])
	if rp1 != rp2 {
		tt.Fatal("repeated lookup built a fresh state")
	}
	// Value-equality lookup with a distinct pointer.
	rp3, _ := c.Find(zint.NewInt(int64(2*(len(mods)-1) + 1001)))
	if rp3 != rp1 {
		tt.Fatal("value-equal lookup missed")
	}
	c.Clear()
	if c.Len() != 0 {
		tt.Fatal("clear left entries")
	}
}

func TestPrimeTest(tt *testing.T) {
	testCases := []struct {
		n    string
		want bool
	}{
		{"2", true},
		{"3", true},
		{"4", false},
		{"561", false},        // Carmichael
		{"1000000007", true},
		{"1000000005", false},
		{"2147483647", true},  // 2^31-1
		{"4294967297", false}, // F5 = 641 * 6700417
		{"170141183460469231731687303715884105727", true}, // 2^127-1
		{"170141183460469231731687303715884105725", false},
	}
	for _, tc := range testCases {
		got, err := PrimeTest(zint.ParseInt(tc.n), 20, zint.Zero)
		if err != nil {
			tt.Fatal(err)
		}
		if got != tc.want {
			tt.Fatalf("PrimeTest(%s) = %v, want %v", tc.n, got, tc.want)
		}
	}
}

func TestPrimeTestWitnessModes(tt *testing.T) {
	n := zint.ParseInt("170141183460469231731687303715884105727")
	for _, skip := range []*zint.Int{zint.Zero, zint.One, zint.NewInt(5)} {
		got, err := PrimeTest(n, 10, skip)
		if err != nil {
			tt.Fatal(err)
		}
		if !got {
			tt.Fatalf("2^127-1 rejected with skip=%v", asBig(skip))
		}
	}
	c := zint.ParseInt("170141183460469231731687303715884105725")
	for _, skip := range []*zint.Int{zint.Zero, zint.One, zint.NewInt(5)} {
		got, err := PrimeTest(c, 10, skip)
		if err != nil {
			tt.Fatal(err)
		}
		if got {
			tt.Fatalf("composite accepted with skip=%v", asBig(skip))
		}
	}
}

func TestNextCand(tt *testing.T) {
	cand, ok, err := NextCand(zint.NewInt(1000000000), 20, zint.Zero, zint.Zero, zint.One)
	if err != nil || !ok {
		tt.Fatalf("NextCand failed: %v %v", ok, err)
	}
	if cand.Int64() != 1000000007 {
		tt.Fatalf("next prime after 1e9 = %d", cand.Int64())
	}
	cand, ok, err = PrevCand(zint.NewInt(1000000000), 20, zint.Zero, zint.Zero, zint.One)
	if err != nil || !ok {
		tt.Fatalf("PrevCand failed: %v %v", ok, err)
	}
	if cand.Int64() != 999999937 {
		tt.Fatalf("prev prime before 1e9 = %d", cand.Int64())
	}
}

func TestNextCandCongruence(tt *testing.T) {
	// Next value congruent to 1 mod 4 beyond 100 that is prime: 101.
	cand, ok, err := NextCand(zint.NewInt(100), 20, zint.Zero,
		zint.One, zint.NewInt(4))
	if err != nil || !ok {
		tt.Fatalf("NextCand: %v %v", ok, err)
	}
	if cand.Int64() != 101 {
		tt.Fatalf("cand = %d, want 101", cand.Int64())
	}
	// Residue classes sharing a factor with the modulus have no
	// candidates.
	_, ok, err = NextCand(zint.NewInt(100), 20, zint.Zero,
		zint.Two, zint.NewInt(4))
	if err != nil {
		tt.Fatal(err)
	}
	if ok {
		tt.Fatal("impossible residue class produced a candidate")
	}
}
