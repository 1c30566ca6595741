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
	"testing"
)

func TestIsSmallPrimeAgainstBig(tt *testing.T) {
	for n := int64(0); n < 2000; n++ {
		want := big.NewInt(n).ProbablyPrime(32)
		got := NewInt(n).IsSmallPrime() == 1
		if got != want {
			tt.Fatalf("IsSmallPrime(%d) = %v, want %v", n, got, want)
		}
	}
	// Spot checks across the bitmap/trial-division boundary.
	testCases := []struct {
		n    int64
		want int
	}{
		{65521, 1},   // largest prime below 2^16
		{65535, 0},
		{65537, 1},   // smallest prime above 2^16
		{1000003, 1},
		{1000001, 0}, // 101 * 9901
		{4294967291, 1},
		{4294967295, 0},
	}
	for _, tc := range testCases {
		if got := NewInt(tc.n).IsSmallPrime(); got != tc.want {
			tt.Fatalf("IsSmallPrime(%d) = %d, want %d", tc.n, got, tc.want)
		}
	}
	big1, _ := BitValue(40)
	if NewUint(big1.Uint64()).IsSmallPrime() != -1 {
		tt.Fatal("2^40 should be out of small range")
	}
}

func TestNextPrevPrime(tt *testing.T) {
	testCases := []struct {
		n    int64
		next uint64
		prev uint64
	}{
		{10, 11, 7},
		{100, 101, 97},
		{65520, 65521, 65519},
		{65522, 65537, 65521},
		{1000000, 1000003, 999983},
		{1000000000, 1000000007, 999999937},
	}
	for _, tc := range testCases {
		if got := NewInt(tc.n).NextPrime(); got != tc.next {
			tt.Fatalf("NextPrime(%d) = %d, want %d", tc.n, got, tc.next)
		}
		if got := NewInt(tc.n).PrevPrime(); got != tc.prev {
			tt.Fatalf("PrevPrime(%d) = %d, want %d", tc.n, got, tc.prev)
		}
	}
	if got := NewInt(1).NextPrime(); got != 2 {
		tt.Fatalf("NextPrime(1) = %d", got)
	}
	if got := NewInt(2).PrevPrime(); got != 0 {
		tt.Fatalf("PrevPrime(2) = %d", got)
	}
}

func TestNextPrimeMatchesProbable(tt *testing.T) {
	// Every candidate the jump walk returns must satisfy an
	// independent primality check.
	n := int64(1 << 20)
	for i := 0; i < 50; i++ {
		p := NewInt(n).NextPrime()
		if !big.NewInt(int64(p)).ProbablyPrime(32) {
			tt.Fatalf("NextPrime(%d) = %d is composite", n, p)
		}
		n = int64(p)
	}
}

func TestPix(tt *testing.T) {
	testCases := []struct {
		n    int64
		want int64
	}{
		{1, 0}, {2, 1}, {10, 4}, {100, 25}, {1000, 168},
		{10000, 1229}, {65536, 6542}, {100000, 9592},
	}
	for _, tc := range testCases {
		if got := NewInt(tc.n).Pix(); got != tc.want {
			tt.Fatalf("Pix(%d) = %d, want %d", tc.n, got, tc.want)
		}
	}
}

func TestSmallFactor(tt *testing.T) {
	testCases := []struct {
		n     string
		limit uint64
		want  uint64
	}{
		{"91", 100, 7},
		{"97", 100, 97},
		{"1000003", 1000, 0},
		{"4295098369", 70000, 65537}, // 65537^2
		{"6", 100, 2},
		{"35", 4, 0},
	}
	for _, tc := range testCases {
		z := ParseInt(tc.n)
		if got := z.SmallFactor(tc.limit); got != tc.want {
			tt.Fatalf("SmallFactor(%s, %d) = %d, want %d", tc.n, tc.limit, got, tc.want)
		}
	}
}

func TestPrimorial(tt *testing.T) {
	got, err := Primorial(NewInt(10))
	if err != nil {
		tt.Fatal(err)
	}
	if got.Int64() != 2*3*5*7 {
		tt.Fatalf("Primorial(10) = %d", got.Int64())
	}
	got, _ = Primorial(NewInt(20))
	if got.Int64() != 2*3*5*7*11*13*17*19 {
		tt.Fatalf("Primorial(20) = %d", got.Int64())
	}
}

func TestLcmFact(tt *testing.T) {
	got, err := LcmFact(NewInt(10))
	if err != nil {
		tt.Fatal(err)
	}
	if got.Int64() != 2520 {
		tt.Fatalf("LcmFact(10) = %d, want 2520", got.Int64())
	}
}

func TestLowFactor(tt *testing.T) {
	if got := NewInt(77).LowFactor(10); got != 7 {
		tt.Fatalf("LowFactor(77, 10) = %d", got)
	}
	if got := NewInt(97).LowFactor(10); got != 1 {
		tt.Fatalf("LowFactor(97, 10) = %d", got)
	}
}
