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

package zrand

import (
	"testing"

	"github.com/ratcore/ratcore/lib/zint"
)

func TestSeedDeterminism(tt *testing.T) {
	var s State
	if err := s.Seed(zint.NewInt(12345)); err != nil {
		tt.Fatal(err)
	}
	a, err := s.Bits(256)
	if err != nil {
		tt.Fatal(err)
	}
	if err := s.Seed(zint.NewInt(12345)); err != nil {
		tt.Fatal(err)
	}
	b, err := s.Bits(256)
	if err != nil {
		tt.Fatal(err)
	}
	if !a.Eq(b) {
		tt.Fatal("identical seeds produced different streams")
	}
	if err := s.Seed(zint.NewInt(12346)); err != nil {
		tt.Fatal(err)
	}
	c, _ := s.Bits(256)
	if a.Eq(c) {
		tt.Fatal("different seeds produced the same stream")
	}
}

func TestSeedZeroRestoresDefault(tt *testing.T) {
	var s1, s2 State
	if err := s1.Seed(zint.Zero); err != nil {
		tt.Fatal(err)
	}
	a, _ := s1.Bits(128)
	if err := s2.Seed(zint.NewInt(999)); err != nil {
		tt.Fatal(err)
	}
	s2.Bits(64)
	if err := s2.Seed(zint.Zero); err != nil {
		tt.Fatal(err)
	}
	b, _ := s2.Bits(128)
	if !a.Eq(b) {
		tt.Fatal("seed 0 did not restore the initial state")
	}
}

func TestUnseededMatchesSeedZero(tt *testing.T) {
	var fresh, zeroed State
	if err := zeroed.Seed(zint.Zero); err != nil {
		tt.Fatal(err)
	}
	a, _ := fresh.Bits(192)
	b, _ := zeroed.Bits(192)
	if !a.Eq(b) {
		tt.Fatal("first use differs from explicit seed 0")
	}
}

func TestNegativeSeedRejected(tt *testing.T) {
	var s State
	if err := s.Seed(zint.NegOne); err != ErrNegSeed {
		tt.Fatalf("negative seed error = %v", err)
	}
}

func TestBitsLength(tt *testing.T) {
	var s State
	s.Seed(zint.NewInt(7))
	for _, n := range []int64{0, 1, 7, 32, 63, 64, 65, 200} {
		r, err := s.Bits(n)
		if err != nil {
			tt.Fatal(err)
		}
		if n == 0 {
			if !r.IsZero() {
				tt.Fatal("Bits(0) != 0")
			}
			continue
		}
		if r.HighBit() >= n {
			tt.Fatalf("Bits(%d) produced %d bits", n, r.HighBit()+1)
		}
	}
}

func TestStreamConcatenation(tt *testing.T) {
	// Drawing 128 bits equals drawing twice 64 in stream order.
	var s State
	s.Seed(zint.NewInt(55))
	x, _ := s.Bits(128)
	s.Seed(zint.NewInt(55))
	hi, _ := s.Bits(64)
	lo, _ := s.Bits(64)
	want := hi.Shift(64).Add(lo)
	if !x.Eq(want) {
		tt.Fatal("bit stream not contiguous across draws")
	}
}

func TestSkip(tt *testing.T) {
	var s State
	s.Seed(zint.NewInt(77))
	s.Skip(100)
	a, _ := s.Bits(64)
	s.Seed(zint.NewInt(77))
	s.Bits(100)
	b, _ := s.Bits(64)
	if !a.Eq(b) {
		tt.Fatal("Skip(n) diverged from discarding n bits")
	}
}

func TestSnapshotRestore(tt *testing.T) {
	var s State
	s.Seed(zint.NewInt(31337))
	s.Bits(1000)
	snap := s.Snapshot()
	a, _ := s.Bits(512)
	s.Restore(snap)
	b, _ := s.Bits(512)
	if !a.Eq(b) {
		tt.Fatal("restore did not reproduce the stream")
	}
	if !s.Eq(&s) {
		tt.Fatal("state not equal to itself")
	}
}

func TestRangeBounds(tt *testing.T) {
	var s State
	s.Seed(zint.NewInt(42))
	lo := zint.NewInt(1000)
	hi := zint.NewInt(1013)
	seen := map[int64]bool{}
	for i := 0; i < 500; i++ {
		r, err := s.Range(lo, hi)
		if err != nil {
			tt.Fatal(err)
		}
		if r.Cmp(lo) < 0 || r.Cmp(hi) >= 0 {
			tt.Fatalf("Range produced %v outside [1000, 1013)", r)
		}
		seen[r.Int64()] = true
	}
	// All thirteen values should appear across 500 draws.
	if len(seen) != 13 {
		tt.Fatalf("saw %d of 13 values", len(seen))
	}
	if _, err := s.Range(hi, lo); err != ErrBadRange {
		tt.Fatalf("inverted range error = %v", err)
	}
}

func TestSeedMatrix(tt *testing.T) {
	var s1, s2 State
	m := make([]uint64, 100)
	for i := range m {
		m[i] = uint64(i)*0x9e3779b97f4a7c15 + 1
	}
	if err := s1.SeedMatrix(m); err != nil {
		tt.Fatal(err)
	}
	if err := s2.SeedMatrix(m); err != nil {
		tt.Fatal(err)
	}
	a, _ := s1.Bits(256)
	b, _ := s2.Bits(256)
	if !a.Eq(b) {
		tt.Fatal("matrix seeding not deterministic")
	}
	if err := s1.SeedMatrix(m[:50]); err != ErrShortMat {
		tt.Fatalf("short matrix error = %v", err)
	}
}

func TestReseed64(tt *testing.T) {
	// 0 stays 0; nonzero chunks move; the map is consistent.
	chunks := []uint64{0, 1, 1}
	reseed64(chunks)
	if chunks[0] != 0 {
		tt.Fatal("reseed64 moved zero")
	}
	if chunks[1] == 1 {
		tt.Fatal("reseed64 left 1 fixed")
	}
	if chunks[1] != chunks[2] {
		tt.Fatal("reseed64 not a function")
	}
	want := uint64(1)*reseedA + reseedC
	if chunks[1] != want {
		tt.Fatalf("reseed64(1) = %#x, want %#x", chunks[1], want)
	}
}

func TestPseudoSeedUsable(tt *testing.T) {
	seed := PseudoSeed()
	if seed.IsNeg() {
		tt.Fatal("pseudo seed negative")
	}
	var s State
	if err := s.Seed(seed); err != nil {
		tt.Fatal(err)
	}
	if _, err := s.Bits(64); err != nil {
		tt.Fatal(err)
	}
}
