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

// Package zrand is a subtractive 100 pseudo-random generator feeding a
// 256 entry shuffle table, with arbitrary-size seeding and big-integer
// draws.
//
// The subtractive lag-100 recurrence is fast and has a good period; its
// output is laundered through the shuffle table, indexed by the high
// byte of each new subtractive value so all 64 bits play a part in the
// entry selection. Following Knuth Vol 2 section 3.6, after every 100
// consecutive uses the next 909 values are discarded.
//
// This generator is NOT cryptographic. Callers who need that must use a
// cryptographically strong source instead.
package zrand

import (
	"errors"

	"github.com/ratcore/ratcore/lib/zint"
)

var (
	ErrNegSeed  = errors.New("zrand: negative seeds are reserved for future use")
	ErrNegCount = errors.New("zrand: negative bit count")
	ErrBadRange = errors.New("zrand: low value of range is not below beyond value")
	ErrShortMat = errors.New("zrand: seed matrix needs 100 values")
)

const (
	initJ       = 36
	initK       = 99
	conseqUse   = 99  // consecutive uses before a discard run
	skipLen     = 909 // values discarded after conseqUse uses
	slotCount   = 100
	shufEntries = 256
)

// reseed64 scrambling constants, a multiplier and offset drawn from the
// Rand Book of Random Numbers.
const (
	reseedA = 0x57aa0ff473c0ccbd
	reseedC = 0x12ea805718e09865
)

// State is the complete generator state. Plain assignment snapshots and
// restores it.
type State struct {
	seeded     bool
	bits       uint   // count of buffered bits
	buffer     uint64 // buffered bits, left aligned
	j, k       int
	needToSkip int
	slot       [slotCount]uint64
	shuf       [shufEntries]uint64
}

// s100 is the process-wide generator.
var s100 State

func (s *State) ensure() {
	if !s.seeded {
		*s = defaultState()
	}
}

func defaultState() State {
	st := State{
		seeded:     true,
		j:          initJ,
		k:          initK,
		needToSkip: conseqUse,
		slot:       defSubtract,
		shuf:       initShuf,
	}
	return st
}

// bump advances the two subtractive pointers and applies the lag-100
// subtraction, returning the slot index written.
func (s *State) bump() int {
	s.j++
	if s.j >= slotCount {
		s.j = 0
	}
	s.k++
	if s.k >= slotCount {
		s.k = 0
	}
	s.slot[s.k] -= s.slot[s.j]
	return s.k
}

// spin produces the next 64-bit output word, applying the discard run
// when the consecutive-use budget is spent.
func (s *State) spin() uint64 {
	if s.needToSkip <= 0 {
		for i := 0; i < skipLen; i++ {
			k := s.bump()
			idx := s.slot[k] >> 56
			s.shuf[idx] = s.slot[k]
		}
		s.needToSkip = conseqUse
	} else {
		s.needToSkip--
	}
	k := s.bump()
	idx := s.slot[k] >> 56
	out := s.shuf[idx]
	s.shuf[idx] = s.slot[k]
	return out
}

// takeBits returns the next n (1 <= n <= 64) bits of the stream in the
// low bits of the result, most significant bit drawn first.
func (s *State) takeBits(n uint) uint64 {
	var r uint64
	for got := uint(0); got < n; {
		if s.bits == 0 {
			s.buffer = s.spin()
			s.bits = 64
		}
		t := n - got
		if t > s.bits {
			t = s.bits
		}
		r = r<<t | s.buffer>>(64-t)
		s.buffer <<= t
		s.bits -= t
		got += t
	}
	return r
}

// Bits draws exactly n random bits as a big integer in [0, 2^n).
func (s *State) Bits(n int64) (*zint.Int, error) {
	if n < 0 {
		return nil, ErrNegCount
	}
	if n == 0 {
		return zint.Zero, nil
	}
	if n >= 1<<31 {
		return nil, ErrNegCount
	}
	s.ensure()
	limbs := int((n + 31) / 32)
	v := make([]uint32, limbs)
	first := uint(n % 32)
	if first == 0 {
		first = 32
	}
	v[limbs-1] = uint32(s.takeBits(first))
	for i := limbs - 2; i >= 0; i-- {
		v[i] = uint32(s.takeBits(32))
	}
	return zint.FromLimbs(v), nil
}

// Range draws a value uniformly from [low, beyond) by rejection: a mod
// of the raw draw would favor the low end of the range.
func (s *State) Range(low, beyond *zint.Int) (*zint.Int, error) {
	if low.Cmp(beyond) >= 0 {
		return nil, ErrBadRange
	}
	span := beyond.Sub(low)
	if span.IsOne() {
		return low, nil
	}
	bitlen := span.Sub(zint.One).HighBit() + 1
	for {
		r, err := s.Bits(bitlen)
		if err != nil {
			return nil, err
		}
		if r.Cmp(span) < 0 {
			return low.Add(r), nil
		}
	}
}

// Skip advances the stream by n bits without producing output.
func (s *State) Skip(n int64) {
	s.ensure()
	for n > 0 {
		t := uint(64)
		if n < 64 {
			t = uint(n)
		}
		s.takeBits(t)
		n -= int64(t)
	}
}

// reseed64 scrambles a seed 64 bits at a time through the linear
// congruence chunk' = a*chunk + c mod 2^64. Zero chunks stay zero so
// that a zero seed keeps its meaning, and the one colliding input is
// re-routed onto c to keep the map one-to-one.
func reseed64(chunks []uint64) {
	for i, c := range chunks {
		if c == 0 {
			continue
		}
		c = c*reseedA + reseedC
		if c == 0 {
			c = reseedC
		}
		chunks[i] = c
	}
}

// Seed reseeds the generator. A zero seed restores the default state; a
// positive seed is scrambled by reseed64, its low 64 bits xor-ed over
// the virgin subtractive table and the remainder used to shuffle the
// table, after which the shuffle entries are reloaded from 256 raw
// subtractive updates. Negative seeds are reserved.
func (s *State) Seed(seed *zint.Int) error {
	if seed.IsNeg() {
		return ErrNegSeed
	}
	if seed.IsZero() {
		*s = defaultState()
		return nil
	}
	chunks := seedChunks(seed)
	reseed64(chunks)

	s.seeded = false
	s.j = initJ
	s.k = initK
	s.bits = 0
	s.buffer = 0
	s.needToSkip = conseqUse
	s.slot = defSubtract

	for i := range s.slot {
		s.slot[i] ^= chunks[0]
	}
	rest := zint.FromUint64Chunks(chunks[1:])
	for i := slotCount - 1; i > 0 && rest.IsPos(); i-- {
		q, r, err := rest.DivInt(int64(i) + 1)
		if err != nil {
			return err
		}
		rest = q
		if int(r) != i {
			s.slot[i], s.slot[r] = s.slot[r], s.slot[i]
		}
	}
	s.loadShuffle()
	s.seeded = true
	return nil
}

// SeedMatrix loads the subtractive table directly from 100 caller
// supplied values (mod 2^64) instead of the scrambled-seed path.
func (s *State) SeedMatrix(m []uint64) error {
	if len(m) < slotCount {
		return ErrShortMat
	}
	s.seeded = false
	s.j = initJ
	s.k = initK
	s.bits = 0
	s.buffer = 0
	s.needToSkip = conseqUse
	copy(s.slot[:], m[:slotCount])
	s.loadShuffle()
	s.seeded = true
	return nil
}

// loadShuffle fills the shuffle table with consecutive subtractive
// values. The discard runs during loading do not touch the table; it is
// not fully loaded yet.
func (s *State) loadShuffle() {
	for i := 0; i < shufEntries; i++ {
		if s.needToSkip <= 0 {
			for sk := 0; sk < skipLen; sk++ {
				s.bump()
			}
			s.needToSkip = conseqUse
		} else {
			s.needToSkip--
		}
		k := s.bump()
		s.shuf[i] = s.slot[k]
	}
}

// seedChunks splits abs(seed) into little-endian 64-bit chunks.
func seedChunks(seed *zint.Int) []uint64 {
	limbs := seed.Limbs()
	n := (len(limbs) + 1) / 2
	chunks := make([]uint64, n)
	for i := range chunks {
		c := uint64(limbs[2*i])
		if 2*i+1 < len(limbs) {
			c |= uint64(limbs[2*i+1]) << 32
		}
		chunks[i] = c
	}
	return chunks
}

// Snapshot returns a copy of the generator state.
func (s *State) Snapshot() State {
	s.ensure()
	return *s
}

// Restore replaces the generator state with a previous snapshot.
func (s *State) Restore(st State) {
	*s = st
	s.seeded = true
}

// Eq reports whether two states would produce identical streams.
func (s *State) Eq(t *State) bool {
	return *s == *t
}

// Package-level wrappers drive the process-wide generator.

// Seed reseeds the process-wide generator.
func Seed(seed *zint.Int) error { return s100.Seed(seed) }

// SeedMatrix loads the process-wide subtractive table from values.
func SeedMatrix(m []uint64) error { return s100.SeedMatrix(m) }

// Bits draws n random bits from the process-wide generator.
func Bits(n int64) (*zint.Int, error) { return s100.Bits(n) }

// Range draws uniformly from [low, beyond).
func Range(low, beyond *zint.Int) (*zint.Int, error) { return s100.Range(low, beyond) }

// Skip advances the process-wide stream by n bits.
func Skip(n int64) { s100.Skip(n) }

// Snapshot copies the process-wide generator state.
func Snapshot() State { return s100.Snapshot() }

// Restore replaces the process-wide generator state.
func Restore(st State) { s100.Restore(st) }
