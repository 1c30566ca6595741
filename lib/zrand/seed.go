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

package zrand

import (
	"os"
	"time"

	"github.com/golang/glog"

	"github.com/ratcore/ratcore/lib/zint"
)

// fnv64 of an initial basis that keeps all-zero sample pools off the
// zero hash.
const (
	fnv64Basis = 0xcbf29ce484222325
	fnv64Prime = 0x100000001b3
)

type sampler struct {
	hash uint64
	n    int
}

func (sm *sampler) fold(b []byte) {
	h := sm.hash
	for _, c := range b {
		h ^= uint64(c)
		h *= fnv64Prime
	}
	sm.hash = h
	sm.n++
}

func (sm *sampler) fold64(v uint64) {
	var b [8]byte
	for i := range b {
		b[i] = byte(v >> (8 * i))
	}
	sm.fold(b[:])
}

// PseudoSeed collects entropy-bearing process and system state into a
// 64-bit seed value. Every sampling source is optional: when one is
// unavailable the sampler silently moves on, so the worst case is a
// deterministic time-derived seed. The result is NOT cryptographic.
func PseudoSeed() *zint.Int {
	sm := &sampler{hash: fnv64Basis}

	sm.fold64(uint64(time.Now().UnixNano()))
	sm.fold64(uint64(os.Getpid()))
	sm.fold64(uint64(os.Getppid()))
	if host, err := os.Hostname(); err == nil {
		sm.fold([]byte(host))
	}
	if wd, err := os.Getwd(); err == nil {
		if fi, err := os.Stat(wd); err == nil {
			sm.fold64(uint64(fi.ModTime().UnixNano()))
		}
	}
	samplePlatform(sm)
	if pool := make([]byte, 64); readURandom(pool) {
		sm.fold(pool)
	}
	sm.fold64(uint64(time.Now().UnixNano()))

	glog.V(2).Infof("zrand: pseudo seed folded %d sources", sm.n)
	if sm.hash == 0 {
		return zint.One
	}
	return zint.NewUint(sm.hash)
}

func readURandom(pool []byte) bool {
	f, err := os.Open("/dev/urandom")
	if err != nil {
		return false
	}
	defer f.Close()
	if _, err := f.Read(pool); err != nil {
		return false
	}
	return true
}
