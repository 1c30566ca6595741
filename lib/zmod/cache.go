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

package zmod

import (
	"github.com/golang/glog"

	"github.com/ratcore/ratcore/lib/zint"
)

// maxREDC is the number of REDC states kept per cache.
const maxREDC = 256

type cacheEntry struct {
	mod *zint.Int
	rp  *REDC
	age uint64
}

// Cache holds REDC states keyed by modulus, evicted least-recently-used
// by a monotonically increasing age stamp. Entries are self-contained,
// so clearing the cache at any time is safe.
type Cache struct {
	entries []cacheEntry
	age     uint64
}

// Find returns the cached REDC state for mod, creating and inserting one
// when absent. Lookup tries pointer equality before value equality.
func (c *Cache) Find(mod *zint.Int) (*REDC, error) {
	for i := range c.entries {
		if c.entries[i].mod == mod {
			c.age++
			c.entries[i].age = c.age
			return c.entries[i].rp, nil
		}
	}
	for i := range c.entries {
		if c.entries[i].mod.Eq(mod) {
			c.age++
			c.entries[i].age = c.age
			return c.entries[i].rp, nil
		}
	}
	rp, err := New(mod)
	if err != nil {
		return nil, err
	}
	c.age++
	e := cacheEntry{mod: mod, rp: rp, age: c.age}
	if len(c.entries) < maxREDC {
		c.entries = append(c.entries, e)
		return rp, nil
	}
	oldest := 0
	for i := 1; i < len(c.entries); i++ {
		if c.entries[i].age < c.entries[oldest].age {
			oldest = i
		}
	}
	glog.V(2).Infof("zmod: REDC cache full, evicting %d limb modulus",
		c.entries[oldest].mod.Len())
	c.entries[oldest] = e
	return rp, nil
}

// Len returns the number of cached states.
func (c *Cache) Len() int { return len(c.entries) }

// Clear drops every cached state.
func (c *Cache) Clear() {
	c.entries = nil
}

// cache is the process-wide REDC state cache.
var cache Cache

// Find fetches (or creates) the process-wide REDC state for mod.
func Find(mod *zint.Int) (*REDC, error) { return cache.Find(mod) }

// ClearCache drops the process-wide REDC cache.
func ClearCache() { cache.Clear() }

// CacheLen reports the population of the process-wide REDC cache.
func CacheLen() int { return cache.Len() }
