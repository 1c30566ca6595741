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

//go:build linux

package zrand

import (
	"golang.org/x/sys/unix"
)

// samplePlatform folds unix-specific process and clock state: the
// realtime and monotonic clocks at nanosecond resolution, the ids of the
// process owner, and the kernel identification strings.
func samplePlatform(sm *sampler) {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_REALTIME, &ts); err == nil {
		sm.fold64(uint64(ts.Sec)<<32 ^ uint64(ts.Nsec))
	}
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts); err == nil {
		sm.fold64(uint64(ts.Sec)<<32 ^ uint64(ts.Nsec))
	}
	sm.fold64(uint64(unix.Getuid())<<32 | uint64(unix.Getgid()))
	sm.fold64(uint64(unix.Geteuid())<<32 | uint64(unix.Getegid()))
	var uts unix.Utsname
	if err := unix.Uname(&uts); err == nil {
		sm.fold(uts.Release[:])
		sm.fold(uts.Version[:])
		sm.fold(uts.Machine[:])
	}
	for _, path := range [...]string{".", "..", "/tmp", "/"} {
		var st unix.Stat_t
		if err := unix.Stat(path, &st); err == nil {
			sm.fold64(uint64(st.Ino) ^ uint64(st.Mtim.Nano()))
		}
	}
}
