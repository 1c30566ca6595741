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

package mathconf

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(tt *testing.T) {
	c := Default()
	if c.Mul2 != 28 || c.Sq2 != 28 || c.Pow2 != 20 || c.Redc2 != 25 {
		tt.Fatalf("threshold defaults: %+v", c)
	}
	if c.OutDigits != 20 || c.OutMode != ModeReal || c.OutMode2 != Mode2Off {
		tt.Fatalf("output defaults: %+v", c)
	}
	if !c.LeadZero || c.FullZero || !c.TildeOK {
		tt.Fatalf("zero/tilde defaults: %+v", c)
	}
}

func TestLoadMissingFileKeepsDefaults(tt *testing.T) {
	old := *Global
	defer func() { *Global = old }()
	if err := Load(filepath.Join(tt.TempDir(), "nope.yaml")); err != nil {
		tt.Fatalf("missing file should not error: %v", err)
	}
	if Global.Mul2 != old.Mul2 {
		tt.Fatal("missing file changed configuration")
	}
}

func TestLoadOverrides(tt *testing.T) {
	old := *Global
	defer func() { *Global = old }()
	path := filepath.Join(tt.TempDir(), "conf.yaml")
	data := "mul2: 16\noutdigits: 40\noutmode: 1\nfullzero: true\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		tt.Fatal(err)
	}
	if err := Load(path); err != nil {
		tt.Fatal(err)
	}
	if Global.Mul2 != 16 || Global.OutDigits != 40 ||
		Global.OutMode != ModeFrac || !Global.FullZero {
		tt.Fatalf("overrides not applied: %+v", Global)
	}
	// Untouched keys keep their defaults.
	if Global.Sq2 != 28 {
		tt.Fatalf("sq2 clobbered: %d", Global.Sq2)
	}
}

func TestLoadRejectsBadMode(tt *testing.T) {
	old := *Global
	defer func() { *Global = old }()
	path := filepath.Join(tt.TempDir(), "conf.yaml")
	if err := os.WriteFile(path, []byte("outmode: 99\n"), 0o644); err != nil {
		tt.Fatal(err)
	}
	if err := Load(path); err == nil {
		tt.Fatal("out-of-range mode accepted")
	}
}
