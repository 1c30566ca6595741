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

// Package mathconf holds the tunable configuration consulted by the
// arithmetic core: algorithm crossover thresholds, output formatting
// defaults and rounding modes.
//
// The core only ever reads this configuration. The interactive layer (or
// a test) may replace fields before computation starts. Concurrent
// mutation is not supported; the core is single-threaded by contract.
package mathconf

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

// Output modes for formatted number emission.
const (
	ModeDefault = iota
	ModeFrac
	ModeInt
	ModeReal
	ModeExp
	ModeHex
	ModeOctal
	ModeBinary
	ModeRealAuto
	ModeMax = ModeRealAuto

	// Mode2Off disables the secondary output mode.
	Mode2Off = ModeMax + 1
)

var errBadMode = errors.New("mathconf: output mode out of range")

// Config is the calculator configuration surface. The zero value is not
// useful; start from Default().
type Config struct {
	// Algorithm crossover thresholds, in limbs.
	Mul2  int `yaml:"mul2"`  // schoolbook vs Karatsuba multiply
	Sq2   int `yaml:"sq2"`   // schoolbook vs split square
	Pow2  int `yaml:"pow2"`  // direct mod vs multiply-shift estimator
	Redc2 int `yaml:"redc2"` // fused REDC loop vs multiply-then-decode

	// Output formatting.
	OutDigits int  `yaml:"outdigits"` // fractional digits for real/exp modes
	OutMode   int  `yaml:"outmode"`   // primary output mode
	OutMode2  int  `yaml:"outmode2"`  // secondary output mode, Mode2Off to disable
	OutRound  int  `yaml:"outround"`  // rounding mask for output conversion
	LeadZero  bool `yaml:"leadzero"`  // print 0 before a leading decimal point
	FullZero  bool `yaml:"fullzero"`  // pad fractional digits with trailing zeros
	TildeOK   bool `yaml:"tilde_ok"`  // mark approximations with a leading ~

	// TrigRound is the rounding mask used internally by the
	// transcendental functions when discarding guard bits.
	TrigRound int `yaml:"triground"`
}

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	return &Config{
		Mul2:      28,
		Sq2:       28,
		Pow2:      20,
		Redc2:     25,
		OutDigits: 20,
		OutMode:   ModeReal,
		OutMode2:  Mode2Off,
		OutRound:  24,
		LeadZero:  true,
		FullZero:  false,
		TildeOK:   true,
		TrigRound: 24,
	}
}

// Global is the process-wide configuration consulted by the core.
var Global = Default()

// Load replaces Global with the defaults overlaid by settings from a
// YAML file. A missing file is not an error and leaves Global as it is.
func Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	c := Default()
	if err := yaml.Unmarshal(data, c); err != nil {
		return err
	}
	if c.OutMode < ModeDefault || c.OutMode > ModeMax {
		return errBadMode
	}
	if c.OutMode2 < ModeDefault || c.OutMode2 > Mode2Off {
		return errBadMode
	}
	*Global = *c
	return nil
}
