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

package qio

import (
	"testing"

	"github.com/ratcore/ratcore/lib/mathconf"
	"github.com/ratcore/ratcore/lib/qrat"
)

func TestScan(tt *testing.T) {
	testCases := []struct {
		in    string
		flags Flags
		want  int
	}{
		{"123", 0, 3},
		{"+123", 0, 4},
		{"-123", 0, 4},
		{"--1", 0, -1},
		{"1/2", AllowSlash, 3},
		{"1/2", 0, 1},
		{"0x1f", 0, 4},
		{"0b101", 0, 5},
		{"017", 0, 3},
		{"018", 0, -1},
		{"1.25", 0, 4},
		{"1.25e3", 0, 6},
		{"1.25e-3", 0, 7},
		{"1.25e+3", 0, 6 + 1},
		{"1e--3", 0, -1},
		{"3i", AllowImag, 2},
		{"3i", 0, -1},
		{"0x10i", AllowImag, 5},
		{"12 + 3", 0, 2},
		{"1.2.3", 0, -1},
	}
	for _, tc := range testCases {
		if got := Scan(tc.in, tc.flags); got != tc.want {
			tt.Fatalf("Scan(%q, %d) = %d, want %d", tc.in, tc.flags, got, tc.want)
		}
	}
}

func TestParse(tt *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"0", "0"},
		{"42", "42"},
		{"-42", "-42"},
		{"1/2", "1/2"},
		{"6/4", "3/2"},
		{"0.5", "1/2"},
		{"-0.25", "-1/4"},
		{"1.5e3", "1500"},
		{"25e-2", "1/4"},
		{"0x10", "16"},
		{"0b101", "5"},
		{"017", "15"},
		{"2.", "2"},
	}
	for _, tc := range testCases {
		q, err := Parse(tc.in)
		if err != nil {
			tt.Fatalf("Parse(%q): %v", tc.in, err)
		}
		if q.String() != tc.want {
			tt.Fatalf("Parse(%q) = %s, want %s", tc.in, q, tc.want)
		}
	}
	if _, err := Parse("--3"); err == nil {
		tt.Fatal("Parse accepted --3")
	}
}

func mustParse(tt *testing.T, s string) *qrat.Rat {
	tt.Helper()
	q, err := Parse(s)
	if err != nil {
		tt.Fatal(err)
	}
	return q
}

func TestEmitModes(tt *testing.T) {
	q := mustParse(tt, "-355/113")
	testCases := []struct {
		mode   int
		digits int64
		want   string
	}{
		{mathconf.ModeFrac, 20, "-355/113"},
		{mathconf.ModeReal, 4, "~-3.1416"},
		{mathconf.ModeInt, 0, "~-3"},
	}
	for _, tc := range testCases {
		got, err := EmitString(q, tc.mode, tc.digits)
		if err != nil {
			tt.Fatal(err)
		}
		if got != tc.want {
			tt.Fatalf("mode %d: %q, want %q", tc.mode, got, tc.want)
		}
	}
}

func TestEmitExact(tt *testing.T) {
	q := mustParse(tt, "3/4")
	got, err := EmitString(q, mathconf.ModeReal, 20)
	if err != nil {
		tt.Fatal(err)
	}
	// Exact at 2 places: no tilde, no padding by default.
	if got != "0.75" {
		tt.Fatalf("real(3/4) = %q", got)
	}
	cfg := *mathconf.Global
	defer func() { *mathconf.Global = cfg }()
	mathconf.Global.FullZero = true
	got, err = EmitString(q, mathconf.ModeReal, 4)
	if err != nil {
		tt.Fatal(err)
	}
	if got != "0.7500" {
		tt.Fatalf("fullzero real(3/4) = %q", got)
	}
	mathconf.Global.LeadZero = false
	got, _ = EmitString(q, mathconf.ModeReal, 2)
	if got != ".75" {
		tt.Fatalf("no leadzero real(3/4) = %q", got)
	}
}

func TestEmitExp(tt *testing.T) {
	q := mustParse(tt, "12345")
	got, err := EmitString(q, mathconf.ModeExp, 3)
	if err != nil {
		tt.Fatal(err)
	}
	if got != "1.234e4" && got != "1.235e4" {
		tt.Fatalf("exp(12345) = %q", got)
	}
	q = mustParse(tt, "0.00025")
	got, err = EmitString(q, mathconf.ModeExp, 2)
	if err != nil {
		tt.Fatal(err)
	}
	if got != "2.50e-4" {
		tt.Fatalf("exp(0.00025) = %q", got)
	}
}

func TestRoundTripThroughEmission(tt *testing.T) {
	values := []string{"0", "1", "-1", "22/7", "-355/113", "123456789/65536"}
	modes := []int{mathconf.ModeFrac, mathconf.ModeHex, mathconf.ModeOctal, mathconf.ModeBinary}
	for _, v := range values {
		q := mustParse(tt, v)
		for _, mode := range modes {
			s, err := EmitString(q, mode, 20)
			if err != nil {
				tt.Fatal(err)
			}
			got, err := Parse(s)
			if err != nil {
				tt.Fatalf("reparse %q (mode %d): %v", s, mode, err)
			}
			if !got.Eq(q) {
				tt.Fatalf("round trip %q via mode %d: %q -> %s", v, mode, s, got)
			}
		}
	}
}

func TestRealRoundTripRounds(tt *testing.T) {
	q := mustParse(tt, "1/3")
	cfg := *mathconf.Global
	defer func() { *mathconf.Global = cfg }()
	mathconf.Global.TildeOK = false
	s, err := EmitString(q, mathconf.ModeReal, 6)
	if err != nil {
		tt.Fatal(err)
	}
	got := mustParse(tt, s)
	want, err := q.Round(6, 24)
	if err != nil {
		tt.Fatal(err)
	}
	if !got.Eq(want) {
		tt.Fatalf("parse(emit(1/3, real, 6)) = %s, want %s", got, want)
	}
}

func TestRealAuto(tt *testing.T) {
	cfg := *mathconf.Global
	defer func() { *mathconf.Global = cfg }()
	mathconf.Global.OutDigits = 4
	mathconf.Global.TildeOK = false

	got, err := EmitString(mustParse(tt, "12.5"), mathconf.ModeRealAuto, 4)
	if err != nil {
		tt.Fatal(err)
	}
	if got != "12.50" && got != "12.5" {
		tt.Fatalf("auto(12.5) = %q", got)
	}
	got, err = EmitString(mustParse(tt, "1234567"), mathconf.ModeRealAuto, 4)
	if err != nil {
		tt.Fatal(err)
	}
	if got != "1.235e6" && got != "1.234e6" {
		tt.Fatalf("auto(1234567) = %q", got)
	}
}

func TestSecondaryMode(tt *testing.T) {
	cfg := *mathconf.Global
	defer func() { *mathconf.Global = cfg }()
	mathconf.Global.OutMode = mathconf.ModeFrac
	mathconf.Global.OutMode2 = mathconf.ModeHex
	got, err := EmitString(mustParse(tt, "255"), mathconf.ModeDefault, 20)
	if err != nil {
		tt.Fatal(err)
	}
	if got != "255 /* 0xff */" {
		tt.Fatalf("secondary mode output = %q", got)
	}
}
