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

// Package qio parses and emits extended precision rationals.
//
// Accepted input forms are decimal integers, fractions with a slash,
// floating point and exponential notation, hex with a leading "0x",
// binary with "0b" and octal with a bare leading "0". Emission covers
// the calculator's output modes: fraction, integer, fixed point,
// exponential, automatic real, hex, octal and binary, driven by the
// mathconf configuration.
package qio

import (
	"errors"

	"github.com/ratcore/ratcore/lib/qrat"
	"github.com/ratcore/ratcore/lib/zint"
)

var ErrSyntax = errors.New("qio: invalid number syntax")

// Flags modify Scan's end-of-number acceptance.
type Flags int

const (
	// AllowSlash accepts a slash-separated fraction.
	AllowSlash Flags = 1 << iota
	// AllowImag accepts a trailing i marking an imaginary part.
	AllowImag
)

func isDigit(c byte) bool  { return c >= '0' && c <= '9' }
func isLetter(c byte) bool { return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' }

// scanDenominator consumes a slash and the denominator literal after a
// non-decimal numerator, so hex, octal and binary fractions round-trip
// through their emitted forms.
func scanDenominator(s string, i int, flags Flags) int {
	if flags&AllowSlash == 0 || i >= len(s) || s[i] != '/' {
		return i
	}
	i++
	if i+1 < len(s) && s[i] == '0' && (s[i+1] == 'x' || s[i+1] == 'X') {
		i += 2
		for i < len(s) && (isDigit(s[i]) ||
			(s[i] >= 'a' && s[i] <= 'f') || (s[i] >= 'A' && s[i] <= 'F')) {
			i++
		}
		return i
	}
	if i+1 < len(s) && s[i] == '0' && (s[i+1] == 'b' || s[i+1] == 'B') {
		i += 2
		for i < len(s) && (s[i] == '0' || s[i] == '1') {
			i++
		}
		return i
	}
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	return i
}

// tailOK checks that a just-scanned number is not followed by characters
// that would make it illegal.
func tailOK(s string, i int, flags Flags) int {
	if i < len(s) && (s[i] == 'i' || s[i] == 'I') && flags&AllowImag != 0 {
		i++
	}
	if i < len(s) {
		c := s[i]
		if c == '.' || (c == '/' && flags&AllowSlash != 0) ||
			isDigit(c) || isLetter(c) {
			return -1
		}
	}
	return i
}

// Scan returns the count of leading bytes of s forming a legal number,
// or -1 when the format is definitely illegal.
func Scan(s string, flags Flags) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		return -1
	}
	if i+1 < len(s) && s[i] == '0' && (s[i+1] == 'x' || s[i+1] == 'X') {
		i += 2
		for i < len(s) && (isDigit(s[i]) ||
			(s[i] >= 'a' && s[i] <= 'f') || (s[i] >= 'A' && s[i] <= 'F')) {
			i++
		}
		return tailOK(s, scanDenominator(s, i, flags), flags)
	}
	if i+1 < len(s) && s[i] == '0' && (s[i+1] == 'b' || s[i+1] == 'B') {
		i += 2
		for i < len(s) && (s[i] == '0' || s[i] == '1') {
			i++
		}
		return tailOK(s, scanDenominator(s, i, flags), flags)
	}
	if i+1 < len(s) && s[i] == '0' && isDigit(s[i+1]) {
		for i < len(s) && s[i] >= '0' && s[i] <= '7' {
			i++
		}
		return tailOK(s, scanDenominator(s, i, flags), flags)
	}
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i < len(s) && s[i] == '/' && flags&AllowSlash != 0 {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
		}
		return tailOK(s, i, flags)
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
		}
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			return -1
		}
		for i < len(s) && isDigit(s[i]) {
			i++
		}
	}
	return tailOK(s, i, flags)
}

// ParseZ parses a signed integer, auto-detecting hex, binary and octal
// prefixes and ignoring embedded periods.
func ParseZ(s string) *zint.Int {
	return zint.ParseInt(s)
}

// Parse converts a string in any accepted form into a canonical
// rational.
func Parse(s string) (*qrat.Rat, error) {
	if Scan(s, AllowSlash) < 0 {
		return nil, ErrSyntax
	}
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	hex := false
	if i+1 < len(s) && s[i] == '0' && (s[i+1] == 'x' || s[i+1] == 'X') {
		hex = true
		i += 2
	} else if i+1 < len(s) && s[i] == '0' && (s[i+1] == 'b' || s[i+1] == 'B') {
		i += 2
	}
	for i < len(s) && (isDigit(s[i]) || (hex &&
		((s[i] >= 'a' && s[i] <= 'f') || (s[i] >= 'A' && s[i] <= 'F')))) {
		i++
	}

	num := zint.ParseInt(s)
	den := zint.One
	decimals := int64(0)
	exp := int64(0)
	negExp := false

	switch {
	case i < len(s) && s[i] == '/':
		den = zint.ParseInt(s[i+1:])
	case i < len(s) && (s[i] == '.' || s[i] == 'e' || s[i] == 'E'):
		if s[i] == '.' {
			i++
			for i < len(s) && isDigit(s[i]) {
				i++
				decimals++
			}
		}
		if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
			i++
			if i < len(s) && s[i] == '+' {
				i++
			} else if i < len(s) && s[i] == '-' {
				negExp = true
				i++
			}
			for i < len(s) && isDigit(s[i]) {
				exp = exp*10 + int64(s[i]-'0')
				if exp > 1<<31 {
					return nil, ErrSyntax
				}
				i++
			}
		}
		var err error
		den, err = zint.TenPow(decimals)
		if err != nil {
			return nil, err
		}
	}
	if num.IsZero() {
		return qrat.Zero, nil
	}
	if exp != 0 {
		t, err := zint.TenPow(exp)
		if err != nil {
			return nil, err
		}
		if negExp {
			den = den.Mul(t)
		} else {
			num = num.Mul(t)
		}
	}
	return qrat.New(num, den)
}
