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

package qio

import (
	"bytes"
	"io"
	"strconv"

	"github.com/ratcore/ratcore/lib/mathconf"
	"github.com/ratcore/ratcore/lib/qrat"
	"github.com/ratcore/ratcore/lib/zint"
)

// Emitter writes formatted numbers through a single byte-oriented
// callback, with a width-aware fill helper for column output.
type Emitter struct {
	w   io.ByteWriter
	cfg *mathconf.Config
}

// NewEmitter wraps a byte writer with the configuration that drives
// rounding, zero padding and approximation markers.
func NewEmitter(w io.ByteWriter, cfg *mathconf.Config) *Emitter {
	if cfg == nil {
		cfg = mathconf.Global
	}
	return &Emitter{w: w, cfg: cfg}
}

func (e *Emitter) putc(c byte) error { return e.w.WriteByte(c) }

func (e *Emitter) puts(s []byte) error {
	for _, c := range s {
		if err := e.putc(c); err != nil {
			return err
		}
	}
	return nil
}

// Fill writes s padded with spaces to the given width: leading spaces
// for positive width, trailing for negative.
func (e *Emitter) Fill(s []byte, width int64) error {
	pad := width - int64(len(s))
	if width > 0 {
		for ; pad > 0; pad-- {
			if err := e.putc(' '); err != nil {
				return err
			}
		}
	}
	if err := e.puts(s); err != nil {
		return err
	}
	if width < 0 {
		for pad = -width - int64(len(s)); pad > 0; pad-- {
			if err := e.putc(' '); err != nil {
				return err
			}
		}
	}
	return nil
}

// Rational emits q in the given output mode with the given count of
// fractional digits. ModeDefault selects the configured mode, and then
// a configured secondary mode is appended as a comment.
func (e *Emitter) Rational(q *qrat.Rat, mode int, digits int64) error {
	mode2 := mathconf.Mode2Off
	if mode == mathconf.ModeDefault {
		mode = e.cfg.OutMode
		mode2 = e.cfg.OutMode2
	}
	if err := e.emitMode(q, mode, digits); err != nil {
		return err
	}
	if mode2 != mathconf.Mode2Off {
		if err := e.puts([]byte(" /* ")); err != nil {
			return err
		}
		if err := e.emitMode(q, mode2, digits); err != nil {
			return err
		}
		return e.puts([]byte(" */"))
	}
	return nil
}

func (e *Emitter) emitMode(q *qrat.Rat, mode int, digits int64) error {
	switch mode {
	case mathconf.ModeInt:
		if e.cfg.TildeOK && q.IsFrac() {
			if err := e.putc('~'); err != nil {
				return err
			}
		}
		return e.emitInt(q)

	case mathconf.ModeReal:
		prec := q.DecPlaces()
		if prec < 0 || prec > digits {
			if e.cfg.TildeOK {
				if err := e.putc('~'); err != nil {
					return err
				}
			}
		}
		if e.cfg.FullZero || prec < 0 || prec > digits {
			prec = digits
		}
		return e.emitFloat(q, prec)

	case mathconf.ModeFrac:
		return e.emitFrac(q, false)

	case mathconf.ModeExp:
		return e.emitExp(q, digits)

	case mathconf.ModeRealAuto:
		p := int64(e.cfg.OutDigits)
		if p == 0 {
			p = 1
		}
		if q.IsZero() {
			return e.emitMode(q, mathconf.ModeReal, p-1)
		}
		exp, err := q.Abs().ILog10()
		if err != nil {
			return err
		}
		if p > exp && exp >= -p {
			return e.emitMode(q, mathconf.ModeReal, p-1-exp)
		}
		return e.emitMode(q, mathconf.ModeExp, p-1)

	case mathconf.ModeHex:
		if err := e.puts(q.Num().AppendHex(nil)); err != nil {
			return err
		}
		if q.IsFrac() {
			if err := e.putc('/'); err != nil {
				return err
			}
			return e.puts(q.Den().AppendHex(nil))
		}
		return nil

	case mathconf.ModeOctal:
		if err := e.puts(q.Num().AppendOctal(nil)); err != nil {
			return err
		}
		if q.IsFrac() {
			if err := e.putc('/'); err != nil {
				return err
			}
			return e.puts(q.Den().AppendOctal(nil))
		}
		return nil

	case mathconf.ModeBinary:
		if err := e.puts(q.Num().AppendBinary(nil)); err != nil {
			return err
		}
		if q.IsFrac() {
			if err := e.putc('/'); err != nil {
				return err
			}
			return e.puts(q.Den().AppendBinary(nil))
		}
		return nil
	}
	return ErrSyntax
}

// emitFrac prints num or num/den; force prints the slash even for
// integers.
func (e *Emitter) emitFrac(q *qrat.Rat, force bool) error {
	if err := e.puts(q.Num().AppendDecimal(nil)); err != nil {
		return err
	}
	if force || q.IsFrac() {
		if err := e.putc('/'); err != nil {
			return err
		}
		return e.puts(q.Den().AppendDecimal(nil))
	}
	return nil
}

// emitInt truncates the fractional part under the configured output
// rounding.
func (e *Emitter) emitInt(q *qrat.Rat) error {
	z := q.Num()
	if q.IsFrac() {
		var err error
		z, _, err = q.Num().Quo(q.Den(), zint.Round(e.cfg.OutRound))
		if err != nil {
			return err
		}
	}
	return e.puts(z.AppendDecimal(nil))
}

// emitFloat prints q with precision fractional digits, as in 193.784.
func (e *Emitter) emitFloat(q *qrat.Rat, precision int64) error {
	scale, err := zint.TenPow(precision)
	if err != nil {
		return err
	}
	z := q.Num().Mul(scale)
	if q.IsFrac() {
		z, _, err = z.Quo(q.Den(), zint.Round(e.cfg.OutRound))
		if err != nil {
			return err
		}
	}
	if q.IsNeg() && z.IsZero() {
		if err := e.putc('-'); err != nil {
			return err
		}
	}
	return e.emitScaled(z, precision)
}

// emitScaled prints z with a decimal point precision digits from the
// right, honoring the leading-zero configuration.
func (e *Emitter) emitScaled(z *zint.Int, precision int64) error {
	digits := z.Abs().AppendDecimal(nil)
	if z.IsNeg() {
		if err := e.putc('-'); err != nil {
			return err
		}
	}
	if precision <= 0 {
		return e.puts(digits)
	}
	point := int64(len(digits)) - precision
	if point <= 0 {
		if e.cfg.LeadZero {
			if err := e.putc('0'); err != nil {
				return err
			}
		}
		if err := e.putc('.'); err != nil {
			return err
		}
		for ; point < 0; point++ {
			if err := e.putc('0'); err != nil {
				return err
			}
		}
		return e.puts(digits)
	}
	if err := e.puts(digits[:point]); err != nil {
		return err
	}
	if err := e.putc('.'); err != nil {
		return err
	}
	return e.puts(digits[point:])
}

// emitExp prints q in exponential notation, as in 4.1856e34.
func (e *Emitter) emitExp(q *qrat.Rat, precision int64) error {
	if q.IsZero() {
		return e.puts([]byte("0.0"))
	}
	num := q.Num().Abs()
	den := q.Den()
	exponent := num.Digits() - den.Digits()
	if exponent > 0 {
		t, err := zint.TenPow(exponent)
		if err != nil {
			return err
		}
		den = den.Mul(t)
	}
	if exponent < 0 {
		t, err := zint.TenPow(-exponent)
		if err != nil {
			return err
		}
		num = num.Mul(t)
	}
	if num.Cmp(den) < 0 {
		num = num.MulInt(10)
		exponent--
	}
	q2, err := qrat.New(num.CopySign(q.IsNeg()), den)
	if err != nil {
		return err
	}
	if err := e.emitFloat(q2, precision); err != nil {
		return err
	}
	if exponent != 0 {
		if err := e.putc('e'); err != nil {
			return err
		}
		return e.puts([]byte(strconv.FormatInt(exponent, 10)))
	}
	return nil
}

// EmitString formats q into a string using the given mode and digit
// count, diverting the byte stream into memory.
func EmitString(q *qrat.Rat, mode int, digits int64) (string, error) {
	var buf bytes.Buffer
	e := NewEmitter(&buf, mathconf.Global)
	if err := e.Rational(q, mode, digits); err != nil {
		return "", err
	}
	return buf.String(), nil
}
