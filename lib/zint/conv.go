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

package zint

// ParseInt reads a signed integer in decimal, hex ("0x"), binary ("0b")
// or octal (leading "0"). Embedded periods are skipped; any other
// extraneous character stops the scan, as with the original str2z.
func ParseInt(s string) *Int {
	minus := false
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		minus = s[i] == '-'
		i++
	}
	shift := uint(0)
	if i < len(s) && s[i] == '0' {
		i++
		if i < len(s) {
			switch {
			case s[i] >= '0' && s[i] <= '7':
				shift = 3
			case s[i] == 'x' || s[i] == 'X':
				shift = 4
				i++
			case s[i] == 'b' || s[i] == 'B':
				shift = 1
				i++
			}
		}
	}
	z := Zero
scan:
	for ; i < len(s); i++ {
		c := s[i]
		var d uint32
		switch {
		case c >= '0' && c <= '9':
			d = uint32(c - '0')
		case c >= 'a' && c <= 'f' && shift != 0:
			d = uint32(c-'a') + 10
		case c >= 'A' && c <= 'F' && shift != 0:
			d = uint32(c-'A') + 10
		case c == '.':
			continue
		default:
			break scan
		}
		if shift != 0 {
			z = z.Shift(int64(shift))
		} else {
			z = z.MulInt(10)
		}
		z = z.Add(NewUint(uint64(d)))
	}
	if minus {
		z = z.Neg()
	}
	return z
}

// decChunk is the largest power of ten in a limb, for decimal output.
const (
	decChunk       = 1000000000
	decChunkDigits = 9
)

// AppendDecimal appends the decimal form of z to dst.
func (z *Int) AppendDecimal(dst []byte) []byte {
	if z.sign {
		dst = append(dst, '-')
	}
	return z.appendMagnitude(dst)
}

func (z *Int) appendMagnitude(dst []byte) []byte {
	if z.IsTiny() {
		return appendUint(dst, uint64(z.v[0]), 0)
	}
	// Peel 9-digit chunks off the low end, then emit in reverse.
	v := make([]uint32, len(z.v))
	copy(v, z.v)
	n := len(v)
	var chunks []uint32
	for n > 1 || v[0] != 0 {
		var rem uint64
		for i := n - 1; i >= 0; i-- {
			cur := rem<<baseB | uint64(v[i])
			v[i] = uint32(cur / decChunk)
			rem = cur % decChunk
		}
		for n > 1 && v[n-1] == 0 {
			n--
		}
		if n == 1 && v[0] == 0 {
			dst = appendUint(dst, rem, 0)
			for i := len(chunks) - 1; i >= 0; i-- {
				dst = appendUint(dst, uint64(chunks[i]), decChunkDigits)
			}
			return dst
		}
		chunks = append(chunks, uint32(rem))
	}
	return append(dst, '0')
}

func appendUint(dst []byte, u uint64, width int) []byte {
	var buf [20]byte
	i := len(buf)
	for {
		i--
		buf[i] = byte('0' + u%10)
		u /= 10
		if u == 0 {
			break
		}
	}
	for len(buf)-i < width {
		i--
		buf[i] = '0'
	}
	return append(dst, buf[i:]...)
}

// String returns the decimal form of z.
func (z *Int) String() string {
	return string(z.AppendDecimal(nil))
}

const hexDigits = "0123456789abcdef"

// AppendHex appends z in 0x hex form. Single digit values print bare, as
// with the original zprintx.
func (z *Int) AppendHex(dst []byte) []byte {
	if z.sign {
		dst = append(dst, '-')
	}
	if z.IsTiny() && z.v[0] <= 9 {
		return append(dst, byte('0'+z.v[0]))
	}
	dst = append(dst, '0', 'x')
	top := z.v[len(z.v)-1]
	started := false
	for sh := 28; sh >= 0; sh -= 4 {
		d := top >> uint(sh) & 0xf
		if d != 0 || started {
			dst = append(dst, hexDigits[d])
			started = true
		}
	}
	for i := len(z.v) - 2; i >= 0; i-- {
		w := z.v[i]
		for sh := 28; sh >= 0; sh -= 4 {
			dst = append(dst, hexDigits[w>>uint(sh)&0xf])
		}
	}
	return dst
}

// AppendBinary appends z in 0b binary form.
func (z *Int) AppendBinary(dst []byte) []byte {
	if z.sign {
		dst = append(dst, '-')
	}
	if z.IsTiny() && z.v[0] <= 1 {
		return append(dst, byte('0'+z.v[0]))
	}
	dst = append(dst, '0', 'b')
	started := false
	for i := len(z.v) - 1; i >= 0; i-- {
		w := z.v[i]
		for sh := baseB - 1; sh >= 0; sh-- {
			b := byte('0' + w>>uint(sh)&1)
			if b != '0' || started {
				dst = append(dst, b)
				started = true
			}
		}
	}
	return dst
}

// AppendOctal appends z in leading-zero octal form.
func (z *Int) AppendOctal(dst []byte) []byte {
	if z.sign {
		dst = append(dst, '-')
	}
	if z.IsTiny() && z.v[0] <= 7 {
		return append(dst, byte('0'+z.v[0]))
	}
	dst = append(dst, '0')
	// Walk three bits at a time from the top, aligned to the low end.
	total := int64(len(z.v)) * baseB
	start := total - total%3
	if start == total {
		start -= 3
	}
	started := false
	for pos := start; pos >= 0; pos -= 3 {
		var d byte
		for b := int64(2); b >= 0; b-- {
			d <<= 1
			if z.Bit(pos + b) {
				d |= 1
			}
		}
		if d != 0 || started {
			dst = append(dst, '0'+d)
			started = true
		}
	}
	if !started {
		dst = append(dst, '0')
	}
	return dst
}
