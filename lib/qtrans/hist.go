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

// The historical trigonometric functions compose the core six: versed
// and coversed sines and cosines, their halved forms, the external
// secant and cosecant, the chord, and the cas sum. Each inverse reduces
// to acos, asin, asec or acsc of a linear map of the argument.

package qtrans

import (
	"github.com/ratcore/ratcore/lib/qrat"
)

// Versin is the versed sine 1 - cos(q).
func Versin(q *qrat.Rat, epsilon *qrat.Rat) (*qrat.Rat, error) {
	c, err := Cos(q, epsilon.Scale(-1))
	if err != nil {
		return nil, err
	}
	return qrat.One.Sub(c).Mappr(epsilon, triground())
}

// Coversin is the coversed sine 1 - sin(q).
func Coversin(q *qrat.Rat, epsilon *qrat.Rat) (*qrat.Rat, error) {
	s, err := Sin(q, epsilon.Scale(-1))
	if err != nil {
		return nil, err
	}
	return qrat.One.Sub(s).Mappr(epsilon, triground())
}

// Vercos is the versed cosine 1 + cos(q).
func Vercos(q *qrat.Rat, epsilon *qrat.Rat) (*qrat.Rat, error) {
	c, err := Cos(q, epsilon.Scale(-1))
	if err != nil {
		return nil, err
	}
	return qrat.One.Add(c).Mappr(epsilon, triground())
}

// Covercos is the coversed cosine 1 + sin(q).
func Covercos(q *qrat.Rat, epsilon *qrat.Rat) (*qrat.Rat, error) {
	s, err := Sin(q, epsilon.Scale(-1))
	if err != nil {
		return nil, err
	}
	return qrat.One.Add(s).Mappr(epsilon, triground())
}

// Haversin is the half versed sine (1 - cos(q))/2.
func Haversin(q *qrat.Rat, epsilon *qrat.Rat) (*qrat.Rat, error) {
	c, err := Cos(q, epsilon.Scale(-2))
	if err != nil {
		return nil, err
	}
	return qrat.One.Sub(c).Scale(-1).Mappr(epsilon, triground())
}

// Hacoversin is the half coversed sine (1 - sin(q))/2.
func Hacoversin(q *qrat.Rat, epsilon *qrat.Rat) (*qrat.Rat, error) {
	s, err := Sin(q, epsilon.Scale(-2))
	if err != nil {
		return nil, err
	}
	return qrat.One.Sub(s).Scale(-1).Mappr(epsilon, triground())
}

// Havercos is the half versed cosine (1 + cos(q))/2.
func Havercos(q *qrat.Rat, epsilon *qrat.Rat) (*qrat.Rat, error) {
	c, err := Cos(q, epsilon.Scale(-2))
	if err != nil {
		return nil, err
	}
	return qrat.One.Add(c).Scale(-1).Mappr(epsilon, triground())
}

// Hacovercos is the half coversed cosine (1 + sin(q))/2.
func Hacovercos(q *qrat.Rat, epsilon *qrat.Rat) (*qrat.Rat, error) {
	s, err := Sin(q, epsilon.Scale(-2))
	if err != nil {
		return nil, err
	}
	return qrat.One.Add(s).Scale(-1).Mappr(epsilon, triground())
}

// Exsec is the external secant sec(q) - 1.
func Exsec(q *qrat.Rat, epsilon *qrat.Rat) (*qrat.Rat, error) {
	s, err := Sec(q, epsilon.Scale(-1))
	if err != nil {
		return nil, err
	}
	return s.Dec().Mappr(epsilon, triground())
}

// Excsc is the external cosecant csc(q) - 1.
func Excsc(q *qrat.Rat, epsilon *qrat.Rat) (*qrat.Rat, error) {
	s, err := Csc(q, epsilon.Scale(-1))
	if err != nil {
		return nil, err
	}
	return s.Dec().Mappr(epsilon, triground())
}

// Crd is the chord of an arc: 2*sin(q/2).
func Crd(q *qrat.Rat, epsilon *qrat.Rat) (*qrat.Rat, error) {
	s, err := Sin(q.Scale(-1), epsilon.Scale(-1))
	if err != nil {
		return nil, err
	}
	return s.Scale(1).Mappr(epsilon, triground())
}

// Cas is the cosine-and-sine sum cos(q) + sin(q).
func Cas(q *qrat.Rat, epsilon *qrat.Rat) (*qrat.Rat, error) {
	if epsilon.IsZero() {
		return nil, ErrZeroEpsilon
	}
	n, err := epsilonBits(epsilon)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return qrat.Zero, nil
	}
	sin, cos, err := SinCos(q, n+3)
	if err != nil {
		return nil, err
	}
	return cos.Add(sin).Mappr(epsilon, triground())
}

// Aversin is the inverse versed sine: acos(1 - q), real for 0 <= q <= 2.
func Aversin(q *qrat.Rat, epsilon *qrat.Rat) (*qrat.Rat, error) {
	return Acos(qrat.One.Sub(q), epsilon)
}

// Acoversin is the inverse coversed sine: asin(1 - q).
func Acoversin(q *qrat.Rat, epsilon *qrat.Rat) (*qrat.Rat, error) {
	return Asin(qrat.One.Sub(q), epsilon)
}

// Avercos is the inverse versed cosine: acos(q - 1).
func Avercos(q *qrat.Rat, epsilon *qrat.Rat) (*qrat.Rat, error) {
	return Acos(q.Dec(), epsilon)
}

// Acovercos is the inverse coversed cosine: asin(q - 1).
func Acovercos(q *qrat.Rat, epsilon *qrat.Rat) (*qrat.Rat, error) {
	return Asin(q.Dec(), epsilon)
}

// Ahaversin is the inverse half versed sine: acos(1 - 2q).
func Ahaversin(q *qrat.Rat, epsilon *qrat.Rat) (*qrat.Rat, error) {
	return Acos(qrat.One.Sub(q.Scale(1)), epsilon)
}

// Ahacoversin is the inverse half coversed sine: asin(1 - 2q).
func Ahacoversin(q *qrat.Rat, epsilon *qrat.Rat) (*qrat.Rat, error) {
	return Asin(qrat.One.Sub(q.Scale(1)), epsilon)
}

// Ahavercos is the inverse half versed cosine: acos(2q - 1).
func Ahavercos(q *qrat.Rat, epsilon *qrat.Rat) (*qrat.Rat, error) {
	return Acos(q.Scale(1).Dec(), epsilon)
}

// Ahacovercos is the inverse half coversed cosine: asin(2q - 1).
func Ahacovercos(q *qrat.Rat, epsilon *qrat.Rat) (*qrat.Rat, error) {
	return Asin(q.Scale(1).Dec(), epsilon)
}

// Aexsec is the inverse external secant: asec(q + 1).
func Aexsec(q *qrat.Rat, epsilon *qrat.Rat) (*qrat.Rat, error) {
	return Asec(q.Inc(), epsilon)
}

// Aexcsc is the inverse external cosecant: acsc(q + 1).
func Aexcsc(q *qrat.Rat, epsilon *qrat.Rat) (*qrat.Rat, error) {
	return Acsc(q.Inc(), epsilon)
}

// Acrd is the inverse chord: 2*asin(q/2).
func Acrd(q *qrat.Rat, epsilon *qrat.Rat) (*qrat.Rat, error) {
	t, err := Asin(q.Scale(-1), epsilon.Scale(-1))
	if err != nil {
		return nil, err
	}
	return t.Scale(1).Mappr(epsilon, triground())
}
