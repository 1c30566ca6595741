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

package qtrans

import (
	"errors"
	"testing"

	"github.com/ratcore/ratcore/lib/qio"
	"github.com/ratcore/ratcore/lib/qrat"
	"github.com/ratcore/ratcore/lib/zint"
)

func parse(tt *testing.T, s string) *qrat.Rat {
	tt.Helper()
	q, err := qio.Parse(s)
	if err != nil {
		tt.Fatal(err)
	}
	return q
}

func eps20(tt *testing.T) *qrat.Rat { return parse(tt, "1e-20") }
func eps30(tt *testing.T) *qrat.Rat { return parse(tt, "1e-30") }

// checkNear fails unless |got - want| <= slack.
func checkNear(tt *testing.T, name string, got, want, slack *qrat.Rat) {
	tt.Helper()
	if got == nil {
		tt.Fatalf("%s: nil result", name)
	}
	diff := got.Sub(want).Abs()
	if diff.Cmp(slack) > 0 {
		tt.Fatalf("%s = %s, want near %s", name, got, want)
	}
}

func TestPiTwentyDigits(tt *testing.T) {
	eps := eps20(tt)
	pi, err := Pi(eps)
	if err != nil {
		tt.Fatal(err)
	}
	want := parse(tt, "3.14159265358979323846")
	checkNear(tt, "pi", pi, want, eps.Scale(1))
	// The cache must serve the repeat call.
	again, err := Pi(eps)
	if err != nil {
		tt.Fatal(err)
	}
	if again != pi {
		tt.Fatal("pi cache missed on identical epsilon")
	}
}

func TestSqrtTwo(tt *testing.T) {
	eps := eps20(tt)
	r, err := Sqrt(qrat.Two, eps, zint.RoundHalfEven)
	if err != nil {
		tt.Fatal(err)
	}
	want := parse(tt, "1.41421356237309504880")
	checkNear(tt, "sqrt(2)", r, want, eps)
	// The result is a multiple of epsilon.
	if !r.Mul(parse(tt, "1e20")).IsInt() {
		tt.Fatalf("sqrt(2) not on the epsilon grid: %s", r)
	}
}

func TestSqrtExact(tt *testing.T) {
	eps := eps20(tt)
	q, _ := qrat.FromPair(9, 16)
	r, err := Sqrt(q, eps, zint.RoundHalfEven)
	if err != nil {
		tt.Fatal(err)
	}
	if r.String() != "3/4" {
		tt.Fatalf("sqrt(9/16) = %s", r)
	}
	if _, err := Sqrt(qrat.NegOne, eps, 0); !errors.Is(err, zint.ErrNegSqrt) {
		tt.Fatalf("sqrt(-1) error = %v", err)
	}
}

func TestExpAndLn(tt *testing.T) {
	eps := eps30(tt)
	e, err := Exp(qrat.One, eps)
	if err != nil {
		tt.Fatal(err)
	}
	checkNear(tt, "exp(1)", e,
		parse(tt, "2.718281828459045235360287471353"), eps.Scale(2))

	ln2, err := Ln(qrat.Two, eps)
	if err != nil {
		tt.Fatal(err)
	}
	checkNear(tt, "ln(2)", ln2,
		parse(tt, "0.693147180559945309417232121458"), eps.Scale(2))

	// exp(ln(x)) returns to x within the looser of the bounds.
	x := parse(tt, "7/3")
	lnx, err := Ln(x, eps)
	if err != nil {
		tt.Fatal(err)
	}
	back, err := Exp(lnx, eps)
	if err != nil {
		tt.Fatal(err)
	}
	checkNear(tt, "exp(ln(7/3))", back, x, parse(tt, "1e-25"))

	if _, err := Ln(qrat.Zero, eps); !errors.Is(err, ErrLnZero) {
		tt.Fatalf("ln(0) error = %v", err)
	}
	if _, err := Exp(qrat.One, qrat.Zero); !errors.Is(err, ErrZeroEpsilon) {
		tt.Fatalf("exp eps=0 error = %v", err)
	}
}

func TestExpNegative(tt *testing.T) {
	eps := eps30(tt)
	em1, err := Exp(qrat.NegOne, eps)
	if err != nil {
		tt.Fatal(err)
	}
	checkNear(tt, "exp(-1)", em1,
		parse(tt, "0.367879441171442321595523770161"), eps.Scale(2))
}

func TestSinCosIdentity(tt *testing.T) {
	eps := eps20(tt)
	for _, arg := range []string{"1", "1/2", "-3/2", "2/7", "5"} {
		q := parse(tt, arg)
		sin, err := Sin(q, eps)
		if err != nil {
			tt.Fatal(err)
		}
		cos, err := Cos(q, eps)
		if err != nil {
			tt.Fatal(err)
		}
		sum := sin.Square().Add(cos.Square())
		checkNear(tt, "sin^2+cos^2 at "+arg, sum, qrat.One, parse(tt, "1e-18"))
	}
}

func TestSinCosKnown(tt *testing.T) {
	eps := eps30(tt)
	sin1, err := Sin(qrat.One, eps)
	if err != nil {
		tt.Fatal(err)
	}
	checkNear(tt, "sin(1)", sin1,
		parse(tt, "0.841470984807896506652502321630"), eps.Scale(2))
	cos1, err := Cos(qrat.One, eps)
	if err != nil {
		tt.Fatal(err)
	}
	checkNear(tt, "cos(1)", cos1,
		parse(tt, "0.540302305868139717400936607443"), eps.Scale(2))
}

func TestTan(tt *testing.T) {
	eps := eps20(tt)
	tan1, err := Tan(qrat.One, eps)
	if err != nil {
		tt.Fatal(err)
	}
	checkNear(tt, "tan(1)", tan1,
		parse(tt, "1.55740772465490223051"), eps.Scale(2))
}

func TestAtan(tt *testing.T) {
	eps := eps20(tt)
	at, err := Atan(qrat.One, eps)
	if err != nil {
		tt.Fatal(err)
	}
	// atan(1) = pi/4.
	pi, err := Pi(eps)
	if err != nil {
		tt.Fatal(err)
	}
	checkNear(tt, "4*atan(1)", at.Scale(2), pi, eps.Scale(3))
}

func TestAsinAcos(tt *testing.T) {
	eps := eps20(tt)
	asin, err := Asin(qrat.Half, eps)
	if err != nil {
		tt.Fatal(err)
	}
	// asin(1/2) = pi/6.
	checkNear(tt, "asin(1/2)", asin,
		parse(tt, "0.52359877559829887308"), eps.Scale(2))
	acos, err := Acos(qrat.Half, eps)
	if err != nil {
		tt.Fatal(err)
	}
	checkNear(tt, "acos(1/2)", acos,
		parse(tt, "1.04719755119659774615"), eps.Scale(3))
	if _, err := Asin(qrat.Two, eps); !errors.Is(err, ErrNotReal) {
		tt.Fatalf("asin(2) error = %v", err)
	}
	if _, err := Acos(qrat.Two.Neg(), eps); !errors.Is(err, ErrNotReal) {
		tt.Fatalf("acos(-2) error = %v", err)
	}
}

func TestLogFamily(tt *testing.T) {
	eps := eps20(tt)
	l, err := Log(parse(tt, "1000"), eps)
	if err != nil {
		tt.Fatal(err)
	}
	if !l.Eq(qrat.Three) {
		tt.Fatalf("log(1000) = %s", l)
	}
	l2, err := Log2(parse(tt, "1024"), eps)
	if err != nil {
		tt.Fatal(err)
	}
	if l2.Int64() != 10 || !l2.IsInt() {
		tt.Fatalf("log2(1024) = %s", l2)
	}
	l3, err := LogN(parse(tt, "81"), qrat.Three, eps)
	if err != nil {
		tt.Fatal(err)
	}
	checkNear(tt, "log3(81)", l3, qrat.Four, eps.Scale(4))
}

func TestPower(tt *testing.T) {
	eps := eps20(tt)
	r, err := Power(qrat.Two, qrat.Half, eps)
	if err != nil {
		tt.Fatal(err)
	}
	checkNear(tt, "2^(1/2)", r,
		parse(tt, "1.41421356237309504880"), eps.Scale(2))
	cube, err := Root(parse(tt, "27"), qrat.Three, eps)
	if err != nil {
		tt.Fatal(err)
	}
	checkNear(tt, "27^(1/3)", cube, qrat.Three, eps.Scale(2))
	negCube, err := Root(parse(tt, "-27"), qrat.Three, eps)
	if err != nil {
		tt.Fatal(err)
	}
	checkNear(tt, "(-27)^(1/3)", negCube, qrat.Three.Neg(), eps.Scale(2))
	if _, err := Power(qrat.Two.Neg(), qrat.Half, eps); err == nil {
		tt.Fatal("negative base accepted")
	}
}

func TestHyperbolics(tt *testing.T) {
	eps := eps20(tt)
	s, err := Sinh(qrat.One, eps)
	if err != nil {
		tt.Fatal(err)
	}
	checkNear(tt, "sinh(1)", s,
		parse(tt, "1.17520119364380145688"), eps.Scale(2))
	c, err := Cosh(qrat.One, eps)
	if err != nil {
		tt.Fatal(err)
	}
	checkNear(tt, "cosh(1)", c,
		parse(tt, "1.54308063481524377848"), eps.Scale(2))
	// cosh^2 - sinh^2 = 1.
	diff := c.Square().Sub(s.Square())
	checkNear(tt, "cosh^2-sinh^2", diff, qrat.One, parse(tt, "1e-18"))

	th, err := Tanh(qrat.One, eps)
	if err != nil {
		tt.Fatal(err)
	}
	checkNear(tt, "tanh(1)", th,
		parse(tt, "0.76159415595576488812"), eps.Scale(2))

	ash, err := Asinh(qrat.One, eps)
	if err != nil {
		tt.Fatal(err)
	}
	checkNear(tt, "asinh(1)", ash,
		parse(tt, "0.88137358701954302523"), eps.Scale(3))
	ach, err := Acosh(qrat.Two, eps)
	if err != nil {
		tt.Fatal(err)
	}
	checkNear(tt, "acosh(2)", ach,
		parse(tt, "1.31695789692481670862"), eps.Scale(3))
	ath, err := Atanh(qrat.Half, eps)
	if err != nil {
		tt.Fatal(err)
	}
	checkNear(tt, "atanh(1/2)", ath,
		parse(tt, "0.54930614433405484570"), eps.Scale(3))

	if _, err := Acosh(qrat.Half, eps); !errors.Is(err, ErrNotReal) {
		tt.Fatalf("acosh(1/2) error = %v", err)
	}
	if _, err := Atanh(qrat.Two, eps); !errors.Is(err, ErrNotReal) {
		tt.Fatalf("atanh(2) error = %v", err)
	}
}

func TestHistorical(tt *testing.T) {
	eps := eps20(tt)
	q := qrat.One

	v, err := Versin(q, eps)
	if err != nil {
		tt.Fatal(err)
	}
	cos1, _ := Cos(q, eps)
	checkNear(tt, "versin(1)", v, qrat.One.Sub(cos1), eps.Scale(2))

	hv, err := Haversin(q, eps)
	if err != nil {
		tt.Fatal(err)
	}
	checkNear(tt, "haversin(1)", hv, qrat.One.Sub(cos1).Scale(-1), eps.Scale(2))

	crd, err := Crd(q, eps)
	if err != nil {
		tt.Fatal(err)
	}
	sinHalf, _ := Sin(qrat.Half, eps)
	checkNear(tt, "crd(1)", crd, sinHalf.Scale(1), eps.Scale(3))

	cas, err := Cas(q, eps)
	if err != nil {
		tt.Fatal(err)
	}
	sin1, _ := Sin(q, eps)
	checkNear(tt, "cas(1)", cas, sin1.Add(cos1), eps.Scale(2))

	// ahavercos uses acos(2x - 1): ahavercos(1) = 0 and
	// ahavercos(1/2) = pi/2.
	ahc, err := Ahavercos(qrat.One, eps)
	if err != nil {
		tt.Fatal(err)
	}
	if !ahc.IsZero() {
		tt.Fatalf("ahavercos(1) = %s", ahc)
	}
	ahc, err = Ahavercos(qrat.Half, eps)
	if err != nil {
		tt.Fatal(err)
	}
	checkNear(tt, "ahavercos(1/2)", ahc,
		parse(tt, "1.57079632679489661923"), eps.Scale(3))
}

func TestAtan2Quadrants(tt *testing.T) {
	eps := eps20(tt)
	pi, _ := Pi(eps)
	testCases := []struct {
		y, x string
		want *qrat.Rat
	}{
		{"0", "-1", pi},
		{"1", "1", pi.Scale(-2)},
		{"1", "-1", pi.Mul(parse(tt, "3/4"))},
		{"-1", "1", pi.Scale(-2).Neg()},
	}
	for _, tc := range testCases {
		got, err := Atan2(parse(tt, tc.y), parse(tt, tc.x), eps)
		if err != nil {
			tt.Fatal(err)
		}
		checkNear(tt, "atan2("+tc.y+","+tc.x+")", got, tc.want, eps.Scale(4))
	}
	zero, err := Atan2(qrat.Zero, qrat.Zero, eps)
	if err != nil || !zero.IsZero() {
		tt.Fatalf("atan2(0,0) = %v, %v", zero, err)
	}
}

func TestEpsilonContract(tt *testing.T) {
	// The error bound must hold for a spread of epsilons.
	for _, es := range []string{"1e-5", "1e-10", "1e-40"} {
		eps := parse(tt, es)
		pi, err := Pi(eps)
		if err != nil {
			tt.Fatal(err)
		}
		want := parse(tt,
			"3.14159265358979323846264338327950288419716939937511")
		checkNear(tt, "pi at "+es, pi, want, eps.Scale(1))
	}
}
