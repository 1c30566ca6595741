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

// Ratcalc evaluates one arbitrary-precision operation per invocation.
//
// Usage:
//
//	ratcalc [flags] op [arg...]
//
// Arithmetic takes two rational arguments in any accepted input form:
//
//	ratcalc add 1/7 2/7
//	ratcalc mul 0x10 1.25
//
// Transcendental operations take rationals and honor -eps:
//
//	ratcalc -eps 1e-50 pi
//	ratcalc -digits 30 sqrt 2
//	ratcalc exp 1
//
// Integer operations:
//
//	ratcalc factorial 20
//	ratcalc isprime 1000000007
//	ratcalc nextprime 1e9
//	ratcalc powmod 2 1000000 1000000007
//	ratcalc rand 128
//
// The -mode flag selects the output mode (frac, int, real, exp, auto,
// hex, octal, binary), -digits the fractional digit count, and -config
// a YAML file overriding the calculator configuration.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/golang/glog"

	"github.com/ratcore/ratcore/lib/mathconf"
	"github.com/ratcore/ratcore/lib/qio"
	"github.com/ratcore/ratcore/lib/qrat"
	"github.com/ratcore/ratcore/lib/qtrans"
	"github.com/ratcore/ratcore/lib/zint"
	"github.com/ratcore/ratcore/lib/zmod"
	"github.com/ratcore/ratcore/lib/zrand"
)

var (
	modeFlag   = flag.String("mode", "", "output mode: frac, int, real, exp, auto, hex, octal, binary")
	digitsFlag = flag.Int64("digits", 0, "fractional digits for real and exp output")
	epsFlag    = flag.String("eps", "", "epsilon for transcendental evaluation, e.g. 1e-20")
	configFlag = flag.String("config", "", "YAML configuration file")
)

var modeNames = map[string]int{
	"frac":   mathconf.ModeFrac,
	"int":    mathconf.ModeInt,
	"real":   mathconf.ModeReal,
	"exp":    mathconf.ModeExp,
	"auto":   mathconf.ModeRealAuto,
	"hex":    mathconf.ModeHex,
	"octal":  mathconf.ModeOctal,
	"binary": mathconf.ModeBinary,
}

func main() {
	flag.Parse()
	if *configFlag != "" {
		if err := mathconf.Load(*configFlag); err != nil {
			glog.Fatalf("config: %v", err)
		}
	}
	if *modeFlag != "" {
		m, ok := modeNames[*modeFlag]
		if !ok {
			glog.Fatalf("unknown output mode %q", *modeFlag)
		}
		mathconf.Global.OutMode = m
	}
	if *digitsFlag > 0 {
		mathconf.Global.OutDigits = int(*digitsFlag)
	}
	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "usage: ratcalc [flags] op [arg...]")
		os.Exit(2)
	}
	res, err := run(args[0], args[1:])
	if err != nil {
		glog.Exitf("%s: %v", args[0], err)
	}
	out := bufio.NewWriter(os.Stdout)
	e := qio.NewEmitter(out, mathconf.Global)
	if err := e.Rational(res, mathconf.ModeDefault, int64(mathconf.Global.OutDigits)); err != nil {
		glog.Exitf("emit: %v", err)
	}
	out.WriteByte('\n')
	out.Flush()
}

// epsilon returns the evaluation bound: the -eps flag, or one half unit
// in the last configured output digit.
func epsilon() (*qrat.Rat, error) {
	if *epsFlag != "" {
		return qio.Parse(*epsFlag)
	}
	e, err := qrat.TenPow(-int64(mathconf.Global.OutDigits))
	if err != nil {
		return nil, err
	}
	return e.Scale(-1), nil
}

func parseArgs(args []string, want int) ([]*qrat.Rat, error) {
	if len(args) != want {
		return nil, fmt.Errorf("need %d argument(s), have %d", want, len(args))
	}
	qs := make([]*qrat.Rat, len(args))
	for i, a := range args {
		q, err := qio.Parse(a)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", a, err)
		}
		qs[i] = q
	}
	return qs, nil
}

func run(op string, args []string) (*qrat.Rat, error) {
	eps, err := epsilon()
	if err != nil {
		return nil, err
	}
	one := func() (*qrat.Rat, error) {
		qs, err := parseArgs(args, 1)
		if err != nil {
			return nil, err
		}
		return qs[0], nil
	}

	switch op {
	case "add":
		qs, err := parseArgs(args, 2)
		if err != nil {
			return nil, err
		}
		return qs[0].Add(qs[1]), nil
	case "sub":
		qs, err := parseArgs(args, 2)
		if err != nil {
			return nil, err
		}
		return qs[0].Sub(qs[1]), nil
	case "mul":
		qs, err := parseArgs(args, 2)
		if err != nil {
			return nil, err
		}
		return qs[0].Mul(qs[1]), nil
	case "div":
		qs, err := parseArgs(args, 2)
		if err != nil {
			return nil, err
		}
		return qs[0].Div(qs[1])
	case "gcd":
		qs, err := parseArgs(args, 2)
		if err != nil {
			return nil, err
		}
		return qs[0].Gcd(qs[1]), nil
	case "pi":
		return qtrans.Pi(eps)
	case "sqrt":
		q, err := one()
		if err != nil {
			return nil, err
		}
		return qtrans.Sqrt(q, eps, zint.RoundHalfEven)
	case "exp":
		q, err := one()
		if err != nil {
			return nil, err
		}
		return qtrans.Exp(q, eps)
	case "ln":
		q, err := one()
		if err != nil {
			return nil, err
		}
		return qtrans.Ln(q, eps)
	case "log":
		q, err := one()
		if err != nil {
			return nil, err
		}
		return qtrans.Log(q, eps)
	case "sin":
		q, err := one()
		if err != nil {
			return nil, err
		}
		return qtrans.Sin(q, eps)
	case "cos":
		q, err := one()
		if err != nil {
			return nil, err
		}
		return qtrans.Cos(q, eps)
	case "tan":
		q, err := one()
		if err != nil {
			return nil, err
		}
		return qtrans.Tan(q, eps)
	case "atan":
		q, err := one()
		if err != nil {
			return nil, err
		}
		return qtrans.Atan(q, eps)
	case "power":
		qs, err := parseArgs(args, 2)
		if err != nil {
			return nil, err
		}
		return qtrans.Power(qs[0], qs[1], eps)
	case "factorial":
		q, err := one()
		if err != nil {
			return nil, err
		}
		return q.Fact()
	case "primorial":
		q, err := one()
		if err != nil {
			return nil, err
		}
		return q.PrimeFact()
	case "fib":
		q, err := one()
		if err != nil {
			return nil, err
		}
		return q.Fib()
	case "isprime":
		q, err := one()
		if err != nil {
			return nil, err
		}
		ok, err := q.PrimeTest(qrat.FromInt64(20), qrat.Zero)
		if err != nil {
			return nil, err
		}
		if ok {
			return qrat.One, nil
		}
		return qrat.Zero, nil
	case "nextprime":
		q, err := one()
		if err != nil {
			return nil, err
		}
		cand, ok, err := zmod.NextCand(q.Num(), 20, zint.Zero,
			zint.Zero, zint.One)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("no candidate found")
		}
		return qrat.FromInt(cand), nil
	case "prevprime":
		q, err := one()
		if err != nil {
			return nil, err
		}
		cand, ok, err := zmod.PrevCand(q.Num(), 20, zint.Zero,
			zint.Zero, zint.One)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("no candidate found")
		}
		return qrat.FromInt(cand), nil
	case "powmod":
		qs, err := parseArgs(args, 3)
		if err != nil {
			return nil, err
		}
		return qs[0].PowerMod(qs[1], qs[2])
	case "rand":
		if len(args) != 1 {
			return nil, fmt.Errorf("need a bit count")
		}
		bits, err := strconv.ParseInt(args[0], 10, 32)
		if err != nil {
			return nil, err
		}
		if err := zrand.Seed(zrand.PseudoSeed()); err != nil {
			return nil, err
		}
		r, err := zrand.Bits(bits)
		if err != nil {
			return nil, err
		}
		return qrat.FromInt(r), nil
	}
	return nil, fmt.Errorf("unknown operation")
}
