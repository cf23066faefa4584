package calcamabob_test

import (
	"errors"
	"math"
	"math/big"
	"regexp"
	"testing"

	"github.com/zephyrtronium/bigfloat"

	"github.com/zephyrtronium/calcamabob"
)

func TestEval(t *testing.T) {
	// Runtime values, so the expected results round like the evaluator's.
	x, y := 4.2, 333.0
	four, five, six := 4.0, 5.0, 6.0
	cases := []struct {
		name string
		src  string
		r    float64
	}{
		{"num", "1", 1},
		{"default", "0.", 0},
		{"pi", "pi", math.Pi},
		{"e", "e", math.E},
		{"add", "4+5+6", 4 + 5 + 6},
		{"sub", "4-5-6", 4 - 5 - 6},
		{"sub-spaced", "4 - 5 - 6", 4 - 5 - 6},
		{"mul", "4*5*6", 4 * 5 * 6},
		{"div", "4/5/6", four / five / six},
		{"pow", "2^3^2", 64},
		{"prec", "2+5*2^2", 22},
		{"group", "(2+5*2)^2", 144},
		{"cos-pi", "cos(pi)", -1},
		{"sin-zero", "sin(0)", 0},
		{"neg-cos", "-cos(pi)", 1},
		{"log10", "log10(100.0)", 2},
		{"log10-1000", "log10(1000)", 3},
		{"log2", "log2(8)", 3},
		{"mul-sub", "5*10-4*3", 38},
		{"mul-sub-neg", "5*10-4*-3", 62},
		{"spaced", " 5 * 10- 4*-  3", 62},
		{"neg-group-neg", "-(5+-4)", -1},
		{"neg-group", "-(5-4)", -1},
		{"round-up", "round(2/3)", 1},
		{"round-neg", "round(-1/4)", 0},
		{"round-half", "round(2.5)", 3},
		{"trunc", "trunc(-2.7)", -2},
		{"abs", "abs(-2.5)", 2.5},
		{"sqrt", "sqrt(16)", 4},
		{"ln", "ln(1)", 0},
		{"asin", "asin(0)", 0},
		{"acos", "acos(1)", 0},
		{"atan", "atan(0)", 0},
		{"sinh", "sinh(0)", 0},
		{"cosh", "cosh(0)", 1},
		{"tanh", "tanh(0)", 0},
		{"tan", "tan(0)", 0},
		{"literal-div", "-3 + 4.2/333", -3 + x/y},
		{"sin-pi-sq", "(sin(pi))^2", math.Pow(math.Sin(math.Pi), 2)},
		{"nested-calls", "sqrt(abs(-16))", 4},
		{"junk", "2 $+ 2", 4},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := calcamabob.EvalString(c.src)
			if err != nil {
				t.Fatalf("%q: evaluation error: %v", c.src, err)
			}
			if r != c.r {
				t.Errorf("%q: wrong result: want %g, got %g", c.src, c.r, r)
			}
		})
	}
}

func TestEvalApprox(t *testing.T) {
	cases := []struct {
		name string
		src  string
		r    float64
	}{
		{"tan-round", "round(-(tan(pi/4)*3))", -3},
		{"tan", "-(tan(pi/4)*3)", -3},
		{"radian", "radian(180)", math.Pi},
		{"degrees", "degrees(pi)", 180},
		{"round-trip", "degrees(radian(45))", 45},
		{"asin", "asin(1)", math.Pi / 2},
		{"ln-e", "ln(e)", 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := calcamabob.EvalString(c.src)
			if err != nil {
				t.Fatalf("%q: evaluation error: %v", c.src, err)
			}
			if math.Abs(r-c.r) > 1e-12 {
				t.Errorf("%q: wrong result: want %g, got %g", c.src, c.r, r)
			}
		})
	}
}

func TestEvalIEEE(t *testing.T) {
	cases := []struct {
		name string
		src  string
		ok   func(float64) bool
	}{
		{"div-zero", "1/0", func(r float64) bool { return math.IsInf(r, 1) }},
		{"neg-div-zero", "-1/0", func(r float64) bool { return math.IsInf(r, -1) }},
		{"zero-div-zero", "0/0", math.IsNaN},
		{"neg-root", "(-8)^(1/3)", math.IsNaN},
		{"sqrt-neg", "sqrt(-1)", math.IsNaN},
		{"ln-zero", "ln(0)", func(r float64) bool { return math.IsInf(r, -1) }},
		{"log10-zero", "log10(0)", func(r float64) bool { return math.IsInf(r, -1) }},
		{"overflow", "10^400", func(r float64) bool { return math.IsInf(r, 1) }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := calcamabob.EvalString(c.src)
			if err != nil {
				t.Fatalf("%q: unexpected error: %v", c.src, err)
			}
			if !c.ok(r) {
				t.Errorf("%q: wrong result %g", c.src, r)
			}
		})
	}
}

// oracle computes reference values at high precision.
func oracle(f func(z *big.Float) *big.Float) float64 {
	r, _ := f(new(big.Float).SetPrec(256)).Float64()
	return r
}

func bf(x float64) *big.Float {
	return new(big.Float).SetPrec(256).SetFloat64(x)
}

func TestEvalOracle(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want float64
	}{
		{"pi", "pi", oracle(bigfloat.Pi)},
		{"e", "e", oracle(func(z *big.Float) *big.Float { return bigfloat.Exp(z, bf(1)) })},
		{"sqrt2", "2^0.5", oracle(func(z *big.Float) *big.Float { return bigfloat.Pow(z, bf(2), bf(0.5)) })},
		{"pow-frac", "3^1.7", oracle(func(z *big.Float) *big.Float { return bigfloat.Pow(z, bf(3), bf(1.7)) })},
		{"pow-big", "1.5^40", oracle(func(z *big.Float) *big.Float { return bigfloat.Pow(z, bf(1.5), bf(40)) })},
		{"ln10", "ln(10)", oracle(func(z *big.Float) *big.Float { return bigfloat.Log(z, bf(10)) })},
		{"ln-half", "ln(0.5)", oracle(func(z *big.Float) *big.Float { return bigfloat.Log(z, bf(0.5)) })},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := calcamabob.EvalString(c.src)
			if err != nil {
				t.Fatalf("%q: evaluation error: %v", c.src, err)
			}
			if math.Abs(r-c.want) > 1e-14*math.Abs(c.want) {
				t.Errorf("%q: want %.17g, got %.17g", c.src, c.want, r)
			}
		})
	}
}

func TestEvalUnavailable(t *testing.T) {
	cases := []struct {
		name  string
		src   string
		fn    string
		unary bool
	}{
		{"unknown", "foo(3)", "foo(", true},
		{"unknown-nested", "1 + 2*foo(3)", "foo(", true},
		{"digits", "12(3)", "12(", true},
		{"e-call", "e(1)", "e(", true},
		{"inner-first", "foo(bar(1))", "bar(", true},
		{"left-first", "foo(1) + bar(2)", "foo(", true},
		{"no-call", "sin 3)", ")", false},
		{"assign", "1 = x", "=", false},
	}
	re := regexp.MustCompile(`(?i)\bnot available\b`)
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := calcamabob.EvalString(c.src)
			if err == nil {
				t.Fatalf("%q: wanted error, got %g", c.src, r)
			}
			var u *calcamabob.UnavailableError
			if !errors.As(err, &u) {
				t.Fatalf("%q: wrong error type %T: %v", c.src, err, err)
			}
			if u.Name != c.fn || u.Unary != c.unary {
				t.Errorf("%q: wanted %q (unary %t), got %q (unary %t)", c.src, c.fn, c.unary, u.Name, u.Unary)
			}
			if !re.MatchString(err.Error()) {
				t.Errorf("%q: error message %q doesn't say not available", c.src, err)
			}
			if !regexp.MustCompile(regexp.QuoteMeta(c.fn)).MatchString(err.Error()) {
				t.Errorf("%q: error message %q doesn't name %q", c.src, err, c.fn)
			}
		})
	}
}

func TestEvalEmpty(t *testing.T) {
	_, err := calcamabob.EvalString("")
	var ee *calcamabob.EmptyExpressionError
	if !errors.As(err, &ee) {
		t.Fatalf("wrong error for empty input: %v", err)
	}
	if !regexp.MustCompile(`incomplete expression`).MatchString(err.Error()) {
		t.Errorf("wrong message for empty input: %q", err)
	}
}

func TestEvalTwice(t *testing.T) {
	for _, src := range []string{"2+5*2^2", "sin(1)^2 + cos(1)^2", "0/0", "-(tan(pi/4)*3)"} {
		a, err := calcamabob.Parse(calcamabob.Tokenize(src))
		if err != nil {
			t.Fatalf("%q failed to parse: %v", src, err)
		}
		r1, err1 := calcamabob.Evaluate(a)
		r2, err2 := a.Eval()
		if err1 != nil || err2 != nil {
			t.Fatalf("%q: errors %v, %v", src, err1, err2)
		}
		if r1 != r2 && !(math.IsNaN(r1) && math.IsNaN(r2)) {
			t.Errorf("%q: first evaluation gave %g, second %g", src, r1, r2)
		}
	}
}

func TestFuncNames(t *testing.T) {
	names := []string{
		"sqrt(", "asin(", "acos(", "atan(", "sin(", "cos(", "tan(", "sinh(",
		"cosh(", "tanh(", "ln(", "log10(", "log2(", "abs(", "round(",
		"trunc(", "radian(", "degrees(",
	}
	seen := make(map[string]bool)
	for f := calcamabob.FuncSqrt; f <= calcamabob.FuncDegrees; f++ {
		seen[f.String()] = true
	}
	if len(seen) != len(names) {
		t.Errorf("wanted %d functions, have %d", len(names), len(seen))
	}
	for _, name := range names {
		if !seen[name] {
			t.Errorf("no function %s", name)
		}
		if _, err := calcamabob.EvalString(name + "0.5)"); err != nil {
			t.Errorf("calling %s failed: %v", name, err)
		}
	}
	if s := calcamabob.FuncNone.String(); s != "FuncNone" {
		t.Errorf("wrong name for FuncNone: %q", s)
	}
}
