package calcamabob

import (
	"math"
	"testing"
)

func TestLookupFunc(t *testing.T) {
	for f := FuncSqrt; int(f) < len(funcs); f++ {
		if got := lookupFunc(f.String()); got != f {
			t.Errorf("%s resolves to %v", f, got)
		}
	}
	for _, name := range []string{"", "sin", "SIN(", "exp(", "foo(", "log(", "radians(", "degree("} {
		if got := lookupFunc(name); got != FuncNone {
			t.Errorf("%q resolves to %v", name, got)
		}
	}
}

func TestLog10(t *testing.T) {
	for n := -20; n <= 22; n++ {
		x := math.Pow(10, float64(n))
		if got := log10(x); got != float64(n) {
			t.Errorf("log10(%g) = %.17g, want %d", x, got, n)
		}
	}
	if got := log10(2); got != math.Log10(2) {
		t.Errorf("log10(2) = %g, want %g", got, math.Log10(2))
	}
	if got := log10(-1); !math.IsNaN(got) {
		t.Errorf("log10(-1) = %g, want NaN", got)
	}
	if got := log10(math.Inf(1)); !math.IsInf(got, 1) {
		t.Errorf("log10(+Inf) = %g, want +Inf", got)
	}
}
