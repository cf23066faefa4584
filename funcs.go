package calcamabob

import "math"

// Func is a unary function that a call can apply. The zero value, FuncNone,
// is a call to a name that is not available; evaluating it is an error.
type Func int8

const (
	FuncNone Func = iota
	FuncSqrt
	FuncAsin
	FuncAcos
	FuncAtan
	FuncSin
	FuncCos
	FuncTan
	FuncSinh
	FuncCosh
	FuncTanh
	FuncLn
	FuncLog10
	FuncLog2
	FuncAbs
	FuncRound
	FuncTrunc
	// FuncRadian converts degrees to radians.
	FuncRadian
	// FuncDegrees converts radians to degrees.
	FuncDegrees
)

var funcs = [...]struct {
	// name is the call lexeme, including the open paren.
	name string
	f    func(float64) float64
}{
	FuncNone:    {"", nil},
	FuncSqrt:    {"sqrt(", math.Sqrt},
	FuncAsin:    {"asin(", math.Asin},
	FuncAcos:    {"acos(", math.Acos},
	FuncAtan:    {"atan(", math.Atan},
	FuncSin:     {"sin(", math.Sin},
	FuncCos:     {"cos(", math.Cos},
	FuncTan:     {"tan(", math.Tan},
	FuncSinh:    {"sinh(", math.Sinh},
	FuncCosh:    {"cosh(", math.Cosh},
	FuncTanh:    {"tanh(", math.Tanh},
	FuncLn:      {"ln(", math.Log},
	FuncLog10:   {"log10(", log10},
	FuncLog2:    {"log2(", math.Log2},
	FuncAbs:     {"abs(", math.Abs},
	FuncRound:   {"round(", math.Round},
	FuncTrunc:   {"trunc(", math.Trunc},
	FuncRadian:  {"radian(", func(x float64) float64 { return x * (math.Pi / 180) }},
	FuncDegrees: {"degrees(", func(x float64) float64 { return x * (180 / math.Pi) }},
}

var funcsByName = func() map[string]Func {
	m := make(map[string]Func, len(funcs))
	for i, f := range funcs {
		if f.name != "" {
			m[f.name] = Func(i)
		}
	}
	return m
}()

// lookupFunc resolves a call lexeme like "sin(" to its function. Unknown names
// give FuncNone.
func lookupFunc(name string) Func {
	return funcsByName[name]
}

// String returns the call lexeme of the function, e.g. "sin(".
func (f Func) String() string {
	if f <= FuncNone || int(f) >= len(funcs) {
		return "FuncNone"
	}
	return funcs[f].name
}

// apply calls the function. It panics if f is not available.
func (f Func) apply(x float64) float64 {
	return funcs[f].f(x)
}

// log10 is math.Log10, except that exact powers of ten give exact results.
func log10(x float64) float64 {
	r := math.Log10(x)
	if n := math.Round(r); math.Pow(10, n) == x {
		return n
	}
	return r
}
