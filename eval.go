package calcamabob

import (
	"math"
	"strconv"
)

// Evaluate computes the value of a parsed expression. The expression is not
// modified, so evaluating it again gives the same result.
func Evaluate(e *Expr) (float64, error) {
	return e.n.eval()
}

// Eval is a shortcut for Evaluate(e).
func (e *Expr) Eval() (float64, error) {
	return Evaluate(e)
}

// EvalString is a shortcut to tokenize, parse, and evaluate a string
// expression.
func EvalString(src string) (float64, error) {
	a, err := Parse(Tokenize(src))
	if err != nil {
		return 0, err
	}
	return Evaluate(a)
}

// eval computes the node's value. Children are evaluated before their parent,
// left before right.
func (n *node) eval() (float64, error) {
	switch n.kind {
	case nodeNum:
		return n.num, nil
	case nodeGroup:
		return n.left.eval()
	case nodeNeg:
		x, err := n.left.eval()
		if err != nil {
			return 0, err
		}
		return -x, nil
	case nodeCall:
		x, err := n.left.eval()
		if err != nil {
			return 0, err
		}
		if n.fn == FuncNone {
			return 0, &UnavailableError{Col: n.pos, Name: n.name, Unary: true}
		}
		return n.fn.apply(x), nil
	case nodeBinary:
		l, err := n.left.eval()
		if err != nil {
			return 0, err
		}
		r, err := n.right.eval()
		if err != nil {
			return 0, err
		}
		switch n.op.Kind {
		case Plus:
			return l + r, nil
		case Minus:
			return l - r, nil
		case Multiply:
			return l * r, nil
		case Divide:
			// No zero check; IEEE 754 gives ±Inf or NaN.
			return l / r, nil
		case Exponentiate:
			return math.Pow(l, r), nil
		default:
			return 0, &UnavailableError{Col: n.op.Pos, Name: n.op.Text}
		}
	default:
		panic("calcamabob: invalid AST node " + n.kind.String())
	}
}

// UnavailableError is an error indicating an operator or function that
// cannot be applied, either a call to an unknown function or a token that is
// not an operator where one must be. It implements InputError.
type UnavailableError struct {
	// Col is the position of the token.
	Col int
	// Name is the token text, including the open paren for calls.
	Name string
	// Unary is whether the token is a function call.
	Unary bool
}

func (err *UnavailableError) Error() string {
	if err.Unary {
		return errpos(err.Col, "prefix unary operator "+strconv.Quote(err.Name)+" not available")
	}
	return errpos(err.Col, "operator "+strconv.Quote(err.Name)+" not available")
}

func (err *UnavailableError) Pos() int {
	return err.Col
}
