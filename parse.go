package calcamabob

import (
	"strings"
	"unicode/utf8"
)

// Expr = Number | Constant | Call | Group | Neg | Binary
// Call = FunctionCall Expr ')'
// Group = '(' Expr ')'
// Neg = '-' Expr
// Binary = Expr ('+' | '-' | '*' | '/' | '^') Expr

// Expr is a parsed expression.
type Expr struct {
	// n is the root node of the expression.
	n *node
}

// String creates a string representation of the parsed expression, with
// alternating round and square brackets grouping each term.
func (e *Expr) String() string {
	var b strings.Builder
	e.n.fmt(&b, false)
	return b.String()
}

// Parse builds an expression from a token sequence as produced by Tokenize.
// Every token must be used; a token left over after a complete expression is
// an *UnavailableError naming it.
func Parse(toks []Token) (*Expr, error) {
	p := parser{toks: toks, end: 1}
	n, err := p.expression(0)
	if err != nil {
		return nil, err
	}
	if tok, ok := p.peek(); ok {
		return nil, &UnavailableError{Col: tok.Pos, Name: tok.Text}
	}
	return &Expr{n: n}, nil
}

// Binding powers. Higher binds tighter. Tokens not listed have 0 and so never
// continue an expression. negbp is the binding power of the operand of a
// prefix minus, which takes in exponentiation but not multiplication.
const (
	sumbp   = 10
	prodbp  = 20
	negbp   = 30
	powbp   = 50
	callbp  = 99
	groupbp = 100
)

func bindingPower(k Kind) int {
	switch k {
	case Plus, Minus:
		return sumbp
	case Multiply, Divide:
		return prodbp
	case Exponentiate:
		return powbp
	case FunctionCall:
		return callbp
	case LeftParen:
		return groupbp
	default:
		return 0
	}
}

// parser holds a single cursor into the token sequence.
type parser struct {
	toks []Token
	// cur is the index of the next token.
	cur int
	// end is the column just past the last consumed token.
	end int
}

func (p *parser) peek() (Token, bool) {
	if p.cur >= len(p.toks) {
		return Token{}, false
	}
	return p.toks[p.cur], true
}

// next consumes the next token. Panics if there is none.
func (p *parser) next() Token {
	tok := p.toks[p.cur]
	p.cur++
	p.end = tok.Pos + utf8.RuneCountInString(tok.Text)
	return tok
}

// expression parses an expression whose operators all bind tighter than rbp.
func (p *parser) expression(rbp int) (*node, error) {
	tok, ok := p.peek()
	if !ok {
		return nil, &EmptyExpressionError{Col: p.end}
	}
	p.next()
	var left *node
	switch tok.Kind {
	case FunctionCall, LeftParen:
		inner, err := p.expression(0)
		if err != nil {
			return nil, err
		}
		if err := p.close(tok); err != nil {
			return nil, err
		}
		if tok.Kind == FunctionCall {
			left = &node{kind: nodeCall, name: tok.Text, fn: lookupFunc(tok.Text), pos: tok.Pos, left: inner}
		} else {
			left = &node{kind: nodeGroup, pos: tok.Pos, left: inner}
		}
	case Minus:
		operand, err := p.expression(negbp)
		if err != nil {
			return nil, err
		}
		left = &node{kind: nodeNeg, pos: tok.Pos, left: operand}
	case Number, Constant:
		left = &node{kind: nodeNum, num: tok.Value, pos: tok.Pos}
	default:
		return nil, &LiteralError{Col: tok.Pos, Token: tok.Text}
	}

	for {
		op, ok := p.peek()
		// A close paren belongs to whichever group or call is waiting for it.
		if !ok || op.Kind == RightParen || bindingPower(op.Kind) <= rbp {
			return left, nil
		}
		p.next()
		if !op.Kind.infix() {
			return nil, &OperatorError{Col: op.Pos, Operator: op.Text}
		}
		right, err := p.expression(bindingPower(op.Kind))
		if err != nil {
			return nil, err
		}
		left = &node{kind: nodeBinary, op: op, pos: op.Pos, left: left, right: right}
	}
}

// close consumes the close paren matching open.
func (p *parser) close(open Token) error {
	tok, ok := p.peek()
	if !ok {
		return &BracketError{Col: p.end, Left: open.Text}
	}
	if tok.Kind != RightParen {
		return &BracketError{Col: tok.Pos, Left: open.Text, Right: tok.Text}
	}
	p.next()
	return nil
}
