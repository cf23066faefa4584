package calcamabob

import "strconv"

// Token is a single lexical token along with the source text that produced
// it. Tokens are comparable with ==.
type Token struct {
	// Kind is the type of the token.
	Kind Kind
	// Value is the numeric value of Number and Constant tokens.
	Value float64
	// Text is the lexeme, the source text of the token. For FunctionCall
	// tokens it includes the trailing open parenthesis, e.g. "sin(".
	Text string
	// Pos is the column of the first rune of the token, counting from 1.
	Pos int
	// Synthetic is true for tokens the tokenizer inserted without reading
	// them from the source.
	Synthetic bool
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Text + "@" + strconv.Itoa(t.Pos)
}

// Kind is the type of a token.
type Kind int8

const (
	// Invalid is an unrecognized character. Invalid tokens never leave the
	// tokenizer.
	Invalid Kind = iota
	// Plus is +.
	Plus
	// Minus is -.
	Minus
	// Divide is /.
	Divide
	// Multiply is *.
	Multiply
	// Exponentiate is ^.
	Exponentiate
	// LeftParen is (.
	LeftParen
	// RightParen is ).
	RightParen
	// Constant is a named constant, pi or e. Its value is resolved during
	// tokenizing.
	Constant
	// Equals is =. Nothing after the tokenizer accepts it.
	Equals
	// FunctionCall is a function name immediately followed by (.
	FunctionCall
	// Number is a numeric literal, possibly with a leading minus sign.
	Number
)

var kindNames = [...]string{
	Invalid:      "Invalid",
	Plus:         "Plus",
	Minus:        "Minus",
	Divide:       "Divide",
	Multiply:     "Multiply",
	Exponentiate: "Exponentiate",
	LeftParen:    "LeftParen",
	RightParen:   "RightParen",
	Constant:     "Constant",
	Equals:       "Equals",
	FunctionCall: "FunctionCall",
	Number:       "Number",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// infix reports whether tokens of kind k are binary arithmetic operators.
func (k Kind) infix() bool {
	switch k {
	case Plus, Minus, Multiply, Divide, Exponentiate:
		return true
	default:
		return false
	}
}
