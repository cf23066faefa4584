package calcamabob

import "strconv"

// EmptyExpressionError is an error indicating that the input ended where an
// expression was expected. It implements InputError.
type EmptyExpressionError struct {
	// Col is the position where the expression should have started.
	Col int
}

func (err *EmptyExpressionError) Error() string {
	return errpos(err.Col, "incomplete expression")
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

// LiteralError is an error indicating a token that cannot start an
// expression. It implements InputError.
type LiteralError struct {
	// Col is the position of the token.
	Col int
	// Token is the text of the token.
	Token string
}

func (err *LiteralError) Error() string {
	return errpos(err.Col, "expecting literal, found "+strconv.Quote(err.Token))
}

func (err *LiteralError) Pos() int {
	return err.Col
}

// OperatorError is an error indicating a token in operator position that is
// not a binary operator. It implements InputError.
type OperatorError struct {
	// Col is the position of the token.
	Col int
	// Operator is the text of the token.
	Operator string
}

func (err *OperatorError) Error() string {
	return errpos(err.Col, "expecting operator, found "+strconv.Quote(err.Operator))
}

func (err *OperatorError) Pos() int {
	return err.Col
}

// BracketError is an error indicating a group or call without its closing
// parenthesis. It implements InputError.
type BracketError struct {
	// Col is the position of the token found instead of the close paren, or
	// the end of the input.
	Col int
	// Left is the token that opened the group, either ( or a call like sin(.
	Left string
	// Right is the token found instead of ), or the empty string at the end
	// of the input.
	Right string
}

func (err *BracketError) Error() string {
	if err.Right == "" {
		return errpos(err.Col, "expected closing parenthesis for "+strconv.Quote(err.Left)+" before end")
	}
	return errpos(err.Col, "expected closing parenthesis for "+strconv.Quote(err.Left)+", found "+strconv.Quote(err.Right))
}

func (err *BracketError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the column of the token that caused the error, counting
	// runes from 1.
	Pos() int
}

var (
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*LiteralError)(nil)
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*UnavailableError)(nil)
	_ InputError = (*LexError)(nil)
)
