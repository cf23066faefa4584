package calcamabob

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Tokenize splits src into tokens in source order. Whitespace and
// unrecognized characters produce no tokens.
//
// A negative numeric literal that directly follows another numeric literal is
// preceded by a synthetic Plus token, so that "5 -3" means 5 + -3 rather than
// two adjacent numbers.
func Tokenize(src string) []Token {
	toks, err := tokenize(src, false)
	if err != nil {
		panic("calcamabob: lenient tokenize failed: " + err.Error())
	}
	return toks
}

// TokenizeStrict is like Tokenize, but returns a *LexError for the first
// unrecognized character instead of dropping it.
func TokenizeStrict(src string) ([]Token, error) {
	return tokenize(src, true)
}

func tokenize(src string, strict bool) ([]Token, error) {
	l := lexer{src: []rune(src)}
	var toks []Token
	for {
		tok, ok := l.next()
		if !ok {
			return toks, nil
		}
		if tok.Kind == Invalid {
			if strict {
				return nil, &LexError{Text: tok.Text, Col: tok.Pos}
			}
			continue
		}
		if tok.Kind == Number && strings.HasPrefix(tok.Text, "-") && len(toks) > 0 && toks[len(toks)-1].Kind == Number {
			toks = append(toks, Token{Kind: Plus, Text: "+", Pos: tok.Pos, Synthetic: true})
		}
		toks = append(toks, tok)
	}
}

type lexer struct {
	src []rune
	// cur is the index of the next rune to scan.
	cur int
}

// next scans the next token. The result is false once the input is
// exhausted. Unrecognized characters are returned as one-rune Invalid tokens.
func (l *lexer) next() (Token, bool) {
	for l.cur < len(l.src) && unicode.IsSpace(l.src[l.cur]) {
		l.cur++
	}
	if l.cur >= len(l.src) {
		return Token{}, false
	}
	tok := Token{Pos: l.cur + 1}
	r := l.src[l.cur]
	switch {
	case isLetter(r), isDigit(r):
		// A call like log10( is longer than any number or constant that
		// starts at the same place, so it always wins.
		if n := l.scanCall(); n > 0 {
			tok.Kind = FunctionCall
			tok.Text = l.take(n)
			return tok, true
		}
		if isDigit(r) {
			return l.number(tok), true
		}
		switch {
		case l.hasPrefix("pi"):
			tok.Kind = Constant
			tok.Value = math.Pi
			tok.Text = l.take(2)
		case r == 'e':
			tok.Kind = Constant
			tok.Value = math.E
			tok.Text = l.take(1)
		default:
			tok.Text = l.take(1)
		}
		return tok, true
	case r == '-', r == '.':
		if l.scanNum() > 0 {
			return l.number(tok), true
		}
		if r == '-' {
			tok.Kind = Minus
		}
		tok.Text = l.take(1)
		return tok, true
	}
	switch r {
	case '+':
		tok.Kind = Plus
	case '*':
		tok.Kind = Multiply
	case '/':
		tok.Kind = Divide
	case '^':
		tok.Kind = Exponentiate
	case '(':
		tok.Kind = LeftParen
	case ')':
		tok.Kind = RightParen
	case '=':
		tok.Kind = Equals
	}
	tok.Text = l.take(1)
	return tok, true
}

// number finishes a Number token. The caller must have checked that scanNum
// matches.
func (l *lexer) number(tok Token) Token {
	tok.Kind = Number
	tok.Text = l.take(l.scanNum())
	v, err := strconv.ParseFloat(tok.Text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		panic("calcamabob: invalid number: " + tok.Text + " (" + err.Error() + ")")
	}
	// Out of range literals are ±Inf or ±0, which is what we want anyway.
	tok.Value = v
	return tok
}

// scanNum returns the length of the numeric literal -?([0-9]*\.)?[0-9]+ at
// the cursor, or 0 if there is none. It does not advance.
func (l *lexer) scanNum() int {
	i := l.cur
	if i < len(l.src) && l.src[i] == '-' {
		i++
	}
	k := l.digits(i)
	if k < len(l.src)-1 && l.src[k] == '.' && isDigit(l.src[k+1]) {
		return l.digits(k+1) - l.cur
	}
	if k == i {
		return 0
	}
	return k - l.cur
}

// scanCall returns the length of the function call [a-zA-Z]*[0-9]*\( at the
// cursor, including the parenthesis, or 0 if there is none. The name must be
// at least one rune long. It does not advance.
func (l *lexer) scanCall() int {
	i := l.cur
	for i < len(l.src) && isLetter(l.src[i]) {
		i++
	}
	i = l.digits(i)
	if i == l.cur || i >= len(l.src) || l.src[i] != '(' {
		return 0
	}
	return i + 1 - l.cur
}

// digits returns the index of the first non-digit at or after i.
func (l *lexer) digits(i int) int {
	for i < len(l.src) && isDigit(l.src[i]) {
		i++
	}
	return i
}

func (l *lexer) hasPrefix(s string) bool {
	k := l.cur
	for _, r := range s {
		if k >= len(l.src) || l.src[k] != r {
			return false
		}
		k++
	}
	return true
}

// take consumes n runes and returns them as a string.
func (l *lexer) take(n int) string {
	s := string(l.src[l.cur : l.cur+n])
	l.cur += n
	return s
}

func isLetter(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z'
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// LexError indicates an unrecognized character in strict mode. It implements
// InputError.
type LexError struct {
	// Text is the unrecognized character.
	Text string
	// Col is the column of the character, counting from 1.
	Col int
}

func (err *LexError) Error() string {
	return "invalid token at column " + strconv.Itoa(err.Col) + ": " + strconv.Quote(err.Text)
}

func (err *LexError) Pos() int {
	return err.Col
}
