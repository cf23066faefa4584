// Package calcamabob implements a double-precision floating-point calculator.
//
// An expression uses the infix operators + - * / and ^, parentheses for
// grouping, the constants pi and e, and a fixed set of unary functions written
// with the parenthesis attached to the name, e.g. "sin(pi/2)" or
// "log10(100)". Evaluation happens in three stages: Tokenize splits the text
// into tokens, Parse builds a syntax tree with a Pratt parser, and Evaluate
// reduces the tree to a float64. EvalString does all three.
//
// All operators are left-associative, including ^: "2^3^2" is "(2^3)^2".
// Division by zero and fractional powers of negative numbers follow IEEE 754
// and produce infinities or NaN rather than errors.
//
// Characters the tokenizer does not recognize are dropped. Use TokenizeStrict
// to reject them instead.
package calcamabob
