// Package expr parses and evaluates single-variable algebraic expressions.
//
// The grammar is closed: numbers, the variable x, the constants pi and e,
// the operators + - * / ** (^ is accepted for **), parentheses and a fixed
// set of unary functions:
//
//	sin cos tan asin acos atan sinh cosh tanh exp log ln sqrt abs
//
// log(v, b) is lowered to log(v)/log(b) when parsed, as are log10(v) and
// log2(v). A one-argument log is the natural logarithm.
//
// # Example
//
//	e, err := expr.Parse("log(x, 2)")
//	if err != nil {
//		return err
//	}
//	f, _ := e.Compile()
//	f(8) // 3
//
// Expressions are immutable and safe to share.
package expr
