package expr

import (
	"errors"
	"fmt"
)

// Parse and compile failures.
var (
	// ErrEmpty indicates blank input.
	ErrEmpty = errors.New("expr: empty expression")

	// ErrSyntax indicates text that does not match the grammar.
	ErrSyntax = errors.New("expr: syntax error")

	// ErrUnknownSymbol indicates an identifier other than x, a constant or a known function.
	ErrUnknownSymbol = errors.New("expr: unknown symbol")

	// ErrArity indicates a known function called with the wrong number of arguments.
	ErrArity = errors.New("expr: wrong number of arguments")

	// ErrMalformed indicates a tree that cannot be compiled.
	ErrMalformed = errors.New("expr: malformed expression tree")
)

// ParseError wraps a parse failure with the offending text and position.
type ParseError struct {
	Text    string
	Pos     int // 1-based column, 0 when not applicable
	Detail  string
	Wrapped error
}

func (e *ParseError) Error() string {
	msg := e.Wrapped.Error()
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Pos > 0 {
		msg = fmt.Sprintf("%s (column %d)", msg, e.Pos)
	}
	return fmt.Sprintf("cannot parse %q: %s", e.Text, msg)
}

func (e *ParseError) Unwrap() error {
	return e.Wrapped
}
