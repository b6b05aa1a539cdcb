package plot

import (
	"errors"
	"fmt"
)

// ErrInvalidGrid indicates a sample count or interval that cannot be sampled.
var ErrInvalidGrid = errors.New("plot: invalid sampling grid")

// EvaluationError wraps a failure to build the evaluation of a whole
// expression. Bad individual points never produce one.
type EvaluationError struct {
	Text    string
	Wrapped error
}

func (e *EvaluationError) Error() string {
	if e.Text == "" {
		return fmt.Sprintf("cannot evaluate expression: %v", e.Wrapped)
	}
	return fmt.Sprintf("cannot evaluate %q: %v", e.Text, e.Wrapped)
}

func (e *EvaluationError) Unwrap() error {
	return e.Wrapped
}
