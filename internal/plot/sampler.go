package plot

import (
	"fmt"
	"math"

	"github.com/san-kum/graphcalc/internal/expr"
)

// DefaultSamples is the number of points per curve.
const DefaultSamples = 1000

// Linspace returns n evenly spaced values over [lo, hi]. The first value
// is lo and, for n > 1, the last is exactly hi.
func Linspace(lo, hi float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	xs := make([]float64, n)
	if n == 1 {
		xs[0] = lo
		return xs
	}
	step := (hi - lo) / float64(n-1)
	for i := range xs {
		xs[i] = lo + float64(i)*step
	}
	xs[n-1] = hi
	return xs
}

// Sample evaluates e at n evenly spaced points of d. Points outside the
// real domain of e come back as NaN or ±Inf. An error is returned only if
// the grid is invalid or e cannot be compiled.
func Sample(e *expr.Expr, d Domain, n int) ([]float64, []float64, error) {
	if err := checkGrid(d, n); err != nil {
		return nil, nil, &EvaluationError{Text: exprText(e), Wrapped: err}
	}
	f, err := e.Compile()
	if err != nil {
		return nil, nil, &EvaluationError{Text: exprText(e), Wrapped: err}
	}
	xs := Linspace(d.Min, d.Max, n)
	ys := make([]float64, n)
	parallelFor(n, parallelChunk, func(start, end int) {
		for i := start; i < end; i++ {
			ys[i] = f(xs[i])
		}
	})
	return xs, ys, nil
}

func checkGrid(d Domain, n int) error {
	switch {
	case n < 1:
		return fmt.Errorf("%w: %d samples", ErrInvalidGrid, n)
	case math.IsNaN(d.Min) || math.IsNaN(d.Max) || math.IsInf(d.Min, 0) || math.IsInf(d.Max, 0):
		return fmt.Errorf("%w: non-finite interval %s", ErrInvalidGrid, d)
	case n > 1 && d.Min >= d.Max:
		return fmt.Errorf("%w: empty interval %s", ErrInvalidGrid, d)
	}
	return nil
}

func exprText(e *expr.Expr) string {
	if e == nil {
		return ""
	}
	return e.String()
}
