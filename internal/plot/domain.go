package plot

import (
	"fmt"

	"github.com/san-kum/graphcalc/internal/expr"
)

// Domain is a closed sampling interval on the x axis.
type Domain struct {
	Min, Max float64
}

func (d Domain) String() string {
	return fmt.Sprintf("[%g, %g]", d.Min, d.Max)
}

var (
	// LogDomain stays inside the positive reals, clear of the pole at 0.
	LogDomain = Domain{Min: 0.1, Max: 10}

	// DefaultDomain is used for everything else.
	DefaultDomain = Domain{Min: -10, Max: 10}
)

// SelectDomain picks LogDomain when e applies a logarithm anywhere and
// DefaultDomain otherwise. Square roots, poles and other restrictions are
// not inspected; they show up as NaN or Inf samples.
func SelectDomain(e *expr.Expr) Domain {
	if e.Contains(expr.FuncLog) {
		return LogDomain
	}
	return DefaultDomain
}
