package expr

import (
	"fmt"
	"math"
)

// Fn is a compiled expression. Values outside the real domain of an
// operation come back as NaN or ±Inf rather than failing.
type Fn func(x float64) float64

var funcImpls = map[Func]func(float64) float64{
	FuncSin:  math.Sin,
	FuncCos:  math.Cos,
	FuncTan:  math.Tan,
	FuncAsin: math.Asin,
	FuncAcos: math.Acos,
	FuncAtan: math.Atan,
	FuncSinh: math.Sinh,
	FuncCosh: math.Cosh,
	FuncTanh: math.Tanh,
	FuncExp:  math.Exp,
	FuncLog:  math.Log,
	FuncSqrt: math.Sqrt,
	FuncAbs:  math.Abs,
}

// Compile turns e into a closure. It fails with ErrMalformed when a node is
// missing an operand or carries an unknown tag.
func (e *Expr) Compile() (Fn, error) {
	if e == nil {
		return nil, fmt.Errorf("%w: nil node", ErrMalformed)
	}
	switch e.kind {
	case KindConst:
		v := e.val
		return func(float64) float64 { return v }, nil
	case KindVar:
		return func(x float64) float64 { return x }, nil
	case KindNeg:
		f, err := e.a.Compile()
		if err != nil {
			return nil, err
		}
		return func(x float64) float64 { return -f(x) }, nil
	case KindCall:
		impl, ok := funcImpls[e.fn]
		if !ok {
			return nil, fmt.Errorf("%w: unknown function %s", ErrMalformed, e.fn)
		}
		f, err := e.a.Compile()
		if err != nil {
			return nil, err
		}
		return func(x float64) float64 { return impl(f(x)) }, nil
	case KindBinary:
		l, err := e.a.Compile()
		if err != nil {
			return nil, err
		}
		r, err := e.b.Compile()
		if err != nil {
			return nil, err
		}
		switch e.op {
		case OpAdd:
			return func(x float64) float64 { return l(x) + r(x) }, nil
		case OpSub:
			return func(x float64) float64 { return l(x) - r(x) }, nil
		case OpMul:
			return func(x float64) float64 { return l(x) * r(x) }, nil
		case OpDiv:
			return func(x float64) float64 { return l(x) / r(x) }, nil
		case OpPow:
			return func(x float64) float64 { return math.Pow(l(x), r(x)) }, nil
		}
		return nil, fmt.Errorf("%w: unknown operator %s", ErrMalformed, e.op)
	}
	return nil, fmt.Errorf("%w: unknown node %s", ErrMalformed, e.kind)
}

// Eval evaluates e at x by walking the tree. Malformed nodes yield NaN.
func (e *Expr) Eval(x float64) float64 {
	if e == nil {
		return math.NaN()
	}
	switch e.kind {
	case KindConst:
		return e.val
	case KindVar:
		return x
	case KindNeg:
		return -e.a.Eval(x)
	case KindCall:
		if impl, ok := funcImpls[e.fn]; ok {
			return impl(e.a.Eval(x))
		}
	case KindBinary:
		l, r := e.a.Eval(x), e.b.Eval(x)
		switch e.op {
		case OpAdd:
			return l + r
		case OpSub:
			return l - r
		case OpMul:
			return l * r
		case OpDiv:
			return l / r
		case OpPow:
			return math.Pow(l, r)
		}
	}
	return math.NaN()
}
