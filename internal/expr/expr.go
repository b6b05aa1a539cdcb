package expr

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// Kind tags the variant held by an Expr node.
type Kind uint8

const (
	KindConst Kind = iota
	KindVar
	KindNeg
	KindCall
	KindBinary
)

func (k Kind) String() string {
	switch k {
	case KindConst:
		return "const"
	case KindVar:
		return "var"
	case KindNeg:
		return "neg"
	case KindCall:
		return "call"
	case KindBinary:
		return "binary"
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Func is one of the closed set of unary functions.
type Func uint8

const (
	FuncSin Func = iota + 1
	FuncCos
	FuncTan
	FuncAsin
	FuncAcos
	FuncAtan
	FuncSinh
	FuncCosh
	FuncTanh
	FuncExp
	FuncLog
	FuncSqrt
	FuncAbs
)

var funcNames = map[Func]string{
	FuncSin:  "sin",
	FuncCos:  "cos",
	FuncTan:  "tan",
	FuncAsin: "asin",
	FuncAcos: "acos",
	FuncAtan: "atan",
	FuncSinh: "sinh",
	FuncCosh: "cosh",
	FuncTanh: "tanh",
	FuncExp:  "exp",
	FuncLog:  "log",
	FuncSqrt: "sqrt",
	FuncAbs:  "abs",
}

func (f Func) String() string {
	if name, ok := funcNames[f]; ok {
		return name
	}
	return "func(" + strconv.Itoa(int(f)) + ")"
}

// Op is a binary operator.
type Op uint8

const (
	OpAdd Op = iota + 1
	OpSub
	OpMul
	OpDiv
	OpPow
)

func (o Op) String() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpPow:
		return "**"
	}
	return "op(" + strconv.Itoa(int(o)) + ")"
}

// Expr is an immutable expression tree over the single variable x.
type Expr struct {
	kind Kind
	val  float64
	name string // constant name, "pi" or "e"
	fn   Func
	op   Op
	a, b *Expr
}

// Num returns a numeric constant.
func Num(v float64) *Expr { return &Expr{kind: KindConst, val: v} }

// Pi returns the named constant pi.
func Pi() *Expr { return &Expr{kind: KindConst, val: math.Pi, name: "pi"} }

// E returns the named constant e.
func E() *Expr { return &Expr{kind: KindConst, val: math.E, name: "e"} }

// X returns the free variable.
func X() *Expr { return &Expr{kind: KindVar} }

// Negate returns -e.
func Negate(e *Expr) *Expr { return &Expr{kind: KindNeg, a: e} }

// Apply returns fn(arg).
func Apply(fn Func, arg *Expr) *Expr { return &Expr{kind: KindCall, fn: fn, a: arg} }

// Binary returns l op r.
func Binary(op Op, l, r *Expr) *Expr { return &Expr{kind: KindBinary, op: op, a: l, b: r} }

func (e *Expr) Kind() Kind     { return e.kind }
func (e *Expr) Value() float64 { return e.val }
func (e *Expr) Func() Func     { return e.fn }
func (e *Expr) Op() Op         { return e.op }
func (e *Expr) Left() *Expr    { return e.a }
func (e *Expr) Right() *Expr   { return e.b }

// Walk visits e and its descendants depth-first, pre-order. Returning false
// from visit skips the children of that node.
func (e *Expr) Walk(visit func(*Expr) bool) {
	if e == nil || !visit(e) {
		return
	}
	e.a.Walk(visit)
	e.b.Walk(visit)
}

// Funcs returns the distinct functions applied anywhere in e, sorted.
func (e *Expr) Funcs() []Func {
	seen := make(map[Func]bool)
	e.Walk(func(n *Expr) bool {
		if n.kind == KindCall {
			seen[n.fn] = true
		}
		return true
	})
	out := make([]Func, 0, len(seen))
	for fn := range seen {
		out = append(out, fn)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Contains reports whether fn is applied anywhere in e.
func (e *Expr) Contains(fn Func) bool {
	found := false
	e.Walk(func(n *Expr) bool {
		if n.kind == KindCall && n.fn == fn {
			found = true
		}
		return !found
	})
	return found
}

// Equal reports structural equality.
func (e *Expr) Equal(o *Expr) bool {
	if e == nil || o == nil {
		return e == o
	}
	if e.kind != o.kind {
		return false
	}
	switch e.kind {
	case KindConst:
		return e.val == o.val
	case KindVar:
		return true
	case KindNeg:
		return e.a.Equal(o.a)
	case KindCall:
		return e.fn == o.fn && e.a.Equal(o.a)
	case KindBinary:
		return e.op == o.op && e.a.Equal(o.a) && e.b.Equal(o.b)
	}
	return false
}

const (
	precSum = iota + 1
	precProduct
	precUnary
	precPower
	precAtom
)

func (e *Expr) prec() int {
	switch e.kind {
	case KindNeg:
		return precUnary
	case KindConst:
		if e.val < 0 || math.Signbit(e.val) {
			return precUnary
		}
	case KindBinary:
		switch e.op {
		case OpAdd, OpSub:
			return precSum
		case OpMul, OpDiv:
			return precProduct
		case OpPow:
			return precPower
		}
	}
	return precAtom
}

// String returns the canonical text form, e.g. "log(x)/log(2)".
func (e *Expr) String() string {
	var b strings.Builder
	e.write(&b, 0)
	return b.String()
}

func (e *Expr) write(b *strings.Builder, ctx int) {
	if e == nil {
		b.WriteString("<nil>")
		return
	}
	p := e.prec()
	if p < ctx {
		b.WriteByte('(')
		defer b.WriteByte(')')
	}
	switch e.kind {
	case KindConst:
		if e.name != "" {
			b.WriteString(e.name)
		} else {
			b.WriteString(strconv.FormatFloat(e.val, 'g', -1, 64))
		}
	case KindVar:
		b.WriteByte('x')
	case KindNeg:
		b.WriteByte('-')
		e.a.write(b, precUnary)
	case KindCall:
		b.WriteString(e.fn.String())
		b.WriteByte('(')
		e.a.write(b, 0)
		b.WriteByte(')')
	case KindBinary:
		if e.op == OpPow {
			e.a.write(b, p+1)
			b.WriteString("**")
			e.b.write(b, p)
			return
		}
		e.a.write(b, p)
		switch e.op {
		case OpAdd:
			b.WriteString(" + ")
		case OpSub:
			b.WriteString(" - ")
		default:
			b.WriteString(e.op.String())
		}
		e.b.write(b, p+1)
	}
}
