package expr

import (
	"fmt"
	"strings"
)

var funcsByName = map[string]Func{
	"sin":  FuncSin,
	"cos":  FuncCos,
	"tan":  FuncTan,
	"asin": FuncAsin,
	"acos": FuncAcos,
	"atan": FuncAtan,
	"sinh": FuncSinh,
	"cosh": FuncCosh,
	"tanh": FuncTanh,
	"exp":  FuncExp,
	"log":  FuncLog,
	"ln":   FuncLog,
	"sqrt": FuncSqrt,
	"abs":  FuncAbs,
}

// fixedBaseLogs lower to log(v)/log(base).
var fixedBaseLogs = map[string]float64{
	"log10": 10,
	"log2":  2,
}

// Parse turns text into an expression over x. Operators are + - * / and
// ** (or ^) for powers; the only free symbol allowed is x, plus the
// constants pi and e.
func Parse(text string) (*Expr, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &ParseError{Text: text, Wrapped: ErrEmpty}
	}
	toks, err := lex(text)
	if err != nil {
		return nil, err
	}
	p := &parser{text: text, toks: toks}
	e, err := p.expr(precSum)
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t.kind != tokEOF {
		return nil, p.errorf(t, ErrSyntax, "unexpected %s", t.describe())
	}
	return e, nil
}

// MustParse is like Parse but panics on error. For tests and constants.
func MustParse(text string) *Expr {
	e, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return e
}

type parser struct {
	text string
	toks []token
	pos  int
}

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) errorf(t token, kind error, format string, args ...any) error {
	return &ParseError{Text: p.text, Pos: t.col, Detail: fmt.Sprintf(format, args...), Wrapped: kind}
}

func binaryOp(t token) (Op, int, bool) {
	if t.kind != tokOp {
		return 0, 0, false
	}
	switch t.text {
	case "+":
		return OpAdd, precSum, true
	case "-":
		return OpSub, precSum, true
	case "*":
		return OpMul, precProduct, true
	case "/":
		return OpDiv, precProduct, true
	case "**", "^":
		return OpPow, precPower, true
	}
	return 0, 0, false
}

// expr parses operators binding at least as tightly as minPrec.
func (p *parser) expr(minPrec int) (*Expr, error) {
	left, err := p.prefix()
	if err != nil {
		return nil, err
	}
	for {
		op, prec, ok := binaryOp(p.peek())
		if !ok || prec < minPrec {
			return left, nil
		}
		p.next()
		var right *Expr
		if op == OpPow {
			// right associative; the exponent may carry its own sign
			right, err = p.expr(precUnary)
		} else {
			right, err = p.expr(prec + 1)
		}
		if err != nil {
			return nil, err
		}
		left = Binary(op, left, right)
	}
}

func (p *parser) prefix() (*Expr, error) {
	t := p.next()
	switch t.kind {
	case tokNum:
		return Num(t.num), nil
	case tokOp:
		if t.text == "-" || t.text == "+" {
			operand, err := p.expr(precUnary)
			if err != nil {
				return nil, err
			}
			if t.text == "+" {
				return operand, nil
			}
			return Negate(operand), nil
		}
	case tokLParen:
		inner, err := p.expr(precSum)
		if err != nil {
			return nil, err
		}
		if c := p.next(); c.kind != tokRParen {
			return nil, p.errorf(c, ErrSyntax, "expected \")\", got %s", c.describe())
		}
		return inner, nil
	case tokIdent:
		if p.peek().kind == tokLParen {
			return p.call(t)
		}
		switch t.text {
		case "x":
			return X(), nil
		case "pi":
			return Pi(), nil
		case "e":
			return E(), nil
		}
		return nil, p.errorf(t, ErrUnknownSymbol, "%q", t.text)
	}
	return nil, p.errorf(t, ErrSyntax, "unexpected %s", t.describe())
}

func (p *parser) call(name token) (*Expr, error) {
	p.next() // (
	var args []*Expr
	if p.peek().kind != tokRParen {
		for {
			arg, err := p.expr(precSum)
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if p.peek().kind != tokComma {
				break
			}
			p.next()
		}
	}
	if c := p.next(); c.kind != tokRParen {
		return nil, p.errorf(c, ErrSyntax, "expected \")\" or \",\", got %s", c.describe())
	}
	return p.resolveCall(name, args)
}

// resolveCall maps a call to the function enum. Two-argument log(v, b)
// and the fixed-base variants become log(v)/log(b) on the parsed
// subtrees, so nesting and repeated calls are unaffected.
func (p *parser) resolveCall(name token, args []*Expr) (*Expr, error) {
	if base, ok := fixedBaseLogs[name.text]; ok {
		if len(args) != 1 {
			return nil, p.errorf(name, ErrArity, "%s takes 1 argument, got %d", name.text, len(args))
		}
		return logBase(args[0], Num(base)), nil
	}
	fn, ok := funcsByName[name.text]
	if !ok {
		return nil, p.errorf(name, ErrUnknownSymbol, "function %q", name.text)
	}
	if fn == FuncLog && len(args) == 2 {
		return logBase(args[0], args[1]), nil
	}
	if len(args) != 1 {
		want := "1 argument"
		if fn == FuncLog {
			want = "1 or 2 arguments"
		}
		return nil, p.errorf(name, ErrArity, "%s takes %s, got %d", name.text, want, len(args))
	}
	return Apply(fn, args[0]), nil
}

func logBase(value, base *Expr) *Expr {
	return Binary(OpDiv, Apply(FuncLog, value), Apply(FuncLog, base))
}
