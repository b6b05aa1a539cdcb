package expr

import (
	"strconv"
	"unicode"
)

type tokenKind uint8

const (
	tokEOF tokenKind = iota
	tokNum
	tokIdent
	tokOp
	tokLParen
	tokRParen
	tokComma
)

type token struct {
	kind tokenKind
	text string
	num  float64
	col  int // 1-based rune column
}

func (t token) describe() string {
	if t.kind == tokEOF {
		return "end of input"
	}
	return strconv.Quote(t.text)
}

// lex splits src into tokens, always ending with tokEOF.
func lex(src string) ([]token, error) {
	runes := []rune(src)
	var toks []token
	i := 0
	for i < len(runes) {
		r := runes[i]
		col := i + 1
		switch {
		case unicode.IsSpace(r):
			i++
		case r >= '0' && r <= '9' || r == '.' && i+1 < len(runes) && isDigit(runes[i+1]):
			j := scanNumber(runes, i)
			text := string(runes[i:j])
			v, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return nil, &ParseError{Text: src, Pos: col, Detail: "bad number " + strconv.Quote(text), Wrapped: ErrSyntax}
			}
			toks = append(toks, token{kind: tokNum, text: text, num: v, col: col})
			i = j
		case unicode.IsLetter(r) || r == '_':
			j := i + 1
			for j < len(runes) && (unicode.IsLetter(runes[j]) || unicode.IsDigit(runes[j]) || runes[j] == '_') {
				j++
			}
			toks = append(toks, token{kind: tokIdent, text: string(runes[i:j]), col: col})
			i = j
		case r == '*' && i+1 < len(runes) && runes[i+1] == '*':
			toks = append(toks, token{kind: tokOp, text: "**", col: col})
			i += 2
		case r == '+' || r == '-' || r == '*' || r == '/' || r == '^':
			toks = append(toks, token{kind: tokOp, text: string(r), col: col})
			i++
		case r == '(':
			toks = append(toks, token{kind: tokLParen, text: "(", col: col})
			i++
		case r == ')':
			toks = append(toks, token{kind: tokRParen, text: ")", col: col})
			i++
		case r == ',':
			toks = append(toks, token{kind: tokComma, text: ",", col: col})
			i++
		default:
			return nil, &ParseError{Text: src, Pos: col, Detail: "unexpected character " + strconv.QuoteRune(r), Wrapped: ErrSyntax}
		}
	}
	return append(toks, token{kind: tokEOF, col: len(runes) + 1}), nil
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

// scanNumber returns the end of the numeric literal starting at i:
// digits, optional fraction, optional exponent with at least one digit.
func scanNumber(runes []rune, i int) int {
	j := i
	for j < len(runes) && isDigit(runes[j]) {
		j++
	}
	if j < len(runes) && runes[j] == '.' {
		j++
		for j < len(runes) && isDigit(runes[j]) {
			j++
		}
	}
	if j < len(runes) && (runes[j] == 'e' || runes[j] == 'E') {
		k := j + 1
		if k < len(runes) && (runes[k] == '+' || runes[k] == '-') {
			k++
		}
		if k < len(runes) && isDigit(runes[k]) {
			for k < len(runes) && isDigit(runes[k]) {
				k++
			}
			j = k
		}
	}
	return j
}
