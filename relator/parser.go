// Package relator turns relator strings into free-group words.
//
// Grammar (whitespace is insignificant):
//
//	relation := product [ '=' product ] EOF
//	product  := power { ['*'] power }
//	power    := atom { ('^' | '**') exponent }
//	atom     := GENERATOR | INVERSE | 'e' | 'E' | '(' product ')'
//	exponent := ['+'|'-'] INT | '(' ['+'|'-'] INT ')'
//
// A generator is written with its declared lower-case name and its inverse
// with the upper-case form ("a", "A"). Adjacent operands multiply implicitly,
// so "a b a b" equals "a*b*a*b". "lhs = rhs" is stored as lhs·rhs⁻¹.
// Chained exponents associate to the right: "a^2^3" is a^8.
//
// Parsing is a pure function of the alphabet and the input; nothing is
// evaluated beyond the grammar above.
package relator

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/fpgroup/freegroup"
)

// Parse parses every relator string against alpha, in order.
// The first failure is returned as a *ParseError naming that relator.
func Parse(alpha *freegroup.Alphabet, relators []string) ([]freegroup.Word, error) {
	words := make([]freegroup.Word, 0, len(relators))
	for _, src := range relators {
		w, err := ParseRelator(alpha, src)
		if err != nil {
			return nil, err
		}
		words = append(words, w)
	}

	return words, nil
}

// ParseRelator parses a single relator string into a freely reduced word.
func ParseRelator(alpha *freegroup.Alphabet, src string) (freegroup.Word, error) {
	toks, err := lex(src)
	if err != nil {
		return nil, err
	}
	p := &parser{alpha: alpha, src: src, toks: toks}

	return p.relation()
}

// parser holds recursive-descent state for one relator string.
type parser struct {
	alpha *freegroup.Alphabet
	src   string
	toks  []token
	pos   int
}

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}

	return t
}

func (p *parser) fail(at token, format string, args ...any) error {
	return &ParseError{Relator: p.src, Offset: at.offset, Reason: fmt.Sprintf(format, args...)}
}

func (p *parser) expect(kind tokenKind) (token, error) {
	t := p.next()
	if t.kind != kind {
		return t, p.fail(t, "expected %s, found %s", kind, t.describe())
	}

	return t, nil
}

// relation := product [ '=' product ] EOF
func (p *parser) relation() (freegroup.Word, error) {
	lhs, err := p.product()
	if err != nil {
		return nil, err
	}
	if p.peek().kind == tokEquals {
		p.next()
		rhs, err := p.product()
		if err != nil {
			return nil, err
		}
		lhs = freegroup.Multiply(lhs, freegroup.Inverse(rhs))
	}
	if t := p.peek(); t.kind != tokEOF {
		if t.kind == tokEquals {
			return nil, p.fail(t, "at most one '=' is allowed")
		}
		return nil, p.fail(t, "unexpected %s", t.describe())
	}

	return lhs, nil
}

// product := power { ['*'] power }
func (p *parser) product() (freegroup.Word, error) {
	w, err := p.power()
	if err != nil {
		return nil, err
	}
	for {
		t := p.peek()
		switch {
		case t.kind == tokStar:
			p.next()
		case t.kind == tokIdent || t.kind == tokLParen:
			// implicit multiplication
		default:
			return w, nil
		}
		rhs, err := p.power()
		if err != nil {
			return nil, err
		}
		if len(w)+len(rhs) > MaxRelatorLength {
			return nil, p.fail(t, "relator expands beyond %d letters", MaxRelatorLength)
		}
		w = freegroup.Multiply(w, rhs)
	}
}

// power := atom { ('^' | '**') exponent }, exponents associating right.
func (p *parser) power() (freegroup.Word, error) {
	base, err := p.atom()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokPow {
		return base, nil
	}
	at := p.next()
	n, err := p.exponentChain()
	if err != nil {
		return nil, err
	}
	abs := n
	if abs < 0 {
		abs = -abs
	}
	if len(base) > 0 && abs > MaxRelatorLength/len(base) {
		return nil, p.fail(at, "relator expands beyond %d letters", MaxRelatorLength)
	}

	return freegroup.Power(base, n), nil
}

// exponentChain parses exponent { ('^' | '**') exponent } and folds it right
// to left into a single integer.
func (p *parser) exponentChain() (int, error) {
	first := p.peek()
	exps := []int{}
	for {
		n, err := p.exponent()
		if err != nil {
			return 0, err
		}
		exps = append(exps, n)
		if p.peek().kind != tokPow {
			break
		}
		p.next()
	}
	acc := exps[len(exps)-1]
	for i := len(exps) - 2; i >= 0; i-- {
		if acc < 0 {
			return 0, p.fail(first, "negative exponent %d in an exponent tower", acc)
		}
		v, ok := intPow(exps[i], acc)
		if !ok {
			return 0, p.fail(first, "exponent exceeds %d", MaxExponent)
		}
		acc = v
	}

	return acc, nil
}

// exponent := ['+'|'-'] INT | '(' ['+'|'-'] INT ')'
func (p *parser) exponent() (int, error) {
	paren := false
	if p.peek().kind == tokLParen {
		p.next()
		paren = true
	}
	sign := 1
	switch p.peek().kind {
	case tokMinus:
		p.next()
		sign = -1
	case tokPlus:
		p.next()
	}
	t := p.next()
	if t.kind != tokInt {
		return 0, p.fail(t, "expected integer exponent, found %s", t.describe())
	}
	n, err := strconv.Atoi(t.text)
	if err != nil || n > MaxExponent {
		return 0, p.fail(t, "exponent %s exceeds %d", t.text, MaxExponent)
	}
	if paren {
		if _, err := p.expect(tokRParen); err != nil {
			return 0, err
		}
	}

	return sign * n, nil
}

// atom := GENERATOR | INVERSE | 'e' | 'E' | '(' product ')'
func (p *parser) atom() (freegroup.Word, error) {
	t := p.next()
	switch t.kind {
	case tokIdent:
		if t.text == "e" || t.text == "E" {
			return freegroup.Word{}, nil
		}
		l, ok := p.alpha.Lookup(t.text)
		if !ok {
			return nil, p.fail(t, "undeclared generator %q", t.text)
		}
		return freegroup.Word{l}, nil
	case tokLParen:
		w, err := p.product()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokRParen); err != nil {
			return nil, err
		}
		return w, nil
	default:
		return nil, p.fail(t, "expected generator or '(', found %s", t.describe())
	}
}

// intPow computes b^e for e >= 0, reporting false when |result| > MaxExponent.
func intPow(b, e int) (int, bool) {
	switch b {
	case 0:
		if e == 0 {
			return 1, true
		}
		return 0, true
	case 1:
		return 1, true
	case -1:
		if e%2 == 0 {
			return 1, true
		}
		return -1, true
	}
	r := 1
	for i := 0; i < e; i++ {
		r *= b
		if r > MaxExponent || r < -MaxExponent {
			return 0, false
		}
	}

	return r, true
}
