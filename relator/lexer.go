package relator

import (
	"fmt"
	"unicode"
)

// tokenKind classifies a lexical token of a relator string.
type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIdent
	tokInt
	tokStar   // *
	tokPow    // ^ or **
	tokEquals // =
	tokLParen // (
	tokRParen // )
	tokPlus   // +
	tokMinus  // -
)

// String names a token kind for error messages.
func (k tokenKind) String() string {
	switch k {
	case tokEOF:
		return "end of input"
	case tokIdent:
		return "identifier"
	case tokInt:
		return "integer"
	case tokStar:
		return "'*'"
	case tokPow:
		return "'^'"
	case tokEquals:
		return "'='"
	case tokLParen:
		return "'('"
	case tokRParen:
		return "')'"
	case tokPlus:
		return "'+'"
	case tokMinus:
		return "'-'"
	default:
		return fmt.Sprintf("token(%d)", int(k))
	}
}

// token is one lexeme with its byte offset in the source.
type token struct {
	kind   tokenKind
	text   string
	offset int
}

// describe renders a token for error messages.
func (t token) describe() string {
	switch t.kind {
	case tokIdent, tokInt:
		return fmt.Sprintf("%s %q", t.kind, t.text)
	default:
		return t.kind.String()
	}
}

// lex splits src into tokens. Whitespace only separates tokens.
// The returned slice always ends with a tokEOF token.
func lex(src string) ([]token, error) {
	var toks []token
	runes := []rune(src)
	// byte offsets for every rune index, plus len(src) at the end
	offsets := make([]int, len(runes)+1)
	{
		i := 0
		for j := range src {
			offsets[i] = j
			i++
		}
		offsets[len(runes)] = len(src)
	}

	for i := 0; i < len(runes); {
		r := runes[i]
		start := offsets[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case isIdentStart(r):
			j := i + 1
			for j < len(runes) && isIdentPart(runes[j]) {
				j++
			}
			toks = append(toks, token{kind: tokIdent, text: string(runes[i:j]), offset: start})
			i = j
		case r >= '0' && r <= '9':
			j := i + 1
			for j < len(runes) && runes[j] >= '0' && runes[j] <= '9' {
				j++
			}
			toks = append(toks, token{kind: tokInt, text: string(runes[i:j]), offset: start})
			i = j
		case r == '*':
			if i+1 < len(runes) && runes[i+1] == '*' {
				toks = append(toks, token{kind: tokPow, text: "**", offset: start})
				i += 2
				continue
			}
			toks = append(toks, token{kind: tokStar, text: "*", offset: start})
			i++
		case r == '^':
			toks = append(toks, token{kind: tokPow, text: "^", offset: start})
			i++
		case r == '=':
			toks = append(toks, token{kind: tokEquals, text: "=", offset: start})
			i++
		case r == '(':
			toks = append(toks, token{kind: tokLParen, text: "(", offset: start})
			i++
		case r == ')':
			toks = append(toks, token{kind: tokRParen, text: ")", offset: start})
			i++
		case r == '+':
			toks = append(toks, token{kind: tokPlus, text: "+", offset: start})
			i++
		case r == '-':
			toks = append(toks, token{kind: tokMinus, text: "-", offset: start})
			i++
		default:
			return nil, &ParseError{Relator: src, Offset: start, Reason: fmt.Sprintf("unexpected character %q", r)}
		}
	}

	return append(toks, token{kind: tokEOF, offset: len(src)}), nil
}

func isIdentStart(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || (r >= '0' && r <= '9') || r == '_'
}
