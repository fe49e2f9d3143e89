package freegroup

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Alphabet is the ordered generator set of a presentation.
// It is immutable once built and safe for concurrent reads.
type Alphabet struct {
	names    []string
	inverses []string
	lookup   map[string]Letter
}

// NewAlphabet validates names and builds an Alphabet in declaration order.
// Returns ErrNoGenerators, ErrInvalidGenerator or ErrDuplicateGenerator.
func NewAlphabet(names []string) (*Alphabet, error) {
	if len(names) == 0 {
		return nil, ErrNoGenerators
	}
	upper := cases.Upper(language.Und)
	a := &Alphabet{
		names:    make([]string, len(names)),
		inverses: make([]string, len(names)),
		lookup:   make(map[string]Letter, 2*len(names)),
	}
	for i, name := range names {
		if !generatorPattern.MatchString(name) || name == IdentityName {
			return nil, fmt.Errorf("%w: %q", ErrInvalidGenerator, name)
		}
		if _, dup := a.lookup[name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateGenerator, name)
		}
		inv := upper.String(name)
		a.names[i] = name
		a.inverses[i] = inv
		a.lookup[name] = Letter{Gen: i, Exp: 1}
		a.lookup[inv] = Letter{Gen: i, Exp: -1}
	}

	return a, nil
}

// MustAlphabet is like NewAlphabet but panics on error. Intended for tests
// and package-level fixtures.
func MustAlphabet(names ...string) *Alphabet {
	a, err := NewAlphabet(names)
	if err != nil {
		panic(err)
	}

	return a
}

// Size returns the number of generators.
func (a *Alphabet) Size() int { return len(a.names) }

// Columns returns the number of coset-table columns (generators and inverses).
func (a *Alphabet) Columns() int { return 2 * len(a.names) }

// Names returns a copy of the generator names in declaration order.
func (a *Alphabet) Names() []string {
	out := make([]string, len(a.names))
	copy(out, a.names)

	return out
}

// Gen returns generator i as a length-1 word.
func (a *Alphabet) Gen(i int) Word { return Word{{Gen: i, Exp: 1}} }

// Inv returns the inverse of generator i as a length-1 word.
func (a *Alphabet) Inv(i int) Word { return Word{{Gen: i, Exp: -1}} }

// Identity returns the empty word.
func (a *Alphabet) Identity() Word { return Word{} }

// Lookup resolves a token: a generator name yields the generator, its
// upper-case form yields the inverse.
func (a *Alphabet) Lookup(token string) (Letter, bool) {
	l, ok := a.lookup[token]

	return l, ok
}

// LetterName returns the written form of l.
func (a *Alphabet) LetterName(l Letter) string {
	if l.Exp < 0 {
		return a.inverses[l.Gen]
	}

	return a.names[l.Gen]
}

// Format renders w as a "*"-joined product of letter names, or "e" for the
// identity. A run of k > 1 equal letters is written name^k ("a^3*B^2").
// The result is accepted back by the relator parser.
func (a *Alphabet) Format(w Word) string {
	if len(w) == 0 {
		return IdentityName
	}
	var sb strings.Builder
	for i := 0; i < len(w); {
		j := i + 1
		for j < len(w) && w[j] == w[i] {
			j++
		}
		if i > 0 {
			sb.WriteByte('*')
		}
		sb.WriteString(a.LetterName(w[i]))
		if j-i > 1 {
			sb.WriteByte('^')
			sb.WriteString(strconv.Itoa(j - i))
		}
		i = j
	}

	return sb.String()
}
