package group

import (
	"context"
	"errors"
	"strings"

	"github.com/katalvlaran/fpgroup/coset"
	"github.com/katalvlaran/fpgroup/freegroup"
	"github.com/katalvlaran/fpgroup/relator"
)

// Sentinel errors for group construction and lookup.
var (
	// ErrNilTable is returned when Extract receives a nil table.
	ErrNilTable = errors.New("group: coset table is nil")

	// ErrUnknownElement is returned when a name is not a canonical element.
	ErrUnknownElement = errors.New("group: unknown element")
)

// Presentation is an immutable ⟨generators | relators⟩ pair.
type Presentation struct {
	alphabet *freegroup.Alphabet
	relators []freegroup.Word
	sources  []string
}

// NewPresentation validates the generator names and parses every relator.
func NewPresentation(generators, relators []string) (*Presentation, error) {
	alpha, err := freegroup.NewAlphabet(generators)
	if err != nil {
		return nil, err
	}
	words, err := relator.Parse(alpha, relators)
	if err != nil {
		return nil, err
	}
	sources := make([]string, len(relators))
	copy(sources, relators)

	return &Presentation{alphabet: alpha, relators: words, sources: sources}, nil
}

// Alphabet returns the generator alphabet.
func (p *Presentation) Alphabet() *freegroup.Alphabet { return p.alphabet }

// Relators returns copies of the parsed relator words.
func (p *Presentation) Relators() []freegroup.Word {
	out := make([]freegroup.Word, len(p.relators))
	for i, w := range p.relators {
		out[i] = w.Clone()
	}

	return out
}

// Sources returns the relator strings as supplied.
func (p *Presentation) Sources() []string {
	out := make([]string, len(p.sources))
	copy(out, p.sources)

	return out
}

// String renders the presentation as "<a, b | a*a, b*b>" using normalised words.
func (p *Presentation) String() string {
	var sb strings.Builder
	sb.WriteByte('<')
	sb.WriteString(strings.Join(p.alphabet.Names(), ", "))
	sb.WriteString(" | ")
	for i, w := range p.relators {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.alphabet.Format(w))
	}
	sb.WriteByte('>')

	return sb.String()
}

// Enumerate runs coset enumeration for p and extracts the group.
// ctx is applied before opts, so a WithContext option overrides it.
func (p *Presentation) Enumerate(ctx context.Context, opts ...coset.Option) (*Group, error) {
	all := make([]coset.Option, 0, len(opts)+1)
	all = append(all, coset.WithContext(ctx))
	all = append(all, opts...)
	t, err := coset.Enumerate(p.alphabet, p.relators, all...)
	if err != nil {
		return nil, err
	}

	return Extract(t)
}

// Enumerate parses the presentation and enumerates the group it defines.
func Enumerate(ctx context.Context, generators, relators []string, opts ...coset.Option) (*Group, error) {
	p, err := NewPresentation(generators, relators)
	if err != nil {
		return nil, err
	}

	return p.Enumerate(ctx, opts...)
}
