package freegroup

import (
	"errors"
	"regexp"
)

// Sentinel errors for alphabet construction.
var (
	// ErrNoGenerators is returned when a presentation declares no generators.
	ErrNoGenerators = errors.New("freegroup: at least one generator is required")

	// ErrInvalidGenerator is returned for names outside the identifier pattern
	// or for the reserved identity name.
	ErrInvalidGenerator = errors.New("freegroup: invalid generator name")

	// ErrDuplicateGenerator is returned when a name is declared twice.
	ErrDuplicateGenerator = errors.New("freegroup: duplicate generator name")
)

// IdentityName is how the identity element is written in relators and output.
const IdentityName = "e"

// generatorPattern restricts generator names; upper case is reserved for inverses.
var generatorPattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// Letter is a single generator reference with exponent +1 or -1.
type Letter struct {
	Gen int // generator index in declaration order
	Exp int // +1 or -1
}

// Inverse returns the letter with the opposite exponent.
func (l Letter) Inverse() Letter {
	return Letter{Gen: l.Gen, Exp: -l.Exp}
}

// Column returns the coset-table column of l: 2·Gen for a generator,
// 2·Gen+1 for its inverse.
func (l Letter) Column() int {
	if l.Exp < 0 {
		return 2*l.Gen + 1
	}

	return 2 * l.Gen
}

// LetterOf is the inverse of Letter.Column.
func LetterOf(col int) Letter {
	if col%2 == 1 {
		return Letter{Gen: col / 2, Exp: -1}
	}

	return Letter{Gen: col / 2, Exp: 1}
}

// InverseColumn returns the column of the inverse letter of col.
func InverseColumn(col int) int {
	return col ^ 1
}

// Word is an element of the free group written as a sequence of letters.
// The nil or empty Word is the identity.
type Word []Letter

// Len returns the number of letters in w.
func (w Word) Len() int { return len(w) }

// IsIdentity reports whether w is the empty word.
func (w Word) IsIdentity() bool { return len(w) == 0 }

// Equal reports token equality of w and v.
func (w Word) Equal(v Word) bool {
	if len(w) != len(v) {
		return false
	}
	for i := range w {
		if w[i] != v[i] {
			return false
		}
	}

	return true
}

// Clone returns an independent copy of w.
func (w Word) Clone() Word {
	if w == nil {
		return nil
	}
	out := make(Word, len(w))
	copy(out, w)

	return out
}

// Columns returns the coset-table column of every letter of w.
func (w Word) Columns() []int {
	cols := make([]int, len(w))
	for i, l := range w {
		cols[i] = l.Column()
	}

	return cols
}
