package coset

import (
	"context"
	"errors"
	"fmt"
)

// DefaultMaxCosets is the live-coset limit used when none is configured.
const DefaultMaxCosets = 10000

// undefined marks a coset-table entry with no known target.
const undefined = -1

// ctxCheckEvery is how many definitions may pass between context checks.
const ctxCheckEvery = 1024

// Sentinel errors for coset enumeration.
var (
	// ErrNilAlphabet is returned when Enumerate receives a nil alphabet.
	ErrNilAlphabet = errors.New("coset: alphabet is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("coset: invalid option supplied")

	// ErrTooManyCosets is matched by *TooManyCosetsError.
	ErrTooManyCosets = errors.New("coset: too many cosets")

	// ErrBudgetExceeded is returned when the definition budget runs out.
	ErrBudgetExceeded = errors.New("coset: definition budget exceeded")

	// ErrIncompleteTable is matched by *IncompleteTableError.
	ErrIncompleteTable = errors.New("coset: incomplete coset table")
)

// TooManyCosetsError reports that the number of live cosets passed the
// configured limit. The presentation likely defines an infinite group, or the
// limit is too low for it.
type TooManyCosetsError struct {
	Limit int // configured maximum
	Live  int // live cosets when the limit was crossed
}

// Error implements error.
func (e *TooManyCosetsError) Error() string {
	return fmt.Sprintf("coset: %d live cosets exceed the limit of %d; the group may be infinite or the limit too low",
		e.Live, e.Limit)
}

// Is makes errors.Is(err, ErrTooManyCosets) hold.
func (e *TooManyCosetsError) Is(target error) bool {
	return target == ErrTooManyCosets
}

// IncompleteTableError reports a coset table with an undefined, out-of-range
// or inconsistent entry, or a relator that does not close. Column is -1 when
// the failure is not tied to one column.
type IncompleteTableError struct {
	Coset  int
	Column int
	Reason string
}

// Error implements error.
func (e *IncompleteTableError) Error() string {
	if e.Column < 0 {
		return fmt.Sprintf("coset: incomplete table at coset %d: %s", e.Coset, e.Reason)
	}

	return fmt.Sprintf("coset: incomplete table at coset %d, column %d: %s", e.Coset, e.Column, e.Reason)
}

// Is makes errors.Is(err, ErrIncompleteTable) hold.
func (e *IncompleteTableError) Is(target error) bool {
	return target == ErrIncompleteTable
}

// Option configures Enumerate via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds the limits and hooks of one enumeration run.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxCosets bounds the number of live cosets. Must be positive.
	MaxCosets int

	// MaxDefinitions, if > 0, bounds the total number of coset definitions.
	// 0 disables the budget.
	MaxDefinitions int

	// OnDefine is called after coset target is defined as source·col.
	OnDefine func(source, col, target int)

	// OnCoincidence is called when coset merged is identified with kept.
	OnCoincidence func(kept, merged int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - MaxCosets = DefaultMaxCosets
//   - no definition budget
//   - no-op hooks
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		MaxCosets:      DefaultMaxCosets,
		MaxDefinitions: 0,
		OnDefine:       func(int, int, int) {},
		OnCoincidence:  func(int, int) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxCosets sets the live-coset limit.
//
//	n > 0: limit to n live cosets
//	n <= 0: invalid option → ErrOptionViolation
func WithMaxCosets(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxCosets must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxCosets = n
	}
}

// WithMaxDefinitions sets the definition budget.
//
//	n > 0: at most n definitions
//	n == 0: explicit "no budget"
//	n < 0: invalid option → ErrOptionViolation
func WithMaxDefinitions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxDefinitions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxDefinitions = n
	}
}

// WithOnDefine registers a callback run after each definition.
func WithOnDefine(fn func(source, col, target int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDefine = fn
		}
	}
}

// WithOnCoincidence registers a callback run for each merged coset.
func WithOnCoincidence(fn func(kept, merged int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnCoincidence = fn
		}
	}
}

// Stats summarises the work of an enumeration run.
type Stats struct {
	Defined      int `json:"defined" yaml:"defined" msgpack:"defined"`                // cosets defined after coset 0
	Deductions   int `json:"deductions" yaml:"deductions" msgpack:"deductions"`       // entries filled by one-letter gaps
	Coincidences int `json:"coincidences" yaml:"coincidences" msgpack:"coincidences"` // cosets merged away
	MaxLive      int `json:"max_live" yaml:"max_live" msgpack:"max_live"`             // peak live coset count
}
