package relator

import (
	"errors"
	"fmt"
)

// ErrParse is matched by every *ParseError via errors.Is.
var ErrParse = errors.New("relator: parse error")

const (
	// MaxExponent bounds the magnitude of a single exponent.
	MaxExponent = 10000

	// MaxRelatorLength bounds the number of letters a relator may expand to.
	MaxRelatorLength = 1 << 16
)

// ParseError reports a relator string that could not be turned into a word.
type ParseError struct {
	Relator string // the offending relator string, verbatim
	Offset  int    // byte offset of the failure within Relator
	Reason  string
}

// Error implements error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("relator: cannot parse %q at offset %d: %s", e.Relator, e.Offset, e.Reason)
}

// Is makes errors.Is(err, ErrParse) hold for any *ParseError.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}
