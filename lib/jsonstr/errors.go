package jsonstr

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMalformedSurrogatePair marks a low surrogate without a preceding high
	// surrogate or a high surrogate that is not followed by a low surrogate.
	ErrMalformedSurrogatePair = errors.New("broken surrogate pair")

	// ErrSurrogateRangeOverflow marks a combined surrogate pair above U+10FFFF.
	ErrSurrogateRangeOverflow = errors.New("illegal surrogate")
)

// Error is returned by all encode operations. Kind is one of the sentinel
// errors above, so errors.Is(err, ErrMalformedSurrogatePair) works.
type Error struct {
	Kind  error
	Index int   // cursor position of the first offending code unit, -1 if unknown
	Units []int // offending code units
}

func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Kind.Error())
	sb.WriteString(": ")

	switch {
	case errors.Is(e.Kind, ErrSurrogateRangeOverflow) && len(e.Units) == 2:
		sb.WriteString(fmt.Sprintf("first char 0x%x, second 0x%x; combined scalar exceeds 0x10ffff", e.Units[0], e.Units[1]))
	case len(e.Units) == 2:
		sb.WriteString(fmt.Sprintf("first char 0x%x, second 0x%x; illegal combination", e.Units[0], e.Units[1]))
	case len(e.Units) == 1 && isLowSurrogate(e.Units[0]):
		sb.WriteString(fmt.Sprintf("low surrogate 0x%x without preceding high surrogate", e.Units[0]))
	case len(e.Units) == 1:
		sb.WriteString(fmt.Sprintf("first char 0x%x, no second char; unexpected end of input", e.Units[0]))
	}

	if e.Index >= 0 {
		sb.WriteString(fmt.Sprintf(" (at index %d)", e.Index))
	}
	return sb.String()
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func newError(kind error, index int, units ...int) *Error {
	return &Error{Kind: kind, Index: index, Units: units}
}
