package pagespec

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedSpec is returned when a specification is not of the form
	// token(,token)* where each token is an integer or integer-integer.
	ErrMalformedSpec = errors.New("malformed page spec")
	// ErrOutOfRange is returned when a resolved sequence is empty or holds an
	// index outside [0, total).
	ErrOutOfRange = errors.New("page index out of range")
	// ErrPolicy is returned when a Policy asks for something it cannot do,
	// such as filling the remaining pages without a page count.
	ErrPolicy = errors.New("invalid page policy")
)

// SpecError describes the part of a specification that could not be parsed.
type SpecError struct {
	Spec   string
	Part   string
	Reason string
}

func (e *SpecError) Error() string {
	if e.Part == "" {
		return fmt.Sprintf("%s %q: %s", ErrMalformedSpec, e.Spec, e.Reason)
	}
	return fmt.Sprintf("%s %q: part %q %s", ErrMalformedSpec, e.Spec, e.Part, e.Reason)
}

func (e *SpecError) Unwrap() error { return ErrMalformedSpec }

// RangeError reports the first index that failed bounds validation. Index
// and Total are zero-based; Empty is set when nothing was selected at all.
type RangeError struct {
	Index int
	Total int
	Empty bool
}

func (e *RangeError) Error() string {
	if e.Empty {
		return fmt.Sprintf("%s: no pages selected", ErrOutOfRange)
	}
	return fmt.Sprintf("%s: page %d, document has %d pages", ErrOutOfRange, e.Index+1, e.Total)
}

func (e *RangeError) Unwrap() error { return ErrOutOfRange }

func malformed(spec, part, reason string) error {
	return &SpecError{Spec: spec, Part: part, Reason: reason}
}
