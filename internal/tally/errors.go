package tally

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when --require-input is set and no records
	// were read.
	ErrEmptyInput = errors.New("no input records")

	// ErrNoMatch is returned by freq --first-over when no count exceeds the
	// threshold.
	ErrNoMatch = errors.New("no matching entry")
)

// KeySpecError is returned when a --by key spec cannot be parsed.
type KeySpecError struct {
	Spec    string
	Pos     int
	Message string
}

func (e *KeySpecError) Error() string {
	return fmt.Sprintf("key spec error at position %d in %q: %s", e.Pos, e.Spec, e.Message)
}
