package descriptors

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDescriptor reports a structurally broken descriptor:
	// too short for its minimum layout, or a length field that does not
	// match the bytes available.
	ErrInvalidDescriptor = errors.New("invalid descriptor")

	// ErrTruncated reports a declared length or count implying more bytes
	// than the buffer holds.
	ErrTruncated = errors.New("descriptor truncated")
)

// Truncated wraps ErrTruncated with the field that overran and the byte
// counts involved.
func Truncated(field string, need, have int) error {
	return fmt.Errorf("%w: %s needs %d bytes, %d available", ErrTruncated, field, need, have)
}

func truncated(field string, need, have int) error {
	return Truncated(field, need, have)
}
