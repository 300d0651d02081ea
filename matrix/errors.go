// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set and the closed failure taxonomy.
// Every algorithm returns one of these sentinels, usually wrapped with a
// message via fmt.Errorf("%w: ..."). Tests and callers MUST match them with
// errors.Is. User-triggered conditions never panic.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." so failures are easy to grep
// in logs. Wrapped messages read "matrix: <kind>: <detail>".

var (
	// ErrInvalidDimensions is returned by New when the row list is empty,
	// the first row is empty, or the rows are ragged.
	ErrInvalidDimensions = errors.New("matrix: invalid matrix dimensions")

	// ErrDimensionMismatch indicates operands that cannot be multiplied
	// (a.Cols() != b.Rows()).
	ErrDimensionMismatch = errors.New("matrix: matrix multiplication dimensions mismatch")

	// ErrOverflow signals that a checked product or sum overflowed int64, or
	// that a finished dot product does not fit into int32.
	ErrOverflow = errors.New("matrix: arithmetic overflow")

	// ErrThread signals a worker panic, a poisoned output grid, or a failure
	// to unwrap the grid after all workers were joined.
	ErrThread = errors.New("matrix: thread error")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// At/Row return this; Get reports it as ok=false instead.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

// Kind is the closed enumeration of engine failures.
type Kind uint8

const (
	// KindNone classifies a nil error.
	KindNone Kind = iota
	// KindInvalidDimensions is ErrInvalidDimensions.
	KindInvalidDimensions
	// KindDimensionMismatch is ErrDimensionMismatch.
	KindDimensionMismatch
	// KindOverflow is ErrOverflow.
	KindOverflow
	// KindThread is ErrThread.
	KindThread
	// KindUnknown classifies any error outside the taxonomy (nil operands,
	// index errors, foreign errors).
	KindUnknown
)

var kindNames = [...]string{
	KindNone:              "none",
	KindInvalidDimensions: "invalid_dimensions",
	KindDimensionMismatch: "dimension_mismatch",
	KindOverflow:          "overflow",
	KindThread:            "thread",
	KindUnknown:           "unknown",
}

// String returns a stable snake_case label, suitable for metric labels.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return kindNames[KindUnknown]
}

// KindOf classifies err against the taxonomy.
// Complexity: O(depth of the wrap chain).
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrInvalidDimensions):
		return KindInvalidDimensions
	case errors.Is(err, ErrDimensionMismatch):
		return KindDimensionMismatch
	case errors.Is(err, ErrOverflow):
		return KindOverflow
	case errors.Is(err, ErrThread):
		return KindThread
	default:
		return KindUnknown
	}
}

// invalidDimensionsf wraps ErrInvalidDimensions with a formatted detail.
func invalidDimensionsf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidDimensions, fmt.Sprintf(format, args...))
}

// threadErrorf wraps ErrThread with a formatted detail.
func threadErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrThread, fmt.Sprintf(format, args...))
}
