// SPDX-License-Identifier: MIT

package matrixio

import "errors"

var (
	// ErrUnsupportedFormat is returned for a path whose extension maps to no encoding.
	ErrUnsupportedFormat = errors.New("matrixio: unsupported file format")

	// ErrMissingOperand is returned when a source holds fewer than two operands.
	ErrMissingOperand = errors.New("matrixio: missing operand")

	// ErrExtraOperand is returned when an operand source holds more than two matrices.
	ErrExtraOperand = errors.New("matrixio: extra operand")

	// ErrSchema is returned when an Arrow stream does not carry `row: list<int32>`.
	ErrSchema = errors.New("matrixio: unexpected arrow schema")

	// ErrNullRow is returned when an Arrow row or element is null.
	ErrNullRow = errors.New("matrixio: null row or element")
)
