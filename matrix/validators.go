// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for shape validation.
//  - Keep New and Mul minimal by delegating row/shape/nil checks here.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate only for error messages.
//
// Note:
//  - Composite validators follow a fixed sequence (NotNil -> Shape).

package matrix

import "fmt"

// validateRows enforces the construction invariant: at least one row, a
// non-empty first row, and every row as long as the first.
// Complexity: O(r).
func validateRows(rows [][]int32) error {
	if len(rows) == 0 {
		return invalidDimensionsf("matrix cannot be empty")
	}
	cols := len(rows[0])
	if cols == 0 {
		return invalidDimensionsf("matrix rows cannot be empty")
	}
	for i, row := range rows {
		if len(row) != cols {
			return invalidDimensionsf("all rows must have the same length: row %d has %d elements, want %d", i, len(row), cols)
		}
	}

	return nil
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil.
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return fmt.Errorf("ValidateNotNil: %w", ErrNilMatrix)
	}

	return nil
}

// ValidateMulCompatible checks NotNil(a), NotNil(b), then a.Cols() == b.Rows().
//
// Errors:
//   - ErrNilMatrix if either operand is nil.
//   - ErrDimensionMismatch naming both shapes otherwise.
//
// Complexity: O(1).
func ValidateMulCompatible(a, b *Dense) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.c != b.r {
		return fmt.Errorf("%w: cannot multiply %dx%d matrix with %dx%d matrix",
			ErrDimensionMismatch, a.r, a.c, b.r, b.c)
	}

	return nil
}
