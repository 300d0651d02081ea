// SPDX-License-Identifier: MIT
package matrix_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/katalvlaran/parmat/matrix"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err   error
		want  matrix.Kind
		label string
	}{
		{nil, matrix.KindNone, "none"},
		{matrix.ErrInvalidDimensions, matrix.KindInvalidDimensions, "invalid_dimensions"},
		{fmt.Errorf("ctx: %w", matrix.ErrDimensionMismatch), matrix.KindDimensionMismatch, "dimension_mismatch"},
		{fmt.Errorf("a: %w", fmt.Errorf("b: %w", matrix.ErrOverflow)), matrix.KindOverflow, "overflow"},
		{matrix.ErrThread, matrix.KindThread, "thread"},
		{matrix.ErrNilMatrix, matrix.KindUnknown, "unknown"},
		{errors.New("foreign"), matrix.KindUnknown, "unknown"},
	}
	for _, tc := range tests {
		got := matrix.KindOf(tc.err)
		require.Equal(t, tc.want, got)
		require.Equal(t, tc.label, got.String())
	}
	require.Equal(t, "unknown", matrix.Kind(200).String())
}

// TestErrorMessages pins the "matrix:" prefix used across logs.
func TestErrorMessages(t *testing.T) {
	_, err := matrix.New(nil)
	require.EqualError(t, err, "matrix: invalid matrix dimensions: matrix cannot be empty")

	_, err = matrix.New([][]int32{{1, 2}, {3}})
	require.ErrorContains(t, err, "all rows must have the same length")

	a := MustNew(t, [][]int32{{1, 2, 3}, {4, 5, 6}})
	b := MustNew(t, [][]int32{{7, 8}, {9, 10}})
	_, err = a.Mul(b)
	require.EqualError(t, err, "matrix: matrix multiplication dimensions mismatch: cannot multiply 2x3 matrix with 2x2 matrix")
}
