// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for Dense construction & accessors.
package matrix_test

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/parmat/matrix"
	"github.com/stretchr/testify/require"
)

// TestNew_Valid checks shape and element placement for a 2x2 input.
func TestNew_Valid(t *testing.T) {
	m, err := matrix.New([][]int32{{1, 2}, {3, 4}})
	require.NoError(t, err)

	require.Equal(t, 2, m.Rows()) // row count from the outer slice
	require.Equal(t, 2, m.Cols()) // column count from the first row

	v, ok := m.Get(0, 0)
	require.True(t, ok)
	require.Equal(t, int32(1), v)

	v, ok = m.Get(1, 1)
	require.True(t, ok)
	require.Equal(t, int32(4), v)
}

// TestNew_InvalidDimensions covers every rejection path of the constructor.
func TestNew_InvalidDimensions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rows [][]int32
	}{
		{"nil", nil},
		{"empty", [][]int32{}},
		{"empty first row", [][]int32{{}}},
		{"ragged short", [][]int32{{1, 2}, {3}}},
		{"ragged long", [][]int32{{1}, {2, 3}}},
		{"ragged middle", [][]int32{{1, 2}, {3, 4}, {5}, {6, 7}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := matrix.New(tc.rows)
			require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
			require.Nil(t, m)
			require.Equal(t, matrix.KindInvalidDimensions, matrix.KindOf(err))
		})
	}
}

// TestNew_CopiesInput ensures later mutation of the caller's rows is invisible.
func TestNew_CopiesInput(t *testing.T) {
	rows := [][]int32{{1, 2}, {3, 4}}
	m := MustNew(t, rows)

	rows[0][0] = 99 // mutate the caller-owned slice

	v, _ := m.Get(0, 0)
	require.Equal(t, int32(1), v)
}

// TestGet_OutOfRange checks the "absent" result for every bad index direction.
func TestGet_OutOfRange(t *testing.T) {
	t.Parallel()
	m := MustNew(t, [][]int32{{1, 2, 3}, {4, 5, 6}})

	for _, idx := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 3}, {5, 5}} {
		v, ok := m.Get(idx[0], idx[1])
		require.Falsef(t, ok, "Get(%d,%d) should be absent", idx[0], idx[1])
		require.Zero(t, v)
	}
}

// TestAt_OutOfRange ensures At wraps ErrOutOfRange instead of panicking.
func TestAt_OutOfRange(t *testing.T) {
	m := MustNew(t, [][]int32{{1}})

	_, err := m.At(1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, int32(1), v)
}

// TestRowAndData verify both return independent copies.
func TestRowAndData(t *testing.T) {
	m := MustNew(t, [][]int32{{1, 2}, {3, 4}})

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []int32{3, 4}, row)
	row[0] = 42
	v, _ := m.Get(1, 0)
	require.Equal(t, int32(3), v) // Row returned a copy

	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	data := m.Data()
	require.Equal(t, [][]int32{{1, 2}, {3, 4}}, data)
	data[1][1] = 0
	v, _ = m.Get(1, 1)
	require.Equal(t, int32(4), v) // Data returned a deep copy
}

// TestIdentity builds I_3 and rejects n < 1.
func TestIdentity(t *testing.T) {
	id, err := matrix.Identity(3)
	require.NoError(t, err)
	require.Equal(t, [][]int32{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, id.Data())

	_, err = matrix.Identity(0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestEqual covers shape, value and nil comparisons.
func TestEqual(t *testing.T) {
	a := MustNew(t, [][]int32{{1, 2}})
	require.True(t, a.Equal(MustNew(t, [][]int32{{1, 2}})))
	require.False(t, a.Equal(MustNew(t, [][]int32{{1, 3}})))
	require.False(t, a.Equal(MustNew(t, [][]int32{{1}, {2}})))
	require.False(t, a.Equal(nil))

	var n *matrix.Dense
	require.True(t, n.Equal(nil))
}

// TestStringOutput checks that String() formats the matrix one row per line.
func TestStringOutput(t *testing.T) {
	m := MustNew(t, [][]int32{{19, 22}, {43, -50}})

	expected := "[19, 22]\n[43, -50]\n"
	require.Equal(t, expected, m.String())

	var buf bytes.Buffer
	n, err := m.WriteTo(&buf)
	require.NoError(t, err)
	require.Equal(t, int64(len(expected)), n)
	require.Equal(t, expected, buf.String())
}
