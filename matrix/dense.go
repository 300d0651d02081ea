// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide an immutable, validated rectangular grid of int32 values.
//   - Keep a single validation gate (New) shared by callers and by Mul's result path.
//   - Guarantee safety at the public surface: Get/At/Row never panic.
//
// Complexity quicksheet:
//   - New: O(r*c) copy; Get/At: O(1); Row: O(c); Data: O(r*c); String: O(r*c).

package matrix

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxRow = "Row" // method tag used in error wrappers
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a validated, read-only row-major matrix of int32 values.
//   - r,c hold dimensions (both >= 1 for every reachable value).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// A *Dense has no mutators, so it is safe for concurrent readers.
type Dense struct {
	r, c int     // row and column counts
	data []int32 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for fmt.Stringer & io.WriterTo conformance.
var (
	_ fmt.Stringer = (*Dense)(nil)
	_ io.WriterTo  = (*Dense)(nil)
)

// New validates rows and returns them as a Dense matrix.
// MAIN DESCRIPTION:
//   - The single construction gate: every *Dense in the program passes here.
//
// Implementation:
//   - Stage 1: reject an empty row list and an empty first row.
//   - Stage 2: reject any row whose length differs from the first row.
//   - Stage 3: copy rows into a fresh flat buffer.
//
// Behavior highlights:
//   - The input is copied; mutating rows afterwards does not affect the result.
//
// Errors:
//   - ErrInvalidDimensions (empty or ragged input).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New(rows [][]int32) (*Dense, error) {
	if err := validateRows(rows); err != nil {
		return nil, err
	}

	r, c := len(rows), len(rows[0])
	buf := make([]int32, 0, r*c)
	for _, row := range rows {
		buf = append(buf, row...)
	}

	return &Dense{r: r, c: c, data: buf}, nil
}

// Identity returns the n×n identity matrix.
// Errors: ErrInvalidDimensions when n < 1.
func Identity(n int) (*Dense, error) {
	if n < 1 {
		return nil, invalidDimensionsf("identity size must be > 0, got %d", n)
	}
	rows := make([][]int32, n)
	for i := range rows {
		rows[i] = make([]int32, n)
		rows[i][i] = 1
	}

	return New(rows)
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// Get returns the element at (row, col) and true, or (0, false) when either
// index is out of range.
// Complexity: O(1).
func (m *Dense) Get(row, col int) (int32, bool) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, false
	}

	return m.data[off], true
}

// At returns the value at (row, col) or a wrapped ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (int32, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Row returns a copy of row i.
// Errors: ErrOutOfRange when i is not in [0, Rows()).
func (m *Dense) Row(i int) ([]int32, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]int32, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Data returns a deep copy of the matrix as a slice of rows.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense) Data() [][]int32 {
	out := make([][]int32, m.r)
	for i := range out {
		out[i] = make([]int32, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// Equal reports whether m and other have the same shape and elements.
// Two nil matrices are equal.
func (m *Dense) Equal(other *Dense) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.r != other.r || m.c != other.c {
		return false
	}
	for i, v := range m.data {
		if other.data[i] != v {
			return false
		}
	}

	return true
}

// String renders one row per line as "[a, b, c]", each line newline-terminated.
// Intended for diagnostics; not for hot paths.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense) String() string {
	var b strings.Builder
	m.render(&b)

	return b.String()
}

// WriteTo writes the String() rendering to w, implementing io.WriterTo.
func (m *Dense) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder
	m.render(&b)
	n, err := io.WriteString(w, b.String())

	return int64(n), err
}

func (m *Dense) render(b *strings.Builder) {
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(strconv.FormatInt(int64(m.data[base+j]), 10))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}
}
