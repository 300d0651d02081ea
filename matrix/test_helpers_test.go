// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for constructor and engine tests.
//   • Keep a naive single-goroutine reference product to compare the engine against.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/parmat/matrix"
)

// MustNew builds a *Dense from rows or fails the test (fatal on error).
func MustNew(tb testing.TB, rows [][]int32) *matrix.Dense {
	tb.Helper()
	m, err := matrix.New(rows)
	if err != nil {
		tb.Fatalf("New(%v): %v", rows, err)
	}

	return m
}

// ModPattern returns an r×c matrix with entries (i+j) mod m.
func ModPattern(tb testing.TB, r, c int, m int32) *matrix.Dense {
	tb.Helper()
	rows := make([][]int32, r)
	for i := range rows {
		rows[i] = make([]int32, c)
		for j := range rows[i] {
			rows[i][j] = int32(i+j) % m
		}
	}

	return MustNew(tb, rows)
}

// RandomDense returns an r×c matrix with values in [-limit, limit], reproducible by seed.
func RandomDense(tb testing.TB, r, c int, limit int32, seed int64) *matrix.Dense {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]int32, r)
	for i := range rows {
		rows[i] = make([]int32, c)
		for j := range rows[i] {
			rows[i][j] = rng.Int31n(2*limit+1) - limit
		}
	}

	return MustNew(tb, rows)
}

// NaiveProduct is the single-goroutine int64 reference for a×b. Callers
// must keep values small enough that no cell leaves int32.
func NaiveProduct(a, b *matrix.Dense) [][]int32 {
	ad, bd := a.Data(), b.Data()
	out := make([][]int32, a.Rows())
	var i, j, k int
	for i = range out {
		out[i] = make([]int32, b.Cols())
		for j = 0; j < b.Cols(); j++ {
			var sum int64
			for k = 0; k < a.Cols(); k++ {
				sum += int64(ad[i][k]) * int64(bd[k][j])
			}
			out[i][j] = int32(sum)
		}
	}

	return out
}
