// Package matrix offers a validated int32 Dense matrix and a concurrent
// multiplication engine.
//
// The matrix package provides:
//
//   - Dense: an immutable, rectangular, row-major grid of int32 built only via New.
//   - Multiply / Dense.Mul: the naive triple loop split by rows across goroutines
//     (Partition), accumulated in overflow-checked int64 and narrowed to int32.
//   - A closed error taxonomy (ErrInvalidDimensions, ErrDimensionMismatch,
//     ErrOverflow, ErrThread) with KindOf for classification.
//   - Functional options (WithWorkers, WithLogger, WithObserver).
//
// Results are independent of the worker count. A failed multiply never
// returns a partial matrix; the first failure in worker spawn order wins.
//
// See the examples in this package and cmd/parmat for usage patterns.
package matrix
