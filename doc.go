// Package parmat is a concurrent dense-matrix multiplication engine for
// signed 32-bit integers, with a small CLI around it.
//
// What is inside?
//
//   - matrix/: the validated Dense type, the row partitioner, the worker
//     pool and shared output grid, and the closed error taxonomy
//     (invalid dimensions, dimension mismatch, overflow, thread failure).
//   - metrics/: a Prometheus Collector that plugs into matrix.WithObserver.
//   - matrixio/: YAML and Apache Arrow IPC files for operands and results.
//   - cmd/parmat: the command line: load or hardcode two operands, multiply,
//     print "Result:" and the product, optionally write the result and a
//     Prometheus textfile.
//
// Guarantees
//
//   - The product never depends on the number of workers.
//   - Arithmetic overflow is an error, never a wrapped or clamped value.
//   - A failed multiplication returns no partial matrix.
//
// Quick start:
//
//	a, _ := matrix.New([][]int32{{1, 2}, {3, 4}})
//	b, _ := matrix.New([][]int32{{5, 6}, {7, 8}})
//	c, err := a.Mul(b)           // [[19, 22], [43, 50]]
//	c, err = a.Mul(b, matrix.WithWorkers(4))
//
// Only the naive triple loop is implemented: no sparse storage, no
// non-integer element types, no blocked or Strassen-style algorithms.
package parmat
