// SPDX-License-Identifier: MIT

package matrix

import "time"

// Report summarises one Mul call for an Observer.
type Report struct {
	Rows    int           // rows of the left operand (and of the result)
	Inner   int           // shared dimension: a.Cols() == b.Rows()
	Cols    int           // columns of the right operand (and of the result)
	Workers int           // resolved worker count W
	Chunks  int           // goroutines actually spawned (<= W)
	Elapsed time.Duration // wall time from validation to return
	Err     error         // nil on success
}

// Observer receives a Report after every Mul call with non-nil operands,
// including calls rejected for a dimension mismatch. Implementations must
// be safe for concurrent use when shared between concurrent Mul calls.
type Observer interface {
	ObserveMul(Report)
}
