// SPDX-License-Identifier: MIT

// Package matrix - concurrent naive multiplication C = A × B.
//
// Purpose:
//   - Split the rows of A into static chunks (Partition) and compute each chunk on its own goroutine.
//   - Accumulate every dot product in int64 with checked multiply/add, narrowing to int32 once per cell.
//   - Converge all cells into one mutex-guarded grid, then re-validate it through New.
//
// Failure policy:
//   - Workers are never cancelled; every spawned worker is waited for.
//   - Outcomes are inspected in spawn order and the first error is returned; later ones are dropped.
//   - A panic inside a worker is recovered, poisons the grid and becomes ErrThread.
//   - No partial result is ever returned alongside an error.
//
// Complexity:
//   - Time O(r*n*p) total work split across W goroutines, Space O(r*p) for the grid.
package matrix

import (
	"fmt"
	"sync"
	"time"
)

// Mul returns m × other. See Multiply.
func (m *Dense) Mul(other *Dense, opts ...Option) (*Dense, error) {
	return Multiply(m, other, opts...)
}

// Multiply computes a × b across concurrent workers.
// MAIN DESCRIPTION:
//   - Naive triple loop, partitioned by rows of a; one goroutine per chunk.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible (nil, then a.Cols()==b.Rows()).
//   - Stage 2: resolve W (WithWorkers or DetectWorkers) and Partition(a.Rows(), W).
//   - Stage 3: spawn one worker per chunk against a shared grid; wait for all.
//   - Stage 4: surface the first error in spawn order, else unwrap the grid and pass it through New.
//
// Behavior highlights:
//   - Operands are never mutated; both are read concurrently without locks (Dense is immutable).
//   - The result does not depend on W.
//   - Overflow is never clamped or wrapped.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrOverflow, ErrThread.
//
// Determinism:
//   - Partition is a pure function of (rows, W); which error is reported is a
//     function of spawn order, not of wall-clock order.
//
// AI-Hints:
//   - Pass WithObserver(metrics.NewCollector(...)) to export per-call reports.
func Multiply(a, b *Dense, opts ...Option) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, err
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, err
	}

	o := gatherOptions(opts...)
	began := time.Now()
	rep := Report{Rows: a.r, Inner: a.c, Cols: b.c}

	res, err := multiply(a, b, o, &rep)

	rep.Elapsed = time.Since(began)
	rep.Err = err
	if o.observer != nil {
		o.observer.ObserveMul(rep)
	}
	if err != nil {
		o.logger.Debug("multiply failed", "kind", KindOf(err).String(), "err", err, "elapsed", rep.Elapsed)
		return nil, err
	}
	o.logger.Debug("multiply finished", "rows", res.r, "cols", res.c, "elapsed", rep.Elapsed)

	return res, nil
}

// multiply runs stages 1-4 and fills the worker fields of rep.
func multiply(a, b *Dense, o Options, rep *Report) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, err
	}

	workers := o.resolveWorkers()
	chunks := Partition(a.r, workers)
	rep.Workers, rep.Chunks = workers, len(chunks)
	o.logger.Debug("multiply started",
		"a", fmt.Sprintf("%dx%d", a.r, a.c),
		"b", fmt.Sprintf("%dx%d", b.r, b.c),
		"workers", workers,
		"chunks", len(chunks),
		"chunk_size", ChunkSize(a.r, workers))

	grid := newSharedGrid(a.r, b.c)
	if err := runWorkers(a, b, chunks, grid, o); err != nil {
		return nil, err
	}

	rows, err := grid.unwrap()
	if err != nil {
		return nil, err
	}

	// Re-validate through the public gate so every result is rectangular by construction.
	return New(rows)
}

// runWorkers spawns one goroutine per chunk, waits for all of them and
// returns the first error in spawn order.
func runWorkers(a, b *Dense, chunks []Chunk, grid *sharedGrid, o Options) error {
	errs := make([]error, len(chunks)) // slot per worker, indexed by spawn order
	var wg sync.WaitGroup
	wg.Add(len(chunks))
	for idx, ch := range chunks {
		grid.acquire()
		go func() {
			defer wg.Done()
			errs[idx] = mulChunk(a, b, ch, grid, o.cellHook)
		}()
	}
	wg.Wait()

	var first error
	for idx, err := range errs {
		if err == nil {
			continue
		}
		o.logger.Debug("worker failed", "worker", idx, "rows", fmt.Sprintf("[%d,%d)", chunks[idx].Start, chunks[idx].End), "err", err)
		if first == nil {
			first = err
		}
	}

	return first
}

// mulChunk computes every output cell for rows [ch.Start, ch.End).
// hook, when non-nil, runs before each cell.
// A panic is recovered, poisons the grid and is returned as ErrThread.
func mulChunk(a, b *Dense, ch Chunk, grid *sharedGrid, hook func(row, col int)) (err error) {
	defer grid.release()
	defer func() {
		if r := recover(); r != nil {
			cause := fmt.Sprint(r)
			grid.poison(cause)
			err = threadErrorf("worker panicked: %s", cause)
		}
	}()

	n, p := a.c, b.c
	var (
		i, j, k  int
		sum, prd int64
		ok       bool
		cell     int32
	)
	for i = ch.Start; i < ch.End; i++ {
		rowA := a.data[i*n : (i+1)*n]
		for j = 0; j < p; j++ {
			if hook != nil {
				hook(i, j)
			}
			sum = 0
			for k = 0; k < n; k++ {
				if prd, ok = mulInt64(int64(rowA[k]), int64(b.data[k*p+j])); !ok {
					return fmt.Errorf("%w: product overflow at cell (%d,%d), k=%d", ErrOverflow, i, j, k)
				}
				if sum, ok = addInt64(sum, prd); !ok {
					return fmt.Errorf("%w: sum overflow at cell (%d,%d), k=%d", ErrOverflow, i, j, k)
				}
			}
			if cell, ok = narrowInt32(sum); !ok {
				return fmt.Errorf("%w: value %d at cell (%d,%d) does not fit in int32", ErrOverflow, sum, i, j)
			}
			if err = grid.set(i, j, cell); err != nil {
				return err
			}
		}
	}

	return nil
}
