// SPDX-License-Identifier: MIT

// Package matrix: shared output grid (the aggregator).
//
// Purpose:
//   - Collect worker results for one Mul call into a single rows×cols buffer.
//   - Serialize every cell write through one coarse mutex.
//   - Track worker handles so the grid is only unwrapped once every worker released it.
//   - Record poisoning: once a worker panics, later writes and the unwrap fail with ErrThread.
//
// Lifetime:
//   - Created, filled and unwrapped inside a single Mul call; never escapes it.
package matrix

import "sync"

// sharedGrid is the lock-guarded accumulation buffer shared by all workers.
type sharedGrid struct {
	mu       sync.Mutex
	r, c     int
	cells    []int32 // row-major, zero-initialized
	holders  int     // worker handles not yet released
	poisoned bool
	cause    string // panic value of the worker that poisoned the grid
}

// newSharedGrid allocates a zeroed r×c grid.
func newSharedGrid(r, c int) *sharedGrid {
	return &sharedGrid{r: r, c: c, cells: make([]int32, r*c)}
}

// acquire hands out one worker handle. Call once per spawned worker, before
// the goroutine starts.
func (g *sharedGrid) acquire() {
	g.mu.Lock()
	g.holders++
	g.mu.Unlock()
}

// release returns a worker handle.
func (g *sharedGrid) release() {
	g.mu.Lock()
	g.holders--
	g.mu.Unlock()
}

// set writes v at (i, j) under the lock.
// Errors: ErrThread when the grid was poisoned by a panicked worker.
func (g *sharedGrid) set(i, j int, v int32) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.poisoned {
		return threadErrorf("output grid poisoned: %s", g.cause)
	}
	g.cells[i*g.c+j] = v

	return nil
}

// poison marks the grid unusable after a worker panic. The first cause wins.
func (g *sharedGrid) poison(cause string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.poisoned {
		g.poisoned = true
		g.cause = cause
	}
}

// unwrap returns the grid as a slice of row views over the cell buffer.
//
// Errors:
//   - ErrThread when a worker handle is still outstanding.
//   - ErrThread when the grid is poisoned.
func (g *sharedGrid) unwrap() ([][]int32, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.holders != 0 {
		return nil, threadErrorf("failed to unwrap result: %d worker handles outstanding", g.holders)
	}
	if g.poisoned {
		return nil, threadErrorf("output grid poisoned: %s", g.cause)
	}

	rows := make([][]int32, g.r)
	for i := range rows {
		rows[i] = g.cells[i*g.c : (i+1)*g.c : (i+1)*g.c]
	}

	return rows, nil
}
