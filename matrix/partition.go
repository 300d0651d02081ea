// SPDX-License-Identifier: MIT

// Package matrix: static row partitioning for the multiplication workers.
//
// Implementation:
//   - chunk = ceil(rows / workers), computed once.
//   - chunks are [0,chunk), [chunk,2*chunk), ... with the last clipped to rows.
//
// Behavior highlights:
//   - Deterministic: the same (rows, workers) pair always yields the same chunks.
//   - At most `workers` chunks; fewer when rows does not fill them
//     (rows=5, workers=4 -> chunk=2 -> 3 chunks).
package matrix

// Chunk is a contiguous half-open range [Start, End) of row indices
// assigned to one worker.
type Chunk struct {
	Start int
	End   int
}

// Len returns the number of rows in the chunk.
func (c Chunk) Len() int { return c.End - c.Start }

// ChunkSize returns ceil(rows/workers), with workers clamped to >= 1.
// Returns 0 for rows <= 0. Never overflows, for any workers up to math.MaxInt.
func ChunkSize(rows, workers int) int {
	if rows <= 0 {
		return 0
	}
	if workers < MinWorkers {
		workers = MinWorkers
	}

	return 1 + (rows-1)/workers
}

// Partition splits [0, rows) into contiguous, near-equal chunks, one per
// worker. Returns nil for rows <= 0.
// Complexity: O(workers).
func Partition(rows, workers int) []Chunk {
	size := ChunkSize(rows, workers)
	if size == 0 {
		return nil
	}

	chunks := make([]Chunk, 0, 1+(rows-1)/size)
	for start := 0; start < rows; start += size {
		// size <= rows, so start+size <= 2*rows-1 stays in range.
		chunks = append(chunks, Chunk{Start: start, End: min(start+size, rows)})
	}

	return chunks
}
