// Package matrixio reads and writes matrix.Dense values as files.
//
// Two encodings are supported, selected by file extension:
//
//   - YAML (.yaml, .yml): a document with keys "a", "b" (operands) and
//     "result", each a list of rows written in flow style.
//   - Apache Arrow IPC stream (.arrow, .ipc): one record per matrix, schema
//     `row: list<int32>`, one Arrow row per matrix row.
//
// Every decoded matrix goes through matrix.New, so ragged or empty input is
// rejected with matrix.ErrInvalidDimensions.
package matrixio
