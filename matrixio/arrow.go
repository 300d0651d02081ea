// SPDX-License-Identifier: MIT

package matrixio

import (
	"errors"
	"fmt"
	"io"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/ipc"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/katalvlaran/parmat/matrix"
)

// RowField is the single column name of a matrix record.
const RowField = "row"

var rowType = arrow.ListOf(arrow.PrimitiveTypes.Int32)

// Schema returns the Arrow schema of one matrix record: `row: list<int32>`.
func Schema() *arrow.Schema {
	return arrow.NewSchema(
		[]arrow.Field{
			{Name: RowField, Type: rowType, Nullable: false},
		},
		nil,
	)
}

// ArrowCodec converts matrices to and from Arrow IPC streams.
type ArrowCodec struct {
	allocator memory.Allocator
}

// NewArrowCodec creates a codec on mem; nil selects memory.DefaultAllocator.
func NewArrowCodec(mem memory.Allocator) *ArrowCodec {
	if mem == nil {
		mem = memory.DefaultAllocator
	}

	return &ArrowCodec{allocator: mem}
}

// ToRecord builds a record holding m. The caller must Release it.
func (c *ArrowCodec) ToRecord(m *matrix.Dense) (arrow.Record, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, err
	}

	builder := array.NewRecordBuilder(c.allocator, Schema())
	defer builder.Release()

	rowBuilder := builder.Field(0).(*array.ListBuilder)
	valueBuilder := rowBuilder.ValueBuilder().(*array.Int32Builder)
	rowBuilder.Reserve(m.Rows())
	valueBuilder.Reserve(m.Rows() * m.Cols())

	for i := 0; i < m.Rows(); i++ {
		row, err := m.Row(i)
		if err != nil {
			return nil, err
		}
		rowBuilder.Append(true)
		valueBuilder.AppendValues(row, nil)
	}

	return builder.NewRecord(), nil
}

// FromRecord validates rec against Schema and rebuilds the matrix.
func (c *ArrowCodec) FromRecord(rec arrow.Record) (*matrix.Dense, error) {
	if err := checkSchema(rec.Schema()); err != nil {
		return nil, err
	}

	rowsCol, ok := rec.Column(0).(*array.List)
	if !ok {
		return nil, fmt.Errorf("%w: column 0 is %T", ErrSchema, rec.Column(0))
	}
	values, ok := rowsCol.ListValues().(*array.Int32)
	if !ok {
		return nil, fmt.Errorf("%w: list values are %T", ErrSchema, rowsCol.ListValues())
	}

	rows := make([][]int32, rowsCol.Len())
	for i := range rows {
		if rowsCol.IsNull(i) {
			return nil, fmt.Errorf("%w: row %d", ErrNullRow, i)
		}
		start, end := rowsCol.ValueOffsets(i)
		row := make([]int32, 0, end-start)
		for k := start; k < end; k++ {
			if values.IsNull(int(k)) {
				return nil, fmt.Errorf("%w: row %d element %d", ErrNullRow, i, k-start)
			}
			row = append(row, values.Value(int(k)))
		}
		rows[i] = row
	}

	return matrix.New(rows)
}

// Write encodes ms as one IPC stream, one record per matrix.
func (c *ArrowCodec) Write(w io.Writer, ms ...*matrix.Dense) error {
	writer := ipc.NewWriter(w, ipc.WithSchema(Schema()), ipc.WithAllocator(c.allocator))
	defer writer.Close()

	for i, m := range ms {
		rec, err := c.ToRecord(m)
		if err != nil {
			return fmt.Errorf("matrixio: matrix %d: %w", i, err)
		}
		err = writer.Write(rec)
		rec.Release()
		if err != nil {
			return fmt.Errorf("matrixio: failed to write record %d: %w", i, err)
		}
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("matrixio: failed to close writer: %w", err)
	}

	return nil
}

// Read decodes every record of an IPC stream into a matrix.
func (c *ArrowCodec) Read(r io.Reader) ([]*matrix.Dense, error) {
	reader, err := ipc.NewReader(r, ipc.WithAllocator(c.allocator))
	if err != nil {
		return nil, fmt.Errorf("matrixio: failed to create reader: %w", err)
	}
	defer reader.Release()

	if err = checkSchema(reader.Schema()); err != nil {
		return nil, err
	}

	var out []*matrix.Dense
	for reader.Next() {
		m, err := c.FromRecord(reader.Record())
		if err != nil {
			return nil, fmt.Errorf("matrixio: record %d: %w", len(out), err)
		}
		out = append(out, m)
	}
	if err = reader.Err(); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("matrixio: read stream: %w", err)
	}

	return out, nil
}

func checkSchema(s *arrow.Schema) error {
	if s.NumFields() != 1 {
		return fmt.Errorf("%w: %d fields, want 1", ErrSchema, s.NumFields())
	}
	f := s.Field(0)
	if f.Name != RowField || !arrow.TypeEqual(f.Type, rowType) {
		return fmt.Errorf("%w: got %s: %s", ErrSchema, f.Name, f.Type)
	}

	return nil
}
