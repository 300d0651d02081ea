// SPDX-License-Identifier: MIT

package matrixio

import (
	"fmt"
	"os"

	"github.com/katalvlaran/parmat/matrix"
)

// LoadOperands reads operands A and B from path.
// YAML files use keys "a" and "b"; Arrow streams must hold exactly two records.
func LoadOperands(path string) (*matrix.Dense, *matrix.Dense, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("matrixio: %w", err)
	}
	defer f.Close()

	switch format {
	case FormatYAML:
		doc, err := DecodeYAML(f)
		if err != nil {
			return nil, nil, err
		}
		return doc.Operands()
	default:
		ms, err := NewArrowCodec(nil).Read(f)
		if err != nil {
			return nil, nil, err
		}
		switch {
		case len(ms) < 2:
			return nil, nil, fmt.Errorf("%w: stream holds %d record(s), want 2", ErrMissingOperand, len(ms))
		case len(ms) > 2:
			return nil, nil, fmt.Errorf("%w: stream holds %d records, want 2", ErrExtraOperand, len(ms))
		}
		return ms[0], ms[1], nil
	}
}

// SaveOperands writes a and b to path in the format chosen by its extension.
func SaveOperands(path string, a, b *matrix.Dense) error {
	if err := matrix.ValidateNotNil(a); err != nil {
		return err
	}
	if err := matrix.ValidateNotNil(b); err != nil {
		return err
	}

	return save(path, Document{A: a.Data(), B: b.Data()}, a, b)
}

// SaveResult writes m to path: under key "result" for YAML, as a single
// record for Arrow.
func SaveResult(path string, m *matrix.Dense) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return err
	}

	return save(path, Document{Result: m.Data()}, m)
}

func save(path string, doc Document, ms ...*matrix.Dense) (err error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("matrixio: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("matrixio: %w", cerr)
		}
	}()

	if format == FormatYAML {
		return EncodeYAML(f, doc)
	}

	return NewArrowCodec(nil).Write(f, ms...)
}
