// SPDX-License-Identifier: MIT

package matrixio

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/parmat/matrix"
)

// Document is the YAML layout for operands and results.
type Document struct {
	A      [][]int32 `yaml:"a,omitempty,flow"`
	B      [][]int32 `yaml:"b,omitempty,flow"`
	Result [][]int32 `yaml:"result,omitempty,flow"`
}

// Operands validates A and B through matrix.New.
func (d Document) Operands() (*matrix.Dense, *matrix.Dense, error) {
	if d.A == nil {
		return nil, nil, fmt.Errorf("%w: key %q", ErrMissingOperand, "a")
	}
	if d.B == nil {
		return nil, nil, fmt.Errorf("%w: key %q", ErrMissingOperand, "b")
	}
	a, err := matrix.New(d.A)
	if err != nil {
		return nil, nil, fmt.Errorf("operand a: %w", err)
	}
	b, err := matrix.New(d.B)
	if err != nil {
		return nil, nil, fmt.Errorf("operand b: %w", err)
	}

	return a, b, nil
}

// DecodeYAML reads one Document from r.
func DecodeYAML(r io.Reader) (Document, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("matrixio: decode yaml: %w", err)
	}

	return doc, nil
}

// EncodeYAML writes doc to w.
func EncodeYAML(w io.Writer, doc Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("matrixio: encode yaml: %w", err)
	}

	return enc.Close()
}
