// SPDX-License-Identifier: MIT

package matrixio

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format identifies a file encoding.
type Format uint8

const (
	// FormatYAML is the YAML document encoding.
	FormatYAML Format = iota + 1
	// FormatArrow is the Arrow IPC stream encoding.
	FormatArrow
)

// String returns the lowercase format name.
func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatArrow:
		return "arrow"
	default:
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
}

// FormatFromPath maps a file extension to its Format.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".arrow", ".ipc":
		return FormatArrow, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}
