// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Environment variables read by ApplyEnvOverrides.
const (
	EnvWorkers   = "PARMAT_WORKERS"
	EnvLogLevel  = "PARMAT_LOG_LEVEL"
	EnvLogFormat = "PARMAT_LOG_FORMAT"
)

// Defaults.
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the effective CLI configuration.
type Config struct {
	Input       string // operand file (YAML or Arrow); empty uses the built-in operands
	Output      string // optional result file (YAML or Arrow)
	Workers     int    // 0 detects hardware parallelism per call
	LogLevel    string // debug, info, warn, error
	LogFormat   string // text, json
	MetricsFile string // optional Prometheus textfile
}

// File is the on-disk YAML layout. Zero values leave the current setting untouched.
type File struct {
	Input       string `yaml:"input"`
	Output      string `yaml:"output"`
	Workers     int    `yaml:"workers"`
	LogLevel    string `yaml:"logLevel"`
	LogFormat   string `yaml:"logFormat"`
	MetricsFile string `yaml:"metricsFile"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
	}
}

// LoadFile reads path and merges it over cfg. Unknown keys are rejected;
// an empty file leaves cfg unchanged.
func LoadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	var parsed File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err = dec.Decode(&parsed); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	Merge(cfg, parsed)

	return nil
}

// Merge copies every non-zero field of src into dst.
func Merge(dst *Config, src File) {
	if src.Input != "" {
		dst.Input = src.Input
	}
	if src.Output != "" {
		dst.Output = src.Output
	}
	if src.Workers != 0 {
		dst.Workers = src.Workers
	}
	if src.LogLevel != "" {
		dst.LogLevel = src.LogLevel
	}
	if src.LogFormat != "" {
		dst.LogFormat = src.LogFormat
	}
	if src.MetricsFile != "" {
		dst.MetricsFile = src.MetricsFile
	}
}

// ApplyEnvOverrides applies the PARMAT_* variables that are set and non-blank.
func ApplyEnvOverrides(cfg *Config) error {
	if raw := strings.TrimSpace(os.Getenv(EnvWorkers)); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not an integer", ErrInvalid, EnvWorkers, raw)
		}
		cfg.Workers = n
	}
	if level := strings.TrimSpace(os.Getenv(EnvLogLevel)); level != "" {
		cfg.LogLevel = level
	}
	if format := strings.TrimSpace(os.Getenv(EnvLogFormat)); format != "" {
		cfg.LogFormat = format
	}

	return nil
}

// Validate normalizes case and checks every field.
func (c *Config) Validate() error {
	c.LogLevel = strings.ToLower(c.LogLevel)
	c.LogFormat = strings.ToLower(c.LogFormat)

	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must be >= 0, got %d", ErrInvalid, c.Workers)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log-level must be 'debug', 'info', 'warn', or 'error', got %q", ErrInvalid, c.LogLevel)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("%w: log-format must be 'text' or 'json', got %q", ErrInvalid, c.LogFormat)
	}

	return nil
}
