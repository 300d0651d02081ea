// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/katalvlaran/parmat/internal/config"
)

// Exit codes.
const (
	CodeFailure = 1 // multiplication or I/O failure
	CodeUsage   = 2 // bad flags, environment or configuration
)

// ExitError is an error carrying the process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns the effective Config,
// a boolean reporting that the program should exit cleanly (help was
// printed), or an *ExitError with CodeUsage.
//
// Precedence: flags > environment > -config file > defaults.
func Parse(args []string, output io.Writer) (*config.Config, bool, error) {
	flagSet := flag.NewFlagSet("parmat", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
parmat - concurrent dense int32 matrix multiplication.

Usage:
  parmat [options]

Without -input, multiplies [[1, 2], [3, 4]] by [[5, 6], [7, 8]].

Options:
`)
		flagSet.PrintDefaults()
	}

	def := config.Default()
	configFlag := flagSet.String("config", "", "Path to a YAML configuration file.")
	inputFlag := flagSet.String("input", def.Input, "Operand file: .yaml/.yml (keys a, b) or .arrow/.ipc (two records).")
	outputFlag := flagSet.String("output", def.Output, "Optional result file: .yaml/.yml or .arrow/.ipc.")
	workersFlag := flagSet.Int("workers", def.Workers, "Worker goroutines per multiplication. 0 detects hardware parallelism.")
	logLevelFlag := flagSet.String("log-level", def.LogLevel, "Logging level. Options: 'debug', 'info', 'warn', 'error'.")
	logFormatFlag := flagSet.String("log-format", def.LogFormat, "Log output format. Options: 'text' or 'json'.")
	metricsFlag := flagSet.String("metrics-file", def.MetricsFile, "Write Prometheus metrics to this textfile after the run.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: CodeUsage, Message: err.Error()}
	}
	if flagSet.NArg() > 0 {
		return nil, false, &ExitError{Code: CodeUsage, Message: fmt.Sprintf("unexpected arguments: %v", flagSet.Args())}
	}

	cfg := def
	if *configFlag != "" {
		if err := config.LoadFile(&cfg, *configFlag); err != nil {
			return nil, false, &ExitError{Code: CodeUsage, Message: err.Error()}
		}
	}
	if err := config.ApplyEnvOverrides(&cfg); err != nil {
		return nil, false, &ExitError{Code: CodeUsage, Message: err.Error()}
	}

	flagSet.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "input":
			cfg.Input = *inputFlag
		case "output":
			cfg.Output = *outputFlag
		case "workers":
			cfg.Workers = *workersFlag
		case "log-level":
			cfg.LogLevel = *logLevelFlag
		case "log-format":
			cfg.LogFormat = *logFormatFlag
		case "metrics-file":
			cfg.MetricsFile = *metricsFlag
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, false, &ExitError{Code: CodeUsage, Message: err.Error()}
	}

	return &cfg, false, nil
}
