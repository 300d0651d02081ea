// SPDX-License-Identifier: MIT

// Command parmat multiplies two int32 matrices across concurrent workers and
// prints the product.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/parmat/internal/cli"
	"github.com/katalvlaran/parmat/internal/config"
	"github.com/katalvlaran/parmat/internal/logging"
	"github.com/katalvlaran/parmat/matrix"
	"github.com/katalvlaran/parmat/matrixio"
	"github.com/katalvlaran/parmat/metrics"
)

// Operands used when no -input file is given.
var (
	defaultA = [][]int32{{1, 2}, {3, 4}}
	defaultB = [][]int32{{5, 6}, {7, 8}}
)

func main() {
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.CodeFailure)
	}
}

// run executes one CLI invocation. The product goes to outW, logs to errW.
func run(outW, errW io.Writer, args []string) error {
	cfg, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger, err := logging.New(errW, cfg.LogFormat, cfg.LogLevel)
	if err != nil {
		return &cli.ExitError{Code: cli.CodeUsage, Message: err.Error()}
	}

	a, b, err := loadOperands(cfg)
	if err != nil {
		return &cli.ExitError{Code: cli.CodeFailure, Message: err.Error()}
	}
	logger.Info("operands loaded", "source", sourceName(cfg), "a", shape(a), "b", shape(b))

	reg := prometheus.NewRegistry()
	opts := []matrix.Option{
		matrix.WithLogger(logger),
		matrix.WithObserver(metrics.NewCollector(reg, metrics.DefaultNamespace)),
	}
	if cfg.Workers > 0 {
		opts = append(opts, matrix.WithWorkers(cfg.Workers))
	}

	began := time.Now()
	result, mulErr := a.Mul(b, opts...)

	// Metrics are written for failed runs too.
	if cfg.MetricsFile != "" {
		if err = prometheus.WriteToTextfile(cfg.MetricsFile, reg); err != nil {
			logger.Error("failed to write metrics", "path", cfg.MetricsFile, "err", err)
		}
	}
	if mulErr != nil {
		logger.Error("multiplication failed", "kind", matrix.KindOf(mulErr).String(), "err", mulErr)
		return &cli.ExitError{Code: cli.CodeFailure, Message: mulErr.Error()}
	}
	logger.Info("multiplication complete", "result", shape(result), "elapsed", time.Since(began))

	fmt.Fprintf(outW, "Result:\n%s\n", result)

	if cfg.Output != "" {
		if err = matrixio.SaveResult(cfg.Output, result); err != nil {
			return &cli.ExitError{Code: cli.CodeFailure, Message: err.Error()}
		}
		logger.Info("result written", "path", cfg.Output)
	}

	return nil
}

func loadOperands(cfg *config.Config) (*matrix.Dense, *matrix.Dense, error) {
	if cfg.Input != "" {
		return matrixio.LoadOperands(cfg.Input)
	}
	a, err := matrix.New(defaultA)
	if err != nil {
		return nil, nil, err
	}
	b, err := matrix.New(defaultB)
	if err != nil {
		return nil, nil, err
	}

	return a, b, nil
}

func sourceName(cfg *config.Config) string {
	if cfg.Input == "" {
		return "built-in"
	}
	return cfg.Input
}

func shape(m *matrix.Dense) string {
	r, c := m.Shape()
	return fmt.Sprintf("%dx%d", r, c)
}
