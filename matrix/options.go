// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the multiplication engine.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults per call.
//
// Design goals:
//   - No global mutable state: worker detection is a read made once per Mul call.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
package matrix

import (
	"log/slog"
	"runtime"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultWorkers of zero means "detect hardware parallelism per call".
	DefaultWorkers = 0

	// MinWorkers is the floor applied to detected parallelism.
	MinWorkers = 1
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicWorkersInvalid = "matrix: WithWorkers: n must be >= 1"
	panicLoggerNil      = "matrix: WithLogger: logger must be non-nil"
	panicObserverNil    = "matrix: WithObserver: observer must be non-nil"
)

// Option mutates internal options. Safe to apply repeatedly (last wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	workers  int                // fixed worker count; DefaultWorkers means detect
	logger   *slog.Logger       // debug tracing; discard by default
	observer Observer           // optional per-call report sink
	cellHook func(row, col int) // runs before each output cell; set only by tests
}

// WithWorkers forces the worker count instead of detecting it.
// Panics when n < 1.
//
// AI-Hints:
//   - Use WithWorkers(1) vs WithWorkers(8) to check partition invariance.
func WithWorkers(n int) Option {
	if n < MinWorkers {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithLogger routes engine debug logs to logger.
func WithLogger(logger *slog.Logger) Option {
	if logger == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = logger }
}

// WithObserver registers an Observer that receives one Report per Mul call,
// successful or not.
func WithObserver(obs Observer) Option {
	if obs == nil {
		panic(panicObserverNil)
	}

	return func(o *Options) { o.observer = obs }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{
		workers: DefaultWorkers,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// resolveWorkers returns the forced count, or detects it.
func (o Options) resolveWorkers() int {
	if o.workers >= MinWorkers {
		return o.workers
	}

	return DetectWorkers()
}

// DetectWorkers reports the available hardware parallelism, never less than 1.
// It reads runtime.GOMAXPROCS(0), which honours CPU affinity and container
// CPU limits, and is evaluated fresh on every call.
func DetectWorkers() int {
	n := runtime.GOMAXPROCS(0)
	if n < MinWorkers {
		return MinWorkers
	}

	return n
}
