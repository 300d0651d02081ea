// Package metrics exports multiplication reports as Prometheus metrics.
//
// A Collector implements matrix.Observer. Register it on any
// prometheus.Registerer and pass it to the engine with matrix.WithObserver:
//
//	reg := prometheus.NewRegistry()
//	col := metrics.NewCollector(reg, metrics.DefaultNamespace)
//	c, err := matrix.Multiply(a, b, matrix.WithObserver(col))
//
// The CLI dumps the registry to a node_exporter textfile after each run.
package metrics
