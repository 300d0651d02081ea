// Package config holds the parmat CLI configuration and its sources:
// built-in defaults, an optional YAML file, PARMAT_* environment variables
// and command-line flags, applied in that order.
package config
