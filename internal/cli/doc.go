// Package cli parses parmat command-line arguments into a config.Config and
// carries process exit codes through ExitError.
package cli
