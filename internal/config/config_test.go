// SPDX-License-Identifier: MIT

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/parmat/internal/config"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "parmat.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.Equal(t, 0, cfg.Workers)
	require.Equal(t, config.DefaultLogLevel, cfg.LogLevel)
	require.Equal(t, config.DefaultLogFormat, cfg.LogFormat)
	require.NoError(t, cfg.Validate())
}

func TestLoadFile_MergesNonZero(t *testing.T) {
	path := writeFile(t, "workers: 3\nlogFormat: json\nmetricsFile: out.prom\n")

	cfg := config.Default()
	require.NoError(t, config.LoadFile(&cfg, path))
	require.Equal(t, 3, cfg.Workers)
	require.Equal(t, "json", cfg.LogFormat)
	require.Equal(t, "out.prom", cfg.MetricsFile)
	require.Equal(t, config.DefaultLogLevel, cfg.LogLevel, "unset keys keep their value")
}

func TestLoadFile_Errors(t *testing.T) {
	cfg := config.Default()
	require.Error(t, config.LoadFile(&cfg, filepath.Join(t.TempDir(), "absent.yaml")))
	require.Error(t, config.LoadFile(&cfg, writeFile(t, "workers: [1\n")))
}

func TestLoadFile_UnknownKeyRejected(t *testing.T) {
	cfg := config.Default()
	err := config.LoadFile(&cfg, writeFile(t, "worker: 4\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "worker")
	require.Equal(t, config.Default(), cfg, "a rejected file changes nothing")
}

func TestLoadFile_Empty(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, config.LoadFile(&cfg, writeFile(t, "")))
	require.Equal(t, config.Default(), cfg)
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv(config.EnvWorkers, " 5 ")
	t.Setenv(config.EnvLogLevel, "debug")
	t.Setenv(config.EnvLogFormat, "")

	cfg := config.Default()
	cfg.LogFormat = "json"
	require.NoError(t, config.ApplyEnvOverrides(&cfg))
	require.Equal(t, 5, cfg.Workers)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, "json", cfg.LogFormat, "blank variables are ignored")
}

func TestApplyEnvOverrides_BadWorkers(t *testing.T) {
	t.Setenv(config.EnvWorkers, "many")
	cfg := config.Default()
	require.ErrorIs(t, config.ApplyEnvOverrides(&cfg), config.ErrInvalid)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		mut  func(*config.Config)
		ok   bool
	}{
		{"defaults", func(*config.Config) {}, true},
		{"upper case normalized", func(c *config.Config) { c.LogLevel, c.LogFormat = "WARN", "JSON" }, true},
		{"negative workers", func(c *config.Config) { c.Workers = -1 }, false},
		{"bad level", func(c *config.Config) { c.LogLevel = "trace" }, false},
		{"bad format", func(c *config.Config) { c.LogFormat = "xml" }, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mut(&cfg)
			err := cfg.Validate()
			if tc.ok {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, config.ErrInvalid)
		})
	}
}
