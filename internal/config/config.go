// Package config loads lvmaze CLI defaults from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Environment variable names.
const (
	EnvAlgorithm = "LVMAZE_ALGORITHM"
	EnvLogLevel  = "LVMAZE_LOG_LEVEL"
	EnvPlain     = "LVMAZE_PLAIN"
)

// Algorithm values accepted in EnvAlgorithm besides the solver strategy names.
const AlgorithmBoth = "both"

// Config holds the CLI configuration values.
type Config struct {
	Algorithm string       // dfs, bfs or both
	LogLevel  logrus.Level // logging threshold
	Plain     bool         // disable terminal styling
}

// Default returns the built-in configuration: both algorithms, info level, styled.
func Default() Config {
	return Config{
		Algorithm: AlgorithmBoth,
		LogLevel:  logrus.InfoLevel,
		Plain:     false,
	}
}

// Load reads the given .env files (missing files are skipped; with no
// arguments ".env" in the working directory is tried) into the process
// environment without overriding variables already set, then builds a
// Config from the environment on top of Default.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: load %s: %w", f, err)
		}
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config from lookup, falling back to Default for
// unset variables.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if v, ok := lookup(EnvAlgorithm); ok && strings.TrimSpace(v) != "" {
		cfg.Algorithm = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := lookup(EnvLogLevel); ok && strings.TrimSpace(v) != "" {
		lvl, err := logrus.ParseLevel(strings.TrimSpace(v))
		if err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", EnvLogLevel, err)
		}
		cfg.LogLevel = lvl
	}
	if v, ok := lookup(EnvPlain); ok && strings.TrimSpace(v) != "" {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", EnvPlain, err)
		}
		cfg.Plain = b
	}

	return cfg, nil
}
