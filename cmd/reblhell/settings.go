package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/reblhell/internal/config"
)

// settings is everything resolved from flags, environment and config files.
type settings struct {
	cfg      config.Config
	seed     int64
	logLevel string
}

// loadSettings resolves the effective configuration. Precedence: config
// file, then difficulty preset, then REBLHELL_* environment, then flags.
func loadSettings(cmd *cobra.Command) (settings, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return settings{}, err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return settings{}, err
	}
	config.ApplyPreset(&cfg, preset)

	env, err := config.LoadEnv()
	if err != nil {
		return settings{}, err
	}
	env.Apply(&cfg)

	if err := cfg.Validate(); err != nil {
		return settings{}, err
	}

	s := settings{cfg: cfg, logLevel: "info"}
	if env.Seed != nil {
		s.seed = *env.Seed
	}
	if cmd.Flags().Changed("seed") {
		s.seed = flagSeed
	}
	if env.LogLevel != "" {
		s.logLevel = env.LogLevel
	}
	if flagLogLevel != "" {
		s.logLevel = flagLogLevel
	}
	return s, nil
}

// newLogger creates a structured logger writing to w.
func newLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "reblhell",
		Level:           lvl,
	}), nil
}

// openLogFile opens path for appending, creating parent directories.
func openLogFile(path string) (*os.File, error) {
	path = expandHome(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

// expandHome expands a leading ~ to the user's home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// fail prints err and exits.
func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
