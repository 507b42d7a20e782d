package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/lixenwraith/orf-cloud/config"
)

const (
	logFileName = "orf-cloud.log"
	maxLogSize  = 10 << 20
)

// setupLogging points the global logger at a file while the terminal owns stdout
// Returns nil when logging is off
func setupLogging(cfg config.LogConfig) (*os.File, error) {
	if !cfg.Debug {
		log.Logger = zerolog.New(io.Discard).Level(zerolog.Disabled)
		return nil, nil
	}

	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	path := filepath.Join(cfg.Dir, logFileName)
	if info, err := os.Stat(path); err == nil && info.Size() > maxLogSize {
		// Keep one previous file
		_ = os.Rename(path, path+".1")
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	log.Logger = zerolog.New(f).Level(level).With().Timestamp().Logger()
	return f, nil
}

// setupConsoleLogging is used by the non-interactive commands
func setupConsoleLogging(cfg config.LogConfig, w io.Writer) {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || !cfg.Debug {
		level = zerolog.WarnLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).Level(level).With().Timestamp().Logger()
}
