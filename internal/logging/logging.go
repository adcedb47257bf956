// Package logging builds the application logger. The terminal is owned by
// the TUI, so records only ever go to a file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/todotxt/internal/config"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Discard returns a logger that drops every record.
func Discard() (*log.Logger, io.Closer) {
	return log.New(io.Discard), nopCloser{}
}

// New returns a logger for cfg and the closer for its file. With no
// LogFile configured the logger discards everything.
func New(cfg config.Config) (*log.Logger, io.Closer, error) {
	if cfg.LogFile == "" {
		logger, closer := Discard()
		return logger, closer, nil
	}
	level := log.InfoLevel
	if cfg.LogLevel != "" {
		lvl, err := log.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, nil, fmt.Errorf("log level: %w", err)
		}
		level = lvl
	}
	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		Level:           level,
		Formatter:       log.LogfmtFormatter,
		ReportTimestamp: true,
		Prefix:          "todo",
	})
	return logger, f, nil
}
