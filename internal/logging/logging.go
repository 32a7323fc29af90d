// Package logging builds the process logger from configuration.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/alexanderramin/timesheet/internal/config"
	log "github.com/sirupsen/logrus"
)

// New returns a logger writing to w at the configured level. When cfg.File
// is set the logger appends to that file instead and the returned closer
// must be called on shutdown.
func New(cfg config.Log, w io.Writer) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing log level: %w", err)
	}

	logger := log.New()
	logger.SetLevel(level)
	logger.SetFormatter(&log.TextFormatter{FullTimestamp: true, DisableColors: true})

	var closer io.Closer = nopCloser{}
	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
			return nil, nil, fmt.Errorf("creating log directory: %w", err)
		}
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		w = f
		closer = f
	}
	if w == nil {
		w = io.Discard
	}
	logger.SetOutput(w)

	return logger, closer, nil
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	logger := log.New()
	logger.SetOutput(io.Discard)
	return logger
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
