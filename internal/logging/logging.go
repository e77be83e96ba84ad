// Package logging builds the logrus logger used across the trainer. The
// terminal belongs to the quiz, so logs go to a file unless told otherwise.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/abhisek/spellz/internal/config"
)

// Stderr selects standard error as the log destination.
const Stderr = "-"

// DefaultFileName is the log file created in the data directory.
const DefaultFileName = "spellz.log"

// New builds a configured logrus logger. The returned closer releases the
// log file and is safe to call when logging to stderr.
func New(cfg config.LogConfig, dataDir string) (*logrus.Logger, io.Closer, error) {
	logger := logrus.New()

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("parse log level: %w", err)
	}
	logger.SetLevel(level)

	switch cfg.Format {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: true})
	}

	path := cfg.File
	if path == "" {
		path = filepath.Join(dataDir, DefaultFileName)
	}
	if path == Stderr {
		logger.SetOutput(os.Stderr)
		return logger, io.NopCloser(nil), nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger.SetOutput(f)
	return logger, f, nil
}
