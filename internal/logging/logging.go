// Package logging configures the process-wide logrus logger. The TUI owns
// stdout, so logs go to a file when configured and are discarded otherwise.
package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Discard returns a logger that drops everything. Used as the default so
// callers never have to nil-check.
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// ToFile returns a logger appending to path, creating parent directories
// as needed.
func ToFile(path string) (*logrus.Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to create log directory")
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open log file")
	}
	log := logrus.New()
	log.SetOutput(f)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return log, nil
}

// FromConfig returns a file logger when path is non-empty, a discarding
// logger otherwise.
func FromConfig(path string) (*logrus.Logger, error) {
	if path == "" {
		return Discard(), nil
	}
	return ToFile(path)
}
