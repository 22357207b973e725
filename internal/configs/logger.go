package config

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// NewLogger builds the process logger and installs it as the package default,
// so plain log.Printf calls share the level and destination.
func NewLogger(w io.Writer, level string) *log.Logger {
	if w == nil {
		w = os.Stderr
	}

	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		Prefix:          "todo",
	})
	log.SetDefault(logger)

	return logger
}
