package config

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// NewLogger returns a logger writing to w at the level named by LOG_LEVEL
// (debug, info, warn, error). Unknown levels fall back to info.
func NewLogger(w io.Writer, prefix string) *log.Logger {
	level, err := log.ParseLevel(GetEnv("LOG_LEVEL", "info"))
	if err != nil {
		level = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          prefix,
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})
}
