// Package config handles application configuration and setup
package config

import (
	"github.com/lovesegfault/chirp/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with appropriate settings. Tracing
// prints every executed instruction on the debug level, enabling it
// raises the level accordingly.
func CreateLogger(opts options.Program) *log.Logger {
	cfg := log.DefaultConfig()
	switch {
	case opts.Debug || opts.Trace:
		cfg.Level = log.DebugLevel
	case opts.Quiet:
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}
