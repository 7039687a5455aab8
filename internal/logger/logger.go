// Package logger provides a zerolog root logger with CLI-friendly defaults.
// Logs go to stderr so they never mix with search output on stdout.
package logger

import (
	"io"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/corey/kmpgrep/internal/config"
	"github.com/rs/zerolog"
)

// Options configures the logger
type Options struct {
	Level  string
	Format string
	Writer io.Writer
}

// FromEnv reads KMPGREP_LOG_LEVEL and KMPGREP_LOG_FORMAT.
func FromEnv() Options {
	env := config.NewEnv().Prefix("LOG_")
	return Options{
		Level:  strings.ToLower(env.Get("LEVEL", "warn")),
		Format: strings.ToLower(env.Get("FORMAT", "console")),
	}
}

var root atomic.Pointer[zerolog.Logger]

// Logger is the project-wide logging type
type Logger = zerolog.Logger

// New builds a logger from opt without touching the root logger.
func New(opt Options) Logger {
	var w io.Writer = os.Stderr
	if opt.Writer != nil {
		w = opt.Writer
	}
	if opt.Format != "json" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}
	return zerolog.New(w).Level(ParseLevel(opt.Level)).With().Timestamp().Logger()
}

// Init replaces the root logger. The CLI calls it once flags are parsed.
func Init(opt Options) {
	l := New(opt)
	root.Store(&l)
}

// Get returns the root logger, building it from the environment on first use.
func Get() *Logger {
	if l := root.Load(); l != nil {
		return l
	}
	Init(FromEnv())
	return root.Load()
}

// Named returns a child logger with a component field
func Named(component string) *Logger {
	if component == "" {
		return Get()
	}
	ll := Get().With().Str("component", component).Logger()
	return &ll
}

// ParseLevel maps a level name to a zerolog level. Unknown names map to warn.
func ParseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.WarnLevel
	}
}
