// Package logging configures the process-wide structured logger.
package logging

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// Level names accepted by Init and the LOG_LEVEL environment variable.
type Level string

const (
	DebugLevel Level = "debug"
	InfoLevel  Level = "info"
	WarnLevel  Level = "warn"
	ErrorLevel Level = "error"
)

// EnvVar is consulted when no explicit level is given.
const EnvVar = "LOG_LEVEL"

var (
	mu     sync.Mutex
	logger *log.Logger
)

// Init (re)creates the process logger writing to w at the given level.
// An empty level falls back to LOG_LEVEL, then to info.
func Init(w io.Writer, level string) *log.Logger {
	if strings.TrimSpace(level) == "" {
		level = os.Getenv(EnvVar)
	}

	l := log.New(w)
	lvl := ParseLevel(level)
	setLevel(l, lvl)
	l.SetReportTimestamp(lvl == DebugLevel)

	mu.Lock()
	logger = l
	mu.Unlock()

	l.Debug("logger initialized", "level", lvl)
	return l
}

// ParseLevel maps a level name to a Level. Unknown names map to info.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return DebugLevel
	case "info":
		return InfoLevel
	case "warn", "warning":
		return WarnLevel
	case "error":
		return ErrorLevel
	default:
		return InfoLevel
	}
}

func setLevel(l *log.Logger, level Level) {
	switch level {
	case DebugLevel:
		l.SetLevel(log.DebugLevel)
	case WarnLevel:
		l.SetLevel(log.WarnLevel)
	case ErrorLevel:
		l.SetLevel(log.ErrorLevel)
	default:
		l.SetLevel(log.InfoLevel)
	}
}

// Get returns the process logger, initializing it on stderr if needed.
func Get() *log.Logger {
	mu.Lock()
	l := logger
	mu.Unlock()
	if l != nil {
		return l
	}
	return Init(os.Stderr, "")
}

// WithComponent returns a child logger tagged with a component name.
func WithComponent(name string) *log.Logger {
	return Get().With("component", name)
}
