package logging

import (
	"io"
	"log"
	"os"
	"strings"
)

// Level is the logging verbosity.
type Level int

const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
	LevelDebug
)

// ParseLevel maps ERROR, WARN, INFO and DEBUG (any case) to a Level.
// Anything else yields LevelInfo and false.
func ParseLevel(s string) (Level, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ERROR":
		return LevelError, true
	case "WARN", "WARNING":
		return LevelWarn, true
	case "INFO":
		return LevelInfo, true
	case "DEBUG":
		return LevelDebug, true
	}
	return LevelInfo, false
}

func (l Level) String() string {
	switch l {
	case LevelError:
		return "ERROR"
	case LevelWarn:
		return "WARN"
	case LevelDebug:
		return "DEBUG"
	default:
		return "INFO"
	}
}

// Logger provides leveled logging. Output goes to stderr by default so that
// stdout stays free for the MCP stdio transport.
type Logger struct {
	level Level
	out   *log.Logger
}

// New creates a logger writing to w at the given level.
func New(w io.Writer, level Level) *Logger {
	return &Logger{level: level, out: log.New(w, "", log.LstdFlags)}
}

// NewDefault creates a stderr logger. The level comes from the LOG_LEVEL
// environment variable, falling back to fallback when unset or invalid.
func NewDefault(fallback string) *Logger {
	level, ok := ParseLevel(os.Getenv("LOG_LEVEL"))
	if !ok {
		level, _ = ParseLevel(fallback)
	}
	return New(os.Stderr, level)
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return New(io.Discard, LevelError)
}

// Level returns the current verbosity.
func (l *Logger) Level() Level {
	return l.level
}

func (l *Logger) logf(level Level, format string, args ...any) {
	if l == nil || l.level < level {
		return
	}
	l.out.Printf("["+level.String()+"] "+format, args...)
}

// Error logs error messages.
func (l *Logger) Error(format string, args ...any) { l.logf(LevelError, format, args...) }

// Warn logs warning messages.
func (l *Logger) Warn(format string, args ...any) { l.logf(LevelWarn, format, args...) }

// Info logs info messages.
func (l *Logger) Info(format string, args ...any) { l.logf(LevelInfo, format, args...) }

// Debug logs debug messages.
func (l *Logger) Debug(format string, args ...any) { l.logf(LevelDebug, format, args...) }
