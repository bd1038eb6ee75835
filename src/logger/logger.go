package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"market-backdrop/src/models"
)

// Levels, lowest first.
const (
	LevelDebug = iota
	LevelInfo
	LevelWarning
	LevelError
	LevelCritical
)

// -----------------------------------------------------------------------------

// Logger provides structured logging functionality
type Logger struct {
	name   string
	level  int
	logger *log.Logger
}

// -----------------------------------------------------------------------------

// NewLogger creates a new Logger instance. A nil config logs at INFO.
func NewLogger(config *models.MConfig, name string) *Logger {
	level := LevelInfo
	if config != nil {
		level = ParseLevel(config.LogLevel)
	}
	return NewWithWriter(os.Stdout, level, name)
}

// NewWithWriter creates a logger writing to w, mainly for tests.
func NewWithWriter(w io.Writer, level int, name string) *Logger {
	return &Logger{
		name:   name,
		level:  level,
		logger: log.New(w, "", log.LstdFlags|log.Lmicroseconds),
	}
}

// -----------------------------------------------------------------------------

// ParseLevel maps DEBUG/INFO/WARNING/ERROR/CRITICAL (any case) to a level.
// Unknown values fall back to INFO.
func ParseLevel(s string) int {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return LevelDebug
	case "WARN", "WARNING":
		return LevelWarning
	case "ERROR":
		return LevelError
	case "CRITICAL":
		return LevelCritical
	default:
		return LevelInfo
	}
}

// -----------------------------------------------------------------------------

// Named returns a logger sharing output and level under another component name.
func (l *Logger) Named(name string) *Logger {
	return &Logger{name: name, level: l.level, logger: l.logger}
}

// -----------------------------------------------------------------------------

func (l *Logger) write(level int, tag, format string, args ...interface{}) {
	if level < l.level {
		return
	}
	msg := fmt.Sprintf(format, args...)
	l.logger.Printf("[%s] %s: %s", l.name, tag, msg)
}

// -----------------------------------------------------------------------------

// Debug logs diagnostic messages
func (l *Logger) Debug(format string, args ...interface{}) {
	l.write(LevelDebug, "DEBUG", format, args...)
}

// -----------------------------------------------------------------------------

// Warning logs recoverable problems
func (l *Logger) Warning(format string, args ...interface{}) {
	l.write(LevelWarning, "WARNING", format, args...)
}

// -----------------------------------------------------------------------------

// Info logs informational messages
func (l *Logger) Info(format string, args ...interface{}) {
	l.write(LevelInfo, "INFO", format, args...)
}

// -----------------------------------------------------------------------------

// Error logs error messages
func (l *Logger) Error(format string, args ...interface{}) {
	l.write(LevelError, "ERROR", format, args...)
}

// -----------------------------------------------------------------------------

// Critical logs critical errors and exits the application
func (l *Logger) Critical(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	l.logger.Printf("[%s] CRITICAL: %s", l.name, msg)
	os.Exit(1)
}
