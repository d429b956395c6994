// Package logger is a small leveled file logger. Alignment callers get a
// package-level printf-style API; the log file is capped to a fixed number
// of lines so long-running debug sessions do not grow it without bound.
package logger

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"
)

// MaxLogLines is the maximum number of lines kept in the log file.
const MaxLogLines = 5000

// LogLevel represents the logging level
type LogLevel int

const (
	LevelTrace LogLevel = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the string representation of a log level
func (l LogLevel) String() string {
	switch l {
	case LevelTrace:
		return "TRACE"
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel parses a string into a LogLevel, defaulting to info.
func ParseLevel(s string) LogLevel {
	switch strings.ToUpper(s) {
	case "TRACE":
		return LevelTrace
	case "DEBUG":
		return LevelDebug
	case "INFO":
		return LevelInfo
	case "WARN", "WARNING":
		return LevelWarn
	case "ERROR":
		return LevelError
	default:
		return LevelInfo
	}
}

// Logger writes leveled, timestamped lines to a file and trims the file
// once it grows past MaxLogLines.
type Logger struct {
	mu        sync.Mutex
	file      *os.File
	lineCount int
	level     LogLevel
}

var global *Logger

// defaultLogger covers logging before New has been called.
var defaultLogger = &Logger{file: os.Stderr, level: LevelInfo}

// New creates a Logger writing to file at the given level and installs it
// as the global logger used by the package-level functions.
func New(file *os.File, level LogLevel) *Logger {
	l := &Logger{file: file, level: level}
	global = l
	return l
}

// SetLevel sets the logging level.
func (l *Logger) SetLevel(level LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

func (l *Logger) enabled(level LogLevel) bool {
	return level >= l.level
}

func (l *Logger) log(level LogLevel, format string, v ...any) {
	if !l.enabled(level) {
		return
	}
	msg := fmt.Sprintf("%s [%s] %s\n", time.Now().Format("2006/01/02 15:04:05"), level, fmt.Sprintf(format, v...))

	l.mu.Lock()
	defer l.mu.Unlock()
	l.file.WriteString(msg)
	l.lineCount += strings.Count(msg, "\n")
	if l.lineCount > MaxLogLines {
		l.trim()
	}
}

// trim rewrites the file keeping only the last MaxLogLines lines.
// Not applicable to stderr; errors here are ignored on purpose.
func (l *Logger) trim() {
	if l.file == os.Stderr {
		l.lineCount = 0
		return
	}

	l.file.Seek(0, 0)
	var lines []string
	scanner := bufio.NewScanner(l.file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if len(lines) > MaxLogLines {
		lines = lines[len(lines)-MaxLogLines:]
	}

	l.file.Truncate(0)
	l.file.Seek(0, 0)
	for _, line := range lines {
		l.file.WriteString(line + "\n")
	}
	l.lineCount = len(lines)
}

// Close closes the underlying file.
func (l *Logger) Close() error {
	return l.file.Close()
}

func (l *Logger) Debug(format string, v ...any) { l.log(LevelDebug, format, v...) }
func (l *Logger) Info(format string, v ...any)  { l.log(LevelInfo, format, v...) }
func (l *Logger) Warn(format string, v ...any)  { l.log(LevelWarn, format, v...) }
func (l *Logger) Error(format string, v ...any) { l.log(LevelError, format, v...) }

// Fatal logs an error message and exits with code 1.
func (l *Logger) Fatal(format string, v ...any) {
	l.log(LevelError, format, v...)
	os.Exit(1)
}

func current() *Logger {
	if global != nil {
		return global
	}
	return defaultLogger
}

// Package-level logging functions that use the global logger (or the
// stderr default before New has been called).
func Debug(format string, v ...any) { current().Debug(format, v...) }
func Info(format string, v ...any)  { current().Info(format, v...) }
func Warn(format string, v ...any)  { current().Warn(format, v...) }
func Error(format string, v ...any) { current().Error(format, v...) }
func Fatal(format string, v ...any) { current().Fatal(format, v...) }

// noopFunc is a reusable no-op to avoid allocations when tracing is off.
var noopFunc = func() {}

// Trace returns a function that logs the duration of an operation when
// called. Usage: defer logger.Trace("align")()
func Trace(name string) func() {
	l := current()
	if !l.enabled(LevelTrace) {
		return noopFunc
	}
	start := time.Now()
	return func() {
		l.log(LevelTrace, "%s: %v", name, time.Since(start))
	}
}
