package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/mrz1836/lastword/internal/fileutil"
)

// LogLevel represents logging verbosity levels.
type LogLevel int

// Log level constants.
const (
	LogLevelOff LogLevel = iota
	LogLevelError
	LogLevelDebug
)

// ParseLogLevel parses a log level string. Unknown values map to error.
func ParseLogLevel(s string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "off", "none":
		return LogLevelOff
	case "debug":
		return LogLevelDebug
	default:
		return LogLevelError
	}
}

// String returns the string representation of a log level.
func (l LogLevel) String() string {
	switch l {
	case LogLevelOff:
		return "off"
	case LogLevelDebug:
		return "debug"
	default:
		return "error"
	}
}

// Logger writes timestamped lines to a file.
// The zero level (off) and a nil file both discard output.
type Logger struct {
	mu    sync.Mutex
	level LogLevel
	out   io.WriteCloser
	path  string
}

// NewLogger opens (or creates) the log file at filePath for appending.
// A leading "~/" is expanded to the user's home directory.
func NewLogger(level LogLevel, filePath string) (*Logger, error) {
	logger := &Logger{level: level, path: filePath}

	if level == LogLevelOff || filePath == "" {
		return logger, nil
	}

	filePath = fileutil.ExpandHome(filePath)
	if err := os.MkdirAll(filepath.Dir(filePath), 0o750); err != nil {
		return nil, err
	}

	// #nosec G304 -- log file path is from validated config
	f, err := os.OpenFile(filePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, err
	}

	logger.out = f
	logger.path = filePath
	return logger, nil
}

// OpenLogger builds the logger described by cfg at path. Verbose forces debug
// level. When the file cannot be opened a NullLogger is returned with the
// error so callers can keep running without logs.
func OpenLogger(cfg LoggingConfig, path string, verbose bool) (*Logger, error) {
	level := ParseLogLevel(cfg.Level)
	if verbose {
		level = LogLevelDebug
	}

	logger, err := NewLogger(level, path)
	if err != nil {
		return NullLogger(), fmt.Errorf("opening log file: %w", err)
	}
	return logger, nil
}

// Path returns the resolved log file path.
func (l *Logger) Path() string {
	return l.path
}

// Close closes the log file.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.out == nil {
		return nil
	}
	err := l.out.Close()
	l.out = nil
	return err
}

// SetLevel changes the log level.
func (l *Logger) SetLevel(level LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// Level returns the current log level.
func (l *Logger) Level() LogLevel {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

// Debug logs a debug message.
func (l *Logger) Debug(format string, args ...any) {
	l.log(LogLevelDebug, format, args...)
}

// Error logs an error message.
func (l *Logger) Error(format string, args ...any) {
	l.log(LogLevelError, format, args...)
}

// Writer returns an io.Writer that writes to the logger at the specified level.
func (l *Logger) Writer(level LogLevel) io.Writer {
	return &logWriter{logger: l, level: level}
}

func (l *Logger) log(level LogLevel, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.level == LogLevelOff || level > l.level || l.out == nil {
		return
	}

	_, _ = fmt.Fprintf(l.out, "%s [%s] %s\n",
		time.Now().Format("2006-01-02 15:04:05.000"),
		strings.ToUpper(level.String()),
		fmt.Sprintf(format, args...))
}

type logWriter struct {
	logger *Logger
	level  LogLevel
}

func (w *logWriter) Write(p []byte) (int, error) {
	w.logger.log(w.level, "%s", strings.TrimSpace(string(p)))
	return len(p), nil
}

// NullLogger returns a logger that discards all output.
func NullLogger() *Logger {
	return &Logger{level: LogLevelOff}
}
