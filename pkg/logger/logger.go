package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/hireterm/hireterm/pkg/config"
)

// LogLevel represents the logging level
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

// String returns the string representation of the log level
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelFatal:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// Logger provides a leveled logging interface. Component-scoped loggers share
// the underlying writer and level with the default logger.
type Logger struct {
	level     LogLevel
	logger    *log.Logger
	file      *os.File
	component string
}

var defaultLogger *Logger

// Init initializes the default logger from the global config
func Init() error {
	if defaultLogger != nil {
		return nil
	}

	settings := config.Get()
	level := parseLevel(settings.Logging.Level)

	logger, err := New(level, settings.Logging.LogFile, settings.Logging.Persist)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	defaultLogger = logger
	return nil
}

// New creates a new Logger instance writing to the given file
func New(level LogLevel, logFile string, persist bool) (*Logger, error) {
	logPath := logFile
	if !filepath.IsAbs(logPath) {
		logPath = config.BuildSettingsPath(filepath.Base(logPath))
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	flags := os.O_CREATE | os.O_WRONLY
	if persist {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}

	file, err := os.OpenFile(logPath, flags, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return &Logger{
		level:  level,
		logger: log.New(file, "", log.LstdFlags),
		file:   file,
	}, nil
}

// WithComponent returns a logger scoped to a named component. Safe to call
// before Init; messages are dropped until the default logger exists.
func WithComponent(name string) *Logger {
	return &Logger{component: name}
}

// Close closes the log file
func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

func parseLevel(levelStr string) LogLevel {
	switch levelStr {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	case "fatal":
		return LevelFatal
	default:
		return LevelInfo
	}
}

// backing returns the logger that owns the writer for this instance.
// Component loggers created before Init pick up the default logger lazily.
func (l *Logger) backing() *Logger {
	if l.logger != nil {
		return l
	}
	return defaultLogger
}

func (l *Logger) log(level LogLevel, msg string, kv ...any) {
	b := l.backing()
	if b == nil || level < b.level {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("[%s]", level.String()))
	if l.component != "" {
		sb.WriteString(fmt.Sprintf(" [%s]", l.component))
	}
	sb.WriteString(" ")
	sb.WriteString(msg)

	for i := 0; i+1 < len(kv); i += 2 {
		sb.WriteString(fmt.Sprintf(" %v=%v", kv[i], kv[i+1]))
	}
	if len(kv)%2 != 0 {
		sb.WriteString(fmt.Sprintf(" %v=?", kv[len(kv)-1]))
	}

	line := sb.String()
	b.logger.Print(line)

	if level >= LevelError {
		fmt.Fprintln(os.Stderr, line)
	}
}

// Debug logs a debug message with optional key-value pairs
func (l *Logger) Debug(msg string, kv ...any) { l.log(LevelDebug, msg, kv...) }

// Info logs an info message with optional key-value pairs
func (l *Logger) Info(msg string, kv ...any) { l.log(LevelInfo, msg, kv...) }

// Warn logs a warning message with optional key-value pairs
func (l *Logger) Warn(msg string, kv ...any) { l.log(LevelWarn, msg, kv...) }

// Error logs an error message with optional key-value pairs
func (l *Logger) Error(msg string, kv ...any) { l.log(LevelError, msg, kv...) }

// Fatal logs a fatal message and exits
func (l *Logger) Fatal(msg string, kv ...any) {
	l.log(LevelFatal, msg, kv...)
	os.Exit(1)
}

// Package-level convenience functions using the default logger

func Debug(msg string, kv ...any) {
	if defaultLogger != nil {
		defaultLogger.Debug(msg, kv...)
	}
}

func Info(msg string, kv ...any) {
	if defaultLogger != nil {
		defaultLogger.Info(msg, kv...)
	}
}

func Warn(msg string, kv ...any) {
	if defaultLogger != nil {
		defaultLogger.Warn(msg, kv...)
	}
}

func Error(msg string, kv ...any) {
	if defaultLogger != nil {
		defaultLogger.Error(msg, kv...)
	}
}

func Fatal(msg string, kv ...any) {
	if defaultLogger == nil {
		fmt.Fprintf(os.Stderr, "[FATAL] %s\n", msg)
		os.Exit(1)
	}
	defaultLogger.Fatal(msg, kv...)
}

// SetOutput sets the output writer for the logger (useful for testing)
func SetOutput(w io.Writer) {
	if defaultLogger != nil && defaultLogger.logger != nil {
		defaultLogger.logger.SetOutput(w)
	}
}

// Close closes the default logger
func Close() error {
	if defaultLogger != nil {
		return defaultLogger.Close()
	}
	return nil
}
