// Package log provides logging to the console and a log file.
package log

import (
	"fmt"
	"io"
	stdlog "log"
	"os"
	"path/filepath"
	"time"
)

// FileName is the log file created inside the log directory.
const FileName = "typekit.log"

// Logger writes output to a console writer and a log file.
type Logger struct {
	file    *os.File
	writer  io.Writer
	errOut  io.Writer
	console bool
}

// Option configures a Logger.
type Option func(*Logger)

// WithoutConsole sends everything to the log file only. Use it when stdout
// belongs to something else, such as the TUI or the MCP stdio transport.
func WithoutConsole() Option {
	return func(l *Logger) {
		l.console = false
	}
}

// New creates a logger that appends to typekit.log in logDir.
func New(logDir string, opts ...Option) (*Logger, error) {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	logPath := filepath.Join(logDir, FileName)
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	l := &Logger{file: file, console: true}
	for _, opt := range opts {
		opt(l)
	}

	if l.console {
		l.writer = io.MultiWriter(os.Stdout, file)
		l.errOut = io.MultiWriter(os.Stderr, file)
	} else {
		l.writer = file
		l.errOut = file
	}
	return l, nil
}

// Printf writes a formatted message.
func (l *Logger) Printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(l.writer, format, args...)
}

// Println writes a message with a newline.
func (l *Logger) Println(args ...interface{}) {
	_, _ = fmt.Fprintln(l.writer, args...)
}

// Errorf writes a timestamped error line to stderr and the log file.
func (l *Logger) Errorf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	_, _ = fmt.Fprintf(l.errOut, "[%s] %s\n", timestamp, msg)
}

// Close closes the log file.
func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

var globalLogger *Logger

// Init initializes (or replaces) the global logger and redirects the standard library
// logger to the log file so stray log.Printf calls never hit the terminal.
func Init(logDir string, opts ...Option) error {
	logger, err := New(logDir, opts...)
	if err != nil {
		return err
	}
	if globalLogger != nil {
		_ = globalLogger.Close()
	}
	globalLogger = logger

	stdlog.SetOutput(logger.file)
	stdlog.SetFlags(stdlog.Ldate | stdlog.Ltime)

	return nil
}

// Printf uses the global logger to print formatted output.
func Printf(format string, args ...interface{}) {
	if globalLogger != nil {
		globalLogger.Printf(format, args...)
	} else {
		fmt.Printf(format, args...)
	}
}

// Println uses the global logger to print output with newline.
func Println(args ...interface{}) {
	if globalLogger != nil {
		globalLogger.Println(args...)
	} else {
		fmt.Println(args...)
	}
}

// Errorf uses the global logger to print formatted error output.
func Errorf(format string, args ...interface{}) {
	if globalLogger != nil {
		globalLogger.Errorf(format, args...)
	} else {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}

// Close closes the global logger.
func Close() error {
	if globalLogger != nil {
		err := globalLogger.Close()
		globalLogger = nil
		stdlog.SetOutput(os.Stderr)
		return err
	}
	return nil
}
