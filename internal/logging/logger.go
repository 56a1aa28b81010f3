// Package logging provides the leveled, optionally colored logger used by
// every command. Lines are timestamped and tagged with their level; an
// optional log file receives the same lines without color codes.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fatih/color"

	"github.com/backmassage/bulkrename/internal/config"
	"github.com/backmassage/bulkrename/internal/term"
)

// Logger provides leveled, optionally colored logging with optional file sink.
// All methods are goroutine-safe.
type Logger struct {
	mu      sync.Mutex
	out     io.Writer // INFO, SUCCESS, WARN, DEBUG
	errOut  io.Writer // ERROR
	file    *os.File
	verbose bool
}

// NewLogger configures colors from cfg and optionally opens cfg.LogFile for
// appending. Call Close when done if LogFile was set.
func NewLogger(cfg *config.Config) (*Logger, error) {
	term.Configure(cfg.ColorMode)

	l := New(os.Stdout, os.Stderr, cfg.Verbose)
	if cfg.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
			return nil, fmt.Errorf("creating log directory: %w", err)
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		l.file = f
	}
	return l, nil
}

// New returns a Logger writing to out (and errOut for errors) without a file
// sink. Colors follow the current term configuration.
func New(out, errOut io.Writer, verbose bool) *Logger {
	return &Logger{out: out, errOut: errOut, verbose: verbose}
}

// WithOutput redirects terminal output to out (and errOut for errors). The
// log file, if any, is unchanged.
func (l *Logger) WithOutput(out, errOut io.Writer) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.out, l.errOut = out, errOut
	return l
}

// Close closes the log file if one was opened.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}

func (l *Logger) line(level string, c *color.Color, text string) {
	ts := time.Now().Format("2006-01-02 15:04:05")
	label := "[" + level + "]"

	l.mu.Lock()
	defer l.mu.Unlock()

	out := l.out
	if level == "ERROR" {
		out = l.errOut
	}
	_, _ = io.WriteString(out, ts+" "+c.Sprint(label)+" "+text+"\n")
	if l.file != nil {
		_, _ = io.WriteString(l.file, ts+" "+label+" "+text+"\n")
	}
}

// Info logs at INFO level (blue).
func (l *Logger) Info(format string, args ...any) {
	l.line("INFO", term.Blue, fmt.Sprintf(format, args...))
}

// Success logs at SUCCESS level (green).
func (l *Logger) Success(format string, args ...any) {
	l.line("SUCCESS", term.Green, fmt.Sprintf(format, args...))
}

// Warn logs at WARN level (yellow).
func (l *Logger) Warn(format string, args ...any) {
	l.line("WARN", term.Yellow, fmt.Sprintf(format, args...))
}

// Error logs at ERROR level (red) to the error writer.
func (l *Logger) Error(format string, args ...any) {
	l.line("ERROR", term.Red, fmt.Sprintf(format, args...))
}

// Debug logs at DEBUG level (cyan) only when the logger is verbose.
func (l *Logger) Debug(format string, args ...any) {
	if !l.verbose {
		return
	}
	l.line("DEBUG", term.Cyan, fmt.Sprintf(format, args...))
}
