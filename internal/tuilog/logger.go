// Package tuilog provides file-based logging for vstoolbox.
// The terminal UI owns stdout/stderr while it runs, so every package logs
// through the global Log which writes to a file or nowhere.
package tuilog

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// LevelEnv selects the minimum level written to the log file.
const LevelEnv = "VSTOOLBOX_LOG_LEVEL"

// Level is a log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = map[Level]string{
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
}

func (l Level) String() string {
	if s, ok := levelNames[l]; ok {
		return s
	}
	return fmt.Sprintf("LEVEL(%d)", int(l))
}

// ParseLevel parses a level name case-insensitively. Unknown names yield
// LevelDebug and false.
func ParseLevel(s string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, true
	case "info":
		return LevelInfo, true
	case "warn", "warning":
		return LevelWarn, true
	case "error":
		return LevelError, true
	}
	return LevelDebug, false
}

// Logger writes timestamped key-value lines to an io.Writer.
type Logger struct {
	mu      sync.Mutex
	out     io.Writer
	closer  io.Closer
	min     Level
	enabled bool
}

// Log is the global logger. It discards everything until Init is called.
var Log = &Logger{}

// New returns a logger writing to w at or above min.
func New(w io.Writer, min Level) *Logger {
	return &Logger{out: w, min: min, enabled: w != nil}
}

// Init points the global logger at the file at path, appending to it.
// An empty path disables logging. The level threshold is taken from
// VSTOOLBOX_LOG_LEVEL, defaulting to debug.
func Init(path string) error {
	Log.mu.Lock()
	defer Log.mu.Unlock()

	if Log.closer != nil {
		_ = Log.closer.Close()
		Log.closer = nil
	}
	Log.out = nil
	Log.enabled = false
	if path == "" {
		return nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	Log.out = f
	Log.closer = f
	Log.enabled = true
	Log.min = LevelDebug
	if lvl, ok := ParseLevel(os.Getenv(LevelEnv)); ok {
		Log.min = lvl
	}
	Log.write(LevelInfo, "Logger initialized", "path", path, "level", Log.min)
	return nil
}

// InitWriter points the global logger at w, which is not closed by Close.
func InitWriter(w io.Writer, min Level) {
	Log.mu.Lock()
	defer Log.mu.Unlock()

	if Log.closer != nil {
		_ = Log.closer.Close()
		Log.closer = nil
	}
	Log.out = w
	Log.min = min
	Log.enabled = w != nil
}

// SetLevel changes the minimum level written.
func (l *Logger) SetLevel(min Level) {
	l.mu.Lock()
	l.min = min
	l.mu.Unlock()
}

// Close closes the log file.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.enabled = false
	if l.closer != nil {
		err := l.closer.Close()
		l.closer = nil
		return err
	}
	return nil
}

// Enabled returns whether logging is active.
func (l *Logger) Enabled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.enabled
}

func (l *Logger) log(level Level, msg string, keyvals ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.write(level, msg, keyvals...)
}

// write requires l.mu.
func (l *Logger) write(level Level, msg string, keyvals ...any) {
	if !l.enabled || l.out == nil || level < l.min {
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s [%s] %s", time.Now().Format("15:04:05.000"), level, msg)
	for i := 0; i < len(keyvals)-1; i += 2 {
		fmt.Fprintf(&b, " %v=%v", keyvals[i], keyvals[i+1])
	}
	if len(keyvals)%2 == 1 {
		fmt.Fprintf(&b, " %v=<missing>", keyvals[len(keyvals)-1])
	}
	fmt.Fprintln(l.out, b.String())

	if f, ok := l.out.(*os.File); ok {
		_ = f.Sync()
	}
}

// Debug logs a debug message with optional key-value pairs.
func (l *Logger) Debug(msg string, keyvals ...any) {
	l.log(LevelDebug, msg, keyvals...)
}

// Info logs an info message with optional key-value pairs.
func (l *Logger) Info(msg string, keyvals ...any) {
	l.log(LevelInfo, msg, keyvals...)
}

// Warn logs a warning message with optional key-value pairs.
func (l *Logger) Warn(msg string, keyvals ...any) {
	l.log(LevelWarn, msg, keyvals...)
}

// Error logs an error message with optional key-value pairs.
func (l *Logger) Error(msg string, keyvals ...any) {
	l.log(LevelError, msg, keyvals...)
}

// Timed logs the duration of an operation. Usage:
//
//	defer tuilog.Log.Timed("operation name")()
func (l *Logger) Timed(operation string) func() {
	if !l.Enabled() {
		return func() {}
	}
	start := time.Now()
	l.Debug(operation, "status", "started")
	return func() {
		l.Debug(operation, "status", "completed", "duration", time.Since(start))
	}
}
