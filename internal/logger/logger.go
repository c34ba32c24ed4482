// Package logger is the logging seam for sysmon. The dashboard owns stdout,
// so a run logs to a JSON file (--log-file), to stderr when SYSMON_DEBUG is
// set, or nowhere.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

// DebugEnv is the environment variable that enables debug output.
const DebugEnv = "SYSMON_DEBUG"

// Logger defines the interface for logging operations.
// All methods accept a format string and arguments, similar to fmt.Printf.
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// Level names a log severity.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// DebugEnabled reports whether SYSMON_DEBUG is set.
func DebugEnabled() bool {
	return os.Getenv(DebugEnv) != ""
}

// Options selects where a run's log lines go.
type Options struct {
	// File receives JSON lines when set.
	File   string
	// Name tags every line (the zap logger name, or the stderr prefix).
	Name   string
	// Debug records debug lines, and sends output to Stderr when File is empty.
	Debug  bool
	// Stderr defaults to os.Stderr.
	Stderr io.Writer
}

// Open returns the logger opts describes and a function that flushes it.
func Open(opts Options) (Logger, func(), error) {
	if opts.File != "" {
		fl, err := NewFileLogger(opts.File, opts.Name, opts.Debug)
		if err != nil {
			return nil, nil, err
		}
		return fl, func() { _ = fl.Close() }, nil
	}

	if !opts.Debug {
		return Noop(), func() {}, nil
	}

	w := opts.Stderr
	if w == nil {
		w = os.Stderr
	}
	prefix := ""
	if opts.Name != "" {
		prefix = "[" + opts.Name + "]"
	}
	return NewWriterLogger(w, prefix, true), func() {}, nil
}

// WriterLogger writes timestamped plain-text lines to a writer.
type WriterLogger struct {
	out    *log.Logger
	prefix string
	debug  bool
}

// NewWriterLogger returns a logger writing to w. The prefix is prepended to
// every line (e.g., "[sysmon]"). Debug lines are dropped unless debug is true.
func NewWriterLogger(w io.Writer, prefix string, debug bool) *WriterLogger {
	return &WriterLogger{out: log.New(w, "", log.LstdFlags), prefix: prefix, debug: debug}
}

// NewEnvLogger writes to stderr and records debug lines only while
// SYSMON_DEBUG is set.
func NewEnvLogger(prefix string) *WriterLogger {
	return NewWriterLogger(os.Stderr, prefix, DebugEnabled())
}

func (l *WriterLogger) write(tag, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if tag != "" {
		msg = tag + ": " + msg
	}
	if l.prefix != "" {
		msg = l.prefix + " " + msg
	}
	l.out.Print(msg)
}

func (l *WriterLogger) Debug(format string, args ...interface{}) {
	if l.debug {
		l.write("", format, args...)
	}
}

func (l *WriterLogger) Info(format string, args ...interface{}) {
	l.write("", format, args...)
}

func (l *WriterLogger) Warn(format string, args ...interface{}) {
	l.write("WARN", format, args...)
}

func (l *WriterLogger) Error(format string, args ...interface{}) {
	l.write("ERROR", format, args...)
}

type noopLogger struct{}

// Noop returns a logger that discards all messages.
func Noop() Logger {
	return noopLogger{}
}

func (noopLogger) Debug(string, ...interface{}) {}
func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

// LogMessage is one captured line.
type LogMessage struct {
	Level   Level
	Message string
}

// BufferLogger captures messages in memory. Safe for concurrent use.
type BufferLogger struct {
	mu       sync.Mutex
	Messages []LogMessage
}

// NewBufferLogger creates a logger that captures messages for inspection.
func NewBufferLogger() *BufferLogger {
	return &BufferLogger{Messages: make([]LogMessage, 0)}
}

func (l *BufferLogger) record(level Level, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Messages = append(l.Messages, LogMessage{Level: level, Message: fmt.Sprintf(format, args...)})
}

func (l *BufferLogger) Debug(format string, args ...interface{}) { l.record(LevelDebug, format, args...) }
func (l *BufferLogger) Info(format string, args ...interface{})  { l.record(LevelInfo, format, args...) }
func (l *BufferLogger) Warn(format string, args ...interface{})  { l.record(LevelWarn, format, args...) }
func (l *BufferLogger) Error(format string, args ...interface{}) { l.record(LevelError, format, args...) }

// At returns the messages logged at level, in order.
func (l *BufferLogger) At(level Level) []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []string
	for _, m := range l.Messages {
		if m.Level == level {
			out = append(out, m.Message)
		}
	}
	return out
}

// HasLevel returns true if any message was logged at the given level.
func (l *BufferLogger) HasLevel(level Level) bool {
	return len(l.At(level)) > 0
}

// Clear removes all captured messages.
func (l *BufferLogger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Messages = l.Messages[:0]
}
