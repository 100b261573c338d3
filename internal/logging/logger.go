package logging

import (
	"fmt"
	"io"
	"log"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger writes key=value lines to a rotated log file. A nil *Logger is
// valid and discards everything.
type Logger struct {
	logger *log.Logger
	closer io.Closer
}

// New opens a logger writing to path. An empty path discards output.
func New(path string) *Logger {
	if path == "" {
		return Discard()
	}
	file := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
	}
	return &Logger{
		logger: log.New(file, "argoterm ", log.LstdFlags),
		closer: file,
	}
}

// NewWriter returns a logger writing to w without rotation.
func NewWriter(w io.Writer) *Logger {
	return &Logger{logger: log.New(w, "argoterm ", 0)}
}

// Discard returns a logger that drops every line.
func Discard() *Logger {
	return NewWriter(io.Discard)
}

// Log writes a single message.
func (l *Logger) Log(message string) {
	if l == nil {
		return
	}
	l.logger.Print(message)
}

// Logf writes a formatted message.
func (l *Logger) Logf(format string, v ...interface{}) {
	if l == nil {
		return
	}
	l.Log(fmt.Sprintf(format, v...))
}

// LogError records a host-level failure.
func (l *Logger) LogError(err error) {
	if l == nil || err == nil {
		return
	}
	l.Logf("level=error error=%q", err.Error())
}

// Close releases the log file, if any.
func (l *Logger) Close() error {
	if l == nil || l.closer == nil {
		return nil
	}
	return l.closer.Close()
}
