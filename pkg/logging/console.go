package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/fatih/color"
)

// ConsoleLogger writes colored log lines to a terminal stream.
// Each level has its own color so triage decisions stand out when
// following a run interactively.
type ConsoleLogger struct {
	writer io.Writer
	level  Level
	fields Fields
	mu     *sync.Mutex
}

var levelColors = map[Level]*color.Color{
	DebugLevel: color.New(color.FgCyan),
	InfoLevel:  color.New(color.FgGreen),
	WarnLevel:  color.New(color.FgYellow),
	ErrorLevel: color.New(color.FgRed),
}

// NewConsoleLogger creates a console logger writing to stderr
func NewConsoleLogger(level Level) *ConsoleLogger {
	return &ConsoleLogger{
		writer: os.Stderr,
		level:  level,
		mu:     &sync.Mutex{},
	}
}

// NewConsoleLoggerTo creates a console logger writing to the given stream
func NewConsoleLoggerTo(w io.Writer, level Level) *ConsoleLogger {
	return &ConsoleLogger{
		writer: w,
		level:  level,
		mu:     &sync.Mutex{},
	}
}

// Debug logs a debug message
func (l *ConsoleLogger) Debug(ctx context.Context, msg string, fields Fields) {
	if l.level <= DebugLevel {
		l.log(DebugLevel, msg, nil, fields)
	}
}

// Info logs an info message
func (l *ConsoleLogger) Info(ctx context.Context, msg string, fields Fields) {
	if l.level <= InfoLevel {
		l.log(InfoLevel, msg, nil, fields)
	}
}

// Warn logs a warning message
func (l *ConsoleLogger) Warn(ctx context.Context, msg string, fields Fields) {
	if l.level <= WarnLevel {
		l.log(WarnLevel, msg, nil, fields)
	}
}

// Error logs an error message
func (l *ConsoleLogger) Error(ctx context.Context, msg string, err error, fields Fields) {
	if l.level <= ErrorLevel {
		l.log(ErrorLevel, msg, err, fields)
	}
}

// WithFields returns a logger with additional fields
func (l *ConsoleLogger) WithFields(fields Fields) Logger {
	merged := make(Fields, len(l.fields)+len(fields))
	for k, v := range l.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &ConsoleLogger{
		writer: l.writer,
		level:  l.level,
		fields: merged,
		mu:     l.mu,
	}
}

// Close flushes and closes the logger (no-op for console output)
func (l *ConsoleLogger) Close() error {
	return nil
}

func (l *ConsoleLogger) log(level Level, msg string, err error, fields Fields) {
	l.mu.Lock()
	defer l.mu.Unlock()

	line := fmt.Sprintf("%s - %s - %s",
		time.Now().Format("2006-01-02 15:04:05"),
		levelString(level),
		msg,
	)

	if err != nil {
		line += fmt.Sprintf(" error=%q", err.Error())
	}
	for k, v := range l.fields {
		line += fmt.Sprintf(" %s=%v", k, v)
	}
	for k, v := range fields {
		line += fmt.Sprintf(" %s=%v", k, v)
	}

	if c, ok := levelColors[level]; ok {
		c.Fprintln(l.writer, line)
	} else {
		fmt.Fprintln(l.writer, line)
	}
}
