package logging

import "context"

// MultiLogger fans every entry out to a set of loggers, typically the
// colored console plus an optional log file
type MultiLogger struct {
	loggers []Logger
}

// NewMultiLogger creates a logger that duplicates entries to all targets
func NewMultiLogger(loggers ...Logger) *MultiLogger {
	return &MultiLogger{loggers: loggers}
}

// Debug logs a debug message to all targets
func (l *MultiLogger) Debug(ctx context.Context, msg string, fields Fields) {
	for _, target := range l.loggers {
		target.Debug(ctx, msg, fields)
	}
}

// Info logs an info message to all targets
func (l *MultiLogger) Info(ctx context.Context, msg string, fields Fields) {
	for _, target := range l.loggers {
		target.Info(ctx, msg, fields)
	}
}

// Warn logs a warning message to all targets
func (l *MultiLogger) Warn(ctx context.Context, msg string, fields Fields) {
	for _, target := range l.loggers {
		target.Warn(ctx, msg, fields)
	}
}

// Error logs an error message to all targets
func (l *MultiLogger) Error(ctx context.Context, msg string, err error, fields Fields) {
	for _, target := range l.loggers {
		target.Error(ctx, msg, err, fields)
	}
}

// WithFields returns a logger with additional fields on every target
func (l *MultiLogger) WithFields(fields Fields) Logger {
	targets := make([]Logger, len(l.loggers))
	for i, target := range l.loggers {
		targets[i] = target.WithFields(fields)
	}
	return &MultiLogger{loggers: targets}
}

// Close closes all targets, returning the first error encountered
func (l *MultiLogger) Close() error {
	var firstErr error
	for _, target := range l.loggers {
		if err := target.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
