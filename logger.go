package quickspot

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with quickspot-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithQuery adds a query field to the logger.
func (l *Logger) WithQuery(query string) *Logger {
	return &Logger{
		Logger: l.Logger.With("query", query),
	}
}

// WithSource adds a source field to the logger (useful for tagging loads).
func (l *Logger) WithSource(uri string) *Logger {
	return &Logger{
		Logger: l.Logger.With("source", uri),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogIndex logs the construction of a store.
func (l *Logger) LogIndex(records int, keyField string) {
	l.Debug("index built",
		"records", records,
		"key_field", keyField,
	)
}

// LogSearch logs a find or search operation.
func (l *Logger) LogSearch(op, query string, candidates, results int) {
	l.Debug(op+" completed",
		"query", query,
		"candidates", candidates,
		"results", results,
	)
}

// LogFilter logs a persistent filter operation.
func (l *Logger) LogFilter(kind string, before, after int) {
	l.Debug("filter applied",
		"kind", kind,
		"before", before,
		"after", after,
	)
}

// LogAdd logs records appended to a store.
func (l *Logger) LogAdd(added, total, filtered int) {
	l.Debug("records added",
		"added", added,
		"total", total,
		"filtered", filtered,
	)
}

// LogLoad logs a dataset load.
func (l *Logger) LogLoad(ctx context.Context, uri string, records int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "load failed",
			"source", uri,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "dataset loaded",
			"source", uri,
			"records", records,
		)
	}
}
