package gfkit

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/hupe1980/gfkit/isin"
)

// Logger wraps slog.Logger with gfkit-specific context.
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
// This is the default: kernels never write to the console unless asked to.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithKernel adds a kernel name field to the logger.
func (l *Logger) WithKernel(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("kernel", name),
	}
}

// LogSetFlags logs a flag setting call.
func (l *Logger) LogSetFlags(ctx context.Context, n, flagLen int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "set flags rejected",
			"indices", n,
			"flags", flagLen,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "set flags completed",
			"indices", n,
			"flags", flagLen,
		)
	}
}

// LogNotIsIn logs a set difference test.
func (l *Logger) LogNotIsIn(ctx context.Context, st isin.Stats, err error) {
	if err != nil {
		l.ErrorContext(ctx, "not isin rejected",
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "not isin completed",
			"rows", st.Rows,
			"searches", st.Searches,
			"reused", st.Reused,
		)
	}
}

// LogSubtract logs an exclusive metric subtraction.
func (l *Logger) LogSubtract(ctx context.Context, node, parent, count, stride int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "subtract exclusive rejected",
			"node", node,
			"parent", parent,
			"count", count,
			"stride", stride,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "subtract exclusive completed",
			"node", node,
			"parent", parent,
			"count", count,
			"stride", stride,
		)
	}
}

// LogSubtractPairs logs a batch of exclusive metric subtractions.
func (l *Logger) LogSubtractPairs(ctx context.Context, pairs, count, stride int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "subtract exclusive pairs rejected",
			"pairs", pairs,
			"count", count,
			"stride", stride,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "subtract exclusive pairs completed",
			"pairs", pairs,
			"count", count,
			"stride", stride,
		)
	}
}
