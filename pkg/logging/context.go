package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey int

const (
	// loggerKey is the context key for the logger.
	loggerKey contextKey = iota
	// runIDKey is the context key for the build run ID.
	runIDKey
)

// WithLogger adds a logger to the context.
func WithLogger(ctx context.Context, logger *zerolog.Logger) context.Context {
	if logger == nil {
		logger = Default()
	}
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext extracts the logger from context, or returns the default logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	if ctx == nil {
		return Default()
	}

	if logger, ok := ctx.Value(loggerKey).(*zerolog.Logger); ok && logger != nil {
		return logger
	}

	return Default()
}

// Ctx returns a logger from the context or the default logger.
// This is a shorter alias for FromContext.
func Ctx(ctx context.Context) *zerolog.Logger {
	return FromContext(ctx)
}

// WithRunID adds a build run ID to the context for tracing.
func WithRunID(ctx context.Context, runID string) context.Context {
	ctx = context.WithValue(ctx, runIDKey, runID)

	logger := FromContext(ctx)
	newLogger := logger.With().Str("run_id", runID).Logger()
	return WithLogger(ctx, &newLogger)
}

// RunID extracts the build run ID from context.
func RunID(ctx context.Context) string {
	if id, ok := ctx.Value(runIDKey).(string); ok {
		return id
	}
	return ""
}

// WithField adds a single field to the logger in the context.
func WithField(ctx context.Context, key, value string) context.Context {
	logger := FromContext(ctx)
	newLogger := logger.With().Str(key, value).Logger()
	return WithLogger(ctx, &newLogger)
}

// WithSource adds upstream source context to the logger.
func WithSource(ctx context.Context, sourceID string) context.Context {
	return WithField(ctx, "source", sourceID)
}

// WithBrand adds brand context to the logger.
func WithBrand(ctx context.Context, brand string) context.Context {
	return WithField(ctx, "brand", brand)
}
