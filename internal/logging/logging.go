// Package logging builds the logrus loggers used across vcover and carries
// request-scoped loggers through contexts.
package logging

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

type ctxKey struct{}

// NewWithOutput returns a logger writing to out at the named level. format
// is "text" or "json".
func NewWithOutput(out io.Writer, level, format string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}

	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(lvl)
	switch format {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	case "text", "":
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return nil, fmt.Errorf("logging: unknown format %q", format)
	}

	return logger, nil
}

// Discard returns a logger that drops everything.
func Discard() logrus.FieldLogger {
	discard := logrus.New()
	discard.Out = io.Discard
	return discard
}

// OrDiscard returns logger, or a discarding logger when it is nil.
func OrDiscard(logger logrus.FieldLogger) logrus.FieldLogger {
	if logger == nil {
		return Discard()
	}
	return logger
}

// WithLogger returns a copy of ctx carrying logger. A nil logger leaves ctx
// unchanged.
func WithLogger(ctx context.Context, logger logrus.FieldLogger) context.Context {
	if logger == nil {
		return ctx
	}
	return context.WithValue(ctx, ctxKey{}, logger)
}

// FromContext returns the logger carried by ctx, or fallback when ctx has
// none. A nil fallback yields a discarding logger.
func FromContext(ctx context.Context, fallback logrus.FieldLogger) logrus.FieldLogger {
	if logger, ok := ctx.Value(ctxKey{}).(logrus.FieldLogger); ok {
		return logger
	}
	return OrDiscard(fallback)
}
