// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

import (
	"context"
)

type contextKeyType struct{}

var contextKey = contextKeyType{}

// WithContext stores logger in ctx, making it reachable by every command of the CLI.
func WithContext(ctx context.Context, logger Logger) context.Context {
	return context.WithValue(ctx, contextKey, logger)
}

// FromContext returns the logger stored by WithContext, or a logger that
// discards everything when ctx carries none.
func FromContext(ctx context.Context) Logger {
	if ctx == nil {
		return nullLogger
	}

	if logger, ok := ctx.Value(contextKey).(Logger); ok {
		return logger
	}
	return nullLogger
}
