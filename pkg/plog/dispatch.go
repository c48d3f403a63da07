// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package plog

import (
	"io"
	"os"
	"sync/atomic"
	"time"
)

// Logger routes records to the terminal and, when configured, to a
// PersistentSink. It is safe for concurrent use.
type Logger struct {
	config     Config
	terminal   *Terminal
	persistent PersistentSink
	now        func() time.Time
}

// Option customizes a Logger built by New.
type Option func(*loggerOptions)

type loggerOptions struct {
	out        io.Writer
	persistent PersistentSink
	now        func() time.Time
}

// WithOutput replaces standard error as the terminal stream.
func WithOutput(out io.Writer) Option {
	return func(o *loggerOptions) {
		o.out = out
	}
}

// WithPersistentSink replaces the process backend as durable destination.
func WithPersistentSink(sink PersistentSink) Option {
	return func(o *loggerOptions) {
		o.persistent = sink
	}
}

// WithClock replaces time.Now for the date and time suffixes.
func WithClock(now func() time.Time) Option {
	return func(o *loggerOptions) {
		o.now = now
	}
}

// New returns a Logger using config. Unless WithPersistentSink is given, the
// file sink is ProcessBackend; it is never consulted when config.Persistent
// is false.
func New(config Config, opts ...Option) *Logger {
	options := &loggerOptions{
		out: os.Stderr,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(options)
	}

	persistent := options.persistent
	if persistent == nil && config.Persistent {
		persistent = ProcessBackend()
	}

	return &Logger{
		config:     config,
		terminal:   NewTerminal(options.out, config.Colored),
		persistent: persistent,
		now:        options.now,
	}
}

// Config returns the configuration of l.
func (l *Logger) Config() Config {
	return l.config
}

// Log writes "[<prefix>]: <body>" to the terminal, then appends it to the
// persistent sink when it is configured and enabled.
//
// An error is returned only when the terminal write fails. A failing
// persistent write does not affect the result: the sink disables itself and
// keeps the failure.
func (l *Logger) Log(severity Severity, prefix, body string) error {
	if err := l.terminal.Write(severity, prefix, body); err != nil {
		return err
	}

	if !l.config.Persistent || l.persistent == nil || !l.persistent.Enabled() {
		return nil
	}

	_ = l.persistent.Append(prefix, body)
	return nil
}

var defaultLogger atomic.Pointer[Logger]

// Default returns the process Logger used by the package level functions.
// On first use it is built from LoadConfig, falling back to DefaultConfig
// when the environment is not valid.
func Default() *Logger {
	if l := defaultLogger.Load(); l != nil {
		return l
	}

	config, err := LoadConfig()
	if err != nil {
		config = DefaultConfig()
	}

	defaultLogger.CompareAndSwap(nil, New(config))
	return defaultLogger.Load()
}

// SetDefault makes l the process Logger.
func SetDefault(l *Logger) {
	if l != nil {
		defaultLogger.Store(l)
	}
}
