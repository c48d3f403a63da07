// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package plog

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/hashicorp/go-hclog"
)

// FilePathEnv names the environment variable holding the path of the log file.
const FilePathEnv = "LOG_FILEPATH"

// PersistentSink is the durable destination of the Dispatch Core.
type PersistentSink interface {
	// Enabled reports whether Append can be called.
	Enabled() bool
	// Append writes one unstyled record.
	Append(prefix, body string) error
}

// Diagnostics receives the internal events of the backend. hclog.Logger
// satisfies it.
type Diagnostics interface {
	Debug(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
}

var _ PersistentSink = &Backend{}

// Backend is the file sink configured through LOG_FILEPATH. The environment
// lookup and the file opening happen at most once per Backend, on the first
// call to Enabled; an unsuccessful attempt is never retried.
type Backend struct {
	lookupEnv func(string) (string, bool)
	openFile  func(string) (io.WriteCloser, error)
	diag      Diagnostics

	checked func() bool
	closed  atomic.Bool

	lock     sync.Mutex
	file     io.WriteCloser
	writeErr error
}

// BackendOption customizes a Backend built by NewBackend.
type BackendOption func(*Backend)

// WithLookupEnv replaces os.LookupEnv for reading LOG_FILEPATH.
func WithLookupEnv(lookup func(string) (string, bool)) BackendOption {
	return func(b *Backend) {
		b.lookupEnv = lookup
	}
}

// WithOpenFile replaces the function opening the log file.
func WithOpenFile(open func(string) (io.WriteCloser, error)) BackendOption {
	return func(b *Backend) {
		b.openFile = open
	}
}

// WithDiagnostics sets where the backend reports why it is disabled.
func WithDiagnostics(diag Diagnostics) BackendOption {
	return func(b *Backend) {
		if diag != nil {
			b.diag = diag
		}
	}
}

// NewBackend returns an unchecked Backend.
func NewBackend(opts ...BackendOption) *Backend {
	backend := &Backend{
		lookupEnv: os.LookupEnv,
		openFile:  openAppendFile,
		diag:      hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(backend)
	}

	backend.checked = sync.OnceValue(backend.initialize)
	return backend
}

var processBackend = sync.OnceValue(func() *Backend {
	return NewBackend()
})

// ProcessBackend returns the backend shared by every Logger of the process
// that was not given its own PersistentSink.
func ProcessBackend() *Backend {
	return processBackend()
}

func openAppendFile(path string) (io.WriteCloser, error) {
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

// initialize runs behind the once gate: the handle is installed before any
// caller of Enabled can observe true.
func (b *Backend) initialize() bool {
	if b.closed.Load() {
		return false
	}

	path, ok := b.lookupEnv(FilePathEnv)
	if !ok || path == "" {
		b.diag.Debug("persistent log disabled", "reason", "environment variable not set", "env", FilePathEnv)
		return false
	}

	file, err := b.openFile(path)
	if err != nil {
		b.diag.Warn("persistent log disabled", "reason", "cannot open file", "path", path, "error", err)
		return false
	}

	b.lock.Lock()
	defer b.lock.Unlock()
	if b.closed.Load() {
		_ = file.Close()
		return false
	}
	b.file = file

	b.diag.Debug("persistent log enabled", "path", path)
	return true
}

// Enabled reports whether records are appended to the log file. The first
// call performs the one time check; concurrent first callers wait for it and
// all observe the same outcome.
func (b *Backend) Enabled() bool {
	return b.checked() && !b.closed.Load()
}

// Append writes "[<prefix>]: <body>\n" to the log file. Concurrent calls are
// serialized so that lines never interleave.
//
// When the write fails the file is closed and the backend stays disabled for
// the rest of the process; the failure is kept and returned by Err.
func (b *Backend) Append(prefix, body string) error {
	if !b.Enabled() {
		return ErrBackendDisabled
	}

	b.lock.Lock()
	defer b.lock.Unlock()
	if b.file == nil {
		return ErrBackendDisabled
	}

	if _, err := io.WriteString(b.file, formatLine(prefix, body)); err != nil {
		b.writeErr = fmt.Errorf("%w: %w", ErrPersistentWrite, err)
		b.closed.Store(true)
		_ = b.file.Close()
		b.file = nil

		b.diag.Warn("persistent log disabled", "reason", "write failed", "error", err)
		return b.writeErr
	}
	return nil
}

// Err returns the write failure that disabled the backend, if any.
func (b *Backend) Err() error {
	b.lock.Lock()
	defer b.lock.Unlock()
	return b.writeErr
}

// Close releases the log file and disables the backend permanently.
func (b *Backend) Close() error {
	b.closed.Store(true)

	b.lock.Lock()
	defer b.lock.Unlock()
	if b.file == nil {
		return nil
	}

	err := b.file.Close()
	b.file = nil
	return err
}
