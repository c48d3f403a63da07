// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package plogtest provides fakes for testing code that logs through plog.
package plogtest

import (
	"errors"
	"sync"
	"testing"

	"github.com/mia-platform/plog/pkg/plog"
)

var _ plog.PersistentSink = &Sink{}

// ErrWrite is the error returned by FailingWriter and by a failing Sink.
var ErrWrite = errors.New("fake write failure")

// Sink records the lines appended to it instead of writing a file.
type Sink struct {
	tb testing.TB

	lock    sync.Mutex
	enabled bool
	fail    bool
	lines   []string
	checks  int
}

// NewSink returns an enabled Sink.
func NewSink(tb testing.TB) *Sink {
	tb.Helper()
	return &Sink{tb: tb, enabled: true}
}

// NewDisabledSink returns a Sink reporting itself as disabled.
func NewDisabledSink(tb testing.TB) *Sink {
	tb.Helper()
	return &Sink{tb: tb}
}

// NewFailingSink returns an enabled Sink whose appends fail with ErrWrite.
func NewFailingSink(tb testing.TB) *Sink {
	tb.Helper()
	return &Sink{tb: tb, enabled: true, fail: true}
}

func (s *Sink) Enabled() bool {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.checks++
	return s.enabled
}

func (s *Sink) Append(prefix, body string) error {
	s.tb.Helper()
	s.lock.Lock()
	defer s.lock.Unlock()

	if !s.enabled {
		s.tb.Errorf("append called on disabled sink: [%s]: %s", prefix, body)
		return plog.ErrBackendDisabled
	}
	if s.fail {
		return ErrWrite
	}

	s.lines = append(s.lines, "["+prefix+"]: "+body+"\n")
	return nil
}

// Lines returns a copy of the appended lines, newline included.
func (s *Sink) Lines() []string {
	s.lock.Lock()
	defer s.lock.Unlock()
	return append([]string(nil), s.lines...)
}

// Checks returns how many times Enabled has been called.
func (s *Sink) Checks() int {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.checks
}

// FailingWriter is an io.Writer that always fails, like a closed stream.
type FailingWriter struct{}

func (FailingWriter) Write([]byte) (int, error) {
	return 0, ErrWrite
}
