// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package plog

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// fileLocks holds one line lock per *os.File, shared by every Terminal
// writing to that file.
var fileLocks sync.Map

// Terminal writes records to a console stream, one Write call per line.
//
// Terminals writing to the same *os.File, like the Default logger and a
// logger built by New on os.Stderr, share their line lock. Any other writer
// gets a lock of its own: two Terminals on the same non file writer keep
// their lines whole only if the writer does.
type Terminal struct {
	out     io.Writer
	colored bool

	lock *sync.Mutex
}

// NewTerminal returns a Terminal writing to out. When colored is true the
// prefix is rendered with the severity style.
func NewTerminal(out io.Writer, colored bool) *Terminal {
	return &Terminal{
		out:     out,
		colored: colored,
		lock:    lineLock(out),
	}
}

func lineLock(out io.Writer) *sync.Mutex {
	file, ok := out.(*os.File)
	if !ok {
		return new(sync.Mutex)
	}

	lock, _ := fileLocks.LoadOrStore(file, new(sync.Mutex))
	return lock.(*sync.Mutex)
}

// Write emits "[<prefix>]: <body>\n".
func (t *Terminal) Write(severity Severity, prefix, body string) error {
	styledPrefix := prefix
	if t.colored {
		styledPrefix = severity.Style().Sprint(prefix)
	}
	line := formatLine(styledPrefix, body)

	t.lock.Lock()
	defer t.lock.Unlock()
	if _, err := io.WriteString(t.out, line); err != nil {
		return fmt.Errorf("%w: %w", ErrTerminalWrite, err)
	}
	return nil
}

func formatLine(prefix, body string) string {
	builder := new(strings.Builder)
	builder.Grow(len(prefix) + len(body) + 5)
	builder.WriteString("[")
	builder.WriteString(prefix)
	builder.WriteString("]: ")
	builder.WriteString(body)
	builder.WriteString("\n")
	return builder.String()
}
