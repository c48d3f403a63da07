// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package plog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingEnv serves LOG_FILEPATH and counts lookups and opens.
type countingEnv struct {
	path    string
	set     bool
	lookups atomic.Int64
	opens   atomic.Int64
}

func (e *countingEnv) options() []BackendOption {
	return []BackendOption{
		WithLookupEnv(func(key string) (string, bool) {
			e.lookups.Add(1)
			if key != FilePathEnv {
				return "", false
			}
			return e.path, e.set
		}),
		WithOpenFile(func(path string) (io.WriteCloser, error) {
			e.opens.Add(1)
			return openAppendFile(path)
		}),
	}
}

type brokenFile struct {
	closed atomic.Bool
}

func (f *brokenFile) Write([]byte) (int, error) { return 0, errBrokenPipe }
func (f *brokenFile) Close() error {
	f.closed.Store(true)
	return nil
}

func TestBackendDisabledWithoutVariable(t *testing.T) {
	t.Parallel()

	env := &countingEnv{}
	backend := NewBackend(env.options()...)

	for range 10 {
		assert.False(t, backend.Enabled())
	}
	assert.ErrorIs(t, backend.Append("INFO", "dropped"), ErrBackendDisabled)
	assert.EqualValues(t, 1, env.lookups.Load())
	assert.EqualValues(t, 0, env.opens.Load())
	assert.NoError(t, backend.Err())
	assert.NoError(t, backend.Close())
}

func TestBackendEmptyPathIsDisabled(t *testing.T) {
	t.Parallel()

	env := &countingEnv{set: true}
	backend := NewBackend(env.options()...)

	assert.False(t, backend.Enabled())
	assert.EqualValues(t, 0, env.opens.Load())
}

func TestBackendOpenFailureIsNotRetried(t *testing.T) {
	t.Parallel()

	buffer := new(strings.Builder)
	diagnostics := hclog.New(&hclog.LoggerOptions{Output: buffer, Level: hclog.Debug})

	env := &countingEnv{path: filepath.Join(t.TempDir(), "missing", "dir", "app.log"), set: true}
	backend := NewBackend(append(env.options(), WithDiagnostics(diagnostics))...)

	assert.False(t, backend.Enabled())
	assert.False(t, backend.Enabled())
	assert.EqualValues(t, 1, env.lookups.Load())
	assert.EqualValues(t, 1, env.opens.Load())
	assert.Contains(t, buffer.String(), "cannot open file")
	assert.NoFileExists(t, env.path)
}

func TestBackendAppendsToExistingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "app.log")
	require.NoError(t, os.WriteFile(path, []byte("X\n"), 0o600))

	env := &countingEnv{path: path, set: true}
	backend := NewBackend(env.options()...)

	require.True(t, backend.Enabled())
	require.NoError(t, backend.Append("OKAY", "Y"))
	require.NoError(t, backend.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "X\n[OKAY]: Y\n", string(content))
}

func TestBackendCreatesMissingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "new.log")
	env := &countingEnv{path: path, set: true}
	backend := NewBackend(env.options()...)
	t.Cleanup(func() { _ = backend.Close() })

	require.True(t, backend.Enabled())
	require.NoError(t, backend.Append("INFO", "first"))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[INFO]: first\n", string(content))
}

func TestBackendConcurrentFirstCallersInitializeOnce(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "race.log")
	env := &countingEnv{path: path, set: true}
	backend := NewBackend(env.options()...)
	t.Cleanup(func() { _ = backend.Close() })

	const goroutines = 64
	results := make([]bool, goroutines)
	start := make(chan struct{})

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := range goroutines {
		go func() {
			defer wg.Done()
			<-start
			results[i] = backend.Enabled()
			if results[i] {
				assert.NoError(t, backend.Append("INFO", fmt.Sprintf("goroutine %d", i)))
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.EqualValues(t, 1, env.lookups.Load())
	assert.EqualValues(t, 1, env.opens.Load())
	for _, enabled := range results {
		assert.True(t, enabled)
	}

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSuffix(string(content), "\n"), "\n"), goroutines)
}

func TestBackendConcurrentAppendsAreWholeLines(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "lines.log")
	env := &countingEnv{path: path, set: true}
	backend := NewBackend(env.options()...)
	t.Cleanup(func() { _ = backend.Close() })

	const writers = 2
	const linesPerWriter = 1000

	var wg sync.WaitGroup
	wg.Add(writers)
	for writer := range writers {
		go func() {
			defer wg.Done()
			for line := range linesPerWriter {
				assert.NoError(t, backend.Append("INFO", fmt.Sprintf("writer-%d line-%04d", writer, line)))
			}
		}()
	}
	wg.Wait()

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(string(content), "\n"), "\n")
	require.Len(t, lines, writers*linesPerWriter)

	wellFormed := regexp.MustCompile(`^\[INFO\]: writer-[01] line-\d{4}$`)
	seen := make(map[string]struct{}, len(lines))
	for _, line := range lines {
		assert.Regexp(t, wellFormed, line)
		seen[line] = struct{}{}
	}
	assert.Len(t, seen, writers*linesPerWriter)
}

func TestBackendWriteFailureDisablesBackend(t *testing.T) {
	t.Parallel()

	file := &brokenFile{}
	backend := NewBackend(
		WithLookupEnv(func(string) (string, bool) { return "/var/log/app.log", true }),
		WithOpenFile(func(string) (io.WriteCloser, error) { return file, nil }),
	)

	require.True(t, backend.Enabled())
	err := backend.Append("ERRO", "lost")
	assert.ErrorIs(t, err, ErrPersistentWrite)
	assert.ErrorIs(t, err, errBrokenPipe)

	assert.False(t, backend.Enabled())
	assert.True(t, file.closed.Load())
	assert.ErrorIs(t, backend.Err(), ErrPersistentWrite)
	assert.ErrorIs(t, backend.Append("ERRO", "later"), ErrBackendDisabled)
}

func TestBackendCloseBeforeFirstCheck(t *testing.T) {
	t.Parallel()

	env := &countingEnv{path: filepath.Join(t.TempDir(), "never.log"), set: true}
	backend := NewBackend(env.options()...)

	require.NoError(t, backend.Close())
	assert.False(t, backend.Enabled())
	assert.EqualValues(t, 0, env.lookups.Load())
	assert.NoFileExists(t, env.path)
}

func TestProcessBackendIsShared(t *testing.T) {
	t.Parallel()

	assert.Same(t, ProcessBackend(), ProcessBackend())
}
