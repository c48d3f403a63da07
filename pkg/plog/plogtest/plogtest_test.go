// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package plogtest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSink(t *testing.T) {
	t.Parallel()

	sink := NewSink(t)
	require.True(t, sink.Enabled())
	require.NoError(t, sink.Append("INFO", "first"))
	require.NoError(t, sink.Append("OKAY", "second"))

	assert.Equal(t, []string{"[INFO]: first\n", "[OKAY]: second\n"}, sink.Lines())
	assert.Equal(t, 1, sink.Checks())
}

func TestFailingSink(t *testing.T) {
	t.Parallel()

	sink := NewFailingSink(t)
	require.True(t, sink.Enabled())
	assert.ErrorIs(t, sink.Append("ERRO", "lost"), ErrWrite)
	assert.Empty(t, sink.Lines())
}

func TestDisabledSink(t *testing.T) {
	t.Parallel()

	sink := NewDisabledSink(t)
	assert.False(t, sink.Enabled())
	assert.False(t, sink.Enabled())
	assert.Equal(t, 2, sink.Checks())
}

func TestFailingWriter(t *testing.T) {
	t.Parallel()

	n, err := FailingWriter{}.Write([]byte("anything"))
	assert.Zero(t, n)
	assert.ErrorIs(t, err, ErrWrite)
}
