// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromContext(t *testing.T) {
	t.Parallel()

	log := NewLogger(io.Discard, "plog")

	testCases := map[string]struct {
		ctx      context.Context
		expected Logger
	}{
		"nil context returns the null logger": {
			ctx:      nil,
			expected: nullLogger,
		},
		"empty context returns the null logger": {
			ctx:      t.Context(),
			expected: nullLogger,
		},
		"context with a logger returns that logger": {
			ctx:      WithContext(t.Context(), log),
			expected: log,
		},
	}

	for testName, test := range testCases {
		t.Run(testName, func(t *testing.T) {
			t.Parallel()
			assert.Same(t, test.expected, FromContext(test.ctx))
		})
	}
}
