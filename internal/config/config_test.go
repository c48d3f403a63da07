// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package config

import (
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mia-platform/plog/pkg/plog"
)

func TestNewConfigFromPath(t *testing.T) {
	t.Parallel()

	base := plog.Config{Colored: true, Persistent: true}
	tempDir := t.TempDir()

	testCases := map[string]struct {
		content       string
		missing       bool
		expected      plog.Config
		expectedError error
	}{
		"every key": {
			content: "colored: false\nincludeDate: true\nincludeTime: true\nincludeContext: true\npersistent: false\n",
			expected: plog.Config{
				IncludeDate:    true,
				IncludeTime:    true,
				IncludeContext: true,
			},
		},
		"missing keys keep the base": {
			content:  "includeTime: true\n",
			expected: plog.Config{Colored: true, IncludeTime: true, Persistent: true},
		},
		"empty file": {
			expected: base,
		},
		"later documents win": {
			content:  "includeDate: true\n---\nincludeDate: false\ncolored: false\n",
			expected: plog.Config{Persistent: true},
		},
		"unknown key": {
			content:       "verbose: true\n",
			expected:      base,
			expectedError: ErrParsing,
		},
		"invalid value": {
			content:       "colored: sometimes\n",
			expected:      base,
			expectedError: ErrParsing,
		},
		"missing file": {
			missing:       true,
			expected:      base,
			expectedError: syscall.ENOENT,
		},
	}

	for testName, test := range testCases {
		t.Run(testName, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(tempDir, testName+".yaml")
			if !test.missing {
				require.NoError(t, os.WriteFile(path, []byte(test.content), 0o600))
			}

			config, err := NewConfigFromPath(path, base)
			if test.expectedError != nil {
				assert.ErrorIs(t, err, test.expectedError)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, test.expected, config)
		})
	}
}
