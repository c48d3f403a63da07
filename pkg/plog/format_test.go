// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package plog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, time.March, 7, 9, 5, 3, 0, time.Local)
	site := &CallSite{File: "cmd/emit.go", Line: 42}

	testCases := map[string]struct {
		severity Severity
		config   Config
		site     *CallSite
		expected string
	}{
		"prefix only": {
			severity: SeverityInfo,
			expected: "INFO",
		},
		"date": {
			severity: SeverityWarn,
			config:   Config{IncludeDate: true},
			expected: "WARN on 2024-03-07",
		},
		"time": {
			severity: SeverityError,
			config:   Config{IncludeTime: true},
			expected: "ERRO on 09:05:03",
		},
		"date before time": {
			severity: SeverityOk,
			config:   Config{IncludeDate: true, IncludeTime: true},
			expected: "OKAY on 2024-03-07 09:05:03",
		},
		"context": {
			severity: SeverityDebug,
			config:   Config{IncludeContext: true},
			site:     site,
			expected: "DEBG at cmd/emit.go:42",
		},
		"context without call site is omitted": {
			severity: SeverityDebug,
			config:   Config{IncludeContext: true},
			expected: "DEBG",
		},
		"call site ignored when context is off": {
			severity: SeverityInfo,
			site:     site,
			expected: "INFO",
		},
		"everything": {
			severity: SeverityOk,
			config:   Config{IncludeDate: true, IncludeTime: true, IncludeContext: true, Colored: true},
			site:     site,
			expected: "OKAY on 2024-03-07 09:05:03 at cmd/emit.go:42",
		},
	}

	for testName, test := range testCases {
		t.Run(testName, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, test.expected, Format(test.severity, test.config, now, test.site))
		})
	}
}
