// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package main

import (
	"bytes"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mia-platform/plog/internal/logger"
)

func TestRootCommand(t *testing.T) {
	t.Parallel()

	Version = "test"
	BuildDate = "2024-06-01"

	cmd := rootCmd()
	buffer := new(bytes.Buffer)
	cmd.SetOut(buffer)

	log := logger.NewLogger(cmd.OutOrStderr(), appName)
	ctx := logger.WithContext(t.Context(), log)

	cmd.SetArgs([]string{"--log-level", "WARN", "version"})
	err := cmd.ExecuteContext(ctx)
	require.NoError(t, err)

	log.Info("ignored line for set log level")
	lines := strings.Split(buffer.String(), "\n")
	assert.Len(t, lines, 2) // version output + empty line
	assert.Equal(t, versionString(Version, BuildDate, runtime.Version())+"\n", buffer.String())

	buffer.Reset()
	BuildDate = ""
	cmd.SetArgs([]string{"--log-level", "WARN", "version"})
	err = cmd.ExecuteContext(ctx)
	require.NoError(t, err)
	assert.Len(t, lines, 2) // version output + empty line
	assert.Equal(t, versionString(Version, "", runtime.Version())+"\n", buffer.String())
}

func TestRootCommandSubcommands(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		args           []string
		expectedErr    string
		expectedOutput string
	}{
		"emit writes on the error stream": {
			args:        []string{"emit", "--persistent=false", "--colored=false", "ok", "all", "good"},
			expectedErr: "[OKAY]: all good\n",
		},
		"diagnostics level is accepted in any case": {
			args:        []string{"-v", "debug", "emit", "--persistent=false", "--colored=false", "warn", "low", "disk"},
			expectedErr: "[WARN]: low disk\n",
		},
	}

	for testName, test := range testCases {
		t.Run(testName, func(t *testing.T) {
			t.Parallel()

			cmd := rootCmd()
			outBuffer := new(bytes.Buffer)
			errBuffer := new(bytes.Buffer)
			cmd.SetOut(outBuffer)
			cmd.SetErr(errBuffer)

			ctx := logger.WithContext(t.Context(), logger.NewLogger(new(bytes.Buffer), appName))
			cmd.SetArgs(test.args)
			require.NoError(t, cmd.ExecuteContext(ctx))

			assert.Equal(t, test.expectedErr, errBuffer.String())
			assert.Equal(t, test.expectedOutput, outBuffer.String())
		})
	}
}
