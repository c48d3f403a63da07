// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package plog

import "errors"

var (
	// ErrTerminalWrite is returned when a line cannot be written to the terminal stream.
	ErrTerminalWrite = errors.New("can't log to stderr")
	// ErrPersistentWrite is returned when a line cannot be appended to the log file.
	ErrPersistentWrite = errors.New("can't write to log file")
	// ErrBackendDisabled is returned by Append when the file sink is not available.
	ErrBackendDisabled = errors.New("persistent log disabled")
	// ErrConfigNotValid reports configuration environment variables that cannot be parsed.
	ErrConfigNotValid = errors.New("environment variables not valid")
	// ErrUnknownSeverity reports a severity name that does not match any severity.
	ErrUnknownSeverity = errors.New("unknown severity")
)
