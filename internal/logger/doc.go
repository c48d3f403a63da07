// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package logger holds the diagnostics logger of the plog command line tool.
// It wraps hclog and travels between commands inside the context; the same
// instance is handed to the plog file backend to explain why file logging is
// disabled.
package logger
