// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package plog is a small leveled logger that writes severity tagged lines to
// standard error and, when the LOG_FILEPATH environment variable names a
// writable file, appends the same lines to that file.
//
// Every line has the form
//
//	[<PREFIX>]: <message>
//
// where PREFIX is the four letter tag of the severity (DEBG, INFO, WARN, ERRO,
// OKAY) optionally followed by the date, the time and the call site of the
// logging invocation, depending on the Config in use.
//
// The file sink is opened lazily by the first record that needs it and the
// decision is taken once per process: if the variable is missing or the file
// cannot be opened, the sink stays disabled until the process exits.
//
// Usage:
//
//	plog.Info("listening on %s", addr)
//	plog.Ok("migration %d applied", n)
//
//	log := plog.New(plog.Config{Colored: true, IncludeTime: true})
//	log.Warn("retrying in %s", backoff)
//
// Debug records are dropped at compile time when building with the
// plog_nodebug tag.
package plog
