// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package plog

import "fmt"

// emit formats and dispatches one record. skip is the number of frames
// between emit and the logging invocation, excluding emit.
// A terminal write failure panics: a broken diagnostic channel must not go
// unnoticed.
func (l *Logger) emit(severity Severity, skip int, format string, args []any) {
	var site *CallSite
	if l.config.IncludeContext {
		site = Caller(skip + 1)
	}

	prefix := Format(severity, l.config, l.now(), site)
	if err := l.Log(severity, prefix, fmt.Sprintf(format, args...)); err != nil {
		panic(err)
	}
}

// DebugEnabled reports whether Debug records are written, false in builds
// tagged plog_nodebug.
func DebugEnabled() bool {
	return debugBuild
}

// Debug logs a DEBG record. It is a no-op in builds tagged plog_nodebug.
func (l *Logger) Debug(format string, args ...any) {
	if !debugBuild {
		return
	}
	l.emit(SeverityDebug, 1, format, args)
}

// Info logs an INFO record.
func (l *Logger) Info(format string, args ...any) {
	l.emit(SeverityInfo, 1, format, args)
}

// Warn logs a WARN record, for things that do not affect the program flow.
func (l *Logger) Warn(format string, args ...any) {
	l.emit(SeverityWarn, 1, format, args)
}

// Error logs an ERRO record.
func (l *Logger) Error(format string, args ...any) {
	l.emit(SeverityError, 1, format, args)
}

// Ok logs an OKAY record, for things that are working.
func (l *Logger) Ok(format string, args ...any) {
	l.emit(SeverityOk, 1, format, args)
}

// Debug logs a DEBG record on the Default logger.
func Debug(format string, args ...any) {
	if !debugBuild {
		return
	}
	Default().emit(SeverityDebug, 1, format, args)
}

// Info logs an INFO record on the Default logger.
func Info(format string, args ...any) {
	Default().emit(SeverityInfo, 1, format, args)
}

// Warn logs a WARN record on the Default logger.
func Warn(format string, args ...any) {
	Default().emit(SeverityWarn, 1, format, args)
}

// Error logs an ERRO record on the Default logger.
func Error(format string, args ...any) {
	Default().emit(SeverityError, 1, format, args)
}

// Ok logs an OKAY record on the Default logger.
func Ok(format string, args ...any) {
	Default().emit(SeverityOk, 1, format, args)
}
