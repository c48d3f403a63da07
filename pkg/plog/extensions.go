// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package plog

// Helpers logging the outcome of (value, ok) and (value, err) pairs. Each one
// returns its inputs unchanged:
//
//	user, err := store.Load(id)
//	user, err = plog.LogResult(log, "load user", user, err)
//
// A nil Logger means Default.

func loggerOrDefault(l *Logger) *Logger {
	if l == nil {
		return Default()
	}
	return l
}

// LogOptional logs "<name> has <value>" as OKAY when ok is true, and
// "<name> is empty" as WARN otherwise.
func LogOptional[T any](l *Logger, name string, value T, ok bool) (T, bool) {
	l = loggerOrDefault(l)
	if ok {
		l.emit(SeverityOk, 1, "%s has %#v", []any{name, value})
	} else {
		l.emit(SeverityWarn, 1, "%s is empty", []any{name})
	}
	return value, ok
}

// ShowMissing logs "<name> is empty" as INFO only when ok is false.
func ShowMissing[T any](l *Logger, name string, value T, ok bool) (T, bool) {
	if !ok {
		loggerOrDefault(l).emit(SeverityInfo, 1, "%s is empty", []any{name})
	}
	return value, ok
}

// ShowPresent logs "<name> has <value>" as INFO only when ok is true.
func ShowPresent[T any](l *Logger, name string, value T, ok bool) (T, bool) {
	if ok {
		loggerOrDefault(l).emit(SeverityInfo, 1, "%s has %#v", []any{name, value})
	}
	return value, ok
}

// DebugOptional behaves like LogOptional in debug builds and does nothing in
// builds tagged plog_nodebug.
func DebugOptional[T any](l *Logger, name string, value T, ok bool) (T, bool) {
	if !debugBuild {
		return value, ok
	}

	l = loggerOrDefault(l)
	if ok {
		l.emit(SeverityOk, 1, "%s has %#v", []any{name, value})
	} else {
		l.emit(SeverityWarn, 1, "%s is empty", []any{name})
	}
	return value, ok
}

// LogResult logs "<name> succeed <value>" as OKAY when err is nil, and
// "<name> was failed with <err>" as ERRO otherwise.
func LogResult[T any](l *Logger, name string, value T, err error) (T, error) {
	l = loggerOrDefault(l)
	if err == nil {
		l.emit(SeverityOk, 1, "%s succeed %#v", []any{name, value})
	} else {
		l.emit(SeverityError, 1, "%s was failed with %v", []any{name, err})
	}
	return value, err
}

// ShowErr logs "<name> was failed with <err>" as ERRO only when err is not nil.
func ShowErr[T any](l *Logger, name string, value T, err error) (T, error) {
	if err != nil {
		loggerOrDefault(l).emit(SeverityError, 1, "%s was failed with %v", []any{name, err})
	}
	return value, err
}

// ShowOk logs "<name> succeed with <value>" as OKAY only when err is nil.
func ShowOk[T any](l *Logger, name string, value T, err error) (T, error) {
	if err == nil {
		loggerOrDefault(l).emit(SeverityOk, 1, "%s succeed with %#v", []any{name, value})
	}
	return value, err
}
