// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

import (
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/mia-platform/plog/pkg/plog"
)

var (
	// nullLogger is a logger that discards all log messages.
	nullLogger = &instance{log: hclog.NewNullLogger()}
)

type Level int

const (
	ERROR Level = iota
	WARN
	INFO
	DEBUG
	TRACE
)

var levelNames = [...]string{
	ERROR: "ERROR",
	WARN:  "WARN",
	INFO:  "INFO",
	DEBUG: "DEBUG",
	TRACE: "TRACE",
}

func (l Level) String() string {
	if l < 0 || int(l) >= len(levelNames) {
		return "Level(" + strconv.Itoa(int(l)) + ")"
	}
	return levelNames[l]
}

// AllLevels returns every level name, most verbose first.
func AllLevels() []string {
	return []string{TRACE.String(), DEBUG.String(), INFO.String(), WARN.String(), ERROR.String()}
}

func LevelFromString(level string) Level {
	for idx, name := range levelNames {
		if strings.EqualFold(level, name) {
			return Level(idx)
		}
	}
	return WARN
}

func (l Level) convertedLevel() hclog.Level {
	switch l {
	case TRACE:
		return hclog.Trace
	case DEBUG:
		return hclog.Debug
	case INFO:
		return hclog.Info
	case WARN:
		return hclog.Warn
	case ERROR:
		return hclog.Error
	default:
		return hclog.Warn
	}
}

// Logger reports what the plog tooling itself is doing, as opposed to the
// records it emits on behalf of users.
type Logger interface {
	plog.Diagnostics

	// Named returns a sub logger whose name is appended to the current one.
	Named(name string) Logger

	// SetLevel updates the logger level.
	SetLevel(level Level)

	// Trace emit a message and key/value pairs at the TRACE level.
	Trace(msg string, args ...interface{})

	// Info emit a message and key/value pairs at the INFO level.
	Info(msg string, args ...interface{})

	// Error emit a message and key/value pairs at the ERROR level.
	Error(msg string, args ...interface{})
}

// Make sure that instance is a Logger.
var _ Logger = &instance{}

type instance struct {
	log hclog.Logger
}

// NewLogger creates a new text logger named after the application, writing
// to writer at WARN level.
func NewLogger(writer io.Writer, name string) Logger {
	return &instance{
		log: hclog.New(&hclog.LoggerOptions{
			Name:       name,
			Output:     writer,
			TimeFn:     time.Now,
			TimeFormat: time.RFC3339,
			Level:      WARN.convertedLevel(),
		}),
	}
}

func (i instance) Named(name string) Logger {
	return &instance{log: i.log.Named(name)}
}

func (i instance) SetLevel(level Level) {
	i.log.SetLevel(level.convertedLevel())
}

func (i instance) Trace(msg string, args ...interface{}) {
	i.log.Trace(msg, args...)
}

func (i instance) Debug(msg string, args ...interface{}) {
	i.log.Debug(msg, args...)
}

func (i instance) Info(msg string, args ...interface{}) {
	i.log.Info(msg, args...)
}

func (i instance) Warn(msg string, args ...interface{}) {
	i.log.Warn(msg, args...)
}

func (i instance) Error(msg string, args ...interface{}) {
	i.log.Error(msg, args...)
}
