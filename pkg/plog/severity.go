// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package plog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// Severity is the importance tier of a log record.
type Severity int

const (
	SeverityDebug Severity = iota
	SeverityInfo
	SeverityWarn
	SeverityError
	SeverityOk
)

type severityEntry struct {
	name   string
	prefix string
	style  color.Attribute
}

var severities = [...]severityEntry{
	SeverityDebug: {name: "debug", prefix: "DEBG", style: color.FgWhite},
	SeverityInfo:  {name: "info", prefix: "INFO", style: color.FgHiWhite},
	SeverityWarn:  {name: "warn", prefix: "WARN", style: color.FgHiYellow},
	SeverityError: {name: "error", prefix: "ERRO", style: color.FgHiRed},
	SeverityOk:    {name: "ok", prefix: "OKAY", style: color.FgHiGreen},
}

// AllSeverities returns every supported severity, lowest first.
func AllSeverities() []Severity {
	return []Severity{SeverityDebug, SeverityInfo, SeverityWarn, SeverityError, SeverityOk}
}

func (s Severity) valid() bool {
	return s >= 0 && int(s) < len(severities)
}

// Prefix returns the four letter display tag of s.
func (s Severity) Prefix() string {
	if !s.valid() {
		return s.String()
	}
	return severities[s].prefix
}

// Style returns the bold colored style used for the prefix of s on a terminal.
// The returned color always emits escape codes, regardless of color.NoColor.
func (s Severity) Style() *color.Color {
	attribute := color.Reset
	if s.valid() {
		attribute = severities[s].style
	}

	style := color.New(color.Bold, attribute)
	style.EnableColor()
	return style
}

func (s Severity) String() string {
	if !s.valid() {
		return "Severity(" + strconv.Itoa(int(s)) + ")"
	}
	return severities[s].name
}

// SeverityFromString parses a severity by name or by display prefix, ignoring case.
func SeverityFromString(name string) (Severity, error) {
	name = strings.TrimSpace(name)
	for idx, entry := range severities {
		if strings.EqualFold(name, entry.name) || strings.EqualFold(name, entry.prefix) {
			return Severity(idx), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownSeverity, name)
}
