// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package plog

import (
	"strings"
	"time"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04:05"
)

// Format builds the prefix of a record: the display tag of severity followed,
// in this order, by the date, the time and the call site enabled in config.
// The call site suffix is omitted when site is nil.
func Format(severity Severity, config Config, now time.Time, site *CallSite) string {
	builder := new(strings.Builder)
	builder.WriteString(severity.Prefix())

	if layout := datetimeLayout(config); layout != "" {
		builder.WriteString(" on ")
		builder.WriteString(now.Local().Format(layout))
	}

	if config.IncludeContext && site != nil {
		builder.WriteString(" at ")
		builder.WriteString(site.String())
	}

	return builder.String()
}

func datetimeLayout(config Config) string {
	switch {
	case config.IncludeDate && config.IncludeTime:
		return dateLayout + " " + timeLayout
	case config.IncludeDate:
		return dateLayout
	case config.IncludeTime:
		return timeLayout
	default:
		return ""
	}
}
