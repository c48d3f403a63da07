// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package plog

import (
	"path"
	"runtime"
	"strconv"
)

// CallSite is the source location of a logging invocation.
type CallSite struct {
	File string
	Line int
}

// Caller returns the call site skip frames above the function calling Caller;
// Caller(0) identifies that function itself. It returns nil when the runtime
// cannot report the frame.
func Caller(skip int) *CallSite {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return nil
	}

	return &CallSite{File: shortFile(file), Line: line}
}

func (c CallSite) String() string {
	return c.File + ":" + strconv.Itoa(c.Line)
}

// shortFile keeps the last directory and the name of a runtime file path.
func shortFile(file string) string {
	dir, name := path.Split(file)
	parent := path.Base(dir)
	if parent == "." || parent == "/" {
		return name
	}

	return parent + "/" + name
}
