// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package server exposes a plog Logger over HTTP using the Fiber framework.
// Local processes that cannot link the library post their records to it, and
// every request is itself logged through the fiberlog middleware.
package server
