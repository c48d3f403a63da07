// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

//go:build !plog_nodebug

package plog

const debugBuild = true
