// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package fiberlog logs the requests served by a fiber application through a
// plog.Logger, choosing the severity of each completed request from its
// status code.
package fiberlog

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/mia-platform/plog/pkg/plog"
)

const (
	requestIDHeaderName = "x-request-id"
	forwardedForHeader  = "x-forwarded-for"
)

// Config tunes the middleware.
type Config struct {
	// Logger receives the records; nil means plog.Default.
	Logger *plog.Logger
	// ExcludedPrefixes lists path prefixes that are not logged, like health probes.
	ExcludedPrefixes []string
}

// StatusSeverity maps a response status to the severity of its record:
// 5xx are errors, 4xx warnings and everything else is ok.
func StatusSeverity(statusCode int) plog.Severity {
	switch {
	case statusCode >= http.StatusInternalServerError:
		return plog.SeverityError
	case statusCode >= http.StatusBadRequest:
		return plog.SeverityWarn
	default:
		return plog.SeverityOk
	}
}

// New returns a fiber middleware logging the incoming request as DEBG and the
// completed request with StatusSeverity. The request id is read from the
// x-request-id header or generated, and is echoed in the response.
func New(config Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := string(c.Request().URI().RequestURI())
		for _, prefix := range config.ExcludedPrefixes {
			if strings.HasPrefix(path, prefix) {
				return c.Next()
			}
		}

		log := config.Logger
		if log == nil {
			log = plog.Default()
		}

		start := time.Now()
		requestID := requestID(c)
		c.Set(requestIDHeaderName, requestID)

		log.Debug("%s %s from %s request_id=%s", c.Method(), path, clientIP(c), requestID)
		err := c.Next()

		statusCode, size := responseInfo(c, err)
		record := fmt.Sprintf("%s %s %d %dB %s request_id=%s",
			c.Method(), path, statusCode, size, time.Since(start).Round(time.Microsecond), requestID)

		switch StatusSeverity(statusCode) {
		case plog.SeverityError:
			log.Error("%s", record)
		case plog.SeverityWarn:
			log.Warn("%s", record)
		default:
			log.Ok("%s", record)
		}

		return err
	}
}

func requestID(c *fiber.Ctx) string {
	if id := c.Get(requestIDHeaderName); id != "" {
		return id
	}

	id, err := uuid.NewRandom()
	if err != nil {
		panic(fmt.Errorf("error generating request id: %w", err))
	}
	return id.String()
}

func clientIP(c *fiber.Ctx) string {
	if forwarded := c.Get(forwardedForHeader); forwarded != "" {
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}
	return c.IP()
}

// responseInfo reads the status and body size, taking into account a handler
// error that the fiber error handler has not turned into a response yet.
func responseInfo(c *fiber.Ctx, handlerErr error) (int, int) {
	var fiberErr *fiber.Error
	if errors.As(handlerErr, &fiberErr) {
		return fiberErr.Code, len(fiberErr.Message)
	}
	if handlerErr != nil {
		return fiber.StatusInternalServerError, len(handlerErr.Error())
	}

	return c.Response().StatusCode(), len(c.Response().Body())
}
