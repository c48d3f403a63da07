// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/mia-platform/plog/pkg/plog"
)

const (
	recordsPath = "/records"
)

type statusResponse struct {
	Status  string `json:"status"`
	Name    string `json:"name"`
	Version string `json:"version"`
}

// Record is the JSON body accepted by the records route.
type Record struct {
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

func statusRoutes(app *fiber.App, name, version string) {
	handler := func(c *fiber.Ctx) error {
		return c.JSON(statusResponse{Status: "OK", Name: name, Version: version})
	}

	app.Get(statusPrefix+"healthz", handler)
	app.Get(statusPrefix+"ready", handler)
}

// recordRoutes registers the route writing one record per request. Messages
// spanning more than one line are rejected so that a request always maps to
// one line of the log file. The call site is never added to the prefix since
// it would always point here.
func recordRoutes(app *fiber.App, log *plog.Logger) {
	app.Post(recordsPath, func(c *fiber.Ctx) error {
		var record Record
		if err := c.App().Config().JSONDecoder(c.Body(), &record); err != nil {
			return fiber.NewError(http.StatusBadRequest, "invalid record: "+err.Error())
		}

		severity, err := plog.SeverityFromString(record.Severity)
		if err != nil {
			return fiber.NewError(http.StatusBadRequest, err.Error())
		}

		if strings.TrimSpace(record.Message) == "" {
			return fiber.NewError(http.StatusBadRequest, "message is required")
		}
		if strings.ContainsAny(record.Message, "\r\n") {
			return fiber.NewError(http.StatusBadRequest, "message must be a single line")
		}

		if severity == plog.SeverityDebug && !plog.DebugEnabled() {
			return c.SendStatus(http.StatusNoContent)
		}

		prefix := plog.Format(severity, log.Config(), time.Now(), nil)
		if err := log.Log(severity, prefix, record.Message); err != nil {
			return fiber.NewError(http.StatusInternalServerError, err.Error())
		}

		return c.SendStatus(http.StatusNoContent)
	})
}
