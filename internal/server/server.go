// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package server

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/mia-platform/plog/internal/info"
	"github.com/mia-platform/plog/pkg/plog"
	"github.com/mia-platform/plog/pkg/plog/fiberlog"
)

const (
	statusPrefix = "/-/"
)

var (
	ErrServerListen   = errors.New("server listen error")
	ErrServerShutdown = errors.New("server shutdown error")
)

// Server relays the records received over HTTP to a plog Logger.
type Server struct {
	config Config

	app *fiber.App
}

// NewServer configures the HTTP routes from the environment. Requests outside
// the status routes are logged on log through the fiberlog middleware; a
// terminal failure of log panics there and is turned into a 500 response.
func NewServer(log *plog.Logger) (*Server, error) {
	cfg, err := LoadServerConfig()
	if err != nil {
		return nil, err
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: cfg.DisableStartupMessage,
	})
	app.Use(recover.New())
	app.Use(fiberlog.New(fiberlog.Config{
		Logger:           log,
		ExcludedPrefixes: []string{statusPrefix},
	}))

	statusRoutes(app, info.AppName, info.Version)
	recordRoutes(app, log)

	return &Server{
		app:    app,
		config: *cfg,
	}, nil
}

// Address returns the host and port the server listens on.
func (s *Server) Address() string {
	return fmt.Sprintf("%s:%d", s.config.HTTPHost, s.config.HTTPPort)
}

// Start blocks serving requests until Stop is called.
func (s *Server) Start() error {
	if err := s.app.Listen(s.Address()); err != nil {
		return fmt.Errorf("%w: %w", ErrServerListen, err)
	}
	return nil
}

// Stop gracefully shuts down the server.
func (s *Server) Stop() error {
	if err := s.app.Shutdown(); err != nil {
		return fmt.Errorf("%w: %w", ErrServerShutdown, err)
	}
	return nil
}
