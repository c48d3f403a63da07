// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/mia-platform/plog/internal/logger"
	"github.com/mia-platform/plog/internal/server"
	"github.com/mia-platform/plog/pkg/plog"
)

const (
	serveCmdUsage = "serve"
	serveCmdShort = "relay records received over HTTP"
	serveCmdLong  = `Start an HTTP server that writes the records posted to /records
	through the same logger used by the emit command. The body of a request is a
	JSON object with a severity and a message. Every request is logged as well,
	with a severity depending on its status code.

	The server is configured with the following environment variables:
	- HTTP_HOST: the listening address, defaults to 127.0.0.1
	- HTTP_PORT: the listening port, defaults to 3000
	- DISABLE_STARTUP_MESSAGE: hide the fiber banner, defaults to true`

	serveCmdExample = `# Start the server and send it a record
	HTTP_PORT=8080 plog serve &
	curl -XPOST localhost:8080/records -d '{"severity":"ok","message":"hello"}'`

	serverLoggerName = "server"
)

// ServeCmd returns the Cobra command that starts the records server.
func ServeCmd() *cobra.Command {
	flags := &flags{}
	cmd := &cobra.Command{
		Use:     serveCmdUsage,
		Short:   heredoc.Doc(serveCmdShort),
		Long:    heredoc.Doc(serveCmdLong),
		Example: heredoc.Doc(serveCmdExample),

		SilenceErrors: true,
		SilenceUsage:  true,

		ValidArgsFunction: cobra.NoFileCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.toServeOptions(cmd, args)
			if err != nil {
				return handleError(cmd, err)
			}

			if err := opts.validate(); err != nil {
				return handleError(cmd, err)
			}

			if err := opts.execute(cmd); err != nil {
				return handleError(cmd, err)
			}

			return nil
		},
	}

	flags.addFlags(cmd)
	return cmd
}

// serveOptions holds the options set for the current serve command.
type serveOptions struct {
	args   []string
	config plog.Config
}

// toServeOptions resolves the logger configuration of the server.
func (f *flags) toServeOptions(cmd *cobra.Command, args []string) (*serveOptions, error) {
	cfg, err := f.loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	return &serveOptions{args: args, config: cfg}, nil
}

// validate checks the configured values and reports invalid setups.
func (o *serveOptions) validate() error {
	if len(o.args) > 0 {
		return errTooManyArgs
	}
	return nil
}

// execute serves requests until the command context is done or the process
// receives SIGINT or SIGTERM.
func (o *serveOptions) execute(cmd *cobra.Command) error {
	log, cleanup := newPlogLogger(cmd, o.config)
	defer cleanup()

	srv, err := server.NewServer(log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	diagnostics := logger.FromContext(ctx).Named(serverLoggerName)
	diagnostics.Info("listening", "address", srv.Address())

	group, ctx := errgroup.WithContext(ctx)
	group.Go(srv.Start)
	group.Go(func() error {
		<-ctx.Done()
		diagnostics.Info("shutting down")
		return srv.Stop()
	})

	return group.Wait()
}
