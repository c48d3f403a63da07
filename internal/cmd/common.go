// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mia-platform/plog/internal/config"
	"github.com/mia-platform/plog/internal/logger"
	"github.com/mia-platform/plog/pkg/plog"
)

const (
	backendLoggerName = "backend"
)

var (
	errNoArguments   = errors.New("no severity provided")
	errNoMessage     = errors.New("no message provided")
	errNoGoroutines  = errors.New("goroutines must be greater than zero")
	errNegativeDelay = errors.New("delay must not be negative")
	errTooManyArgs   = errors.New("too many arguments")

	// availableSeverities holds the severities accepted by the emit command and their description
	// for command completion and help messages.
	availableSeverities = map[string]string{
		plog.SeverityDebug.String(): "diagnostic details, dropped in plog_nodebug builds",
		plog.SeverityInfo.String():  "general information",
		plog.SeverityWarn.String():  "something unexpected that does not change the program flow",
		plog.SeverityError.String(): "something failed",
		plog.SeverityOk.String():    "something is working",
	}
)

// handleError will do custom print error handling based on the type of error received.
// it will return nil if the command must return 0 exit code, otherwise it will return
// the original error.
func handleError(cmd *cobra.Command, err error) error {
	switch {
	case errors.Is(err, errNoArguments):
		_ = cmd.Usage() // do not check error as we cannot do much about it
		return nil
	case errors.Is(err, plog.ErrUnknownSeverity),
		errors.Is(err, errNoMessage),
		errors.Is(err, errNoGoroutines),
		errors.Is(err, errNegativeDelay),
		errors.Is(err, errTooManyArgs):
		cmd.PrintErrln(err)
		_ = cmd.Usage() // do not check error as we cannot do much about it
		return err
	default:
		cmd.PrintErrln(err)
		return err
	}
}

func validArgsFunc(choices map[string]string) cobra.CompletionFunc {
	return func(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		var comps []string
		if len(args) == 0 {
			for name, description := range choices {
				if strings.HasPrefix(name, toComplete) {
					comps = append(comps, cobra.CompletionWithDesc(name, description))
				}
			}
		}

		return comps, cobra.ShellCompDirectiveNoFileComp
	}
}

// loadConfig resolves the logger configuration from the defaults, the PLOG_*
// environment variables, the optional config file and the flags explicitly set
// on cmd, in this order.
func (f *flags) loadConfig(cmd *cobra.Command) (plog.Config, error) {
	cfg, err := plog.LoadConfigFrom(plog.DefaultConfig(), os.Environ())
	if err != nil {
		return cfg, err
	}

	if f.configPath != "" {
		cfg, err = config.NewConfigFromPath(f.configPath, cfg)
		if err != nil {
			return cfg, err
		}
	}

	cmdFlags := cmd.Flags()
	overrides := []struct {
		name   string
		value  bool
		target *bool
	}{
		{name: coloredFlagName, value: f.colored, target: &cfg.Colored},
		{name: dateFlagName, value: f.date, target: &cfg.IncludeDate},
		{name: timeFlagName, value: f.time, target: &cfg.IncludeTime},
		{name: contextFlagName, value: f.context, target: &cfg.IncludeContext},
		{name: persistentFlagName, value: f.persistent, target: &cfg.Persistent},
	}
	for _, override := range overrides {
		if cmdFlags.Changed(override.name) {
			*override.target = override.value
		}
	}

	return cfg, nil
}

// recoverTerminalFailure turns the panic raised by a plog entry point when the
// terminal cannot be written into an error stored in err.
func recoverTerminalFailure(err *error) {
	recovered := recover()
	if recovered == nil {
		return
	}

	if recoveredErr, ok := recovered.(error); ok && errors.Is(recoveredErr, plog.ErrTerminalWrite) {
		*err = recoveredErr
		return
	}
	panic(recovered)
}

// newBackend returns a file backend reporting its diagnostics on the logger
// stored in ctx.
func newBackend(ctx context.Context) *plog.Backend {
	log := logger.FromContext(ctx).Named(backendLoggerName)
	return plog.NewBackend(plog.WithDiagnostics(log))
}

// newPlogLogger builds the logger used by a command, printing on the command
// error stream.
func newPlogLogger(cmd *cobra.Command, cfg plog.Config) (*plog.Logger, func()) {
	opts := []plog.Option{plog.WithOutput(cmd.ErrOrStderr())}
	cleanup := func() {}
	if cfg.Persistent {
		backend := newBackend(cmd.Context())
		opts = append(opts, plog.WithPersistentSink(backend))
		cleanup = func() {
			log := logger.FromContext(cmd.Context())
			if err := backend.Err(); err != nil {
				log.Warn("log file disabled during the command", "error", err)
			}
			if err := backend.Close(); err != nil {
				log.Debug("closing log file", "error", err)
			}
		}
	}

	return plog.New(cfg, opts...), cleanup
}
