// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/mia-platform/plog/pkg/plog"
)

const (
	emitCmdUsage = "emit SEVERITY MESSAGE..."
	emitCmdShort = "write a record with the given severity"
	emitCmdLong  = `Write a record with the given severity on standard error.
	The record is also appended to the file named by the LOG_FILEPATH
	environment variable, unless persistence is disabled by configuration.
	The message arguments are joined with a single space.

	The available severities are:
	- debug (DEBG)
	- info (INFO)
	- warn (WARN)
	- error (ERRO)
	- ok (OKAY)`

	emitCmdExample = `# Write an OKAY record
	plog emit ok "service started"

	# Write a WARN record with the local date and the call site
	plog emit warn --date --context disk almost full`
)

// EmitCmd returns the Cobra command that writes a single record.
func EmitCmd() *cobra.Command {
	flags := &flags{}
	cmd := &cobra.Command{
		Use:     emitCmdUsage,
		Short:   heredoc.Doc(emitCmdShort),
		Long:    heredoc.Doc(emitCmdLong),
		Example: heredoc.Doc(emitCmdExample),

		SilenceErrors: true,
		SilenceUsage:  true,

		ValidArgsFunction: validArgsFunc(availableSeverities),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.toEmitOptions(cmd, args)
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

// emitOptions holds the options set for the current emit command.
type emitOptions struct {
	severityName string
	message      []string
	config       plog.Config

	severity plog.Severity
}

// toEmitOptions resolves the logger configuration and splits args into the
// severity and the message words.
func (f *flags) toEmitOptions(cmd *cobra.Command, args []string) (*emitOptions, error) {
	cfg, err := f.loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	opts := &emitOptions{config: cfg}
	if len(args) > 0 {
		opts.severityName = args[0]
		opts.message = args[1:]
	}

	return opts, nil
}

// validate parses the severity and checks that a message is present.
func (o *emitOptions) validate() error {
	if o.severityName == "" {
		return errNoArguments
	}

	severity, err := plog.SeverityFromString(o.severityName)
	if err != nil {
		return err
	}
	o.severity = severity

	if len(o.message) == 0 {
		return errNoMessage
	}

	return nil
}

// execute writes the record through a logger built from the resolved configuration.
func (o *emitOptions) execute(cmd *cobra.Command) (err error) {
	log, cleanup := newPlogLogger(cmd, o.config)
	defer cleanup()
	defer recoverTerminalFailure(&err)

	message := strings.Join(o.message, " ")
	switch o.severity {
	case plog.SeverityDebug:
		log.Debug("%s", message)
	case plog.SeverityInfo:
		log.Info("%s", message)
	case plog.SeverityWarn:
		log.Warn("%s", message)
	case plog.SeverityError:
		log.Error("%s", message)
	case plog.SeverityOk:
		log.Ok("%s", message)
	}

	return nil
}
