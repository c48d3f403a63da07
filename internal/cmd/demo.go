// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/mia-platform/plog/pkg/plog"
)

const (
	demoCmdUsage = "demo"
	demoCmdShort = "log concurrently from a group of goroutines"
	demoCmdLong  = `Start a group of goroutines that share the same logger.
	Every goroutine is announced with an INFO record and reports its end with an
	OKAY record after the configured delay. Records never interleave, on the
	terminal nor in the file named by LOG_FILEPATH.`

	demoCmdExample = `# Start 20 goroutines, each one waiting 100ms before terminating
	LOG_FILEPATH=/tmp/plog.log plog demo --goroutines 20 --delay 100ms`

	goroutinesFlagName    = "goroutines"
	goroutinesFlagShort   = "n"
	goroutinesFlagUsage   = "Number of goroutines to start"
	defaultGoroutinesFlag = 10

	delayFlagName  = "delay"
	delayFlagUsage = "How long every goroutine waits before terminating"
)

// demoFlags holds the flags of the demo command on top of the logger ones.
type demoFlags struct {
	flags

	goroutines int
	delay      time.Duration
}

// addFlags registers the CLI flags on cmd.
func (f *demoFlags) addFlags(cmd *cobra.Command) {
	f.flags.addFlags(cmd)
	cmd.Flags().IntVarP(&f.goroutines, goroutinesFlagName, goroutinesFlagShort, defaultGoroutinesFlag, goroutinesFlagUsage)
	cmd.Flags().DurationVar(&f.delay, delayFlagName, 0, delayFlagUsage)
}

// DemoCmd returns the Cobra command that logs from many goroutines at once.
func DemoCmd() *cobra.Command {
	flags := &demoFlags{}
	cmd := &cobra.Command{
		Use:     demoCmdUsage,
		Short:   heredoc.Doc(demoCmdShort),
		Long:    heredoc.Doc(demoCmdLong),
		Example: heredoc.Doc(demoCmdExample),

		SilenceErrors: true,
		SilenceUsage:  true,

		ValidArgsFunction: cobra.NoFileCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.toDemoOptions(cmd, args)
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

// demoOptions holds the options set for the current demo command.
type demoOptions struct {
	goroutines int
	delay      time.Duration
	args       []string
	config     plog.Config
}

// toDemoOptions converts the demo flags to demoOptions.
func (f *demoFlags) toDemoOptions(cmd *cobra.Command, args []string) (*demoOptions, error) {
	cfg, err := f.loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	return &demoOptions{
		goroutines: f.goroutines,
		delay:      f.delay,
		args:       args,
		config:     cfg,
	}, nil
}

// validate checks the configured values and reports invalid setups.
func (o *demoOptions) validate() error {
	switch {
	case len(o.args) > 0:
		return errTooManyArgs
	case o.goroutines <= 0:
		return errNoGoroutines
	case o.delay < 0:
		return errNegativeDelay
	}

	return nil
}

// execute starts the goroutines and waits for all of them.
func (o *demoOptions) execute(cmd *cobra.Command) error {
	log, cleanup := newPlogLogger(cmd, o.config)
	defer cleanup()

	group, ctx := errgroup.WithContext(cmd.Context())
	var spawnErr error
	func() {
		defer recoverTerminalFailure(&spawnErr)
		for id := range o.goroutines {
			log.Info("Creating goroutine %d", id)
			group.Go(func() (err error) {
				defer recoverTerminalFailure(&err)

				timer := time.NewTimer(o.delay)
				defer timer.Stop()
				select {
				case <-timer.C:
				case <-ctx.Done():
					return ctx.Err()
				}

				log.Ok("Goroutine %d terminated", id)
				return nil
			})
		}
	}()

	if err := group.Wait(); err != nil {
		return err
	}
	return spawnErr
}
