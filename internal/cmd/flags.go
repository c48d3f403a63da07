// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"github.com/spf13/cobra"
)

const (
	configFlagName  = "config"
	configFlagShort = "c"
	configFlagUsage = "Path to a YAML file with the logger configuration. Its keys override the PLOG_* environment variables."

	coloredFlagName  = "colored"
	coloredFlagUsage = "Style the severity prefix with terminal colors"

	dateFlagName  = "date"
	dateFlagUsage = "Add the local date to the prefix"

	timeFlagName  = "time"
	timeFlagUsage = "Add the local time to the prefix"

	contextFlagName  = "context"
	contextFlagUsage = "Add the file and line of the logging call to the prefix"

	persistentFlagName    = "persistent"
	persistentFlagUsage   = "Also append the records to the file named by LOG_FILEPATH"
	defaultPersistentFlag = true
)

// flags collects the logger options shared by the emit and demo commands.
// A flag overrides the configuration only when explicitly set.
type flags struct {
	configPath string
	colored    bool
	date       bool
	time       bool
	context    bool
	persistent bool
}

// addFlags registers the CLI flags on cmd.
func (f *flags) addFlags(cmd *cobra.Command) {
	cmdFlags := cmd.Flags()
	cmdFlags.StringVarP(&f.configPath, configFlagName, configFlagShort, "", configFlagUsage)
	cmdFlags.BoolVar(&f.colored, coloredFlagName, false, coloredFlagUsage)
	cmdFlags.BoolVar(&f.date, dateFlagName, false, dateFlagUsage)
	cmdFlags.BoolVar(&f.time, timeFlagName, false, timeFlagUsage)
	cmdFlags.BoolVar(&f.context, contextFlagName, false, contextFlagUsage)
	cmdFlags.BoolVar(&f.persistent, persistentFlagName, defaultPersistentFlag, persistentFlagUsage)
}
