// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package plog

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/mattn/go-isatty"
)

// ConfigEnvPrefix is prepended to the names of the configuration environment variables.
const ConfigEnvPrefix = "PLOG_"

// Config selects the optional parts of every record. It is read-only once a
// Logger has been built with it.
type Config struct {
	// Colored renders the prefix bold and colored on the terminal.
	Colored bool `env:"COLORED" yaml:"colored"`
	// IncludeDate appends the local date to the prefix.
	IncludeDate bool `env:"INCLUDE_DATE" yaml:"includeDate"`
	// IncludeTime appends the local time to the prefix.
	IncludeTime bool `env:"INCLUDE_TIME" yaml:"includeTime"`
	// IncludeContext appends the file and line of the logging call to the prefix.
	IncludeContext bool `env:"INCLUDE_CONTEXT" yaml:"includeContext"`
	// Persistent enables the LOG_FILEPATH file sink.
	Persistent bool `env:"PERSISTENT" yaml:"persistent"`
}

// DefaultConfig returns the configuration used when nothing else is set:
// colors only when standard error is a terminal, file sink consulted.
func DefaultConfig() Config {
	fd := os.Stderr.Fd()
	return Config{
		Colored:    isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd),
		Persistent: true,
	}
}

// LoadConfig returns DefaultConfig overridden by the PLOG_* environment variables.
func LoadConfig() (Config, error) {
	return LoadConfigFrom(DefaultConfig(), os.Environ())
}

// LoadConfigFrom overrides base with the PLOG_* variables found in environ,
// given in the "key=value" form of os.Environ.
func LoadConfigFrom(base Config, environ []string) (Config, error) {
	config := base
	opts := env.Options{
		Prefix:      ConfigEnvPrefix,
		Environment: env.ToMap(environ),
	}

	if err := env.ParseWithOptions(&config, opts); err != nil {
		return base, fmt.Errorf("%w: %s", ErrConfigNotValid, err.Error())
	}
	return config, nil
}
