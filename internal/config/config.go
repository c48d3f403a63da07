// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package config reads plog configuration files.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mia-platform/plog/pkg/plog"
)

var (
	// ErrParsing reports failures that occur while decoding configuration files.
	ErrParsing = errors.New("error parsing")
)

// NewConfigFromPath overrides base with the keys found in the YAML file at path.
// Keys missing from the file keep the value of base. When the file holds more
// than one document, later documents win.
func NewConfigFromPath(path string, base plog.Config) (plog.Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return base, err
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)

	config := base
	for {
		err := decoder.Decode(&config)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}

			return base, fmt.Errorf("%w %q: %w", ErrParsing, path, err)
		}
	}

	return config, nil
}
