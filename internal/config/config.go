// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package config loads the genlib command configuration from HCL files.
//
//	log_level    = "debug"
//	format       = "json"
//	skip_invalid = true
//
package config

import (
	"log/slog"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/pkg/errors"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config is the command configuration.
type Config struct {
	// LogLevel is one of debug, info, warn or error.
	LogLevel string `hcl:"log_level,optional"`
	// Format is the catalog output format, text or json.
	Format string `hcl:"format,optional"`
	// SkipInvalid skips rejected gate declarations instead of failing.
	SkipInvalid bool `hcl:"skip_invalid,optional"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{LogLevel: "info", Format: FormatText}
}

// Load reads the configuration file at path. Settings missing from the file
// keep their default value.
func Load(path string) (*Config, error) {
	f, diags := hclparse.NewParser().ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, errors.Wrapf(diags, "failed to parse config file %s", path)
	}
	cfg := Default()
	if diags = gohcl.DecodeBody(f.Body, nil, cfg); diags.HasErrors() {
		return nil, errors.Wrapf(diags, "failed to decode config file %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config file %s", path)
	}
	return cfg, nil
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	switch c.Format {
	case FormatText, FormatJSON:
	default:
		return errors.Errorf("invalid format %q", c.Format)
	}
	return nil
}

// Level returns the slog level for LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return l, errors.Errorf("invalid log level %q", c.LogLevel)
	}
	return l, nil
}
