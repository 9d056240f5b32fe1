// seehuhn.de/go/stitch - turtle scripts for embroidery machines
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package config reads the configuration file of the turtle-stitch tool.
//
// The file is in YAML format.  All keys are optional:
//
//	step: 1.5            # nominal stitch length, 0 disables splitting
//	max_commands: 100000 # limit for the expanded command list
//	max_points: 1000000  # limit for the number of recorded points
//	format: auto         # output format: auto, yaml or table
//	color: "#00aa55"     # thread colour recorded in the output
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/stitch"
	"seehuhn.de/go/stitch/expand"
	"seehuhn.de/go/stitch/turtle"
)

// MinStep is the lower bound for non-zero stitch lengths.  The step must be
// strictly larger than this.
const MinStep = 0.01

// Output formats.
const (
	FormatAuto  = "auto"
	FormatYAML  = "yaml"
	FormatTable = "table"
)

// Config holds the settings of the turtle-stitch tool.
type Config struct {
	Step        float64 `yaml:"step"`
	MaxCommands int     `yaml:"max_commands"`
	MaxPoints   int     `yaml:"max_points"`
	Format      string  `yaml:"format"`
	Color       string  `yaml:"color"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Step:        1.5,
		MaxCommands: expand.DefaultMaxCommands,
		MaxPoints:   turtle.DefaultMaxPoints,
		Format:      FormatAuto,
		Color:       "#00aa55",
	}
}

// Load reads a configuration file.  Settings missing from the file keep
// their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates a configuration.
func Parse(data []byte) (*Config, error) {
	c := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	err := dec.Decode(c)
	if err != nil && err != io.EOF {
		return nil, err
	}

	err = c.Validate()
	if err != nil {
		return nil, err
	}
	return c, nil
}

var colorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Validate checks that all settings are in range.
func (c *Config) Validate() error {
	var errs []error
	if c.Step != 0 && !(c.Step > MinStep) {
		errs = append(errs, fmt.Errorf("step must be 0 or larger than %g, got %g", MinStep, c.Step))
	}
	if c.MaxCommands <= 0 {
		errs = append(errs, fmt.Errorf("max_commands must be positive, got %d", c.MaxCommands))
	}
	if c.MaxPoints <= 0 {
		errs = append(errs, fmt.Errorf("max_points must be positive, got %d", c.MaxPoints))
	}
	switch c.Format {
	case FormatAuto, FormatYAML, FormatTable:
		// pass
	default:
		errs = append(errs, fmt.Errorf("unknown format %q", c.Format))
	}
	if !colorRe.MatchString(c.Color) {
		errs = append(errs, fmt.Errorf("color must have the form #rrggbb, got %q", c.Color))
	}
	return errors.Join(errs...)
}

// Options returns the conversion options for the configuration.
func (c *Config) Options() *stitch.Options {
	return &stitch.Options{
		MaxStep:     c.Step,
		MaxCommands: c.MaxCommands,
		MaxPoints:   c.MaxPoints,
	}
}
