// Copyright (c) 2019 Mattermost, Inc. All Rights Reserved.
// See License.txt for license information

package config

import (
	"fmt"
	"strings"

	"github.com/babel-tcc/translations-validator/check"
	"github.com/babel-tcc/translations-validator/dataset"
	"github.com/babel-tcc/translations-validator/defaults"
	"github.com/babel-tcc/translations-validator/logger"

	"github.com/wiggin77/merror"
)

// DefaultPath is read when no configuration file is given explicitly.
const DefaultPath = "./config/babelcheck.json"

// Config holds the settings of a validation run. Its defaults reproduce
// the behavior of the tool when no configuration file exists.
type Config struct {
	Layout      dataset.Layout
	Schema      check.SchemaOptions
	Output      OutputSettings
	Metrics     MetricsSettings
	LogSettings logger.Settings
}

type OutputSettings struct {
	// Color is honored only when stdout is a terminal.
	Color bool   `default:"true"`
	Title string `default:"babel-tcc-translations" validate:"notempty"`
}

type MetricsSettings struct {
	// TextfilePath, when set, receives the run metrics in the Prometheus
	// text format.
	TextfilePath string `default:""`
}

// ReadConfig reads the configuration file at path, or DefaultPath when path
// is empty, on top of the default values.
func ReadConfig(path string) (*Config, error) {
	var cfg Config

	if err := defaults.ReadFrom(path, DefaultPath, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// IsValid reports every problem found in the configuration.
func (c *Config) IsValid() error {
	merr := merror.New()

	if err := defaults.Validate(c); err != nil {
		merr.Append(err)
	}

	if c.Layout.ProgrammingLanguagesDir == c.Layout.NaturalLanguagesDir {
		merr.Append(fmt.Errorf("programming and natural languages must live in different directories, both are %q", c.Layout.NaturalLanguagesDir))
	}

	if !strings.HasPrefix(c.Layout.Extension, ".") {
		merr.Append(fmt.Errorf("extension must start with a dot, got %q", c.Layout.Extension))
	}

	if !strings.HasSuffix(c.Layout.KeywordBaseFile, c.Layout.Extension) {
		merr.Append(fmt.Errorf("keyword base file %q does not have the %q extension", c.Layout.KeywordBaseFile, c.Layout.Extension))
	}

	return merr.ErrorOrNil()
}
