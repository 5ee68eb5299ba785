// Copyright (c) 2019 Mattermost, Inc. All Rights Reserved.
// See License.txt for license information

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		path := writeConfig(t, "empty.json", `{}`)

		cfg, err := ReadConfig(path)
		require.NoError(t, err)
		require.NoError(t, cfg.IsValid())

		assert.Equal(t, "programming-languages", cfg.Layout.ProgrammingLanguagesDir)
		assert.Equal(t, "natural-languages", cfg.Layout.NaturalLanguagesDir)
		assert.Equal(t, "keywords-base.json", cfg.Layout.KeywordBaseFile)
		assert.Equal(t, ".json", cfg.Layout.Extension)
		assert.Equal(t, []string{"template.json"}, cfg.Layout.SkipFiles)
		assert.Empty(t, cfg.Layout.ExcludeDirs)
		assert.False(t, cfg.Schema.RequireSemanticVersion)
		assert.True(t, cfg.Output.Color)
		assert.Equal(t, "babel-tcc-translations", cfg.Output.Title)
		assert.Empty(t, cfg.Metrics.TextfilePath)
		assert.Equal(t, "ERROR", cfg.LogSettings.ConsoleLevel)
		assert.False(t, cfg.LogSettings.EnableFile)
	})

	t.Run("toml overrides", func(t *testing.T) {
		path := writeConfig(t, "babelcheck.toml", `
[Layout]
ExcludeDirs = [".git", "node_modules"]

[Schema]
RequireSemanticVersion = true
`)

		cfg, err := ReadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, []string{".git", "node_modules"}, cfg.Layout.ExcludeDirs)
		assert.True(t, cfg.Schema.RequireSemanticVersion)
		assert.Equal(t, []string{"template.json"}, cfg.Layout.SkipFiles)
	})

	t.Run("unknown option", func(t *testing.T) {
		path := writeConfig(t, "bad.json", `{"Layout": {"Nope": 1}}`)

		_, err := ReadConfig(path)
		require.Error(t, err)
	})
}

func TestConfigIsValid(t *testing.T) {
	baseConfig := func(t *testing.T) *Config {
		cfg, err := ReadConfig(writeConfig(t, "base.json", `{}`))
		require.NoError(t, err)
		return cfg
	}

	t.Run("same language directories", func(t *testing.T) {
		c := baseConfig(t)
		c.Layout.NaturalLanguagesDir = c.Layout.ProgrammingLanguagesDir

		require.Error(t, c.IsValid())
	})

	t.Run("extension without dot", func(t *testing.T) {
		c := baseConfig(t)
		c.Layout.Extension = "json"

		require.Error(t, c.IsValid())
	})

	t.Run("nested directory as language root", func(t *testing.T) {
		c := baseConfig(t)
		c.Layout.ProgrammingLanguagesDir = "data/programming"

		require.Error(t, c.IsValid())
	})

	t.Run("bad log level", func(t *testing.T) {
		c := baseConfig(t)
		c.LogSettings.ConsoleLevel = "LOUD"

		require.Error(t, c.IsValid())
	})

	t.Run("every problem is reported", func(t *testing.T) {
		c := baseConfig(t)
		c.Layout.Extension = "yaml"
		c.Layout.NaturalLanguagesDir = c.Layout.ProgrammingLanguagesDir

		err := c.IsValid()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "different directories")
		assert.Contains(t, err.Error(), "must start with a dot")
		assert.Contains(t, err.Error(), "does not have the")
	})
}
