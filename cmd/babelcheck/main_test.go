// Copyright (c) 2019-present Mattermost, Inc. All Rights Reserved.
// See LICENSE.txt for license information.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/babel-tcc/translations-validator/runner"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const quietConfig = `{"LogSettings": {"EnableConsole": false, "EnableFile": false}}`

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func newDataset(t *testing.T, translations string) string {
	t.Helper()
	root := t.TempDir()
	writeFile(t, root, "programming-languages/python/keywords-base.json", `{"keywords": {"loop": 1, "func": 2}}`)
	writeFile(t, root, "natural-languages/pt.json",
		`{"version":"1.0","languageCode":"pt","languageName":"Portuguese","programmingLanguage":"python","translations":`+translations+`}`)
	return root
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cfgPath := filepath.Join(t.TempDir(), "babelcheck.json")
	require.NoError(t, os.WriteFile(cfgPath, []byte(quietConfig), 0o644))

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", cfgPath, "--no-color"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestValidateCommand(t *testing.T) {
	t.Run("passing dataset", func(t *testing.T) {
		out, err := execute(t, "--root", newDataset(t, `{"1":"repetir","2":"funcao"}`))
		require.NoError(t, err)
		assert.Contains(t, out, "[1/4] Validacao de sintaxe JSON...\n  OK — 2 ficheiros JSON validos")
		assert.Contains(t, out, "[4/4] Validacao de unicidade...\n  OK — sem traducoes duplicadas")
		assert.Contains(t, out, "RESULTADO: Todas as validacoes passaram!")
	})

	t.Run("missing id", func(t *testing.T) {
		out, err := execute(t, "--root", newDataset(t, `{"1":"repetir"}`))
		require.ErrorIs(t, err, runner.ErrValidationFailed)
		assert.Contains(t, out, "[3/4] Validacao de completude...\n  FALHOU:\n  natural-languages/pt.json: IDs em falta: 2")
		assert.Contains(t, out, "RESULTADO: 1 erro(s) encontrado(s)")
	})

	t.Run("duplicate translation", func(t *testing.T) {
		out, err := execute(t, "--root", newDataset(t, `{"1":"repetir","2":"Repetir"}`))
		require.ErrorIs(t, err, runner.ErrValidationFailed)
		assert.Contains(t, out, "natural-languages/pt.json: traducao duplicada 'Repetir' usada nos IDs 1 e 2")
	})

	t.Run("syntax error skips other stages", func(t *testing.T) {
		root := newDataset(t, `{"1":"repetir","2":"funcao"}`)
		writeFile(t, root, "extra/broken.json", `{"a": }`)

		out, err := execute(t, "--root", root)
		require.ErrorIs(t, err, runner.ErrValidationFailed)
		assert.Contains(t, out, "  FALHOU:\n  extra/broken.json: ")
		assert.Contains(t, out, "Abortando validacoes restantes devido a erros de sintaxe.")
		assert.NotContains(t, out, "[2/4]")
		assert.NotContains(t, out, "RESULTADO")
	})

	t.Run("metrics file", func(t *testing.T) {
		metricsPath := filepath.Join(t.TempDir(), "babelcheck.prom")
		_, err := execute(t, "--root", newDataset(t, `{"1":"repetir","2":"funcao"}`), "--metrics-file", metricsPath)
		require.NoError(t, err)

		data, err := os.ReadFile(metricsPath)
		require.NoError(t, err)
		assert.Contains(t, string(data), "babelcheck_success 1")
	})

	t.Run("missing root", func(t *testing.T) {
		_, err := execute(t, "--root", filepath.Join(t.TempDir(), "missing"))
		require.Error(t, err)
		assert.NotErrorIs(t, err, runner.ErrValidationFailed)
	})

	t.Run("bad config", func(t *testing.T) {
		cfgPath := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(cfgPath, []byte(`{"Layout": {"Extension": "json"}}`), 0o644))

		cmd := newRootCmd()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetArgs([]string{"--config", cfgPath})
		err := cmd.Execute()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to validate config")
	})

	t.Run("arguments are rejected", func(t *testing.T) {
		_, err := execute(t, "somewhere")
		require.Error(t, err)
	})
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Commit: unknown")
}
