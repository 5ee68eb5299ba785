// Copyright (c) 2019-present Mattermost, Inc. All Rights Reserved.
// See LICENSE.txt for license information.

package main

import (
	"fmt"

	"github.com/babel-tcc/translations-validator/config"
	"github.com/babel-tcc/translations-validator/logger"
	"github.com/babel-tcc/translations-validator/metrics"
	"github.com/babel-tcc/translations-validator/report"
	"github.com/babel-tcc/translations-validator/runner"
	"github.com/babel-tcc/translations-validator/version"

	"github.com/mattermost/mattermost/server/public/shared/mlog"
	"github.com/spf13/cobra"
)

func runValidateCmdF(cmd *cobra.Command, _ []string) error {
	cfg, err := getConfig(cmd)
	if err != nil {
		return err
	}

	log, err := logger.Init(&cfg.LogSettings)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Shutdown()

	root, _ := cmd.Flags().GetString("root")
	mlog.Info("Validating dataset",
		mlog.String("root", root),
		mlog.String("commit", version.GetInfo().Short()))

	m := metrics.New()
	printer := report.NewPrinter(cmd.OutOrStdout(), cfg.Output.Title, cfg.Output.Color)

	res, err := runner.New(root, cfg, printer, m).Run()
	if err != nil {
		mlog.Error("Validation could not complete", mlog.Err(err))
		return err
	}

	if path := cfg.Metrics.TextfilePath; path != "" {
		if err := m.WriteTextfile(path); err != nil {
			return err
		}
	}

	if res.Failed() {
		mlog.Info("Validation failed", mlog.Int("findings", res.Total()), mlog.Bool("aborted", res.Aborted))
		return runner.ErrValidationFailed
	}

	mlog.Info("Validation passed")
	return nil
}

// getConfig reads the configuration file and applies the command line
// overrides on top of it.
func getConfig(cmd *cobra.Command) (*config.Config, error) {
	configFilePath, _ := cmd.Flags().GetString("config")
	cfg, err := config.ReadConfig(configFilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		cfg.Output.Color = false
	}

	if cmd.Flags().Changed("metrics-file") {
		cfg.Metrics.TextfilePath, _ = cmd.Flags().GetString("metrics-file")
	}

	if err := cfg.IsValid(); err != nil {
		return nil, fmt.Errorf("failed to validate config: %w", err)
	}

	return cfg, nil
}
