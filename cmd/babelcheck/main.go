// Copyright (c) 2019-present Mattermost, Inc. All Rights Reserved.
// See LICENSE.txt for license information.

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/babel-tcc/translations-validator/runner"
	"github.com/babel-tcc/translations-validator/version"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "babelcheck",
		Short: "Validate the keyword translations dataset",
		Long: "Checks the JSON syntax of every document in the dataset, validates keyword bases and translations " +
			"against their schemas, and verifies that every translation covers exactly the keywords of its " +
			"programming language without repeating a translated word.",
		Example:       "babelcheck --root ./babel-tcc-translations",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE:          runValidateCmdF,
	}
	rootCmd.PersistentFlags().StringP("config", "c", "", "path to the configuration file to use")
	rootCmd.Flags().StringP("root", "r", ".", "path to the root of the dataset")
	rootCmd.Flags().Bool("no-color", false, "disable colored output")
	rootCmd.Flags().String("metrics-file", "", "write the run metrics in the Prometheus text format to this file")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.GetInfo().String())
		},
	}
	rootCmd.AddCommand(versionCmd)

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, runner.ErrValidationFailed) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
