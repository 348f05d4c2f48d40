// Copyright (C) 2023-2026 Jure Cerar. Licensed under the GNU GPL v3.

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jurecerar/getpdb/internal/fetch"
	"github.com/jurecerar/getpdb/internal/hosts"
	"github.com/jurecerar/getpdb/internal/httputil"
	"github.com/jurecerar/getpdb/pkg/types"
)

const defaultTimeout = 60 * time.Second

func init() {
	rootCmd.Flags().StringP("type", "o", "", "output file type (supported types depend on the serving database)")
	rootCmd.Flags().StringP("dir", "d", "", "directory that will store the fetched files (default \".\")")
	rootCmd.Flags().BoolP("verbose", "v", false, "print the per-database attempt trace")
	rootCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 60s)")
	rootCmd.Flags().Bool("no-ssl-verify", false, "disable TLS certificate verification when making requests")
}

func runFetch(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("provide one or more structure identifiers (PDB codes, CIDs, or UniProt accessions)")
	}

	outputType, _ := cmd.Flags().GetString("type")
	if outputType == "" {
		outputType = viper.GetString("output_type")
	}
	outputDir, _ := cmd.Flags().GetString("dir")
	if outputDir == "" {
		outputDir = viper.GetString("output_dir")
	}
	if outputDir == "" {
		outputDir = "."
	}
	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = viper.GetDuration("timeout")
	}
	if timeout == 0 {
		timeout = defaultTimeout
	}
	userAgent := viper.GetString("user_agent")
	if userAgent == "" {
		userAgent = "getpdb/" + version
	}
	verbose, _ := cmd.Flags().GetBool("verbose")
	noVerify, _ := cmd.Flags().GetBool("no-ssl-verify")

	cfg := types.FetchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:            timeout,
			UserAgent:          userAgent,
			InsecureSkipVerify: noVerify,
		},
		OutputDir:  outputDir,
		OutputType: outputType,
		Verbose:    verbose,
	}

	client := httputil.NewClient(cfg.Timeout, cfg.InsecureSkipVerify)

	result := fetch.Batch(cmd.Context(), client, hosts.All(), args, cfg, os.Stdout, os.Stderr)
	if result.HasFailures() {
		return fmt.Errorf("%d identifier(s) could not be fetched", result.Failed)
	}
	return nil
}
