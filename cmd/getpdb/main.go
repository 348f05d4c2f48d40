// Copyright (C) 2023-2026 Jure Cerar. Licensed under the GNU GPL v3.

// Package main is the entry point for the getpdb CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "0.2.0"

// rootCmd both carries the global flags and runs the fetch itself;
// identifiers are its positional arguments.
var rootCmd = &cobra.Command{
	Use:   "getpdb [flags] code [code ...]",
	Short: "Retrieve molecular structure data from online databases",
	Long: `getpdb resolves structure identifiers (PDB entry codes, ligand codes,
PubChem CIDs, UniProt accessions) against a fixed list of public databases
and writes the first match to disk as <dir>/<code>.<type>.

Databases are tried in order; each one independently accepts or rejects the
identifier shape. Supported file types depend on the database that ends up
serving the identifier (see "getpdb databases").

Please keep interactive use below ~5 requests per second; the public
services are shared infrastructure.`,
	Example: `  getpdb 1lyz
  getpdb P00698 -o cif
  getpdb 1lyz 2lyz 3lyz -d ./output`,
	SilenceUsage: true,
	RunE:         runFetch,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.Version = version
	rootCmd.Flags().BoolP("version", "V", false, "show version information and exit")

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./getpdb.yaml or ~/.config/getpdb/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("getpdb")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "getpdb"))
		}
	}

	viper.SetEnvPrefix("GETPDB")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
