// Copyright (C) 2023-2026 Jure Cerar. Licensed under the GNU GPL v3.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/jurecerar/getpdb/internal/hosts"
)

var databasesCmd = &cobra.Command{
	Use:   "databases",
	Short: "List the supported databases and their file types",
	Long: `Databases prints each database in resolution order together with the
file types it can serve and the type used when -o is omitted. The output
is YAML so it can be consumed by scripts.`,
	RunE: runDatabases,
}

func init() {
	rootCmd.AddCommand(databasesCmd)
}

// databaseInfo is the YAML listing entry for one host.
type databaseInfo struct {
	Name        string   `yaml:"name"`
	Types       []string `yaml:"types"`
	DefaultType string   `yaml:"default_type"`
}

func runDatabases(cmd *cobra.Command, args []string) error {
	infos := make([]databaseInfo, 0, len(hosts.All()))
	for _, h := range hosts.All() {
		infos = append(infos, databaseInfo{
			Name:        h.Name(),
			Types:       h.SupportedTypes(),
			DefaultType: h.DefaultType(),
		})
	}

	data, err := yaml.Marshal(infos)
	if err != nil {
		return fmt.Errorf("marshaling database listing: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
