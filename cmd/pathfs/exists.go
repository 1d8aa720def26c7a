package main

import (
	"github.com/rwx-research/pathfs/internal/cli"

	"github.com/spf13/cobra"
)

var existsCmd = &cobra.Command{
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.Exists(cli.EntryConfig{Path: args[0]})
	},
	Short: "Report whether a file, folder, or root exists at a path",
	Use:   "exists [path]",
}
