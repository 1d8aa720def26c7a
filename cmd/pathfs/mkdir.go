package main

import (
	"github.com/rwx-research/pathfs/internal/cli"

	"github.com/spf13/cobra"
)

var mkdirCmd = &cobra.Command{
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.Mkdir(cli.EntryConfig{Path: args[0]})
	},
	Short: "Create a folder and any missing parents",
	Use:   "mkdir [path]",
}
