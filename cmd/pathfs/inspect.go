package main

import (
	"github.com/rwx-research/pathfs/internal/cli"

	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.Inspect(cli.EntryConfig{Path: args[0]})
	},
	Short: "Show how a path is normalized and split into root, segments, and parent",
	Use:   "inspect [path]",
}
