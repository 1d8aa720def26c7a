package main

import (
	"github.com/rwx-research/pathfs/internal/cli"

	"github.com/spf13/cobra"
)

var touchCmd = &cobra.Command{
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.Touch(cli.EntryConfig{Path: args[0]})
	},
	Short: "Create an empty file and any missing parents",
	Use:   "touch [path]",
}
