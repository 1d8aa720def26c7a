package main

import (
	"github.com/rwx-research/pathfs/internal/cli"

	"github.com/spf13/cobra"
)

var catCmd = &cobra.Command{
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.Cat(cli.EntryConfig{Path: args[0]})
	},
	Short: "Print the contents of a file",
	Use:   "cat [path]",
}
