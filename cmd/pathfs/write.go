package main

import (
	"github.com/rwx-research/pathfs/internal/cli"

	"github.com/spf13/cobra"
)

var writeCmd = &cobra.Command{
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.Write(cli.WriteConfig{Path: args[0], Contents: args[1]})
	},
	Short: "Replace the contents of a file, creating it and its parents if needed",
	Use:   "write [path] [contents]",
}
