package main

import (
	"github.com/spf13/cobra"
)

var treeCmd = &cobra.Command{
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.Tree()
	},
	Short: "Print every root, folder, and file in the memory backend",
	Use:   "tree",
}
