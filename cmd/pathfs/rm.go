package main

import (
	"github.com/rwx-research/pathfs/internal/cli"

	"github.com/spf13/cobra"
)

var (
	RemoveFolder bool

	rmCmd = &cobra.Command{
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return service.Remove(cli.RemoveConfig{Path: args[0], Folder: RemoveFolder})
		},
		Short: "Delete a file, or a folder with --folder",
		Use:   "rm [flags] [path]",
	}
)

func init() {
	rmCmd.Flags().BoolVar(&RemoveFolder, "folder", false, "delete a folder and everything in it instead of a file")
}
