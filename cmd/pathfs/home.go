package main

import (
	"github.com/spf13/cobra"
)

var homeCmd = &cobra.Command{
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.Home()
	},
	Short: "Print the current user's home folder",
	Use:   "home",
}
