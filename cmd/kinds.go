package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "List assessment kinds and their weights",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), newRenderer(cmd).Kinds())
	},
}
