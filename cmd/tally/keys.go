package main

import (
	"github.com/aretw0/tally/internal/cli"
	"github.com/spf13/cobra"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Show the key bindings",
	RunE: func(cmd *cobra.Command, args []string) error {
		plain, _ := cmd.Flags().GetBool("plain")
		return cli.RenderKeys(cmd.OutOrStdout(), plain)
	},
}

func init() {
	keysCmd.Flags().Bool("plain", false, "Print raw markdown")
	rootCmd.AddCommand(keysCmd)
}
