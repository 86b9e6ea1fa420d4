package main

import (
	"strings"

	"github.com/aretw0/tally/internal/cli"
	"github.com/aretw0/tally/pkg/runner"
	"github.com/spf13/cobra"
)

var evalCmd = &cobra.Command{
	Use:   "eval <expression>...",
	Short: "Evaluate expressions and print one result per line",
	Example: `  tally eval "1+2*3"
  tally eval --precision 2 "10/3" "50%"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		stack, err := openStack(cmd.Context())
		if err != nil {
			return err
		}
		defer stack.Close()

		joined, _ := cmd.Flags().GetBool("join")
		if joined {
			args = []string{strings.Join(args, "")}
		}
		return cli.Eval(cmd.Context(), stack.Engine, args, cmd.OutOrStdout(), runner.NewSanitizer(stack.MaxInputSize))
	},
}

func init() {
	evalCmd.Flags().Bool("join", false, "Treat all arguments as one expression")
	rootCmd.AddCommand(evalCmd)
}
