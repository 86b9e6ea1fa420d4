package main

import (
	"github.com/aretw0/tally/internal/cli"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start an interactive calculator (default command)",
	Long: `Runs a calculator session in the terminal.
On a TTY it opens the full-screen keypad; otherwise it reads one line of keys
at a time from stdin and prints the display after each line.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		line, _ := cmd.Flags().GetBool("line")
		sessionID, _ := cmd.Flags().GetString("session")
		fresh, _ := cmd.Flags().GetBool("fresh")
		if sessionID == "" {
			sessionID = cfg.Store.SessionID
		}

		ctx := cli.NewSignalContext(cmd.Context())
		defer ctx.Cancel()

		stack, err := openStack(ctx)
		if err != nil {
			return err
		}
		defer stack.Close()

		return cli.Execute(ctx, stack, cli.RunOptions{
			Line:      line,
			SessionID: sessionID,
			Fresh:     fresh,
			Banner:    cfg.Display.Banner,
			Input:     cmd.InOrStdin(),
			Output:    cmd.OutOrStdout(),
		})
	},
}

func init() {
	runCmd.Flags().Bool("line", false, "Read keys line by line even on a terminal")
	runCmd.Flags().StringP("session", "s", "", "Persist the calculator under this session ID")
	runCmd.Flags().Bool("fresh", false, "Discard the stored session before starting")

	rootCmd.AddCommand(runCmd)
	rootCmd.Flags().AddFlagSet(runCmd.Flags())
	rootCmd.RunE = runCmd.RunE
}
