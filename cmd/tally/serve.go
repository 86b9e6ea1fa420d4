package main

import (
	"github.com/aretw0/tally/internal/cli"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Tally HTTP server",
	Long: `Serves calculator sessions over HTTP (see /openapi.yaml) with
Server-Sent Events per session and Prometheus metrics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server := cfg.Server
		if cmd.Flags().Changed("addr") {
			server.Addr, _ = cmd.Flags().GetString("addr")
		}
		if cmd.Flags().Changed("metrics") {
			server.MetricsPath, _ = cmd.Flags().GetString("metrics")
		}

		ctx := cli.NewSignalContext(cmd.Context())
		defer ctx.Cancel()

		stack, err := openStack(ctx)
		if err != nil {
			return err
		}
		defer stack.Close()

		return cli.Serve(ctx, stack, server)
	},
}

func init() {
	serveCmd.Flags().StringP("addr", "a", ":8080", "Address to listen on")
	serveCmd.Flags().String("metrics", "/metrics", "Path of the Prometheus endpoint (empty disables it)")
	rootCmd.AddCommand(serveCmd)
}
