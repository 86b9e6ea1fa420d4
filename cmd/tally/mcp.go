package main

import (
	"log"
	"os"

	"github.com/aretw0/tally/internal/cli"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Starts the Tally engine as an MCP Server.
This allows AI agents to evaluate expressions and drive calculator sessions as tools.

Supported Transports:
- stdio (default): Uses Standard Input/Output. Ideal for local process integration.
- sse: Uses Server-Sent Events over HTTP. Ideal for remote agents or debuggers.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		transport, _ := cmd.Flags().GetString("transport")
		addr, _ := cmd.Flags().GetString("addr")

		if transport == cli.TransportStdio {
			// Stdout carries JSON-RPC.
			log.SetOutput(os.Stderr)
		}

		ctx := cli.NewSignalContext(cmd.Context())
		defer ctx.Cancel()

		stack, err := openStack(ctx)
		if err != nil {
			return err
		}
		defer stack.Close()

		logger.Info("Starting Tally MCP Server", "transport", transport)
		if err := cli.ServeMCP(ctx, stack, transport, addr); err != nil {
			logger.Error("MCP Server execution failed", "err", err)
			return err
		}
		return nil
	},
}

func init() {
	mcpCmd.Flags().StringP("transport", "t", cli.TransportStdio, "Transport: stdio or sse")
	mcpCmd.Flags().String("addr", ":8080", "Listen address for the sse transport")
	rootCmd.AddCommand(mcpCmd)
}
