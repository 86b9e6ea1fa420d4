package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/tally/internal/cli"
	"github.com/aretw0/tally/internal/config"
	"github.com/spf13/cobra"
)

// cfg is resolved once per invocation by the root pre-run hook.
var (
	cfg    config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "tally",
	Short: "Tally is a keystroke calculator engine",
	Long: `Tally turns key presses into an arithmetic expression and evaluates it.
Use it interactively, from scripts, over HTTP or as MCP tools.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("config")
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}

		flags := cmd.Flags()
		if flags.Changed("log-level") {
			loaded.Log.Level, _ = flags.GetString("log-level")
		}
		if flags.Changed("log-json") {
			loaded.Log.JSON, _ = flags.GetBool("log-json")
		}
		if flags.Changed("precision") {
			loaded.Display.Precision, _ = flags.GetInt("precision")
		}
		if flags.Changed("store") {
			loaded.Store.Driver, _ = flags.GetString("store")
		}
		if flags.Changed("redis") {
			loaded.Store.Redis.Addr, _ = flags.GetString("redis")
		}
		if err := loaded.Validate(); err != nil {
			return err
		}

		l, err := cli.NewLogger(loaded.Log)
		if err != nil {
			return err
		}
		cfg, logger = loaded, l
		slog.SetDefault(logger)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openStack builds the shared engine and storage for a command.
func openStack(ctx context.Context) (*cli.Stack, error) {
	return cli.NewStack(ctx, cfg, logger)
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Path to a YAML config file (default: ./tally.yaml when present)")
	flags.String("log-level", "info", "Log level: debug, info, warn or error")
	flags.Bool("log-json", false, "Emit logs as JSON lines")
	flags.Int("precision", 6, "Decimal places shown in results (0-15)")
	flags.String("store", config.DriverMemory, "Session store: memory or redis")
	flags.String("redis", "", "Redis address for the redis store")
}
