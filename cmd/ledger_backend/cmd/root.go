// Package cmd provides the commands of the ledger backend binary.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/SscSPs/ledger_posting_engine/internal/platform/config"
	"github.com/spf13/cobra"
)

var (
	debug bool

	cfg    *config.Config
	logger *slog.Logger
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "ledger_backend",
	Short: "Double-entry ledger posting engine",
	Long: `ledger_backend posts balanced journals for bank accounts, corporate tax
filings, receipts and payments, and keeps per-category running and daily
closing balances in PostgreSQL.

Configuration is read from the environment and an optional .env file.

Example:
  ledger_backend serve
  ledger_backend migrate up
  ledger_backend reconcile 1001 1002`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logLevel := slog.LevelInfo
		if debug {
			logLevel = slog.LevelDebug
		}
		logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
		slog.SetDefault(logger)

		loaded, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		return nil
	},
}

// Execute adds all child commands to the root command and runs it.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(reconcileCmd)
}
