package cmd

import (
	"log/slog"

	"github.com/SscSPs/ledger_posting_engine/pkg/database"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:       "migrate [up|down]",
	Short:     "Apply or roll back database migrations",
	Long:      "Apply all pending migrations (up) or roll back the most recent one (down).",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{string(database.MigrateUp), string(database.MigrateDown)},
	RunE: func(cmd *cobra.Command, args []string) error {
		direction := database.MigrationDirection(args[0])
		logger.Info("Running database migrations", slog.String("direction", string(direction)), slog.String("path", cfg.MigrationsPath))
		return database.Migrate(cfg.DatabaseURL, cfg.MigrationsPath, direction, logger)
	},
}
