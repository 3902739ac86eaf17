package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/SscSPs/ledger_posting_engine/internal/core/domain"
	"github.com/SscSPs/ledger_posting_engine/internal/core/services"
	"github.com/SscSPs/ledger_posting_engine/internal/repositories/database/pgsql"
	"github.com/SscSPs/ledger_posting_engine/pkg/database"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var reconcileFormat string

var reconcileCmd = &cobra.Command{
	Use:   "reconcile CATEGORY_ID...",
	Short: "Check running balances against the line items",
	Long: `Compare the running balance of each category with the sum of its
active, non-reversal line items. Results are printed as JSON lines, or as one
YAML document with --format yaml; the command fails when any category has
drifted.

Example:
  ledger_backend reconcile 1001 1100
  ledger_backend reconcile --format yaml 1001`,
	Args: cobra.MinimumNArgs(1),
	RunE: runReconcile,
}

func init() {
	reconcileCmd.Flags().StringVar(&reconcileFormat, "format", "json", "output format: json or yaml")
}

func runReconcile(cmd *cobra.Command, args []string) error {
	if reconcileFormat != "json" && reconcileFormat != "yaml" {
		return fmt.Errorf("unsupported format %q", reconcileFormat)
	}
	ids, err := parseCategoryIDs(args)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, true)
	if err != nil {
		return err
	}
	defer database.ClosePgxPool(dbPool)

	container := services.NewServiceContainer(cfg, pgsql.NewRepositoryProvider(dbPool), nil)

	results := make([]domain.ReconciliationResult, 0, len(ids))
	for _, id := range ids {
		result, err := container.Category.ReconcileCategory(ctx, id)
		if err != nil {
			logger.Error("Failed to reconcile category", slog.Int64("category_id", id), slog.String("error", err.Error()))
			return err
		}
		if !result.Consistent {
			logDrift(result)
		}
		results = append(results, result)
	}

	if err := writeReconciliation(cmd.OutOrStdout(), reconcileFormat, results); err != nil {
		return err
	}
	if drifted := countDrifted(results); drifted > 0 {
		return fmt.Errorf("%d of %d categories drifted", drifted, len(results))
	}
	return nil
}

func parseCategoryIDs(args []string) ([]int64, error) {
	ids := make([]int64, 0, len(args))
	for _, arg := range args {
		id, err := strconv.ParseInt(arg, 10, 64)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("invalid category id %q", arg)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func writeReconciliation(w io.Writer, format string, results []domain.ReconciliationResult) error {
	if format == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(results); err != nil {
			return err
		}
		return enc.Close()
	}

	enc := json.NewEncoder(w)
	for _, result := range results {
		if err := enc.Encode(result); err != nil {
			return err
		}
	}
	return nil
}

func countDrifted(results []domain.ReconciliationResult) int {
	n := 0
	for _, result := range results {
		if !result.Consistent {
			n++
		}
	}
	return n
}

func logDrift(result domain.ReconciliationResult) {
	logger.Warn("Category balance drifted",
		slog.Int64("category_id", result.TransactionCategoryID),
		slog.String("running_balance", result.RunningBalance.String()),
		slog.String("ledger_balance", result.LedgerBalance.String()),
		slog.String("difference", result.Difference.String()),
	)
}
