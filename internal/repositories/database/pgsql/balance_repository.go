package pgsql

import (
	"context"
	"strconv"
	"time"

	"github.com/SscSPs/ledger_posting_engine/internal/apperrors"
	"github.com/SscSPs/ledger_posting_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_posting_engine/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_posting_engine/internal/models"
	"github.com/SscSPs/ledger_posting_engine/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const (
	balanceColumns = `
		transaction_category_id, opening_balance, running_balance, effective_date, version,
		delete_flag, created_at, created_by, last_updated_at, last_updated_by`
	closingColumns = `
		closing_balance_id, transaction_category_id, closing_balance_date, opening_balance, closing_balance,
		delete_flag, created_at, created_by, last_updated_at, last_updated_by`
)

// PgxCategoryBalanceRepository stores running balances and daily closing snapshots.
type PgxCategoryBalanceRepository struct {
	BaseRepository
}

func newPgxCategoryBalanceRepository(pool *pgxpool.Pool) *PgxCategoryBalanceRepository {
	return &PgxCategoryBalanceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CategoryBalanceRepositoryFacade = (*PgxCategoryBalanceRepository)(nil)

// FindBalance returns the active balance row of a category.
func (r *PgxCategoryBalanceRepository) FindBalance(ctx context.Context, categoryID int64) (*domain.CategoryBalance, error) {
	row := r.Pool.QueryRow(ctx, `SELECT `+balanceColumns+`
		FROM transaction_category_balances
		WHERE transaction_category_id = $1 AND delete_flag = FALSE;
	`, categoryID)
	return scanBalance(row, categoryID)
}

// FindBalanceForUpdate locks the balance row of a category.
func (r *PgxCategoryBalanceRepository) FindBalanceForUpdate(ctx context.Context, tx pgx.Tx, categoryID int64) (*domain.CategoryBalance, error) {
	row := tx.QueryRow(ctx, `SELECT `+balanceColumns+`
		FROM transaction_category_balances
		WHERE transaction_category_id = $1 AND delete_flag = FALSE
		FOR UPDATE;
	`, categoryID)
	return scanBalance(row, categoryID)
}

// CreateBalanceInTx inserts a balance row unless the category already has one.
// A previously deleted row is revived at zero.
func (r *PgxCategoryBalanceRepository) CreateBalanceInTx(ctx context.Context, tx pgx.Tx, balance domain.CategoryBalance) error {
	m := mapping.ToModelCategoryBalance(balance)
	_, err := tx.Exec(ctx, `
		INSERT INTO transaction_category_balances (
			transaction_category_id, opening_balance, running_balance, effective_date, version,
			delete_flag, created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, FALSE, $6, $7, $8, $9)
		ON CONFLICT (transaction_category_id) DO UPDATE
		SET opening_balance = EXCLUDED.opening_balance,
		    running_balance = EXCLUDED.running_balance,
		    effective_date = EXCLUDED.effective_date,
		    delete_flag = FALSE,
		    version = transaction_category_balances.version + 1,
		    last_updated_at = EXCLUDED.last_updated_at,
		    last_updated_by = EXCLUDED.last_updated_by
		WHERE transaction_category_balances.delete_flag = TRUE;
	`,
		m.TransactionCategoryID,
		m.OpeningBalance,
		m.RunningBalance,
		m.EffectiveDate,
		m.Version,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	return translateError(err, "balance of category "+strconv.FormatInt(balance.TransactionCategoryID, 10))
}

// UpdateRunningBalanceInTx writes the running balance when the stored version still matches.
func (r *PgxCategoryBalanceRepository) UpdateRunningBalanceInTx(ctx context.Context, tx pgx.Tx, balance domain.CategoryBalance) error {
	tag, err := tx.Exec(ctx, `
		UPDATE transaction_category_balances
		SET running_balance = $2, version = version + 1, last_updated_at = $4, last_updated_by = $5
		WHERE transaction_category_id = $1 AND version = $3 AND delete_flag = FALSE;
	`,
		balance.TransactionCategoryID,
		balance.RunningBalance,
		balance.Version,
		balance.LastUpdatedAt,
		balance.LastUpdatedBy,
	)
	if err != nil {
		return translateError(err, "balance")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewConflictError("balance of category " + strconv.FormatInt(balance.TransactionCategoryID, 10) + " was modified concurrently")
	}
	return nil
}

// FindClosingBalanceOnDate returns the snapshot of a category for one day.
func (r *PgxCategoryBalanceRepository) FindClosingBalanceOnDate(ctx context.Context, tx pgx.Tx, categoryID int64, date time.Time) (*domain.ClosingBalance, error) {
	row := tx.QueryRow(ctx, `SELECT `+closingColumns+`
		FROM transaction_category_closing_balances
		WHERE transaction_category_id = $1 AND closing_balance_date = $2 AND delete_flag = FALSE
		FOR UPDATE;
	`, categoryID, domain.TruncateToDay(date))
	return scanClosingBalance(row, categoryID)
}

// FindLastClosingBalanceBefore returns the latest snapshot dated strictly before date.
func (r *PgxCategoryBalanceRepository) FindLastClosingBalanceBefore(ctx context.Context, tx pgx.Tx, categoryID int64, date time.Time) (*domain.ClosingBalance, error) {
	row := tx.QueryRow(ctx, `SELECT `+closingColumns+`
		FROM transaction_category_closing_balances
		WHERE transaction_category_id = $1 AND closing_balance_date < $2 AND delete_flag = FALSE
		ORDER BY closing_balance_date DESC
		LIMIT 1;
	`, categoryID, domain.TruncateToDay(date))
	return scanClosingBalance(row, categoryID)
}

// CreateClosingBalanceInTx inserts a daily snapshot, replacing a deleted one on the same day.
func (r *PgxCategoryBalanceRepository) CreateClosingBalanceInTx(ctx context.Context, tx pgx.Tx, closing domain.ClosingBalance) error {
	m := mapping.ToModelClosingBalance(closing)
	_, err := tx.Exec(ctx, `
		INSERT INTO transaction_category_closing_balances (
			closing_balance_id, transaction_category_id, closing_balance_date, opening_balance, closing_balance,
			delete_flag, created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, FALSE, $6, $7, $8, $9)
		ON CONFLICT (transaction_category_id, closing_balance_date) DO UPDATE
		SET opening_balance = EXCLUDED.opening_balance,
		    closing_balance = EXCLUDED.closing_balance,
		    delete_flag = FALSE,
		    last_updated_at = EXCLUDED.last_updated_at,
		    last_updated_by = EXCLUDED.last_updated_by
		WHERE transaction_category_closing_balances.delete_flag = TRUE;
	`,
		m.ClosingBalanceID,
		m.TransactionCategoryID,
		domain.TruncateToDay(m.ClosingBalanceDate),
		m.OpeningBalance,
		m.ClosingBalance,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	return translateError(err, "closing balance")
}

// UpdateClosingBalanceInTx rewrites the amounts of an existing snapshot.
func (r *PgxCategoryBalanceRepository) UpdateClosingBalanceInTx(ctx context.Context, tx pgx.Tx, closing domain.ClosingBalance) error {
	tag, err := tx.Exec(ctx, `
		UPDATE transaction_category_closing_balances
		SET opening_balance = $2, closing_balance = $3, last_updated_at = $4, last_updated_by = $5
		WHERE closing_balance_id = $1;
	`,
		closing.ClosingBalanceID,
		closing.OpeningBalance,
		closing.ClosingBalance,
		closing.LastUpdatedAt,
		closing.LastUpdatedBy,
	)
	if err != nil {
		return translateError(err, "closing balance")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("closing balance " + closing.ClosingBalanceID + " not found")
	}
	return nil
}

// ShiftClosingBalancesAfter adds delta to every active snapshot dated after date.
func (r *PgxCategoryBalanceRepository) ShiftClosingBalancesAfter(ctx context.Context, tx pgx.Tx, categoryID int64, date time.Time, delta decimal.Decimal, userID string, now time.Time) error {
	_, err := tx.Exec(ctx, `
		UPDATE transaction_category_closing_balances
		SET opening_balance = opening_balance + $3,
		    closing_balance = closing_balance + $3,
		    last_updated_at = $4,
		    last_updated_by = $5
		WHERE transaction_category_id = $1 AND closing_balance_date > $2 AND delete_flag = FALSE;
	`, categoryID, domain.TruncateToDay(date), delta, now, userID)
	return translateError(err, "closing balances")
}

// DeleteBalancesByCategoryInTx flags the balance row and every snapshot of a category deleted.
func (r *PgxCategoryBalanceRepository) DeleteBalancesByCategoryInTx(ctx context.Context, tx pgx.Tx, categoryID int64, userID string, now time.Time) error {
	batch := &pgx.Batch{}
	batch.Queue(`
		UPDATE transaction_category_balances
		SET delete_flag = TRUE, last_updated_at = $2, last_updated_by = $3
		WHERE transaction_category_id = $1 AND delete_flag = FALSE;
	`, categoryID, now, userID)
	batch.Queue(`
		UPDATE transaction_category_closing_balances
		SET delete_flag = TRUE, last_updated_at = $2, last_updated_by = $3
		WHERE transaction_category_id = $1 AND delete_flag = FALSE;
	`, categoryID, now, userID)
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return translateError(err, "balances")
	}
	return nil
}

// ListClosingBalances returns the active snapshots of a category in [from, to], oldest first.
func (r *PgxCategoryBalanceRepository) ListClosingBalances(ctx context.Context, categoryID int64, from, to time.Time) ([]domain.ClosingBalance, error) {
	fromDay, toDay := dateRange(from, to)
	rows, err := r.Pool.Query(ctx, `SELECT `+closingColumns+`
		FROM transaction_category_closing_balances
		WHERE transaction_category_id = $1
		  AND closing_balance_date BETWEEN $2 AND $3
		  AND delete_flag = FALSE
		ORDER BY closing_balance_date;
	`, categoryID, fromDay, toDay)
	if err != nil {
		return nil, translateError(err, "closing balances")
	}
	defer rows.Close()

	snapshots := make([]domain.ClosingBalance, 0)
	for rows.Next() {
		snapshot, err := scanClosingBalance(rows, categoryID)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, *snapshot)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating closing balances", err)
	}
	return snapshots, nil
}

func scanBalance(row pgx.Row, categoryID int64) (*domain.CategoryBalance, error) {
	var m models.CategoryBalance
	err := row.Scan(
		&m.TransactionCategoryID,
		&m.OpeningBalance,
		&m.RunningBalance,
		&m.EffectiveDate,
		&m.Version,
		&m.DeleteFlag,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, translateError(err, "balance of category "+strconv.FormatInt(categoryID, 10))
	}
	balance := mapping.ToDomainCategoryBalance(m)
	return &balance, nil
}

func scanClosingBalance(row pgx.Row, categoryID int64) (*domain.ClosingBalance, error) {
	var m models.ClosingBalance
	err := row.Scan(
		&m.ClosingBalanceID,
		&m.TransactionCategoryID,
		&m.ClosingBalanceDate,
		&m.OpeningBalance,
		&m.ClosingBalance,
		&m.DeleteFlag,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, translateError(err, "closing balance of category "+strconv.FormatInt(categoryID, 10))
	}
	closing := mapping.ToDomainClosingBalance(m)
	return &closing, nil
}
