package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/ledger_posting_engine/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// CategoryBalanceReader defines read operations for balance records.
type CategoryBalanceReader interface {
	FindBalance(ctx context.Context, categoryID int64) (*domain.CategoryBalance, error)
	ListClosingBalances(ctx context.Context, categoryID int64, from, to time.Time) ([]domain.ClosingBalance, error)
}

// CategoryBalanceWriter defines the transactional write side of the balance ledger.
type CategoryBalanceWriter interface {
	// FindBalanceForUpdate locks the balance row of a category. ErrNotFound when absent.
	FindBalanceForUpdate(ctx context.Context, tx pgx.Tx, categoryID int64) (*domain.CategoryBalance, error)

	// CreateBalanceInTx inserts a balance row unless one already exists for the category.
	CreateBalanceInTx(ctx context.Context, tx pgx.Tx, balance domain.CategoryBalance) error

	// UpdateRunningBalanceInTx writes balance.RunningBalance when the stored version still equals
	// balance.Version and bumps the version. ErrConflict when the version moved.
	UpdateRunningBalanceInTx(ctx context.Context, tx pgx.Tx, balance domain.CategoryBalance) error

	FindClosingBalanceOnDate(ctx context.Context, tx pgx.Tx, categoryID int64, date time.Time) (*domain.ClosingBalance, error)
	FindLastClosingBalanceBefore(ctx context.Context, tx pgx.Tx, categoryID int64, date time.Time) (*domain.ClosingBalance, error)
	CreateClosingBalanceInTx(ctx context.Context, tx pgx.Tx, closing domain.ClosingBalance) error
	UpdateClosingBalanceInTx(ctx context.Context, tx pgx.Tx, closing domain.ClosingBalance) error

	// ShiftClosingBalancesAfter adds delta to the opening and closing of every snapshot dated after date.
	ShiftClosingBalancesAfter(ctx context.Context, tx pgx.Tx, categoryID int64, date time.Time, delta decimal.Decimal, userID string, now time.Time) error

	// DeleteBalancesByCategoryInTx flags the balance row and all closing snapshots of a category deleted.
	DeleteBalancesByCategoryInTx(ctx context.Context, tx pgx.Tx, categoryID int64, userID string, now time.Time) error
}

// CategoryBalanceRepositoryFacade combines the balance interfaces
type CategoryBalanceRepositoryFacade interface {
	CategoryBalanceReader
	CategoryBalanceWriter
}
