package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/SscSPs/ledger_posting_engine/internal/apperrors"
	"github.com/SscSPs/ledger_posting_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_posting_engine/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_posting_engine/internal/core/ports/services"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// CategoryBalanceLedger keeps per-category running balances and daily closing snapshots
// in step with posted journals.
type CategoryBalanceLedger struct {
	BaseService
	txManager   portsrepo.TransactionManager
	balanceRepo portsrepo.CategoryBalanceRepositoryFacade
	journalRepo portsrepo.JournalReader
}

// NewCategoryBalanceLedger creates a CategoryBalanceLedger.
func NewCategoryBalanceLedger(txManager portsrepo.TransactionManager, balanceRepo portsrepo.CategoryBalanceRepositoryFacade, journalRepo portsrepo.JournalReader, opts ...Option) *CategoryBalanceLedger {
	l := &CategoryBalanceLedger{
		BaseService: newBaseService(),
		txManager:   txManager,
		balanceRepo: balanceRepo,
		journalRepo: journalRepo,
	}
	applyOptions(&l.BaseService, opts)
	return l
}

var _ portssvc.BalanceLedger = (*CategoryBalanceLedger)(nil)

// ApplyJournal applies the net delta of every category touched by journal, in ascending
// category id order.
func (l *CategoryBalanceLedger) ApplyJournal(ctx context.Context, tx pgx.Tx, journal domain.Journal, userID string) error {
	deltas := journal.CategoryDeltas()
	ids := make([]int64, 0, len(deltas))
	for id := range deltas {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	date := journal.EffectiveDate()
	for _, id := range ids {
		delta := deltas[id]
		if delta.IsZero() {
			continue
		}
		if err := l.ApplyPosting(ctx, tx, id, delta, date, userID); err != nil {
			return err
		}
	}
	return nil
}

// ApplyPosting adds signedDelta (debit minus credit) to the running balance of a category,
// to its closing snapshot for date, and to every later snapshot.
func (l *CategoryBalanceLedger) ApplyPosting(ctx context.Context, tx pgx.Tx, categoryID int64, signedDelta decimal.Decimal, date time.Time, userID string) error {
	now := l.Now()
	day := domain.TruncateToDay(date)

	balance, err := l.lockBalance(ctx, tx, categoryID, day, userID, now)
	if err != nil {
		return err
	}

	balance.RunningBalance = balance.RunningBalance.Add(signedDelta)
	balance.LastUpdatedAt = now
	balance.LastUpdatedBy = userID
	if err := l.balanceRepo.UpdateRunningBalanceInTx(ctx, tx, *balance); err != nil {
		return fmt.Errorf("failed to update running balance of category %d: %w", categoryID, err)
	}

	closing, err := l.balanceRepo.FindClosingBalanceOnDate(ctx, tx, categoryID, day)
	switch {
	case err == nil:
		closing.ClosingBalance = closing.ClosingBalance.Add(signedDelta)
		closing.LastUpdatedAt = now
		closing.LastUpdatedBy = userID
		if err := l.balanceRepo.UpdateClosingBalanceInTx(ctx, tx, *closing); err != nil {
			return fmt.Errorf("failed to update closing balance of category %d: %w", categoryID, err)
		}
	case errors.Is(err, apperrors.ErrNotFound):
		opening := decimal.Zero
		previous, err := l.balanceRepo.FindLastClosingBalanceBefore(ctx, tx, categoryID, day)
		if err == nil {
			opening = previous.ClosingBalance
		} else if !errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("failed to find previous closing balance of category %d: %w", categoryID, err)
		}
		snapshot := domain.ClosingBalance{
			ClosingBalanceID:      l.NewID(),
			TransactionCategoryID: categoryID,
			ClosingBalanceDate:    day,
			OpeningBalance:        opening,
			ClosingBalance:        opening.Add(signedDelta),
			AuditFields:           domain.NewAuditFields(userID, now),
		}
		if err := l.balanceRepo.CreateClosingBalanceInTx(ctx, tx, snapshot); err != nil {
			return fmt.Errorf("failed to create closing balance of category %d: %w", categoryID, err)
		}
	default:
		return fmt.Errorf("failed to find closing balance of category %d: %w", categoryID, err)
	}

	if err := l.balanceRepo.ShiftClosingBalancesAfter(ctx, tx, categoryID, day, signedDelta, userID, now); err != nil {
		return fmt.Errorf("failed to shift later closing balances of category %d: %w", categoryID, err)
	}

	l.LogDebug(ctx, "Applied posting",
		slog.Int64("category_id", categoryID),
		slog.String("delta", signedDelta.String()),
		slog.String("running_balance", balance.RunningBalance.String()))
	return nil
}

// lockBalance locks the balance row of a category, creating a zero row first when absent.
func (l *CategoryBalanceLedger) lockBalance(ctx context.Context, tx pgx.Tx, categoryID int64, day time.Time, userID string, now time.Time) (*domain.CategoryBalance, error) {
	balance, err := l.balanceRepo.FindBalanceForUpdate(ctx, tx, categoryID)
	if err == nil {
		return balance, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to lock balance of category %d: %w", categoryID, err)
	}

	if err := l.balanceRepo.CreateBalanceInTx(ctx, tx, zeroBalance(categoryID, day, userID, now)); err != nil {
		return nil, fmt.Errorf("failed to create balance of category %d: %w", categoryID, err)
	}
	balance, err = l.balanceRepo.FindBalanceForUpdate(ctx, tx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock balance of category %d: %w", categoryID, err)
	}
	return balance, nil
}

// OpeningBalanceFor returns the balance record of a category, creating a zero record when absent.
func (l *CategoryBalanceLedger) OpeningBalanceFor(ctx context.Context, categoryID int64, userID string) (*domain.CategoryBalance, error) {
	balance, err := l.balanceRepo.FindBalance(ctx, categoryID)
	if err == nil {
		return balance, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to find balance of category %d: %w", categoryID, err)
	}

	tx, err := l.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = l.txManager.Rollback(ctx, tx) }()

	now := l.Now()
	balance, err = l.lockBalance(ctx, tx, categoryID, domain.TruncateToDay(now), userID, now)
	if err != nil {
		return nil, err
	}
	if err := l.txManager.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return balance, nil
}

// DeleteBalances flags the balance and closing records of a deleted category.
func (l *CategoryBalanceLedger) DeleteBalances(ctx context.Context, tx pgx.Tx, categoryID int64, userID string) error {
	if err := l.balanceRepo.DeleteBalancesByCategoryInTx(ctx, tx, categoryID, userID, l.Now()); err != nil {
		return fmt.Errorf("failed to delete balances of category %d: %w", categoryID, err)
	}
	return nil
}

// ClosingBalances lists the daily snapshots of a category in [from, to].
func (l *CategoryBalanceLedger) ClosingBalances(ctx context.Context, categoryID int64, from, to time.Time) ([]domain.ClosingBalance, error) {
	if !to.IsZero() && to.Before(from) {
		return nil, apperrors.NewValidationError("'to' date must not be before 'from' date")
	}
	return l.balanceRepo.ListClosingBalances(ctx, categoryID, from, to)
}

// Reconcile compares the running balance with Σ(debit - credit) over the active
// line items of the category, ignoring reversal lines.
func (l *CategoryBalanceLedger) Reconcile(ctx context.Context, categoryID int64) (domain.ReconciliationResult, error) {
	running := decimal.Zero
	balance, err := l.balanceRepo.FindBalance(ctx, categoryID)
	if err == nil {
		running = balance.RunningBalance
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return domain.ReconciliationResult{}, fmt.Errorf("failed to find balance of category %d: %w", categoryID, err)
	}

	ledger, err := l.journalRepo.SumActiveLineItemsByCategory(ctx, categoryID, domain.ReversalTypes())
	if err != nil {
		return domain.ReconciliationResult{}, fmt.Errorf("failed to sum line items of category %d: %w", categoryID, err)
	}

	result := domain.NewReconciliationResult(categoryID, running, ledger)
	if !result.Consistent {
		l.GetLogger(ctx).Warn("Category balance out of step with ledger",
			slog.Int64("category_id", categoryID),
			slog.String("running_balance", running.String()),
			slog.String("ledger_balance", ledger.String()))
	}
	return result, nil
}

func zeroBalance(categoryID int64, day time.Time, userID string, now time.Time) domain.CategoryBalance {
	return domain.CategoryBalance{
		TransactionCategoryID: categoryID,
		OpeningBalance:        decimal.Zero,
		RunningBalance:        decimal.Zero,
		EffectiveDate:         day,
		AuditFields:           domain.NewAuditFields(userID, now),
	}
}
