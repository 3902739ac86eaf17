package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/ledger_posting_engine/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// JournalReader defines read operations over persisted journals and line items.
type JournalReader interface {
	// FindJournalByID retrieves a journal together with its line items.
	FindJournalByID(ctx context.Context, journalID string) (*domain.Journal, error)

	// ListLineItemsByCategory pages through non-deleted line items of a category whose journal
	// date falls in [from, to]. It returns the items and a token for the next page.
	ListLineItemsByCategory(ctx context.Context, categoryID int64, from, to time.Time, limit int, nextToken *string) ([]domain.JournalLineItem, *string, error)

	// SumActiveLineItemsByCategory returns Σ(debit - credit) over non-deleted lines of a category,
	// skipping lines tagged with any of excludeTypes.
	SumActiveLineItemsByCategory(ctx context.Context, categoryID int64, excludeTypes []domain.PostingReferenceType) (decimal.Decimal, error)

	// CountLineItemsByReference counts the active and deleted lines recorded for a reference.
	CountLineItemsByReference(ctx context.Context, ref domain.PostingReference) (active int, deleted int, err error)
}

// JournalWriter defines the transactional write side used by the posting engine.
type JournalWriter interface {
	// InsertJournalInTx persists a journal and its lines. It reports false when a journal
	// with the same id already exists, in which case nothing is written.
	InsertJournalInTx(ctx context.Context, tx pgx.Tx, journal domain.Journal) (bool, error)

	// FindActiveLineItemsByReferenceForUpdate locks and returns the non-deleted lines of a reference.
	FindActiveLineItemsByReferenceForUpdate(ctx context.Context, tx pgx.Tx, ref domain.PostingReference) ([]domain.JournalLineItem, error)

	// MarkJournalsDeletedInTx flags the journals and every line they own as deleted.
	MarkJournalsDeletedInTx(ctx context.Context, tx pgx.Tx, journalIDs []string, userID string, now time.Time) error

	// CountLineItemsByReferenceInTx is CountLineItemsByReference inside a transaction.
	CountLineItemsByReferenceInTx(ctx context.Context, tx pgx.Tx, ref domain.PostingReference) (active int, deleted int, err error)
}

// JournalRepositoryFacade combines all journal-related repository interfaces
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
}

// JournalRepositoryWithTx extends JournalRepositoryFacade with transaction capabilities
type JournalRepositoryWithTx interface {
	JournalRepositoryFacade
	TransactionManager
}
