package services

import (
	"context"
	"time"

	"github.com/SscSPs/ledger_posting_engine/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// PostingLocker serializes work on a single key across processes.
type PostingLocker interface {
	WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) error
}

// CurrencyResolver answers "how many base-currency units is one unit of this currency".
type CurrencyResolver interface {
	// RateFor returns 1 for the base currency and when no rate is configured.
	RateFor(ctx context.Context, currencyCode string, asOf time.Time) (decimal.Decimal, error)
	BaseCurrency() string
}

// JournalBuilder turns business events into balanced, unsaved journals.
type JournalBuilder interface {
	Build(ctx context.Context, event domain.PostingEvent, userID string) (*domain.Journal, error)
}

// ReversalGenerator reverses every active line of a reference inside tx.
type ReversalGenerator interface {
	// Reverse returns *apperrors.ReversalNotFoundError when nothing is active.
	Reverse(ctx context.Context, tx pgx.Tx, ref domain.PostingReference, reverseType domain.PostingReferenceType, userID string) (*domain.Journal, error)
}

// BalanceLedger maintains running balances and daily closing snapshots.
type BalanceLedger interface {
	ApplyPosting(ctx context.Context, tx pgx.Tx, categoryID int64, signedDelta decimal.Decimal, date time.Time, userID string) error
	ApplyJournal(ctx context.Context, tx pgx.Tx, journal domain.Journal, userID string) error
	DeleteBalances(ctx context.Context, tx pgx.Tx, categoryID int64, userID string) error
	OpeningBalanceFor(ctx context.Context, categoryID int64, userID string) (*domain.CategoryBalance, error)
	ClosingBalances(ctx context.Context, categoryID int64, from, to time.Time) ([]domain.ClosingBalance, error)
	Reconcile(ctx context.Context, categoryID int64) (domain.ReconciliationResult, error)
}

// BuildFunc produces the journal for a transition. A nil journal means there is nothing to post.
type BuildFunc func(ctx context.Context) (*domain.Journal, error)

// TransitionResult describes what a posting transition did.
type TransitionResult struct {
	Reference domain.PostingReference
	From      domain.PostingState
	To        domain.PostingState
	Reversal  *domain.Journal
	Posted    *domain.Journal
}

// PostingSvc is the posting orchestrator: the only component that writes journals and balances.
type PostingSvc interface {
	// PostJournal persists an externally built journal. Posting the same journal id twice is a no-op.
	PostJournal(ctx context.Context, journal domain.Journal) (*domain.Journal, error)

	// Reverse reverses all active lines of a reference with its reverse variant.
	// It returns a nil journal when there is nothing to reverse.
	Reverse(ctx context.Context, ref domain.PostingReference, userID string) (*domain.Journal, error)

	// State derives the posting state of a reference from its line items.
	State(ctx context.Context, ref domain.PostingReference) (domain.PostingState, error)

	Post(ctx context.Context, ref domain.PostingReference, userID string, build BuildFunc) (*TransitionResult, error)
	Repost(ctx context.Context, ref domain.PostingReference, reverseType domain.PostingReferenceType, userID string, build BuildFunc) (*TransitionResult, error)
	Void(ctx context.Context, ref domain.PostingReference, deleteType domain.PostingReferenceType, userID string) (*TransitionResult, error)

	PostInTx(ctx context.Context, tx pgx.Tx, ref domain.PostingReference, userID string, build BuildFunc) (*TransitionResult, error)
	RepostInTx(ctx context.Context, tx pgx.Tx, ref domain.PostingReference, reverseType domain.PostingReferenceType, userID string, build BuildFunc) (*TransitionResult, error)
	VoidInTx(ctx context.Context, tx pgx.Tx, ref domain.PostingReference, deleteType domain.PostingReferenceType, userID string) (*TransitionResult, error)

	// RunInTx runs fn in a new transaction, committing when fn returns nil.
	RunInTx(ctx context.Context, fn func(ctx context.Context, tx pgx.Tx) error) error

	// Atomically runs fn under the reference lock and inside one transaction.
	Atomically(ctx context.Context, ref domain.PostingReference, fn func(ctx context.Context, tx pgx.Tx) error) error
}
