package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/ledger_posting_engine/internal/apperrors"
	"github.com/SscSPs/ledger_posting_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_posting_engine/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_posting_engine/internal/core/ports/services"
	"github.com/SscSPs/ledger_posting_engine/internal/utils/accounting"
	"github.com/jackc/pgx/v5"
)

// postingLockPrefix namespaces posting locks in a shared Redis.
const postingLockPrefix = "ledger:posting:"

// PostingOrchestrator drives every business reference through
// NONE -> POSTED -> REVERSED_REPOSTED -> REVERSED. It is the only writer of journals and balances.
type PostingOrchestrator struct {
	BaseService
	txManager   portsrepo.TransactionManager
	journalRepo portsrepo.JournalRepositoryFacade
	reverser    portssvc.ReversalGenerator
	ledger      portssvc.BalanceLedger
	locker      portssvc.PostingLocker
}

// PostingOption configures a PostingOrchestrator.
type PostingOption func(*PostingOrchestrator)

// WithPostingLocker serializes transitions of the same reference through locker.
func WithPostingLocker(locker portssvc.PostingLocker) PostingOption {
	return func(o *PostingOrchestrator) {
		if locker != nil {
			o.locker = locker
		}
	}
}

// WithPostingBaseOptions applies the shared clock and id options.
func WithPostingBaseOptions(opts ...Option) PostingOption {
	return func(o *PostingOrchestrator) {
		applyOptions(&o.BaseService, opts)
	}
}

// NewPostingOrchestrator creates a PostingOrchestrator. Without a locker, transitions rely on
// row locks alone.
func NewPostingOrchestrator(
	txManager portsrepo.TransactionManager,
	journalRepo portsrepo.JournalRepositoryFacade,
	reverser portssvc.ReversalGenerator,
	ledger portssvc.BalanceLedger,
	opts ...PostingOption,
) *PostingOrchestrator {
	o := &PostingOrchestrator{
		BaseService: newBaseService(),
		txManager:   txManager,
		journalRepo: journalRepo,
		reverser:    reverser,
		ledger:      ledger,
		locker:      noopLocker{},
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

var _ portssvc.PostingSvc = (*PostingOrchestrator)(nil)

type noopLocker struct{}

func (noopLocker) WithLock(ctx context.Context, _ string, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// RunInTx begins a transaction, runs fn and commits. Any error rolls everything back.
func (o *PostingOrchestrator) RunInTx(ctx context.Context, fn func(ctx context.Context, tx pgx.Tx) error) error {
	tx, err := o.txManager.Begin(ctx)
	if err != nil {
		return err
	}
	// Rollback after a successful commit is a no-op
	defer func() { _ = o.txManager.Rollback(ctx, tx) }()

	if err := fn(ctx, tx); err != nil {
		return err
	}
	return o.txManager.Commit(ctx, tx)
}

// Atomically runs fn under the lock of ref, inside a single transaction.
func (o *PostingOrchestrator) Atomically(ctx context.Context, ref domain.PostingReference, fn func(ctx context.Context, tx pgx.Tx) error) error {
	return o.locker.WithLock(ctx, postingLockPrefix+ref.String(), func(ctx context.Context) error {
		return o.RunInTx(ctx, fn)
	})
}

// Post moves a reference from NONE (or REVERSED for re-postable types) to POSTED.
func (o *PostingOrchestrator) Post(ctx context.Context, ref domain.PostingReference, userID string, build portssvc.BuildFunc) (*portssvc.TransitionResult, error) {
	var result *portssvc.TransitionResult
	err := o.Atomically(ctx, ref, func(ctx context.Context, tx pgx.Tx) error {
		var err error
		result, err = o.PostInTx(ctx, tx, ref, userID, build)
		return err
	})
	if err != nil {
		return nil, err
	}
	o.logTransition(ctx, result)
	return result, nil
}

// Repost reverses the active lines of a reference and posts a fresh journal for it.
func (o *PostingOrchestrator) Repost(ctx context.Context, ref domain.PostingReference, reverseType domain.PostingReferenceType, userID string, build portssvc.BuildFunc) (*portssvc.TransitionResult, error) {
	var result *portssvc.TransitionResult
	err := o.Atomically(ctx, ref, func(ctx context.Context, tx pgx.Tx) error {
		var err error
		result, err = o.RepostInTx(ctx, tx, ref, reverseType, userID, build)
		return err
	})
	if err != nil {
		return nil, err
	}
	o.logTransition(ctx, result)
	return result, nil
}

// Void reverses the active lines of a reference for good.
func (o *PostingOrchestrator) Void(ctx context.Context, ref domain.PostingReference, deleteType domain.PostingReferenceType, userID string) (*portssvc.TransitionResult, error) {
	var result *portssvc.TransitionResult
	err := o.Atomically(ctx, ref, func(ctx context.Context, tx pgx.Tx) error {
		var err error
		result, err = o.VoidInTx(ctx, tx, ref, deleteType, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	o.logTransition(ctx, result)
	return result, nil
}

// PostInTx is Post inside the caller's transaction.
func (o *PostingOrchestrator) PostInTx(ctx context.Context, tx pgx.Tx, ref domain.PostingReference, userID string, build portssvc.BuildFunc) (*portssvc.TransitionResult, error) {
	from, err := o.stateInTx(ctx, tx, ref)
	if err != nil {
		return nil, err
	}
	if from != domain.StateNone && !(from == domain.StateReversed && ref.Type.Repostable()) {
		return nil, apperrors.NewConflictError(fmt.Sprintf("%s is %s and cannot be posted", ref, from))
	}

	result := &portssvc.TransitionResult{Reference: ref, From: from, To: from}
	posted, err := o.buildAndPost(ctx, tx, ref, userID, build)
	if err != nil {
		return nil, err
	}
	if posted != nil {
		result.Posted = posted
		// A refiled reference keeps its deleted lines, so it derives as REVERSED_REPOSTED
		result.To = domain.StatePosted
		if from == domain.StateReversed {
			result.To = domain.StateReversedReposted
		}
	}
	return result, nil
}

// RepostInTx is Repost inside the caller's transaction. From NONE it behaves as PostInTx.
func (o *PostingOrchestrator) RepostInTx(ctx context.Context, tx pgx.Tx, ref domain.PostingReference, reverseType domain.PostingReferenceType, userID string, build portssvc.BuildFunc) (*portssvc.TransitionResult, error) {
	from, err := o.stateInTx(ctx, tx, ref)
	if err != nil {
		return nil, err
	}
	switch from {
	case domain.StateNone:
		return o.PostInTx(ctx, tx, ref, userID, build)
	case domain.StateReversed:
		if ref.Type.Repostable() {
			return o.PostInTx(ctx, tx, ref, userID, build)
		}
		return nil, apperrors.NewConflictError(fmt.Sprintf("%s is %s and cannot be reposted", ref, from))
	}

	result := &portssvc.TransitionResult{Reference: ref, From: from}
	reversal, err := o.reverseInTx(ctx, tx, ref, reverseType, userID)
	if err != nil {
		return nil, err
	}
	result.Reversal = reversal
	result.To = domain.StateReversed

	posted, err := o.buildAndPost(ctx, tx, ref, userID, build)
	if err != nil {
		return nil, err
	}
	if posted != nil {
		result.Posted = posted
		result.To = domain.StateReversedReposted
	}
	return result, nil
}

// VoidInTx is Void inside the caller's transaction. A reference with nothing active is left as is.
func (o *PostingOrchestrator) VoidInTx(ctx context.Context, tx pgx.Tx, ref domain.PostingReference, deleteType domain.PostingReferenceType, userID string) (*portssvc.TransitionResult, error) {
	from, err := o.stateInTx(ctx, tx, ref)
	if err != nil {
		return nil, err
	}
	result := &portssvc.TransitionResult{Reference: ref, From: from, To: from}
	if from == domain.StateNone || from == domain.StateReversed {
		return result, nil
	}

	reversal, err := o.reverseInTx(ctx, tx, ref, deleteType, userID)
	if err != nil {
		return nil, err
	}
	result.Reversal = reversal
	result.To = domain.StateReversed
	return result, nil
}

// PostJournal persists an externally built journal exactly once per journal id.
func (o *PostingOrchestrator) PostJournal(ctx context.Context, journal domain.Journal) (*domain.Journal, error) {
	if journal.JournalID == "" {
		return nil, apperrors.NewPostingError("journal has no id", nil)
	}
	if err := accounting.ValidateJournalBalance(journal); err != nil {
		return nil, err
	}

	inserted := false
	err := o.RunInTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		var err error
		inserted, err = o.journalRepo.InsertJournalInTx(ctx, tx, journal)
		if err != nil {
			return fmt.Errorf("failed to insert journal %s: %w", journal.JournalID, err)
		}
		if !inserted {
			return nil
		}
		return o.ledger.ApplyJournal(ctx, tx, journal, journal.CreatedBy)
	})
	if err != nil {
		o.LogError(ctx, err, "Failed to post journal", slog.String("journal_id", journal.JournalID))
		return nil, err
	}

	if !inserted {
		o.LogInfo(ctx, "Journal already posted", slog.String("journal_id", journal.JournalID))
		return o.journalRepo.FindJournalByID(ctx, journal.JournalID)
	}
	o.LogInfo(ctx, "Journal posted",
		slog.String("journal_id", journal.JournalID),
		slog.String("reference_type", string(journal.PostingReferenceType)))
	return &journal, nil
}

// Reverse reverses a reference with its reverse variant. Nothing to reverse is not an error.
func (o *PostingOrchestrator) Reverse(ctx context.Context, ref domain.PostingReference, userID string) (*domain.Journal, error) {
	reverseType, err := ref.Type.ReverseVariant()
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	var reversal *domain.Journal
	err = o.Atomically(ctx, ref, func(ctx context.Context, tx pgx.Tx) error {
		var err error
		reversal, err = o.reverseInTx(ctx, tx, ref, reverseType, userID)
		return err
	})
	if err != nil {
		if apperrors.IsReversalNotFound(err) {
			o.LogDebug(ctx, "Nothing to reverse", slog.String("reference", ref.String()))
			return nil, nil
		}
		return nil, err
	}
	return reversal, nil
}

// State derives the posting state of ref.
func (o *PostingOrchestrator) State(ctx context.Context, ref domain.PostingReference) (domain.PostingState, error) {
	active, deleted, err := o.journalRepo.CountLineItemsByReference(ctx, ref)
	if err != nil {
		return "", fmt.Errorf("failed to count line items of %s: %w", ref, err)
	}
	return domain.DeriveState(active, deleted), nil
}

func (o *PostingOrchestrator) stateInTx(ctx context.Context, tx pgx.Tx, ref domain.PostingReference) (domain.PostingState, error) {
	active, deleted, err := o.journalRepo.CountLineItemsByReferenceInTx(ctx, tx, ref)
	if err != nil {
		return "", fmt.Errorf("failed to count line items of %s: %w", ref, err)
	}
	return domain.DeriveState(active, deleted), nil
}

// reverseInTx persists the reversal journal and applies its balances.
func (o *PostingOrchestrator) reverseInTx(ctx context.Context, tx pgx.Tx, ref domain.PostingReference, reverseType domain.PostingReferenceType, userID string) (*domain.Journal, error) {
	reversal, err := o.reverser.Reverse(ctx, tx, ref, reverseType, userID)
	if err != nil {
		return nil, err
	}
	if err := o.ledger.ApplyJournal(ctx, tx, *reversal, userID); err != nil {
		return nil, err
	}
	return reversal, nil
}

func (o *PostingOrchestrator) buildAndPost(ctx context.Context, tx pgx.Tx, ref domain.PostingReference, userID string, build portssvc.BuildFunc) (*domain.Journal, error) {
	if build == nil {
		return nil, nil
	}
	journal, err := build(ctx)
	if err != nil {
		return nil, err
	}
	if journal == nil {
		return nil, nil
	}

	for _, li := range journal.LineItems {
		if li.ReferenceType != ref.Type || li.ReferenceID != ref.ID {
			return nil, apperrors.NewPostingError(fmt.Sprintf("line %s belongs to %s:%s, not %s", li.LineItemID, li.ReferenceType, li.ReferenceID, ref), nil)
		}
	}
	if err := accounting.ValidateJournalBalance(*journal); err != nil {
		return nil, err
	}

	inserted, err := o.journalRepo.InsertJournalInTx(ctx, tx, *journal)
	if err != nil {
		return nil, fmt.Errorf("failed to insert journal for %s: %w", ref, err)
	}
	if !inserted {
		return nil, fmt.Errorf("%w: journal %s already exists", apperrors.ErrDuplicate, journal.JournalID)
	}
	if err := o.ledger.ApplyJournal(ctx, tx, *journal, userID); err != nil {
		return nil, err
	}
	return journal, nil
}

func (o *PostingOrchestrator) logTransition(ctx context.Context, result *portssvc.TransitionResult) {
	attrs := []any{
		slog.String("reference_type", string(result.Reference.Type)),
		slog.String("reference_id", result.Reference.ID),
		slog.String("from_state", string(result.From)),
		slog.String("to_state", string(result.To)),
	}
	if result.Reversal != nil {
		attrs = append(attrs, slog.String("reversal_journal_id", result.Reversal.JournalID))
	}
	if result.Posted != nil {
		attrs = append(attrs, slog.String("posted_journal_id", result.Posted.JournalID))
	}
	o.LogInfo(ctx, "Posting transition", attrs...)
}
