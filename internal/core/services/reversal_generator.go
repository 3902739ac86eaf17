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

// ReversalGenerator cancels every active line of a reference with an exact mirror image
// and flags the original journals deleted.
type ReversalGenerator struct {
	BaseService
	journalRepo portsrepo.JournalWriter
}

// NewReversalGenerator creates a ReversalGenerator.
func NewReversalGenerator(journalRepo portsrepo.JournalWriter, opts ...Option) *ReversalGenerator {
	g := &ReversalGenerator{
		BaseService: newBaseService(),
		journalRepo: journalRepo,
	}
	applyOptions(&g.BaseService, opts)
	return g
}

var _ portssvc.ReversalGenerator = (*ReversalGenerator)(nil)

// Reverse persists the reversal journal and returns it. The caller applies its balances.
func (g *ReversalGenerator) Reverse(ctx context.Context, tx pgx.Tx, ref domain.PostingReference, reverseType domain.PostingReferenceType, userID string) (*domain.Journal, error) {
	lines, err := g.journalRepo.FindActiveLineItemsByReferenceForUpdate(ctx, tx, ref)
	if err != nil {
		return nil, fmt.Errorf("failed to lock line items of %s: %w", ref, err)
	}
	if len(lines) == 0 {
		return nil, &apperrors.ReversalNotFoundError{ReferenceType: string(ref.Type), ReferenceID: ref.ID}
	}

	now := g.Now()
	reversal := domain.Journal{
		JournalID:            g.NewID(),
		JournalDate:          domain.TruncateToDay(now),
		PostingReferenceType: reverseType,
		Description:          fmt.Sprintf("Reversal of %s", ref),
		AuditFields:          domain.NewAuditFields(userID, now),
	}
	reversal.LineItems = accounting.MirrorLineItems(lines, reversal.JournalID, reverseType, userID, now, g.NewID)
	if err := accounting.ValidateJournalBalance(reversal); err != nil {
		return nil, err
	}

	if _, err := g.journalRepo.InsertJournalInTx(ctx, tx, reversal); err != nil {
		return nil, fmt.Errorf("failed to insert reversal journal for %s: %w", ref, err)
	}

	originals := distinctJournalIDs(lines)
	if err := g.journalRepo.MarkJournalsDeletedInTx(ctx, tx, originals, userID, now); err != nil {
		return nil, fmt.Errorf("failed to flag reversed journals of %s: %w", ref, err)
	}

	g.LogInfo(ctx, "Reversed reference",
		slog.String("reference_type", string(ref.Type)),
		slog.String("reference_id", ref.ID),
		slog.String("reverse_type", string(reverseType)),
		slog.String("journal_id", reversal.JournalID),
		slog.Int("reversed_journals", len(originals)))
	return &reversal, nil
}

func distinctJournalIDs(lines []domain.JournalLineItem) []string {
	seen := make(map[string]struct{}, len(lines))
	ids := make([]string, 0, len(lines))
	for _, li := range lines {
		if _, ok := seen[li.JournalID]; ok {
			continue
		}
		seen[li.JournalID] = struct{}{}
		ids = append(ids, li.JournalID)
	}
	return ids
}
