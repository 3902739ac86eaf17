package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/ledger_posting_engine/internal/apperrors"
	"github.com/SscSPs/ledger_posting_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_posting_engine/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_posting_engine/internal/core/ports/services"
	"github.com/SscSPs/ledger_posting_engine/internal/dto"
	"github.com/shopspring/decimal"
)

const (
	defaultLineItemLimit = 50
	maxLineItemLimit     = 500
)

// Bank accounts, tax filings and settlements own their postings and reverse them through their own flows.
var standaloneReversible = map[domain.PostingReferenceType]bool{
	domain.RefManual:  true,
	domain.RefReceipt: true,
	domain.RefPayment: true,
}

type journalService struct {
	BaseService
	journalRepo portsrepo.JournalReader
	posting     portssvc.PostingSvc
	builder     portssvc.JournalBuilder
}

// NewJournalService creates the journal read side, manual posting and preview service.
func NewJournalService(journalRepo portsrepo.JournalReader, posting portssvc.PostingSvc, builder portssvc.JournalBuilder, opts ...Option) portssvc.JournalSvcFacade {
	s := &journalService{
		BaseService: newBaseService(),
		journalRepo: journalRepo,
		posting:     posting,
		builder:     builder,
	}
	applyOptions(&s.BaseService, opts)
	return s
}

func (s *journalService) GetJournalByID(ctx context.Context, journalID string) (*domain.Journal, error) {
	journal, err := s.journalRepo.FindJournalByID(ctx, journalID)
	if err != nil {
		return nil, err
	}
	return journal, nil
}

// ListLineItemsByCategory pages through a category's active line items.
func (s *journalService) ListLineItemsByCategory(ctx context.Context, categoryID int64, params dto.ListLineItemsParams) (*dto.ListLineItemsResponse, error) {
	if !params.To.IsZero() && params.To.Before(params.From) {
		return nil, apperrors.NewValidationError("'to' date must not be before 'from' date")
	}
	limit := params.Limit
	if limit <= 0 {
		limit = defaultLineItemLimit
	}
	if limit > maxLineItemLimit {
		limit = maxLineItemLimit
	}

	items, nextToken, err := s.journalRepo.ListLineItemsByCategory(ctx, categoryID, params.From, params.To, limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list line items", slog.Int64("category_id", categoryID))
		return nil, fmt.Errorf("failed to list line items: %w", err)
	}
	return &dto.ListLineItemsResponse{
		LineItems: dto.ToLineItemResponses(items),
		NextToken: nextToken,
	}, nil
}

func (s *journalService) GetPostingState(ctx context.Context, ref domain.PostingReference) (domain.PostingState, error) {
	return s.posting.State(ctx, ref)
}

// PostManualJournal posts a hand-entered balanced journal. Resubmitting the same journal id
// returns the journal already on file.
func (s *journalService) PostManualJournal(ctx context.Context, req dto.PostJournalRequest, userID string) (*domain.Journal, error) {
	now := s.Now()
	journalID := req.JournalID
	if journalID == "" {
		journalID = s.NewID()
	}
	referenceID := req.ReferenceID
	if referenceID == "" {
		referenceID = journalID
	}

	journal := domain.Journal{
		JournalID:            journalID,
		JournalDate:          domain.TruncateToDay(req.JournalDate),
		TransactionDate:      req.TransactionDate,
		PostingReferenceType: domain.RefManual,
		JournalReferenceNo:   req.JournalReferenceNo,
		Description:          req.Description,
		AuditFields:          domain.NewAuditFields(userID, now),
	}
	journal.LineItems = make([]domain.JournalLineItem, 0, len(req.Lines))
	for _, line := range req.Lines {
		rate := line.ExchangeRate
		if rate.IsZero() {
			rate = decimal.NewFromInt(1)
		}
		journal.LineItems = append(journal.LineItems, domain.JournalLineItem{
			LineItemID:            s.NewID(),
			JournalID:             journalID,
			TransactionCategoryID: line.TransactionCategoryID,
			DebitAmount:           line.DebitAmount,
			CreditAmount:          line.CreditAmount,
			ReferenceType:         domain.RefManual,
			ReferenceID:           referenceID,
			ExchangeRate:          rate,
			AuditFields:           domain.NewAuditFields(userID, now),
		})
	}

	return s.posting.PostJournal(ctx, journal)
}

func (s *journalService) ReverseReference(ctx context.Context, ref domain.PostingReference, userID string) (*domain.Journal, error) {
	if !standaloneReversible[ref.Type] {
		return nil, apperrors.NewValidationError(fmt.Sprintf("%s references must be reversed through their own endpoint", ref.Type))
	}
	return s.posting.Reverse(ctx, ref, userID)
}

// Preview builds the journal an event would post, without writing anything.
func (s *journalService) Preview(ctx context.Context, event domain.PostingEvent, userID string) (*domain.Journal, error) {
	if event == nil {
		return nil, apperrors.NewValidationError("exactly one event must be supplied")
	}
	return s.builder.Build(ctx, event, userID)
}
