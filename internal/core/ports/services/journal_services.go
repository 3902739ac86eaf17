package services

import (
	"context"

	"github.com/SscSPs/ledger_posting_engine/internal/core/domain"
	"github.com/SscSPs/ledger_posting_engine/internal/dto"
)

// JournalReaderSvc defines read operations for journal data
type JournalReaderSvc interface {
	// GetJournalByID retrieves a specific journal by its ID.
	GetJournalByID(ctx context.Context, journalID string) (*domain.Journal, error)

	// ListLineItemsByCategory pages through the non-deleted lines of a category.
	ListLineItemsByCategory(ctx context.Context, categoryID int64, params dto.ListLineItemsParams) (*dto.ListLineItemsResponse, error)

	// GetPostingState derives the ledger state of a business reference.
	GetPostingState(ctx context.Context, ref domain.PostingReference) (domain.PostingState, error)
}

// JournalWriterSvc defines write operations for journal data
type JournalWriterSvc interface {
	// PostManualJournal validates and posts a hand-entered journal.
	PostManualJournal(ctx context.Context, req dto.PostJournalRequest, userID string) (*domain.Journal, error)

	// ReverseReference reverses every active line of a reference.
	ReverseReference(ctx context.Context, ref domain.PostingReference, userID string) (*domain.Journal, error)

	// Preview builds the journal for an event without persisting it.
	Preview(ctx context.Context, event domain.PostingEvent, userID string) (*domain.Journal, error)
}

// JournalSvcFacade combines all journal-related service interfaces
type JournalSvcFacade interface {
	JournalReaderSvc
	JournalWriterSvc
}
