package services

import (
	"context"
	"time"

	"github.com/SscSPs/ledger_posting_engine/internal/core/domain"
	"github.com/SscSPs/ledger_posting_engine/internal/dto"
)

// TaxFilingReaderSvc defines read operations for tax filings
type TaxFilingReaderSvc interface {
	GetTaxFiling(ctx context.Context, filingID string) (*domain.CorporateTaxFiling, error)
}

// TaxFilingWriterSvc defines the filing lifecycle
type TaxFilingWriterSvc interface {
	CreateTaxFiling(ctx context.Context, req dto.CreateTaxFilingRequest, userID string) (*domain.CorporateTaxFiling, error)
	FileTaxFiling(ctx context.Context, filingID string, filedOn time.Time, userID string) (*domain.CorporateTaxFiling, *domain.Journal, error)
	UnfileTaxFiling(ctx context.Context, filingID string, userID string) (*domain.CorporateTaxFiling, *domain.Journal, error)
}

// TaxFilingSvcFacade combines all tax filing service interfaces
type TaxFilingSvcFacade interface {
	TaxFilingReaderSvc
	TaxFilingWriterSvc
}
