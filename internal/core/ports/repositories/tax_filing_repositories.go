package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/ledger_posting_engine/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// TaxFilingReader defines read operations for corporate tax filings.
type TaxFilingReader interface {
	FindTaxFilingByID(ctx context.Context, filingID string) (*domain.CorporateTaxFiling, error)
}

// TaxFilingWriter defines write operations for corporate tax filings.
type TaxFilingWriter interface {
	CreateTaxFiling(ctx context.Context, filing domain.CorporateTaxFiling) error
	// FindTaxFilingForUpdate locks the filing row for the duration of tx.
	FindTaxFilingForUpdate(ctx context.Context, tx pgx.Tx, filingID string) (*domain.CorporateTaxFiling, error)
	UpdateTaxFilingStatusInTx(ctx context.Context, tx pgx.Tx, filingID string, status domain.TaxFilingStatus, filedOn *time.Time, userID string, now time.Time) error
}

// TaxFilingRepositoryFacade combines the tax filing interfaces
type TaxFilingRepositoryFacade interface {
	TaxFilingReader
	TaxFilingWriter
}
