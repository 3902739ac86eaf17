package services

import (
	"context"
	"time"

	"github.com/SscSPs/ledger_posting_engine/internal/core/domain"
	"github.com/SscSPs/ledger_posting_engine/internal/dto"
	"github.com/shopspring/decimal"
)

// ExchangeRateReaderSvc defines read operations for exchange rate data
type ExchangeRateReaderSvc interface {
	// GetExchangeRate retrieves the latest rate between two currencies effective on asOf.
	GetExchangeRate(ctx context.Context, fromCode, toCode string, asOf time.Time) (*domain.ExchangeRate, error)

	// ResolveRate returns the rate the posting engine applies for a currency.
	ResolveRate(ctx context.Context, currencyCode string, asOf time.Time) (decimal.Decimal, error)
}

// ExchangeRateWriterSvc defines write operations for exchange rate data
type ExchangeRateWriterSvc interface {
	// CreateExchangeRate persists a new exchange rate.
	CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest, creatorUserID string) (*domain.ExchangeRate, error)
}

// ExchangeRateSvcFacade combines all exchange rate-related service interfaces
type ExchangeRateSvcFacade interface {
	ExchangeRateReaderSvc
	ExchangeRateWriterSvc
	BaseCurrency() string
}
