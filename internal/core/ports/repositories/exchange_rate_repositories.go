package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/ledger_posting_engine/internal/core/domain"
)

// ExchangeRateReader defines read operations for exchange rates.
type ExchangeRateReader interface {
	// FindExchangeRate returns the latest from->to rate effective on or before asOf. ErrNotFound when none.
	FindExchangeRate(ctx context.Context, fromCurrency, toCurrency string, asOf time.Time) (*domain.ExchangeRate, error)
}

// ExchangeRateWriter defines write operations for exchange rates.
type ExchangeRateWriter interface {
	SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error
}

// ExchangeRateRepositoryFacade combines all exchange rate-related repository interfaces
type ExchangeRateRepositoryFacade interface {
	ExchangeRateReader
	ExchangeRateWriter
}
