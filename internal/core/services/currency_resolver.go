package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/ledger_posting_engine/internal/apperrors"
	portsrepo "github.com/SscSPs/ledger_posting_engine/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_posting_engine/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// inverseRateScale is the precision of a rate derived from its opposite pair.
const inverseRateScale int32 = 8

type currencyResolver struct {
	BaseService
	rateRepo     portsrepo.ExchangeRateReader
	baseCurrency string
}

// NewCurrencyResolver creates a resolver converting into baseCurrency.
func NewCurrencyResolver(rateRepo portsrepo.ExchangeRateReader, baseCurrency string) portssvc.CurrencyResolver {
	return &currencyResolver{
		BaseService:  newBaseService(),
		rateRepo:     rateRepo,
		baseCurrency: strings.ToUpper(baseCurrency),
	}
}

func (r *currencyResolver) BaseCurrency() string {
	return r.baseCurrency
}

// RateFor looks up currency->base first, then the inverse of base->currency.
// A missing rate is logged and treated as 1 so the posting goes through.
func (r *currencyResolver) RateFor(ctx context.Context, currencyCode string, asOf time.Time) (decimal.Decimal, error) {
	code := strings.ToUpper(currencyCode)
	if code == "" || code == r.baseCurrency {
		return decimal.NewFromInt(1), nil
	}

	rate, err := r.rateRepo.FindExchangeRate(ctx, code, r.baseCurrency, asOf)
	if err == nil {
		return rate.Rate, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return decimal.Zero, fmt.Errorf("failed to find exchange rate %s->%s: %w", code, r.baseCurrency, err)
	}

	inverse, err := r.rateRepo.FindExchangeRate(ctx, r.baseCurrency, code, asOf)
	if err == nil && inverse.Rate.IsPositive() {
		return decimal.NewFromInt(1).DivRound(inverse.Rate, inverseRateScale), nil
	}
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return decimal.Zero, fmt.Errorf("failed to find exchange rate %s->%s: %w", r.baseCurrency, code, err)
	}

	r.LogWarn(ctx, &apperrors.ExchangeRateUnavailableError{CurrencyCode: code, BaseCurrency: r.baseCurrency},
		"Exchange rate unavailable, falling back to 1",
		slog.String("currency_code", code),
		slog.Time("as_of", asOf))
	return decimal.NewFromInt(1), nil
}
