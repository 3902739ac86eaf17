package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/ledger_posting_engine/internal/apperrors"
	"github.com/SscSPs/ledger_posting_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_posting_engine/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_posting_engine/internal/core/ports/services"
	"github.com/SscSPs/ledger_posting_engine/internal/dto"
	"github.com/shopspring/decimal"
)

// ExchangeRateService provides business logic for exchange rates.
type ExchangeRateService struct {
	BaseService
	rateRepo portsrepo.ExchangeRateRepositoryFacade
	resolver portssvc.CurrencyResolver
}

// NewExchangeRateService creates a new ExchangeRateService.
func NewExchangeRateService(rateRepo portsrepo.ExchangeRateRepositoryFacade, resolver portssvc.CurrencyResolver, opts ...Option) *ExchangeRateService {
	s := &ExchangeRateService{
		BaseService: newBaseService(),
		rateRepo:    rateRepo,
		resolver:    resolver,
	}
	applyOptions(&s.BaseService, opts)
	return s
}

var _ portssvc.ExchangeRateSvcFacade = (*ExchangeRateService)(nil)

// CreateExchangeRate handles the creation of a new exchange rate.
func (s *ExchangeRateService) CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest, creatorUserID string) (*domain.ExchangeRate, error) {
	// Input validation (basic format) is handled by DTO binding tags.
	from := strings.ToUpper(req.FromCurrencyCode)
	to := strings.ToUpper(req.ToCurrencyCode)
	if !req.Rate.IsPositive() {
		return nil, fmt.Errorf("%w: exchange rate must be positive", apperrors.ErrValidation)
	}
	if len(from) != 3 || len(to) != 3 {
		return nil, fmt.Errorf("%w: currency codes must be 3 letters", apperrors.ErrValidation)
	}
	if from == to {
		return nil, fmt.Errorf("%w: from and to currency codes cannot be the same", apperrors.ErrValidation)
	}

	rate := domain.ExchangeRate{
		ExchangeRateID: s.NewID(),
		FromCurrency:   from,
		ToCurrency:     to,
		Rate:           req.Rate,
		EffectiveDate:  domain.TruncateToDay(req.DateEffective),
		AuditFields:    domain.NewAuditFields(creatorUserID, s.Now()),
	}

	if err := s.rateRepo.SaveExchangeRate(ctx, rate); err != nil {
		s.LogError(ctx, err, "Failed to save exchange rate")
		return nil, fmt.Errorf("failed to create exchange rate in service: %w", err)
	}
	return &rate, nil
}

// GetExchangeRate retrieves the rate for a currency pair effective on asOf (today when zero).
func (s *ExchangeRateService) GetExchangeRate(ctx context.Context, fromCode, toCode string, asOf time.Time) (*domain.ExchangeRate, error) {
	fromCode = strings.ToUpper(fromCode)
	toCode = strings.ToUpper(toCode)
	if len(fromCode) != 3 || len(toCode) != 3 {
		return nil, fmt.Errorf("%w: currency codes must be 3 letters", apperrors.ErrValidation)
	}
	if asOf.IsZero() {
		asOf = s.Now()
	}

	rate, err := s.rateRepo.FindExchangeRate(ctx, fromCode, toCode, asOf)
	if err != nil {
		return nil, fmt.Errorf("failed to get exchange rate in service: %w", err)
	}
	return rate, nil
}

// ResolveRate returns the rate postings in currencyCode would use on asOf.
func (s *ExchangeRateService) ResolveRate(ctx context.Context, currencyCode string, asOf time.Time) (decimal.Decimal, error) {
	if asOf.IsZero() {
		asOf = s.Now()
	}
	return s.resolver.RateFor(ctx, currencyCode, asOf)
}

func (s *ExchangeRateService) BaseCurrency() string {
	return s.resolver.BaseCurrency()
}
