package dto

import (
	"time"

	"github.com/SscSPs/ledger_posting_engine/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExchangeRateRequest defines the structure for creating a new exchange rate.
type CreateExchangeRateRequest struct {
	FromCurrencyCode string          `json:"fromCurrencyCode" binding:"required,iso4217"`
	ToCurrencyCode   string          `json:"toCurrencyCode" binding:"required,iso4217,nefield=FromCurrencyCode"`
	Rate             decimal.Decimal `json:"rate" binding:"decimal_positive"`
	DateEffective    time.Time       `json:"dateEffective" binding:"required"`
}

// ExchangeRateResponse defines the structure for API responses containing exchange rate details.
type ExchangeRateResponse struct {
	ExchangeRateID   string          `json:"exchangeRateID"`
	FromCurrencyCode string          `json:"fromCurrencyCode"`
	ToCurrencyCode   string          `json:"toCurrencyCode"`
	Rate             decimal.Decimal `json:"rate"`
	DateEffective    time.Time       `json:"dateEffective"`
	CreatedAt        time.Time       `json:"createdAt"`
	CreatedBy        string          `json:"createdBy"`
}

// ResolvedRateResponse is the rate the posting engine would apply for a currency on a date.
type ResolvedRateResponse struct {
	CurrencyCode string          `json:"currencyCode"`
	BaseCurrency string          `json:"baseCurrency"`
	AsOf         time.Time       `json:"asOf"`
	Rate         decimal.Decimal `json:"rate"`
}

// ToExchangeRateResponse converts a domain.ExchangeRate to ExchangeRateResponse DTO
func ToExchangeRateResponse(rate *domain.ExchangeRate) ExchangeRateResponse {
	return ExchangeRateResponse{
		ExchangeRateID:   rate.ExchangeRateID,
		FromCurrencyCode: rate.FromCurrency,
		ToCurrencyCode:   rate.ToCurrency,
		Rate:             rate.Rate,
		DateEffective:    rate.EffectiveDate,
		CreatedAt:        rate.CreatedAt,
		CreatedBy:        rate.CreatedBy,
	}
}

// RateQueryParams carries the optional asOf day of a rate lookup. A zero AsOf means today.
type RateQueryParams struct {
	AsOf time.Time `form:"asOf" time_format:"2006-01-02" time_utc:"1"`
}
