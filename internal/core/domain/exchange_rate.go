package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate converts one unit of FromCurrency into ToCurrency from EffectiveDate onwards.
type ExchangeRate struct {
	ExchangeRateID string          `json:"exchangeRateID"`
	FromCurrency   string          `json:"fromCurrency"`
	ToCurrency     string          `json:"toCurrency"`
	Rate           decimal.Decimal `json:"rate"`
	EffectiveDate  time.Time       `json:"effectiveDate"`
	AuditFields
}
