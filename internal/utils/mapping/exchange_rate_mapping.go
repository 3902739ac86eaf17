package mapping

import (
	"strings"

	"github.com/SscSPs/ledger_posting_engine/internal/core/domain"
	"github.com/SscSPs/ledger_posting_engine/internal/models"
)

// ToModelExchangeRate converts a domain ExchangeRate to a model ExchangeRate.
// Currency codes are stored upper-cased.
func ToModelExchangeRate(d domain.ExchangeRate) models.ExchangeRate {
	return models.ExchangeRate{
		ExchangeRateID:   d.ExchangeRateID,
		FromCurrencyCode: strings.ToUpper(d.FromCurrency),
		ToCurrencyCode:   strings.ToUpper(d.ToCurrency),
		Rate:             d.Rate,
		DateEffective:    domain.TruncateToDay(d.EffectiveDate),
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainExchangeRate converts a model ExchangeRate to a domain ExchangeRate
func ToDomainExchangeRate(m models.ExchangeRate) domain.ExchangeRate {
	return domain.ExchangeRate{
		ExchangeRateID: m.ExchangeRateID,
		FromCurrency:   m.FromCurrencyCode,
		ToCurrency:     m.ToCurrencyCode,
		Rate:           m.Rate,
		EffectiveDate:  m.DateEffective,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}
