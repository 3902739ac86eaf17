package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TaxFilingStatus is the filing state of a corporate tax record.
type TaxFilingStatus string

const (
	TaxUnfiled TaxFilingStatus = "UN_FILED"
	TaxFiled   TaxFilingStatus = "FILED"
)

// CorporateTaxFiling is one corporate tax return for a reporting period.
type CorporateTaxFiling struct {
	FilingID      string          `json:"filingID"`
	StartDate     time.Time       `json:"startDate"`
	EndDate       time.Time       `json:"endDate"`
	NetIncome     decimal.Decimal `json:"netIncome"`
	TaxableAmount decimal.Decimal `json:"taxableAmount"`
	TaxAmount     decimal.Decimal `json:"taxAmount"`
	BalanceDue    decimal.Decimal `json:"balanceDue"`
	Status        TaxFilingStatus `json:"status"`
	TaxFiledOn    *time.Time      `json:"taxFiledOn,omitempty"`
	AuditFields
}

// HasTaxDue reports whether filing produces a journal at all.
func (f CorporateTaxFiling) HasTaxDue() bool {
	return f.TaxableAmount.IsPositive() && f.TaxAmount.IsPositive()
}
