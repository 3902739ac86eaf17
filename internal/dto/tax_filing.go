package dto

import (
	"time"

	"github.com/SscSPs/ledger_posting_engine/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTaxFilingRequest registers a reporting period. NetIncome comes from the P&L report.
type CreateTaxFilingRequest struct {
	StartDate time.Time       `json:"startDate" binding:"required"`
	EndDate   time.Time       `json:"endDate" binding:"required"`
	NetIncome decimal.Decimal `json:"netIncome"`
}

// FileTaxRequest files a tax return on the given date.
type FileTaxRequest struct {
	TaxFiledOn time.Time `json:"taxFiledOn" binding:"required"`
}

// TaxFilingResponse defines the data returned for a corporate tax filing.
type TaxFilingResponse struct {
	FilingID      string           `json:"filingID"`
	StartDate     time.Time        `json:"startDate"`
	EndDate       time.Time        `json:"endDate"`
	NetIncome     decimal.Decimal  `json:"netIncome"`
	TaxableAmount decimal.Decimal  `json:"taxableAmount"`
	TaxAmount     decimal.Decimal  `json:"taxAmount"`
	BalanceDue    decimal.Decimal  `json:"balanceDue"`
	Status        string           `json:"status"`
	TaxFiledOn    *time.Time       `json:"taxFiledOn,omitempty"`
	Journal       *JournalResponse `json:"journal,omitempty"`
}

// ToTaxFilingResponse converts a filing and the journal the last transition produced.
func ToTaxFilingResponse(f *domain.CorporateTaxFiling, journal *domain.Journal) TaxFilingResponse {
	return TaxFilingResponse{
		FilingID:      f.FilingID,
		StartDate:     f.StartDate,
		EndDate:       f.EndDate,
		NetIncome:     f.NetIncome,
		TaxableAmount: f.TaxableAmount,
		TaxAmount:     f.TaxAmount,
		BalanceDue:    f.BalanceDue,
		Status:        string(f.Status),
		TaxFiledOn:    f.TaxFiledOn,
		Journal:       ToJournalResponse(journal),
	}
}
