package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryBalance is the running balance record of a transaction category.
// Version increments on every update and guards concurrent writers.
type CategoryBalance struct {
	TransactionCategoryID int64           `json:"transactionCategoryID" yaml:"transactionCategoryID"`
	OpeningBalance        decimal.Decimal `json:"openingBalance"`
	RunningBalance        decimal.Decimal `json:"runningBalance" yaml:"runningBalance"`
	EffectiveDate         time.Time       `json:"effectiveDate"`
	Version               int64           `json:"version"`
	DeleteFlag            bool            `json:"deleteFlag"`
	AuditFields
}

// ClosingBalance is the point-in-time snapshot of a category for one day.
type ClosingBalance struct {
	ClosingBalanceID      string          `json:"closingBalanceID"`
	TransactionCategoryID int64           `json:"transactionCategoryID" yaml:"transactionCategoryID"`
	ClosingBalanceDate    time.Time       `json:"closingBalanceDate"`
	OpeningBalance        decimal.Decimal `json:"openingBalance"`
	ClosingBalance        decimal.Decimal `json:"closingBalance"`
	DeleteFlag            bool            `json:"deleteFlag"`
	AuditFields
}

// ReconciliationResult compares a category's running balance with the sum of its active line items.
type ReconciliationResult struct {
	TransactionCategoryID int64           `json:"transactionCategoryID" yaml:"transactionCategoryID"`
	RunningBalance        decimal.Decimal `json:"runningBalance" yaml:"runningBalance"`
	LedgerBalance         decimal.Decimal `json:"ledgerBalance" yaml:"ledgerBalance"`
	Difference            decimal.Decimal `json:"difference" yaml:"difference"`
	Consistent            bool            `json:"consistent" yaml:"consistent"`
}

// NewReconciliationResult fills in the difference and consistency flag.
func NewReconciliationResult(categoryID int64, running, ledger decimal.Decimal) ReconciliationResult {
	diff := running.Sub(ledger)
	return ReconciliationResult{
		TransactionCategoryID: categoryID,
		RunningBalance:        running,
		LedgerBalance:         ledger,
		Difference:            diff,
		Consistent:            diff.IsZero(),
	}
}

// TruncateToDay drops the time of day, keeping the location.
func TruncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
