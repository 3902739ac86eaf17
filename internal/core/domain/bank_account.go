package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankAccount is a bank or cash account backed by its own leaf transaction category.
type BankAccount struct {
	BankAccountID         string          `json:"bankAccountID"`
	Name                  string          `json:"name"`
	AccountNumber         string          `json:"accountNumber"`
	CurrencyCode          string          `json:"currencyCode"`
	OpeningBalance        decimal.Decimal `json:"openingBalance"`
	OpeningDate           time.Time       `json:"openingDate"`
	TransactionCategoryID int64           `json:"transactionCategoryID"`
	DeleteFlag            bool            `json:"deleteFlag"`
	AuditFields
}
