package dto

import (
	"time"

	"github.com/SscSPs/ledger_posting_engine/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBankAccountRequest defines the structure for opening a bank account in the ledger.
type CreateBankAccountRequest struct {
	Name           string          `json:"name" binding:"required,max=255"`
	AccountNumber  string          `json:"accountNumber" binding:"max=64"`
	CurrencyCode   string          `json:"currencyCode" binding:"required,iso4217"`
	OpeningBalance decimal.Decimal `json:"openingBalance" binding:"decimal_gte0"`
	OpeningDate    time.Time       `json:"openingDate" binding:"required"`
}

// UpdateBankAccountRequest replaces the editable fields of a bank account.
// Changing the opening balance, currency or date reposts the opening journal.
type UpdateBankAccountRequest struct {
	Name           string          `json:"name" binding:"required,max=255"`
	AccountNumber  string          `json:"accountNumber" binding:"max=64"`
	CurrencyCode   string          `json:"currencyCode" binding:"required,iso4217"`
	OpeningBalance decimal.Decimal `json:"openingBalance" binding:"decimal_gte0"`
	OpeningDate    time.Time       `json:"openingDate" binding:"required"`
}

// BankAccountResponse defines the data returned for a bank account.
type BankAccountResponse struct {
	BankAccountID         string           `json:"bankAccountID"`
	Name                  string           `json:"name"`
	AccountNumber         string           `json:"accountNumber"`
	CurrencyCode          string           `json:"currencyCode"`
	OpeningBalance        decimal.Decimal  `json:"openingBalance"`
	OpeningDate           time.Time        `json:"openingDate"`
	TransactionCategoryID int64            `json:"transactionCategoryID"`
	Journal               *JournalResponse `json:"journal,omitempty"`
	CreatedAt             time.Time        `json:"createdAt"`
	CreatedBy             string           `json:"createdBy"`
	LastUpdatedAt         time.Time        `json:"lastUpdatedAt"`
	LastUpdatedBy         string           `json:"lastUpdatedBy"`
}

// ToBankAccountResponse converts a domain.BankAccount and its latest journal to a response.
func ToBankAccountResponse(acc *domain.BankAccount, journal *domain.Journal) BankAccountResponse {
	return BankAccountResponse{
		BankAccountID:         acc.BankAccountID,
		Name:                  acc.Name,
		AccountNumber:         acc.AccountNumber,
		CurrencyCode:          acc.CurrencyCode,
		OpeningBalance:        acc.OpeningBalance,
		OpeningDate:           acc.OpeningDate,
		TransactionCategoryID: acc.TransactionCategoryID,
		Journal:               ToJournalResponse(journal),
		CreatedAt:             acc.CreatedAt,
		CreatedBy:             acc.CreatedBy,
		LastUpdatedAt:         acc.LastUpdatedAt,
		LastUpdatedBy:         acc.LastUpdatedBy,
	}
}
