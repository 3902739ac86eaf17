package dto

import (
	"time"

	"github.com/SscSPs/ledger_posting_engine/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SettlementRequest records a customer receipt or a supplier payment against an invoice.
type SettlementRequest struct {
	SettlementID      string           `json:"settlementID" binding:"required,max=64"`
	ContactID         string           `json:"contactID" binding:"required"`
	DepositCategoryID int64            `json:"depositCategoryID" binding:"required,gt=0"`
	CurrencyCode      string           `json:"currencyCode" binding:"required,iso4217"`
	Amount            decimal.Decimal  `json:"amount" binding:"decimal_positive"`
	BookedRate        decimal.Decimal  `json:"bookedRate" binding:"decimal_positive"`
	ClearedRate       *decimal.Decimal `json:"clearedRate"`
	SettlementDate    time.Time        `json:"settlementDate" binding:"required"`
	Description       string           `json:"description" binding:"max=500"`
}

// ToEvent converts the request into a settlement event of the given kind.
func (r SettlementRequest) ToEvent(kind domain.SettlementKind) domain.SettlementEvent {
	return domain.SettlementEvent{
		Kind:              kind,
		SettlementID:      r.SettlementID,
		ContactID:         r.ContactID,
		DepositCategoryID: r.DepositCategoryID,
		CurrencyCode:      r.CurrencyCode,
		Amount:            r.Amount,
		BookedRate:        r.BookedRate,
		ClearedRate:       r.ClearedRate,
		SettlementDate:    r.SettlementDate,
		Description:       r.Description,
	}
}

// RegisterContactCategoryRequest binds a contact role to its receivable or payable category.
type RegisterContactCategoryRequest struct {
	ContactType           domain.ContactType `json:"contactType" binding:"required,oneof=CUSTOMER SUPPLIER"`
	TransactionCategoryID int64              `json:"transactionCategoryID" binding:"required,gt=0"`
}
