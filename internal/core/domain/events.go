package domain

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// PostingEvent is a business event the journal builder knows how to turn into a journal.
type PostingEvent interface {
	Reference() PostingReference
}

// BankAccountOpeningEvent records the opening balance of a bank account's category.
// ChartOfAccountCode may be left empty, in which case the builder looks the category up.
type BankAccountOpeningEvent struct {
	TransactionCategoryID int64              `json:"transactionCategoryID"`
	ChartOfAccountCode    ChartOfAccountCode `json:"chartOfAccountCode,omitempty"`
	CurrencyCode          string             `json:"currencyCode"`
	OpeningBalance        decimal.Decimal    `json:"openingBalance"`
	OpeningDate           time.Time          `json:"openingDate"`
}

// Reference is keyed on the category id, which is what the opening lines carry.
func (e BankAccountOpeningEvent) Reference() PostingReference {
	return PostingReference{Type: RefBankAccount, ID: strconv.FormatInt(e.TransactionCategoryID, 10)}
}

// BankAccountDeletionEvent is the mirror of an opening, used to preview a delete.
type BankAccountDeletionEvent struct {
	BankAccountOpeningEvent
}

func (e BankAccountDeletionEvent) Reference() PostingReference {
	return PostingReference{Type: RefDeleteBankAccount, ID: strconv.FormatInt(e.TransactionCategoryID, 10)}
}

// TaxFiledEvent books the tax amount of a filing.
type TaxFiledEvent struct {
	FilingID  string          `json:"filingID"`
	TaxAmount decimal.Decimal `json:"taxAmount"`
	FiledOn   time.Time       `json:"filedOn"`
}

func (e TaxFiledEvent) Reference() PostingReference {
	return PostingReference{Type: RefCorporateTaxFiled, ID: e.FilingID}
}

// TaxUnfiledEvent is the mirror of TaxFiledEvent.
type TaxUnfiledEvent struct {
	FilingID  string          `json:"filingID"`
	TaxAmount decimal.Decimal `json:"taxAmount"`
	UnfiledOn time.Time       `json:"unfiledOn"`
	FiledOn   *time.Time      `json:"filedOn,omitempty"`
}

func (e TaxUnfiledEvent) Reference() PostingReference {
	return PostingReference{Type: RefCorporateTaxUnfiled, ID: e.FilingID}
}

// SettlementKind is either a customer receipt or a supplier payment.
type SettlementKind string

const (
	SettlementReceipt SettlementKind = "RECEIPT"
	SettlementPayment SettlementKind = "PAYMENT"
)

// ReferenceType maps the kind onto its posting tag.
func (k SettlementKind) ReferenceType() PostingReferenceType {
	if k == SettlementPayment {
		return RefPayment
	}
	return RefReceipt
}

// ContactType is the counterparty role implied by the kind.
func (k SettlementKind) ContactType() ContactType {
	if k == SettlementPayment {
		return ContactSupplier
	}
	return ContactCustomer
}

// SettlementEvent is a receipt from a customer or a payment to a supplier.
// BookedRate is the rate the underlying invoice was booked at; ClearedRate, when nil,
// is resolved for SettlementDate.
type SettlementEvent struct {
	Kind              SettlementKind   `json:"kind"`
	SettlementID      string           `json:"settlementID"`
	ContactID         string           `json:"contactID"`
	DepositCategoryID int64            `json:"depositCategoryID"`
	CurrencyCode      string           `json:"currencyCode"`
	Amount            decimal.Decimal  `json:"amount"`
	BookedRate        decimal.Decimal  `json:"bookedRate"`
	ClearedRate       *decimal.Decimal `json:"clearedRate,omitempty"`
	SettlementDate    time.Time        `json:"settlementDate"`
	Description       string           `json:"description"`
}

func (e SettlementEvent) Reference() PostingReference {
	return PostingReference{Type: e.Kind.ReferenceType(), ID: e.SettlementID}
}
