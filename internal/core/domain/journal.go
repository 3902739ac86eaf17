package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Journal is one balanced unit of double-entry posting. It owns its line items.
type Journal struct {
	JournalID            string               `json:"journalID"`
	JournalDate          time.Time            `json:"journalDate"`
	TransactionDate      *time.Time           `json:"transactionDate,omitempty"`
	PostingReferenceType PostingReferenceType `json:"postingReferenceType"`
	JournalReferenceNo   *string              `json:"journalReferenceNo,omitempty"`
	Description          string               `json:"description"`
	DeleteFlag           bool                 `json:"deleteFlag"`
	LineItems            []JournalLineItem    `json:"lineItems"`
	AuditFields
}

// JournalLineItem is one debit or credit leg of a journal.
// Exactly one of DebitAmount and CreditAmount is non-zero.
type JournalLineItem struct {
	LineItemID            string               `json:"lineItemID"`
	JournalID             string               `json:"journalID"`
	TransactionCategoryID int64                `json:"transactionCategoryID"`
	DebitAmount           decimal.Decimal      `json:"debitAmount"`
	CreditAmount          decimal.Decimal      `json:"creditAmount"`
	ReferenceType         PostingReferenceType `json:"referenceType"`
	ReferenceID           string               `json:"referenceID"`
	ExchangeRate          decimal.Decimal      `json:"exchangeRate"`
	DeleteFlag            bool                 `json:"deleteFlag"`
	AuditFields
}

// IsDebit reports whether the line sits on the debit side.
func (li JournalLineItem) IsDebit() bool {
	return li.DebitAmount.IsPositive()
}

// SignedAmount is debit minus credit, the delta the line applies to its category balance.
func (li JournalLineItem) SignedAmount() decimal.Decimal {
	return li.DebitAmount.Sub(li.CreditAmount)
}

// TotalDebit sums the debit side of all non-deleted lines.
func (j Journal) TotalDebit() decimal.Decimal {
	total := decimal.Zero
	for _, li := range j.LineItems {
		if !li.DeleteFlag {
			total = total.Add(li.DebitAmount)
		}
	}
	return total
}

// TotalCredit sums the credit side of all non-deleted lines.
func (j Journal) TotalCredit() decimal.Decimal {
	total := decimal.Zero
	for _, li := range j.LineItems {
		if !li.DeleteFlag {
			total = total.Add(li.CreditAmount)
		}
	}
	return total
}

// EffectiveDate is the date balances are booked against: the transaction date when set, else the journal date.
func (j Journal) EffectiveDate() time.Time {
	if j.TransactionDate != nil {
		return *j.TransactionDate
	}
	return j.JournalDate
}

// CategoryDeltas aggregates the signed amount of every non-deleted line per category.
func (j Journal) CategoryDeltas() map[int64]decimal.Decimal {
	deltas := make(map[int64]decimal.Decimal)
	for _, li := range j.LineItems {
		if li.DeleteFlag {
			continue
		}
		deltas[li.TransactionCategoryID] = deltas[li.TransactionCategoryID].Add(li.SignedAmount())
	}
	return deltas
}
