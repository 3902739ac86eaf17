package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Journal is the row shape of the journals table.
type Journal struct {
	JournalID            string         `db:"journal_id"`
	JournalDate          time.Time      `db:"journal_date"`
	TransactionDate      sql.NullTime   `db:"transaction_date"`
	PostingReferenceType string         `db:"posting_reference_type"`
	JournalReferenceNo   sql.NullString `db:"journal_reference_no"`
	Description          string         `db:"description"`
	DeleteFlag           bool           `db:"delete_flag"`
	AuditFields
}

// JournalLineItem is the row shape of the journal_line_items table.
type JournalLineItem struct {
	LineItemID            string          `db:"line_item_id"`
	JournalID             string          `db:"journal_id"`
	TransactionCategoryID int64           `db:"transaction_category_id"`
	DebitAmount           decimal.Decimal `db:"debit_amount"`
	CreditAmount          decimal.Decimal `db:"credit_amount"`
	ReferenceType         string          `db:"reference_type"`
	ReferenceID           string          `db:"reference_id"`
	ExchangeRate          decimal.Decimal `db:"exchange_rate"`
	DeleteFlag            bool            `db:"delete_flag"`
	AuditFields

	// JournalDate is joined in from the owning journal for listings and pagination.
	JournalDate time.Time `db:"journal_date"`
}
