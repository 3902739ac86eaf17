package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionCategory is the row shape of the transaction_categories table.
type TransactionCategory struct {
	TransactionCategoryID   int64  `db:"transaction_category_id"`
	TransactionCategoryCode string `db:"transaction_category_code"`
	TransactionCategoryName string `db:"transaction_category_name"`
	ChartOfAccountCode      string `db:"chart_of_account_code"`
	DeleteFlag              bool   `db:"delete_flag"`
	AuditFields
}

// CategoryBalance is the row shape of the transaction_category_balances table.
type CategoryBalance struct {
	TransactionCategoryID int64           `db:"transaction_category_id"`
	OpeningBalance        decimal.Decimal `db:"opening_balance"`
	RunningBalance        decimal.Decimal `db:"running_balance"`
	EffectiveDate         time.Time       `db:"effective_date"`
	Version               int64           `db:"version"`
	DeleteFlag            bool            `db:"delete_flag"`
	AuditFields
}

// ClosingBalance is the row shape of the transaction_category_closing_balances table.
type ClosingBalance struct {
	ClosingBalanceID      string          `db:"closing_balance_id"`
	TransactionCategoryID int64           `db:"transaction_category_id"`
	ClosingBalanceDate    time.Time       `db:"closing_balance_date"`
	OpeningBalance        decimal.Decimal `db:"opening_balance"`
	ClosingBalance        decimal.Decimal `db:"closing_balance"`
	DeleteFlag            bool            `db:"delete_flag"`
	AuditFields
}
