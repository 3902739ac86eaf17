package dto

import (
	"time"

	"github.com/SscSPs/ledger_posting_engine/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCategoryRequest creates a leaf category under a chart-of-account classification.
type CreateCategoryRequest struct {
	Code               string                    `json:"code" binding:"required,max=64"`
	Name               string                    `json:"name" binding:"required,max=255"`
	ChartOfAccountCode domain.ChartOfAccountCode `json:"chartOfAccountCode" binding:"required"`
}

// CategoryResponse defines the data returned for a transaction category.
type CategoryResponse struct {
	CategoryID         int64     `json:"categoryID"`
	Code               string    `json:"code"`
	Name               string    `json:"name"`
	ChartOfAccountCode string    `json:"chartOfAccountCode"`
	OffsetCategoryCode string    `json:"offsetCategoryCode,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
	CreatedBy          string    `json:"createdBy"`
}

// CategoryBalanceResponse defines the running balance of a category.
type CategoryBalanceResponse struct {
	TransactionCategoryID int64           `json:"transactionCategoryID"`
	OpeningBalance        decimal.Decimal `json:"openingBalance"`
	RunningBalance        decimal.Decimal `json:"runningBalance"`
	EffectiveDate         time.Time       `json:"effectiveDate"`
	Version               int64           `json:"version"`
}

// ClosingBalanceResponse defines one daily snapshot.
type ClosingBalanceResponse struct {
	ClosingBalanceDate time.Time       `json:"closingBalanceDate"`
	OpeningBalance     decimal.Decimal `json:"openingBalance"`
	ClosingBalance     decimal.Decimal `json:"closingBalance"`
}

// ClosingBalancesParams bounds a closing balance query.
type ClosingBalancesParams struct {
	From time.Time `form:"from" time_format:"2006-01-02" time_utc:"1"`
	To   time.Time `form:"to" time_format:"2006-01-02" time_utc:"1"`
}

// ToCategoryResponse converts a domain.TransactionCategory; offset may be empty.
func ToCategoryResponse(c *domain.TransactionCategory, offset domain.TransactionCategoryCode) CategoryResponse {
	return CategoryResponse{
		CategoryID:         c.CategoryID,
		Code:               c.Code,
		Name:               c.Name,
		ChartOfAccountCode: string(c.ChartOfAccountCode),
		OffsetCategoryCode: string(offset),
		CreatedAt:          c.CreatedAt,
		CreatedBy:          c.CreatedBy,
	}
}

// ToCategoryBalanceResponse converts a domain.CategoryBalance.
func ToCategoryBalanceResponse(b *domain.CategoryBalance) CategoryBalanceResponse {
	return CategoryBalanceResponse{
		TransactionCategoryID: b.TransactionCategoryID,
		OpeningBalance:        b.OpeningBalance,
		RunningBalance:        b.RunningBalance,
		EffectiveDate:         b.EffectiveDate,
		Version:               b.Version,
	}
}

// ToClosingBalanceResponses converts snapshots.
func ToClosingBalanceResponses(items []domain.ClosingBalance) []ClosingBalanceResponse {
	out := make([]ClosingBalanceResponse, len(items))
	for i, cb := range items {
		out[i] = ClosingBalanceResponse{
			ClosingBalanceDate: cb.ClosingBalanceDate,
			OpeningBalance:     cb.OpeningBalance,
			ClosingBalance:     cb.ClosingBalance,
		}
	}
	return out
}
