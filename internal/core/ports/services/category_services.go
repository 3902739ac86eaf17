package services

import (
	"context"
	"time"

	"github.com/SscSPs/ledger_posting_engine/internal/core/domain"
	"github.com/SscSPs/ledger_posting_engine/internal/dto"
)

// CategoryReaderSvc defines read operations for categories and their balances
type CategoryReaderSvc interface {
	GetCategoryByID(ctx context.Context, categoryID int64) (*domain.TransactionCategory, error)
	GetCategoryBalance(ctx context.Context, categoryID int64, userID string) (*domain.CategoryBalance, error)
	ListClosingBalances(ctx context.Context, categoryID int64, from, to time.Time) ([]domain.ClosingBalance, error)
	ReconcileCategory(ctx context.Context, categoryID int64) (domain.ReconciliationResult, error)
}

// CategoryWriterSvc defines write operations for categories
type CategoryWriterSvc interface {
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest, userID string) (*domain.TransactionCategory, error)
}

// CategorySvcFacade combines all category-related service interfaces
type CategorySvcFacade interface {
	CategoryReaderSvc
	CategoryWriterSvc
}
