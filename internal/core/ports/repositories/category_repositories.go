package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/ledger_posting_engine/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// CategoryReader resolves transaction categories by id or by code.
type CategoryReader interface {
	FindCategoryByID(ctx context.Context, categoryID int64) (*domain.TransactionCategory, error)
	FindCategoryByCode(ctx context.Context, code string) (*domain.TransactionCategory, error)
}

// CategoryWriter creates leaf categories and soft-deletes them.
type CategoryWriter interface {
	// CreateCategory inserts a category and returns it with its assigned id.
	CreateCategory(ctx context.Context, category domain.TransactionCategory) (*domain.TransactionCategory, error)
	CreateCategoryInTx(ctx context.Context, tx pgx.Tx, category domain.TransactionCategory) (*domain.TransactionCategory, error)
	UpdateCategoryNameInTx(ctx context.Context, tx pgx.Tx, categoryID int64, name string, userID string, now time.Time) error
	SoftDeleteCategoryInTx(ctx context.Context, tx pgx.Tx, categoryID int64, userID string, now time.Time) error
}

// CategoryRepositoryFacade combines all category-related repository interfaces
type CategoryRepositoryFacade interface {
	CategoryReader
	CategoryWriter
}

// ContactCategoryReader resolves the receivable or payable category of a counterparty.
type ContactCategoryReader interface {
	FindCategoryForContact(ctx context.Context, contactID string, contactType domain.ContactType) (*domain.TransactionCategory, error)
}

// ContactCategoryWriter registers contact to category relations.
type ContactCategoryWriter interface {
	SaveContactCategory(ctx context.Context, relation domain.ContactCategoryRelation) error
}

// ContactCategoryRepositoryFacade combines the contact relation interfaces
type ContactCategoryRepositoryFacade interface {
	ContactCategoryReader
	ContactCategoryWriter
}
