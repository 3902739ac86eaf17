package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/ledger_posting_engine/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// BankAccountReader defines read operations for bank accounts.
type BankAccountReader interface {
	FindBankAccountByID(ctx context.Context, bankAccountID string) (*domain.BankAccount, error)
}

// BankAccountWriter defines transactional write operations for bank accounts.
type BankAccountWriter interface {
	CreateBankAccountInTx(ctx context.Context, tx pgx.Tx, account domain.BankAccount) error
	UpdateBankAccountInTx(ctx context.Context, tx pgx.Tx, account domain.BankAccount) error
	SoftDeleteBankAccountInTx(ctx context.Context, tx pgx.Tx, bankAccountID string, userID string, now time.Time) error
}

// BankAccountRepositoryFacade combines the bank account interfaces
type BankAccountRepositoryFacade interface {
	BankAccountReader
	BankAccountWriter
}
