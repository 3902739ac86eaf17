package services

import (
	"context"

	"github.com/SscSPs/ledger_posting_engine/internal/core/domain"
	"github.com/SscSPs/ledger_posting_engine/internal/dto"
)

// BankAccountReaderSvc defines read operations for bank accounts
type BankAccountReaderSvc interface {
	GetBankAccount(ctx context.Context, bankAccountID string) (*domain.BankAccount, error)
}

// BankAccountWriterSvc defines write operations for bank accounts.
// Each returns the journal the change posted, or nil when none was needed.
type BankAccountWriterSvc interface {
	CreateBankAccount(ctx context.Context, req dto.CreateBankAccountRequest, userID string) (*domain.BankAccount, *domain.Journal, error)
	UpdateBankAccount(ctx context.Context, bankAccountID string, req dto.UpdateBankAccountRequest, userID string) (*domain.BankAccount, *domain.Journal, error)
	DeleteBankAccount(ctx context.Context, bankAccountID string, userID string) (*domain.Journal, error)
}

// BankAccountSvcFacade combines all bank account service interfaces
type BankAccountSvcFacade interface {
	BankAccountReaderSvc
	BankAccountWriterSvc
}
