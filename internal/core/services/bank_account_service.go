package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/ledger_posting_engine/internal/apperrors"
	"github.com/SscSPs/ledger_posting_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_posting_engine/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_posting_engine/internal/core/ports/services"
	"github.com/SscSPs/ledger_posting_engine/internal/dto"
	"github.com/jackc/pgx/v5"
)

// bankCategoryCodePrefix prefixes the code of the leaf category created for each bank account.
const bankCategoryCodePrefix = "BANK-"

type bankAccountService struct {
	BaseService
	bankRepo     portsrepo.BankAccountRepositoryFacade
	categoryRepo portsrepo.CategoryWriter
	posting      portssvc.PostingSvc
	builder      portssvc.JournalBuilder
	ledger       portssvc.BalanceLedger
}

// NewBankAccountService creates the bank account flow.
func NewBankAccountService(
	bankRepo portsrepo.BankAccountRepositoryFacade,
	categoryRepo portsrepo.CategoryWriter,
	posting portssvc.PostingSvc,
	builder portssvc.JournalBuilder,
	ledger portssvc.BalanceLedger,
	opts ...Option,
) portssvc.BankAccountSvcFacade {
	s := &bankAccountService{
		BaseService:  newBaseService(),
		bankRepo:     bankRepo,
		categoryRepo: categoryRepo,
		posting:      posting,
		builder:      builder,
		ledger:       ledger,
	}
	applyOptions(&s.BaseService, opts)
	return s
}

func openingEvent(acc domain.BankAccount) domain.BankAccountOpeningEvent {
	return domain.BankAccountOpeningEvent{
		TransactionCategoryID: acc.TransactionCategoryID,
		ChartOfAccountCode:    domain.CoABank,
		CurrencyCode:          acc.CurrencyCode,
		OpeningBalance:        acc.OpeningBalance,
		OpeningDate:           acc.OpeningDate,
	}
}

func (s *bankAccountService) openingBuild(acc domain.BankAccount, userID string) portssvc.BuildFunc {
	if !acc.OpeningBalance.IsPositive() {
		return nil
	}
	event := openingEvent(acc)
	return func(ctx context.Context) (*domain.Journal, error) {
		return s.builder.Build(ctx, event, userID)
	}
}

// CreateBankAccount creates the bank category and account and posts the opening balance.
func (s *bankAccountService) CreateBankAccount(ctx context.Context, req dto.CreateBankAccountRequest, userID string) (*domain.BankAccount, *domain.Journal, error) {
	if req.OpeningBalance.IsNegative() {
		return nil, nil, apperrors.NewValidationError("opening balance must not be negative")
	}

	now := s.Now()
	account := domain.BankAccount{
		BankAccountID:  s.NewID(),
		Name:           req.Name,
		AccountNumber:  req.AccountNumber,
		CurrencyCode:   req.CurrencyCode,
		OpeningBalance: req.OpeningBalance,
		OpeningDate:    domain.TruncateToDay(req.OpeningDate),
		AuditFields:    domain.NewAuditFields(userID, now),
	}

	var journal *domain.Journal
	err := s.posting.RunInTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		category, err := s.categoryRepo.CreateCategoryInTx(ctx, tx, domain.TransactionCategory{
			Code:               bankCategoryCodePrefix + account.BankAccountID,
			Name:               account.Name,
			ChartOfAccountCode: domain.CoABank,
			AuditFields:        domain.NewAuditFields(userID, now),
		})
		if err != nil {
			return fmt.Errorf("failed to create bank category: %w", err)
		}
		account.TransactionCategoryID = category.CategoryID

		if err := s.bankRepo.CreateBankAccountInTx(ctx, tx, account); err != nil {
			return fmt.Errorf("failed to create bank account: %w", err)
		}

		result, err := s.posting.PostInTx(ctx, tx, openingEvent(account).Reference(), userID, s.openingBuild(account, userID))
		if err != nil {
			return err
		}
		journal = result.Posted
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create bank account", slog.String("name", req.Name))
		return nil, nil, err
	}

	s.LogInfo(ctx, "Bank account created",
		slog.String("bank_account_id", account.BankAccountID),
		slog.Int64("category_id", account.TransactionCategoryID))
	return &account, journal, nil
}

// UpdateBankAccount saves the new details and reposts the opening balance when it changed.
func (s *bankAccountService) UpdateBankAccount(ctx context.Context, bankAccountID string, req dto.UpdateBankAccountRequest, userID string) (*domain.BankAccount, *domain.Journal, error) {
	if req.OpeningBalance.IsNegative() {
		return nil, nil, apperrors.NewValidationError("opening balance must not be negative")
	}
	existing, err := s.GetBankAccount(ctx, bankAccountID)
	if err != nil {
		return nil, nil, err
	}

	updated := *existing
	updated.Name = req.Name
	updated.AccountNumber = req.AccountNumber
	updated.CurrencyCode = req.CurrencyCode
	updated.OpeningBalance = req.OpeningBalance
	updated.OpeningDate = domain.TruncateToDay(req.OpeningDate)
	updated.LastUpdatedAt = s.Now()
	updated.LastUpdatedBy = userID

	ledgerChanged := !existing.OpeningBalance.Equal(updated.OpeningBalance) ||
		existing.CurrencyCode != updated.CurrencyCode ||
		!existing.OpeningDate.Equal(updated.OpeningDate)

	ref := openingEvent(updated).Reference()
	var journal *domain.Journal
	err = s.posting.Atomically(ctx, ref, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.bankRepo.UpdateBankAccountInTx(ctx, tx, updated); err != nil {
			return fmt.Errorf("failed to update bank account: %w", err)
		}
		if existing.Name != updated.Name {
			if err := s.categoryRepo.UpdateCategoryNameInTx(ctx, tx, updated.TransactionCategoryID, updated.Name, userID, updated.LastUpdatedAt); err != nil {
				return fmt.Errorf("failed to rename bank category: %w", err)
			}
		}
		if !ledgerChanged {
			return nil
		}

		result, err := s.posting.RepostInTx(ctx, tx, ref, domain.RefReverseBankAccount, userID, s.openingBuild(updated, userID))
		if err != nil {
			return err
		}
		journal = result.Posted
		if journal == nil {
			journal = result.Reversal
		}
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to update bank account", slog.String("bank_account_id", bankAccountID))
		return nil, nil, err
	}
	return &updated, journal, nil
}

// DeleteBankAccount reverses the opening balance and soft-deletes the account and its category.
func (s *bankAccountService) DeleteBankAccount(ctx context.Context, bankAccountID string, userID string) (*domain.Journal, error) {
	account, err := s.GetBankAccount(ctx, bankAccountID)
	if err != nil {
		return nil, err
	}

	ref := openingEvent(*account).Reference()
	var journal *domain.Journal
	err = s.posting.Atomically(ctx, ref, func(ctx context.Context, tx pgx.Tx) error {
		result, err := s.posting.VoidInTx(ctx, tx, ref, domain.RefDeleteBankAccount, userID)
		if err != nil {
			return err
		}
		journal = result.Reversal

		if err := s.ledger.DeleteBalances(ctx, tx, account.TransactionCategoryID, userID); err != nil {
			return err
		}
		now := s.Now()
		if err := s.categoryRepo.SoftDeleteCategoryInTx(ctx, tx, account.TransactionCategoryID, userID, now); err != nil {
			return fmt.Errorf("failed to delete bank category: %w", err)
		}
		if err := s.bankRepo.SoftDeleteBankAccountInTx(ctx, tx, bankAccountID, userID, now); err != nil {
			return fmt.Errorf("failed to delete bank account: %w", err)
		}
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to delete bank account", slog.String("bank_account_id", bankAccountID))
		return nil, err
	}
	s.LogInfo(ctx, "Bank account deleted", slog.String("bank_account_id", bankAccountID))
	return journal, nil
}

// GetBankAccount retrieves a live bank account.
func (s *bankAccountService) GetBankAccount(ctx context.Context, bankAccountID string) (*domain.BankAccount, error) {
	account, err := s.bankRepo.FindBankAccountByID(ctx, bankAccountID)
	if err != nil {
		return nil, err
	}
	if account.DeleteFlag {
		return nil, apperrors.NewNotFoundError("bank account " + bankAccountID)
	}
	return account, nil
}
