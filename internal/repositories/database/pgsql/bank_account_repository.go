package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/ledger_posting_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_posting_engine/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxBankAccountRepository stores bank accounts.
type PgxBankAccountRepository struct {
	BaseRepository
}

func newPgxBankAccountRepository(pool *pgxpool.Pool) *PgxBankAccountRepository {
	return &PgxBankAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.BankAccountRepositoryFacade = (*PgxBankAccountRepository)(nil)

// FindBankAccountByID returns a bank account, including a deleted one.
func (r *PgxBankAccountRepository) FindBankAccountByID(ctx context.Context, bankAccountID string) (*domain.BankAccount, error) {
	var acc domain.BankAccount
	err := r.Pool.QueryRow(ctx, `
		SELECT bank_account_id, bank_account_name, account_number, currency_code, opening_balance,
		       opening_date, transaction_category_id, delete_flag,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM bank_accounts
		WHERE bank_account_id = $1;
	`, bankAccountID).Scan(
		&acc.BankAccountID,
		&acc.Name,
		&acc.AccountNumber,
		&acc.CurrencyCode,
		&acc.OpeningBalance,
		&acc.OpeningDate,
		&acc.TransactionCategoryID,
		&acc.DeleteFlag,
		&acc.CreatedAt,
		&acc.CreatedBy,
		&acc.LastUpdatedAt,
		&acc.LastUpdatedBy,
	)
	if err != nil {
		return nil, translateError(err, "bank account "+bankAccountID)
	}
	return &acc, nil
}

// CreateBankAccountInTx inserts a bank account.
func (r *PgxBankAccountRepository) CreateBankAccountInTx(ctx context.Context, tx pgx.Tx, account domain.BankAccount) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO bank_accounts (
			bank_account_id, bank_account_name, account_number, currency_code, opening_balance,
			opening_date, transaction_category_id, delete_flag,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, FALSE, $8, $9, $10, $11);
	`,
		account.BankAccountID,
		account.Name,
		account.AccountNumber,
		account.CurrencyCode,
		account.OpeningBalance,
		domain.TruncateToDay(account.OpeningDate),
		account.TransactionCategoryID,
		account.CreatedAt,
		account.CreatedBy,
		account.LastUpdatedAt,
		account.LastUpdatedBy,
	)
	return translateError(err, "bank account "+account.BankAccountID)
}

// UpdateBankAccountInTx rewrites the editable fields of an active bank account.
func (r *PgxBankAccountRepository) UpdateBankAccountInTx(ctx context.Context, tx pgx.Tx, account domain.BankAccount) error {
	tag, err := tx.Exec(ctx, `
		UPDATE bank_accounts
		SET bank_account_name = $2, account_number = $3, currency_code = $4, opening_balance = $5,
		    opening_date = $6, last_updated_at = $7, last_updated_by = $8
		WHERE bank_account_id = $1 AND delete_flag = FALSE;
	`,
		account.BankAccountID,
		account.Name,
		account.AccountNumber,
		account.CurrencyCode,
		account.OpeningBalance,
		domain.TruncateToDay(account.OpeningDate),
		account.LastUpdatedAt,
		account.LastUpdatedBy,
	)
	if err != nil {
		return translateError(err, "bank account "+account.BankAccountID)
	}
	if tag.RowsAffected() == 0 {
		return translateError(pgx.ErrNoRows, "bank account "+account.BankAccountID)
	}
	return nil
}

// SoftDeleteBankAccountInTx flags a bank account deleted.
func (r *PgxBankAccountRepository) SoftDeleteBankAccountInTx(ctx context.Context, tx pgx.Tx, bankAccountID string, userID string, now time.Time) error {
	tag, err := tx.Exec(ctx, `
		UPDATE bank_accounts
		SET delete_flag = TRUE, last_updated_at = $2, last_updated_by = $3
		WHERE bank_account_id = $1 AND delete_flag = FALSE;
	`, bankAccountID, now, userID)
	if err != nil {
		return translateError(err, "bank account "+bankAccountID)
	}
	if tag.RowsAffected() == 0 {
		return translateError(pgx.ErrNoRows, "bank account "+bankAccountID)
	}
	return nil
}
