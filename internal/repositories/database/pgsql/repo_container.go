package pgsql

import (
	portsrepo "github.com/SscSPs/ledger_posting_engine/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every pgx repository onto one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	journalRepo := newPgxJournalRepository(dbPool)

	return portsrepo.RepositoryProvider{
		TxManager:       journalRepo,
		JournalRepo:     journalRepo,
		CategoryRepo:    newPgxCategoryRepository(dbPool),
		ContactRepo:     newPgxContactCategoryRepository(dbPool),
		BalanceRepo:     newPgxCategoryBalanceRepository(dbPool),
		ExchangeRepo:    newPgxExchangeRateRepository(dbPool),
		BankAccountRepo: newPgxBankAccountRepository(dbPool),
		TaxFilingRepo:   newPgxTaxFilingRepository(dbPool),
	}
}
