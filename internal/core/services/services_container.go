package services

import (
	portsrepo "github.com/SscSPs/ledger_posting_engine/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_posting_engine/internal/core/ports/services"
	"github.com/SscSPs/ledger_posting_engine/internal/platform/config"
)

// NewServiceContainer wires the posting engine and the flows built on it.
// locker may be nil, in which case transitions rely on database row locks alone.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, locker portssvc.PostingLocker, opts ...Option) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	resolver := NewCurrencyResolver(repos.ExchangeRepo, cfg.BaseCurrency)
	builder := NewJournalBuilder(repos.CategoryRepo, repos.ContactRepo, resolver, opts...)
	ledger := NewCategoryBalanceLedger(repos.TxManager, repos.BalanceRepo, repos.JournalRepo, opts...)
	reverser := NewReversalGenerator(repos.JournalRepo, opts...)

	postingOpts := []PostingOption{WithPostingBaseOptions(opts...)}
	if locker != nil {
		postingOpts = append(postingOpts, WithPostingLocker(locker))
	}
	posting := NewPostingOrchestrator(repos.TxManager, repos.JournalRepo, reverser, ledger, postingOpts...)
	container.Posting = posting

	container.Journal = NewJournalService(repos.JournalRepo, posting, builder, opts...)
	container.Category = NewCategoryService(repos.CategoryRepo, ledger, opts...)
	container.BankAccount = NewBankAccountService(repos.BankAccountRepo, repos.CategoryRepo, posting, builder, ledger, opts...)
	container.TaxFiling = NewTaxFilingService(repos.TaxFilingRepo, posting, builder, TaxPolicy{
		Threshold: cfg.CorporateTaxThreshold,
		Rate:      cfg.CorporateTaxRate,
	}, opts...)
	container.Settlement = NewSettlementService(repos.CategoryRepo, repos.ContactRepo, posting, builder, opts...)
	container.ExchangeRate = NewExchangeRateService(repos.ExchangeRepo, resolver, opts...)

	return container
}
