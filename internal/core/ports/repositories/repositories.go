package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	TxManager       TransactionManager
	JournalRepo     JournalRepositoryFacade
	CategoryRepo    CategoryRepositoryFacade
	ContactRepo     ContactCategoryRepositoryFacade
	BalanceRepo     CategoryBalanceRepositoryFacade
	ExchangeRepo    ExchangeRateRepositoryFacade
	BankAccountRepo BankAccountRepositoryFacade
	TaxFilingRepo   TaxFilingRepositoryFacade
}
