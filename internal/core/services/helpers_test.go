package services_test

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/SscSPs/ledger_posting_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_posting_engine/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_posting_engine/internal/core/ports/services"
	"github.com/SscSPs/ledger_posting_engine/internal/core/services"
	"github.com/SscSPs/ledger_posting_engine/internal/platform/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

const testUser = "user-1"

var testNow = time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func sequentialIDs() func() string {
	var n int64
	return func() string {
		return fmt.Sprintf("id-%04d", atomic.AddInt64(&n, 1))
	}
}

func testOptions() []services.Option {
	return []services.Option{
		services.WithClock(func() time.Time { return testNow }),
		services.WithIDGenerator(sequentialIDs()),
	}
}

func testConfig() *config.Config {
	return &config.Config{
		BaseCurrency:          "AED",
		CorporateTaxThreshold: dec("375000"),
		CorporateTaxRate:      dec("0.09"),
	}
}

func memProvider(store *memStore) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TxManager:       store,
		JournalRepo:     store,
		CategoryRepo:    store,
		ContactRepo:     store,
		BalanceRepo:     store,
		ExchangeRepo:    store,
		BankAccountRepo: store,
		TaxFilingRepo:   store,
	}
}

// newContainer wires every service over store, the way the server does over Postgres.
func newContainer(store *memStore, locker portssvc.PostingLocker) *portssvc.ServiceContainer {
	return services.NewServiceContainer(testConfig(), memProvider(store), locker, testOptions()...)
}

// --- Mocks ---

type MockPostingLocker struct {
	mock.Mock
}

func (m *MockPostingLocker) WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	args := m.Called(ctx, key)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(ctx)
}

type MockCurrencyResolver struct {
	mock.Mock
}

func (m *MockCurrencyResolver) RateFor(ctx context.Context, currencyCode string, asOf time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, currencyCode, asOf)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockCurrencyResolver) BaseCurrency() string {
	args := m.Called()
	return args.String(0)
}

type MockExchangeRateReader struct {
	mock.Mock
}

func (m *MockExchangeRateReader) FindExchangeRate(ctx context.Context, fromCurrency, toCurrency string, asOf time.Time) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, fromCurrency, toCurrency, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

// lineOn returns the single line of journal booked on categoryID.
func lineOn(journal *domain.Journal, categoryID int64) (domain.JournalLineItem, bool) {
	for _, li := range journal.LineItems {
		if li.TransactionCategoryID == categoryID {
			return li, true
		}
	}
	return domain.JournalLineItem{}, false
}
