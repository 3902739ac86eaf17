package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/ledger_posting_engine/internal/core/domain"
	portssvc "github.com/SscSPs/ledger_posting_engine/internal/core/ports/services"
	"github.com/SscSPs/ledger_posting_engine/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock JournalService ---
type MockJournalService struct {
	mock.Mock
}

func (m *MockJournalService) GetJournalByID(ctx context.Context, journalID string) (*domain.Journal, error) {
	args := m.Called(ctx, journalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}
func (m *MockJournalService) ListLineItemsByCategory(ctx context.Context, categoryID int64, params dto.ListLineItemsParams) (*dto.ListLineItemsResponse, error) {
	args := m.Called(ctx, categoryID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListLineItemsResponse), args.Error(1)
}
func (m *MockJournalService) GetPostingState(ctx context.Context, ref domain.PostingReference) (domain.PostingState, error) {
	args := m.Called(ctx, ref)
	return args.Get(0).(domain.PostingState), args.Error(1)
}
func (m *MockJournalService) PostManualJournal(ctx context.Context, req dto.PostJournalRequest, userID string) (*domain.Journal, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}
func (m *MockJournalService) ReverseReference(ctx context.Context, ref domain.PostingReference, userID string) (*domain.Journal, error) {
	args := m.Called(ctx, ref, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}
func (m *MockJournalService) Preview(ctx context.Context, event domain.PostingEvent, userID string) (*domain.Journal, error) {
	args := m.Called(ctx, event, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}

var _ portssvc.JournalSvcFacade = (*MockJournalService)(nil)

// --- Mock CategoryService ---
type MockCategoryService struct {
	mock.Mock
}

func (m *MockCategoryService) GetCategoryByID(ctx context.Context, categoryID int64) (*domain.TransactionCategory, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionCategory), args.Error(1)
}
func (m *MockCategoryService) GetCategoryBalance(ctx context.Context, categoryID int64, userID string) (*domain.CategoryBalance, error) {
	args := m.Called(ctx, categoryID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CategoryBalance), args.Error(1)
}
func (m *MockCategoryService) ListClosingBalances(ctx context.Context, categoryID int64, from, to time.Time) ([]domain.ClosingBalance, error) {
	args := m.Called(ctx, categoryID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ClosingBalance), args.Error(1)
}
func (m *MockCategoryService) ReconcileCategory(ctx context.Context, categoryID int64) (domain.ReconciliationResult, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).(domain.ReconciliationResult), args.Error(1)
}
func (m *MockCategoryService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest, userID string) (*domain.TransactionCategory, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionCategory), args.Error(1)
}

var _ portssvc.CategorySvcFacade = (*MockCategoryService)(nil)

// --- Mock BankAccountService ---
type MockBankAccountService struct {
	mock.Mock
}

func (m *MockBankAccountService) GetBankAccount(ctx context.Context, bankAccountID string) (*domain.BankAccount, error) {
	args := m.Called(ctx, bankAccountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankAccount), args.Error(1)
}
func (m *MockBankAccountService) CreateBankAccount(ctx context.Context, req dto.CreateBankAccountRequest, userID string) (*domain.BankAccount, *domain.Journal, error) {
	args := m.Called(ctx, req, userID)
	acc, _ := args.Get(0).(*domain.BankAccount)
	journal, _ := args.Get(1).(*domain.Journal)
	return acc, journal, args.Error(2)
}
func (m *MockBankAccountService) UpdateBankAccount(ctx context.Context, bankAccountID string, req dto.UpdateBankAccountRequest, userID string) (*domain.BankAccount, *domain.Journal, error) {
	args := m.Called(ctx, bankAccountID, req, userID)
	acc, _ := args.Get(0).(*domain.BankAccount)
	journal, _ := args.Get(1).(*domain.Journal)
	return acc, journal, args.Error(2)
}
func (m *MockBankAccountService) DeleteBankAccount(ctx context.Context, bankAccountID string, userID string) (*domain.Journal, error) {
	args := m.Called(ctx, bankAccountID, userID)
	journal, _ := args.Get(0).(*domain.Journal)
	return journal, args.Error(1)
}

var _ portssvc.BankAccountSvcFacade = (*MockBankAccountService)(nil)

// --- Mock TaxFilingService ---
type MockTaxFilingService struct {
	mock.Mock
}

func (m *MockTaxFilingService) GetTaxFiling(ctx context.Context, filingID string) (*domain.CorporateTaxFiling, error) {
	args := m.Called(ctx, filingID)
	filing, _ := args.Get(0).(*domain.CorporateTaxFiling)
	return filing, args.Error(1)
}
func (m *MockTaxFilingService) CreateTaxFiling(ctx context.Context, req dto.CreateTaxFilingRequest, userID string) (*domain.CorporateTaxFiling, error) {
	args := m.Called(ctx, req, userID)
	filing, _ := args.Get(0).(*domain.CorporateTaxFiling)
	return filing, args.Error(1)
}
func (m *MockTaxFilingService) FileTaxFiling(ctx context.Context, filingID string, filedOn time.Time, userID string) (*domain.CorporateTaxFiling, *domain.Journal, error) {
	args := m.Called(ctx, filingID, filedOn, userID)
	filing, _ := args.Get(0).(*domain.CorporateTaxFiling)
	journal, _ := args.Get(1).(*domain.Journal)
	return filing, journal, args.Error(2)
}
func (m *MockTaxFilingService) UnfileTaxFiling(ctx context.Context, filingID string, userID string) (*domain.CorporateTaxFiling, *domain.Journal, error) {
	args := m.Called(ctx, filingID, userID)
	filing, _ := args.Get(0).(*domain.CorporateTaxFiling)
	journal, _ := args.Get(1).(*domain.Journal)
	return filing, journal, args.Error(2)
}

var _ portssvc.TaxFilingSvcFacade = (*MockTaxFilingService)(nil)

// --- Mock SettlementService ---
type MockSettlementService struct {
	mock.Mock
}

func (m *MockSettlementService) PostReceipt(ctx context.Context, req dto.SettlementRequest, userID string) (*portssvc.TransitionResult, error) {
	args := m.Called(ctx, req, userID)
	result, _ := args.Get(0).(*portssvc.TransitionResult)
	return result, args.Error(1)
}
func (m *MockSettlementService) PostPayment(ctx context.Context, req dto.SettlementRequest, userID string) (*portssvc.TransitionResult, error) {
	args := m.Called(ctx, req, userID)
	result, _ := args.Get(0).(*portssvc.TransitionResult)
	return result, args.Error(1)
}
func (m *MockSettlementService) UpdateSettlement(ctx context.Context, kind domain.SettlementKind, req dto.SettlementRequest, userID string) (*portssvc.TransitionResult, error) {
	args := m.Called(ctx, kind, req, userID)
	result, _ := args.Get(0).(*portssvc.TransitionResult)
	return result, args.Error(1)
}
func (m *MockSettlementService) DeleteSettlement(ctx context.Context, kind domain.SettlementKind, settlementID string, userID string) (*portssvc.TransitionResult, error) {
	args := m.Called(ctx, kind, settlementID, userID)
	result, _ := args.Get(0).(*portssvc.TransitionResult)
	return result, args.Error(1)
}
func (m *MockSettlementService) RegisterContactCategory(ctx context.Context, contactID string, req dto.RegisterContactCategoryRequest, userID string) (*domain.ContactCategoryRelation, error) {
	args := m.Called(ctx, contactID, req, userID)
	relation, _ := args.Get(0).(*domain.ContactCategoryRelation)
	return relation, args.Error(1)
}

var _ portssvc.SettlementSvcFacade = (*MockSettlementService)(nil)

// --- Mock ExchangeRateService ---
type MockExchangeRateService struct {
	mock.Mock
}

func (m *MockExchangeRateService) GetExchangeRate(ctx context.Context, fromCode, toCode string, asOf time.Time) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, fromCode, toCode, asOf)
	rate, _ := args.Get(0).(*domain.ExchangeRate)
	return rate, args.Error(1)
}
func (m *MockExchangeRateService) ResolveRate(ctx context.Context, currencyCode string, asOf time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, currencyCode, asOf)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}
func (m *MockExchangeRateService) CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest, creatorUserID string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, req, creatorUserID)
	rate, _ := args.Get(0).(*domain.ExchangeRate)
	return rate, args.Error(1)
}
func (m *MockExchangeRateService) BaseCurrency() string {
	return m.Called().String(0)
}

var _ portssvc.ExchangeRateSvcFacade = (*MockExchangeRateService)(nil)
