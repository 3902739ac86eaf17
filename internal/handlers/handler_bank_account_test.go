package handlers_test

import (
	"net/http"

	"github.com/SscSPs/ledger_posting_engine/internal/apperrors"
	"github.com/SscSPs/ledger_posting_engine/internal/core/domain"
	"github.com/SscSPs/ledger_posting_engine/internal/dto"
	"github.com/stretchr/testify/mock"
)

func sampleBankAccount() *domain.BankAccount {
	return &domain.BankAccount{
		BankAccountID:         "ba-1",
		Name:                  "Operating USD",
		CurrencyCode:          "USD",
		OpeningBalance:        dec("5000"),
		OpeningDate:           day(2024, 1, 1),
		TransactionCategoryID: 1001,
	}
}

func (suite *HandlersTestSuite) TestCreateBankAccount_Success() {
	ref := domain.PostingReference{Type: domain.RefBankAccount, ID: "1001"}
	suite.bankAccounts.On("CreateBankAccount", mock.Anything, mock.MatchedBy(func(req dto.CreateBankAccountRequest) bool {
		return req.CurrencyCode == "USD" && req.OpeningBalance.Equal(dec("5000"))
	}), testUserID).Return(sampleBankAccount(), sampleJournal("j-open", ref, 1001, 10, "18350.00"), nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/bank-accounts", `{
		"name": "Operating USD",
		"currencyCode": "USD",
		"openingBalance": "5000",
		"openingDate": "2024-01-01T00:00:00Z"
	}`)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.BankAccountResponse
	suite.decode(w, &resp)
	suite.Equal(int64(1001), resp.TransactionCategoryID)
	suite.Require().NotNil(resp.Journal)
	suite.True(resp.Journal.TotalDebit.Equal(dec("18350")))
}

func (suite *HandlersTestSuite) TestCreateBankAccount_InvalidCurrency() {
	w := suite.do(http.MethodPost, "/api/v1/bank-accounts", `{
		"name": "Operating",
		"currencyCode": "XXZ",
		"openingBalance": "5000",
		"openingDate": "2024-01-01T00:00:00Z"
	}`)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlersTestSuite) TestCreateBankAccount_NegativeOpeningBalance() {
	w := suite.do(http.MethodPost, "/api/v1/bank-accounts", `{
		"name": "Operating",
		"currencyCode": "USD",
		"openingBalance": "-1",
		"openingDate": "2024-01-01T00:00:00Z"
	}`)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlersTestSuite) TestGetBankAccount_NotFound() {
	suite.bankAccounts.On("GetBankAccount", mock.Anything, "nope").Return(nil, apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodGet, "/api/v1/bank-accounts/nope", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlersTestSuite) TestUpdateBankAccount_Reposts() {
	ref := domain.PostingReference{Type: domain.RefBankAccount, ID: "1001"}
	updated := sampleBankAccount()
	updated.OpeningBalance = dec("6000")
	suite.bankAccounts.On("UpdateBankAccount", mock.Anything, "ba-1", mock.Anything, testUserID).
		Return(updated, sampleJournal("j-open-2", ref, 1001, 10, "22020.00"), nil).Once()

	w := suite.do(http.MethodPut, "/api/v1/bank-accounts/ba-1", `{
		"name": "Operating USD",
		"currencyCode": "USD",
		"openingBalance": "6000",
		"openingDate": "2024-01-01T00:00:00Z"
	}`)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.BankAccountResponse
	suite.decode(w, &resp)
	suite.True(resp.OpeningBalance.Equal(dec("6000")))
	suite.Require().NotNil(resp.Journal)
	suite.Equal("j-open-2", resp.Journal.JournalID)
}

func (suite *HandlersTestSuite) TestDeleteBankAccount() {
	reversal := sampleJournal("j-del", domain.PostingReference{Type: domain.RefDeleteBankAccount, ID: "1001"}, 10, 1001, "18350.00")
	suite.bankAccounts.On("DeleteBankAccount", mock.Anything, "ba-1", testUserID).Return(reversal, nil).Once()

	w := suite.do(http.MethodDelete, "/api/v1/bank-accounts/ba-1", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.JournalResponse
	suite.decode(w, &resp)
	suite.Equal("DELETE_BANK_ACCOUNT", resp.PostingReferenceType)
}

func (suite *HandlersTestSuite) TestDeleteBankAccount_NothingPosted() {
	suite.bankAccounts.On("DeleteBankAccount", mock.Anything, "ba-2", testUserID).Return(nil, nil).Once()

	w := suite.do(http.MethodDelete, "/api/v1/bank-accounts/ba-2", nil)

	suite.Equal(http.StatusNoContent, w.Code)
}
