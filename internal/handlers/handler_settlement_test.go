package handlers_test

import (
	"net/http"

	"github.com/SscSPs/ledger_posting_engine/internal/apperrors"
	"github.com/SscSPs/ledger_posting_engine/internal/core/domain"
	portssvc "github.com/SscSPs/ledger_posting_engine/internal/core/ports/services"
	"github.com/SscSPs/ledger_posting_engine/internal/dto"
	"github.com/stretchr/testify/mock"
)

const receiptBody = `{
	"settlementID": "rcpt-1",
	"contactID": "cust-1",
	"depositCategoryID": 1001,
	"currencyCode": "USD",
	"amount": "1000",
	"bookedRate": "3.60",
	"clearedRate": "3.67",
	"settlementDate": "2024-03-01T00:00:00Z"
}`

func (suite *HandlersTestSuite) TestPostReceipt() {
	ref := domain.PostingReference{Type: domain.RefReceipt, ID: "rcpt-1"}
	suite.settlements.On("PostReceipt", mock.Anything, mock.MatchedBy(func(req dto.SettlementRequest) bool {
		return req.SettlementID == "rcpt-1" && req.ClearedRate != nil && req.ClearedRate.Equal(dec("3.67"))
	}), testUserID).Return(&portssvc.TransitionResult{
		Reference: ref,
		From:      domain.StateNone,
		To:        domain.StatePosted,
		Posted:    sampleJournal("j-rcpt", ref, 1001, 1100, "3670.00"),
	}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/receipts", receiptBody)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.TransitionResponse
	suite.decode(w, &resp)
	suite.Equal("NONE", resp.FromState)
	suite.Equal("POSTED", resp.ToState)
	suite.Nil(resp.Reversal)
	suite.Require().NotNil(resp.Posted)
}

func (suite *HandlersTestSuite) TestPostPayment_UsesPaymentService() {
	suite.settlements.On("PostPayment", mock.Anything, mock.Anything, testUserID).
		Return(nil, apperrors.NewConflictError("reference PAYMENT:rcpt-1 is already posted")).Once()

	w := suite.do(http.MethodPost, "/api/v1/payments", receiptBody)

	suite.Equal(http.StatusConflict, w.Code)
	suite.settlements.AssertNotCalled(suite.T(), "PostReceipt", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestPostReceipt_ZeroAmountRejected() {
	w := suite.do(http.MethodPost, "/api/v1/receipts", `{
		"settlementID": "rcpt-1",
		"contactID": "cust-1",
		"depositCategoryID": 1001,
		"currencyCode": "USD",
		"amount": "0",
		"bookedRate": "3.60",
		"settlementDate": "2024-03-01T00:00:00Z"
	}`)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlersTestSuite) TestUpdateReceipt_PathMismatch() {
	w := suite.do(http.MethodPut, "/api/v1/receipts/other", receiptBody)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlersTestSuite) TestUpdateReceipt() {
	ref := domain.PostingReference{Type: domain.RefReceipt, ID: "rcpt-1"}
	suite.settlements.On("UpdateSettlement", mock.Anything, domain.SettlementReceipt, mock.Anything, testUserID).
		Return(&portssvc.TransitionResult{
			Reference: ref,
			From:      domain.StatePosted,
			To:        domain.StateReversedReposted,
			Reversal:  sampleJournal("j-rev", domain.PostingReference{Type: domain.RefReverseReceipt, ID: "rcpt-1"}, 1100, 1001, "3670.00"),
			Posted:    sampleJournal("j-new", ref, 1001, 1100, "3550.00"),
		}, nil).Once()

	w := suite.do(http.MethodPut, "/api/v1/receipts/rcpt-1", receiptBody)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.TransitionResponse
	suite.decode(w, &resp)
	suite.Equal("REVERSED_REPOSTED", resp.ToState)
	suite.NotNil(resp.Reversal)
	suite.NotNil(resp.Posted)
}

func (suite *HandlersTestSuite) TestDeletePayment() {
	ref := domain.PostingReference{Type: domain.RefPayment, ID: "pay-1"}
	suite.settlements.On("DeleteSettlement", mock.Anything, domain.SettlementPayment, "pay-1", testUserID).
		Return(&portssvc.TransitionResult{Reference: ref, From: domain.StatePosted, To: domain.StateReversed}, nil).Once()

	w := suite.do(http.MethodDelete, "/api/v1/payments/pay-1", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.TransitionResponse
	suite.decode(w, &resp)
	suite.Equal("REVERSED", resp.ToState)
	suite.Equal("PAYMENT", resp.ReferenceType)
}

func (suite *HandlersTestSuite) TestRegisterContactCategory() {
	req := dto.RegisterContactCategoryRequest{ContactType: domain.ContactCustomer, TransactionCategoryID: 1100}
	suite.settlements.On("RegisterContactCategory", mock.Anything, "cust-1", req, testUserID).
		Return(&domain.ContactCategoryRelation{ContactID: "cust-1", ContactType: domain.ContactCustomer, TransactionCategoryID: 1100}, nil).Once()

	w := suite.do(http.MethodPut, "/api/v1/contacts/cust-1/category", req)

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlersTestSuite) TestRegisterContactCategory_InvalidType() {
	w := suite.do(http.MethodPut, "/api/v1/contacts/cust-1/category", `{"contactType": "VENDOR", "transactionCategoryID": 1100}`)

	suite.Equal(http.StatusBadRequest, w.Code)
}
