package handlers_test

import (
	"errors"
	"net/http"

	"github.com/SscSPs/ledger_posting_engine/internal/apperrors"
	"github.com/SscSPs/ledger_posting_engine/internal/core/domain"
	"github.com/SscSPs/ledger_posting_engine/internal/dto"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlersTestSuite) TestPostManualJournal_Success() {
	ref := domain.PostingReference{Type: domain.RefManual, ID: "ref-1"}
	journal := sampleJournal("j-1", ref, 1001, 10, "250.00")
	suite.journals.On("PostManualJournal", mock.Anything, mock.MatchedBy(func(req dto.PostJournalRequest) bool {
		return len(req.Lines) == 2 && req.ReferenceID == "ref-1" && req.Lines[0].DebitAmount.Equal(dec("250"))
	}), testUserID).Return(journal, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/journals", `{
		"journalDate": "2024-03-01T00:00:00Z",
		"referenceID": "ref-1",
		"lines": [
			{"transactionCategoryID": 1001, "debitAmount": "250"},
			{"transactionCategoryID": 10, "creditAmount": "250"}
		]
	}`)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.JournalResponse
	suite.decode(w, &resp)
	suite.Equal("j-1", resp.JournalID)
	suite.Len(resp.LineItems, 2)
	suite.True(resp.TotalDebit.Equal(resp.TotalCredit))
}

func (suite *HandlersTestSuite) TestPostManualJournal_SingleLineRejected() {
	w := suite.do(http.MethodPost, "/api/v1/journals", `{
		"journalDate": "2024-03-01T00:00:00Z",
		"lines": [{"transactionCategoryID": 1001, "debitAmount": "250"}]
	}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.journals.AssertNotCalled(suite.T(), "PostManualJournal", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestPostManualJournal_NegativeAmountRejected() {
	w := suite.do(http.MethodPost, "/api/v1/journals", `{
		"journalDate": "2024-03-01T00:00:00Z",
		"lines": [
			{"transactionCategoryID": 1001, "debitAmount": "-5"},
			{"transactionCategoryID": 10, "creditAmount": "-5"}
		]
	}`)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlersTestSuite) TestPostManualJournal_Unbalanced() {
	suite.journals.On("PostManualJournal", mock.Anything, mock.Anything, testUserID).
		Return(nil, apperrors.NewPostingError("debits 100 do not equal credits 90", nil)).Once()

	w := suite.do(http.MethodPost, "/api/v1/journals", `{
		"journalDate": "2024-03-01T00:00:00Z",
		"lines": [
			{"transactionCategoryID": 1001, "debitAmount": "100"},
			{"transactionCategoryID": 10, "creditAmount": "90"}
		]
	}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "do not equal")
}

func (suite *HandlersTestSuite) TestGetJournal_NotFound() {
	suite.journals.On("GetJournalByID", mock.Anything, "missing").
		Return(nil, apperrors.NewNotFoundError("journal missing")).Once()

	w := suite.do(http.MethodGet, "/api/v1/journals/missing", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlersTestSuite) TestGetJournal_InternalErrorHidden() {
	suite.journals.On("GetJournalByID", mock.Anything, "j-1").
		Return(nil, errors.New("connection reset by peer")).Once()

	w := suite.do(http.MethodGet, "/api/v1/journals/j-1", nil)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.NotContains(w.Body.String(), "connection reset")
	suite.Contains(w.Body.String(), "Failed to retrieve journal")
}

func (suite *HandlersTestSuite) TestPreview_SettlementEvent() {
	ref := domain.PostingReference{Type: domain.RefReceipt, ID: "rcpt-1"}
	suite.journals.On("Preview", mock.Anything, mock.MatchedBy(func(e domain.PostingEvent) bool {
		s, ok := e.(domain.SettlementEvent)
		return ok && s.SettlementID == "rcpt-1" && s.Kind == domain.SettlementReceipt
	}), testUserID).Return(sampleJournal("preview", ref, 1001, 1100, "3670.00"), nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/journals/preview", `{
		"settlement": {
			"kind": "RECEIPT",
			"settlementID": "rcpt-1",
			"contactID": "cust-1",
			"depositCategoryID": 1001,
			"currencyCode": "USD",
			"amount": "1000",
			"bookedRate": "3.60",
			"clearedRate": "3.67",
			"settlementDate": "2024-03-01T00:00:00Z"
		}
	}`)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.JournalResponse
	suite.decode(w, &resp)
	suite.Equal("RECEIPT", resp.PostingReferenceType)
}

func (suite *HandlersTestSuite) TestReverseReference_NothingToReverse() {
	ref := domain.PostingReference{Type: domain.RefManual, ID: "ref-9"}
	suite.journals.On("ReverseReference", mock.Anything, ref, testUserID).Return(nil, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/postings/reverse", dto.ReverseRequest{ReferenceType: domain.RefManual, ReferenceID: "ref-9"})

	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *HandlersTestSuite) TestReverseReference_Success() {
	ref := domain.PostingReference{Type: domain.RefManual, ID: "ref-1"}
	reversal := sampleJournal("j-rev", domain.PostingReference{Type: domain.RefReverseManual, ID: "ref-1"}, 10, 1001, "250.00")
	suite.journals.On("ReverseReference", mock.Anything, ref, testUserID).Return(reversal, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/postings/reverse", dto.ReverseRequest{ReferenceType: domain.RefManual, ReferenceID: "ref-1"})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.JournalResponse
	suite.decode(w, &resp)
	suite.Equal("REVERSE_MANUAL", resp.PostingReferenceType)
}

func (suite *HandlersTestSuite) TestReverseReference_OwnedTypeRejected() {
	ref := domain.PostingReference{Type: domain.RefBankAccount, ID: "1001"}
	suite.journals.On("ReverseReference", mock.Anything, ref, testUserID).
		Return(nil, apperrors.NewValidationError("BANK_ACCOUNT references must be reversed through their own endpoint")).Once()

	w := suite.do(http.MethodPost, "/api/v1/postings/reverse", dto.ReverseRequest{ReferenceType: domain.RefBankAccount, ReferenceID: "1001"})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlersTestSuite) TestGetPostingState() {
	ref := domain.PostingReference{Type: domain.RefBankAccount, ID: "1001"}
	suite.journals.On("GetPostingState", mock.Anything, ref).Return(domain.StateReversedReposted, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/postings/BANK_ACCOUNT/1001/state", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.PostingStateResponse
	suite.decode(w, &resp)
	suite.Equal("REVERSED_REPOSTED", resp.State)
	suite.Equal("1001", resp.ReferenceID)
}
