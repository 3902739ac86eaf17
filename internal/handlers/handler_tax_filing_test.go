package handlers_test

import (
	"net/http"
	"time"

	"github.com/SscSPs/ledger_posting_engine/internal/apperrors"
	"github.com/SscSPs/ledger_posting_engine/internal/core/domain"
	"github.com/SscSPs/ledger_posting_engine/internal/dto"
	"github.com/stretchr/testify/mock"
)

func sampleFiling(status domain.TaxFilingStatus) *domain.CorporateTaxFiling {
	return &domain.CorporateTaxFiling{
		FilingID:      "tax-2023",
		StartDate:     day(2023, 1, 1),
		EndDate:       day(2023, 12, 31),
		NetIncome:     dec("475000"),
		TaxableAmount: dec("100000"),
		TaxAmount:     dec("9000"),
		BalanceDue:    dec("9000"),
		Status:        status,
	}
}

func (suite *HandlersTestSuite) TestCreateTaxFiling() {
	suite.taxFilings.On("CreateTaxFiling", mock.Anything, mock.Anything, testUserID).
		Return(sampleFiling(domain.TaxUnfiled), nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/tax-filings", `{
		"startDate": "2023-01-01T00:00:00Z",
		"endDate": "2023-12-31T00:00:00Z",
		"netIncome": "475000"
	}`)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.TaxFilingResponse
	suite.decode(w, &resp)
	suite.True(resp.TaxAmount.Equal(dec("9000")))
	suite.Nil(resp.Journal)
}

func (suite *HandlersTestSuite) TestFileTaxFiling() {
	filedOn := day(2024, 3, 31)
	filed := sampleFiling(domain.TaxFiled)
	filed.TaxFiledOn = &filedOn
	ref := domain.PostingReference{Type: domain.RefCorporateTaxFiled, ID: "tax-2023"}
	suite.taxFilings.On("FileTaxFiling", mock.Anything, "tax-2023", mock.MatchedBy(func(t time.Time) bool {
		return t.Equal(filedOn)
	}), testUserID).Return(filed, sampleJournal("j-tax", ref, 20, 30, "9000.00"), nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/tax-filings/tax-2023/file", dto.FileTaxRequest{TaxFiledOn: filedOn})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.TaxFilingResponse
	suite.decode(w, &resp)
	suite.Equal("FILED", resp.Status)
	suite.Require().NotNil(resp.Journal)
	suite.Equal("CORPORATE_TAX_REPORT_FILED", resp.Journal.PostingReferenceType)
}

func (suite *HandlersTestSuite) TestFileTaxFiling_AlreadyFiled() {
	suite.taxFilings.On("FileTaxFiling", mock.Anything, "tax-2023", mock.Anything, testUserID).
		Return(nil, nil, apperrors.NewConflictError("filing tax-2023 is already filed")).Once()

	w := suite.do(http.MethodPost, "/api/v1/tax-filings/tax-2023/file", dto.FileTaxRequest{TaxFiledOn: day(2024, 3, 31)})

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlersTestSuite) TestFileTaxFiling_MissingDate() {
	w := suite.do(http.MethodPost, "/api/v1/tax-filings/tax-2023/file", `{}`)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlersTestSuite) TestUnfileTaxFiling() {
	ref := domain.PostingReference{Type: domain.RefCorporateTaxUnfiled, ID: "tax-2023"}
	suite.taxFilings.On("UnfileTaxFiling", mock.Anything, "tax-2023", testUserID).
		Return(sampleFiling(domain.TaxUnfiled), sampleJournal("j-untax", ref, 30, 20, "9000.00"), nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/tax-filings/tax-2023/unfile", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.TaxFilingResponse
	suite.decode(w, &resp)
	suite.Equal("UN_FILED", resp.Status)
}
