package handlers_test

import (
	"net/http"

	"github.com/SscSPs/ledger_posting_engine/internal/apperrors"
	"github.com/SscSPs/ledger_posting_engine/internal/core/domain"
	"github.com/SscSPs/ledger_posting_engine/internal/dto"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlersTestSuite) TestCreateCategory_Success() {
	req := dto.CreateCategoryRequest{Code: "BANK-ENBD", Name: "Emirates NBD", ChartOfAccountCode: domain.CoABank}
	suite.categories.On("CreateCategory", mock.Anything, req, testUserID).Return(&domain.TransactionCategory{
		CategoryID:         1001,
		Code:               req.Code,
		Name:               req.Name,
		ChartOfAccountCode: domain.CoABank,
	}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/categories", req)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.CategoryResponse
	suite.decode(w, &resp)
	suite.Equal(int64(1001), resp.CategoryID)
	suite.Equal(string(domain.CodeOpeningBalanceOffsetLiabilities), resp.OffsetCategoryCode)
}

func (suite *HandlersTestSuite) TestCreateCategory_UnknownChartCode() {
	req := dto.CreateCategoryRequest{Code: "X", Name: "X", ChartOfAccountCode: "CRYPTO"}
	suite.categories.On("CreateCategory", mock.Anything, req, testUserID).
		Return(nil, &apperrors.CategoryClassificationError{ChartOfAccountCode: "CRYPTO"}).Once()

	w := suite.do(http.MethodPost, "/api/v1/categories", req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "CRYPTO")
}

func (suite *HandlersTestSuite) TestCreateCategory_Duplicate() {
	req := dto.CreateCategoryRequest{Code: "BANK-ENBD", Name: "Emirates NBD", ChartOfAccountCode: domain.CoABank}
	suite.categories.On("CreateCategory", mock.Anything, req, testUserID).Return(nil, apperrors.ErrDuplicate).Once()

	w := suite.do(http.MethodPost, "/api/v1/categories", req)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlersTestSuite) TestGetCategory_InvalidID() {
	w := suite.do(http.MethodGet, "/api/v1/categories/abc", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlersTestSuite) TestGetCategoryBalance() {
	suite.categories.On("GetCategoryBalance", mock.Anything, int64(1001), testUserID).Return(&domain.CategoryBalance{
		TransactionCategoryID: 1001,
		RunningBalance:        dec("18350.00"),
		EffectiveDate:         day(2024, 1, 1),
		Version:               3,
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/categories/1001/balance", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.CategoryBalanceResponse
	suite.decode(w, &resp)
	suite.True(resp.RunningBalance.Equal(dec("18350")))
	suite.Equal(int64(3), resp.Version)
}

func (suite *HandlersTestSuite) TestListClosingBalances_BindsDates() {
	suite.categories.On("ListClosingBalances", mock.Anything, int64(1001), day(2024, 1, 1), day(2024, 1, 31)).
		Return([]domain.ClosingBalance{
			{TransactionCategoryID: 1001, ClosingBalanceDate: day(2024, 1, 2), OpeningBalance: dec("0"), ClosingBalance: dec("100")},
		}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/categories/1001/closing-balances?from=2024-01-01&to=2024-01-31", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.ClosingBalanceResponse
	suite.decode(w, &resp)
	suite.Require().Len(resp, 1)
	suite.True(resp[0].ClosingBalance.Equal(dec("100")))
}

func (suite *HandlersTestSuite) TestListClosingBalances_BadDate() {
	w := suite.do(http.MethodGet, "/api/v1/categories/1001/closing-balances?from=01/01/2024", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlersTestSuite) TestReconcileCategory() {
	result := domain.NewReconciliationResult(1001, dec("100"), dec("100"))
	suite.categories.On("ReconcileCategory", mock.Anything, int64(1001)).Return(result, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/categories/1001/reconcile", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp domain.ReconciliationResult
	suite.decode(w, &resp)
	suite.True(resp.Consistent)
}

func (suite *HandlersTestSuite) TestListLineItems_DefaultLimit() {
	suite.journals.On("ListLineItemsByCategory", mock.Anything, int64(1001), mock.MatchedBy(func(p dto.ListLineItemsParams) bool {
		return p.Limit == 50 && p.NextToken == nil
	})).Return(&dto.ListLineItemsResponse{LineItems: []dto.LineItemResponse{}}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/categories/1001/line-items", nil)

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlersTestSuite) TestListLineItems_BadToken() {
	suite.journals.On("ListLineItemsByCategory", mock.Anything, int64(1001), mock.Anything).
		Return(nil, apperrors.NewAppError(http.StatusBadRequest, "invalid nextToken", nil)).Once()

	w := suite.do(http.MethodGet, "/api/v1/categories/1001/line-items?nextToken=garbage", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}
