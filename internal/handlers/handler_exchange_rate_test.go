package handlers_test

import (
	"net/http"
	"time"

	"github.com/SscSPs/ledger_posting_engine/internal/apperrors"
	"github.com/SscSPs/ledger_posting_engine/internal/core/domain"
	"github.com/SscSPs/ledger_posting_engine/internal/dto"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlersTestSuite) TestCreateExchangeRate() {
	suite.rates.On("CreateExchangeRate", mock.Anything, mock.MatchedBy(func(req dto.CreateExchangeRateRequest) bool {
		return req.FromCurrencyCode == "USD" && req.Rate.Equal(dec("3.6725"))
	}), testUserID).Return(&domain.ExchangeRate{
		ExchangeRateID: "rate-1",
		FromCurrency:   "USD",
		ToCurrency:     "AED",
		Rate:           dec("3.6725"),
		EffectiveDate:  day(2024, 1, 1),
	}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/exchange-rates", `{
		"fromCurrencyCode": "USD",
		"toCurrencyCode": "AED",
		"rate": "3.6725",
		"dateEffective": "2024-01-01T00:00:00Z"
	}`)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.ExchangeRateResponse
	suite.decode(w, &resp)
	suite.Equal("rate-1", resp.ExchangeRateID)
}

func (suite *HandlersTestSuite) TestCreateExchangeRate_SameCurrencyRejected() {
	w := suite.do(http.MethodPost, "/api/v1/exchange-rates", `{
		"fromCurrencyCode": "USD",
		"toCurrencyCode": "USD",
		"rate": "1",
		"dateEffective": "2024-01-01T00:00:00Z"
	}`)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlersTestSuite) TestGetExchangeRate_AsOf() {
	suite.rates.On("GetExchangeRate", mock.Anything, "USD", "AED", day(2024, 2, 20)).
		Return(&domain.ExchangeRate{ExchangeRateID: "rate-2", FromCurrency: "USD", ToCurrency: "AED", Rate: dec("3.67")}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/exchange-rates/USD/AED?asOf=2024-02-20", nil)

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlersTestSuite) TestGetExchangeRate_NotFound() {
	suite.rates.On("GetExchangeRate", mock.Anything, "USD", "JPY", mock.AnythingOfType("time.Time")).
		Return(nil, apperrors.NewNotFoundError("no USD/JPY rate")).Once()

	w := suite.do(http.MethodGet, "/api/v1/exchange-rates/USD/JPY", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlersTestSuite) TestResolveRate() {
	suite.rates.On("ResolveRate", mock.Anything, "USD", mock.MatchedBy(func(t time.Time) bool {
		return t.Equal(day(2024, 3, 1))
	})).Return(dec("3.67"), nil).Once()
	suite.rates.On("BaseCurrency").Return("AED").Once()

	w := suite.do(http.MethodGet, "/api/v1/exchange-rates/resolve/usd?asOf=2024-03-01", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ResolvedRateResponse
	suite.decode(w, &resp)
	suite.Equal("AED", resp.BaseCurrency)
	suite.True(resp.Rate.Equal(dec("3.67")))
}
