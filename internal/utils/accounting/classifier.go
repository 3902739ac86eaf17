package accounting

import (
	"github.com/SscSPs/ledger_posting_engine/internal/apperrors"
	"github.com/SscSPs/ledger_posting_engine/internal/core/domain"
)

// offsetTable maps every chart-of-account code to the category that balances a
// one-sided opening balance posted against it.
// Payables, income and expense classes fall back to the liabilities offset.
var offsetTable = map[domain.ChartOfAccountCode]domain.TransactionCategoryCode{
	domain.CoAAccountsReceivable: domain.CodeOpeningBalanceOffsetLiabilities,
	domain.CoABank:               domain.CodeOpeningBalanceOffsetLiabilities,
	domain.CoACash:               domain.CodeOpeningBalanceOffsetLiabilities,
	domain.CoACurrentAsset:       domain.CodeOpeningBalanceOffsetLiabilities,
	domain.CoAFixedAsset:         domain.CodeOpeningBalanceOffsetLiabilities,
	domain.CoAOtherCurrentAsset:  domain.CodeOpeningBalanceOffsetLiabilities,
	domain.CoAStock:              domain.CodeOpeningBalanceOffsetLiabilities,

	domain.CoAOtherLiability:          domain.CodeOpeningBalanceOffsetAssets,
	domain.CoAOtherCurrentLiabilities: domain.CodeOpeningBalanceOffsetAssets,
	domain.CoAEquity:                  domain.CodeOpeningBalanceOffsetAssets,

	domain.CoAAccountsPayable: domain.CodeOpeningBalanceOffsetLiabilities,
	domain.CoAIncome:          domain.CodeOpeningBalanceOffsetLiabilities,
	domain.CoAAdminExpense:    domain.CodeOpeningBalanceOffsetLiabilities,
	domain.CoACostOfGoodsSold: domain.CodeOpeningBalanceOffsetLiabilities,
	domain.CoAOtherExpense:    domain.CodeOpeningBalanceOffsetLiabilities,
}

// knownCodes keeps the enumeration order stable for callers that list it.
var knownCodes = []domain.ChartOfAccountCode{
	domain.CoAAccountsReceivable,
	domain.CoABank,
	domain.CoACash,
	domain.CoACurrentAsset,
	domain.CoAFixedAsset,
	domain.CoAOtherCurrentAsset,
	domain.CoAStock,
	domain.CoAOtherLiability,
	domain.CoAOtherCurrentLiabilities,
	domain.CoAEquity,
	domain.CoAAccountsPayable,
	domain.CoAIncome,
	domain.CoAAdminExpense,
	domain.CoACostOfGoodsSold,
	domain.CoAOtherExpense,
}

// ClassifyOffset returns the offset category code for a chart-of-account code.
// An unregistered code is a CategoryClassificationError; callers must not guess.
func ClassifyOffset(code domain.ChartOfAccountCode) (domain.TransactionCategoryCode, error) {
	offset, ok := offsetTable[code]
	if !ok {
		return "", &apperrors.CategoryClassificationError{ChartOfAccountCode: string(code)}
	}
	return offset, nil
}

// KnownChartOfAccountCodes returns a copy of the fixed chart-of-account enumeration.
func KnownChartOfAccountCodes() []domain.ChartOfAccountCode {
	out := make([]domain.ChartOfAccountCode, len(knownCodes))
	copy(out, knownCodes)
	return out
}

// IsKnownChartOfAccountCode reports whether code is part of the enumeration.
func IsKnownChartOfAccountCode(code domain.ChartOfAccountCode) bool {
	_, ok := offsetTable[code]
	return ok
}
