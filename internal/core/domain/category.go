package domain

// ChartOfAccountCode is the parent classification of a transaction category.
type ChartOfAccountCode string

const (
	CoAAccountsReceivable      ChartOfAccountCode = "ACCOUNTS_RECEIVABLE"
	CoABank                    ChartOfAccountCode = "BANK"
	CoACash                    ChartOfAccountCode = "CASH"
	CoACurrentAsset            ChartOfAccountCode = "CURRENT_ASSET"
	CoAFixedAsset              ChartOfAccountCode = "FIXED_ASSET"
	CoAOtherCurrentAsset       ChartOfAccountCode = "OTHER_CURRENT_ASSET"
	CoAStock                   ChartOfAccountCode = "STOCK"
	CoAOtherLiability          ChartOfAccountCode = "OTHER_LIABILITY"
	CoAOtherCurrentLiabilities ChartOfAccountCode = "OTHER_CURRENT_LIABILITIES"
	CoAEquity                  ChartOfAccountCode = "EQUITY"
	CoAAccountsPayable         ChartOfAccountCode = "ACCOUNTS_PAYABLE"
	CoAIncome                  ChartOfAccountCode = "INCOME"
	CoAAdminExpense            ChartOfAccountCode = "ADMIN_EXPENSE"
	CoACostOfGoodsSold         ChartOfAccountCode = "COST_OF_GOODS_SOLD"
	CoAOtherExpense            ChartOfAccountCode = "OTHER_EXPENSE"
)

// TransactionCategoryCode identifies well-known categories seeded with the chart of accounts.
type TransactionCategoryCode string

const (
	CodeOpeningBalanceOffsetLiabilities TransactionCategoryCode = "OPENING_BALANCE_OFFSET_LIABILITIES"
	CodeOpeningBalanceOffsetAssets      TransactionCategoryCode = "OPENING_BALANCE_OFFSET_ASSETS"
	CodeCorporationTax                  TransactionCategoryCode = "CORPORATION_TAX"
	CodeRetainedEarnings                TransactionCategoryCode = "RETAINED_EARNINGS"
	CodeRealisedExchangeGain            TransactionCategoryCode = "REALISED_EXCHANGE_GAIN"
	CodeRealisedExchangeLoss            TransactionCategoryCode = "REALISED_EXCHANGE_LOSS"
)

// ExchangeGainCategoryID is the seeded id of the realised exchange gain category.
// A gain/loss line on this category is booked on the credit side, any other on the debit side.
const ExchangeGainCategoryID int64 = 79

// TransactionCategory is a leaf account in the chart of accounts.
type TransactionCategory struct {
	CategoryID         int64              `json:"categoryID"`
	Code               string             `json:"code"`
	Name               string             `json:"name"`
	ChartOfAccountCode ChartOfAccountCode `json:"chartOfAccountCode"`
	DeleteFlag         bool               `json:"deleteFlag"`
	AuditFields
}

// ContactType distinguishes customers from suppliers when resolving a counterparty category.
type ContactType string

const (
	ContactCustomer ContactType = "CUSTOMER"
	ContactSupplier ContactType = "SUPPLIER"
)

// ContactCategoryRelation binds a contact, in a given role, to its receivable or payable category.
type ContactCategoryRelation struct {
	ContactID             string      `json:"contactID"`
	ContactType           ContactType `json:"contactType"`
	TransactionCategoryID int64       `json:"transactionCategoryID"`
	AuditFields
}
