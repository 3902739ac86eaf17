package dto

import (
	"time"

	"github.com/SscSPs/ledger_posting_engine/internal/core/domain"
	"github.com/shopspring/decimal"
)

// JournalLineRequest is one leg of a manually posted journal.
type JournalLineRequest struct {
	TransactionCategoryID int64           `json:"transactionCategoryID" binding:"required,gt=0"`
	DebitAmount           decimal.Decimal `json:"debitAmount" binding:"decimal_gte0"`
	CreditAmount          decimal.Decimal `json:"creditAmount" binding:"decimal_gte0"`
	ExchangeRate          decimal.Decimal `json:"exchangeRate"`
}

// PostJournalRequest posts a manual journal. JournalID doubles as an idempotency key.
type PostJournalRequest struct {
	JournalID          string               `json:"journalID" binding:"omitempty,uuid"`
	JournalDate        time.Time            `json:"journalDate" binding:"required"`
	TransactionDate    *time.Time           `json:"transactionDate"`
	JournalReferenceNo *string              `json:"journalReferenceNo"`
	Description        string               `json:"description" binding:"max=500"`
	ReferenceID        string               `json:"referenceID"`
	Lines              []JournalLineRequest `json:"lines" binding:"required,min=2,dive"`
}

// ReverseRequest reverses every active line of a reference.
type ReverseRequest struct {
	ReferenceType domain.PostingReferenceType `json:"referenceType" binding:"required"`
	ReferenceID   string                      `json:"referenceID" binding:"required"`
}

// PreviewRequest builds the journal for exactly one event without persisting it.
type PreviewRequest struct {
	BankAccountOpening  *domain.BankAccountOpeningEvent  `json:"bankAccountOpening"`
	BankAccountDeletion *domain.BankAccountDeletionEvent `json:"bankAccountDeletion"`
	TaxFiled            *domain.TaxFiledEvent            `json:"taxFiled"`
	TaxUnfiled          *domain.TaxUnfiledEvent          `json:"taxUnfiled"`
	Settlement          *domain.SettlementEvent          `json:"settlement"`
}

// Event returns the single event carried by the request, or nil when zero or several are set.
func (r PreviewRequest) Event() domain.PostingEvent {
	var events []domain.PostingEvent
	if r.BankAccountOpening != nil {
		events = append(events, *r.BankAccountOpening)
	}
	if r.BankAccountDeletion != nil {
		events = append(events, *r.BankAccountDeletion)
	}
	if r.TaxFiled != nil {
		events = append(events, *r.TaxFiled)
	}
	if r.TaxUnfiled != nil {
		events = append(events, *r.TaxUnfiled)
	}
	if r.Settlement != nil {
		events = append(events, *r.Settlement)
	}
	if len(events) != 1 {
		return nil
	}
	return events[0]
}

// LineItemResponse defines the data returned for a journal line item.
type LineItemResponse struct {
	LineItemID            string          `json:"lineItemID"`
	JournalID             string          `json:"journalID"`
	TransactionCategoryID int64           `json:"transactionCategoryID"`
	DebitAmount           decimal.Decimal `json:"debitAmount"`
	CreditAmount          decimal.Decimal `json:"creditAmount"`
	ReferenceType         string          `json:"referenceType"`
	ReferenceID           string          `json:"referenceID"`
	ExchangeRate          decimal.Decimal `json:"exchangeRate"`
	DeleteFlag            bool            `json:"deleteFlag"`
	CreatedAt             time.Time       `json:"createdAt"`
	CreatedBy             string          `json:"createdBy"`
}

// JournalResponse defines the data returned for a journal entry.
type JournalResponse struct {
	JournalID            string             `json:"journalID"`
	JournalDate          time.Time          `json:"journalDate"`
	TransactionDate      *time.Time         `json:"transactionDate,omitempty"`
	PostingReferenceType string             `json:"postingReferenceType"`
	JournalReferenceNo   *string            `json:"journalReferenceNo,omitempty"`
	Description          string             `json:"description"`
	DeleteFlag           bool               `json:"deleteFlag"`
	TotalDebit           decimal.Decimal    `json:"totalDebit"`
	TotalCredit          decimal.Decimal    `json:"totalCredit"`
	LineItems            []LineItemResponse `json:"lineItems"`
	CreatedAt            time.Time          `json:"createdAt"`
	CreatedBy            string             `json:"createdBy"`
}

// TransitionResponse reports the outcome of a posting transition.
type TransitionResponse struct {
	ReferenceType string           `json:"referenceType"`
	ReferenceID   string           `json:"referenceID"`
	FromState     string           `json:"fromState"`
	ToState       string           `json:"toState"`
	Reversal      *JournalResponse `json:"reversal,omitempty"`
	Posted        *JournalResponse `json:"posted,omitempty"`
}

// PostingStateResponse reports the ledger state of a reference.
type PostingStateResponse struct {
	ReferenceType string `json:"referenceType"`
	ReferenceID   string `json:"referenceID"`
	State         string `json:"state"`
}

// ListLineItemsParams defines parameters for listing line items of a category.
type ListLineItemsParams struct {
	From      time.Time `form:"from" time_format:"2006-01-02" time_utc:"1"`
	To        time.Time `form:"to" time_format:"2006-01-02" time_utc:"1"`
	Limit     int       `form:"limit,default=50" binding:"omitempty,min=1,max=500"`
	NextToken *string   `form:"nextToken"`
}

// ListLineItemsResponse wraps a page of line items.
type ListLineItemsResponse struct {
	LineItems []LineItemResponse `json:"lineItems"`
	NextToken *string            `json:"nextToken,omitempty"`
}

// ToLineItemResponse converts a domain.JournalLineItem to LineItemResponse DTO.
func ToLineItemResponse(li domain.JournalLineItem) LineItemResponse {
	return LineItemResponse{
		LineItemID:            li.LineItemID,
		JournalID:             li.JournalID,
		TransactionCategoryID: li.TransactionCategoryID,
		DebitAmount:           li.DebitAmount,
		CreditAmount:          li.CreditAmount,
		ReferenceType:         string(li.ReferenceType),
		ReferenceID:           li.ReferenceID,
		ExchangeRate:          li.ExchangeRate,
		DeleteFlag:            li.DeleteFlag,
		CreatedAt:             li.CreatedAt,
		CreatedBy:             li.CreatedBy,
	}
}

// ToLineItemResponses converts a slice of line items.
func ToLineItemResponses(items []domain.JournalLineItem) []LineItemResponse {
	responses := make([]LineItemResponse, len(items))
	for i, li := range items {
		responses[i] = ToLineItemResponse(li)
	}
	return responses
}

// ToJournalResponse converts a domain.Journal to JournalResponse DTO. A nil journal maps to nil.
func ToJournalResponse(j *domain.Journal) *JournalResponse {
	if j == nil {
		return nil
	}
	return &JournalResponse{
		JournalID:            j.JournalID,
		JournalDate:          j.JournalDate,
		TransactionDate:      j.TransactionDate,
		PostingReferenceType: string(j.PostingReferenceType),
		JournalReferenceNo:   j.JournalReferenceNo,
		Description:          j.Description,
		DeleteFlag:           j.DeleteFlag,
		TotalDebit:           j.TotalDebit(),
		TotalCredit:          j.TotalCredit(),
		LineItems:            ToLineItemResponses(j.LineItems),
		CreatedAt:            j.CreatedAt,
		CreatedBy:            j.CreatedBy,
	}
}
