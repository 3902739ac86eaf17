package mapping

import (
	"database/sql"

	"github.com/SscSPs/ledger_posting_engine/internal/core/domain"
	"github.com/SscSPs/ledger_posting_engine/internal/models"
)

// ToModelJournal converts a domain Journal to a model Journal
func ToModelJournal(d domain.Journal) models.Journal {
	m := models.Journal{
		JournalID:            d.JournalID,
		JournalDate:          d.JournalDate,
		PostingReferenceType: string(d.PostingReferenceType),
		Description:          d.Description,
		DeleteFlag:           d.DeleteFlag,
		AuditFields:          ToModelAuditFields(d.AuditFields),
	}
	if d.TransactionDate != nil {
		m.TransactionDate = sql.NullTime{Time: *d.TransactionDate, Valid: true}
	}
	if d.JournalReferenceNo != nil {
		m.JournalReferenceNo = sql.NullString{String: *d.JournalReferenceNo, Valid: true}
	}
	return m
}

// ToDomainJournal converts a model Journal to a domain Journal without its line items.
func ToDomainJournal(m models.Journal) domain.Journal {
	d := domain.Journal{
		JournalID:            m.JournalID,
		JournalDate:          m.JournalDate,
		PostingReferenceType: domain.PostingReferenceType(m.PostingReferenceType),
		Description:          m.Description,
		DeleteFlag:           m.DeleteFlag,
		AuditFields:          ToDomainAuditFields(m.AuditFields),
	}
	if m.TransactionDate.Valid {
		t := m.TransactionDate.Time
		d.TransactionDate = &t
	}
	if m.JournalReferenceNo.Valid {
		ref := m.JournalReferenceNo.String
		d.JournalReferenceNo = &ref
	}
	return d
}

// ToModelLineItem converts a domain JournalLineItem to a model JournalLineItem
func ToModelLineItem(d domain.JournalLineItem) models.JournalLineItem {
	return models.JournalLineItem{
		LineItemID:            d.LineItemID,
		JournalID:             d.JournalID,
		TransactionCategoryID: d.TransactionCategoryID,
		DebitAmount:           d.DebitAmount,
		CreditAmount:          d.CreditAmount,
		ReferenceType:         string(d.ReferenceType),
		ReferenceID:           d.ReferenceID,
		ExchangeRate:          d.ExchangeRate,
		DeleteFlag:            d.DeleteFlag,
		AuditFields:           ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLineItem converts a model JournalLineItem to a domain JournalLineItem
func ToDomainLineItem(m models.JournalLineItem) domain.JournalLineItem {
	return domain.JournalLineItem{
		LineItemID:            m.LineItemID,
		JournalID:             m.JournalID,
		TransactionCategoryID: m.TransactionCategoryID,
		DebitAmount:           m.DebitAmount,
		CreditAmount:          m.CreditAmount,
		ReferenceType:         domain.PostingReferenceType(m.ReferenceType),
		ReferenceID:           m.ReferenceID,
		ExchangeRate:          m.ExchangeRate,
		DeleteFlag:            m.DeleteFlag,
		AuditFields:           ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainLineItemSlice converts a slice of model line items to domain line items
func ToDomainLineItemSlice(ms []models.JournalLineItem) []domain.JournalLineItem {
	ds := make([]domain.JournalLineItem, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLineItem(m)
	}
	return ds
}
