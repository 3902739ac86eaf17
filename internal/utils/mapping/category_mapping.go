package mapping

import (
	"github.com/SscSPs/ledger_posting_engine/internal/core/domain"
	"github.com/SscSPs/ledger_posting_engine/internal/models"
)

// ToModelCategory converts a domain TransactionCategory to a model TransactionCategory
func ToModelCategory(d domain.TransactionCategory) models.TransactionCategory {
	return models.TransactionCategory{
		TransactionCategoryID:   d.CategoryID,
		TransactionCategoryCode: d.Code,
		TransactionCategoryName: d.Name,
		ChartOfAccountCode:      string(d.ChartOfAccountCode),
		DeleteFlag:              d.DeleteFlag,
		AuditFields:             ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCategory converts a model TransactionCategory to a domain TransactionCategory
func ToDomainCategory(m models.TransactionCategory) domain.TransactionCategory {
	return domain.TransactionCategory{
		CategoryID:         m.TransactionCategoryID,
		Code:               m.TransactionCategoryCode,
		Name:               m.TransactionCategoryName,
		ChartOfAccountCode: domain.ChartOfAccountCode(m.ChartOfAccountCode),
		DeleteFlag:         m.DeleteFlag,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelCategoryBalance converts a domain CategoryBalance to a model CategoryBalance
func ToModelCategoryBalance(d domain.CategoryBalance) models.CategoryBalance {
	return models.CategoryBalance{
		TransactionCategoryID: d.TransactionCategoryID,
		OpeningBalance:        d.OpeningBalance,
		RunningBalance:        d.RunningBalance,
		EffectiveDate:         d.EffectiveDate,
		Version:               d.Version,
		DeleteFlag:            d.DeleteFlag,
		AuditFields:           ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCategoryBalance converts a model CategoryBalance to a domain CategoryBalance
func ToDomainCategoryBalance(m models.CategoryBalance) domain.CategoryBalance {
	return domain.CategoryBalance{
		TransactionCategoryID: m.TransactionCategoryID,
		OpeningBalance:        m.OpeningBalance,
		RunningBalance:        m.RunningBalance,
		EffectiveDate:         m.EffectiveDate,
		Version:               m.Version,
		DeleteFlag:            m.DeleteFlag,
		AuditFields:           ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelClosingBalance converts a domain ClosingBalance to a model ClosingBalance
func ToModelClosingBalance(d domain.ClosingBalance) models.ClosingBalance {
	return models.ClosingBalance{
		ClosingBalanceID:      d.ClosingBalanceID,
		TransactionCategoryID: d.TransactionCategoryID,
		ClosingBalanceDate:    d.ClosingBalanceDate,
		OpeningBalance:        d.OpeningBalance,
		ClosingBalance:        d.ClosingBalance,
		DeleteFlag:            d.DeleteFlag,
		AuditFields:           ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainClosingBalance converts a model ClosingBalance to a domain ClosingBalance
func ToDomainClosingBalance(m models.ClosingBalance) domain.ClosingBalance {
	return domain.ClosingBalance{
		ClosingBalanceID:      m.ClosingBalanceID,
		TransactionCategoryID: m.TransactionCategoryID,
		ClosingBalanceDate:    m.ClosingBalanceDate,
		OpeningBalance:        m.OpeningBalance,
		ClosingBalance:        m.ClosingBalance,
		DeleteFlag:            m.DeleteFlag,
		AuditFields:           ToDomainAuditFields(m.AuditFields),
	}
}
