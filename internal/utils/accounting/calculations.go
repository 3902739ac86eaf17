package accounting

import (
	"fmt"
	"time"

	"github.com/SscSPs/ledger_posting_engine/internal/apperrors"
	"github.com/SscSPs/ledger_posting_engine/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ValidateLineItem checks that a line carries exactly one non-negative, non-zero side in whole minor units.
func ValidateLineItem(li domain.JournalLineItem) error {
	if li.DebitAmount.IsNegative() || li.CreditAmount.IsNegative() {
		return apperrors.NewPostingError(fmt.Sprintf("line on category %d has a negative amount", li.TransactionCategoryID), nil)
	}
	if li.DebitAmount.IsZero() == li.CreditAmount.IsZero() {
		return apperrors.NewPostingError(fmt.Sprintf("line on category %d must have exactly one of debit or credit", li.TransactionCategoryID), nil)
	}
	if li.TransactionCategoryID <= 0 {
		return apperrors.NewPostingError("line item has no transaction category", nil)
	}
	// Amounts are stored as NUMERIC(20,2); finer amounts would be rounded by the database after validation
	for _, amt := range []decimal.Decimal{li.DebitAmount, li.CreditAmount} {
		if !amt.Equal(amt.Round(MoneyScale)) {
			return apperrors.NewPostingError(fmt.Sprintf("line on category %d has amount %s with more than %d decimals", li.TransactionCategoryID, amt, MoneyScale), nil)
		}
	}
	return nil
}

// ValidateJournalBalance checks that the non-deleted lines of a journal balance at money precision.
func ValidateJournalBalance(journal domain.Journal) error {
	active := 0
	for _, li := range journal.LineItems {
		if li.DeleteFlag {
			continue
		}
		if err := ValidateLineItem(li); err != nil {
			return err
		}
		active++
	}
	if active < 2 {
		return apperrors.NewPostingError("journal must have at least two line items", nil)
	}

	debit := journal.TotalDebit()
	credit := journal.TotalCredit()
	if !debit.Equal(credit) {
		return apperrors.NewPostingError(fmt.Sprintf("journal does not balance: debit %s, credit %s", debit.StringFixed(MoneyScale), credit.StringFixed(MoneyScale)), nil)
	}
	return nil
}

// LineSpec describes one leg before ids and audit data are attached.
type LineSpec struct {
	CategoryID   int64
	Debit        decimal.Decimal
	Credit       decimal.Decimal
	ExchangeRate decimal.Decimal
}

// PairedLines returns a debit leg and a credit leg of the same amount.
func PairedLines(debitCategoryID, creditCategoryID int64, amount, rate decimal.Decimal) []LineSpec {
	return []LineSpec{
		{CategoryID: debitCategoryID, Debit: amount, Credit: decimal.Zero, ExchangeRate: rate},
		{CategoryID: creditCategoryID, Debit: decimal.Zero, Credit: amount, ExchangeRate: rate},
	}
}

// MirrorLineItems swaps the debit and credit side of every line, retagging it with reverseType.
// Category, reference id and exchange rate are carried over unchanged.
func MirrorLineItems(lines []domain.JournalLineItem, journalID string, reverseType domain.PostingReferenceType, userID string, now time.Time, newID func() string) []domain.JournalLineItem {
	mirrored := make([]domain.JournalLineItem, 0, len(lines))
	for _, li := range lines {
		mirrored = append(mirrored, domain.JournalLineItem{
			LineItemID:            newID(),
			JournalID:             journalID,
			TransactionCategoryID: li.TransactionCategoryID,
			DebitAmount:           li.CreditAmount,
			CreditAmount:          li.DebitAmount,
			ReferenceType:         reverseType,
			ReferenceID:           li.ReferenceID,
			ExchangeRate:          li.ExchangeRate,
			AuditFields:           domain.NewAuditFields(userID, now),
		})
	}
	return mirrored
}
