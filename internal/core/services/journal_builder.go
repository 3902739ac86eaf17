package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/ledger_posting_engine/internal/apperrors"
	"github.com/SscSPs/ledger_posting_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_posting_engine/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_posting_engine/internal/core/ports/services"
	"github.com/SscSPs/ledger_posting_engine/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// JournalBuilder turns business events into balanced journals. It never writes.
type JournalBuilder struct {
	BaseService
	categories portsrepo.CategoryReader
	contacts   portsrepo.ContactCategoryReader
	rates      portssvc.CurrencyResolver
}

// NewJournalBuilder creates a JournalBuilder.
func NewJournalBuilder(categories portsrepo.CategoryReader, contacts portsrepo.ContactCategoryReader, rates portssvc.CurrencyResolver, opts ...Option) *JournalBuilder {
	b := &JournalBuilder{
		BaseService: newBaseService(),
		categories:  categories,
		contacts:    contacts,
		rates:       rates,
	}
	applyOptions(&b.BaseService, opts)
	return b
}

var _ portssvc.JournalBuilder = (*JournalBuilder)(nil)

// Build dispatches on the concrete event type.
func (b *JournalBuilder) Build(ctx context.Context, event domain.PostingEvent, userID string) (*domain.Journal, error) {
	switch ev := event.(type) {
	case domain.BankAccountOpeningEvent:
		return b.BuildBankAccountOpening(ctx, ev, userID)
	case domain.BankAccountDeletionEvent:
		return b.BuildBankAccountDeletion(ctx, ev, userID)
	case domain.TaxFiledEvent:
		return b.BuildTaxFiled(ctx, ev, userID)
	case domain.TaxUnfiledEvent:
		return b.BuildTaxUnfiled(ctx, ev, userID)
	case domain.SettlementEvent:
		if ev.Kind == domain.SettlementPayment {
			return b.BuildPayment(ctx, ev, userID)
		}
		return b.BuildReceipt(ctx, ev, userID)
	case nil:
		return nil, apperrors.NewPostingError("no event to build", nil)
	default:
		return nil, apperrors.NewPostingError(fmt.Sprintf("unsupported event %T", event), nil)
	}
}

// BuildBankAccountOpening posts the opening balance of a bank category against its offset category.
func (b *JournalBuilder) BuildBankAccountOpening(ctx context.Context, ev domain.BankAccountOpeningEvent, userID string) (*domain.Journal, error) {
	if ev.TransactionCategoryID <= 0 {
		return nil, apperrors.NewPostingError("bank account has no transaction category", nil)
	}
	if !ev.OpeningBalance.IsPositive() {
		return nil, apperrors.NewPostingError("opening balance must be positive", nil)
	}

	chartCode := ev.ChartOfAccountCode
	if chartCode == "" {
		bankCategory, err := b.categories.FindCategoryByID(ctx, ev.TransactionCategoryID)
		if err != nil {
			return nil, apperrors.NewPostingError(fmt.Sprintf("bank category %d", ev.TransactionCategoryID), err)
		}
		chartCode = bankCategory.ChartOfAccountCode
	}

	offsetCode, err := accounting.ClassifyOffset(chartCode)
	if err != nil {
		return nil, err
	}
	offset, err := b.categories.FindCategoryByCode(ctx, string(offsetCode))
	if err != nil {
		return nil, apperrors.NewPostingError(fmt.Sprintf("offset category %s", offsetCode), err)
	}

	rate, err := b.rates.RateFor(ctx, ev.CurrencyCode, ev.OpeningDate)
	if err != nil {
		return nil, err
	}
	amount := accounting.ConvertAmount(ev.OpeningBalance, rate)

	var lines []accounting.LineSpec
	if offsetCode == domain.CodeOpeningBalanceOffsetLiabilities {
		lines = accounting.PairedLines(ev.TransactionCategoryID, offset.CategoryID, amount, rate)
	} else {
		lines = accounting.PairedLines(offset.CategoryID, ev.TransactionCategoryID, amount, rate)
	}

	return b.assemble(ctx, ev.Reference(), ev.OpeningDate, "Opening Balance", userID, lines)
}

// BuildBankAccountDeletion is the mirror image of the opening journal.
func (b *JournalBuilder) BuildBankAccountDeletion(ctx context.Context, ev domain.BankAccountDeletionEvent, userID string) (*domain.Journal, error) {
	opening, err := b.BuildBankAccountOpening(ctx, ev.BankAccountOpeningEvent, userID)
	if err != nil {
		return nil, err
	}
	return b.mirror(ctx, *opening, ev.Reference(), "Bank Account Deleted", userID)
}

// BuildTaxFiled books the filing's tax amount from retained earnings to the tax liability.
func (b *JournalBuilder) BuildTaxFiled(ctx context.Context, ev domain.TaxFiledEvent, userID string) (*domain.Journal, error) {
	if !ev.TaxAmount.IsPositive() {
		return nil, apperrors.NewPostingError("tax amount must be positive", nil)
	}
	retained, err := b.categories.FindCategoryByCode(ctx, string(domain.CodeRetainedEarnings))
	if err != nil {
		return nil, apperrors.NewPostingError("retained earnings category", err)
	}
	taxLiability, err := b.categories.FindCategoryByCode(ctx, string(domain.CodeCorporationTax))
	if err != nil {
		return nil, apperrors.NewPostingError("corporation tax category", err)
	}

	amount := ev.TaxAmount.Round(accounting.MoneyScale)
	lines := accounting.PairedLines(retained.CategoryID, taxLiability.CategoryID, amount, decimal.NewFromInt(1))
	return b.assemble(ctx, ev.Reference(), ev.FiledOn, "Corporate Tax Report Filed", userID, lines)
}

// BuildTaxUnfiled is the mirror image of the filed journal.
func (b *JournalBuilder) BuildTaxUnfiled(ctx context.Context, ev domain.TaxUnfiledEvent, userID string) (*domain.Journal, error) {
	filedOn := ev.UnfiledOn
	if ev.FiledOn != nil {
		filedOn = *ev.FiledOn
	}
	filed, err := b.BuildTaxFiled(ctx, domain.TaxFiledEvent{FilingID: ev.FilingID, TaxAmount: ev.TaxAmount, FiledOn: filedOn}, userID)
	if err != nil {
		return nil, err
	}
	unfiled, err := b.mirror(ctx, *filed, ev.Reference(), "Corporate Tax Report Unfiled", userID)
	if err != nil {
		return nil, err
	}
	unfiled.JournalDate = domain.TruncateToDay(ev.UnfiledOn)
	return unfiled, nil
}

// BuildReceipt books a customer receipt, with a realised gain or loss line when the rate moved.
func (b *JournalBuilder) BuildReceipt(ctx context.Context, ev domain.SettlementEvent, userID string) (*domain.Journal, error) {
	ev.Kind = domain.SettlementReceipt
	return b.buildSettlement(ctx, ev, userID)
}

// BuildPayment books a supplier payment, with a realised gain or loss line when the rate moved.
func (b *JournalBuilder) BuildPayment(ctx context.Context, ev domain.SettlementEvent, userID string) (*domain.Journal, error) {
	ev.Kind = domain.SettlementPayment
	return b.buildSettlement(ctx, ev, userID)
}

func (b *JournalBuilder) buildSettlement(ctx context.Context, ev domain.SettlementEvent, userID string) (*domain.Journal, error) {
	if ev.SettlementID == "" {
		return nil, apperrors.NewPostingError("settlement has no id", nil)
	}
	if !ev.Amount.IsPositive() {
		return nil, apperrors.NewPostingError("settlement amount must be positive", nil)
	}
	if !ev.BookedRate.IsPositive() {
		return nil, apperrors.NewPostingError("booked exchange rate must be positive", nil)
	}

	counterparty, err := b.contacts.FindCategoryForContact(ctx, ev.ContactID, ev.Kind.ContactType())
	if err != nil {
		return nil, apperrors.NewPostingError(fmt.Sprintf("category for %s %s", ev.Kind.ContactType(), ev.ContactID), err)
	}
	deposit, err := b.categories.FindCategoryByID(ctx, ev.DepositCategoryID)
	if err != nil {
		return nil, apperrors.NewPostingError(fmt.Sprintf("deposit category %d", ev.DepositCategoryID), err)
	}

	var clearedRate decimal.Decimal
	if ev.ClearedRate != nil {
		if !ev.ClearedRate.IsPositive() {
			return nil, apperrors.NewPostingError("cleared exchange rate must be positive", nil)
		}
		clearedRate = *ev.ClearedRate
	} else {
		clearedRate, err = b.rates.RateFor(ctx, ev.CurrencyCode, ev.SettlementDate)
		if err != nil {
			return nil, err
		}
	}

	booked := accounting.ConvertAmount(ev.Amount, ev.BookedRate)
	fxDiff := accounting.FXDifference(ev.Amount, ev.BookedRate, clearedRate)
	depositAmount := booked.Add(fxDiff)

	var lines []accounting.LineSpec
	if ev.Kind == domain.SettlementPayment {
		lines = []accounting.LineSpec{
			{CategoryID: counterparty.CategoryID, Debit: booked, Credit: decimal.Zero, ExchangeRate: ev.BookedRate},
			{CategoryID: deposit.CategoryID, Debit: decimal.Zero, Credit: depositAmount, ExchangeRate: clearedRate},
		}
	} else {
		lines = []accounting.LineSpec{
			{CategoryID: deposit.CategoryID, Debit: depositAmount, Credit: decimal.Zero, ExchangeRate: clearedRate},
			{CategoryID: counterparty.CategoryID, Debit: decimal.Zero, Credit: booked, ExchangeRate: ev.BookedRate},
		}
	}

	if !fxDiff.IsZero() {
		fxLine, err := b.exchangeDifferenceLine(ctx, ev.Kind, fxDiff, clearedRate)
		if err != nil {
			return nil, err
		}
		lines = append(lines, fxLine)
	}

	description := ev.Description
	if description == "" {
		description = fmt.Sprintf("%s %s", ev.Kind, ev.SettlementID)
	}
	journal, err := b.assemble(ctx, ev.Reference(), ev.SettlementDate, description, userID, lines)
	if err != nil {
		return nil, err
	}
	b.LogDebug(ctx, "Built settlement journal",
		slog.String("settlement_id", ev.SettlementID),
		slog.String("booked_amount", booked.StringFixed(accounting.MoneyScale)),
		slog.String("fx_difference", fxDiff.StringFixed(accounting.MoneyScale)))
	return journal, nil
}

// exchangeDifferenceLine books |diff| on the realised gain or loss category.
// The gain category takes the credit side, any other the debit side.
func (b *JournalBuilder) exchangeDifferenceLine(ctx context.Context, kind domain.SettlementKind, diff, rate decimal.Decimal) (accounting.LineSpec, error) {
	isGain := (kind == domain.SettlementReceipt && diff.IsPositive()) ||
		(kind == domain.SettlementPayment && diff.IsNegative())

	var (
		category *domain.TransactionCategory
		err      error
	)
	if isGain {
		category, err = b.categories.FindCategoryByID(ctx, domain.ExchangeGainCategoryID)
	} else {
		category, err = b.categories.FindCategoryByCode(ctx, string(domain.CodeRealisedExchangeLoss))
	}
	if err != nil {
		return accounting.LineSpec{}, apperrors.NewPostingError("realised exchange category", err)
	}

	magnitude := diff.Abs()
	if category.CategoryID == domain.ExchangeGainCategoryID {
		return accounting.LineSpec{CategoryID: category.CategoryID, Debit: decimal.Zero, Credit: magnitude, ExchangeRate: rate}, nil
	}
	return accounting.LineSpec{CategoryID: category.CategoryID, Debit: magnitude, Credit: decimal.Zero, ExchangeRate: rate}, nil
}

func (b *JournalBuilder) assemble(ctx context.Context, ref domain.PostingReference, date time.Time, description, userID string, specs []accounting.LineSpec) (*domain.Journal, error) {
	now := b.Now()
	if date.IsZero() {
		date = now
	}
	journal := domain.Journal{
		JournalID:            b.NewID(),
		JournalDate:          domain.TruncateToDay(date),
		PostingReferenceType: ref.Type,
		Description:          description,
		AuditFields:          domain.NewAuditFields(userID, now),
	}
	journal.LineItems = make([]domain.JournalLineItem, 0, len(specs))
	for _, spec := range specs {
		journal.LineItems = append(journal.LineItems, domain.JournalLineItem{
			LineItemID:            b.NewID(),
			JournalID:             journal.JournalID,
			TransactionCategoryID: spec.CategoryID,
			DebitAmount:           spec.Debit,
			CreditAmount:          spec.Credit,
			ReferenceType:         ref.Type,
			ReferenceID:           ref.ID,
			ExchangeRate:          spec.ExchangeRate,
			AuditFields:           domain.NewAuditFields(userID, now),
		})
	}

	if err := accounting.ValidateJournalBalance(journal); err != nil {
		b.LogError(ctx, err, "Built journal failed validation",
			slog.String("reference_type", string(ref.Type)),
			slog.String("reference_id", ref.ID))
		return nil, err
	}
	return &journal, nil
}

func (b *JournalBuilder) mirror(ctx context.Context, source domain.Journal, ref domain.PostingReference, description, userID string) (*domain.Journal, error) {
	now := b.Now()
	journal := domain.Journal{
		JournalID:            b.NewID(),
		JournalDate:          domain.TruncateToDay(now),
		PostingReferenceType: ref.Type,
		Description:          description,
		AuditFields:          domain.NewAuditFields(userID, now),
	}
	journal.LineItems = accounting.MirrorLineItems(source.LineItems, journal.JournalID, ref.Type, userID, now, b.NewID)
	if err := accounting.ValidateJournalBalance(journal); err != nil {
		return nil, err
	}
	return &journal, nil
}

// isNotFound is shared by the flows that treat a missing record as a validation problem.
func isNotFound(err error) bool {
	return errors.Is(err, apperrors.ErrNotFound)
}
