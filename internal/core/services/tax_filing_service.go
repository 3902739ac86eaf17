package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/ledger_posting_engine/internal/apperrors"
	"github.com/SscSPs/ledger_posting_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_posting_engine/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_posting_engine/internal/core/ports/services"
	"github.com/SscSPs/ledger_posting_engine/internal/dto"
	"github.com/SscSPs/ledger_posting_engine/internal/utils/accounting"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// TaxPolicy holds the corporate tax parameters.
type TaxPolicy struct {
	Threshold decimal.Decimal
	Rate      decimal.Decimal
}

// TaxDue computes the taxable amount and the tax on it for a period's net income.
func (p TaxPolicy) TaxDue(netIncome decimal.Decimal) (taxable, tax decimal.Decimal) {
	taxable = decimal.Max(decimal.Zero, netIncome.Sub(p.Threshold))
	tax = taxable.Mul(p.Rate).Round(accounting.MoneyScale)
	return taxable, tax
}

type taxFilingService struct {
	BaseService
	filingRepo portsrepo.TaxFilingRepositoryFacade
	posting    portssvc.PostingSvc
	builder    portssvc.JournalBuilder
	policy     TaxPolicy
}

// NewTaxFilingService creates the corporate tax filing flow.
func NewTaxFilingService(filingRepo portsrepo.TaxFilingRepositoryFacade, posting portssvc.PostingSvc, builder portssvc.JournalBuilder, policy TaxPolicy, opts ...Option) portssvc.TaxFilingSvcFacade {
	s := &taxFilingService{
		BaseService: newBaseService(),
		filingRepo:  filingRepo,
		posting:     posting,
		builder:     builder,
		policy:      policy,
	}
	applyOptions(&s.BaseService, opts)
	return s
}

func (s *taxFilingService) CreateTaxFiling(ctx context.Context, req dto.CreateTaxFilingRequest, userID string) (*domain.CorporateTaxFiling, error) {
	if req.EndDate.Before(req.StartDate) {
		return nil, apperrors.NewValidationError("end date must not be before start date")
	}

	taxable, tax := s.policy.TaxDue(req.NetIncome)
	filing := domain.CorporateTaxFiling{
		FilingID:      s.NewID(),
		StartDate:     domain.TruncateToDay(req.StartDate),
		EndDate:       domain.TruncateToDay(req.EndDate),
		NetIncome:     req.NetIncome,
		TaxableAmount: taxable,
		TaxAmount:     tax,
		BalanceDue:    tax,
		Status:        domain.TaxUnfiled,
		AuditFields:   domain.NewAuditFields(userID, s.Now()),
	}
	if err := s.filingRepo.CreateTaxFiling(ctx, filing); err != nil {
		s.LogError(ctx, err, "Failed to create tax filing")
		return nil, fmt.Errorf("failed to create tax filing: %w", err)
	}
	return &filing, nil
}

// FileTaxFiling marks the filing FILED and books the tax when any is due.
func (s *taxFilingService) FileTaxFiling(ctx context.Context, filingID string, filedOn time.Time, userID string) (*domain.CorporateTaxFiling, *domain.Journal, error) {
	ref := domain.PostingReference{Type: domain.RefCorporateTaxFiled, ID: filingID}
	filedOn = domain.TruncateToDay(filedOn)

	var (
		filing  *domain.CorporateTaxFiling
		journal *domain.Journal
	)
	err := s.posting.Atomically(ctx, ref, func(ctx context.Context, tx pgx.Tx) error {
		var err error
		filing, err = s.filingRepo.FindTaxFilingForUpdate(ctx, tx, filingID)
		if err != nil {
			return err
		}
		if filing.Status == domain.TaxFiled {
			return apperrors.NewConflictError("tax filing " + filingID + " is already filed")
		}

		if filing.HasTaxDue() {
			event := domain.TaxFiledEvent{FilingID: filingID, TaxAmount: filing.TaxAmount, FiledOn: filedOn}
			result, err := s.posting.PostInTx(ctx, tx, ref, userID, func(ctx context.Context) (*domain.Journal, error) {
				return s.builder.Build(ctx, event, userID)
			})
			if err != nil {
				return err
			}
			journal = result.Posted
		}

		now := s.Now()
		if err := s.filingRepo.UpdateTaxFilingStatusInTx(ctx, tx, filingID, domain.TaxFiled, &filedOn, userID, now); err != nil {
			return fmt.Errorf("failed to update tax filing status: %w", err)
		}
		filing.Status = domain.TaxFiled
		filing.TaxFiledOn = &filedOn
		filing.LastUpdatedAt = now
		filing.LastUpdatedBy = userID
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to file tax filing", slog.String("filing_id", filingID))
		return nil, nil, err
	}
	return filing, journal, nil
}

// UnfileTaxFiling reverses the filed journal and returns the filing to UN_FILED.
func (s *taxFilingService) UnfileTaxFiling(ctx context.Context, filingID string, userID string) (*domain.CorporateTaxFiling, *domain.Journal, error) {
	ref := domain.PostingReference{Type: domain.RefCorporateTaxFiled, ID: filingID}

	var (
		filing  *domain.CorporateTaxFiling
		journal *domain.Journal
	)
	err := s.posting.Atomically(ctx, ref, func(ctx context.Context, tx pgx.Tx) error {
		var err error
		filing, err = s.filingRepo.FindTaxFilingForUpdate(ctx, tx, filingID)
		if err != nil {
			return err
		}
		if filing.Status != domain.TaxFiled {
			return apperrors.NewConflictError("tax filing " + filingID + " is not filed")
		}

		result, err := s.posting.VoidInTx(ctx, tx, ref, domain.RefCorporateTaxUnfiled, userID)
		if err != nil {
			return err
		}
		journal = result.Reversal

		now := s.Now()
		if err := s.filingRepo.UpdateTaxFilingStatusInTx(ctx, tx, filingID, domain.TaxUnfiled, nil, userID, now); err != nil {
			return fmt.Errorf("failed to update tax filing status: %w", err)
		}
		filing.Status = domain.TaxUnfiled
		filing.TaxFiledOn = nil
		filing.LastUpdatedAt = now
		filing.LastUpdatedBy = userID
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to unfile tax filing", slog.String("filing_id", filingID))
		return nil, nil, err
	}
	return filing, journal, nil
}

func (s *taxFilingService) GetTaxFiling(ctx context.Context, filingID string) (*domain.CorporateTaxFiling, error) {
	return s.filingRepo.FindTaxFilingByID(ctx, filingID)
}
