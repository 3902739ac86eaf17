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
)

type categoryService struct {
	BaseService
	categoryRepo portsrepo.CategoryRepositoryFacade
	ledger       portssvc.BalanceLedger
}

// NewCategoryService creates the category service.
func NewCategoryService(categoryRepo portsrepo.CategoryRepositoryFacade, ledger portssvc.BalanceLedger, opts ...Option) portssvc.CategorySvcFacade {
	s := &categoryService{
		BaseService:  newBaseService(),
		categoryRepo: categoryRepo,
		ledger:       ledger,
	}
	applyOptions(&s.BaseService, opts)
	return s
}

// CreateCategory creates a leaf category. Unknown chart codes are rejected up front so that
// later opening balances can always be classified.
func (s *categoryService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest, userID string) (*domain.TransactionCategory, error) {
	if !accounting.IsKnownChartOfAccountCode(req.ChartOfAccountCode) {
		return nil, &apperrors.CategoryClassificationError{ChartOfAccountCode: string(req.ChartOfAccountCode)}
	}

	category, err := s.categoryRepo.CreateCategory(ctx, domain.TransactionCategory{
		Code:               req.Code,
		Name:               req.Name,
		ChartOfAccountCode: req.ChartOfAccountCode,
		AuditFields:        domain.NewAuditFields(userID, s.Now()),
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create category", slog.String("code", req.Code))
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	s.LogInfo(ctx, "Category created", slog.Int64("category_id", category.CategoryID), slog.String("code", category.Code))
	return category, nil
}

func (s *categoryService) GetCategoryByID(ctx context.Context, categoryID int64) (*domain.TransactionCategory, error) {
	return s.categoryRepo.FindCategoryByID(ctx, categoryID)
}

// GetCategoryBalance returns the running balance of an existing category.
func (s *categoryService) GetCategoryBalance(ctx context.Context, categoryID int64, userID string) (*domain.CategoryBalance, error) {
	if _, err := s.categoryRepo.FindCategoryByID(ctx, categoryID); err != nil {
		return nil, err
	}
	return s.ledger.OpeningBalanceFor(ctx, categoryID, userID)
}

func (s *categoryService) ListClosingBalances(ctx context.Context, categoryID int64, from, to time.Time) ([]domain.ClosingBalance, error) {
	return s.ledger.ClosingBalances(ctx, categoryID, from, to)
}

func (s *categoryService) ReconcileCategory(ctx context.Context, categoryID int64) (domain.ReconciliationResult, error) {
	if _, err := s.categoryRepo.FindCategoryByID(ctx, categoryID); err != nil {
		return domain.ReconciliationResult{}, err
	}
	return s.ledger.Reconcile(ctx, categoryID)
}
