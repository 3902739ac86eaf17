package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/ledger_posting_engine/internal/apperrors"
	"github.com/SscSPs/ledger_posting_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_posting_engine/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_posting_engine/internal/core/ports/services"
	"github.com/SscSPs/ledger_posting_engine/internal/dto"
)

type settlementService struct {
	BaseService
	categoryRepo portsrepo.CategoryReader
	contactRepo  portsrepo.ContactCategoryWriter
	posting      portssvc.PostingSvc
	builder      portssvc.JournalBuilder
}

// NewSettlementService creates the receipt and payment flow.
func NewSettlementService(categoryRepo portsrepo.CategoryReader, contactRepo portsrepo.ContactCategoryWriter, posting portssvc.PostingSvc, builder portssvc.JournalBuilder, opts ...Option) portssvc.SettlementSvcFacade {
	s := &settlementService{
		BaseService:  newBaseService(),
		categoryRepo: categoryRepo,
		contactRepo:  contactRepo,
		posting:      posting,
		builder:      builder,
	}
	applyOptions(&s.BaseService, opts)
	return s
}

func (s *settlementService) build(event domain.SettlementEvent, userID string) portssvc.BuildFunc {
	return func(ctx context.Context) (*domain.Journal, error) {
		return s.builder.Build(ctx, event, userID)
	}
}

func (s *settlementService) PostReceipt(ctx context.Context, req dto.SettlementRequest, userID string) (*portssvc.TransitionResult, error) {
	event := req.ToEvent(domain.SettlementReceipt)
	return s.posting.Post(ctx, event.Reference(), userID, s.build(event, userID))
}

func (s *settlementService) PostPayment(ctx context.Context, req dto.SettlementRequest, userID string) (*portssvc.TransitionResult, error) {
	event := req.ToEvent(domain.SettlementPayment)
	return s.posting.Post(ctx, event.Reference(), userID, s.build(event, userID))
}

// UpdateSettlement reverses the settlement's active lines and posts the new figures.
func (s *settlementService) UpdateSettlement(ctx context.Context, kind domain.SettlementKind, req dto.SettlementRequest, userID string) (*portssvc.TransitionResult, error) {
	event := req.ToEvent(kind)
	reverseType, err := kind.ReferenceType().ReverseVariant()
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	return s.posting.Repost(ctx, event.Reference(), reverseType, userID, s.build(event, userID))
}

func (s *settlementService) DeleteSettlement(ctx context.Context, kind domain.SettlementKind, settlementID string, userID string) (*portssvc.TransitionResult, error) {
	deleteType, err := kind.ReferenceType().DeleteVariant()
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	ref := domain.PostingReference{Type: kind.ReferenceType(), ID: settlementID}
	return s.posting.Void(ctx, ref, deleteType, userID)
}

// RegisterContactCategory binds a contact role to an existing category.
func (s *settlementService) RegisterContactCategory(ctx context.Context, contactID string, req dto.RegisterContactCategoryRequest, userID string) (*domain.ContactCategoryRelation, error) {
	if _, err := s.categoryRepo.FindCategoryByID(ctx, req.TransactionCategoryID); err != nil {
		if isNotFound(err) {
			return nil, apperrors.NewValidationError(fmt.Sprintf("category %d does not exist", req.TransactionCategoryID))
		}
		return nil, err
	}

	relation := domain.ContactCategoryRelation{
		ContactID:             contactID,
		ContactType:           req.ContactType,
		TransactionCategoryID: req.TransactionCategoryID,
		AuditFields:           domain.NewAuditFields(userID, s.Now()),
	}
	if err := s.contactRepo.SaveContactCategory(ctx, relation); err != nil {
		return nil, fmt.Errorf("failed to save contact category: %w", err)
	}
	return &relation, nil
}
