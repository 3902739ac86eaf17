package services

import (
	"context"

	"github.com/SscSPs/ledger_posting_engine/internal/core/domain"
	"github.com/SscSPs/ledger_posting_engine/internal/dto"
)

// SettlementSvcFacade posts customer receipts and supplier payments.
type SettlementSvcFacade interface {
	PostReceipt(ctx context.Context, req dto.SettlementRequest, userID string) (*TransitionResult, error)
	PostPayment(ctx context.Context, req dto.SettlementRequest, userID string) (*TransitionResult, error)
	UpdateSettlement(ctx context.Context, kind domain.SettlementKind, req dto.SettlementRequest, userID string) (*TransitionResult, error)
	DeleteSettlement(ctx context.Context, kind domain.SettlementKind, settlementID string, userID string) (*TransitionResult, error)
	RegisterContactCategory(ctx context.Context, contactID string, req dto.RegisterContactCategoryRequest, userID string) (*domain.ContactCategoryRelation, error)
}
