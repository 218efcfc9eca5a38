package services

import (
	"context"

	"github.com/docmarket/docmarket_backend/internal/core/domain"
	"github.com/docmarket/docmarket_backend/internal/dto"
)

// SettlementSvcFacade exposes the ledger and settlement engine: all point
// balance arithmetic, fee computation, bonus computation and statistics
// updates. Each operation is all-or-nothing with respect to the stores it
// touches.
type SettlementSvcFacade interface {
	// PurchaseDocument settles a document purchase for the buyer.
	PurchaseDocument(ctx context.Context, buyerID, documentID string) (*domain.PurchaseReceipt, error)

	// ApproveDocument approves a pending document and pays the moderation
	// reward to its author.
	ApproveDocument(ctx context.Context, documentID, moderatorID string) (*domain.ApprovalReceipt, error)

	// RejectDocument rejects a pending document.
	RejectDocument(ctx context.Context, documentID, moderatorID string) error

	// GetSystemStats assembles the system-wide ledger statistics view.
	GetSystemStats(ctx context.Context) (*dto.SystemStatsResponse, error)

	// ListUserTransactions retrieves a user's ledger history, newest first.
	ListUserTransactions(ctx context.Context, userID string) ([]domain.Transaction, error)
}
